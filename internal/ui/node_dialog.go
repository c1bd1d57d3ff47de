package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsonlens/jsonlens/internal/document"
	"github.com/jsonlens/jsonlens/internal/session"
	"github.com/jsonlens/jsonlens/internal/ui/components"
)

// NodeDialog is the modal that shows one node's content and lets the user
// switch into raw-text editing. All data decisions live in the session; the
// dialog only translates keys and renders.
type NodeDialog struct {
	Active bool

	sess     *session.Session
	tabWidth int
}

// NewNodeDialog wires the dialog to an edit session.
func NewNodeDialog(sess *session.Session, tabWidth int) NodeDialog {
	if tabWidth <= 0 {
		tabWidth = 2
	}
	return NodeDialog{sess: sess, tabWidth: tabWidth}
}

// Open shows the dialog for a node, always starting in view mode.
func (d *NodeDialog) Open(n document.Node) {
	d.Active = true
	d.sess.SetNode(n)
}

// Close behaves like cancel, then hides the dialog.
func (d *NodeDialog) Close() {
	d.sess.Cancel()
	d.Active = false
}

// HandleKey processes a key while the dialog is open. closed reports that
// the dialog dismissed itself; saved that a save was committed.
func (d *NodeDialog) HandleKey(msg tea.KeyMsg) (closed, saved bool) {
	if d.sess.Mode() == session.Viewing {
		switch {
		case isBack(msg), isQuit(msg):
			d.Close()
			return true, false
		case isKey(msg, "e"):
			d.sess.StartEdit()
		}
		return false, false
	}

	switch {
	case isBack(msg):
		d.sess.Cancel()
	case isKey(msg, "ctrl+s"):
		if d.sess.Save() {
			d.Active = false
			return true, true
		}
	case isEnter(msg):
		d.appendDraft("\n")
	case isKey(msg, "tab"):
		d.appendDraft(strings.Repeat(" ", d.tabWidth))
	case isKey(msg, "backspace", "delete"):
		d.sess.SetDraft(dropLastRune(d.sess.Draft()))
	case isKey(msg, "ctrl+u"):
		d.sess.SetDraft("")
	case isSpace(msg):
		d.appendDraft(" ")
	default:
		ch := msg.String()
		if len([]rune(ch)) == 1 {
			d.appendDraft(ch)
		}
	}
	return false, false
}

func (d *NodeDialog) appendDraft(s string) {
	d.sess.SetDraft(d.sess.Draft() + s)
}

// Render draws the modal box titled with the node's path.
func (d NodeDialog) Render(width int) string {
	title := d.sess.Node().Path.String()
	body := renderDraft(d.sess.Draft())

	var hint string
	if d.sess.Mode() == session.Viewing {
		hint = MutedStyle.Render("e edit  |  esc close")
	} else {
		body += AccentStyle.Render("█")
		hint = MutedStyle.Render("ctrl+s save  |  esc cancel  |  enter newline")
	}
	if msg := d.sess.Err(); msg != "" {
		hint += "\n" + ErrorStyle.Render(msg)
	}

	return components.Indent(components.TitledBox(title, body+"\n\n"+hint, width), 1)
}

// renderDraft lightly highlights key/value structure in the draft text.
func renderDraft(text string) string {
	if strings.TrimSpace(text) == "" {
		return MutedStyle.Render("-")
	}
	lines := strings.Split(components.SanitizeText(text), "\n")
	for i, line := range lines {
		content := strings.TrimLeft(line, " ")
		pad := line[:len(line)-len(content)]
		if idx := strings.Index(content, "\":"); idx != -1 && strings.HasPrefix(content, "\"") {
			key := content[:idx+1]
			rest := content[idx+1:]
			lines[i] = pad + KeyStyle.Render(key) + PunctStyle.Render(":") + ValueStyle.Render(strings.TrimPrefix(rest, ":"))
			continue
		}
		lines[i] = pad + ValueStyle.Render(content)
	}
	return strings.Join(lines, "\n")
}

func dropLastRune(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}
