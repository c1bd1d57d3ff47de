package ui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jsonlens/jsonlens/internal/config"
	"github.com/jsonlens/jsonlens/internal/document"
	"github.com/jsonlens/jsonlens/internal/jsontext"
	"github.com/jsonlens/jsonlens/internal/session"
	"github.com/jsonlens/jsonlens/internal/ui/components"
)

// App is the root TUI model: the document tree plus the node dialog.
type App struct {
	file *document.File
	sess *session.Session

	tree   TreeModel
	dialog NodeDialog

	width    int
	height   int
	err      string // document parse error; cleared on the next good rebuild
	toast    string // transient notice; cleared on the next keypress
	toastErr bool
	dirty    bool // in-memory text differs from the file on disk
	confirm  bool // quit confirmation while dirty
}

// NewApp creates the root application model.
func NewApp(file *document.File, cfg *config.Config) App {
	if cfg == nil {
		cfg = config.Default()
	}
	applyTheme(cfg.Theme)
	sess := session.New(file.Store, file.State)
	a := App{
		file:   file,
		sess:   sess,
		tree:   NewTreeModel(cfg.VimKeys),
		dialog: NewNodeDialog(sess, cfg.TabWidth),
	}
	a.rebuildTree()
	return a
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.tree.Resize(treeHeight(msg.Height))
		return a, nil

	case tea.KeyMsg:
		if isKey(msg, "ctrl+c") {
			return a, tea.Quit
		}
		a.toast = ""
		a.toastErr = false

		if a.confirm {
			switch {
			case isKey(msg, "y"):
				return a, tea.Quit
			case isKey(msg, "n"), isBack(msg):
				a.confirm = false
			}
			return a, nil
		}

		if a.dialog.Active {
			_, saved := a.dialog.HandleKey(msg)
			if saved {
				a.rebuildTree()
				a.toast = "node saved"
				a.dirty = true
			}
			return a, nil
		}

		switch {
		case isQuit(msg):
			if a.dirty {
				a.confirm = true
				return a, nil
			}
			return a, tea.Quit
		case a.tree.HandleKey(msg):
		case isEnter(msg), isSpace(msg):
			if n, ok := a.tree.Selected(); ok {
				a.dialog.Open(n)
			}
		case isKey(msg, "w"):
			if err := a.file.Write(); err != nil {
				a.toast = err.Error()
				a.toastErr = true
			} else {
				a.toast = "wrote " + filepath.Base(a.file.Path)
				a.dirty = false
			}
		}
		return a, nil
	}
	return a, nil
}

func (a App) View() string {
	header := HeaderStyle.Render("jsonlens") + "  " + MutedStyle.Render(a.file.Path) + a.dirtyMarker()

	var body string
	switch {
	case a.confirm:
		body = components.ConfirmDialog("Quit", "Discard unwritten changes?")
	case a.dialog.Active:
		body = a.dialog.Render(a.width)
	case a.err != "":
		body = components.ErrorBox("Document error", a.err, a.width)
	default:
		body = a.tree.Render(a.width)
	}

	footer := components.StatusBar(a.hints(), a.width)
	if a.toast != "" {
		style := SuccessStyle
		if a.toastErr {
			style = ErrorStyle
		}
		footer = style.Render(" "+a.toast) + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

func (a App) hints() []string {
	if a.dialog.Active {
		return []string{components.Hint("esc", "Back")}
	}
	return []string{
		components.Hint("↑/↓", "Navigate"),
		components.Hint("enter", "Open node"),
		components.Hint("w", "Write file"),
		components.Hint("q", "Quit"),
	}
}

func (a App) dirtyMarker() string {
	if a.dirty {
		return WarningStyle.Render(" *")
	}
	return ""
}

// rebuildTree re-parses the document text into nodes. Parse failures keep
// the previous tree and surface the error instead.
func (a *App) rebuildTree() {
	v, err := jsontext.Decode([]byte(a.file.Store.Text()))
	if err != nil {
		a.err = fmt.Sprintf("cannot parse document: %v", err)
		return
	}
	a.err = ""
	a.tree.SetNodes(document.BuildNodes(v))
}

func treeHeight(total int) int {
	h := total - 8
	if h < 3 {
		h = 3
	}
	return h
}
