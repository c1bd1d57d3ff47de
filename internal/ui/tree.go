package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsonlens/jsonlens/internal/document"
	"github.com/jsonlens/jsonlens/internal/ui/components"
)

// TreeModel is the navigable flattened node list of the document.
type TreeModel struct {
	list  *components.List
	nodes []document.Node
	vim   bool
}

// NewTreeModel creates a tree with an initial page size; Resize adjusts it.
func NewTreeModel(vim bool) TreeModel {
	return TreeModel{list: components.NewList(20), vim: vim}
}

// SetNodes replaces the node list, keeping the selection index when it still
// exists after a rebuild.
func (m *TreeModel) SetNodes(nodes []document.Node) {
	m.nodes = nodes
	items := make([]string, len(nodes))
	for i, n := range nodes {
		items[i] = nodeLine(n)
	}
	m.list.SetItems(items)
}

// Resize adapts the visible page to the pane height.
func (m *TreeModel) Resize(height int) {
	m.list.Resize(height)
}

// Selected returns the node under the cursor.
func (m TreeModel) Selected() (document.Node, bool) {
	if len(m.nodes) == 0 {
		return document.Node{}, false
	}
	return m.nodes[m.list.Selected()], true
}

// HandleKey moves the cursor. It reports whether the key was consumed.
func (m *TreeModel) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case isUp(msg, m.vim):
		m.list.Up()
		return true
	case isDown(msg, m.vim):
		m.list.Down()
		return true
	}
	return false
}

// Render draws the visible slice of the tree.
func (m TreeModel) Render(width int) string {
	if len(m.nodes) == 0 {
		return MutedStyle.Render("(empty document)")
	}
	var b strings.Builder
	for rel, line := range m.list.Visible() {
		abs := m.list.RelToAbs(rel)
		prefix := "  "
		style := NormalStyle
		if m.list.IsSelected(abs) {
			prefix = "> "
			style = SelectedStyle
		}
		b.WriteString(style.Render(prefix + components.ClampTextWidth(line, width-2)))
		if rel < m.list.PageSize-1 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// nodeLine is the one-line tree label: indentation, last path segment and a
// short preview of the node's rows.
func nodeLine(n document.Node) string {
	label := "$"
	if len(n.Path) > 0 {
		seg := n.Path[len(n.Path)-1]
		if seg.IsIndex {
			label = "[" + strconv.Itoa(seg.Index) + "]"
		} else {
			label = seg.Key
		}
	}
	pad := strings.Repeat("  ", n.Depth())
	preview := n.Preview()
	if preview == "" {
		return pad + label
	}
	return pad + label + "  " + preview
}
