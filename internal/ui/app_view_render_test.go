package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonlens/jsonlens/internal/config"
	"github.com/jsonlens/jsonlens/internal/document"
	"github.com/jsonlens/jsonlens/internal/ui/components"
)

func newTestApp(t *testing.T, doc string) App {
	t.Helper()
	file := &document.File{Path: "test.json", Store: document.NewStore(doc), State: &document.FileState{}}
	a := NewApp(file, config.Default())
	model, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return model.(App)
}

func press(t *testing.T, a App, msg tea.KeyMsg) App {
	t.Helper()
	model, _ := a.Update(msg)
	return model.(App)
}

func TestAppViewShowsTreeAndHints(t *testing.T) {
	a := newTestApp(t, `{"name": "x", "list": [1]}`)
	out := components.SanitizeText(a.View())

	assert.Contains(t, out, "jsonlens")
	assert.Contains(t, out, "test.json")
	assert.Contains(t, out, "name: x")
	assert.Contains(t, out, "Navigate")
	assert.Contains(t, out, "Quit")
}

func TestAppEnterOpensDialogWithPathTitle(t *testing.T) {
	a := newTestApp(t, `{"name": "x"}`)
	a = press(t, a, tea.KeyMsg{Type: tea.KeyDown}) // onto $["name"]
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, a.dialog.Active)
	out := components.SanitizeText(a.View())
	assert.Contains(t, out, `$["name"]`)
	assert.Contains(t, out, "e edit")
}

func TestAppSaveFlowUpdatesDocumentAndTree(t *testing.T) {
	a := newTestApp(t, `{"port": 8080}`)
	a = press(t, a, tea.KeyMsg{Type: tea.KeyDown})
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a = press(t, a, runes('e'))
	a = press(t, a, tea.KeyMsg{Type: tea.KeyCtrlU})
	a = press(t, a, runes('1'))
	a = press(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.False(t, a.dialog.Active)
	assert.Equal(t, `{"port": 1}`, a.file.Store.Text())
	assert.True(t, a.dirty)

	out := components.SanitizeText(a.View())
	assert.Contains(t, out, "node saved")
	assert.Contains(t, out, "port: 1")
}

func TestAppQuitConfirmsWhileDirty(t *testing.T) {
	a := newTestApp(t, `{"port": 8080}`)
	a.dirty = true

	a = press(t, a, runes('q'))
	require.True(t, a.confirm)
	assert.Contains(t, components.SanitizeText(a.View()), "Discard unwritten changes?")

	a = press(t, a, runes('n'))
	assert.False(t, a.confirm)
}

func TestAppFailedWriteKeepsTreeUsable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-dir", "doc.json")
	file := &document.File{Path: missing, Store: document.NewStore(`{"port": 8080}`), State: &document.FileState{}}
	a := NewApp(file, config.Default())
	model, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	a = model.(App)

	a = press(t, a, runes('w'))
	out := components.SanitizeText(a.View())
	assert.Contains(t, out, "port: 8080")
	assert.Contains(t, out, "write document")

	// The notice is transient; navigation clears it.
	a = press(t, a, tea.KeyMsg{Type: tea.KeyDown})
	out = components.SanitizeText(a.View())
	assert.Contains(t, out, "port: 8080")
	assert.NotContains(t, out, "write document")
}

func TestAppParseErrorRendersErrorBox(t *testing.T) {
	a := newTestApp(t, "{{{")
	out := components.SanitizeText(a.View())
	assert.Contains(t, out, "cannot parse document")
}
