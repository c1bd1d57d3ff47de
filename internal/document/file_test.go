package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadKeepsJSONVerbatim(t *testing.T) {
	raw := "{\n  // comment\n  \"a\": 1,\n}\n"
	f, err := Load(writeTemp(t, "doc.jsonc", raw))
	require.NoError(t, err)
	assert.Equal(t, raw, f.Store.Text())
	assert.False(t, f.State.Unsaved())
}

func TestLoadConvertsYAML(t *testing.T) {
	f, err := Load(writeTemp(t, "doc.yaml", "a: 1\nlist:\n  - x\n"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1, "list": ["x"]}`, f.Store.Text())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestWritePersistsReplacedText(t *testing.T) {
	f, err := Load(writeTemp(t, "doc.json", `{"a": 1}`))
	require.NoError(t, err)

	f.Store.Replace(`{"a": 2}`)
	f.State.SetUnsaved(true)
	require.NoError(t, f.Write())

	data, err := os.ReadFile(f.Path)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 2}`, string(data))
	assert.False(t, f.State.Unsaved())
}
