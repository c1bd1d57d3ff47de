package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gyaml "github.com/goccy/go-yaml"
)

// File couples a document store with the path it was loaded from.
type File struct {
	Path  string
	Store *Store
	State *FileState
}

// Load reads a document from disk. YAML files are converted to JSON before
// viewing; .json and .jsonc files are kept verbatim so hand formatting and
// comments survive editing.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	text := string(data)
	if isYAML(path) {
		j, err := gyaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		text = string(j)
	}
	return &File{Path: path, Store: NewStore(text), State: &FileState{}}, nil
}

// Write persists the current document text back to the file's path.
func (f *File) Write() error {
	if err := os.WriteFile(f.Path, []byte(f.Store.Text()), 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	f.State.SetUnsaved(false)
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
