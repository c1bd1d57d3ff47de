// Package session drives the view/edit lifecycle of one node: it owns the
// draft text, parses it on save and patches the shared document through the
// injected stores.
package session

import (
	"bytes"
	"encoding/json"

	"github.com/jsonlens/jsonlens/internal/document"
	"github.com/jsonlens/jsonlens/internal/jsontext"
)

// Mode is the session state.
type Mode int

const (
	Viewing Mode = iota
	Editing
)

// DocumentStore is the shared whole-document text the session patches.
type DocumentStore interface {
	Text() string
	Replace(text string)
}

// FileState is the companion unsaved-changes flag.
type FileState interface {
	SetUnsaved(v bool)
}

// Session tracks the edit state for the currently selected node.
type Session struct {
	doc  DocumentStore
	file FileState

	node  document.Node
	mode  Mode
	draft string
	err   string
}

// New creates a session in Viewing mode with no node.
func New(doc DocumentStore, file FileState) *Session {
	return &Session{doc: doc, file: file}
}

// SetNode resets the session for a (possibly new) node: Viewing mode, error
// cleared, draft recomputed from the node's rows. Called on selection change
// and on dialog reopen.
func (s *Session) SetNode(n document.Node) {
	s.node = n
	s.mode = Viewing
	s.err = ""
	s.draft = document.Normalize(n.Rows)
}

// Node returns the node the session is bound to.
func (s *Session) Node() document.Node { return s.node }

// Mode returns the current state.
func (s *Session) Mode() Mode { return s.mode }

// Draft returns the current draft text.
func (s *Session) Draft() string { return s.draft }

// Err returns the last save error message, empty when none.
func (s *Session) Err() string { return s.err }

// StartEdit switches to Editing. The draft is left as-is so the user edits
// the normalized text in place.
func (s *Session) StartEdit() {
	s.mode = Editing
}

// SetDraft replaces the draft text while editing.
func (s *Session) SetDraft(text string) {
	if s.mode == Editing {
		s.draft = text
	}
}

// Cancel discards the draft, restores the normalized text and returns to
// Viewing. Closing the dialog behaves the same way.
func (s *Session) Cancel() {
	s.mode = Viewing
	s.err = ""
	s.draft = document.Normalize(s.node.Rows)
}

// Save parses the draft (falling back to the raw string when it is not
// JSON), patches the document at the node's path and publishes the result.
// It reports whether the save committed; on failure the session stays in
// Editing with the error surfaced and the document untouched.
func (s *Session) Save() bool {
	if s.mode != Editing {
		return false
	}
	value := ParseDraft(s.draft)
	updated, err := jsontext.ApplyPathEdit(s.doc.Text(), s.node.Path, value)
	if err != nil {
		s.err = err.Error()
		return false
	}
	s.doc.Replace(updated)
	s.file.SetUnsaved(false)
	s.mode = Viewing
	s.err = ""
	return true
}

// ParseDraft decodes edited text as JSON. Unparsable text is not an error:
// the raw string is the value (editing 42 to abc stores "abc").
func ParseDraft(text string) any {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return text
	}
	// Trailing garbage after a valid prefix also falls back to the string.
	if dec.More() {
		return text
	}
	return v
}
