package document

// Store holds the whole document text. The UI event loop is its only
// writer, so no locking is needed.
type Store struct {
	text string
}

// NewStore creates a store seeded with text.
func NewStore(text string) *Store { return &Store{text: text} }

// Text returns the current document text.
func (s *Store) Text() string { return s.text }

// Replace swaps the whole document text atomically.
func (s *Store) Replace(text string) { s.text = text }

// FileState tracks whether the document diverged from what the companion
// file on disk holds.
type FileState struct {
	unsaved bool
}

// SetUnsaved flips the dirty flag.
func (f *FileState) SetUnsaved(v bool) { f.unsaved = v }

// Unsaved reports whether unwritten changes exist.
func (f *FileState) Unsaved() bool { return f.unsaved }
