package jsontext

import (
	"errors"
	"fmt"

	"github.com/jsonlens/jsonlens/internal/jsonpath"
)

// Sentinel causes for patch failures.
var (
	ErrInvalidDocument = errors.New("invalid document")
	ErrPathNotFound    = errors.New("path not found")
	ErrBadIndex        = errors.New("array index out of range")
)

// PatchError reports that an edit could not be applied at a path. Segment is
// the index of the first segment that failed to resolve (len(Path) when the
// failure is not tied to one segment).
type PatchError struct {
	Path    jsonpath.Path
	Segment int
	Err     error
}

func (e *PatchError) Error() string {
	return fmt.Sprintf("jsontext: %s at %s", e.Err, e.Path[:min(e.Segment+1, len(e.Path))].String())
}

func (e *PatchError) Unwrap() error { return e.Err }

func patchErr(path jsonpath.Path, seg int, err error) error {
	return &PatchError{Path: path, Segment: seg, Err: err}
}
