package jsontext

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jsonlens/jsonlens/internal/jsonpath"
)

// ApplyPathEdit replaces the value at path inside doc with value, touching
// only the bytes of that value. The path must resolve; any miss fails with
// a *PatchError and the original text is returned unchanged.
func ApplyPathEdit(doc string, path jsonpath.Path, value any) (string, error) {
	d := []byte(doc)
	span, err := Locate(d, path)
	if err != nil {
		return doc, err
	}
	return doc[:span.Start] + encodeValue(value, lineIndent(d, span.Start)) + doc[span.End:], nil
}

// UpsertPathEdit is ApplyPathEdit that tolerates a missing final segment:
// it inserts a new object member, or appends when the index equals the
// array length. A blank document with the root path becomes the encoded
// value. On error the original text is returned unchanged.
func UpsertPathEdit(doc string, path jsonpath.Path, value any) (string, error) {
	if len(path) == 0 && strings.TrimSpace(doc) == "" {
		return encodeValue(value, ""), nil
	}
	out, err := ApplyPathEdit(doc, path, value)
	if err == nil {
		return out, nil
	}
	var perr *PatchError
	if !errors.As(err, &perr) || !errors.Is(err, ErrPathNotFound) || perr.Segment != len(path)-1 {
		return doc, err
	}
	out, insErr := insertAt([]byte(doc), path, value)
	if insErr != nil {
		return doc, insErr
	}
	return out, nil
}

// insertAt adds a value whose final path segment does not exist yet. The
// parent container must exist.
func insertAt(d []byte, path jsonpath.Path, value any) (string, error) {
	last := path[len(path)-1]
	pspan, err := Locate(d, path[:len(path)-1])
	if err != nil {
		return "", err
	}
	want := byte('{')
	if last.IsIndex {
		want = '['
	}
	if d[pspan.Start] != want {
		return "", patchErr(path, len(path)-1, ErrPathNotFound)
	}
	tail, err := containerTail(d, pspan.Start)
	if err != nil {
		return "", err
	}
	if last.IsIndex {
		if last.Index != tail.count {
			return "", patchErr(path, len(path)-1, ErrBadIndex)
		}
		return splice(d, pspan, tail, encodeValue(value, memberIndent(d, pspan, tail))), nil
	}
	key, _ := json.Marshal(last.Key)
	member := string(key) + ": " + encodeValue(value, memberIndent(d, pspan, tail))
	return splice(d, pspan, tail, member), nil
}

// containerTail describes the end of a container for insertion purposes.
type tailInfo struct {
	count   int // number of members/elements
	lastEnd int // offset just past the last value (undefined when count == 0)
	close   int // offset of the closing bracket
}

// containerTail walks the container starting at d[start] ('{' or '[').
func containerTail(d []byte, start int) (tailInfo, error) {
	open := d[start]
	info := tailInfo{}
	i := start + 1
	for {
		i = skipSpace(d, i)
		if i >= len(d) {
			return info, errInvalid("unterminated %q", string(open))
		}
		if d[i] == '}' || d[i] == ']' {
			info.close = i
			return info, nil
		}
		if open == '{' {
			var err error
			if d[i] != '"' {
				return info, errInvalid("object key is not a string")
			}
			if i, err = scanString(d, i); err != nil {
				return info, err
			}
			i = skipSpace(d, i)
			if i >= len(d) || d[i] != ':' {
				return info, errInvalid("missing ':' after object key")
			}
			i++
		}
		end, err := scanValue(d, i)
		if err != nil {
			return info, err
		}
		info.count++
		info.lastEnd = end
		i = skipSpace(d, end)
		if i < len(d) && d[i] == ',' {
			i++
		}
	}
}

// splice inserts text as a new trailing member of the container at span.
func splice(d []byte, span Span, tail tailInfo, text string) string {
	if tail.count == 0 {
		// Empty container: rewrite the inside, keeping it on one line.
		return string(d[:span.Start+1]) + " " + text + " " + string(d[tail.close:])
	}
	multiline := bytes.ContainsRune(d[span.Start:tail.close], '\n')
	sep := ", "
	if multiline {
		sep = ",\n" + lineIndent(d, tail.lastEnd-1)
	}
	return string(d[:tail.lastEnd]) + sep + text + string(d[tail.lastEnd:])
}

// memberIndent is the indentation prefix applied to nested lines of a value
// encoded at the container's member position.
func memberIndent(d []byte, span Span, tail tailInfo) string {
	if tail.count == 0 {
		return lineIndent(d, span.Start)
	}
	return lineIndent(d, tail.lastEnd-1)
}

// lineIndent returns the leading whitespace of the line containing pos.
func lineIndent(d []byte, pos int) string {
	start := pos
	for start > 0 && d[start-1] != '\n' {
		start--
	}
	i := start
	for i < len(d) && (d[i] == ' ' || d[i] == '\t') {
		i++
	}
	return string(d[start:i])
}

// encodeValue renders value as JSON text. Containers are pretty-printed with
// 2-space indentation, continuation lines prefixed with indent so they line
// up with the insertion point.
func encodeValue(value any, indent string) string {
	switch value.(type) {
	case map[string]any, []any:
		b, err := json.MarshalIndent(value, indent, "  ")
		if err == nil {
			return string(b)
		}
	}
	b, err := json.Marshal(value)
	if err != nil {
		b, _ = json.Marshal(fmt.Sprintf("%v", value))
	}
	return string(b)
}
