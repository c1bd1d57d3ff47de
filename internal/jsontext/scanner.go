// Package jsontext performs byte-level, formatting-preserving operations on
// JSON document text. The scanner tolerates line and block comments and
// trailing commas, since documents may have been hand-edited.
package jsontext

import (
	"encoding/json"
	"fmt"
)

// Span is a half-open byte range [Start, End) inside a document.
type Span struct {
	Start int
	End   int
}

func errInvalid(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidDocument)...)
}

// skipSpace advances past whitespace, // comments and /* */ comments.
func skipSpace(d []byte, i int) int {
	for i < len(d) {
		switch c := d[i]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '/' && i+1 < len(d) && d[i+1] == '/':
			for i < len(d) && d[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(d) && d[i+1] == '*':
			i += 2
			for i+1 < len(d) && !(d[i] == '*' && d[i+1] == '/') {
				i++
			}
			if i+1 < len(d) {
				i += 2
			} else {
				i = len(d)
			}
		default:
			return i
		}
	}
	return i
}

// scanString returns the index just past the closing quote. d[i] must be '"'.
func scanString(d []byte, i int) (int, error) {
	i++
	for i < len(d) {
		switch d[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1, nil
		default:
			i++
		}
	}
	return i, errInvalid("unterminated string")
}

// scanContainer returns the index just past the matching close bracket.
// Strings and comments are skipped, so brackets inside them do not count.
func scanContainer(d []byte, i int, open, close byte) (int, error) {
	depth := 0
	for i < len(d) {
		i = skipSpace(d, i)
		if i >= len(d) {
			break
		}
		switch d[i] {
		case '"':
			var err error
			if i, err = scanString(d, i); err != nil {
				return i, err
			}
		case open:
			depth++
			i++
		case close:
			depth--
			i++
			if depth == 0 {
				return i, nil
			}
		default:
			i++
		}
	}
	return i, errInvalid("unterminated %q", string(open))
}

func isValueDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ',', ':', '{', '}', '[', ']', '"', '/':
		return true
	}
	return false
}

// scanValue returns the index just past the value starting at or after i.
func scanValue(d []byte, i int) (int, error) {
	i = skipSpace(d, i)
	if i >= len(d) {
		return i, errInvalid("unexpected end of document")
	}
	switch d[i] {
	case '"':
		return scanString(d, i)
	case '{':
		return scanContainer(d, i, '{', '}')
	case '[':
		return scanContainer(d, i, '[', ']')
	case '}', ']', ',', ':':
		return i, errInvalid("unexpected %q", string(d[i]))
	default:
		// number, true, false, null or any bare literal
		start := i
		for i < len(d) && !isValueDelim(d[i]) {
			i++
		}
		if i == start {
			return i, errInvalid("empty value")
		}
		return i, nil
	}
}

// unquoteKey decodes a JSON string token (quotes included).
func unquoteKey(tok []byte) (string, bool) {
	var s string
	if err := json.Unmarshal(tok, &s); err != nil {
		return "", false
	}
	return s, true
}

// Standardize rewrites a tolerated document into strict JSON of the same
// length: comment bytes and trailing commas become spaces (newlines inside
// comments are kept so line positions survive). The input is not modified.
func Standardize(d []byte) []byte {
	out := make([]byte, len(d))
	copy(out, d)
	i := 0
	for i < len(out) {
		switch c := out[i]; {
		case c == '"':
			next, err := scanString(out, i)
			if err != nil {
				return out
			}
			i = next
		case c == '/' && i+1 < len(out) && (out[i+1] == '/' || out[i+1] == '*'):
			next := skipSpace(out, i)
			for j := i; j < next; j++ {
				if out[j] != '\n' && out[j] != '\r' {
					out[j] = ' '
				}
			}
			i = next
		case c == ',':
			next := skipSpace(out, i+1)
			if next < len(out) && (out[next] == '}' || out[next] == ']') {
				out[i] = ' '
			}
			i++
		default:
			i++
		}
	}
	return out
}
