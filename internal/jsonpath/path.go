// Package jsonpath addresses values inside a JSON document by an ordered
// sequence of object keys and array indices.
package jsonpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step into a document: an object key or an array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Key builds an object-key segment.
func Key(k string) Segment { return Segment{Key: k} }

// Index builds an array-index segment.
func Index(i int) Segment { return Segment{Index: i, IsIndex: true} }

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	// Embedded quotes in keys are not escaped; the rendered form is for
	// display, not for re-parsing.
	return `["` + s.Key + `"]`
}

// Path locates a value from the document root. The empty path is the root.
type Path []Segment

// String renders the path as $["key"][0]... The root renders as "$".
func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	var b strings.Builder
	b.WriteString("$")
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// Append returns a new path extended by seg. The receiver is not modified.
func (p Path) Append(seg Segment) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = seg
	return out
}

// Equal reports whether two paths address the same location.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Parse reads a dotted path expression like `users[0].name` or
// `$["users"][0].name`. An empty expression (or a bare "$") is the root.
func Parse(expr string) (Path, error) {
	expr = strings.TrimSpace(expr)
	expr = strings.TrimPrefix(expr, "$")
	var p Path
	i := 0
	for i < len(expr) {
		switch expr[i] {
		case '.':
			i++
			if i >= len(expr) {
				return nil, fmt.Errorf("jsonpath: trailing dot in %q", expr)
			}
		case '[':
			end := strings.IndexByte(expr[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("jsonpath: unclosed bracket in %q", expr)
			}
			inner := expr[i+1 : i+end]
			i += end + 1
			if len(inner) >= 2 && (inner[0] == '"' || inner[0] == '\'') {
				if inner[len(inner)-1] != inner[0] {
					return nil, fmt.Errorf("jsonpath: unterminated key quote in %q", expr)
				}
				p = append(p, Key(inner[1:len(inner)-1]))
				continue
			}
			idx, err := strconv.Atoi(inner)
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("jsonpath: bad array index %q", inner)
			}
			p = append(p, Index(idx))
		default:
			start := i
			for i < len(expr) && expr[i] != '.' && expr[i] != '[' {
				i++
			}
			p = append(p, Key(expr[start:i]))
		}
	}
	return p, nil
}
