package document

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsonlens/jsonlens/internal/jsonpath"
)

// Node is one addressable element of the visualized document: a path from
// the root plus the rows shown for it. Nodes are supplied to the edit dialog
// read-only; edits go back through the document text.
type Node struct {
	Path jsonpath.Path
	Rows []Row
}

// Depth is the nesting level, used for tree indentation.
func (n Node) Depth() int { return len(n.Path) }

// Preview is a short one-line summary for the tree pane.
func (n Node) Preview() string {
	if len(n.Rows) == 1 && !n.Rows[0].Keyed {
		return bareValue(n.Rows[0].Value)
	}
	parts := make([]string, 0, len(n.Rows))
	for _, r := range n.Rows {
		switch {
		case r.Kind == KindArray:
			parts = append(parts, r.Key+" […]")
		case r.Kind == KindObject:
			parts = append(parts, r.Key+" {…}")
		case r.Keyed:
			parts = append(parts, fmt.Sprintf("%s: %s", r.Key, bareValue(r.Value)))
		default:
			parts = append(parts, bareValue(r.Value))
		}
	}
	return strings.Join(parts, ", ")
}

// BuildNodes flattens a parsed document into nodes, preorder. Every value
// gets a node, containers and scalars alike, so each is addressable in the
// tree; object keys are walked in sorted order so the tree is stable.
func BuildNodes(root any) []Node {
	var nodes []Node
	build(jsonpath.Path{}, root, &nodes)
	return nodes
}

func build(path jsonpath.Path, v any, out *[]Node) {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		rows := make([]Row, 0, len(keys))
		for _, k := range keys {
			switch t[k].(type) {
			case map[string]any:
				rows = append(rows, ContainerRow(k, KindObject))
			case []any:
				rows = append(rows, ContainerRow(k, KindArray))
			default:
				rows = append(rows, ScalarRow(k, t[k]))
			}
		}
		*out = append(*out, Node{Path: path, Rows: rows})
		for _, k := range keys {
			build(path.Append(jsonpath.Key(k)), t[k], out)
		}
	case []any:
		rows := make([]Row, 0, len(t))
		for _, e := range t {
			switch e.(type) {
			case map[string]any:
				rows = append(rows, Row{Kind: KindObject})
			case []any:
				rows = append(rows, Row{Kind: KindArray})
			default:
				rows = append(rows, BareRow(e))
			}
		}
		*out = append(*out, Node{Path: path, Rows: rows})
		for i, e := range t {
			build(path.Append(jsonpath.Index(i)), e, out)
		}
	default:
		*out = append(*out, Node{Path: path, Rows: []Row{BareRow(t)}})
	}
}
