// Package document models the viewed JSON document: the text store the
// editor writes back to, and the node/row shape the tree view is built from.
package document

// RowKind tags what a row holds.
type RowKind int

const (
	KindScalar RowKind = iota
	KindArray
	KindObject
)

func (k RowKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Row is one line of a node: an optional key, a value, and a kind tag.
// Container rows only mark that a child node exists; their value is not
// reconstructed into editable text.
type Row struct {
	Kind  RowKind
	Key   string
	Keyed bool
	Value any
}

// ScalarRow builds a keyed scalar row.
func ScalarRow(key string, value any) Row {
	return Row{Kind: KindScalar, Key: key, Keyed: true, Value: value}
}

// BareRow builds a keyless scalar row, used for root scalars.
func BareRow(value any) Row {
	return Row{Kind: KindScalar, Value: value}
}

// ContainerRow builds a keyed row marking a nested array or object.
func ContainerRow(key string, kind RowKind) Row {
	return Row{Kind: kind, Key: key, Keyed: true}
}
