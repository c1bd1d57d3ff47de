package document

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Normalize renders a node's rows as the canonical editable text: "{}" for
// nothing, the bare value for a single keyless scalar row, otherwise a flat
// JSON object of the scalar rows (2-space indent, row order kept). Container
// rows are dropped; nested structure is edited through its own node.
func Normalize(rows []Row) string {
	if len(rows) == 0 {
		return "{}"
	}
	if len(rows) == 1 && !rows[0].Keyed && rows[0].Kind == KindScalar {
		return bareValue(rows[0].Value)
	}
	members := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Kind == KindScalar && r.Keyed {
			members = append(members, r)
		}
	}
	if len(members) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for i, r := range members {
		key, _ := json.Marshal(r.Key)
		b.WriteString("  ")
		b.Write(key)
		b.WriteString(": ")
		b.WriteString(encodeMember(r.Value))
		if i < len(members)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// bareValue renders a lone scalar the way it reads: strings unquoted,
// numbers in their textual form.
func bareValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

func encodeMember(v any) string {
	b, err := json.MarshalIndent(v, "  ", "  ")
	if err != nil {
		b, _ = json.Marshal(fmt.Sprintf("%v", v))
	}
	return string(b)
}
