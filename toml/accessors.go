package toml

import (
	"fmt"
	"strings"
	"time"
)

// =========================
// Safe access helpers
// =========================
//
// Additive conveniences on top of the core Parse/Build surface, covering
// every Value kind. None of these change parser or builder semantics.

// Get walks a dotted path of table keys from root and returns the Value
// found there, if any.
func Get(root *Table, path ...string) (*Value, bool) {
	if root == nil {
		return nil, false
	}
	cur := root
	for i, p := range path {
		v, ok := cur.Items[p]
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return v, true
		}
		if v.Kind != KindTable {
			return nil, false
		}
		cur = v.Table
	}
	return nil, false
}

// GetUntyped is Get followed by ToUntyped.
func GetUntyped(root *Table, path ...string) (any, bool) {
	v, ok := Get(root, path...)
	if !ok {
		return nil, false
	}
	return ToUntyped(v), true
}

// ToUntyped unwraps a Value into a plain Go value: string, int64, float64,
// bool, time.Time, []any, or map[string]any.
func ToUntyped(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInteger:
		return v.Int
	case KindFloat:
		return v.Float
	case KindBoolean:
		return v.Bool
	case KindDatetime:
		return v.Time
	case KindArray:
		out := make([]any, len(v.Array))
		for i, e := range v.Array {
			out[i] = ToUntyped(e)
		}
		return out
	case KindTable:
		return tableToUntyped(v.Table)
	default:
		return nil
	}
}

func tableToUntyped(t *Table) map[string]any {
	m := make(map[string]any, len(t.Items))
	for k, v := range t.Items {
		m[k] = ToUntyped(v)
	}
	return m
}

// MustString panics unless v is a KindString Value.
func MustString(v *Value) string {
	if v.Kind != KindString {
		panic(fmt.Sprintf("toml: MustString on %s value", v.Kind))
	}
	return v.Str
}

// MustInt panics unless v is a KindInteger Value.
func MustInt(v *Value) int64 {
	if v.Kind != KindInteger {
		panic(fmt.Sprintf("toml: MustInt on %s value", v.Kind))
	}
	return v.Int
}

// MustFloat panics unless v is a KindFloat Value.
func MustFloat(v *Value) float64 {
	if v.Kind != KindFloat {
		panic(fmt.Sprintf("toml: MustFloat on %s value", v.Kind))
	}
	return v.Float
}

// MustBool panics unless v is a KindBoolean Value.
func MustBool(v *Value) bool {
	if v.Kind != KindBoolean {
		panic(fmt.Sprintf("toml: MustBool on %s value", v.Kind))
	}
	return v.Bool
}

// MustTime panics unless v is a KindDatetime Value.
func MustTime(v *Value) time.Time {
	if v.Kind != KindDatetime {
		panic(fmt.Sprintf("toml: MustTime on %s value", v.Kind))
	}
	return v.Time
}

// MustArray panics unless v is a KindArray Value.
func MustArray(v *Value) []*Value {
	if v.Kind != KindArray {
		panic(fmt.Sprintf("toml: MustArray on %s value", v.Kind))
	}
	return v.Array
}

// MustTable panics unless v is a KindTable Value.
func MustTable(v *Value) *Table {
	if v.Kind != KindTable {
		panic(fmt.Sprintf("toml: MustTable on %s value", v.Kind))
	}
	return v.Table
}

// Dump renders root as an indented debug tree. It is not TOML output and
// makes no round-trip guarantee; use Builder for that. It exists purely
// so a CLI or log line has something human-readable to print.
func Dump(root *Table) string {
	var b strings.Builder
	debugDumpTable(&b, root, 0)
	return b.String()
}

func debugDumpTable(b *strings.Builder, t *Table, depth int) {
	prefix := strings.Repeat("  ", depth)
	for k, v := range t.Items {
		b.WriteString(prefix)
		b.WriteString(k)
		b.WriteString(" = ")
		debugDumpValue(b, v, depth)
	}
}

func debugDumpValue(b *strings.Builder, v *Value, depth int) {
	switch v.Kind {
	case KindTable:
		b.WriteString("{\n")
		debugDumpTable(b, v.Table, depth+1)
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString("}\n")
	case KindArray:
		b.WriteString("[")
		for i, e := range v.Array {
			if i > 0 {
				b.WriteString(", ")
			}
			debugDumpScalar(b, e)
		}
		b.WriteString("]\n")
	default:
		debugDumpScalar(b, v)
		b.WriteString("\n")
	}
}

func debugDumpScalar(b *strings.Builder, v *Value) {
	switch v.Kind {
	case KindString:
		fmt.Fprintf(b, "%q", v.Str)
	case KindInteger:
		fmt.Fprintf(b, "%d", v.Int)
	case KindFloat:
		fmt.Fprintf(b, "%g", v.Float)
	case KindBoolean:
		fmt.Fprintf(b, "%t", v.Bool)
	case KindDatetime:
		b.WriteString(v.Time.Format(time.RFC3339))
	default:
		b.WriteString(v.Kind.String())
	}
}
