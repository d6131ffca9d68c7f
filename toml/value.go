package toml

import "time"

// =========================
// Value
// =========================

// Kind is the tag of Value's variant.
type Kind uint8

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindDatetime
	KindArray
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindDatetime:
		return "datetime"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// DatetimeStyle records which of the four TOML date/time literal shapes
// produced a KindDatetime Value. The parser fills this in from the shape
// of the scanned lexeme; the builder ignores it and always emits the
// offset "Zulu" form, so this only matters to callers inspecting a
// parsed tree.
type DatetimeStyle uint8

const (
	DatetimeOffset DatetimeStyle = iota
	DatetimeLocal
	DatetimeLocalDate
	DatetimeLocalTime
)

// Value is the tagged variant produced by the parser and consumed by the
// builder. Exactly one field group is meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Str   string
	Int   int64
	Float float64
	Bool  bool

	Time    time.Time
	DTStyle DatetimeStyle

	Array []*Value
	Table *Table
}

func stringValue(s string) *Value  { return &Value{Kind: KindString, Str: s} }
func intValue(i int64) *Value      { return &Value{Kind: KindInteger, Int: i} }
func floatValue(f float64) *Value  { return &Value{Kind: KindFloat, Float: f} }
func boolValue(b bool) *Value      { return &Value{Kind: KindBoolean, Bool: b} }
func tableValue(t *Table) *Value   { return &Value{Kind: KindTable, Table: t} }
func arrayValue(v []*Value) *Value { return &Value{Kind: KindArray, Array: v} }

func datetimeValue(t time.Time, style DatetimeStyle) *Value {
	return &Value{Kind: KindDatetime, Time: t, DTStyle: style}
}

// Table is a mapping from string keys to Values. Insertion order is not
// retained across iteration; key ordering is not round-tripped.
type Table struct {
	Items map[string]*Value
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{Items: make(map[string]*Value)}
}
