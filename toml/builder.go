package toml

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// =========================
// Builder
// =========================
//
// Builder is a fluent emitter that produces TOML text while consulting
// its own KeyRegistry, the same ledger type the parser uses, so a tree
// assembled by Builder obeys the identical uniqueness/hierarchy rules a
// parse of its own output would enforce.

var unquotedKeyEmitRe = regexp.MustCompile(`^[-A-Za-z0-9_]+$`)

type Builder struct {
	indent     string
	buf        strings.Builder
	lineNo     int
	lastKey    string
	reg        *KeyRegistry
	wroteAny   bool
	underTable bool
	err        error
}

// NewBuilder returns a Builder that indents value/comment lines written
// under the most recent table header by indent spaces (0 disables
// indentation entirely). There is no default: the indent is always the
// value passed in.
func NewBuilder(indent int) *Builder {
	prefix := ""
	if indent > 0 {
		prefix = strings.Repeat(" ", indent)
	}
	return &Builder{indent: prefix, reg: NewKeyRegistry()}
}

func (b *Builder) writeLine(s string) {
	if b.underTable && b.indent != "" {
		b.buf.WriteString(b.indent)
	}
	b.buf.WriteString(s)
	b.buf.WriteByte('\n')
	b.lineNo++
	b.wroteAny = true
}

func (b *Builder) fail(kind ErrorKind, key, format string, args ...any) {
	if b.err == nil {
		b.err = newBuildErr(kind, key, format, args...)
	}
}

// AddValue appends `key = value` (plus an optional trailing comment).
// value may be a string, int, int64, float64, bool, time.Time, a
// homogeneous []any of those, or an already-built *Value; anything else
// fails with UNSUPPORTED_DATA_TYPE.
func (b *Builder) AddValue(name string, value any, comment string) *Builder {
	if b.err != nil {
		return b
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		b.fail(ErrEmptyKey, name, "key is empty")
		return b
	}
	val, err := toBuilderValue(value)
	if err != nil {
		b.fail(ErrUnsupportedDataType, name, "%s", err)
		return b
	}
	if val.Kind == KindTable {
		b.fail(ErrUnsupportedDataType, name, "table values are not supported by AddValue; use AddTable")
		return b
	}
	if val.Kind == KindArray {
		if err := validateArrayHomogeneity(val.Array); err != nil {
			b.fail(ErrMixedArrayTypes, name, "%s", err)
			return b
		}
	}
	if !b.reg.isValidKey(trimmed) {
		b.fail(ErrDuplicateKey, name, "key already defined")
		return b
	}
	if err := b.reg.addKey(trimmed); err != nil {
		b.fail(ErrDuplicateKey, name, "%s", err)
		return b
	}
	dumped, err := dumpValue(val)
	if err != nil {
		b.fail(ErrInvalidStringCharacters, name, "%s", err)
		return b
	}
	line := formatKeyForEmit(trimmed) + " = " + dumped
	if comment != "" {
		line += " # " + comment
	}
	b.writeLine(line)
	b.lastKey = trimmed
	return b
}

func validateSegments(path string) (string, bool) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", false
	}
	segs := strings.Split(trimmed, ".")
	for i, seg := range segs {
		s := strings.TrimSpace(seg)
		if s == "" || !unquotedKeyEmitRe.MatchString(s) {
			return "", false
		}
		segs[i] = s
	}
	return strings.Join(segs, "."), true
}

// AddTable appends a `[path]` header.
func (b *Builder) AddTable(path string) *Builder {
	if b.err != nil {
		return b
	}
	trimmed, ok := validateSegments(path)
	if !ok {
		if strings.TrimSpace(path) == "" {
			b.fail(ErrEmptyKey, path, "table path is empty")
		} else {
			b.fail(ErrUnquotedKeyRequired, path, "table path segments must be bare keys")
		}
		return b
	}
	if b.reg.isRegisteredAsArrayTableKey(trimmed) {
		b.fail(ErrTableAlreadyDefinedAsArray, trimmed, "already defined as an array of tables")
		return b
	}
	if !b.reg.isValidTableKey(trimmed) {
		b.fail(ErrDuplicateTableKey, trimmed, "table already defined")
		return b
	}
	if err := b.reg.addTableKey(trimmed); err != nil {
		b.fail(ErrDuplicateTableKey, trimmed, "%s", err)
		return b
	}
	b.underTable = false
	if b.wroteAny {
		b.buf.WriteByte('\n')
	}
	b.writeLine("[" + trimmed + "]")
	b.underTable = true
	b.lastKey = trimmed
	return b
}

// AddArrayOfTable appends a `[[path]]` header.
func (b *Builder) AddArrayOfTable(path string) *Builder {
	if b.err != nil {
		return b
	}
	trimmed, ok := validateSegments(path)
	if !ok {
		if strings.TrimSpace(path) == "" {
			b.fail(ErrEmptyKey, path, "array of tables path is empty")
		} else {
			b.fail(ErrUnquotedKeyRequired, path, "array of tables path segments must be bare keys")
		}
		return b
	}
	if !b.reg.isValidArrayTableKey(trimmed) {
		b.fail(ErrDuplicateArrayTableKey, trimmed, "already defined and is not an array of tables")
		return b
	}
	if b.reg.isTableImplicitFromArrayTable(trimmed) {
		b.fail(ErrKeyDefinedAsImplicitTable, trimmed, "already implicitly defined as a table")
		return b
	}
	if err := b.reg.addArrayTableKey(trimmed); err != nil {
		b.fail(ErrDuplicateArrayTableKey, trimmed, "%s", err)
		return b
	}
	b.underTable = false
	if b.wroteAny {
		b.buf.WriteByte('\n')
	}
	b.writeLine("[[" + trimmed + "]]")
	b.underTable = true
	b.lastKey = trimmed
	return b
}

// AddComment appends a standalone `# text` line.
func (b *Builder) AddComment(text string) *Builder {
	if b.err != nil {
		return b
	}
	b.writeLine("#" + text)
	return b
}

// Build returns the accumulated TOML text, or the first error
// encountered by a prior call.
func (b *Builder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.buf.String(), nil
}

func formatKeyForEmit(key string) string {
	if unquotedKeyEmitRe.MatchString(key) {
		return key
	}
	return strconv.Quote(key)
}

// =========================
// Value conversion & dumping
// =========================

func toBuilderValue(input any) (*Value, error) {
	switch v := input.(type) {
	case *Value:
		return v, nil
	case string:
		return stringValue(v), nil
	case int:
		return intValue(int64(v)), nil
	case int64:
		return intValue(v), nil
	case float64:
		return floatValue(v), nil
	case bool:
		return boolValue(v), nil
	case time.Time:
		return datetimeValue(v, DatetimeOffset), nil
	case []*Value:
		return arrayValue(v), nil
	case []any:
		elems := make([]*Value, 0, len(v))
		for _, e := range v {
			ev, err := toBuilderValue(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, ev)
		}
		return arrayValue(elems), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", input)
	}
}

func validateArrayHomogeneity(elems []*Value) error {
	if len(elems) == 0 {
		return nil
	}
	leader := elems[0].Kind
	for _, e := range elems[1:] {
		if e.Kind != leader {
			return fmt.Errorf("array elements have mixed types (%s and %s)", leader, e.Kind)
		}
	}
	if leader == KindArray {
		for _, e := range elems {
			if err := validateArrayHomogeneity(e.Array); err != nil {
				return err
			}
		}
	}
	return nil
}

func dumpValue(v *Value) (string, error) {
	switch v.Kind {
	case KindString:
		return dumpString(v.Str)
	case KindInteger:
		return strconv.FormatInt(v.Int, 10), nil
	case KindFloat:
		return dumpFloat(v.Float), nil
	case KindBoolean:
		return strconv.FormatBool(v.Bool), nil
	case KindDatetime:
		return v.Time.UTC().Format("2006-01-02T15:04:05Z"), nil
	case KindArray:
		parts := make([]string, len(v.Array))
		for i, e := range v.Array {
			d, err := dumpValue(e)
			if err != nil {
				return "", err
			}
			parts[i] = d
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	default:
		return "", fmt.Errorf("unsupported value kind %s", v.Kind)
	}
}

func dumpFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) && !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// dumpString renders a Go string as TOML. A leading '@' selects literal
// (single-quoted) output and is stripped; "@@" escapes a literal string
// that must itself start with '@'.
func dumpString(s string) (string, error) {
	if strings.HasPrefix(s, "@") {
		return "'" + s[1:] + "'", nil
	}
	var b strings.Builder
	b.WriteByte('"')
	i := 0
	for i < len(s) {
		c := s[i]
		switch c {
		case '\\':
			if i+1 < len(s) && s[i+1] == 'b' {
				b.WriteString(`\b`)
				i += 2
				continue
			}
			if n, ok := unicodeEscapeLen(s, i); ok {
				b.WriteString(s[i : i+n])
				i += n
				continue
			}
			b.WriteString(`\\`)
			i++
		case '\t':
			b.WriteString(`\t`)
			i++
		case '\n':
			b.WriteString(`\n`)
			i++
		case '\f':
			b.WriteString(`\f`)
			i++
		case '\r':
			b.WriteString(`\r`)
			i++
		case '"':
			b.WriteString(`\"`)
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	b.WriteByte('"')
	return b.String(), nil
}

// unicodeEscapeLen reports the byte length of a well-formed \uXXXX or
// \UXXXXXXXX sequence starting at i, if s[i] == '\\'.
func unicodeEscapeLen(s string, i int) (int, bool) {
	if i+1 >= len(s) {
		return 0, false
	}
	var n int
	switch s[i+1] {
	case 'u':
		n = 4
	case 'U':
		n = 8
	default:
		return 0, false
	}
	if i+2+n > len(s) {
		return 0, false
	}
	for j := 0; j < n; j++ {
		if !isHexDigit(s[i+2+j]) {
			return 0, false
		}
	}
	return 2 + n, true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
