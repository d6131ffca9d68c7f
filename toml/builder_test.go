package toml

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestBuilderAddValueAndTable(t *testing.T) {
	convey.Convey("a table followed by a value produces `[path]` then `key = value`", t, func() {
		b := NewBuilder(4)
		b.AddTable("server")
		b.AddValue("host", "localhost", "")
		out, err := b.Build()
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldContainSubstring, "[server]")
		convey.So(out, convey.ShouldContainSubstring, `host = "localhost"`)
	})
}

func TestBuilderDuplicateTableFails(t *testing.T) {
	convey.Convey("addTable(a) -> addValue(x,1) -> addTable(a) raises DUPLICATE_TABLE_KEY", t, func() {
		b := NewBuilder(4)
		b.AddTable("a")
		b.AddValue("x", 1, "")
		b.AddTable("a")
		_, err := b.Build()
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.(*BuildError).Kind, convey.ShouldEqual, ErrDuplicateTableKey)
	})
}

func TestBuilderArrayOfTableImplicitCollision(t *testing.T) {
	convey.Convey("addArrayOfTable(albums.songs) -> addValue(name,...) -> addArrayOfTable(albums) raises KEY_DEFINED_AS_IMPLICIT_TABLE", t, func() {
		b := NewBuilder(4)
		b.AddArrayOfTable("albums.songs")
		b.AddValue("name", "Glory Days", "")
		b.AddArrayOfTable("albums")
		_, err := b.Build()
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.(*BuildError).Kind, convey.ShouldEqual, ErrKeyDefinedAsImplicitTable)
	})
}

func TestBuilderLiteralStringPrefix(t *testing.T) {
	convey.Convey(`a leading '@' emits a literal (single-quoted) string and is stripped`, t, func() {
		b := NewBuilder(4)
		b.AddValue("regex", `@<\i\c*\s*>`, "")
		out, err := b.Build()
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldContainSubstring, `regex = '<\i\c*\s*>'`)

		root, perr := Parse(out, false)
		convey.So(perr, convey.ShouldBeNil)
		convey.So(root.Items["regex"].Str, convey.ShouldEqual, `<\i\c*\s*>`)
	})

	convey.Convey(`"@@" escapes a literal string that must itself start with '@'`, t, func() {
		b := NewBuilder(4)
		b.AddValue("tag", "@@release", "")
		out, err := b.Build()
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldContainSubstring, `tag = '@release'`)
	})
}

func TestBuilderDuplicateKeyFails(t *testing.T) {
	convey.Convey("adding the same key twice raises DUPLICATE_KEY", t, func() {
		b := NewBuilder(4)
		b.AddValue("x", 1, "")
		b.AddValue("x", 2, "")
		_, err := b.Build()
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.(*BuildError).Kind, convey.ShouldEqual, ErrDuplicateKey)
	})
}

func TestBuilderMixedArrayTypesFails(t *testing.T) {
	convey.Convey("a heterogeneous array raises MIXED_ARRAY_TYPES at build time", t, func() {
		b := NewBuilder(4)
		b.AddValue("xs", []any{1, "two"}, "")
		_, err := b.Build()
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.(*BuildError).Kind, convey.ShouldEqual, ErrMixedArrayTypes)
	})
}

func TestBuilderUnsupportedDataTypeFails(t *testing.T) {
	convey.Convey("an unsupported Go value raises UNSUPPORTED_DATA_TYPE", t, func() {
		b := NewBuilder(4)
		b.AddValue("x", struct{}{}, "")
		_, err := b.Build()
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.(*BuildError).Kind, convey.ShouldEqual, ErrUnsupportedDataType)
	})
}

func TestBuilderEmptyKeyFails(t *testing.T) {
	convey.Convey("a blank key raises EMPTY_KEY", t, func() {
		b := NewBuilder(4)
		b.AddValue("   ", 1, "")
		_, err := b.Build()
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.(*BuildError).Kind, convey.ShouldEqual, ErrEmptyKey)
	})
}

func TestBuilderFloatWithIntegerValueGetsDotZero(t *testing.T) {
	convey.Convey("a float value that is exactly an integer is dumped with a trailing .0", t, func() {
		b := NewBuilder(4)
		b.AddValue("x", 2.0, "")
		out, err := b.Build()
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldContainSubstring, "x = 2.0")
	})
}

func TestBuilderTablesSeparatedByUnindentedBlankLine(t *testing.T) {
	convey.Convey("successive top-level blocks are separated by exactly one blank line", t, func() {
		b := NewBuilder(4)
		b.AddTable("a")
		b.AddValue("x", 1, "")
		b.AddTable("b")
		b.AddValue("y", 2, "")
		out, err := b.Build()
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldContainSubstring, "\n\n[b]")
	})
}
