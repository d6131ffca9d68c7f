package toml

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestDocumentTreeEnterTableCreatesPath(t *testing.T) {
	convey.Convey("enterTable descends through dotted segments, creating missing tables", t, func() {
		tr := NewDocumentTree()
		tr.enterTable("a.b.c")
		tr.putValue("x", intValue(1))

		v, ok := tr.Root().Items["a"]
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(v.Kind, convey.ShouldEqual, KindTable)
		b, ok := v.Table.Items["b"]
		convey.So(ok, convey.ShouldBeTrue)
		c, ok := b.Table.Items["c"]
		convey.So(ok, convey.ShouldBeTrue)
		x, ok := c.Table.Items["x"]
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(x.Int, convey.ShouldEqual, 1)
	})
}

func TestDocumentTreeInlineTableScopeRestoration(t *testing.T) {
	convey.Convey("beginInlineTable/endInlineTable push and pop the cursor", t, func() {
		tr := NewDocumentTree()
		tr.putValue("before", intValue(0))
		tr.beginInlineTable("owner")
		tr.putValue("name", stringValue("Tom"))
		tr.endInlineTable()
		tr.putValue("after", intValue(2))

		root := tr.Root()
		convey.So(root.Items["before"].Int, convey.ShouldEqual, 0)
		convey.So(root.Items["after"].Int, convey.ShouldEqual, 2)
		owner := root.Items["owner"].Table
		convey.So(owner.Items["name"].Str, convey.ShouldEqual, "Tom")
	})
}

func TestDocumentTreeAppendArrayElementThenEnterTable(t *testing.T) {
	convey.Convey("enterTable on a prefix that names an array-of-tables lands in its last element", t, func() {
		tr := NewDocumentTree()
		tr.appendArrayElement("fruits")
		tr.putValue("name", stringValue("apple"))
		tr.appendArrayElement("fruits")
		tr.putValue("name", stringValue("banana"))

		tr.enterTable("fruits.physical")
		tr.putValue("color", stringValue("yellow"))

		arr := tr.Root().Items["fruits"].Array
		convey.So(len(arr), convey.ShouldEqual, 2)
		last := arr[1].Table
		convey.So(last.Items["name"].Str, convey.ShouldEqual, "banana")
		physical := last.Items["physical"].Table
		convey.So(physical.Items["color"].Str, convey.ShouldEqual, "yellow")

		first := arr[0].Table
		_, hasPhysical := first.Items["physical"]
		convey.So(hasPhysical, convey.ShouldBeFalse)
	})
}

func TestEscapeUnescapeKeyRoundTrip(t *testing.T) {
	convey.Convey("escapeKey/unescapeKey hide and restore a literal dot", t, func() {
		escaped := escapeKey("tater.man")
		convey.So(escaped, convey.ShouldNotContainSubstring, ".")
		convey.So(unescapeKey(escaped), convey.ShouldEqual, "tater.man")
	})
}
