package toml

import (
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
)

func TestRoundTripTablesAndValues(t *testing.T) {
	convey.Convey("a document built with Builder parses back to the same shape", t, func() {
		b := NewBuilder(4)
		b.AddTable("server")
		b.AddValue("host", "localhost", "")
		b.AddValue("port", 8080, "")
		b.AddValue("enabled", true, "")
		b.AddValue("ratio", 0.5, "")

		out, err := b.Build()
		convey.So(err, convey.ShouldBeNil)

		root, perr := Parse(out, false)
		convey.So(perr, convey.ShouldBeNil)

		server := root.Items["server"].Table
		convey.So(server.Items["host"].Str, convey.ShouldEqual, "localhost")
		convey.So(server.Items["port"].Int, convey.ShouldEqual, 8080)
		convey.So(server.Items["enabled"].Bool, convey.ShouldBeTrue)
		convey.So(server.Items["ratio"].Float, convey.ShouldEqual, 0.5)
	})
}

func TestRoundTripArrayOfTables(t *testing.T) {
	convey.Convey("successive AddArrayOfTable calls re-parse into distinct elements", t, func() {
		b := NewBuilder(4)
		b.AddArrayOfTable("products")
		b.AddValue("name", "Hammer", "")
		b.AddValue("sku", 1, "")
		b.AddArrayOfTable("products")
		b.AddValue("name", "Nail", "")
		b.AddValue("sku", 2, "")

		out, err := b.Build()
		convey.So(err, convey.ShouldBeNil)

		root, perr := Parse(out, false)
		convey.So(perr, convey.ShouldBeNil)

		products := root.Items["products"].Array
		convey.So(len(products), convey.ShouldEqual, 2)
		convey.So(products[0].Table.Items["name"].Str, convey.ShouldEqual, "Hammer")
		convey.So(products[1].Table.Items["sku"].Int, convey.ShouldEqual, 2)
	})
}

func TestRoundTripArrayValue(t *testing.T) {
	convey.Convey("a homogeneous array value round-trips element for element", t, func() {
		b := NewBuilder(4)
		b.AddValue("nums", []any{1, 2, 3}, "")

		out, err := b.Build()
		convey.So(err, convey.ShouldBeNil)

		root, perr := Parse(out, false)
		convey.So(perr, convey.ShouldBeNil)

		nums := root.Items["nums"].Array
		convey.So(len(nums), convey.ShouldEqual, 3)
		convey.So(nums[0].Int, convey.ShouldEqual, 1)
		convey.So(nums[2].Int, convey.ShouldEqual, 3)
	})
}

func TestRoundTripDatetime(t *testing.T) {
	convey.Convey("a datetime value round-trips as an offset datetime", t, func() {
		ts := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
		b := NewBuilder(4)
		b.AddValue("created", ts, "")

		out, err := b.Build()
		convey.So(err, convey.ShouldBeNil)

		root, perr := Parse(out, false)
		convey.So(perr, convey.ShouldBeNil)
		convey.So(root.Items["created"].Time.Equal(ts), convey.ShouldBeTrue)
	})
}

func TestRoundTripEscapedString(t *testing.T) {
	convey.Convey("a string containing control characters and quotes round-trips exactly", t, func() {
		b := NewBuilder(4)
		original := "line1\nline2\ttabbed \"quoted\""
		b.AddValue("text", original, "")

		out, err := b.Build()
		convey.So(err, convey.ShouldBeNil)

		root, perr := Parse(out, false)
		convey.So(perr, convey.ShouldBeNil)
		convey.So(root.Items["text"].Str, convey.ShouldEqual, original)
	})
}
