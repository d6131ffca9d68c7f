package toml

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestTokenCursorPeekDoesNotMutate(t *testing.T) {
	convey.Convey("peek/peekAny/peekSequence leave the cursor unmoved", t, func() {
		tokens := []Token{
			{Kind: TokUnquotedKey, Lexeme: "a"},
			{Kind: TokEqual, Lexeme: "="},
			{Kind: TokInteger, Lexeme: "1"},
			{Kind: TokEnd},
		}
		c := newTokenCursor(tokens)

		convey.So(c.peek(TokUnquotedKey), convey.ShouldBeTrue)
		convey.So(c.peekAny(TokEqual, TokUnquotedKey), convey.ShouldBeTrue)
		convey.So(c.peekSequence(TokUnquotedKey, TokEqual, TokInteger), convey.ShouldBeTrue)
		convey.So(c.peekSequence(TokEqual), convey.ShouldBeFalse)

		lex, err := c.expect(TokUnquotedKey)
		convey.So(err, convey.ShouldBeNil)
		convey.So(lex, convey.ShouldEqual, "a")
	})
}

func TestTokenCursorExpectFailure(t *testing.T) {
	convey.Convey("expect on the wrong kind raises UNEXPECTED_TOKEN", t, func() {
		c := newTokenCursor([]Token{{Kind: TokInteger, Lexeme: "1", Line: 3}})
		_, err := c.expect(TokEqual)
		convey.So(err, convey.ShouldNotBeNil)
		pe := err.(*ParseError)
		convey.So(pe.Kind, convey.ShouldEqual, ErrUnexpectedToken)
		convey.So(pe.Line, convey.ShouldEqual, 3)
	})
}

func TestTokenCursorSkipWhile(t *testing.T) {
	convey.Convey("skipWhile/skipWhileAny consume matching runs only", t, func() {
		tokens := []Token{
			{Kind: TokSpace, Lexeme: "  "},
			{Kind: TokSpace, Lexeme: " "},
			{Kind: TokUnquotedKey, Lexeme: "x"},
			{Kind: TokEnd},
		}
		c := newTokenCursor(tokens)
		c.skipWhile(TokSpace)
		convey.So(c.peek(TokUnquotedKey), convey.ShouldBeTrue)
		convey.So(c.hasMore(), convey.ShouldBeTrue)
		c.advance()
		convey.So(c.hasMore(), convey.ShouldBeFalse)
	})
}
