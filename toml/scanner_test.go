package toml

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestScannerTokenPriority(t *testing.T) {
	convey.Convey("datetime literals win over integer/dot sequences", t, func() {
		tokens, err := Scan("d = 1979-05-27")
		convey.So(err, convey.ShouldBeNil)
		kinds := kindsOf(tokens)
		convey.So(kinds, convey.ShouldContain, TokDatetime)
		convey.So(kinds, convey.ShouldNotContain, TokDot)
	})

	convey.Convey("float literals are not split into integer+dot+integer", t, func() {
		tokens, err := Scan("f = 3.14")
		convey.So(err, convey.ShouldBeNil)
		convey.So(kindsOf(tokens), convey.ShouldContain, TokFloat)
	})

	convey.Convey("triple quote is tried before single quote", t, func() {
		tokens, err := Scan(`s = """hi"""`)
		convey.So(err, convey.ShouldBeNil)
		convey.So(kindsOf(tokens), convey.ShouldContain, TokTripleQuote)
	})
}

func TestScannerNewlinesAndEnd(t *testing.T) {
	convey.Convey("a NEWLINE is injected between lines and exactly one END closes", t, func() {
		tokens, err := Scan("a = 1\nb = 2")
		convey.So(err, convey.ShouldBeNil)
		newlineCount := 0
		endCount := 0
		for _, tok := range tokens {
			if tok.Kind == TokNewline {
				newlineCount++
			}
			if tok.Kind == TokEnd {
				endCount++
			}
		}
		convey.So(newlineCount, convey.ShouldEqual, 1)
		convey.So(endCount, convey.ShouldEqual, 1)
		convey.So(tokens[len(tokens)-1].Kind, convey.ShouldEqual, TokEnd)
	})
}

func TestScannerLineNumbers(t *testing.T) {
	convey.Convey("tokens carry 1-based line numbers", t, func() {
		tokens, err := Scan("a = 1\nb = 2\n")
		convey.So(err, convey.ShouldBeNil)
		var lastLine int
		for _, tok := range tokens {
			if tok.Kind == TokUnquotedKey && tok.Lexeme == "b" {
				lastLine = tok.Line
			}
		}
		convey.So(lastLine, convey.ShouldEqual, 2)
	})
}

func TestScannerCRLFAndTabNormalization(t *testing.T) {
	convey.Convey("CRLF and lone CR normalize to LF, TAB becomes SPACE", t, func() {
		tokens, err := Scan("a\t= 1\r\nb = 2\r")
		convey.So(err, convey.ShouldBeNil)
		convey.So(kindsOf(tokens), convey.ShouldContain, TokSpace)
	})
}

func TestScannerInvalidUTF8(t *testing.T) {
	convey.Convey("invalid UTF-8 input fails with INVALID_UTF8", t, func() {
		_, err := Scan(string([]byte{0xff, 0xfe, 0x00}))
		convey.So(err, convey.ShouldNotBeNil)
		pe, ok := err.(*ParseError)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(pe.Kind, convey.ShouldEqual, ErrInvalidUTF8)
	})
}

func kindsOf(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}
