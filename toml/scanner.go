package toml

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// =========================
// Scanner
// =========================
//
// Scanner turns UTF-8 text into a finite ordered sequence of Tokens. It
// works line-at-a-time: for each normalized line it tries, in order, the
// regular expressions below and takes the first match. A NEWLINE token
// is injected after every line but the last; exactly one END token
// closes the sequence.

type scanRule struct {
	kind TokenKind
	re   *regexp.Regexp
}

// Order matters: this is the priority list from the grammar. Datelike and
// numeric literals are tried before plain punctuation/keys so that, e.g.,
// "1979-05-27" tokenizes as one DATETIME instead of the three INTEGER
// tokens "1979", "-05", "-27".
var scanRules = []scanRule{
	{TokEqual, regexp.MustCompile(`^=`)},
	{TokBoolean, regexp.MustCompile(`^(true|false)`)},
	{TokDatetime, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2}(\.\d{1,6})?(Z|[+-]\d{2}:\d{2})?)?`)},
	{TokFloat, regexp.MustCompile(`^[+-]?\d(_?\d)*(\.\d(_?\d)*)?[eE][+-]?\d(_?\d)*|^[+-]?\d(_?\d)*\.\d(_?\d)*`)},
	{TokInteger, regexp.MustCompile(`^[+-]?\d(_?\d)*`)},
	{TokTripleQuote, regexp.MustCompile(`^"""`)},
	{TokQuote, regexp.MustCompile(`^"`)},
	{TokTripleApostrophe, regexp.MustCompile(`^'''`)},
	{TokApostrophe, regexp.MustCompile(`^'`)},
	{TokHash, regexp.MustCompile(`^#`)},
	{TokSpace, regexp.MustCompile(`^ +`)},
	// structural punctuation: tried as one group, dispatched below by
	// literal character, ahead of UNQUOTED_KEY.
	{TokUnquotedKey, regexp.MustCompile(`^[-A-Za-z_0-9]+`)},
	{TokEscapedChar, regexp.MustCompile(`^\\(b|t|n|f|r|"|\\|u[0-9A-Fa-f]{4}|U[0-9A-Fa-f]{8})`)},
	{TokEscape, regexp.MustCompile(`^\\`)},
	{TokBasicUnescaped, regexp.MustCompile(`^[\x{0008}-\x{000D}\x{0020}-\x{0021}\x{0023}-\x{0026}\x{0028}-\x{005A}\x{005E}-\x{10FFFF}]+`)},
}

var structuralRule = regexp.MustCompile(`^[\[\]{},.]`)

var structuralKinds = map[byte]TokenKind{
	'[': TokLBracket,
	']': TokRBracket,
	'{': TokLBrace,
	'}': TokRBrace,
	',': TokComma,
	'.': TokDot,
}

// normalizeLineEndings converts CRLF and lone CR to LF, then replaces TAB
// with a single SPACE. Both transforms trade column/snippet fidelity for
// a simpler grammar.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")
	return text
}

// Scan converts text into a token sequence, or fails with INVALID_UTF8 or
// LEXER_PARSE.
func Scan(text string) ([]Token, error) {
	if !utf8.ValidString(text) {
		return nil, &ParseError{Kind: ErrInvalidUTF8, Message: "input is not valid UTF-8"}
	}
	text = normalizeLineEndings(text)
	lines := strings.Split(text, "\n")

	var tokens []Token
	for i, line := range lines {
		lineNo := i + 1
		rest := line
		for len(rest) > 0 {
			kind, lexeme, ok := scanOne(rest)
			if !ok {
				return nil, newParseErr(ErrLexerParse, lineNo, "no token pattern matches %q", rest)
			}
			tokens = append(tokens, Token{Kind: kind, Lexeme: lexeme, Line: lineNo})
			rest = rest[len(lexeme):]
		}
		if i != len(lines)-1 {
			tokens = append(tokens, Token{Kind: TokNewline, Lexeme: "\n", Line: lineNo})
		}
	}
	endLine := len(lines)
	tokens = append(tokens, Token{Kind: TokEnd, Lexeme: "", Line: endLine})
	return tokens, nil
}

// scanOne tries, in priority order, every scan rule against rest and
// returns the first match. Structural punctuation is spliced in between
// SPACE and UNQUOTED_KEY, matching the grammar's ordering.
func scanOne(rest string) (TokenKind, string, bool) {
	for _, rule := range scanRules {
		if rule.kind == TokUnquotedKey {
			if m := structuralRule.FindString(rest); m != "" {
				return structuralKinds[m[0]], m, true
			}
		}
		if m := rule.re.FindString(rest); m != "" {
			return rule.kind, m, true
		}
	}
	return 0, "", false
}
