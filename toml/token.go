package toml

// =========================
// Token Definitions
// =========================

// TokenKind identifies the lexical category of a Token. The set is closed:
// the scanner never produces a kind outside this list.
type TokenKind uint8

const (
	TokEqual TokenKind = iota
	TokBoolean
	TokDatetime
	TokFloat
	TokInteger
	TokTripleQuote
	TokQuote
	TokTripleApostrophe
	TokApostrophe
	TokHash
	TokSpace
	TokLBracket
	TokRBracket
	TokLBrace
	TokRBrace
	TokComma
	TokDot
	TokUnquotedKey
	TokEscapedChar
	TokEscape
	TokBasicUnescaped
	TokNewline
	TokEnd
)

var tokenKindNames = map[TokenKind]string{
	TokEqual:            "EQUAL",
	TokBoolean:          "BOOLEAN",
	TokDatetime:         "DATETIME",
	TokFloat:            "FLOAT",
	TokInteger:          "INTEGER",
	TokTripleQuote:      "TRIPLE_QUOTE",
	TokQuote:            "QUOTE",
	TokTripleApostrophe: "TRIPLE_APOSTROPHE",
	TokApostrophe:       "APOSTROPHE",
	TokHash:             "HASH",
	TokSpace:            "SPACE",
	TokLBracket:         "LBRACKET",
	TokRBracket:         "RBRACKET",
	TokLBrace:           "LBRACE",
	TokRBrace:           "RBRACE",
	TokComma:            "COMMA",
	TokDot:              "DOT",
	TokUnquotedKey:      "UNQUOTED_KEY",
	TokEscapedChar:      "ESCAPED_CHAR",
	TokEscape:           "ESCAPE",
	TokBasicUnescaped:   "BASIC_UNESCAPED",
	TokNewline:          "NEWLINE",
	TokEnd:              "END",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is an immutable (kind, lexeme, line) triple. Line is 1-based and
// reflects the source line on which the match started.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
}
