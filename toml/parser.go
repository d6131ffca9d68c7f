package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// =========================
// Parser
// =========================
//
// Recursive-descent grammar driver. Converts a token sequence into a
// DocumentTree while a KeyRegistry enforces uniqueness and hierarchy.

type parser struct {
	cur  *TokenCursor
	reg  *KeyRegistry
	tree *DocumentTree
}

// parseTokens drives the top-level grammar loop to completion and
// returns the finalized root table.
func parseTokens(tokens []Token) (*Table, error) {
	p := &parser{
		cur:  newTokenCursor(tokens),
		reg:  NewKeyRegistry(),
		tree: NewDocumentTree(),
	}
	for p.cur.hasMore() {
		if err := p.parseTopLevelItem(); err != nil {
			// Errors raised without a position take the line of the token
			// the parser stopped at.
			if pe, ok := err.(*ParseError); ok && pe.Line == 0 {
				pe.Line = p.cur.current().Line
			}
			return nil, err
		}
	}
	return p.tree.Root(), nil
}

func (p *parser) parseTopLevelItem() error {
	switch {
	case p.cur.peek(TokHash):
		p.skipComment()
		return nil
	case p.cur.peekSequence(TokLBracket, TokLBracket):
		return p.parseArrayTableHeader()
	case p.cur.peek(TokLBracket):
		return p.parseTableHeader()
	case p.cur.peekAny(TokQuote, TokUnquotedKey, TokInteger):
		return p.parseKeyValueLine()
	case p.cur.peekAny(TokSpace, TokNewline):
		p.cur.advance()
		return nil
	default:
		tok := p.cur.current()
		return &ParseError{
			Kind:    ErrUnexpectedToken,
			Line:    tok.Line,
			Token:   tok.Lexeme,
			Message: "expected comment or key, got " + tok.Kind.String(),
		}
	}
}

// skipComment consumes the HASH and everything up to (but not including)
// the terminating NEWLINE/END.
func (p *parser) skipComment() {
	p.cur.advance()
	for !p.cur.peekAny(TokNewline, TokEnd) {
		p.cur.advance()
	}
}

// expectLineEnd allows trailing SPACE and a HASH-comment, then requires
// NEWLINE or END.
func (p *parser) expectLineEnd() error {
	p.cur.skipWhile(TokSpace)
	if p.cur.peek(TokHash) {
		p.skipComment()
	}
	if !p.cur.peekAny(TokNewline, TokEnd) {
		tok := p.cur.current()
		return &ParseError{Kind: ErrUnexpectedToken, Line: tok.Line, Token: tok.Lexeme, Message: "expected newline after entry, got " + tok.Kind.String()}
	}
	return nil
}

// =========================
// Key names
// =========================

func (p *parser) parseKeyName() (string, error) {
	tok := p.cur.current()
	switch tok.Kind {
	case TokUnquotedKey:
		p.cur.advance()
		return tok.Lexeme, nil
	case TokInteger:
		p.cur.advance()
		return normalizeIntegerKey(tok.Lexeme, tok.Line)
	case TokQuote:
		v, err := p.parseBasicString()
		if err != nil {
			return "", err
		}
		return v.Str, nil
	default:
		return "", &ParseError{Kind: ErrUnexpectedToken, Line: tok.Line, Token: tok.Lexeme, Message: "expected key, got " + tok.Kind.String()}
	}
}

// parseDottedPath parses one or more dot-separated key names (used by
// table and array-of-tables headers), escaping each segment before
// joining so a quoted key containing a literal '.' survives intact.
func (p *parser) parseDottedPath() (string, error) {
	var segs []string
	for {
		p.cur.skipWhile(TokSpace)
		name, err := p.parseKeyName()
		if err != nil {
			return "", err
		}
		segs = append(segs, escapeKey(name))
		p.cur.skipWhile(TokSpace)
		if p.cur.peek(TokDot) {
			p.cur.advance()
			continue
		}
		break
	}
	return strings.Join(segs, "."), nil
}

// =========================
// Headers
// =========================

func (p *parser) parseTableHeader() error {
	p.cur.advance() // [
	fullPath, err := p.parseDottedPath()
	if err != nil {
		return err
	}
	if !p.reg.isValidTableKey(fullPath) {
		return &ParseError{Kind: ErrSyntaxError, Message: fmt.Sprintf("table %q already defined or conflicts with an existing key", fullPath)}
	}
	if err := p.reg.addTableKey(fullPath); err != nil {
		return err
	}
	p.tree.enterTable(fullPath)
	if _, err := p.cur.expect(TokRBracket); err != nil {
		return err
	}
	return p.expectLineEnd()
}

func (p *parser) parseArrayTableHeader() error {
	p.cur.advance() // [
	p.cur.advance() // [
	fullPath, err := p.parseDottedPath()
	if err != nil {
		return err
	}
	if !p.reg.isValidArrayTableKey(fullPath) {
		return &ParseError{Kind: ErrInvalidArrayTableKey, Message: fmt.Sprintf("key %q already defined and is not an array of tables", fullPath)}
	}
	if p.reg.isTableImplicitFromArrayTable(fullPath) {
		return &ParseError{Kind: ErrSyntaxError, Message: fmt.Sprintf("%q was already implicitly defined as a table", fullPath)}
	}
	if err := p.reg.addArrayTableKey(fullPath); err != nil {
		return err
	}
	p.tree.appendArrayElement(fullPath)
	if _, err := p.cur.expect(TokRBracket); err != nil {
		return err
	}
	if _, err := p.cur.expect(TokRBracket); err != nil {
		return err
	}
	return p.expectLineEnd()
}

// =========================
// Key-value assignments
// =========================

func (p *parser) parseKeyValueLine() error {
	name, err := p.parseKeyName()
	if err != nil {
		return err
	}
	p.cur.skipWhile(TokSpace)
	if _, err := p.cur.expect(TokEqual); err != nil {
		return err
	}
	p.cur.skipWhile(TokSpace)

	switch {
	case p.cur.peek(TokLBrace):
		if err := p.parseInlineTable(name); err != nil {
			return err
		}
	case p.cur.peek(TokLBracket):
		val, err := p.parseArray()
		if err != nil {
			return err
		}
		if err := p.registerAndStore(name, val); err != nil {
			return err
		}
	default:
		val, err := p.parseSimpleValue()
		if err != nil {
			return err
		}
		if err := p.registerAndStore(name, val); err != nil {
			return err
		}
	}
	return p.expectLineEnd()
}

func (p *parser) registerAndStore(name string, val *Value) error {
	if !p.reg.isValidKey(name) {
		return &ParseError{Kind: ErrDuplicateKey, Message: fmt.Sprintf("duplicate key %q", name)}
	}
	if err := p.reg.addKey(name); err != nil {
		return err
	}
	p.tree.putValue(name, val)
	return nil
}

// =========================
// Inline tables
// =========================

func (p *parser) parseInlineTable(name string) error {
	if !p.reg.isValidInlineTable(name) {
		return &ParseError{Kind: ErrDuplicateKey, Message: fmt.Sprintf("duplicate key %q", name)}
	}
	if err := p.reg.addInlineTableKey(name); err != nil {
		return err
	}

	// Interior keys must compose under the inline table's own path, not
	// the enclosing context's — otherwise a key reused inside the inline
	// table collides with an unrelated key of the same name outside it.
	savedTable, savedArray := p.reg.currentTable, p.reg.currentArrayOfTable
	if savedTable != "" {
		p.reg.currentTable = savedTable + "." + name
	} else {
		p.reg.currentTable = name
	}
	defer func() { p.reg.currentTable, p.reg.currentArrayOfTable = savedTable, savedArray }()

	p.tree.beginInlineTable(name)
	p.cur.advance() // {

	for {
		p.cur.skipWhile(TokSpace)
		if p.cur.peekAny(TokNewline, TokEnd) {
			return &ParseError{Kind: ErrSyntaxError, Line: p.cur.current().Line, Message: "newline not allowed inside inline table"}
		}
		if p.cur.peek(TokRBrace) {
			break
		}
		kname, err := p.parseKeyName()
		if err != nil {
			return err
		}
		p.cur.skipWhile(TokSpace)
		if _, err := p.cur.expect(TokEqual); err != nil {
			return err
		}
		p.cur.skipWhile(TokSpace)
		if p.cur.peekAny(TokNewline, TokEnd) {
			return &ParseError{Kind: ErrSyntaxError, Line: p.cur.current().Line, Message: "newline not allowed inside inline table"}
		}

		switch {
		case p.cur.peek(TokLBrace):
			if err := p.parseInlineTable(kname); err != nil {
				return err
			}
		case p.cur.peek(TokLBracket):
			val, err := p.parseArray()
			if err != nil {
				return err
			}
			if err := p.registerAndStore(kname, val); err != nil {
				return err
			}
		default:
			val, err := p.parseSimpleValue()
			if err != nil {
				return err
			}
			if err := p.registerAndStore(kname, val); err != nil {
				return err
			}
		}

		p.cur.skipWhile(TokSpace)
		if p.cur.peek(TokComma) {
			p.cur.advance()
			continue
		}
		break
	}

	if _, err := p.cur.expect(TokRBrace); err != nil {
		return err
	}
	p.tree.endInlineTable()
	return nil
}

// =========================
// Arrays
// =========================

func (p *parser) skipArraySeparators() {
	for {
		if p.cur.peekAny(TokSpace, TokNewline) {
			p.cur.advance()
			continue
		}
		if p.cur.peek(TokHash) {
			p.skipComment()
			continue
		}
		break
	}
}

func (p *parser) parseArray() (*Value, error) {
	p.cur.advance() // [
	var elems []*Value
	var leaderKind Kind
	haveLeader := false

	for {
		p.skipArraySeparators()
		if p.cur.peek(TokRBracket) {
			break
		}
		var elem *Value
		var err error
		if p.cur.peek(TokLBracket) {
			elem, err = p.parseArray()
		} else {
			elem, err = p.parseSimpleValue()
		}
		if err != nil {
			return nil, err
		}
		if !haveLeader {
			leaderKind = elem.Kind
			haveLeader = true
		} else if elem.Kind != leaderKind {
			return nil, &ParseError{
				Kind:    ErrSyntaxError,
				Message: fmt.Sprintf("Data types cannot be mixed, found %s", describeValue(elem)),
			}
		}
		elems = append(elems, elem)

		p.skipArraySeparators()
		if p.cur.peek(TokComma) {
			p.cur.advance()
			continue
		}
		break
	}

	p.skipArraySeparators()
	if _, err := p.cur.expect(TokRBracket); err != nil {
		return nil, err
	}
	return arrayValue(elems), nil
}

// describeValue renders the literal text of a scalar value for the
// mixed-array-types error message, which names the offending literal
// (e.g. `"42"`) so the error is actionable without a debugger.
func describeValue(v *Value) string {
	switch v.Kind {
	case KindString:
		return strconv.Quote(v.Str)
	case KindInteger:
		return strconv.Quote(strconv.FormatInt(v.Int, 10))
	case KindFloat:
		return strconv.Quote(strconv.FormatFloat(v.Float, 'g', -1, 64))
	case KindBoolean:
		return strconv.Quote(strconv.FormatBool(v.Bool))
	default:
		return v.Kind.String()
	}
}

// =========================
// Simple values
// =========================

func (p *parser) parseSimpleValue() (*Value, error) {
	tok := p.cur.current()
	switch tok.Kind {
	case TokBoolean:
		p.cur.advance()
		return boolValue(tok.Lexeme == "true"), nil
	case TokInteger:
		p.cur.advance()
		return parseIntegerLiteral(tok.Lexeme, tok.Line)
	case TokFloat:
		p.cur.advance()
		return parseFloatLiteral(tok.Lexeme, tok.Line)
	case TokDatetime:
		p.cur.advance()
		return parseDatetimeLiteral(tok.Lexeme, tok.Line)
	case TokQuote:
		return p.parseBasicString()
	case TokTripleQuote:
		return p.parseMultilineBasicString()
	case TokApostrophe:
		return p.parseLiteralString()
	case TokTripleApostrophe:
		return p.parseMultilineLiteralString()
	default:
		return nil, &ParseError{Kind: ErrUnexpectedToken, Line: tok.Line, Token: tok.Lexeme, Message: "expected value, got " + tok.Kind.String()}
	}
}

// =========================
// Strings
// =========================

// translateEscapedChar maps an ESCAPED_CHAR lexeme to its decoded form.
// \b is deliberately NOT decoded to U+0008: it stays the two literal
// characters backslash+b, for round-trip fidelity with Builder's own
// escape table.
func translateEscapedChar(lexeme string) string {
	switch lexeme {
	case `\b`:
		return `\b`
	case `\t`:
		return "\t"
	case `\n`:
		return "\n"
	case `\f`:
		return "\f"
	case `\r`:
		return "\r"
	case `\"`:
		return `"`
	case `\\`:
		return `\`
	}
	if strings.HasPrefix(lexeme, `\u`) || strings.HasPrefix(lexeme, `\U`) {
		v, err := strconv.ParseUint(lexeme[2:], 16, 32)
		if err == nil {
			return string(rune(v))
		}
	}
	return lexeme
}

func (p *parser) parseBasicString() (*Value, error) {
	p.cur.advance() // "
	var b strings.Builder
	for {
		tok := p.cur.current()
		switch tok.Kind {
		case TokQuote:
			p.cur.advance()
			return stringValue(b.String()), nil
		case TokEscape:
			return nil, newParseErr(ErrSyntaxError, tok.Line, "bare backslash in string")
		case TokNewline, TokEnd:
			return nil, newParseErr(ErrSyntaxError, tok.Line, "unterminated string")
		case TokEscapedChar:
			b.WriteString(translateEscapedChar(tok.Lexeme))
			p.cur.advance()
		default:
			b.WriteString(tok.Lexeme)
			p.cur.advance()
		}
	}
}

func (p *parser) parseMultilineBasicString() (*Value, error) {
	p.cur.advance() // """
	if p.cur.peek(TokNewline) {
		p.cur.advance()
	}
	var b strings.Builder
	for {
		tok := p.cur.current()
		switch tok.Kind {
		case TokTripleQuote:
			p.cur.advance()
			return stringValue(b.String()), nil
		case TokEnd:
			return nil, newParseErr(ErrSyntaxError, tok.Line, "unterminated multi-line string")
		case TokEscape:
			p.cur.advance()
			for p.cur.peekAny(TokSpace, TokNewline, TokEscape) {
				p.cur.advance()
			}
		case TokEscapedChar:
			b.WriteString(translateEscapedChar(tok.Lexeme))
			p.cur.advance()
		default:
			b.WriteString(tok.Lexeme)
			p.cur.advance()
		}
	}
}

func (p *parser) parseLiteralString() (*Value, error) {
	p.cur.advance() // '
	var b strings.Builder
	for {
		tok := p.cur.current()
		switch tok.Kind {
		case TokApostrophe:
			p.cur.advance()
			return stringValue(b.String()), nil
		case TokNewline, TokEnd:
			return nil, newParseErr(ErrSyntaxError, tok.Line, "unterminated literal string")
		default:
			b.WriteString(tok.Lexeme)
			p.cur.advance()
		}
	}
}

func (p *parser) parseMultilineLiteralString() (*Value, error) {
	p.cur.advance() // '''
	if p.cur.peek(TokNewline) {
		p.cur.advance()
	}
	var b strings.Builder
	for {
		tok := p.cur.current()
		switch tok.Kind {
		case TokTripleApostrophe:
			p.cur.advance()
			return stringValue(b.String()), nil
		case TokEnd:
			return nil, newParseErr(ErrSyntaxError, tok.Line, "unterminated multi-line literal string")
		default:
			b.WriteString(tok.Lexeme)
			p.cur.advance()
		}
	}
}
