package toml

import "fmt"

// =========================
// Error Model
// =========================

// ErrorKind closes the set of error categories this package raises.
type ErrorKind uint8

const (
	ErrInvalidUTF8 ErrorKind = iota
	ErrLexerParse
	ErrUnexpectedToken
	ErrSyntaxError
	ErrInvalidKey
	ErrInvalidTableKey
	ErrInvalidArrayTableKey
	ErrEmptyKey
	ErrDuplicateKey
	ErrDuplicateTableKey
	ErrDuplicateArrayTableKey
	ErrTableAlreadyDefinedAsArray
	ErrKeyDefinedAsImplicitTable
	ErrUnquotedKeyRequired
	ErrInvalidStringCharacters
	ErrMixedArrayTypes
	ErrUnsupportedDataType
	ErrFileNotFound
	ErrFileNotReadable
)

var errorKindNames = map[ErrorKind]string{
	ErrInvalidUTF8:                "INVALID_UTF8",
	ErrLexerParse:                 "LEXER_PARSE",
	ErrUnexpectedToken:            "UNEXPECTED_TOKEN",
	ErrSyntaxError:                "SYNTAX_ERROR",
	ErrInvalidKey:                 "INVALID_KEY",
	ErrInvalidTableKey:            "INVALID_TABLE_KEY",
	ErrInvalidArrayTableKey:       "INVALID_ARRAY_TABLE_KEY",
	ErrEmptyKey:                   "EMPTY_KEY",
	ErrDuplicateKey:               "DUPLICATE_KEY",
	ErrDuplicateTableKey:          "DUPLICATE_TABLE_KEY",
	ErrDuplicateArrayTableKey:     "DUPLICATE_ARRAY_TABLE_KEY",
	ErrTableAlreadyDefinedAsArray: "TABLE_ALREADY_DEFINED_AS_ARRAY",
	ErrKeyDefinedAsImplicitTable:  "KEY_DEFINED_AS_IMPLICIT_TABLE",
	ErrUnquotedKeyRequired:        "UNQUOTED_KEY_REQUIRED",
	ErrInvalidStringCharacters:    "INVALID_STRING_CHARACTERS",
	ErrMixedArrayTypes:            "MIXED_ARRAY_TYPES",
	ErrUnsupportedDataType:        "UNSUPPORTED_DATA_TYPE",
	ErrFileNotFound:               "FILE_NOT_FOUND",
	ErrFileNotReadable:            "FILE_NOT_READABLE",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseError is raised by the scanner and parser. Line and File are 0/""
// when not known; Token and Snippet are filled in only where useful.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Line    int
	File    string
	Token   string
	Snippet string
}

func (e *ParseError) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("toml: %s:%d: %s", e.File, e.Line, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("toml:%d: %s", e.Line, e.Message)
	default:
		return fmt.Sprintf("toml: %s", e.Message)
	}
}

// Is lets callers compare against the package-level sentinels below via
// errors.Is, matching purely on Kind.
func (e *ParseError) Is(target error) bool {
	other, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newParseErr(kind ErrorKind, line int, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

// Sentinels usable with errors.Is(err, toml.ErrSyntaxErrorSentinel). Only
// Kind is compared; Message/Line/File are ignored for the comparison.
var (
	ErrInvalidUTF8Sentinel          = &ParseError{Kind: ErrInvalidUTF8}
	ErrLexerParseSentinel           = &ParseError{Kind: ErrLexerParse}
	ErrUnexpectedTokenSentinel      = &ParseError{Kind: ErrUnexpectedToken}
	ErrSyntaxErrorSentinel          = &ParseError{Kind: ErrSyntaxError}
	ErrInvalidKeySentinel           = &ParseError{Kind: ErrInvalidKey}
	ErrInvalidTableKeySentinel      = &ParseError{Kind: ErrInvalidTableKey}
	ErrInvalidArrayTableKeySentinel = &ParseError{Kind: ErrInvalidArrayTableKey}
	ErrFileNotFoundSentinel         = &ParseError{Kind: ErrFileNotFound}
	ErrFileNotReadableSentinel      = &ParseError{Kind: ErrFileNotReadable}
)

// BuildError is raised by Builder. It never carries a line/file: builder
// calls are not positional in a source document.
type BuildError struct {
	Kind    ErrorKind
	Message string
	Key     string
}

func (e *BuildError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("toml build: %s: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("toml build: %s", e.Message)
}

func (e *BuildError) Is(target error) bool {
	other, ok := target.(*BuildError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newBuildErr(kind ErrorKind, key, format string, args ...any) *BuildError {
	return &BuildError{Kind: kind, Key: key, Message: fmt.Sprintf(format, args...)}
}
