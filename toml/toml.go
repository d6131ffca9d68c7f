// Package toml implements a TOML v0.4.0 parser and builder: a
// scanner-driven, recursive-descent parser that turns UTF-8 text into a
// typed tree of Values, and a registry-backed Builder that emits TOML
// text from the same tree shape.
//
// Scope:
// - TOML v0.4.0 core grammar
// - Explicit typed tree (Table / Value, arrays homogeneous)
// - A shared KeyRegistry enforcing uniqueness/hierarchy for both parser
//   and builder
// - Deterministic, typed errors
//
// Non-goals (by design):
// - Schema validation of the resulting tree
// - Comment / formatting / key-ordering round-trip
// - TOML versions newer than v0.4.0
// - A streaming / incremental parse API
package toml

import (
	"os"
	"strings"
)

// Parse parses TOML text into a root Table. An empty (after trimming
// whitespace) input returns (nil, nil).
//
// Go has no way to change a function's return type on a runtime bool, so
// the object-style view is a separate, explicit step the caller opts
// into by passing the returned root to AsObject. Parse's return value
// does not itself depend on asObject; the parameter is kept so the call
// site still documents the caller's intent.
func Parse(text string, asObject bool) (*Table, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	tokens, err := Scan(text)
	if err != nil {
		return nil, err
	}
	root, err := parseTokens(tokens)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// ParseFile reads path fully, then parses it exactly like Parse. Parse
// errors carry both the file path and the offending line.
func ParseFile(path string, asObject bool) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ParseError{Kind: ErrFileNotFound, File: path, Message: "file not found: " + path}
		}
		return nil, &ParseError{Kind: ErrFileNotReadable, File: path, Message: err.Error()}
	}
	if info.IsDir() {
		return nil, &ParseError{Kind: ErrFileNotReadable, File: path, Message: path + " is a directory"}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Kind: ErrFileNotReadable, File: path, Message: err.Error()}
	}
	root, err := Parse(string(data), asObject)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.File = path
			return nil, pe
		}
		return nil, &ParseError{Kind: ErrFileNotReadable, File: path, Message: err.Error()}
	}
	return root, nil
}

// AsObject wraps root in the Object view: the root's fields become typed
// getters; nested tables remain plain *Table values.
func AsObject(root *Table) *Object {
	return &Object{table: root}
}
