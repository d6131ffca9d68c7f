package toml

import (
	"strconv"
	"strings"
)

// =========================
// KeyRegistry
// =========================
//
// KeyRegistry is the uniqueness & hierarchy ledger shared by the parser
// and the builder. It is a plain value type — never a package global —
// so a Parse call and a Builder each own an independent instance.

type KeyRegistry struct {
	keys                   map[string]bool
	tables                 map[string]bool
	arraysOfTables         map[string]int
	implicitFromArrayTable map[string]bool
	currentTable           string
	currentArrayOfTable    string
}

// NewKeyRegistry constructs an empty registry.
func NewKeyRegistry() *KeyRegistry {
	return &KeyRegistry{
		keys:                   make(map[string]bool),
		tables:                 make(map[string]bool),
		arraysOfTables:         make(map[string]int),
		implicitFromArrayTable: make(map[string]bool),
	}
}

// composed implements the path-composition rule shared by every
// operation below: the fully qualified path of name under the current
// table / array-of-tables context.
func (r *KeyRegistry) composed(name string) string {
	var parts []string
	if r.currentArrayOfTable != "" {
		idx := r.arraysOfTables[r.currentArrayOfTable]
		parts = append(parts, r.currentArrayOfTable+strconv.Itoa(idx))
	}
	if r.currentTable != "" {
		parts = append(parts, r.currentTable)
	}
	if name != "" {
		parts = append(parts, name)
	}
	return strings.Join(parts, ".")
}

// isValidKey reports whether name's composed path is still unused.
func (r *KeyRegistry) isValidKey(name string) bool {
	return !r.keys[r.composed(name)]
}

// addKey registers name's composed path, failing INVALID_KEY on
// duplicate.
func (r *KeyRegistry) addKey(name string) error {
	if !r.isValidKey(name) {
		return &ParseError{Kind: ErrInvalidKey, Message: "key " + quoteLexeme(r.composed(name)) + " already defined"}
	}
	r.keys[r.composed(name)] = true
	return nil
}

// nearestArrayOfTableAncestor walks name's dotted path from the fullest
// prefix down to its first segment and returns the first prefix already
// present in arraysOfTables, or "" if none is.
func (r *KeyRegistry) nearestArrayOfTableAncestor(name string) string {
	segs := strings.Split(name, ".")
	for i := len(segs); i >= 1; i-- {
		candidate := strings.Join(segs[:i], ".")
		if _, ok := r.arraysOfTables[candidate]; ok {
			return candidate
		}
	}
	return ""
}

// isValidTableKey performs the [name] table-header validity check
// without mutating registry state.
func (r *KeyRegistry) isValidTableKey(name string) bool {
	ancestor := r.nearestArrayOfTableAncestor(name)
	if ancestor == name {
		return false
	}
	savedTable, savedArray := r.currentTable, r.currentArrayOfTable
	r.currentTable = ""
	r.currentArrayOfTable = ancestor
	valid := r.isValidKey(name)
	r.currentTable, r.currentArrayOfTable = savedTable, savedArray
	return valid
}

// addTableKey runs the full table-key protocol for a `[name]` header,
// persisting currentTable/currentArrayOfTable on success.
func (r *KeyRegistry) addTableKey(name string) error {
	ancestor := r.nearestArrayOfTableAncestor(name)
	if ancestor == name {
		return &ParseError{Kind: ErrInvalidTableKey, Message: "cannot redeclare array of tables " + quoteLexeme(name) + " as a table"}
	}
	r.currentTable = ""
	r.currentArrayOfTable = ancestor
	if !r.isValidKey(name) {
		return &ParseError{Kind: ErrInvalidTableKey, Message: "table " + quoteLexeme(name) + " already defined"}
	}
	if err := r.addKey(name); err != nil {
		return &ParseError{Kind: ErrInvalidTableKey, Message: err.Error()}
	}
	r.currentTable = name
	r.tables[name] = true
	return nil
}

// isValidInlineTable/addInlineTableKey are plain key operations under
// whatever table/array-of-table context is already active; inline
// tables are ordinary keys whose value happens to be a table.
func (r *KeyRegistry) isValidInlineTable(name string) bool {
	return r.isValidKey(name)
}

func (r *KeyRegistry) addInlineTableKey(name string) error {
	return r.addKey(name)
}

// isValidArrayTableKey reports whether name may be used for a new or
// repeated `[[name]]` header: either it is entirely fresh, or it is
// already a live array-of-tables (a new element is being appended).
func (r *KeyRegistry) isValidArrayTableKey(name string) bool {
	_, inArrays := r.arraysOfTables[name]
	inKeys := r.keys[name]
	return (!inArrays && !inKeys) || (inArrays && inKeys)
}

// addArrayTableKey runs the array-of-tables protocol for `[[name]]`.
func (r *KeyRegistry) addArrayTableKey(name string) error {
	if !r.isValidArrayTableKey(name) {
		return &ParseError{Kind: ErrInvalidArrayTableKey, Message: "key " + quoteLexeme(name) + " already defined and is not an array of tables"}
	}
	r.currentTable = ""
	r.currentArrayOfTable = ""
	if _, exists := r.arraysOfTables[name]; !exists {
		if err := r.addKey(name); err != nil {
			return &ParseError{Kind: ErrInvalidArrayTableKey, Message: err.Error()}
		}
		r.arraysOfTables[name] = 0
	} else {
		r.arraysOfTables[name]++
	}
	r.currentArrayOfTable = name

	segs := strings.Split(name, ".")
	for i := 1; i < len(segs); i++ {
		r.implicitFromArrayTable[strings.Join(segs[:i], ".")] = true
	}
	return nil
}

func (r *KeyRegistry) isRegisteredAsTableKey(name string) bool {
	return r.tables[name]
}

func (r *KeyRegistry) isRegisteredAsArrayTableKey(name string) bool {
	_, ok := r.arraysOfTables[name]
	return ok
}

func (r *KeyRegistry) isTableImplicitFromArrayTable(name string) bool {
	if !r.implicitFromArrayTable[name] {
		return false
	}
	_, isArray := r.arraysOfTables[name]
	return !isArray
}
