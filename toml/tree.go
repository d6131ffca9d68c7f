package toml

import "strings"

// =========================
// DocumentTree
// =========================
//
// DocumentTree is a nested-map builder with a movable insertion cursor.
// After every public call the cursor points at a table (never an array)
// where the next key-value belongs.

// dotPlaceholder stands in for a literal '.' inside a quoted key segment
// while a dotted table-header path is being assembled and re-split, so a
// key like "tater.man" is never mistaken for two path segments.
const dotPlaceholder = "\x00DOT\x00"

// escapeKey hides literal dots inside a single key segment before it is
// joined into a dotted path.
func escapeKey(name string) string {
	return strings.ReplaceAll(name, ".", dotPlaceholder)
}

// unescapeKey reverses escapeKey once a path has been split back into
// segments.
func unescapeKey(name string) string {
	return strings.ReplaceAll(name, dotPlaceholder, ".")
}

type DocumentTree struct {
	root  *Table
	cur   *Table
	stack []*Table
}

// NewDocumentTree returns a tree whose cursor starts at its (empty) root.
func NewDocumentTree() *DocumentTree {
	root := NewTable()
	return &DocumentTree{root: root, cur: root}
}

// Root returns the finalized root table.
func (t *DocumentTree) Root() *Table { return t.root }

// putValue sets name to value in the table the cursor currently points
// at.
func (t *DocumentTree) putValue(name string, value *Value) {
	t.cur.Items[name] = value
}

// enterTable resets the cursor to root and descends through path's
// dotted segments, creating any missing intermediate table. If a
// segment already names a live array-of-tables, traversal additionally
// drops into that array's last element before continuing — this is how
// `[fruits.physical]` lands inside the most recent `[[fruits]]` element.
func (t *DocumentTree) enterTable(path string) {
	t.cur = t.root
	for _, rawSeg := range strings.Split(path, ".") {
		t.descendCreate(unescapeKey(rawSeg))
	}
}

// descendCreate moves the cursor into seg under the current table,
// creating an empty table there if absent, and drops into the tail
// element if seg already denotes an array-of-tables.
func (t *DocumentTree) descendCreate(seg string) {
	existing, ok := t.cur.Items[seg]
	if !ok {
		next := NewTable()
		t.cur.Items[seg] = tableValue(next)
		t.cur = next
		return
	}
	switch existing.Kind {
	case KindTable:
		t.cur = existing.Table
	case KindArray:
		last := existing.Array[len(existing.Array)-1]
		t.cur = last.Table
	default:
		// The KeyRegistry is responsible for rejecting any path that
		// would collide with a non-table, non-array value before the
		// parser ever calls enterTable/appendArrayElement with it.
		next := NewTable()
		t.cur.Items[seg] = tableValue(next)
		t.cur = next
	}
}

// beginInlineTable pushes the current cursor and descends into a fresh
// table stored under name.
func (t *DocumentTree) beginInlineTable(name string) {
	t.stack = append(t.stack, t.cur)
	next := NewTable()
	t.cur.Items[name] = tableValue(next)
	t.cur = next
}

// endInlineTable pops the cursor saved by the matching beginInlineTable.
func (t *DocumentTree) endInlineTable() {
	n := len(t.stack)
	t.cur = t.stack[n-1]
	t.stack = t.stack[:n-1]
}

// appendArrayElement behaves like enterTable over path's parent segments
// then, at the final segment, appends a new empty table to the
// array-of-tables there (creating the array if this is its first
// element) and descends into that new element.
func (t *DocumentTree) appendArrayElement(path string) {
	segs := strings.Split(path, ".")
	t.cur = t.root
	for _, rawSeg := range segs[:len(segs)-1] {
		t.descendCreate(unescapeKey(rawSeg))
	}

	last := unescapeKey(segs[len(segs)-1])
	newTbl := NewTable()
	existing, ok := t.cur.Items[last]
	var arr []*Value
	if ok && existing.Kind == KindArray {
		arr = existing.Array
	}
	arr = append(arr, tableValue(newTbl))
	t.cur.Items[last] = arrayValue(arr)
	t.cur = newTbl
}
