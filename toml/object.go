package toml

import "time"

// =========================
// Object view
// =========================
//
// Object is an "object-style" view: only the top-level table gets typed
// getters; anything nested stays a plain *Table, reached via GetTable.
// This is purely a convenience wrapper over a *Table — it owns no state
// of its own.

type Object struct {
	table *Table
}

// Table returns the underlying mapping-style table.
func (o *Object) Table() *Table { return o.table }

func (o *Object) get(key string) (*Value, bool) {
	if o == nil || o.table == nil {
		return nil, false
	}
	v, ok := o.table.Items[key]
	return v, ok
}

func (o *Object) GetString(key string) (string, bool) {
	v, ok := o.get(key)
	if !ok || v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}

func (o *Object) GetInt(key string) (int64, bool) {
	v, ok := o.get(key)
	if !ok || v.Kind != KindInteger {
		return 0, false
	}
	return v.Int, true
}

func (o *Object) GetFloat(key string) (float64, bool) {
	v, ok := o.get(key)
	if !ok || v.Kind != KindFloat {
		return 0, false
	}
	return v.Float, true
}

func (o *Object) GetBool(key string) (bool, bool) {
	v, ok := o.get(key)
	if !ok || v.Kind != KindBoolean {
		return false, false
	}
	return v.Bool, true
}

func (o *Object) GetTime(key string) (time.Time, bool) {
	v, ok := o.get(key)
	if !ok || v.Kind != KindDatetime {
		return time.Time{}, false
	}
	return v.Time, true
}

func (o *Object) GetArray(key string) ([]*Value, bool) {
	v, ok := o.get(key)
	if !ok || v.Kind != KindArray {
		return nil, false
	}
	return v.Array, true
}

func (o *Object) GetTable(key string) (*Table, bool) {
	v, ok := o.get(key)
	if !ok || v.Kind != KindTable {
		return nil, false
	}
	return v.Table, true
}
