package model

import (
	"fmt"

	"github.com/arloliu/elfeat/errs"
)

// Constant is a named value declared in a Table.
type Constant[P Integer] struct {
	Name  string
	Value P
}

// Table is an ordered set of named constants of one integer width.
//
// Several names may share a value; lookups by value return the first declared
// name. A nil *Table behaves as an empty table.
type Table[P Integer] struct {
	name    string
	entries []Constant[P]
	byName  map[string]P
	byValue map[P]string
	mask    P
	open    bool
}

// NewTable creates a table named name holding entries in declaration order.
//
// It panics on an empty or duplicate constant name, since tables are declared
// once at package initialization.
func NewTable[P Integer](name string, entries ...Constant[P]) *Table[P] {
	t := &Table[P]{
		name:    name,
		entries: make([]Constant[P], len(entries)),
		byName:  make(map[string]P, len(entries)),
		byValue: make(map[P]string, len(entries)),
	}
	copy(t.entries, entries)

	for _, e := range entries {
		if e.Name == "" {
			panic(fmt.Sprintf("model: table %s: %v", name, errs.ErrEmptyName))
		}
		if _, dup := t.byName[e.Name]; dup {
			panic(fmt.Sprintf("model: table %s: %s: %v", name, e.Name, errs.ErrDuplicateName))
		}
		t.byName[e.Name] = e.Value
		if _, seen := t.byValue[e.Value]; !seen {
			t.byValue[e.Value] = e.Name
		}
		t.mask |= e.Value
	}

	return t
}

// Name returns the table name.
func (t *Table[P]) Name() string {
	if t == nil {
		return ""
	}

	return t.name
}

// Len returns the number of declared constants.
func (t *Table[P]) Len() int {
	if t == nil {
		return 0
	}

	return len(t.entries)
}

// Entries returns a copy of the declared constants in declaration order.
func (t *Table[P]) Entries() []Constant[P] {
	if t == nil {
		return nil
	}

	out := make([]Constant[P], len(t.entries))
	copy(out, t.entries)

	return out
}

// Lookup returns the value declared under name.
func (t *Table[P]) Lookup(name string) (P, bool) {
	if t == nil {
		return 0, false
	}
	v, ok := t.byName[name]

	return v, ok
}

// NameOf returns the first declared name whose value equals v.
func (t *Table[P]) NameOf(v P) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.byValue[v]

	return name, ok
}

// Contains reports whether v equals a declared constant.
func (t *Table[P]) Contains(v P) bool {
	_, ok := t.NameOf(v)
	return ok
}

// Mask returns the union of all declared values.
func (t *Table[P]) Mask() P {
	if t == nil {
		return 0
	}

	return t.mask
}

// Open returns a table with the same constants that places no constraint on
// Values: every Value of an open table is sane, while the names still serve
// lookups and display. Flags ignore openness.
func (t *Table[P]) Open() *Table[P] {
	o := *t
	o.open = true

	return &o
}

// IsOpen reports whether t constrains its Values.
func (t *Table[P]) IsOpen() bool {
	return t != nil && t.open
}

// Value wraps raw as a Value bound to t.
func (t *Table[P]) Value(raw P) Value[P] {
	return Value[P]{raw: raw, table: t}
}

// Const returns the Value declared under name. It panics on an unknown name
// and is meant for package-level constant declarations.
func (t *Table[P]) Const(name string) Value[P] {
	v, ok := t.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("model: table %s: %s: %v", t.Name(), name, errs.ErrUnknownConstant))
	}

	return t.Value(v)
}

// Flags wraps raw as a Flags bound to t.
func (t *Table[P]) Flags(raw P) Flags[P] {
	return Flags[P]{raw: raw, table: t}
}

// FlagsOf returns the Flags with exactly the named bits set.
func (t *Table[P]) FlagsOf(names ...string) (Flags[P], error) {
	f := t.Flags(0)
	for _, name := range names {
		if _, err := f.SetName(name, true); err != nil {
			return Flags[P]{}, err
		}
	}

	return f, nil
}
