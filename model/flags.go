package model

import (
	"fmt"
	"strings"

	"github.com/arloliu/elfeat/errs"
)

// Flags is a bit set whose named masks are declared in a Table.
//
// Mask-based accessors operate on raw bits and accept any mask. Name-based
// accessors resolve the name through the table and fail with
// errs.ErrUnknownConstant when it is not declared. Index-based accessors
// address a single bit; indices past the width of P are ignored.
type Flags[P Integer] struct {
	raw   P
	table *Table[P]
}

// Raw returns the underlying integer.
func (f Flags[P]) Raw() P { return f.raw }

// Table returns the table f is bound to.
func (f Flags[P]) Table() *Table[P] { return f.table }

// Get reports whether any bit of mask is set.
func (f Flags[P]) Get(mask P) bool {
	return f.raw&mask != 0
}

// Set sets or clears the bits of mask and returns the previous Get(mask).
func (f *Flags[P]) Set(mask P, on bool) bool {
	prev := f.Get(mask)
	if on {
		f.raw |= mask
	} else {
		f.raw &^= mask
	}

	return prev
}

// On sets the bits of mask and returns the previous state.
func (f *Flags[P]) On(mask P) bool { return f.Set(mask, true) }

// Off clears the bits of mask and returns the previous state.
func (f *Flags[P]) Off(mask P) bool { return f.Set(mask, false) }

// Toggle flips the bits of mask and returns the previous state.
func (f *Flags[P]) Toggle(mask P) bool {
	prev := f.Get(mask)
	f.raw ^= mask

	return prev
}

func bitAt[P Integer](i uint) (P, bool) {
	if i >= uint(8*Width[P]()) { //nolint: gosec
		return 0, false
	}

	return P(1) << i, true
}

// GetAt reports whether bit i is set.
func (f Flags[P]) GetAt(i uint) bool {
	m, ok := bitAt[P](i)
	return ok && f.Get(m)
}

// SetAt sets or clears bit i and returns its previous state.
func (f *Flags[P]) SetAt(i uint, on bool) bool {
	m, ok := bitAt[P](i)
	if !ok {
		return false
	}

	return f.Set(m, on)
}

// OnAt sets bit i and returns its previous state.
func (f *Flags[P]) OnAt(i uint) bool { return f.SetAt(i, true) }

// OffAt clears bit i and returns its previous state.
func (f *Flags[P]) OffAt(i uint) bool { return f.SetAt(i, false) }

// ToggleAt flips bit i and returns its previous state.
func (f *Flags[P]) ToggleAt(i uint) bool {
	m, ok := bitAt[P](i)
	if !ok {
		return false
	}

	return f.Toggle(m)
}

func (f Flags[P]) lookup(name string) (P, error) {
	m, ok := f.table.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%s: flag %q: %w", f.table.Name(), name, errs.ErrUnknownConstant)
	}

	return m, nil
}

// Has reports whether the flag declared under name is set.
// An undeclared name is never set.
func (f Flags[P]) Has(name string) bool {
	m, err := f.lookup(name)
	return err == nil && f.Get(m)
}

// SetName sets or clears the flag declared under name and returns its
// previous state.
func (f *Flags[P]) SetName(name string, on bool) (bool, error) {
	m, err := f.lookup(name)
	if err != nil {
		return false, err
	}

	return f.Set(m, on), nil
}

// ToggleName flips the flag declared under name and returns its previous state.
func (f *Flags[P]) ToggleName(name string) (bool, error) {
	m, err := f.lookup(name)
	if err != nil {
		return false, err
	}

	return f.Toggle(m), nil
}

// IsZero reports whether no bit at all is set.
func (f Flags[P]) IsZero() bool {
	return f.raw == 0
}

// IsEmpty reports whether no declared flag is set. Undeclared bits are
// ignored, so a value can be empty without being zero.
func (f Flags[P]) IsEmpty() bool {
	return f.raw&f.table.Mask() == 0
}

// Undeclared returns the set bits not covered by any declared flag.
func (f Flags[P]) Undeclared() P {
	return f.raw &^ f.table.Mask()
}

// Sane reports whether every set bit is covered by a declared flag.
func (f Flags[P]) Sane() bool {
	return f.Undeclared() == 0
}

// Names returns the declared flags that are set, in declaration order.
// Each set bit is attributed to the first flag covering it.
func (f Flags[P]) Names() []string {
	if f.table == nil {
		return nil
	}

	rest := f.raw
	var names []string
	for _, e := range f.table.entries {
		if e.Value != 0 && rest&e.Value != 0 {
			names = append(names, e.Name)
			rest &^= e.Value
		}
	}

	return names
}

// String renders f as (A | B | Unknown(raw)), where Unknown carries the bits
// left after removing every named flag.
func (f Flags[P]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')

	rest := f.raw
	sep := ""
	if f.table != nil {
		for _, e := range f.table.entries {
			if e.Value == 0 || rest&e.Value == 0 {
				continue
			}
			sb.WriteString(sep)
			sb.WriteString(e.Name)
			sep = " | "
			rest &^= e.Value
		}
	}
	if rest != 0 {
		fmt.Fprintf(&sb, "%sUnknown(%s)", sep, formatRaw(rest))
	}
	sb.WriteByte(')')

	return sb.String()
}

// Or returns the union of f and o, keeping f's table.
func (f Flags[P]) Or(o Flags[P]) Flags[P] {
	return Flags[P]{raw: f.raw | o.raw, table: f.table}
}

// And returns the intersection of f and o, keeping f's table.
func (f Flags[P]) And(o Flags[P]) Flags[P] {
	return Flags[P]{raw: f.raw & o.raw, table: f.table}
}

// Not returns the bitwise complement of f.
func (f Flags[P]) Not() Flags[P] {
	return Flags[P]{raw: ^f.raw, table: f.table}
}

// FlagsType is the descriptor of a Flags bound to a table.
type FlagsType[P Integer] struct {
	table *Table[P]
}

var (
	_ Type[Flags[uint32]]   = FlagsType[uint32]{}
	_ Putter[Flags[uint32]] = FlagsType[uint32]{}
)

// Bits returns the descriptor for Flags of t.
func Bits[P Integer](t *Table[P]) FlagsType[P] {
	return FlagsType[P]{table: t}
}

func (t FlagsType[P]) Name() string { return t.table.Name() }
func (t FlagsType[P]) Size() int { return Width[P]() }

func (t FlagsType[P]) Decode(b []byte) Flags[P] {
	return t.table.Flags(decodeInt[P](b))
}

func (t FlagsType[P]) Append(dst []byte, v Flags[P]) []byte {
	return appendInt(dst, v.raw)
}

func (t FlagsType[P]) Put(b []byte, v Flags[P]) { putInt(b, v.raw) }

// Sane judges v against the descriptor's table, not the table v carries.
func (t FlagsType[P]) Sane(v Flags[P]) bool {
	return t.table.Flags(v.raw).Sane()
}

// Table returns the descriptor's table.
func (t FlagsType[P]) Table() *Table[P] { return t.table }
