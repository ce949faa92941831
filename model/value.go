package model

import (
	"fmt"
	"strconv"
)

// Value is an integer constrained to the constants of a Table.
//
// Values compare equal with == when they carry the same raw integer and the
// same table.
type Value[P Integer] struct {
	raw   P
	table *Table[P]
}

// Raw returns the underlying integer.
func (v Value[P]) Raw() P { return v.raw }

// Table returns the table v is bound to.
func (v Value[P]) Table() *Table[P] { return v.table }

// Is reports whether v equals the constant declared under name.
// An undeclared name never matches.
func (v Value[P]) Is(name string) bool {
	c, ok := v.table.Lookup(name)
	return ok && c == v.raw
}

// Name returns the first declared name matching v.
func (v Value[P]) Name() (string, bool) {
	return v.table.NameOf(v.raw)
}

// IsConstant reports whether v equals any declared constant.
func (v Value[P]) IsConstant() bool {
	return v.table.Contains(v.raw)
}

// Sane reports whether v is allowed. An empty or open table places no
// constraint on its values.
func (v Value[P]) Sane() bool {
	return v.table.Len() == 0 || v.table.IsOpen() || v.IsConstant()
}

// String renders v as NAME(raw) or Unknown(raw).
func (v Value[P]) String() string {
	if name, ok := v.Name(); ok {
		return fmt.Sprintf("%s(%s)", name, formatRaw(v.raw))
	}

	return fmt.Sprintf("Unknown(%s)", formatRaw(v.raw))
}

func formatRaw[P Integer](raw P) string {
	var zero P
	if ^zero < zero {
		return strconv.FormatInt(int64(raw), 10)
	}

	return strconv.FormatUint(uint64(raw), 10) //nolint: gosec
}

// EnumType is the descriptor of a Value bound to a table.
type EnumType[P Integer] struct {
	table *Table[P]
}

var (
	_ Type[Value[uint16]]   = EnumType[uint16]{}
	_ Putter[Value[uint16]] = EnumType[uint16]{}
)

// Enum returns the descriptor for Values of t.
func Enum[P Integer](t *Table[P]) EnumType[P] {
	return EnumType[P]{table: t}
}

func (e EnumType[P]) Name() string { return e.table.Name() }
func (e EnumType[P]) Size() int { return Width[P]() }

func (e EnumType[P]) Decode(b []byte) Value[P] {
	return e.table.Value(decodeInt[P](b))
}

func (e EnumType[P]) Append(dst []byte, v Value[P]) []byte {
	return appendInt(dst, v.raw)
}

func (e EnumType[P]) Put(b []byte, v Value[P]) { putInt(b, v.raw) }

// Sane judges v against the descriptor's table, not the table v carries.
func (e EnumType[P]) Sane(v Value[P]) bool {
	return e.table.Value(v.raw).Sane()
}

// Table returns the descriptor's table.
func (e EnumType[P]) Table() *Table[P] { return e.table }
