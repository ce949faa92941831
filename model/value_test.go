package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/elfeat/errs"
)

func TestTable(t *testing.T) {
	require.Equal(t, "testKind", testKind.Name())
	require.Equal(t, 5, testKind.Len())

	v, ok := testKind.Lookup("KIND_EXEC")
	require.True(t, ok)
	require.Equal(t, uint16(2), v)

	_, ok = testKind.Lookup("KIND_MISSING")
	require.False(t, ok)

	name, ok := testKind.NameOf(0xff00)
	require.True(t, ok)
	require.Equal(t, "KIND_HIGH", name, "first declared name wins")

	require.Equal(t, uint8(0x37), testPerm.Mask())

	entries := testKind.Entries()
	entries[0].Name = "mutated"
	require.Equal(t, "KIND_NONE", testKind.Entries()[0].Name)
}

func TestTable_Nil(t *testing.T) {
	var tbl *Table[uint8]
	require.Zero(t, tbl.Len())
	require.Empty(t, tbl.Name())
	require.False(t, tbl.Contains(0))
	require.True(t, tbl.Value(9).Sane())
	require.False(t, tbl.Flags(1).Sane())
}

func TestNewTable_Panics(t *testing.T) {
	require.Panics(t, func() {
		NewTable("dup", Constant[uint8]{"A", 1}, Constant[uint8]{"A", 2})
	})
	require.Panics(t, func() {
		NewTable("empty", Constant[uint8]{"", 1})
	})
}

func TestEnum_RoundTripConstants(t *testing.T) {
	typ := Enum(testKind)
	for _, c := range testKind.Entries() {
		t.Run(c.Name, func(t *testing.T) {
			want := testKind.Const(c.Name)
			got, n, err := Parse[Value[uint16]](typ, Encode[Value[uint16]](typ, want))
			require.NoError(t, err)
			require.Equal(t, 2, n)
			require.Equal(t, want, got)
			require.True(t, got.Is(c.Name))
			require.True(t, got.Sane())
		})
	}
}

func TestEnum_Undeclared(t *testing.T) {
	typ := Enum(testKind)
	got, n, err := Parse[Value[uint16]](typ, []byte{0x07, 0x00})
	require.ErrorIs(t, err, errs.ErrInvalidValue)
	require.Equal(t, 2, n, "invalid values are still consumed")
	require.Equal(t, uint16(7), got.Raw())
	require.False(t, got.IsConstant())
	require.False(t, got.Sane())
	require.False(t, typ.Sane(got))
}

func TestEnum_EmptyTableAcceptsAnything(t *testing.T) {
	typ := Enum(testFree)
	got, _, err := Parse[Value[uint32]](typ, []byte{0xef, 0xbe, 0xad, 0xde})
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), got.Raw())
	require.True(t, got.Sane())
	require.False(t, got.IsConstant())
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "KIND_EXEC(2)", testKind.Const("KIND_EXEC").String())
	assert.Equal(t, "KIND_HIGH(65280)", testKind.Value(0xff00).String())
	assert.Equal(t, "Unknown(7)", testKind.Value(7).String())

	signed := NewTable("signed", Constant[int8]{"NEG", -1})
	assert.Equal(t, "NEG(-1)", signed.Value(-1).String())
	assert.Equal(t, "Unknown(-2)", signed.Value(-2).String())
}

func TestValue_Is(t *testing.T) {
	v := testKind.Value(1)
	require.True(t, v.Is("KIND_REL"))
	require.False(t, v.Is("KIND_EXEC"))
	require.False(t, v.Is("KIND_MISSING"))
}

func TestTable_ConstPanicsOnUnknown(t *testing.T) {
	require.Panics(t, func() { testKind.Const("KIND_MISSING") })
}

func TestTable_Open(t *testing.T) {
	open := testKind.Open()
	require.True(t, open.IsOpen())
	require.False(t, testKind.IsOpen())
	require.Equal(t, testKind.Len(), open.Len())

	v := open.Value(7)
	require.True(t, v.Sane())
	require.False(t, v.IsConstant())
	require.Equal(t, "Unknown(7)", v.String())
	require.True(t, open.Value(2).Is("KIND_EXEC"))

	_, _, err := Parse[Value[uint16]](Enum(open), []byte{0x07, 0x00})
	require.NoError(t, err)
}
