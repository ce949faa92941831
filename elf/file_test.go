package elf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/elfeat/internal/hash"
)

func TestSectionIndex(t *testing.T) {
	sections := []Section{
		{Index: 0},
		{Index: 1, Name: ".text"},
		{Index: 2, Name: ".data"},
		{Index: 3, Name: ".text"},
	}
	x := NewSectionIndex(sections)

	require.Equal(t, 2, x.Len())
	require.Equal(t, []string{".text", ".data"}, x.Names())
	require.Equal(t, []string{".text"}, x.Duplicates())
	require.False(t, x.HasCollision())

	s, ok := x.Lookup(".text")
	require.True(t, ok)
	require.Equal(t, 1, s.Index)

	_, ok = x.Lookup("")
	require.False(t, ok)
	_, ok = x.Lookup(".bss")
	require.False(t, ok)
}

func TestSectionIndex_PrecomputedIDs(t *testing.T) {
	x := NewSectionIndex([]Section{
		{Index: 1, Name: ".text", ID: hash.ID(".text")},
		{Index: 2, Name: ".data"},
	})

	s, ok := x.Lookup(".text")
	require.True(t, ok)
	require.Equal(t, 1, s.Index)
	_, ok = x.Lookup(".data")
	require.True(t, ok)
}

func TestSectionIndex_TrackerRejectsRepeat(t *testing.T) {
	// Both carry the same stale identifier, so only the tracker sees the repeat.
	x := NewSectionIndex([]Section{
		{Index: 1, Name: ".note", ID: 7},
		{Index: 2, Name: ".note", ID: 7},
	})

	require.Equal(t, 1, x.Len())
	require.Equal(t, []string{".note"}, x.Duplicates())
}
