package collision

import (
	"testing"

	"github.com/arloliu/elfeat/errs"
	"github.com/arloliu/elfeat/internal/hash"
	"github.com/stretchr/testify/require"
)

func TestTracker_Track(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.Track(".text", hash.ID(".text")))
	require.NoError(t, tr.Track(".data", hash.ID(".data")))
	require.Equal(t, 2, tr.Count())
	require.Equal(t, []string{".text", ".data"}, tr.Names())
	require.False(t, tr.HasCollision())
}

func TestTracker_Errors(t *testing.T) {
	tr := NewTracker()

	require.ErrorIs(t, tr.Track("", 1), errs.ErrEmptyName)

	require.NoError(t, tr.Track(".bss", hash.ID(".bss")))
	require.ErrorIs(t, tr.Track(".bss", hash.ID(".bss")), errs.ErrDuplicateName)
	require.Equal(t, 1, tr.Count())
}

func TestTracker_Collision(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.Track("a", 42))
	require.NoError(t, tr.Track("b", 42))
	require.True(t, tr.HasCollision())
	require.Equal(t, 2, tr.Count())
}
