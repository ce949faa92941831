package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/arloliu/elfeat/format"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want format.ErrorKind
	}{
		{"nil", nil, format.KindNone},
		{"insufficient", ErrInsufficientLength, format.KindInsufficientLength},
		{"unterminated", ErrUnterminatedString, format.KindInsufficientLength},
		{"invalid value", ErrInvalidValue, format.KindInvalidValue},
		{"out of range", ErrOutOfRange, format.KindRange},
		{"invalid split", ErrInvalidSplit, format.KindRange},
		{"consumed view", ErrViewConsumed, format.KindRange},
		{"foreign view", ErrForeignView, format.KindRange},
		{"string too long", ErrStringTooLong, format.KindRange},
		{"layout mismatch", ErrLayoutMismatch, format.KindLayoutMismatch},
		{"unrelated", errors.New("boom"), format.KindNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("field %q: %w", "e_type", ErrInsufficientLength)
	require.Equal(t, format.KindInsufficientLength, KindOf(err))

	err = fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", ErrLayoutMismatch))
	require.Equal(t, format.KindLayoutMismatch, KindOf(err))
	require.False(t, KindOf(err).Recoverable())
}

func TestStatusOf(t *testing.T) {
	require.Equal(t, format.StatusValid, StatusOf(nil))
	require.Equal(t, format.StatusInvalid, StatusOf(fmt.Errorf("field e_type: %w", ErrInvalidValue)))
	require.Equal(t, format.StatusFailed, StatusOf(ErrInsufficientLength))
	require.Equal(t, format.StatusFailed, StatusOf(ErrOutOfRange))
	require.Equal(t, format.StatusFailed, StatusOf(errors.New("unrelated")))
}
