package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/elfeat/errs"
)

func TestCString(t *testing.T) {
	blob := []byte("\x00.text\x00.data\x00tail")

	tests := []struct {
		name  string
		off   int
		limit int
		want  string
		n     int
		err   error
	}{
		{name: "empty at start", off: 0, want: "", n: 1},
		{name: "first run", off: 1, want: ".text", n: 6},
		{name: "mid run", off: 3, want: "ext", n: 4},
		{name: "second run", off: 7, want: ".data", n: 6},
		{name: "within limit", off: 7, limit: 6, want: ".data", n: 6},
		{name: "limit too small", off: 7, limit: 5, err: errs.ErrStringTooLong},
		{name: "unterminated", off: 13, err: errs.ErrUnterminatedString},
		{name: "at end", off: len(blob), err: errs.ErrUnterminatedString},
		{name: "past end", off: len(blob) + 1, err: errs.ErrOutOfRange},
		{name: "negative", off: -1, err: errs.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, err := CString(blob, tt.off, tt.limit)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				require.Zero(t, n)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.n, n)
		})
	}
}
