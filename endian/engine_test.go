package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	require.Implements(t, (*EndianEngine)(nil), GetLittleEndianEngine())
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
}

func TestUint(t *testing.T) {
	le := GetLittleEndianEngine()
	var be EndianEngine = binary.BigEndian
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	tests := []struct {
		name   string
		engine EndianEngine
		width  int
		want   uint64
	}{
		{"le 1", le, 1, 0x01},
		{"le 2", le, 2, 0x0201},
		{"le 4", le, 4, 0x04030201},
		{"le 8", le, 8, 0x0807060504030201},
		{"be 2", be, 2, 0x0102},
		{"be 4", be, 4, 0x01020304},
		{"be 8", be, 8, 0x0102030405060708},
		{"unsupported", le, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Uint(tt.engine, data[:tt.width]))
		})
	}
}

func TestAppendUint_PutUint(t *testing.T) {
	le := GetLittleEndianEngine()

	for _, width := range []int{1, 2, 4, 8} {
		v := uint64(0xF1F2F3F4F5F6F7F8)
		appended := AppendUint(le, nil, v, width)
		require.Len(t, appended, width)

		put := make([]byte, width)
		PutUint(le, put, v)
		require.Equal(t, appended, put)

		mask := uint64(1)<<(8*uint(width)) - 1
		if width == 8 {
			mask = ^uint64(0)
		}
		require.Equal(t, v&mask, Uint(le, appended))
	}

	require.Equal(t, []byte{0xAA}, AppendUint(le, []byte{0xAA}, 1, 3))
}
