package zip

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/elfeat/buffer"
	"github.com/arloliu/elfeat/errs"
	"github.com/arloliu/elfeat/format"
)

type testEntry struct {
	name   []byte
	flags  uint16
	method uint16
	data   []byte
	extra  []byte
	crc    *uint32

	// descriptor appends a signed data descriptor after the payload.
	descriptor bool
}

func encodeEntry(t *testing.T, e testEntry) []byte {
	t.Helper()

	crc := crc32.ChecksumIEEE(e.data)
	if e.crc != nil {
		crc = *e.crc
	}

	var h LocalFileHeader
	FieldSignature.Set(&h, Signatures.Const("VALID"))
	FieldVersion.Set(&h, Versions.Value(20))
	FieldFlags.Set(&h, Flags.Flags(e.flags))
	FieldMethod.Set(&h, Methods.Value(e.method))
	FieldModTime.Set(&h, 0x6000)
	FieldModDate.Set(&h, 0x5821)
	FieldCRC32.Set(&h, crc)
	FieldCompressedSize.Set(&h, uint32(len(e.data)))   //nolint: gosec
	FieldUncompressedSize.Set(&h, uint32(len(e.data))) //nolint: gosec
	FieldNameLength.Set(&h, uint16(len(e.name)))       //nolint: gosec
	FieldExtraLength.Set(&h, uint16(len(e.extra)))     //nolint: gosec

	b, err := LocalFileHeaderSchema.Encode(h)
	require.NoError(t, err)

	b = append(b, e.name...)
	b = append(b, e.extra...)
	b = append(b, e.data...)
	if e.descriptor {
		b = binary.LittleEndian.AppendUint32(b, DataDescriptorSignature)
		b = binary.LittleEndian.AppendUint32(b, crc)
		b = binary.LittleEndian.AppendUint32(b, uint32(len(e.data))) //nolint: gosec
		b = binary.LittleEndian.AppendUint32(b, uint32(len(e.data))) //nolint: gosec
	}

	return b
}

func buildArchive(t *testing.T, entries ...testEntry) []byte {
	t.Helper()

	var out bytes.Buffer
	for _, e := range entries {
		out.Write(encodeEntry(t, e))
	}
	out.Write(binary.LittleEndian.AppendUint32(nil, CentralDirSignature))
	out.Write(make([]byte, 42))

	return out.Bytes()
}

func newWalker(t *testing.T, data []byte, opts ...Option) *Walker {
	t.Helper()

	buf, err := buffer.New(data)
	require.NoError(t, err)
	w, err := NewWalker(buf, opts...)
	require.NoError(t, err)

	return w
}

func TestLocalFileHeaderSchema_Layout(t *testing.T) {
	require.Equal(t, LocalFileHeaderSize, LocalFileHeaderSchema.Size())
	require.Equal(t, 26, FieldNameLength.Offset())
	require.Equal(t, 28, FieldExtraLength.Offset())
	require.Equal(t, 14, FieldCRC32.Offset())
}

func TestLocalFileHeader_SignatureVersionFlags(t *testing.T) {
	// 4-byte signature, 2-byte version and 2-byte flags, then zeros.
	raw := []byte{0x50, 0x4b, 0x03, 0x04, 0x14, 0x00, 0x00, 0x00}
	raw = append(raw, make([]byte, LocalFileHeaderSize-len(raw))...)

	h, n, err := LocalFileHeaderSchema.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, LocalFileHeaderSize, n)

	sig, ok := FieldSignature.Get(&h)
	require.True(t, ok)
	require.True(t, sig.Is("VALID"))
	require.True(t, LocalFileHeaderSchema.Sane(h))

	version, _ := FieldVersion.Get(&h)
	require.Equal(t, uint16(20), version.Raw())
	require.True(t, version.Sane())
}

func TestLocalFileHeader_BadSignature(t *testing.T) {
	raw := make([]byte, LocalFileHeaderSize)
	copy(raw, []byte{0x50, 0x4b, 0x05, 0x06})

	h, n, err := LocalFileHeaderSchema.Parse(raw)
	require.ErrorIs(t, err, errs.ErrInvalidValue)
	require.Equal(t, LocalFileHeaderSize, n)
	require.Equal(t, format.StatusInvalid, errs.StatusOf(err))
	require.True(t, LocalFileHeaderSchema.Complete(h))
	require.False(t, FieldSignature.Sane(&h))
}

func TestWalker_Entries(t *testing.T) {
	data := buildArchive(t,
		testEntry{name: []byte("hello.txt"), data: []byte("hello, world\n")},
		testEntry{name: []byte("dir/"), extra: []byte{0x55, 0x54, 0x01, 0x00, 0x00}},
		testEntry{name: []byte("main.go"), method: 8, data: []byte{0xca, 0xfe}},
	)

	w := newWalker(t, data, WithVerifyCRC(true))
	entries, err := w.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	require.Equal(t, "hello.txt", entries[0].Name)
	require.Equal(t, 0, entries[0].Offset)
	require.Equal(t, LocalFileHeaderSize+9, entries[0].DataOffset)
	require.Equal(t, []byte("hello, world\n"), entries[0].Data)
	require.True(t, entries[0].Method().Is("STORED"))
	require.True(t, entries[0].Valid)

	require.Equal(t, "dir/", entries[1].Name)
	require.Empty(t, entries[1].Data)
	require.Equal(t, entries[1].Offset+LocalFileHeaderSize+4+5, entries[1].DataOffset)

	require.True(t, entries[2].Method().Is("DEFLATED"))
	require.Equal(t, "DEFLATED(8)", entries[2].Method().String())

	_, err = w.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestWalker_EmptyBuffer(t *testing.T) {
	w := newWalker(t, nil)
	_, err := w.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestWalker_NotZip(t *testing.T) {
	w := newWalker(t, []byte{0x7f, 'E', 'L', 'F', 0, 0, 0, 0})
	_, err := w.Next()
	require.ErrorIs(t, err, errs.ErrNotZip)
}

func TestWalker_TruncatedPayload(t *testing.T) {
	data := encodeEntry(t, testEntry{name: []byte("a"), data: []byte("abcdef")})
	w := newWalker(t, data[:len(data)-2])

	_, err := w.Next()
	require.ErrorIs(t, err, errs.ErrInsufficientLength)
}

func TestWalker_TruncatedHeader(t *testing.T) {
	data := encodeEntry(t, testEntry{name: []byte("a")})
	w := newWalker(t, data[:LocalFileHeaderSize-1])

	_, err := w.Next()
	require.ErrorIs(t, err, errs.ErrInsufficientLength)
}

func TestWalker_CRC(t *testing.T) {
	bad := uint32(0xdeadbeef)
	data := buildArchive(t, testEntry{name: []byte("a"), data: []byte("payload"), crc: &bad})

	t.Run("verified", func(t *testing.T) {
		w := newWalker(t, data, WithVerifyCRC(true))
		_, err := w.Next()
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("unverified", func(t *testing.T) {
		w := newWalker(t, data)
		e, err := w.Next()
		require.NoError(t, err)
		require.Equal(t, []byte("payload"), e.Data)
	})
}

func TestWalker_DataDescriptor(t *testing.T) {
	t.Run("sized", func(t *testing.T) {
		data := buildArchive(t,
			testEntry{name: []byte("a"), flags: 1 << 3, data: []byte("xyz"), descriptor: true},
			testEntry{name: []byte("b"), data: []byte("q")},
		)
		entries, err := newWalker(t, data).Entries()
		require.NoError(t, err)
		require.Len(t, entries, 2)
		require.Equal(t, "b", entries[1].Name)
	})

	t.Run("deferred size", func(t *testing.T) {
		data := buildArchive(t, testEntry{name: []byte("a"), flags: 1 << 3, descriptor: true})
		_, err := newWalker(t, data).Next()
		require.True(t, errors.Is(err, errors.ErrUnsupported))
	})
}

func TestWalker_UndeclaredMethodKept(t *testing.T) {
	data := buildArchive(t, testEntry{name: []byte("odd"), method: 42, data: []byte("z")})

	entries, err := newWalker(t, data).Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.False(t, entries[0].Valid)
	require.Equal(t, "Unknown(42)", entries[0].Method().String())
}

func TestDecodeName(t *testing.T) {
	tests := []struct {
		name  string
		raw   []byte
		utf8  bool
		want  string
		isErr bool
	}{
		{name: "ascii", raw: []byte("readme.md"), want: "readme.md"},
		{name: "cp437", raw: []byte{'m', 0x81, 'n'}, want: "mün"},
		{name: "utf8 flagged", raw: []byte("m\xc3\xbcn"), utf8: true, want: "mün"},
		{name: "invalid utf8", raw: []byte{0xff, 0xfe}, utf8: true, isErr: true},
		{name: "empty", raw: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeName(tt.raw, tt.utf8)
			if tt.isErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeName_RoundTrip(t *testing.T) {
	raw, err := EncodeName("mün", false)
	require.NoError(t, err)
	require.Equal(t, []byte{'m', 0x81, 'n'}, raw)

	data := buildArchive(t, testEntry{name: raw, data: []byte("1")})
	e, err := newWalker(t, data).Next()
	require.NoError(t, err)
	require.Equal(t, "mün", e.Name)
}

func TestOptions(t *testing.T) {
	buf, err := buffer.New(nil)
	require.NoError(t, err)

	_, err = NewWalker(buf, WithLogger(nil))
	require.Error(t, err)
}
