package record

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/elfeat/buffer"
	"github.com/arloliu/elfeat/errs"
	"github.com/arloliu/elfeat/format"
	"github.com/arloliu/elfeat/model"
)

var (
	signatures = model.NewTable("signature", model.Constant[uint32]{Name: "VALID", Value: 0x04034b50})
	freeWord   = model.NewTable[uint16]("word")
	kinds      = model.NewTable("kind",
		model.Constant[uint8]{Name: "KIND_A", Value: 1},
		model.Constant[uint8]{Name: "KIND_B", Value: 2},
	)
)

type preamble struct {
	Signature model.Optional[model.Value[uint32]]
	Version   model.Optional[model.Value[uint16]]
	Flags     model.Optional[model.Value[uint16]]
}

var (
	preSignature = Bind("signature", model.Enum(signatures), func(p *preamble) *model.Optional[model.Value[uint32]] { return &p.Signature })
	preVersion   = Bind("version", model.Enum(freeWord), func(p *preamble) *model.Optional[model.Value[uint16]] { return &p.Version })
	preFlags     = Bind("flags", model.Enum(freeWord), func(p *preamble) *model.Optional[model.Value[uint16]] { return &p.Flags })
	preambleType = NewSchema[preamble]("preamble", preSignature, preVersion, preFlags)
)

type entry struct {
	Head  model.Optional[preamble]
	Kind  model.Optional[model.Value[uint8]]
	Pairs model.Optional[[]uint16]
}

var (
	entryHead  = Bind("head", model.Type[preamble](preambleType), func(e *entry) *model.Optional[preamble] { return &e.Head })
	entryKind  = Bind("kind", model.Enum(kinds), func(e *entry) *model.Optional[model.Value[uint8]] { return &e.Kind })
	entryPairs = Bind("pairs", model.Array[uint16](model.Uint16, 2), func(e *entry) *model.Optional[[]uint16] { return &e.Pairs })
	entryType  = NewSchema[entry]("entry", entryHead, entryKind, entryPairs)
)

var preambleBytes = []byte{0x50, 0x4b, 0x03, 0x04, 0x14, 0x00, 0x08, 0x00}

func TestSchema_Layout(t *testing.T) {
	require.Equal(t, 8, preambleType.Size())
	require.Equal(t, []FieldInfo{
		{Name: "signature", Offset: 0, Size: 4},
		{Name: "version", Offset: 4, Size: 2},
		{Name: "flags", Offset: 6, Size: 2},
	}, preambleType.Layout())

	require.Equal(t, 13, entryType.Size())
	require.Equal(t, 8, entryKind.Offset())
	require.Equal(t, 9, entryPairs.Offset())
}

func TestSchema_ScenarioSignature(t *testing.T) {
	p, n, err := preambleType.Parse(preambleBytes)
	require.NoError(t, err)
	require.Equal(t, 8, n)

	sig, ok := preSignature.Get(&p)
	require.True(t, ok)
	require.True(t, sig.Is("VALID"))
	require.True(t, preambleType.Complete(p))
	require.True(t, preambleType.Sane(p))

	version, _ := preVersion.Get(&p)
	require.Equal(t, uint16(0x14), version.Raw())
}

func TestSchema_TruncatedEqualsPrefix(t *testing.T) {
	for cut := range len(preambleBytes) {
		t.Run("", func(t *testing.T) {
			prefix := preambleBytes[:cut]
			got, n, err := preambleType.Parse(prefix)
			require.ErrorIs(t, err, errs.ErrInsufficientLength)
			require.Equal(t, format.KindInsufficientLength, errs.KindOf(err))
			require.Zero(t, n)
			require.False(t, preambleType.Complete(got))

			want := preambleType.None()
			off := 0
			if v, m, ferr := model.Parse[model.Value[uint32]](model.Enum(signatures), prefix[off:]); ferr == nil {
				preSignature.Set(&want, v)
				off += m
				if v, m, ferr := model.Parse[model.Value[uint16]](model.Enum(freeWord), prefix[off:]); ferr == nil {
					preVersion.Set(&want, v)
					off += m
					if v, _, ferr := model.Parse[model.Value[uint16]](model.Enum(freeWord), prefix[off:]); ferr == nil {
						preFlags.Set(&want, v)
					}
				}
			}
			require.Equal(t, want, got)
		})
	}
}

func TestSchema_CompleteButInsane(t *testing.T) {
	data := append([]byte{0xde, 0xad, 0xbe, 0xef}, preambleBytes[4:]...)

	p, n, err := preambleType.Parse(data)
	require.ErrorIs(t, err, errs.ErrInvalidValue)
	require.NotErrorIs(t, err, errs.ErrInsufficientLength)
	require.Contains(t, err.Error(), "preamble.signature")
	require.Equal(t, 8, n)
	require.True(t, preambleType.Complete(p))
	require.False(t, preambleType.Sane(p))
	require.False(t, preSignature.Sane(&p))
	require.True(t, preVersion.Sane(&p), "parsing continues past an insane field")
	require.True(t, preFlags.Present(&p))
}

func TestSchema_Nested(t *testing.T) {
	data := append(append([]byte{}, preambleBytes...), 0x02, 0x01, 0x00, 0x02, 0x00)

	e, n, err := entryType.Parse(data)
	require.NoError(t, err)
	require.Equal(t, 13, n)

	head, ok := entryHead.Get(&e)
	require.True(t, ok)
	require.True(t, preambleType.Sane(head))
	pairs, _ := entryPairs.Get(&e)
	require.Equal(t, []uint16{1, 2}, pairs)
}

func TestSchema_NestedTruncatedLeavesFieldAbsent(t *testing.T) {
	e, _, err := entryType.Parse(preambleBytes[:6])
	require.ErrorIs(t, err, errs.ErrInsufficientLength)
	require.False(t, entryHead.Present(&e))
	require.False(t, entryKind.Present(&e))
}

func TestSchema_NestedInvalidPropagates(t *testing.T) {
	data := append(append([]byte{}, preambleBytes...), 0x07, 0x01, 0x00, 0x02, 0x00)
	data[0] = 0

	e, n, err := entryType.Parse(data)
	require.ErrorIs(t, err, errs.ErrInvalidValue)
	require.Equal(t, 13, n)
	require.True(t, entryType.Complete(e))
	require.False(t, entryHead.Sane(&e))
	require.False(t, entryKind.Sane(&e))
	require.True(t, entryPairs.Sane(&e))
}

func TestSchema_Encode(t *testing.T) {
	p, _, err := preambleType.Parse(preambleBytes)
	require.NoError(t, err)

	enc, err := preambleType.Encode(p)
	require.NoError(t, err)
	require.Equal(t, preambleBytes, enc)

	preVersion.Clear(&p)
	require.Equal(t, preambleBytes[:4], preambleType.Append(nil, p), "encoding stops at the first absent field")
	_, err = preambleType.Encode(p)
	require.ErrorIs(t, err, errs.ErrIncompleteRecord)
}

func TestSchema_ThroughCursor(t *testing.T) {
	data := append(append([]byte{}, preambleBytes...), preambleBytes[:3]...)
	b, err := buffer.New(data)
	require.NoError(t, err)
	c := b.Cursor()

	out, err := buffer.Next[preamble](c, preambleType)
	require.NoError(t, err)
	require.Equal(t, 8, c.Pos())
	require.True(t, out.Valid())

	out, err = buffer.Next[preamble](c, preambleType)
	require.ErrorIs(t, err, errs.ErrInsufficientLength)
	require.Equal(t, 8, c.Pos())
	require.False(t, preSignature.Present(&out.Value))
}

func TestNewSchema_Panics(t *testing.T) {
	tests := []struct {
		name  string
		build func()
	}{
		{
			name: "duplicate name",
			build: func() {
				a := Bind("x", model.Uint8, func(p *preamble) *model.Optional[uint8] { return nil })
				b := Bind("x", model.Uint8, func(p *preamble) *model.Optional[uint8] { return nil })
				NewSchema[preamble]("dup", a, b)
			},
		},
		{
			name: "already bound",
			build: func() {
				NewSchema[preamble]("rebind", Binding[preamble](preFlags))
			},
		},
		{
			name: "zero-length array",
			build: func() {
				z := Bind("z", model.Array[uint8](model.Uint8, 0), func(p *preamble) *model.Optional[[]uint8] { return nil })
				NewSchema[preamble]("zero", z)
			},
		},
		{
			name: "zero-length array after sized field",
			build: func() {
				a := Bind("a", model.Uint8, func(p *preamble) *model.Optional[uint8] { return nil })
				z := Bind("z", model.Array[uint16](model.Uint16, 0), func(p *preamble) *model.Optional[[]uint16] { return nil })
				NewSchema[preamble]("trailing", a, z)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(t, tt.build)
		})
	}
}

func TestField_Index(t *testing.T) {
	require.Equal(t, 0, preSignature.Index())
	require.Equal(t, 2, preFlags.Index())
	require.Equal(t, -1, Bind("loose", model.Uint8, func(p *preamble) *model.Optional[uint8] { return nil }).Index())
}
