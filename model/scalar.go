package model

import (
	"unsafe"

	"github.com/arloliu/elfeat/endian"
)

// Integer is the set of fixed-width integer primitives the engine can decode.
type Integer interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
}

// Width returns the encoded width of P in bytes.
func Width[P Integer]() int {
	var zero P
	return int(unsafe.Sizeof(zero))
}

var le = endian.GetLittleEndianEngine()

func decodeInt[P Integer](b []byte) P {
	return P(endian.Uint(le, b[:Width[P]()]))
}

func appendInt[P Integer](dst []byte, v P) []byte {
	return endian.AppendUint(le, dst, uint64(v), Width[P]()) //nolint: gosec
}

func putInt[P Integer](b []byte, v P) {
	endian.PutUint(le, b[:Width[P]()], uint64(v)) //nolint: gosec
}

// Scalar is the descriptor of a raw little-endian integer. Every value is sane.
type Scalar[P Integer] struct {
	name string
}

var (
	_ Type[uint32]   = Scalar[uint32]{}
	_ Putter[uint32] = Scalar[uint32]{}
)

// NewScalar creates a named scalar descriptor.
func NewScalar[P Integer](name string) Scalar[P] {
	return Scalar[P]{name: name}
}

func (s Scalar[P]) Name() string { return s.name }
func (s Scalar[P]) Size() int { return Width[P]() }
func (s Scalar[P]) Decode(b []byte) P { return decodeInt[P](b) }
func (s Scalar[P]) Append(dst []byte, v P) []byte { return appendInt(dst, v) }
func (s Scalar[P]) Put(b []byte, v P) { putInt(b, v) }
func (s Scalar[P]) Sane(P) bool { return true }

// Built-in scalar descriptors.
var (
	Uint8  = NewScalar[uint8]("uint8")
	Uint16 = NewScalar[uint16]("uint16")
	Uint32 = NewScalar[uint32]("uint32")
	Uint64 = NewScalar[uint64]("uint64")
	Int8   = NewScalar[int8]("int8")
	Int16  = NewScalar[int16]("int16")
	Int32  = NewScalar[int32]("int32")
	Int64  = NewScalar[int64]("int64")
)
