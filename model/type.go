package model

import (
	"fmt"

	"github.com/arloliu/elfeat/errs"
)

// Type describes how a T is laid out in a byte buffer.
type Type[T any] interface {
	// Name identifies the type in errors and display output.
	Name() string

	// Size returns the fixed encoded size of T in bytes.
	Size() int

	// Decode decodes a T from b. b must hold at least Size() bytes; only the
	// first Size() bytes are read. Decode does not check sanity.
	Decode(b []byte) T

	// Append appends the Size()-byte encoding of v to dst.
	Append(dst []byte, v T) []byte

	// Sane reports whether v is a value the format allows.
	Sane(v T) bool
}

// Putter is implemented by types that can overwrite their encoding in place.
type Putter[T any] interface {
	// Put writes the Size()-byte encoding of v over the start of b.
	Put(b []byte, v T)
}

// Parser is implemented by types that produce a best-effort value even when
// parsing fails part way, such as composed records.
//
// Parse returns the value, the number of bytes consumed and an error wrapping
// errs.ErrInsufficientLength or errs.ErrInvalidValue.
type Parser[T any] interface {
	Parse(b []byte) (T, int, error)
}

// Parse interprets a T at the start of b.
//
// Returns:
//   - T: the decoded value; zero on insufficient length unless t is a Parser
//   - int: bytes consumed (Size() on success or invalid value, 0 otherwise)
//   - error: nil, errs.ErrInsufficientLength or errs.ErrInvalidValue (wrapped)
func Parse[T any](t Type[T], b []byte) (T, int, error) {
	if p, ok := t.(Parser[T]); ok {
		return p.Parse(b)
	}

	size := t.Size()
	if len(b) < size {
		var zero T
		return zero, 0, fmt.Errorf("%s: need %d bytes, have %d: %w", t.Name(), size, len(b), errs.ErrInsufficientLength)
	}

	v := t.Decode(b[:size])
	if !t.Sane(v) {
		return v, size, fmt.Errorf("%s: %w", t.Name(), errs.ErrInvalidValue)
	}

	return v, size, nil
}

// Encode returns the encoding of v as a new slice.
func Encode[T any](t Type[T], v T) []byte {
	return t.Append(make([]byte, 0, t.Size()), v)
}
