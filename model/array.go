package model

import (
	"fmt"

	"github.com/arloliu/elfeat/errs"
)

// ArrayType is the descriptor of exactly N consecutive elements of one type.
type ArrayType[T any] struct {
	elem Type[T]
	n    int
}

var (
	_ Type[[]uint8]   = ArrayType[uint8]{}
	_ Parser[[]uint8] = ArrayType[uint8]{}
)

// Array returns the descriptor for n elements of elem. A negative n is
// treated as zero.
func Array[T any](elem Type[T], n int) ArrayType[T] {
	return ArrayType[T]{elem: elem, n: max(n, 0)}
}

// Len returns the number of elements.
func (a ArrayType[T]) Len() int { return a.n }

// Elem returns the element descriptor.
func (a ArrayType[T]) Elem() Type[T] { return a.elem }

func (a ArrayType[T]) Name() string {
	return fmt.Sprintf("[%d]%s", a.n, a.elem.Name())
}

func (a ArrayType[T]) Size() int {
	return a.n * a.elem.Size()
}

func (a ArrayType[T]) Decode(b []byte) []T {
	es := a.elem.Size()
	out := make([]T, a.n)
	for i := range out {
		out[i] = a.elem.Decode(b[i*es : (i+1)*es])
	}

	return out
}

// Append encodes exactly N elements; missing trailing elements are encoded
// as the zero T and extra elements are ignored.
func (a ArrayType[T]) Append(dst []byte, v []T) []byte {
	var zero T
	for i := range a.n {
		if i < len(v) {
			dst = a.elem.Append(dst, v[i])
		} else {
			dst = a.elem.Append(dst, zero)
		}
	}

	return dst
}

// Sane reports whether v holds exactly N elements and each is sane.
// It is vacuously true for N=0.
func (a ArrayType[T]) Sane(v []T) bool {
	if len(v) != a.n {
		return false
	}
	for _, e := range v {
		if !a.elem.Sane(e) {
			return false
		}
	}

	return true
}

// Parse parses the elements in order. It aborts on the first element that
// cannot be parsed structurally, returning no array, and reports
// errs.ErrInvalidValue after the last element when any element was not sane.
func (a ArrayType[T]) Parse(b []byte) ([]T, int, error) {
	out := make([]T, a.n)
	consumed := 0
	invalid := false

	for i := range out {
		v, n, err := Parse(a.elem, b[consumed:])
		switch {
		case err == nil:
		case errs.KindOf(err).Recoverable():
			invalid = true
		default:
			return nil, 0, fmt.Errorf("%s: element %d: %w", a.Name(), i, err)
		}
		out[i] = v
		consumed += n
	}

	if invalid {
		return out, consumed, fmt.Errorf("%s: %w", a.Name(), errs.ErrInvalidValue)
	}

	return out, consumed, nil
}
