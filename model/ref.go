package model

import (
	"fmt"

	"github.com/arloliu/elfeat/errs"
	"github.com/arloliu/elfeat/internal/pool"
)

// Ref is an in-place handle to a T stored in a byte range. Loads decode from
// the range and stores encode into it; no copy of the range is kept.
type Ref[T any] struct {
	t Type[T]
	b []byte
}

// Constitute interprets b, which must be exactly t.Size() bytes long, as an
// in-place T.
func Constitute[T any](t Type[T], b []byte) (Ref[T], error) {
	size := t.Size()
	switch {
	case len(b) < size:
		return Ref[T]{}, fmt.Errorf("%s: need %d bytes, have %d: %w", t.Name(), size, len(b), errs.ErrInsufficientLength)
	case len(b) > size:
		return Ref[T]{}, fmt.Errorf("%s: range of %d bytes exceeds size %d: %w", t.Name(), len(b), size, errs.ErrOutOfRange)
	}

	return Ref[T]{t: t, b: b}, nil
}

// Type returns the descriptor of the referenced value.
func (r Ref[T]) Type() Type[T] { return r.t }

// Bytes returns the referenced range. It aliases the underlying buffer.
func (r Ref[T]) Bytes() []byte { return r.b }

// Load decodes the current value.
func (r Ref[T]) Load() T {
	return r.t.Decode(r.b)
}

// Sane reports whether the current value is sane.
func (r Ref[T]) Sane() bool {
	return r.t.Sane(r.Load())
}

// Store encodes v into the referenced range. Types implementing Putter write
// directly; others are staged in a scratch buffer first.
//
// The range is left untouched when the encoding does not cover every byte,
// as happens for a record with absent fields.
func (r Ref[T]) Store(v T) error {
	if r.t == nil {
		return fmt.Errorf("store into empty ref: %w", errs.ErrOutOfRange)
	}
	if p, ok := r.t.(Putter[T]); ok {
		p.Put(r.b, v)
		return nil
	}

	scratch := pool.GetScratch()
	defer pool.PutScratch(scratch)

	scratch.Grow(len(r.b))
	scratch.B = r.t.Append(scratch.Bytes(), v)
	if scratch.Len() != len(r.b) {
		return fmt.Errorf("%s: encoded %d of %d bytes: %w", r.t.Name(), scratch.Len(), len(r.b), errs.ErrIncompleteRecord)
	}
	copy(r.b, scratch.Bytes())

	return nil
}

// Update loads the value, applies fn and stores the result.
func (r Ref[T]) Update(fn func(*T)) error {
	v := r.Load()
	fn(&v)

	return r.Store(v)
}
