package buffer

import (
	"fmt"

	"github.com/arloliu/elfeat/errs"
	"github.com/arloliu/elfeat/format"
	"github.com/arloliu/elfeat/model"
)

// View is an exclusive sub-range of a Buffer.
//
// Splitting or joining a view consumes it; afterwards every operation on it
// fails with errs.ErrViewConsumed and Bytes returns nil.
type View struct {
	buf    *Buffer
	data   []byte
	offset int
	spent  bool
}

func newView(b *Buffer, off, n int) *View {
	return &View{
		buf:    b,
		data:   b.data[off : off+n : off+n],
		offset: off,
	}
}

// Offset returns the absolute offset of the view in its buffer.
func (v *View) Offset() int { return v.offset }

// Len returns the view length.
func (v *View) Len() int { return len(v.data) }

// End returns the absolute offset just past the view.
func (v *View) End() int { return v.offset + len(v.data) }

// Live reports whether the view has not been consumed.
func (v *View) Live() bool { return !v.spent }

// Buffer returns the buffer the view belongs to.
func (v *View) Buffer() *Buffer { return v.buf }

// Bytes returns the viewed bytes, aliasing the buffer. Writes through the
// slice modify the buffer. A consumed view returns nil.
func (v *View) Bytes() []byte {
	if v.spent {
		return nil
	}

	return v.data
}

func (v *View) check() error {
	if v.spent {
		return fmt.Errorf("view [%d,%d): %w", v.offset, v.End(), errs.ErrViewConsumed)
	}

	return nil
}

// carve partitions v at a <= b <= len and consumes it. Bounds must already
// be checked.
func (v *View) carve(a, b int) (head, body, tail *View) {
	v.spent = true
	head = newView(v.buf, v.offset, a)
	body = newView(v.buf, v.offset+a, b-a)
	tail = newView(v.buf, v.offset+b, len(v.data)-b)

	return head, body, tail
}

// Split2 splits v into head [0,at) and tail [at,len) and consumes v.
// It requires 0 <= at < len.
func (v *View) Split2(at int) (head, tail *View, err error) {
	if err := v.check(); err != nil {
		return nil, nil, err
	}
	if at < 0 || at >= len(v.data) {
		return nil, nil, fmt.Errorf("split at %d of view with length %d: %w", at, len(v.data), errs.ErrOutOfRange)
	}

	head, _, tail = v.carve(at, at)

	return head, tail, nil
}

// Split3 splits v into head [0,at1), body [at1,at2) and tail [at2,len) and
// consumes v. It requires 0 <= at1 <= at2 < len; a reversed pair fails with
// errs.ErrInvalidSplit and an out-of-bounds point with errs.ErrOutOfRange.
// On failure v stays live.
func (v *View) Split3(at1, at2 int) (head, body, tail *View, err error) {
	if err := v.check(); err != nil {
		return nil, nil, nil, err
	}
	switch {
	case at1 > at2:
		return nil, nil, nil, fmt.Errorf("split at %d,%d: %w", at1, at2, errs.ErrInvalidSplit)
	case at1 < 0 || at2 >= len(v.data):
		return nil, nil, nil, fmt.Errorf("split at %d,%d of view with length %d: %w", at1, at2, len(v.data), errs.ErrOutOfRange)
	}

	head, body, tail = v.carve(at1, at2)

	return head, body, tail, nil
}

// Carved is an in-place interpretation of a T cut out of a view, together
// with the exclusive views around it.
type Carved[T any] struct {
	Head *View
	Body *View
	Tail *View

	// Ref reads and writes the value in the buffer.
	Ref model.Ref[T]
	// Value is the value decoded at carve time.
	Value T
	// Status is StatusValid or StatusInvalid.
	Status format.Status
}

// Valid reports whether the carved value is sane.
func (c Carved[T]) Valid() bool { return c.Status == format.StatusValid }

// Relative carves the T-sized range starting at rel out of v and constitutes
// it in place. The tail may be empty.
//
// When the range cannot be carved, v stays live and the error wraps
// errs.ErrOutOfRange (rel outside v) or errs.ErrInsufficientLength (T does
// not fit). When the value is carved but not sane, the Carved result is
// complete, v is consumed and the error wraps errs.ErrInvalidValue.
func Relative[T any](v *View, t model.Type[T], rel int) (Carved[T], error) {
	if err := v.check(); err != nil {
		return Carved[T]{Status: format.StatusFailed}, err
	}

	size := t.Size()
	switch {
	case rel < 0 || rel > len(v.data):
		return Carved[T]{Status: format.StatusFailed},
			fmt.Errorf("%s at relative %d of view with length %d: %w", t.Name(), rel, len(v.data), errs.ErrOutOfRange)
	case size > len(v.data)-rel:
		return Carved[T]{Status: format.StatusFailed},
			fmt.Errorf("%s at relative %d: need %d bytes, have %d: %w", t.Name(), rel, size, len(v.data)-rel, errs.ErrInsufficientLength)
	}

	head, body, tail := v.carve(rel, rel+size)
	ref, err := model.Constitute(t, body.data)
	if err != nil {
		return Carved[T]{Status: format.StatusFailed}, err
	}

	value, _, perr := model.Parse(t, body.data)
	c := Carved[T]{
		Head:   head,
		Body:   body,
		Tail:   tail,
		Ref:    ref,
		Value:  value,
		Status: errs.StatusOf(perr),
	}
	if perr != nil {
		return c, fmt.Errorf("at %d: %w", body.offset, perr)
	}

	return c, nil
}

// Absolute is Relative with the position given as an absolute buffer
// offset. A position before the view's start is a range error.
func Absolute[T any](v *View, t model.Type[T], abs int) (Carved[T], error) {
	if abs < v.offset {
		return Carved[T]{Status: format.StatusFailed},
			fmt.Errorf("%s at %d precedes view offset %d: %w", t.Name(), abs, v.offset, errs.ErrOutOfRange)
	}

	return Relative(v, t, abs-v.offset)
}

// Constitute interprets the whole of v in place as a T. v must be exactly
// t.Size() bytes long. The view is not consumed.
func Constitute[T any](v *View, t model.Type[T]) (model.Ref[T], error) {
	if err := v.check(); err != nil {
		return model.Ref[T]{}, err
	}

	return model.Constitute(t, v.data)
}

// Join combines adjacent views of one buffer, given in address order, into
// a single view and consumes them.
//
// Views from another buffer fail with errs.ErrForeignView; views that do not
// abut fail with errs.ErrLayoutMismatch. On failure no view is consumed.
func Join(views ...*View) (*View, error) {
	if len(views) == 0 {
		return nil, fmt.Errorf("join of no views: %w", errs.ErrInvalidSplit)
	}

	first := views[0]
	end := first.offset
	for i, v := range views {
		if err := v.check(); err != nil {
			return nil, fmt.Errorf("join part %d: %w", i, err)
		}
		if v.buf != first.buf {
			return nil, fmt.Errorf("join part %d: %w", i, errs.ErrForeignView)
		}
		if v.offset != end {
			return nil, fmt.Errorf("join part %d at %d, expected %d: %w", i, v.offset, end, errs.ErrLayoutMismatch)
		}
		end = v.End()
	}

	for _, v := range views {
		v.spent = true
	}

	return newView(first.buf, first.offset, end-first.offset), nil
}
