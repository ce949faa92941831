package record

import (
	"fmt"

	"github.com/arloliu/elfeat/buffer"
	"github.com/arloliu/elfeat/errs"
	"github.com/arloliu/elfeat/format"
	"github.com/arloliu/elfeat/internal/pool"
	"github.com/arloliu/elfeat/model"
)

// FieldInfo describes the placement of one field.
type FieldInfo struct {
	Name   string
	Offset int
	Size   int
}

// Schema is the ordered field layout of a record type R. It implements
// model.Type[R] and model.Parser[R].
type Schema[R any] struct {
	name   string
	fields []Binding[R]
	size   int
}

var (
	_ model.Type[struct{}]   = (*Schema[struct{}])(nil)
	_ model.Parser[struct{}] = (*Schema[struct{}])(nil)
)

// NewSchema lays out fields back to back in the given order.
//
// It panics when a field name repeats, when a field has zero size (including
// a zero-length model.Array) or when a field is already bound to another
// schema. Schemas are declared at package
// initialization, so these are programming errors.
func NewSchema[R any](name string, fields ...Binding[R]) *Schema[R] {
	s := &Schema[R]{name: name, fields: fields}

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Name()]; dup {
			panic(fmt.Sprintf("record: schema %s: field %s: %v", name, f.Name(), errs.ErrDuplicateName))
		}
		seen[f.Name()] = struct{}{}

		if f.Size() <= 0 {
			panic(fmt.Sprintf("record: schema %s: field %s has no size", name, f.Name()))
		}
		if f.Offset() >= 0 {
			panic(fmt.Sprintf("record: schema %s: field %s is already bound", name, f.Name()))
		}
		s.size += f.Size()
	}

	off := 0
	for i, f := range fields {
		f.bind(name, i, off, s.size)
		off += f.Size()
	}

	return s
}

// Name returns the record name.
func (s *Schema[R]) Name() string { return s.name }

// Size returns the total size of all fields.
func (s *Schema[R]) Size() int { return s.size }

// Layout returns the placement of every field in declaration order.
func (s *Schema[R]) Layout() []FieldInfo {
	out := make([]FieldInfo, len(s.fields))
	for i, f := range s.fields {
		out[i] = FieldInfo{Name: f.Name(), Offset: f.Offset(), Size: f.Size()}
	}

	return out
}

// None returns a record with every field absent.
func (s *Schema[R]) None() R {
	var r R
	return r
}

type parseState uint8

const (
	stateParsing parseState = iota
	stateValidSoFar
	stateInvalidSoFar
)

// Parse parses the fields of R in order from the start of b.
//
// Returns:
//   - R: the record; fields that could not be parsed are absent
//   - int: bytes consumed, or 0 when the record is truncated
//   - error: nil when complete and sane, errs.ErrInvalidValue (wrapped) when
//     complete but some field is not sane, errs.ErrInsufficientLength
//     (wrapped) when a field did not fit
func (s *Schema[R]) Parse(b []byte) (R, int, error) {
	var r R
	consumed := 0
	state := stateParsing
	var invalidField string

	for _, f := range s.fields {
		n, err := f.parse(&r, b[consumed:])
		switch errs.StatusOf(err) {
		case format.StatusFailed:
			return r, 0, fmt.Errorf("%s.%s at %d: %w", s.name, f.Name(), consumed, err)
		case format.StatusInvalid:
			if state != stateInvalidSoFar {
				invalidField = f.Name()
			}
			state = stateInvalidSoFar
		case format.StatusValid:
			if state == stateParsing {
				state = stateValidSoFar
			}
		}
		consumed += n
	}

	if state == stateInvalidSoFar {
		return r, consumed, fmt.Errorf("%s.%s: %w", s.name, invalidField, errs.ErrInvalidValue)
	}

	return r, consumed, nil
}

// Decode decodes a record from b, which must hold at least Size() bytes.
// Sanity is not checked.
func (s *Schema[R]) Decode(b []byte) R {
	r, _, _ := s.Parse(b[:s.size])
	return r
}

// Append appends the encoding of r's fields in order. Encoding stops at the
// first absent field, so an incomplete record encodes short.
func (s *Schema[R]) Append(dst []byte, r R) []byte {
	for _, f := range s.fields {
		var ok bool
		if dst, ok = f.appendTo(dst, &r); !ok {
			break
		}
	}

	return dst
}

// Complete reports whether every field of r is present.
func (s *Schema[R]) Complete(r R) bool {
	for _, f := range s.fields {
		if !f.present(&r) {
			return false
		}
	}

	return true
}

// Sane reports whether r is complete and every field is sane.
func (s *Schema[R]) Sane(r R) bool {
	for _, f := range s.fields {
		if !f.sane(&r) {
			return false
		}
	}

	return true
}

// Encode returns the encoding of a complete record.
func (s *Schema[R]) Encode(r R) ([]byte, error) {
	scratch := pool.GetScratch()
	defer pool.PutScratch(scratch)

	scratch.Grow(s.size)
	scratch.B = s.Append(scratch.Bytes(), r)
	if scratch.Len() != s.size {
		return nil, fmt.Errorf("%s: encoded %d of %d bytes: %w", s.name, scratch.Len(), s.size, errs.ErrIncompleteRecord)
	}

	out := make([]byte, s.size)
	copy(out, scratch.Bytes())

	return out, nil
}

// Split splits a view covering exactly one record into one view per field
// and consumes it.
func (s *Schema[R]) Split(v *buffer.View) ([]*buffer.View, error) {
	if !v.Live() {
		return nil, fmt.Errorf("%s: %w", s.name, errs.ErrViewConsumed)
	}
	if v.Len() != s.size {
		return nil, fmt.Errorf("%s: view of %d bytes, want %d: %w", s.name, v.Len(), s.size, errs.ErrLayoutMismatch)
	}
	if len(s.fields) == 0 {
		return nil, nil
	}

	out := make([]*buffer.View, 0, len(s.fields))
	rest := v
	for _, f := range s.fields[:len(s.fields)-1] {
		head, tail, err := rest.Split2(f.Size())
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", s.name, f.Name(), err)
		}
		out = append(out, head)
		rest = tail
	}

	return append(out, rest), nil
}

// Assemble joins one view per field back into a view over the whole record
// and constitutes the record in place.
//
// Each view must sit at the record's base offset, taken from the first view,
// plus the field's declared offset, and span exactly the field's size.
// Any deviation is reported as errs.ErrLayoutMismatch and no view is
// consumed.
func (s *Schema[R]) Assemble(views ...*buffer.View) (*buffer.View, model.Ref[R], error) {
	if len(views) != len(s.fields) {
		return nil, model.Ref[R]{}, fmt.Errorf("%s: %d views for %d fields: %w", s.name, len(views), len(s.fields), errs.ErrLayoutMismatch)
	}
	if len(views) == 0 {
		return nil, model.Ref[R]{}, fmt.Errorf("%s: no fields to assemble: %w", s.name, errs.ErrLayoutMismatch)
	}

	base := views[0].Offset()
	for i, f := range s.fields {
		v := views[i]
		if got, want := v.Offset(), base+f.Offset(); got != want {
			return nil, model.Ref[R]{}, fmt.Errorf("%s.%s at %d, declared at %d: %w", s.name, f.Name(), got, want, errs.ErrLayoutMismatch)
		}
		if v.Len() != f.Size() {
			return nil, model.Ref[R]{}, fmt.Errorf("%s.%s spans %d bytes, declared %d: %w", s.name, f.Name(), v.Len(), f.Size(), errs.ErrLayoutMismatch)
		}
	}

	whole, err := buffer.Join(views...)
	if err != nil {
		return nil, model.Ref[R]{}, fmt.Errorf("%s: %w", s.name, err)
	}

	ref, err := buffer.Constitute[R](whole, s)
	if err != nil {
		return nil, model.Ref[R]{}, err
	}

	return whole, ref, nil
}
