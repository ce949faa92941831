package record

import (
	"fmt"

	"github.com/arloliu/elfeat/buffer"
	"github.com/arloliu/elfeat/errs"
	"github.com/arloliu/elfeat/model"
)

// Binding is a field of some record type R with its value type erased.
// It is implemented by *Field.
type Binding[R any] interface {
	Name() string
	Size() int
	Offset() int
	Index() int

	bind(schema string, index, offset, recordSize int)
	parse(r *R, b []byte) (int, error)
	appendTo(dst []byte, r *R) ([]byte, bool)
	present(r *R) bool
	sane(r *R) bool
}

// Field binds a struct field of R holding a T to a model type.
type Field[R, T any] struct {
	name   string
	typ    model.Type[T]
	access func(*R) *model.Optional[T]

	schema     string
	index      int
	offset     int
	recordSize int
}

var _ Binding[struct{}] = (*Field[struct{}, uint8])(nil)

// Bind declares a field named name of type t. access returns the address of
// the struct field that stores the value.
func Bind[R, T any](name string, t model.Type[T], access func(*R) *model.Optional[T]) *Field[R, T] {
	return &Field[R, T]{name: name, typ: t, access: access, index: -1, offset: -1}
}

// Name returns the field name.
func (f *Field[R, T]) Name() string { return f.name }

// Type returns the field's descriptor.
func (f *Field[R, T]) Type() model.Type[T] { return f.typ }

// Size returns the encoded size of the field.
func (f *Field[R, T]) Size() int { return f.typ.Size() }

// Offset returns the field's offset from the start of the record, or -1
// before the field is bound to a schema.
func (f *Field[R, T]) Offset() int { return f.offset }

// Index returns the field's position in its schema, or -1 before the field
// is bound.
func (f *Field[R, T]) Index() int { return f.index }

// Get returns the field's value and whether it is present.
func (f *Field[R, T]) Get(r *R) (T, bool) {
	return f.access(r).Get()
}

// Set stores v as the field's value.
func (f *Field[R, T]) Set(r *R, v T) {
	*f.access(r) = model.Some(v)
}

// Clear makes the field absent.
func (f *Field[R, T]) Clear(r *R) {
	*f.access(r) = model.None[T]()
}

// Present reports whether the field holds a value.
func (f *Field[R, T]) Present(r *R) bool { return f.present(r) }

// Sane reports whether the field is present and its value is sane.
func (f *Field[R, T]) Sane(r *R) bool { return f.sane(r) }

// Ref returns an in-place handle to the field inside v, which must be a live
// view covering exactly one record. v is not consumed.
func (f *Field[R, T]) Ref(v *buffer.View) (model.Ref[T], error) {
	if !v.Live() {
		return model.Ref[T]{}, fmt.Errorf("%s.%s: %w", f.schema, f.name, errs.ErrViewConsumed)
	}

	return f.RefBytes(v.Bytes())
}

// RefBytes returns an in-place handle to the field inside b, which must hold
// exactly one record.
func (f *Field[R, T]) RefBytes(b []byte) (model.Ref[T], error) {
	if f.offset < 0 {
		return model.Ref[T]{}, fmt.Errorf("field %s is not bound to a schema: %w", f.name, errs.ErrLayoutMismatch)
	}
	if len(b) != f.recordSize {
		return model.Ref[T]{}, fmt.Errorf("%s.%s: record range of %d bytes, want %d: %w",
			f.schema, f.name, len(b), f.recordSize, errs.ErrLayoutMismatch)
	}

	return model.Constitute(f.typ, b[f.offset:f.offset+f.Size()])
}

func (f *Field[R, T]) bind(schema string, index, offset, recordSize int) {
	f.schema = schema
	f.index = index
	f.offset = offset
	f.recordSize = recordSize
}

func (f *Field[R, T]) parse(r *R, b []byte) (int, error) {
	v, n, err := model.Parse(f.typ, b)
	if errs.StatusOf(err).Parsed() {
		*f.access(r) = model.Some(v)
	}

	return n, err
}

func (f *Field[R, T]) appendTo(dst []byte, r *R) ([]byte, bool) {
	v, ok := f.access(r).Get()
	if !ok {
		return dst, false
	}

	return f.typ.Append(dst, v), true
}

func (f *Field[R, T]) present(r *R) bool {
	return f.access(r).Present()
}

func (f *Field[R, T]) sane(r *R) bool {
	v, ok := f.access(r).Get()
	return ok && f.typ.Sane(v)
}
