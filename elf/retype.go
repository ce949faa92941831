package elf

import (
	"fmt"
	"strconv"

	"github.com/arloliu/elfeat/buffer"
	"github.com/arloliu/elfeat/errs"
	"github.com/arloliu/elfeat/format"
	"github.com/arloliu/elfeat/model"
)

// Retype rewrites e_type of the header at the start of buf in place and
// returns the previous type together with the updated header.
//
// The header view is split into one view per field, e_type is stored through
// its own view, and the fields are assembled back into a header view whose
// layout is checked against HeaderSchema before the result is read.
func Retype(buf *buffer.Buffer, typ model.Value[uint16]) (model.Value[uint16], Header, error) {
	var prev model.Value[uint16]

	c, err := buffer.Relative[Header](buf.View(), HeaderSchema, 0)
	if c.Status == format.StatusFailed {
		return prev, Header{}, fmt.Errorf("elf header: %w", err)
	}
	if !c.Value.Identified() {
		return prev, c.Value, fmt.Errorf("elf header: %w", errs.ErrNotELF)
	}

	fields, err := HeaderSchema.Split(c.Body)
	if err != nil {
		return prev, c.Value, err
	}

	ref, err := buffer.Constitute[model.Value[uint16]](fields[EType.Index()], EType.Type())
	if err != nil {
		return prev, c.Value, err
	}
	prev = ref.Load()
	if err := ref.Store(typ); err != nil {
		return prev, c.Value, err
	}

	_, whole, err := HeaderSchema.Assemble(fields...)
	if err != nil {
		return prev, c.Value, err
	}

	return prev, whole.Load(), nil
}

// ParseType resolves an ET_* name, or a number, to an e_type value.
func ParseType(s string) (model.Value[uint16], error) {
	if v, ok := Types.Lookup(s); ok {
		return Types.Value(v), nil
	}

	raw, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return model.Value[uint16]{}, fmt.Errorf("e_type %q: %w", s, errs.ErrUnknownConstant)
	}

	return Types.Value(uint16(raw)), nil
}
