package elf

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/elfeat/buffer"
	"github.com/arloliu/elfeat/errs"
	"github.com/arloliu/elfeat/format"
	"github.com/arloliu/elfeat/internal/options"
	"github.com/arloliu/elfeat/model"
)

// Reader walks the headers of an ELF64 file held in a buffer.
type Reader struct {
	buf *buffer.Buffer
	cfg Config
	log *slog.Logger
}

// NewReader creates a Reader over buf.
func NewReader(buf *buffer.Buffer, opts ...Option) (*Reader, error) {
	r := &Reader{buf: buf, cfg: defaultConfig()}
	if err := options.Apply(&r.cfg, opts...); err != nil {
		return nil, err
	}
	r.log = r.cfg.logger

	return r, nil
}

// Header parses the file header at offset 0.
//
// A header that parses but holds undeclared values is returned together with
// an error wrapping errs.ErrInvalidValue. A file that does not identify as
// 64-bit little-endian ELF fails with errs.ErrNotELF.
func (r *Reader) Header() (Header, error) {
	out, err := buffer.Next[Header](r.buf.Cursor(), HeaderSchema)
	if !out.Parsed() {
		return out.Value, fmt.Errorf("elf header: %w", err)
	}

	h := out.Value
	if !h.Identified() {
		return h, fmt.Errorf("elf header: %w", errs.ErrNotELF)
	}
	if out.Status == format.StatusInvalid {
		r.log.Warn("elf header holds undeclared values", "error", err)
		return h, fmt.Errorf("elf header: %w", err)
	}

	return h, nil
}

// Sections scans the section header table located by h.
//
// The scan stops at the first header that cannot be parsed, after e_shnum
// headers when e_shnum is set, or at the configured maximum. Headers with
// undeclared values are kept and logged. A zero e_shoff means the file has no
// section header table and yields no sections. An e_shentsize other than
// SectionSize fails with errs.ErrLayoutMismatch.
func (r *Reader) Sections(h Header) ([]SectionHeader, error) {
	shoff, ok := h.ShOff.Get()
	if !ok {
		return nil, fmt.Errorf("e_shoff: %w", errs.ErrIncompleteRecord)
	}
	if shoff == 0 {
		r.log.Debug("no section header table")
		return nil, nil
	}
	if n, ok := h.ShEntSize.Get(); ok && int(n) != SectionSize {
		return nil, fmt.Errorf("e_shentsize %d, expected %d: %w", n, SectionSize, errs.ErrLayoutMismatch)
	}
	if shoff > uint64(r.buf.Len()) { //nolint: gosec
		return nil, fmt.Errorf("e_shoff %#x beyond file of %d bytes: %w", shoff, r.buf.Len(), errs.ErrOutOfRange)
	}

	limit := r.cfg.maxSections
	if n, ok := h.ShNum.Get(); ok && n > 0 {
		limit = min(limit, int(n))
	}

	c := r.buf.CursorAt(int(shoff)) //nolint: gosec
	sections := make([]SectionHeader, 0, min(limit, c.Remaining()/SectionSize))
	for len(sections) < limit {
		out, err := buffer.Next[SectionHeader](c, SectionHeaderSchema)
		if !out.Parsed() {
			r.log.Debug("section header scan stopped", "offset", out.Pos, "count", len(sections), "error", err)
			break
		}
		if out.Status == format.StatusInvalid {
			r.log.Warn("section header holds undeclared values", "index", len(sections), "offset", out.Pos, "error", err)
		}
		sections = append(sections, out.Value)
	}

	return sections, nil
}

// StringTable returns the section name string table selected by h.
//
// It fails with errs.ErrNoStringTable when e_shstrndx is SHN_UNDEF or names
// a section outside sections, and with errs.ErrOutOfRange when the table's
// bytes lie outside the file.
func (r *Reader) StringTable(h Header, sections []SectionHeader) (StringTable, error) {
	idx, ok := h.ShStrNdx.Get()
	if !ok {
		return StringTable{}, fmt.Errorf("e_shstrndx: %w", errs.ErrIncompleteRecord)
	}
	if idx.Is("SHN_UNDEF") {
		return StringTable{}, fmt.Errorf("e_shstrndx is %s: %w", idx, errs.ErrNoStringTable)
	}

	i := int(idx.Raw())
	if idx.Is("SHN_XINDEX") && len(sections) > 0 {
		link, _ := sections[0].Link.Get()
		i = int(link)
	}
	if i >= len(sections) {
		return StringTable{}, fmt.Errorf("e_shstrndx %d of %d sections: %w", i, len(sections), errs.ErrNoStringTable)
	}

	blob, err := r.sectionBytes(sections[i])
	if err != nil {
		return StringTable{}, fmt.Errorf("string table section %d: %w", i, err)
	}

	return NewStringTable(blob, r.buf.StringLimit()), nil
}

// Load reads the header, every section header and their names.
//
// Sections whose name cannot be resolved keep an empty name and are logged.
// A file without a section header table loads with no sections.
func (r *Reader) Load() (*File, error) {
	h, err := r.Header()
	if err != nil && errs.StatusOf(err) != format.StatusInvalid {
		return nil, err
	}

	headers, err := r.Sections(h)
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return &File{Header: h, index: NewSectionIndex(nil)}, nil
	}

	strtab, err := r.StringTable(h, headers)
	if err != nil {
		return nil, err
	}

	sections := make([]Section, len(headers))
	for i, sh := range headers {
		sections[i] = Section{Index: i, Header: sh}
		off, _ := sh.Name.Get()
		name, id, err := strtab.NameID(off)
		if err != nil {
			r.log.Warn("section name unresolved", "index", i, "sh_name", off, "error", err)
			continue
		}
		if name != "" {
			sections[i].Name = name
			sections[i].ID = id
		}
	}

	index := NewSectionIndex(sections)
	for _, name := range index.Duplicates() {
		r.log.Warn("duplicate section name", "name", name)
	}
	if index.HasCollision() {
		r.log.Debug("section name hash collision")
	}

	return &File{Header: h, Sections: sections, index: index}, nil
}

// Uint32Pair reads two consecutive little-endian words at off and returns
// them as one value, the first word in the high half.
func (r *Reader) Uint32Pair(off uint64) (uint64, error) {
	if off > uint64(r.buf.Len()) { //nolint: gosec
		return 0, fmt.Errorf("offset %#x: %w", off, errs.ErrOutOfRange)
	}

	c := r.buf.Cursor()
	hi, err := buffer.At[uint32](c, model.Uint32, int(off)) //nolint: gosec
	if err != nil {
		return 0, err
	}
	lo, err := buffer.At[uint32](c, model.Uint32, hi.End())
	if err != nil {
		return 0, err
	}

	return uint64(hi.Value)<<32 | uint64(lo.Value), nil
}

func (r *Reader) sectionBytes(sh SectionHeader) ([]byte, error) {
	off, ok1 := sh.Offset.Get()
	size, ok2 := sh.Size.Get()
	if !ok1 || !ok2 {
		return nil, errs.ErrIncompleteRecord
	}

	n := uint64(r.buf.Len()) //nolint: gosec
	if off > n || size > n-off {
		return nil, fmt.Errorf("range [%#x,+%#x) beyond file of %d bytes: %w", off, size, n, errs.ErrOutOfRange)
	}

	return r.buf.Bytes()[off : off+size], nil
}

// SectionBytes returns the file bytes covered by sec.
func (r *Reader) SectionBytes(sec Section) ([]byte, error) {
	return r.sectionBytes(sec.Header)
}
