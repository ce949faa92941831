package zip

import (
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"log/slog"

	"github.com/arloliu/elfeat/buffer"
	"github.com/arloliu/elfeat/errs"
	"github.com/arloliu/elfeat/format"
	"github.com/arloliu/elfeat/internal/options"
	"github.com/arloliu/elfeat/model"
)

// Entry is one local file of an archive.
type Entry struct {
	Offset     int // position of the local file header
	Header     LocalFileHeader
	Name       string
	DataOffset int    // position of the payload
	Data       []byte // payload as stored, aliasing the buffer
	Valid      bool   // false when the header holds undeclared values
}

// Method returns the entry's compression method.
func (e Entry) Method() model.Value[uint16] {
	m, _ := e.Header.Method.Get()
	return m
}

// Walker reads local file headers one after the other.
type Walker struct {
	cur *buffer.Cursor
	cfg Config
	log *slog.Logger
}

// NewWalker creates a Walker positioned at the start of buf.
func NewWalker(buf *buffer.Buffer, opts ...Option) (*Walker, error) {
	w := &Walker{
		cur: buf.Cursor(),
		cfg: Config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))},
	}
	if err := options.Apply(&w.cfg, opts...); err != nil {
		return nil, err
	}
	w.log = w.cfg.logger

	return w, nil
}

// Next reads the entry at the current position and moves past it.
//
// It returns io.EOF at the end of the buffer and when the central directory
// starts. Any other signature fails with errs.ErrNotZip. Entries whose size
// is deferred to a data descriptor cannot be skipped and fail with
// errors.ErrUnsupported.
func (w *Walker) Next() (Entry, error) {
	pos := w.cur.Pos()
	if w.cur.Remaining() == 0 {
		return Entry{}, io.EOF
	}

	sig, err := buffer.At[uint32](w.cur, model.Uint32, pos)
	if err != nil {
		return Entry{}, fmt.Errorf("entry at %d: %w", pos, errs.ErrInsufficientLength)
	}
	switch sig.Value {
	case LocalFileSignature:
	case CentralDirSignature, EndOfCentralDirSignature:
		return Entry{}, io.EOF
	default:
		return Entry{}, fmt.Errorf("entry at %d: signature %#08x: %w", pos, sig.Value, errs.ErrNotZip)
	}

	out, err := buffer.Next[LocalFileHeader](w.cur, LocalFileHeaderSchema)
	if !out.Parsed() {
		return Entry{}, fmt.Errorf("entry at %d: %w", pos, err)
	}
	if out.Status == format.StatusInvalid {
		w.log.Warn("local file header holds undeclared values", "offset", pos, "error", err)
	}

	e := Entry{Offset: pos, Header: out.Value, Valid: out.Valid()}
	if err := w.readBody(&e); err != nil {
		w.cur.Seek(pos)
		return Entry{}, err
	}
	w.log.Debug("zip entry", "name", e.Name, "offset", e.Offset, "size", len(e.Data))

	return e, nil
}

func (w *Walker) readBody(e *Entry) error {
	h := &e.Header
	flags, _ := FieldFlags.Get(h)
	nameLen, _ := FieldNameLength.Get(h)
	extraLen, _ := FieldExtraLength.Get(h)
	size, _ := FieldCompressedSize.Get(h)

	data := w.cur.Buffer().Bytes()
	nameOff := w.cur.Pos()
	e.DataOffset = nameOff + int(nameLen) + int(extraLen)
	end := e.DataOffset + int(size)
	if end > len(data) {
		return fmt.Errorf("entry at %d: payload ends at %d past %d bytes: %w", e.Offset, end, len(data), errs.ErrInsufficientLength)
	}

	name, err := DecodeName(data[nameOff:nameOff+int(nameLen)], flags.Has("UTF8"))
	if err != nil {
		return fmt.Errorf("entry at %d: %w", e.Offset, err)
	}
	e.Name = name

	if flags.Has("DATA_DESCRIPTOR") && size == 0 {
		return fmt.Errorf("entry %q: size deferred to data descriptor: %w", name, errors.ErrUnsupported)
	}
	e.Data = data[e.DataOffset:end]

	if w.cfg.verifyCRC {
		if err := verify(e); err != nil {
			return err
		}
	}

	w.cur.Seek(end)
	if flags.Has("DATA_DESCRIPTOR") {
		w.skipDescriptor()
	}

	return nil
}

func (w *Walker) skipDescriptor() {
	n := 12
	if sig, err := buffer.At[uint32](w.cur, model.Uint32, w.cur.Pos()); err == nil && sig.Value == DataDescriptorSignature {
		n = 16
	}
	w.cur.Seek(w.cur.Pos() + min(n, w.cur.Remaining()))
}

func verify(e *Entry) error {
	if !e.Method().Is("STORED") {
		return nil
	}

	want, _ := FieldCRC32.Get(&e.Header)
	if got := crc32.ChecksumIEEE(e.Data); got != want {
		return fmt.Errorf("entry %q: crc32 %#08x, header says %#08x: %w", e.Name, got, want, errs.ErrChecksumMismatch)
	}

	return nil
}

// Entries reads every remaining entry until io.EOF.
func (w *Walker) Entries() ([]Entry, error) {
	var entries []Entry
	for {
		e, err := w.Next()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)
	}
}
