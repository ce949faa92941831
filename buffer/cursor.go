package buffer

import (
	"fmt"

	"github.com/arloliu/elfeat/errs"
	"github.com/arloliu/elfeat/format"
	"github.com/arloliu/elfeat/model"
)

// Cursor is a read-only position in a Buffer.
type Cursor struct {
	buf *Buffer
	pos int
}

// Buffer returns the buffer the cursor reads from.
func (c *Cursor) Buffer() *Buffer { return c.buf }

// Pos returns the current absolute position.
func (c *Cursor) Pos() int { return c.pos }

// Seek moves the cursor to pos and returns it. The position is not checked
// until the next interpretation.
func (c *Cursor) Seek(pos int) *Cursor {
	c.pos = pos
	return c
}

// Remaining returns the number of bytes from the cursor to the end of the
// buffer, or zero when the cursor lies outside it.
func (c *Cursor) Remaining() int {
	if c.pos < 0 || c.pos > len(c.buf.data) {
		return 0
	}

	return len(c.buf.data) - c.pos
}

// Next interprets a T at the cursor.
//
// When the value parses structurally, sane or not, the cursor advances by
// the bytes consumed. When it does not, the cursor stays where it was.
// The returned error is nil for a valid value and otherwise wraps
// errs.ErrInvalidValue, errs.ErrInsufficientLength or errs.ErrOutOfRange.
func Next[T any](c *Cursor, t model.Type[T]) (Outcome[T], error) {
	out, err := interpret(c.buf, t, c.pos)
	if out.Parsed() {
		c.pos += out.N
	}

	return out, err
}

// At interprets a T at the absolute position pos without moving the cursor.
// A position whose T-sized range does not fit in the buffer is a range
// error.
func At[T any](c *Cursor, t model.Type[T], pos int) (Outcome[T], error) {
	size := t.Size()
	if pos < 0 || pos > len(c.buf.data)-size {
		return Outcome[T]{Pos: pos, Status: format.StatusFailed},
			fmt.Errorf("%s at %d: %d bytes exceed buffer of %d: %w", t.Name(), pos, size, len(c.buf.data), errs.ErrOutOfRange)
	}

	return interpret(c.buf, t, pos)
}

func interpret[T any](b *Buffer, t model.Type[T], pos int) (Outcome[T], error) {
	if pos < 0 || pos > len(b.data) {
		return Outcome[T]{Pos: pos, Status: format.StatusFailed},
			fmt.Errorf("%s at %d: position outside buffer of %d: %w", t.Name(), pos, len(b.data), errs.ErrOutOfRange)
	}

	v, n, err := model.Parse(t, b.data[pos:])
	out := Outcome[T]{Pos: pos, Value: v, N: n, Status: errs.StatusOf(err)}
	if !out.Parsed() {
		out.N = 0
	}
	if err != nil {
		return out, fmt.Errorf("at %d: %w", pos, err)
	}

	return out, nil
}

// CString reads a NUL-terminated string at the absolute position pos,
// bounded by the buffer's string limit. The cursor does not move.
func (c *Cursor) CString(pos int) (string, error) {
	s, _, err := model.CString(c.buf.data, pos, c.buf.cfg.stringLimit)
	return s, err
}

// NextCString reads a NUL-terminated string at the cursor and advances past
// its terminator on success.
func (c *Cursor) NextCString() (string, error) {
	s, n, err := model.CString(c.buf.data, c.pos, c.buf.cfg.stringLimit)
	if err != nil {
		return "", err
	}
	c.pos += n

	return s, nil
}
