package buffer

import (
	"fmt"

	"github.com/arloliu/elfeat/internal/options"
)

// DefaultStringLimit is the default bound, terminator included, for
// NUL-terminated strings read through a cursor.
const DefaultStringLimit = 4096

// Config holds buffer-wide settings.
type Config struct {
	stringLimit int
}

// Option configures a Buffer.
type Option = options.Option[*Config]

// WithStringLimit sets the bound used by Cursor.CString.
func WithStringLimit(n int) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("string limit must be positive, got %d", n)
		}
		c.stringLimit = n

		return nil
	})
}

// Buffer is a fixed-length byte store under analysis.
type Buffer struct {
	data []byte
	cfg  Config
}

// New creates a Buffer over data. The buffer takes ownership of data and
// never resizes it; the caller must not modify data except through views.
//
// Parameters:
//   - data: the bytes to analyse, typically file contents or a memory map
//   - opts: optional configuration
//
// Returns:
//   - *Buffer: the new buffer
//   - error: configuration error if an option is invalid
func New(data []byte, opts ...Option) (*Buffer, error) {
	b := &Buffer{
		data: data,
		cfg:  Config{stringLimit: DefaultStringLimit},
	}

	if err := options.Apply(&b.cfg, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

// Bytes returns the underlying bytes.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the buffer length.
func (b *Buffer) Len() int { return len(b.data) }

// StringLimit returns the configured string bound.
func (b *Buffer) StringLimit() int { return b.cfg.stringLimit }

// Cursor returns a cursor at the start of the buffer.
func (b *Buffer) Cursor() *Cursor {
	return &Cursor{buf: b}
}

// CursorAt returns a cursor at pos. The position is validated at parse time.
func (b *Buffer) CursorAt(pos int) *Cursor {
	return &Cursor{buf: b, pos: pos}
}

// View returns an exclusive view over the whole buffer at offset 0.
//
// Each call starts a new view tree; holding views from two trees over the
// same bytes defeats their exclusivity.
func (b *Buffer) View() *View {
	return newView(b, 0, len(b.data))
}
