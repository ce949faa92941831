package model

import (
	"bytes"
	"fmt"

	"github.com/arloliu/elfeat/errs"
)

// CString reads a NUL-terminated string starting at off in b.
//
// At most limit bytes, terminator included, are scanned; limit <= 0 scans to
// the end of b. It returns the string without its terminator and the number
// of bytes consumed including the terminator. It never reads outside b.
func CString(b []byte, off int, limit int) (string, int, error) {
	if off < 0 || off > len(b) {
		return "", 0, fmt.Errorf("string at %d in %d bytes: %w", off, len(b), errs.ErrOutOfRange)
	}

	window := b[off:]
	bounded := limit > 0 && limit < len(window)
	if bounded {
		window = window[:limit]
	}

	i := bytes.IndexByte(window, 0)
	if i < 0 {
		if bounded {
			return "", 0, fmt.Errorf("string at %d: no terminator within %d bytes: %w", off, limit, errs.ErrStringTooLong)
		}

		return "", 0, fmt.Errorf("string at %d: %w", off, errs.ErrUnterminatedString)
	}

	return string(window[:i]), i + 1, nil
}
