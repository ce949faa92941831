package elf

import (
	"fmt"

	"github.com/arloliu/elfeat/internal/hash"
	"github.com/arloliu/elfeat/model"
)

// StringTable is a blob of NUL-terminated names addressed by offset.
type StringTable struct {
	data  []byte
	limit int
}

// NewStringTable wraps blob. Names longer than limit bytes, terminator
// included, are rejected; limit <= 0 bounds names by the blob only.
func NewStringTable(blob []byte, limit int) StringTable {
	return StringTable{data: blob, limit: limit}
}

// Len returns the blob size.
func (t StringTable) Len() int { return len(t.data) }

// Name returns the NUL-terminated run starting at off. Offsets outside the
// blob and runs without a terminator inside it are errors; nothing past the
// blob is read.
func (t StringTable) Name(off uint32) (string, error) {
	s, _, err := model.CString(t.data, int(off), t.limit)
	if err != nil {
		return "", fmt.Errorf("name at %d: %w", off, err)
	}

	return s, nil
}

// NameID returns the name at off together with its identifier, hashed from
// the bytes still inside the blob.
func (t StringTable) NameID(off uint32) (string, uint64, error) {
	s, n, err := model.CString(t.data, int(off), t.limit)
	if err != nil {
		return "", 0, fmt.Errorf("name at %d: %w", off, err)
	}

	return s, hash.IDBytes(t.data[int(off) : int(off)+n-1]), nil
}
