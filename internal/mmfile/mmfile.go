// Package mmfile maps files into memory for in-place interpretation.
package mmfile

import "errors"

// ErrClosed is returned by operations on a closed File.
var ErrClosed = errors.New("mmfile: file is closed")

// Mode selects how a file is mapped.
type Mode uint8

const (
	// ReadOnly maps the file for reading.
	ReadOnly Mode = iota
	// ReadWrite maps the file shared and writable; Sync writes changes back.
	ReadWrite
)

// File is a mapped file. Data aliases the mapping and must not be used
// after Close.
type File struct {
	path string
	mode Mode
	data []byte
	impl backend
}

type backend interface {
	sync(data []byte) error
	close(data []byte) error
}

// Path returns the mapped file's path.
func (f *File) Path() string { return f.path }

// Mode returns the mapping mode.
func (f *File) Mode() Mode { return f.mode }

// Data returns the mapped bytes.
func (f *File) Data() []byte { return f.data }

// Sync flushes changes of a ReadWrite mapping to disk. It is a no-op for
// ReadOnly mappings.
func (f *File) Sync() error {
	if f.impl == nil {
		return ErrClosed
	}
	if f.mode != ReadWrite || len(f.data) == 0 {
		return nil
	}

	return f.impl.sync(f.data)
}

// Close releases the mapping. Closing twice is a no-op.
func (f *File) Close() error {
	if f.impl == nil {
		return nil
	}
	err := f.impl.close(f.data)
	f.impl = nil
	f.data = nil

	return err
}

// Map maps the file at path read-only.
func Map(path string) (*File, error) {
	return open(path, ReadOnly)
}

// MapRW maps the file at path shared and writable.
func MapRW(path string) (*File, error) {
	return open(path, ReadWrite)
}
