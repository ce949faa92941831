// Package elfeat interprets binary file headers in place.
//
// Byte ranges of a buffer are read as typed values: scalars, values bound to
// a table of declared constants, bit-flag sets, fixed-size arrays and
// multi-field records. Every interpretation reports one of three outcomes:
// the value is valid, it is structurally complete but holds an undeclared
// bit pattern, or the bytes run out. Nothing is copied; records can be
// split into per-field views, updated through a reference and reassembled.
//
// # Basic Usage
//
// Loading the sections of an ELF object:
//
//	import "github.com/arloliu/elfeat"
//
//	data, _ := os.ReadFile("/bin/ls")
//	file, _ := elfeat.LoadELF(data)
//	for _, s := range file.Sections {
//	    fmt.Println(s.Index, s.Name, s.Header.Size.OrElse(0))
//	}
//
// Walking the entries of a ZIP archive:
//
//	entries, _ := elfeat.ZipEntries(data, zip.WithVerifyCRC(true))
//	for _, e := range entries {
//	    fmt.Println(e.Name, e.Method())
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the elf and zip
// packages. The engine itself lives in model (value types and tables),
// record (schemas), and buffer (cursors and exclusive views).
package elfeat

import (
	"github.com/arloliu/elfeat/buffer"
	"github.com/arloliu/elfeat/elf"
	"github.com/arloliu/elfeat/internal/hash"
	"github.com/arloliu/elfeat/zip"
)

// NewELFReader creates an ELF reader over data.
//
// Parameters:
//   - data: the file contents, typically a memory map
//   - opts: optional configuration (see elf.Option)
//
// Returns:
//   - *elf.Reader: the reader
//   - error: an error if an option is invalid
func NewELFReader(data []byte, opts ...elf.Option) (*elf.Reader, error) {
	buf, err := buffer.New(data)
	if err != nil {
		return nil, err
	}

	return elf.NewReader(buf, opts...)
}

// LoadELF reads the header, section headers and section names of data.
//
// A header holding undeclared values is tolerated; sections are still
// loaded. Data that is not a 64-bit little-endian ELF object fails with
// errs.ErrNotELF.
//
// Example:
//
//	file, err := elfeat.LoadELF(data, elf.WithLogger(slog.Default()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	text, err := file.Section(".text")
func LoadELF(data []byte, opts ...elf.Option) (*elf.File, error) {
	r, err := NewELFReader(data, opts...)
	if err != nil {
		return nil, err
	}

	return r.Load()
}

// NewZipWalker creates a walker over the local file entries of data.
func NewZipWalker(data []byte, opts ...zip.Option) (*zip.Walker, error) {
	buf, err := buffer.New(data)
	if err != nil {
		return nil, err
	}

	return zip.NewWalker(buf, opts...)
}

// ZipEntries returns every local file entry of data up to the central
// directory.
func ZipEntries(data []byte, opts ...zip.Option) ([]zip.Entry, error) {
	w, err := NewZipWalker(data, opts...)
	if err != nil {
		return nil, err
	}

	return w.Entries()
}

// SectionID returns the 64-bit identifier used to index a section name.
func SectionID(name string) uint64 {
	return hash.ID(name)
}
