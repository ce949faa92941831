// Package elf reads ELF64 little-endian headers through the record engine.
//
// The package is schema data plus a walker. HeaderSchema and
// SectionHeaderSchema describe Elf64_Ehdr and Elf64_Shdr; the tables in
// constants.go declare the named values each field may take. Reader locates
// the section header table from the file header, scans it until the engine
// reports a structural failure, and resolves section names through the
// section name string table.
//
// A header whose e_shstrndx is SHN_UNDEF has no string table; name
// resolution is refused with errs.ErrNoStringTable before any string is read.
package elf
