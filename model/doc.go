// Package model defines the typed interpretation protocol and the value types
// built on it.
//
// Every modeled type is described by a Type[T] descriptor. A descriptor has a
// fixed byte size that never depends on content, decodes exactly Size() bytes
// into a T, appends the encoding of a T, and judges whether a T is sane, that
// is, whether its bit pattern is one the format allows.
//
// # Structural vs. semantic failure
//
// Parse distinguishes the two failure classes of the engine:
//
//   - errs.ErrInsufficientLength: not enough bytes to even attempt the parse.
//     No value is produced.
//   - errs.ErrInvalidValue: the bytes were consumed, the value is returned,
//     but it failed its sanity check.
//
// # Value types
//
//   - Scalar[P]: a raw little-endian integer, always sane.
//   - Value[P] (EnumType): an integer constrained to a declared table of named
//     constants. An empty table places no constraint on the value.
//   - Flags[P] (FlagsType): a bit set over a declared table of named masks.
//     A value is sane when no undeclared bit is set, so an empty table only
//     admits zero.
//   - []T (ArrayType): exactly N elements of one type.
//
// Composed records live in package record; they satisfy the same protocol and
// can therefore be nested in arrays and in other records.
//
// # In-place access
//
// Constitute wraps an exact-size byte range in a Ref[T]. Loads decode from the
// range and stores encode back into it, so a Ref obtained from a mutable view
// edits the underlying buffer directly.
package model
