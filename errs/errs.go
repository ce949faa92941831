// Package errs defines the sentinel errors returned by the interpretation engine.
//
// Every error produced by the model, record and buffer packages wraps exactly one
// of the sentinels below, so callers can classify failures with errors.Is or
// with KindOf.
package errs

import (
	"errors"

	"github.com/arloliu/elfeat/format"
)

var (
	// ErrInsufficientLength indicates too few bytes remained to attempt the parse.
	ErrInsufficientLength = errors.New("insufficient length")
	// ErrInvalidValue indicates the bytes were consumed but the value failed its sanity check.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfRange indicates an offset or split point lies outside the buffer or view.
	ErrOutOfRange = errors.New("offset out of range")
	// ErrInvalidSplit indicates split points were given out of order.
	ErrInvalidSplit = errors.New("invalid split order")
	// ErrViewConsumed indicates a view was used after it had been split or joined.
	ErrViewConsumed = errors.New("view already consumed")
	// ErrForeignView indicates views from different buffers were combined.
	ErrForeignView = errors.New("view belongs to a different buffer")
	// ErrStringTooLong indicates no NUL terminator was found within the configured bound.
	ErrStringTooLong = errors.New("string exceeds length bound")
	// ErrUnterminatedString indicates the buffer ended before a NUL terminator.
	ErrUnterminatedString = errors.New("unterminated string")

	// ErrLayoutMismatch indicates a record's declared layout disagrees with the
	// actual placement of its fields. It signals a defect in the schema, not bad data.
	ErrLayoutMismatch = errors.New("record layout mismatch")

	// ErrUnknownConstant indicates a constant or flag name is not declared in its table.
	ErrUnknownConstant = errors.New("unknown constant")
	// ErrIncompleteRecord indicates an operation needed every field of a record to be present.
	ErrIncompleteRecord = errors.New("incomplete record")

	// ErrDuplicateName indicates the same name was indexed twice.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrEmptyName indicates an empty name was offered for indexing.
	ErrEmptyName = errors.New("empty name")

	// ErrNotELF indicates the input does not start with an ELF64 little-endian header.
	ErrNotELF = errors.New("not an ELF64 little-endian file")
	// ErrNoStringTable indicates the section name string table index is undefined or out of range.
	ErrNoStringTable = errors.New("no section name string table")
	// ErrSectionNotFound indicates no section carries the requested name.
	ErrSectionNotFound = errors.New("section not found")
	// ErrNotZip indicates a local file header signature was expected but not found.
	ErrNotZip = errors.New("not a zip local file header")
	// ErrChecksumMismatch indicates a stored entry's CRC-32 does not match its data.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// KindOf classifies err according to the engine's error taxonomy.
// It returns format.KindNone for a nil error and for errors outside the taxonomy.
func KindOf(err error) format.ErrorKind {
	switch {
	case err == nil:
		return format.KindNone
	case errors.Is(err, ErrLayoutMismatch):
		return format.KindLayoutMismatch
	case errors.Is(err, ErrInsufficientLength),
		errors.Is(err, ErrUnterminatedString):
		return format.KindInsufficientLength
	case errors.Is(err, ErrInvalidValue):
		return format.KindInvalidValue
	case errors.Is(err, ErrOutOfRange),
		errors.Is(err, ErrInvalidSplit),
		errors.Is(err, ErrViewConsumed),
		errors.Is(err, ErrForeignView),
		errors.Is(err, ErrStringTooLong):
		return format.KindRange
	default:
		return format.KindNone
	}
}

// StatusOf maps the error of a parse to its outcome status: nil is valid,
// an invalid value is invalid and every other error is a failure.
func StatusOf(err error) format.Status {
	switch {
	case err == nil:
		return format.StatusValid
	case KindOf(err) == format.KindInvalidValue:
		return format.StatusInvalid
	default:
		return format.StatusFailed
	}
}
