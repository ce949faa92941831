// Package record composes model types into multi-field records.
//
// A record is a Go struct whose fields are model.Optional values. A Schema
// binds each struct field, in declaration order, to a model.Type and a fixed
// byte offset:
//
//	type Entry struct {
//		Magic   model.Optional[model.Value[uint32]]
//		Version model.Optional[uint16]
//	}
//
//	var (
//		entryMagic   = record.Bind("magic", model.Enum(magics), func(e *Entry) *model.Optional[model.Value[uint32]] { return &e.Magic })
//		entryVersion = record.Bind("version", model.Uint16, func(e *Entry) *model.Optional[uint16] { return &e.Version })
//		EntrySchema  = record.NewSchema[Entry]("Entry", entryMagic, entryVersion)
//	)
//
// A Schema is itself a model.Type, so records nest inside arrays and other
// records and can be interpreted through cursors and views.
//
// # Field sizes
//
// Every field occupies at least one byte. A zero-size type, such as a
// model.Array of length zero, cannot be bound as a field: it has no offset of
// its own to tell present from absent, and NewSchema panics on it. Model an
// empty trailing payload by ending the record before it and reading the rest
// of the view separately.
//
// # Partial failure
//
// Parsing walks the fields in order. A field that cannot be parsed
// structurally aborts the record with errs.ErrInsufficientLength; the
// returned record holds the fields parsed so far. A field that parses but is
// not sane is kept, and parsing continues; the record is then returned
// complete with errs.ErrInvalidValue. Complete and Sane tell the two classes
// apart on the value itself.
//
// # In-place access
//
// Field.Ref derives a handle to one field from a view or byte range covering
// the whole record. Assemble goes the other way: it checks that a set of
// field views sits exactly at the declared offsets and joins them back into
// one record view, failing with errs.ErrLayoutMismatch otherwise.
package record
