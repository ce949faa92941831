package buffer

import "github.com/arloliu/elfeat/format"

// Outcome is the result of interpreting a T through a cursor.
//
// A failed outcome may still carry a partially parsed value when T is a
// composed record.
type Outcome[T any] struct {
	// Pos is the absolute position the value was read from.
	Pos int
	// Value is the decoded value.
	Value T
	// N is the number of bytes consumed; zero when Status is StatusFailed.
	N int
	// Status tells a sane value, an insane value and a failed parse apart.
	Status format.Status
}

// Valid reports whether the value parsed and is sane.
func (o Outcome[T]) Valid() bool { return o.Status == format.StatusValid }

// Parsed reports whether the value parsed structurally, sane or not.
func (o Outcome[T]) Parsed() bool { return o.Status.Parsed() }

// End returns the absolute position just past the value.
func (o Outcome[T]) End() int { return o.Pos + o.N }
