package collision

import (
	"github.com/arloliu/elfeat/errs"
)

// Tracker records names together with their 64-bit hashes and detects
// duplicates and hash collisions while an index is being built.
type Tracker struct {
	names        map[uint64]string // hash -> first name seen
	ordered      []string          // names in insertion order
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:   make(map[uint64]string),
		ordered: make([]string, 0),
	}
}

// Track records name under hash.
//
// Returns:
//   - errs.ErrEmptyName if name is empty
//   - errs.ErrDuplicateName if the same name was already tracked
//
// Two different names sharing one hash are not an error; the collision flag
// is raised instead and callers fall back to comparing names.
func (t *Tracker) Track(name string, hash uint64) error {
	if name == "" {
		return errs.ErrEmptyName
	}

	if existing, exists := t.names[hash]; exists {
		if existing == name {
			return errs.ErrDuplicateName
		}
		t.hasCollision = true
	} else {
		t.names[hash] = name
	}

	t.ordered = append(t.ordered, name)

	return nil
}

// HasCollision returns true if two different names produced the same hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in insertion order.
func (t *Tracker) Names() []string {
	return t.ordered
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.ordered)
}
