package elf

import (
	"fmt"

	"github.com/arloliu/elfeat/errs"
	"github.com/arloliu/elfeat/internal/collision"
	"github.com/arloliu/elfeat/internal/hash"
)

// Section is a section header with its resolved name.
type Section struct {
	Index  int
	Name   string
	ID     uint64 // xxHash64 of Name; zero for unnamed or not yet hashed
	Header SectionHeader
}

// File is a loaded ELF file: its header and named sections.
type File struct {
	Header   Header
	Sections []Section

	index *SectionIndex
}

// Section returns the first section named name.
func (f *File) Section(name string) (Section, error) {
	if s, ok := f.index.Lookup(name); ok {
		return s, nil
	}

	return Section{}, fmt.Errorf("%q: %w", name, errs.ErrSectionNotFound)
}

// Index returns the name index of the file's sections.
func (f *File) Index() *SectionIndex { return f.index }

// SectionIndex finds sections by name. Names are keyed by their xxHash64;
// lookups compare the full name, so hash collisions cost a scan but never a
// wrong answer.
type SectionIndex struct {
	sections   []Section
	byID       map[uint64][]int
	tracker    *collision.Tracker
	duplicates []string
}

// NewSectionIndex indexes the named sections. Unnamed sections are skipped
// and when a name repeats the first section keeps it.
func NewSectionIndex(sections []Section) *SectionIndex {
	x := &SectionIndex{
		sections: sections,
		byID:     make(map[uint64][]int, len(sections)),
		tracker:  collision.NewTracker(),
	}

	for i, s := range sections {
		if s.Name == "" {
			continue
		}
		if _, ok := x.Lookup(s.Name); ok {
			x.duplicates = append(x.duplicates, s.Name)
			continue
		}

		id := s.ID
		if id == 0 {
			id = hash.ID(s.Name)
		}
		if err := x.tracker.Track(s.Name, id); err != nil {
			x.duplicates = append(x.duplicates, s.Name)
			continue
		}
		x.byID[id] = append(x.byID[id], i)
	}

	return x
}

// Lookup returns the section indexed under name.
func (x *SectionIndex) Lookup(name string) (Section, bool) {
	for _, i := range x.byID[hash.ID(name)] {
		if x.sections[i].Name == name {
			return x.sections[i], true
		}
	}

	return Section{}, false
}

// Len returns the number of indexed names.
func (x *SectionIndex) Len() int { return x.tracker.Count() }

// Names returns the indexed names in section order.
func (x *SectionIndex) Names() []string { return x.tracker.Names() }

// Duplicates returns every name that appeared again after being indexed.
func (x *SectionIndex) Duplicates() []string { return x.duplicates }

// HasCollision reports whether two distinct names share a hash.
func (x *SectionIndex) HasCollision() bool { return x.tracker.HasCollision() }
