package engine

import (
	"slices"

	"github.com/lgbarn/knightgrid/internal/grid"
)

// BlockerSet is an unordered set of blocker cells. The zero value is an
// empty set. Methods never modify the receiver; With and Without return a
// new set so callers can keep the previous state.
type BlockerSet struct {
	cells map[grid.Index]struct{}
}

// NewBlockerSet returns a set holding the given cells. Duplicates collapse.
func NewBlockerSet(cells ...grid.Index) BlockerSet {
	s := BlockerSet{cells: make(map[grid.Index]struct{}, len(cells))}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

// Has reports whether c is in the set.
func (s BlockerSet) Has(c grid.Index) bool {
	_, ok := s.cells[c]
	return ok
}

// Len returns the number of blockers.
func (s BlockerSet) Len() int {
	return len(s.cells)
}

// Indexes returns the blockers in ascending order.
func (s BlockerSet) Indexes() []grid.Index {
	out := make([]grid.Index, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Clone returns an independent copy of s.
func (s BlockerSet) Clone() BlockerSet {
	return NewBlockerSet(s.Indexes()...)
}

// With returns a copy of s that also holds c.
func (s BlockerSet) With(c grid.Index) BlockerSet {
	out := s.Clone()
	out.cells[c] = struct{}{}
	return out
}

// Without returns a copy of s that does not hold c.
func (s BlockerSet) Without(c grid.Index) BlockerSet {
	out := s.Clone()
	delete(out.cells, c)
	return out
}

// Equal reports whether s and other hold the same cells.
func (s BlockerSet) Equal(other BlockerSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for c := range s.cells {
		if !other.Has(c) {
			return false
		}
	}
	return true
}
