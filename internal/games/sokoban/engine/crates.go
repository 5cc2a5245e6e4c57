package engine

import (
	"cmp"
	"slices"
)

// CrateSet holds crate positions. A coordinate is either present or not,
// so a set can never contain duplicate crates.
type CrateSet struct {
	m map[Coord]struct{}
}

// NewCrateSet builds a set from the given coordinates.
// Repeated coordinates collapse into one crate.
func NewCrateSet(coords ...Coord) CrateSet {
	s := CrateSet{m: make(map[Coord]struct{}, len(coords))}
	for _, c := range coords {
		s.m[c] = struct{}{}
	}
	return s
}

// Has reports whether a crate sits at c.
func (s CrateSet) Has(c Coord) bool {
	_, ok := s.m[c]
	return ok
}

// Len returns the number of crates.
func (s CrateSet) Len() int {
	return len(s.m)
}

// move relocates the crate at from to to.
func (s *CrateSet) move(from, to Coord) {
	delete(s.m, from)
	s.m[to] = struct{}{}
}

// Clone returns an independent copy of the set.
func (s CrateSet) Clone() CrateSet {
	out := CrateSet{m: make(map[Coord]struct{}, len(s.m))}
	for c := range s.m {
		out.m[c] = struct{}{}
	}
	return out
}

// Slice returns the crate coordinates in row-major order.
func (s CrateSet) Slice() []Coord {
	out := make([]Coord, 0, len(s.m))
	for c := range s.m {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Coord) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}
