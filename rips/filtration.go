package rips

import "sort"

// vertexBits is the width of one packed vertex index inside a uint64 key.
// Four slots of 16 bits cover simplices up to MaxSupportedDimension.
const vertexBits = 16

// Filtration is the totally ordered simplex sequence the persistence
// reduction processes. The order is:
//
//	primary   — filtration value, ascending
//	secondary — dimension, ascending (faces before cofaces at ties)
//	tertiary  — lexicographic vertex tuple (deterministic tie-break)
//
// Ties MUST break deterministically: the reduction's pairing depends on
// processing order, and two runs over identical input must pair
// identically. The tertiary key depends only on point indices, so the
// order is a pure function of the cloud and the radius.
type Filtration struct {
	simplices []Simplex
	index     map[uint64]int // packed vertex key → position
}

// newFiltration sorts simplices into filtration order and builds the
// position index. Ownership of the slice transfers to the Filtration.
func newFiltration(simplices []Simplex) *Filtration {
	sort.Slice(simplices, func(i, j int) bool {
		return lessSimplex(simplices[i], simplices[j])
	})

	index := make(map[uint64]int, len(simplices))
	for pos, s := range simplices {
		index[packVertices(s.Vertices)] = pos
	}

	return &Filtration{simplices: simplices, index: index}
}

// lessSimplex implements the (filtration, dimension, lex vertices) order.
// It is a strict total order over distinct simplices, so sort.Slice
// yields one unique permutation regardless of input order.
func lessSimplex(a, b Simplex) bool {
	if a.Filtration != b.Filtration {
		return a.Filtration < b.Filtration
	}
	if len(a.Vertices) != len(b.Vertices) {
		return len(a.Vertices) < len(b.Vertices)
	}
	for k := range a.Vertices {
		if a.Vertices[k] != b.Vertices[k] {
			return a.Vertices[k] < b.Vertices[k]
		}
	}

	return false
}

// packVertices packs up to 4 sorted vertex indices into one uint64 key.
// Each slot stores index+1 so an absent slot (0) never collides with
// vertex 0. Callers guarantee len(vs) ≤ 4 and every v < MaxVertices.
func packVertices(vs []int) uint64 {
	var key uint64
	for i, v := range vs {
		key |= uint64(v+1) << (vertexBits * i)
	}

	return key
}

// Len returns the number of simplices in the filtration.
func (f *Filtration) Len() int { return len(f.simplices) }

// Simplices returns the simplices in filtration order.
// The slice is owned by the Filtration; treat it as read-only.
func (f *Filtration) Simplices() []Simplex { return f.simplices }

// Position returns the filtration position of the simplex with the given
// sorted vertex tuple, and whether it is present.
func (f *Filtration) Position(vertices []int) (int, bool) {
	pos, ok := f.index[packVertices(vertices)]

	return pos, ok
}
