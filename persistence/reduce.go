package persistence

import (
	"fmt"
	"math"
	"sort"

	"github.com/topokit/vrips/rips"
)

// Reduce — boundary-matrix reduction over GF(2)
//
// Description:
//
//	Reduce runs the standard persistence algorithm over a filtration's
//	total order. Every simplex contributes one boundary column (the
//	positions of its codimension-1 faces); columns are reduced left to
//	right by repeatedly XOR-ing in the already-reduced column that owns
//	the same lowest entry, until the column empties (the simplex is a
//	birth) or claims an unowned low (the simplex is the death of the
//	class born at that low).
//
// Algorithm Outline:
//  1. For j = 0..S-1 in filtration order:
//     col = boundary(σ_j) as sorted positions (empty for vertices).
//  2. While col is nonempty and low(col) is owned by column k:
//     col = col XOR columns[k] (symmetric difference of sorted slices).
//  3. If col emptied, σ_j is positive (a birth; paired later or essential).
//     Else σ_j claims low(col): the simplex at that position is the birth
//     of the class that σ_j kills.
//  4. Assemble: every positive position p yields one interval —
//     [filtration(p), filtration(owner-of-p)) if some column claimed p,
//     else [filtration(p), +Inf).
//
// Tie-break note: among simplices sharing a filtration value, the
// filtration's deterministic order decides which simplex ends up as a
// pair's death; the multiset of (birth, death, dimension) values is the
// same for any valid order, and the tests assert exactly that.
//
// Complexity:
//
//	Time   = O(S³) worst case; near-linear for sparse Rips columns.
//	Memory = O(S + column fill).
//
// Reduce is total over any valid filtration: it returns a Diagram and
// cannot fail. Resource caps live in the enumerator, upstream.
func Reduce(f *rips.Filtration) *Diagram {
	ss := f.Simplices()
	n := len(ss)

	// lowOwner[p] = the column whose reduced low is p, or -1.
	lowOwner := make([]int, n)
	for i := range lowOwner {
		lowOwner[i] = -1
	}
	// columns[j] holds the reduced boundary of σ_j; nil marks a positive
	// (birth) simplex, which includes every vertex.
	columns := make([][]int, n)

	var scratch []int // reusable buffer for XOR merges
	for j := 0; j < n; j++ {
		col := boundaryColumn(f, ss[j])

		// Reduce until empty or the low is unclaimed.
		for len(col) > 0 {
			low := col[len(col)-1]
			k := lowOwner[low]
			if k < 0 {
				break
			}
			col, scratch = xorSorted(col, columns[k], scratch)
		}

		if len(col) == 0 {
			columns[j] = nil
			continue
		}
		columns[j] = col
		lowOwner[col[len(col)-1]] = j
	}

	return assemble(ss, columns, lowOwner)
}

// boundaryColumn returns the filtration positions of the codimension-1
// faces of s, sorted ascending. Vertices have an empty boundary.
// A missing face is an internal invariant violation (the enumerator
// guarantees face closure), so it panics rather than erroring.
func boundaryColumn(f *rips.Filtration, s rips.Simplex) []int {
	if s.Dim() == 0 {
		return nil
	}

	vs := s.Vertices
	col := make([]int, 0, len(vs))
	face := make([]int, 0, len(vs)-1)
	for drop := range vs {
		face = face[:0]
		for k, v := range vs {
			if k != drop {
				face = append(face, v)
			}
		}
		pos, ok := f.Position(face)
		if !ok {
			panic(fmt.Sprintf("persistence: face %v of %v missing from filtration", face, vs))
		}
		col = append(col, pos)
	}
	sort.Ints(col)

	return col
}

// xorSorted computes the symmetric difference of two ascending position
// slices (GF(2) column addition). It writes into buf to avoid an
// allocation per merge and returns (result, spare) so the caller can
// recycle the slice that was consumed.
func xorSorted(a, b, buf []int) (result, spare []int) {
	out := buf[:0]
	i, k := 0, 0
	for i < len(a) && k < len(b) {
		switch {
		case a[i] < b[k]:
			out = append(out, a[i])
			i++
		case a[i] > b[k]:
			out = append(out, b[k])
			k++
		default: // equal entries cancel over GF(2)
			i++
			k++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[k:]...)

	return out, a
}

// assemble converts the reduction's bookkeeping into the public Diagram:
// one interval per positive simplex, paired with the column that claimed
// it or essential if none did. Results are sorted by
// (dimension, birth, death) for slice-wise comparability.
func assemble(ss []rips.Simplex, columns [][]int, lowOwner []int) *Diagram {
	type record struct {
		iv   Interval
		pair Pair
	}
	records := make([]record, 0, len(ss))

	for p := range ss {
		if columns[p] != nil {
			continue // negative column: it kills, it is not a class
		}
		birth := ss[p]
		iv := Interval{Birth: birth.Filtration, Death: math.Inf(1), Dimension: birth.Dim()}
		pair := Pair{Birth: birth}
		if owner := lowOwner[p]; owner >= 0 {
			death := ss[owner]
			iv.Death = death.Filtration
			pair.Death = &death
		}
		records = append(records, record{iv: iv, pair: pair})
	}

	sort.Slice(records, func(i, j int) bool {
		a, b := records[i].iv, records[j].iv
		if a.Dimension != b.Dimension {
			return a.Dimension < b.Dimension
		}
		if a.Birth != b.Birth {
			return a.Birth < b.Birth
		}

		return a.Death < b.Death // +Inf sorts last within a birth
	})

	d := &Diagram{
		pairs:     make([]Pair, len(records)),
		intervals: make([]Interval, len(records)),
	}
	for i, r := range records {
		d.pairs[i] = r.pair
		d.intervals[i] = r.iv
	}

	return d
}
