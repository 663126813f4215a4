// Package persistence defines the diagram types returned by Reduce.
package persistence

import (
	"math"

	"github.com/topokit/vrips/rips"
)

// Interval is one persistence feature: a class of dimension Dimension
// born at filtration value Birth that dies at Death. Essential classes
// (never dying within the filtration) carry Death = +Inf. Zero-length
// intervals (Birth == Death) are mathematically valid and retained.
type Interval struct {
	Birth     float64
	Death     float64
	Dimension int
}

// Essential reports whether the interval never dies within the filtration.
func (iv Interval) Essential() bool { return math.IsInf(iv.Death, 1) }

// Pair links an interval back to the simplices that created it: the
// birth simplex whose appearance opened the class, and the death simplex
// whose appearance closed it. Death is nil for essential classes.
type Pair struct {
	Birth rips.Simplex
	Death *rips.Simplex
}

// Dimension returns the homological dimension of the pair (the dimension
// of its birth simplex).
func (p Pair) Dimension() int { return p.Birth.Dim() }

// Diagram is the complete persistence diagram of one filtration:
// every pair and every interval, including essential and zero-length
// ones. Filtering for display is caller policy, served by the
// ByDimension and Finite helpers.
//
// Intervals are sorted by (dimension, birth, death, essential-last)
// so that two diagrams over identical input compare equal slice-wise.
type Diagram struct {
	pairs     []Pair
	intervals []Interval
}

// Intervals returns all intervals, essential included, in the diagram's
// deterministic order. The slice is owned by the Diagram; treat it as
// read-only.
func (d *Diagram) Intervals() []Interval { return d.intervals }

// Pairs returns the simplex-level pairing behind the intervals, in the
// same order as Intervals.
func (d *Diagram) Pairs() []Pair { return d.pairs }

// ByDimension returns the intervals of one homological dimension.
func (d *Diagram) ByDimension(dim int) []Interval {
	out := make([]Interval, 0, len(d.intervals))
	for _, iv := range d.intervals {
		if iv.Dimension == dim {
			out = append(out, iv)
		}
	}

	return out
}

// Finite returns only the intervals with finite death, dropping
// essential classes — the usual choice for barcode rendering.
func (d *Diagram) Finite() []Interval {
	out := make([]Interval, 0, len(d.intervals))
	for _, iv := range d.intervals {
		if !iv.Essential() {
			out = append(out, iv)
		}
	}

	return out
}
