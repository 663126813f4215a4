package cloud

import (
	"math"

	"github.com/paulmach/orb/planar"
)

// DistanceMatrix is the symmetric N×N matrix of pairwise Euclidean
// distances of one cloud, stored flat in row-major order.
//
// A DistanceMatrix is owned by a single computation: it is built once
// from an immutable point sequence, read by the simplex enumerator, and
// discarded on cache invalidation. It keeps a private copy of its points
// because the enumerator needs coordinates (not just distances) to build
// its spatial neighbor index.
type DistanceMatrix struct {
	n      int
	points []Point
	d      []float64 // flat row-major, d[i*n+j]
}

// NewDistanceMatrix validates points and computes all pairwise distances.
//
// Error Conditions:
//   - ErrNoPoints    : len(points) == 0.
//   - ErrNonFinite   : any coordinate is NaN or ±Inf.
//   - ErrDuplicateID : two points share an ID.
//
// Steps:
//  1. Validate emptiness, coordinate finiteness, ID uniqueness.
//  2. Copy the point sequence (callers keep ownership of theirs).
//  3. Fill the upper triangle with planar.Distance and mirror it; the
//     diagonal stays zero.
//
// Complexity: O(N²) time, O(N²) memory.
func NewDistanceMatrix(points []Point) (*DistanceMatrix, error) {
	// 1. Validate input before allocating anything quadratic.
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	seen := make(map[int]struct{}, len(points))
	for _, p := range points {
		if !isFinite(p.XY.X()) || !isFinite(p.XY.Y()) {
			return nil, ErrNonFinite
		}
		if _, dup := seen[p.ID]; dup {
			return nil, ErrDuplicateID
		}
		seen[p.ID] = struct{}{}
	}

	// 2. Private copy; the matrix must not alias caller memory.
	n := len(points)
	own := make([]Point, n)
	copy(own, points)

	// 3. Upper triangle + mirror. Both halves come from the same
	//    floating-point computation, so D[i][j] == D[j][i] exactly.
	d := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := planar.Distance(own[i].XY, own[j].XY)
			d[i*n+j] = dist
			d[j*n+i] = dist
		}
	}

	return &DistanceMatrix{n: n, points: own, d: d}, nil
}

// Len returns the number of points N.
func (m *DistanceMatrix) Len() int { return m.n }

// At returns the distance between points i and j. Indices are trusted
// (callers iterate 0..Len()-1); out-of-range access panics like any
// slice access would.
func (m *DistanceMatrix) At(i, j int) float64 { return m.d[i*m.n+j] }

// Points returns the cloud this matrix was built from, in index order.
// The returned slice is the matrix's private copy; treat it as read-only.
func (m *DistanceMatrix) Points() []Point { return m.points }

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
