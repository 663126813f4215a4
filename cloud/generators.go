package cloud

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/paulmach/orb"
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodCircle  = "Circle"
	methodAnnulus = "Annulus"
	methodGrid    = "Grid"
	methodUniform = "Uniform"

	minShapePoints = 3 // a circle/annulus with fewer points carries no loop
)

// Circle returns n points evenly spaced on a circle of radius r centered
// at the origin, IDs assigned by index.
//
// Contract:
//   - n ≥ 3 (else ErrBadGeneratorArg) — fewer points cannot carry a 1-cycle.
//   - r > 0 and finite (else ErrBadGeneratorArg).
//   - Deterministic: point i sits at angle 2πi/n, emitted in ascending i.
//
// Complexity: O(n) time, O(n) space.
func Circle(n int, r float64) ([]Point, error) {
	if n < minShapePoints {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCircle, n, minShapePoints, ErrBadGeneratorArg)
	}
	if !(r > 0) || !isFinite(r) {
		return nil, fmt.Errorf("%s: r=%v: %w", methodCircle, r, ErrBadGeneratorArg)
	}

	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{ID: i, XY: orb.Point{r * math.Cos(theta), r * math.Sin(theta)}}
	}

	return pts, nil
}

// Annulus returns n points sampled uniformly (by area) from the ring
// rInner ≤ ‖p‖ ≤ rOuter, using a private rand.Rand seeded with seed.
//
// Contract:
//   - n ≥ 3, 0 < rInner < rOuter, both finite (else ErrBadGeneratorArg).
//   - Deterministic for a fixed (n, rInner, rOuter, seed) tuple.
//
// Complexity: O(n) time, O(n) space.
func Annulus(n int, rInner, rOuter float64, seed int64) ([]Point, error) {
	if n < minShapePoints {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodAnnulus, n, minShapePoints, ErrBadGeneratorArg)
	}
	if !(rInner > 0) || !(rOuter > rInner) || !isFinite(rOuter) {
		return nil, fmt.Errorf("%s: rInner=%v rOuter=%v: %w", methodAnnulus, rInner, rOuter, ErrBadGeneratorArg)
	}

	rng := rand.New(rand.NewSource(seed))
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		// Area-uniform radius: inverse CDF of r² between rInner² and rOuter².
		u := rng.Float64()
		radius := math.Sqrt(rInner*rInner + u*(rOuter*rOuter-rInner*rInner))
		theta := 2 * math.Pi * rng.Float64()
		pts[i] = Point{ID: i, XY: orb.Point{radius * math.Cos(theta), radius * math.Sin(theta)}}
	}

	return pts, nil
}

// Grid returns cols×rows points on an axis-aligned lattice with the given
// spacing, emitted row-major from the origin, IDs by index.
//
// Contract:
//   - cols ≥ 1, rows ≥ 1, spacing > 0 and finite (else ErrBadGeneratorArg).
//
// Complexity: O(cols·rows) time and space.
func Grid(cols, rows int, spacing float64) ([]Point, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%s: cols=%d rows=%d: %w", methodGrid, cols, rows, ErrBadGeneratorArg)
	}
	if !(spacing > 0) || !isFinite(spacing) {
		return nil, fmt.Errorf("%s: spacing=%v: %w", methodGrid, spacing, ErrBadGeneratorArg)
	}

	pts := make([]Point, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			pts = append(pts, Point{
				ID: y*cols + x,
				XY: orb.Point{float64(x) * spacing, float64(y) * spacing},
			})
		}
	}

	return pts, nil
}

// Uniform returns n points sampled uniformly from the square
// [0,side]×[0,side], using a private rand.Rand seeded with seed.
//
// Contract:
//   - n ≥ 1, side > 0 and finite (else ErrBadGeneratorArg).
//   - Deterministic for a fixed (n, side, seed) tuple.
//
// Complexity: O(n) time, O(n) space.
func Uniform(n int, side float64, seed int64) ([]Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodUniform, n, ErrBadGeneratorArg)
	}
	if !(side > 0) || !isFinite(side) {
		return nil, fmt.Errorf("%s: side=%v: %w", methodUniform, side, ErrBadGeneratorArg)
	}

	rng := rand.New(rand.NewSource(seed))
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point{ID: i, XY: orb.Point{side * rng.Float64(), side * rng.Float64()}}
	}

	return pts, nil
}
