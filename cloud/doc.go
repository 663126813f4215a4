// Package cloud provides planar point clouds and their pairwise
// Euclidean distance matrices — the raw material every Vietoris–Rips
// filtration is built from.
//
// A cloud is a fixed ordered sequence of points; index order matters
// because downstream tie-breaking (and therefore reproducibility) is
// defined in terms of point indices. Coordinates use orb.Point from
// github.com/paulmach/orb, and distances are exact planar Euclidean
// distances via orb/planar.
//
// The package also ships deterministic preset generators (Circle,
// Annulus, Grid, Uniform) for tests, benchmarks and demos. Generators
// that involve randomness take an explicit seed; two calls with equal
// arguments always produce identical clouds.
//
// Performance:
//
//   - NewDistanceMatrix: Time O(N²), Memory O(N²) — acceptable for the
//     interactive point counts this library targets (≤ a few hundred).
package cloud
