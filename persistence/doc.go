// Package persistence extracts persistence diagrams from Vietoris–Rips
// filtrations by boundary-matrix reduction over GF(2).
//
// 🚀 What is persistent homology?
//
//	As the filtration radius grows, topological features appear and
//	disappear: connected components (H0) merge, loops (H1) form and fill
//	in, voids (H2) close. Persistent homology records each feature as an
//	interval [birth, death) of filtration values; features alive at the
//	end of the filtration are "essential" and get death = +Inf.
//
// ✨ Key properties:
//   - exact: GF(2) column reduction, the standard persistence algorithm
//   - sparse: columns are sorted position slices, never dense matrices
//   - total: any valid filtration reduces; Reduce cannot fail
//   - deterministic: processing order is the filtration's total order,
//     so identical input yields the identical diagram
//   - complete: zero-length and essential intervals are retained; any
//     display filtering is the caller's policy (ByDimension, Finite)
//
// ⚙️ Usage:
//
//	f, _ := rips.BuildFiltration(dm, 1.5)
//	d := persistence.Reduce(f)
//	for _, iv := range d.ByDimension(1) {
//	  fmt.Printf("H1 [%.2f, %.2f)\n", iv.Birth, iv.Death)
//	}
//
// Performance:
//
//   - Time:   O(S³) worst case over S simplices, near-linear in practice
//     for bounded-radius Rips columns, which stay sparse.
//   - Memory: O(S + total column fill).
package persistence
