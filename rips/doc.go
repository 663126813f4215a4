// Package rips enumerates Vietoris–Rips complexes over planar point
// clouds and orders them into the filtration the persistence reduction
// consumes.
//
// 🚀 What is a Vietoris–Rips filtration?
//
//	The complex at radius r contains every simplex whose vertices are
//	pairwise within distance r. Sweeping r from 0 upward nests these
//	complexes into a filtration; each simplex is tagged with the radius
//	at which it enters (its filtration value — the maximum pairwise
//	distance among its vertices).
//
// ✨ Key properties:
//   - monotone by construction: a simplex never enters before its faces
//   - deterministic total order: (filtration asc, dimension asc,
//     lexicographic vertex tuple) — identical input, identical order
//   - bounded: a simplex budget aborts combinatorial blowup with
//     ErrSimplexBudget instead of hanging
//   - pruned enumeration: an R-tree neighbor index and incremental
//     clique expansion skip doomed vertex combinations early
//
// ⚙️ Usage:
//
//	dm, _ := cloud.NewDistanceMatrix(points)
//	f, err := rips.BuildFiltration(dm, 1.5, rips.WithMaxDimension(2))
//	if err != nil {
//	  // ErrNonPositiveRadius, ErrDimensionOutOfRange, ErrSimplexBudget, ...
//	}
//
// Performance:
//
//   - Time:   O(E + T·deg) for E edges and T higher simplices emitted,
//     plus O(S log S) for the final sort of S simplices.
//   - Memory: O(S).
package rips
