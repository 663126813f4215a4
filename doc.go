// Package vrips computes persistent homology of planar point clouds via
// Vietoris–Rips filtrations — from distance matrices to persistence
// diagrams, fast enough for interactive use.
//
// 🚀 What is vrips?
//
//	A small, deterministic library that brings together:
//		• cloud/       — planar point clouds, pairwise distance matrices, preset generators
//		• rips/        — Vietoris–Rips simplex enumeration & filtration ordering
//		• persistence/ — boundary-matrix reduction over GF(2), persistence diagrams
//		• engine/      — the session façade: SetPoints → ComputeVietorisRips → ComputePersistence
//
// ✨ Why choose vrips?
//
//   - Deterministic – identical input yields identical diagrams, always
//   - Bounded – a simplex budget turns combinatorial blowup into a clean error
//   - Pure Go – no cgo, no WASM bridges, no hidden global state
//   - Honest – complete results or an error; never truncated, never mocked
//
// Quick ASCII example:
//
//	    •───•
//	    │ ○ │      four points on a square: three H0 classes die as the
//	    •───•      sides appear, one H1 "hole" is born at side length
//	               and dies when the diagonals fill it with triangles.
//
// Dive into examples/ for runnable scenarios, and each package's doc.go
// for the contract and complexity of its piece of the pipeline.
//
//	go get github.com/topokit/vrips
package vrips
