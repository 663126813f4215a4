// Package cloud defines the Point type and helpers for assembling clouds.
package cloud

import "github.com/paulmach/orb"

// Point is one sample of a planar point cloud.
//
// ID is a caller-assigned identifier, unique within one cloud. When a
// caller has no natural IDs, FromCoords assigns them by index. XY holds
// the planar coordinates; only finite values are accepted by
// NewDistanceMatrix.
//
// A Point is immutable once handed to a computation: downstream stages
// copy the sequence they were given and never observe later mutation.
type Point struct {
	ID int
	XY orb.Point
}

// FromCoords wraps raw coordinates into Points, assigning IDs by index
// (0..len(pts)-1). The input order is preserved; it defines the index
// order used for deterministic tie-breaking downstream.
//
// Complexity: O(N) time, O(N) space.
func FromCoords(pts []orb.Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{ID: i, XY: p}
	}

	return out
}
