package rips_test

import (
	"testing"

	"github.com/topokit/vrips/cloud"
	"github.com/topokit/vrips/rips"
)

// BenchmarkBuildFiltration_Annulus measures enumeration on a noisy ring,
// the canonical "one loop" workload, at interactive sizes.
func BenchmarkBuildFiltration_Annulus(b *testing.B) {
	pts, err := cloud.Annulus(150, 0.9, 1.1, 99)
	if err != nil {
		b.Fatal(err)
	}
	dm, err := cloud.NewDistanceMatrix(pts)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rips.BuildFiltration(dm, 0.5, rips.WithMaxDimension(2)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuildFiltration_Uniform measures enumeration on a dense square,
// where clique expansion dominates.
func BenchmarkBuildFiltration_Uniform(b *testing.B) {
	pts, err := cloud.Uniform(200, 2.0, 99)
	if err != nil {
		b.Fatal(err)
	}
	dm, err := cloud.NewDistanceMatrix(pts)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rips.BuildFiltration(dm, 0.3, rips.WithMaxDimension(2)); err != nil {
			b.Fatal(err)
		}
	}
}
