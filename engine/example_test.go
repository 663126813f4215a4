package engine_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/topokit/vrips/engine"
)

// Example walks the unit square through a full session: three components
// die as the sides appear, the central hole lives from side length 1 to
// the diagonal √2, and the over-covering triangles leave one essential
// 2-class.
func Example() {
	e := engine.New(engine.WithMaxDimension(2))

	if err := e.SetPoints([]orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}); err != nil {
		fmt.Println("points:", err)
		return
	}
	if err := e.ComputeVietorisRips(1.5); err != nil {
		fmt.Println("radius:", err)
		return
	}
	intervals, err := e.ComputePersistence()
	if err != nil {
		fmt.Println("persistence:", err)
		return
	}

	counts := map[int]int{}
	essential := map[int]int{}
	for _, iv := range intervals {
		counts[iv.Dimension]++
		if iv.Essential() {
			essential[iv.Dimension]++
		}
	}
	for dim := 0; dim <= 2; dim++ {
		fmt.Printf("H%d: %d intervals (%d essential)\n", dim, counts[dim], essential[dim])
	}

	hole := e.Diagram().ByDimension(1)[0]
	fmt.Printf("hole: [%.2f, %.2f)\n", hole.Birth, hole.Death)

	// Output:
	// H0: 4 intervals (1 essential)
	// H1: 3 intervals (0 essential)
	// H2: 1 intervals (1 essential)
	// hole: [1.00, 1.41)
}
