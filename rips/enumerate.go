package rips

import (
	"fmt"
	"math"
	"sort"

	"github.com/tidwall/rtree"

	"github.com/topokit/vrips/cloud"
)

// methodBuild tags error context (no magic strings).
const methodBuild = "BuildFiltration"

// BuildFiltration enumerates the Vietoris–Rips complex of dm at the given
// radius and returns its simplices in filtration order.
//
// Error Conditions:
//   - ErrNonPositiveRadius   : maxRadius <= 0.
//   - ErrNonFiniteRadius     : maxRadius is NaN or ±Inf.
//   - ErrDimensionOutOfRange : MaxDimension outside [1, MaxSupportedDimension].
//   - ErrTooManyPoints       : dm.Len() > MaxVertices.
//   - ErrSimplexBudget       : total simplex count would exceed SimplexBudget
//     (wrapped with the budget value that was hit).
//
// Steps:
//  1. Validate radius and options; fail fast before any allocation.
//  2. Emit one 0-simplex per point (filtration value 0).
//  3. Build an R-tree over the points; per point, box-query the ±r square
//     and keep exact-verified, higher-indexed neighbors sorted ascending.
//  4. Emit edges {i,j} with filtration value D[i][j] from the neighbor lists.
//  5. Expand cliques dimension by dimension: a (k-1)-simplex σ extends by
//     any w greater than σ's last vertex that is adjacent to every vertex
//     of σ; the new filtration value is max(σ's, distances to w). A pair
//     beyond the radius kills the candidate immediately, so doomed
//     combinations are never enumerated.
//  6. Sort everything into the deterministic filtration order and index it.
//
// Determinism: neighbor lists are sorted, expansion scans ascending, and
// the final order is a strict total order — identical input yields an
// identical Filtration.
//
// Complexity: O(N log N + E) neighbor discovery, O(T·k) expansion for T
// emitted simplices of dimension k, O(S log S) final sort.
func BuildFiltration(dm *cloud.DistanceMatrix, maxRadius float64, opts ...Option) (*Filtration, error) {
	// 1. Validate the radius first: it gates everything downstream.
	if isNonFinite(maxRadius) {
		return nil, ErrNonFiniteRadius
	}
	if maxRadius <= 0 {
		return nil, ErrNonPositiveRadius
	}
	o := gatherOptions(opts...)
	if o.MaxDimension < 1 || o.MaxDimension > MaxSupportedDimension {
		return nil, fmt.Errorf("%s: MaxDimension=%d: %w", methodBuild, o.MaxDimension, ErrDimensionOutOfRange)
	}

	n := dm.Len()
	if n > MaxVertices {
		return nil, fmt.Errorf("%s: n=%d > max=%d: %w", methodBuild, n, MaxVertices, ErrTooManyPoints)
	}

	// The budget counter: every simplex of every dimension counts.
	budget := o.SimplexBudget
	if n > budget {
		return nil, fmt.Errorf("%s: budget=%d: %w", methodBuild, budget, ErrSimplexBudget)
	}

	// 2. Vertices enter at filtration value 0.
	simplices := make([]Simplex, 0, n*2)
	for i := 0; i < n; i++ {
		simplices = append(simplices, Simplex{Vertices: []int{i}, Filtration: 0})
	}

	// 3. Neighbor discovery through an R-tree box query, exact-verified
	//    against the distance matrix. Only higher-indexed neighbors are
	//    kept: every simplex is emitted once, by its lowest vertex chain.
	nbr := buildNeighborLists(dm, maxRadius)

	// 4. Edges.
	for i := 0; i < n; i++ {
		for _, j := range nbr[i] {
			if len(simplices) == budget {
				return nil, fmt.Errorf("%s: budget=%d: %w", methodBuild, budget, ErrSimplexBudget)
			}
			simplices = append(simplices, Simplex{
				Vertices:   []int{i, j},
				Filtration: dm.At(i, j),
			})
		}
	}

	// 5. Clique expansion, dimension by dimension. prev holds the cells
	//    of dimension dim-1; extending only past the last (maximum)
	//    vertex keeps tuples sorted and emission unique.
	prev := simplices[n:] // the edges, in emission order
	for dim := 2; dim <= o.MaxDimension; dim++ {
		next := make([]Simplex, 0, len(prev))
		for _, s := range prev {
			last := s.Vertices[len(s.Vertices)-1]
			for _, w := range nbr[last] {
				filt, ok := extendClique(dm, s, w, maxRadius)
				if !ok {
					continue
				}
				if len(simplices) == budget {
					return nil, fmt.Errorf("%s: budget=%d: %w", methodBuild, budget, ErrSimplexBudget)
				}
				vs := make([]int, len(s.Vertices)+1)
				copy(vs, s.Vertices)
				vs[len(s.Vertices)] = w
				cell := Simplex{Vertices: vs, Filtration: filt}
				simplices = append(simplices, cell)
				next = append(next, cell)
			}
		}
		if len(next) == 0 {
			break // nothing left to extend; higher dimensions are empty
		}
		prev = next
	}

	// 6. Total order + position index.
	return newFiltration(simplices), nil
}

// buildNeighborLists returns, for each point i, the sorted list of
// indices j > i with D[i][j] <= maxRadius. The R-tree prunes candidates
// to the ±maxRadius box around each point; the exact distance check
// rejects box corners beyond the radius.
func buildNeighborLists(dm *cloud.DistanceMatrix, maxRadius float64) [][]int {
	points := dm.Points()
	n := dm.Len()

	var tr rtree.RTreeG[int]
	for i, p := range points {
		xy := [2]float64{p.XY.X(), p.XY.Y()}
		tr.Insert(xy, xy, i)
	}

	nbr := make([][]int, n)
	for i, p := range points {
		min := [2]float64{p.XY.X() - maxRadius, p.XY.Y() - maxRadius}
		max := [2]float64{p.XY.X() + maxRadius, p.XY.Y() + maxRadius}
		tr.Search(min, max, func(_, _ [2]float64, j int) bool {
			if j > i && dm.At(i, j) <= maxRadius {
				nbr[i] = append(nbr[i], j)
			}

			return true
		})
		// R-tree visit order is unspecified; sort for determinism.
		sort.Ints(nbr[i])
	}

	return nbr
}

// extendClique reports whether simplex s extends by vertex w within the
// radius, and the extended filtration value (max of s's value and the
// distances from w to every vertex of s). Short-circuits on the first
// pair beyond maxRadius.
func extendClique(dm *cloud.DistanceMatrix, s Simplex, w int, maxRadius float64) (float64, bool) {
	filt := s.Filtration
	for _, v := range s.Vertices {
		d := dm.At(v, w)
		if d > maxRadius {
			return 0, false
		}
		if d > filt {
			filt = d
		}
	}

	return filt, true
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
