package engine_test

import (
	"math"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topokit/vrips/cloud"
	"github.com/topokit/vrips/engine"
	"github.com/topokit/vrips/persistence"
	"github.com/topokit/vrips/rips"
)

// square is the unit-square fixture shared across façade tests.
var square = []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// TestEngine_PrerequisiteOrder verifies the Uninitialized → PointsSet →
// RadiusSet legs of the state machine: each missing prerequisite has its
// own sentinel.
func TestEngine_PrerequisiteOrder(t *testing.T) {
	e := engine.New()

	_, err := e.ComputePersistence()
	assert.ErrorIs(t, err, engine.ErrPointsNotSet, "compute before SetPoints must error")

	require.NoError(t, e.SetPoints(square))
	_, err = e.ComputePersistence()
	assert.ErrorIs(t, err, engine.ErrRadiusNotSet, "compute before ComputeVietorisRips must error")

	require.NoError(t, e.ComputeVietorisRips(1.5))
	_, err = e.ComputePersistence()
	assert.NoError(t, err, "all prerequisites satisfied")
}

// TestEngine_SetPoints_Invalid rejects malformed clouds and leaves the
// previous session intact on failure.
func TestEngine_SetPoints_Invalid(t *testing.T) {
	e := engine.New()

	assert.ErrorIs(t, e.SetPoints(nil), cloud.ErrNoPoints, "empty cloud must error")
	assert.ErrorIs(t, e.SetPoints([]orb.Point{{math.NaN(), 0}}), cloud.ErrNonFinite)

	// A valid session survives a later failed replacement.
	require.NoError(t, e.SetPoints(square))
	require.NoError(t, e.ComputeVietorisRips(1.5))
	before, err := e.ComputePersistence()
	require.NoError(t, err)

	assert.ErrorIs(t, e.SetPoints([]orb.Point{{0, math.Inf(1)}}), cloud.ErrNonFinite)
	after, err := e.ComputePersistence()
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed SetPoints must not disturb the session")
}

// TestEngine_BadRadius rejects non-positive and non-finite radii with the
// enumerator's sentinels and keeps the stored radius unchanged.
func TestEngine_BadRadius(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.SetPoints(square))
	require.NoError(t, e.ComputeVietorisRips(1.5))

	assert.ErrorIs(t, e.ComputeVietorisRips(0), rips.ErrNonPositiveRadius)
	assert.ErrorIs(t, e.ComputeVietorisRips(-2), rips.ErrNonPositiveRadius)
	assert.ErrorIs(t, e.ComputeVietorisRips(math.NaN()), rips.ErrNonFiniteRadius)
	assert.ErrorIs(t, e.ComputeVietorisRips(math.Inf(1)), rips.ErrNonFiniteRadius)

	_, err := e.ComputePersistence()
	assert.NoError(t, err, "rejected radii must not clobber the stored one")
}

// TestEngine_SquareDiagram verifies the façade returns the same complete
// interval list the pipeline packages produce, essential classes included.
func TestEngine_SquareDiagram(t *testing.T) {
	e := engine.New(engine.WithMaxDimension(2))
	require.NoError(t, e.SetPoints(square))
	require.NoError(t, e.ComputeVietorisRips(1.5))

	got, err := e.ComputePersistence()
	require.NoError(t, err)

	dm, err := cloud.NewDistanceMatrix(cloud.FromCoords(square))
	require.NoError(t, err)
	f, err := rips.BuildFiltration(dm, 1.5, rips.WithMaxDimension(2))
	require.NoError(t, err)
	want := persistence.Reduce(f).Intervals()

	assert.Equal(t, want, got, "façade and pipeline must agree exactly")
	assert.NotNil(t, e.Diagram(), "diagram cache exposed after compute")
	assert.NotNil(t, e.Filtration(), "filtration cache exposed after compute")
}

// TestEngine_CacheInvalidation checks the lazy/caching contract: repeated
// computes reuse the diagram, a changed radius rebuilds it, an unchanged
// radius does not, and new points drop everything.
func TestEngine_CacheInvalidation(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.SetPoints(square))
	require.NoError(t, e.ComputeVietorisRips(1.5))

	_, err := e.ComputePersistence()
	require.NoError(t, err)
	first := e.Diagram()

	_, err = e.ComputePersistence()
	require.NoError(t, err)
	assert.Same(t, first, e.Diagram(), "unchanged inputs must reuse the cached diagram")

	require.NoError(t, e.ComputeVietorisRips(1.5))
	assert.Same(t, first, e.Diagram(), "re-setting the same radius must not invalidate")

	require.NoError(t, e.ComputeVietorisRips(1.0))
	assert.Nil(t, e.Diagram(), "a new radius drops the diagram")
	_, err = e.ComputePersistence()
	require.NoError(t, err)
	assert.NotSame(t, first, e.Diagram(), "a new radius recomputes")

	require.NoError(t, e.SetPoints(square))
	assert.Nil(t, e.Diagram(), "new points drop the diagram")
	assert.Nil(t, e.Filtration(), "new points drop the filtration")
}

// TestEngine_BudgetExceeded passes the enumerator's resource error through
// untouched — no mock substitution, no partial result.
func TestEngine_BudgetExceeded(t *testing.T) {
	e := engine.New(engine.WithSimplexBudget(5))
	require.NoError(t, e.SetPoints(square))
	require.NoError(t, e.ComputeVietorisRips(1.5))

	got, err := e.ComputePersistence()
	assert.ErrorIs(t, err, rips.ErrSimplexBudget)
	assert.Nil(t, got, "no partial results on failure")
	assert.Nil(t, e.Diagram())
}

// TestEngine_BadMaxDimension surfaces an out-of-range configuration on the
// first compute, via the enumerator's sentinel.
func TestEngine_BadMaxDimension(t *testing.T) {
	e := engine.New(engine.WithMaxDimension(9))
	require.NoError(t, e.SetPoints(square))
	require.NoError(t, e.ComputeVietorisRips(1.0))

	_, err := e.ComputePersistence()
	assert.ErrorIs(t, err, rips.ErrDimensionOutOfRange)
}

// TestEngine_Deterministic runs the same session twice and diffs.
func TestEngine_Deterministic(t *testing.T) {
	pts, err := cloud.Annulus(40, 0.9, 1.1, 13)
	require.NoError(t, err)
	coords := make([]orb.Point, len(pts))
	for i, p := range pts {
		coords[i] = p.XY
	}

	run := func() []persistence.Interval {
		e := engine.New()
		require.NoError(t, e.SetPoints(coords))
		require.NoError(t, e.ComputeVietorisRips(0.8))
		ivs, err := e.ComputePersistence()
		require.NoError(t, err)

		return ivs
	}

	assert.Equal(t, run(), run(), "repeated sessions must return identical multisets")
}

// TestEngine_IndependentInstances runs separate engines concurrently;
// instances share no state, so all must agree with a serial run.
func TestEngine_IndependentInstances(t *testing.T) {
	serial := engine.New()
	require.NoError(t, serial.SetPoints(square))
	require.NoError(t, serial.ComputeVietorisRips(1.5))
	want, err := serial.ComputePersistence()
	require.NoError(t, err)

	const workers = 8
	results := make([][]persistence.Interval, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			e := engine.New()
			if e.SetPoints(square) != nil || e.ComputeVietorisRips(1.5) != nil {
				return
			}
			results[w], _ = e.ComputePersistence()
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		assert.Equal(t, want, results[w], "instance %d must agree with the serial run", w)
	}
}
