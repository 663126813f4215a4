package engine

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/topokit/vrips/cloud"
	"github.com/topokit/vrips/persistence"
	"github.com/topokit/vrips/rips"
)

// Engine owns one analysis session: the current point cloud, the current
// filtration radius, and the per-stage caches. State is explicit instance
// state — no package globals, no module-level initialization flags.
//
// State machine: Uninitialized → PointsSet → RadiusSet → Computed.
// Changing points collapses to PointsSet (all caches dropped); changing
// the radius collapses to RadiusSet (filtration and diagram dropped,
// distance matrix kept — it depends only on the points).
type Engine struct {
	opts Options

	points []cloud.Point
	radius float64 // 0 ⇒ not set

	// Per-stage caches, nil when invalid.
	dm      *cloud.DistanceMatrix
	filt    *rips.Filtration
	diagram *persistence.Diagram
}

// New returns an Engine with the given configuration. Freshly created
// engines are Uninitialized: SetPoints must come first.
func New(opts ...Option) *Engine {
	return &Engine{opts: gatherOptions(opts...)}
}

// SetPoints validates and stores a new point cloud, invalidating every
// cache. IDs are assigned by index (the caller supplies bare coordinates,
// matching the UI contract). Calling SetPoints again replaces the cloud;
// there is no teardown state.
//
// Error Conditions:
//   - cloud.ErrNoPoints  : pts is empty.
//   - cloud.ErrNonFinite : any coordinate is NaN or ±Inf.
//
// Complexity: O(N²) — validation builds the distance matrix eagerly so a
// malformed cloud is rejected here, not at compute time.
func (e *Engine) SetPoints(pts []orb.Point) error {
	points := cloud.FromCoords(pts)
	dm, err := cloud.NewDistanceMatrix(points)
	if err != nil {
		return err
	}

	// Commit only after validation; a failed SetPoints leaves the
	// previous session untouched.
	e.points = points
	e.dm = dm
	e.filt = nil
	e.diagram = nil

	return nil
}

// ComputeVietorisRips validates and stores the filtration radius. It
// triggers no computation — an interactive caller may adjust the radius
// repeatedly before asking for results. The filtration and diagram
// caches are invalidated only when the radius actually changed.
//
// Error Conditions:
//   - rips.ErrNonPositiveRadius : maxRadius <= 0.
//   - rips.ErrNonFiniteRadius   : maxRadius is NaN or ±Inf.
//
// Complexity: O(1).
func (e *Engine) ComputeVietorisRips(maxRadius float64) error {
	// The sentinels must match what a later BuildFiltration would say,
	// so a bad radius is rejected at the same call the UI passed it to.
	switch {
	case math.IsNaN(maxRadius) || math.IsInf(maxRadius, 0):
		return rips.ErrNonFiniteRadius
	case maxRadius <= 0:
		return rips.ErrNonPositiveRadius
	}

	if e.radius != maxRadius {
		e.radius = maxRadius
		e.filt = nil
		e.diagram = nil
	}

	return nil
}

// ComputePersistence runs the pipeline (enumerate → order → reduce →
// assemble) for the current (points, radius, options) triple, caching
// every stage, and returns the complete interval list — essential and
// zero-length intervals included. It either returns the full, correct
// diagram or an error; never a truncated result.
//
// Error Conditions:
//   - ErrPointsNotSet       : SetPoints was never called.
//   - ErrRadiusNotSet       : ComputeVietorisRips was never called.
//   - rips.ErrSimplexBudget : enumeration hit the simplex budget.
//
// Complexity: first call O(enumeration + reduction); cached calls O(1).
func (e *Engine) ComputePersistence() ([]persistence.Interval, error) {
	if e.points == nil {
		return nil, ErrPointsNotSet
	}
	if e.radius == 0 {
		return nil, ErrRadiusNotSet
	}

	if e.diagram == nil {
		if e.filt == nil {
			f, err := rips.BuildFiltration(e.dm, e.radius,
				rips.WithMaxDimension(e.opts.MaxDimension),
				rips.WithSimplexBudget(e.opts.SimplexBudget),
			)
			if err != nil {
				return nil, err
			}
			e.filt = f
		}
		e.diagram = persistence.Reduce(e.filt)
	}

	return e.diagram.Intervals(), nil
}

// Diagram returns the cached diagram of the last successful
// ComputePersistence, or nil when the current inputs have not been
// computed yet. It exposes the pair-level view (birth/death simplices)
// for callers that need more than bare intervals.
func (e *Engine) Diagram() *persistence.Diagram { return e.diagram }

// Filtration returns the cached filtration behind the last successful
// ComputePersistence, or nil when not computed. Useful for callers that
// render the complex itself alongside the diagram.
func (e *Engine) Filtration() *rips.Filtration { return e.filt }
