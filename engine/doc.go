// Package engine is the session façade of the persistence pipeline:
// one Engine instance per analysis session, three calls, no globals.
//
//	e := engine.New(engine.WithMaxDimension(2))
//	_ = e.SetPoints(points)           // validate & store the cloud
//	_ = e.ComputeVietorisRips(0.75)   // store the radius (no work yet)
//	intervals, err := e.ComputePersistence()
//
// Computation is lazy: SetPoints and ComputeVietorisRips only validate
// and invalidate, so an interactive caller may adjust the radius
// repeatedly and pay for a computation only when it asks for results.
// Each stage's output (distance matrix, filtration, diagram) is cached
// until the input it depends on changes; SetPoints replaces the cloud
// rather than tearing the session down.
//
// Concurrency: one Engine supports a single writer — callers serialize
// SetPoints/ComputeVietorisRips/ComputePersistence against one instance.
// Independent instances share no state and may run concurrently. A
// computation runs to completion or fails via the enumerator's simplex
// budget; there is no cancellation and no internal timeout, so callers
// wanting a responsive event loop should invoke ComputePersistence from
// a worker goroutine.
//
// Failures are deterministic and complete: the engine never substitutes
// fabricated data and never returns a truncated diagram.
package engine
