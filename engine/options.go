package engine

import "github.com/topokit/vrips/rips"

// Options configures an Engine for its whole session. Radius and points
// are runtime inputs, not options — they arrive via the façade calls.
//
// Fields:
//
//	MaxDimension  int — highest simplex dimension to enumerate,
//	                    forwarded to rips.BuildFiltration.
//	SimplexBudget int — total simplex cap, forwarded likewise.
//
// See: rips.DefaultOptions for the documented defaults.
type Options struct {
	MaxDimension  int
	SimplexBudget int
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMaxDimension returns an Option that sets the highest enumerated
// simplex dimension. Out-of-range values surface as
// rips.ErrDimensionOutOfRange on the first ComputePersistence.
func WithMaxDimension(d int) Option {
	return func(o *Options) { o.MaxDimension = d }
}

// WithSimplexBudget returns an Option that sets the simplex-count cap
// guarding against combinatorial blowup.
func WithSimplexBudget(n int) Option {
	return func(o *Options) { o.SimplexBudget = n }
}

// DefaultOptions mirrors the enumerator's defaults:
//
//	– MaxDimension  = rips.DefaultMaxDimension
//	– SimplexBudget = rips.DefaultSimplexBudget
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		MaxDimension:  rips.DefaultMaxDimension,
		SimplexBudget: rips.DefaultSimplexBudget,
	}
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}
