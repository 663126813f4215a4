// Package rips defines simplex and option types for Vietoris–Rips enumeration.
package rips

// Simplex is one cell of a Vietoris–Rips complex.
//
// Vertices holds point indices sorted ascending (len = dimension+1).
// Filtration is the radius at which the simplex enters the complex: 0 for
// vertices, the edge length for edges, and the maximum pairwise distance
// among vertices for higher simplices. Monotonicity (a face never enters
// after its cofaces) holds by construction of the maximum.
type Simplex struct {
	Vertices   []int
	Filtration float64
}

// Dim returns the simplex dimension (0 for vertices, 1 for edges, ...).
func (s Simplex) Dim() int { return len(s.Vertices) - 1 }

// MaxSupportedDimension is the hard ceiling on MaxDimension.
//
// Simplices up to dimension 3 (tetrahedra) cover homology display up to
// H2 — H2 deaths need 3-simplices to fill voids. The filtration's
// position index packs up to 4 vertex indices of 16 bits each into one
// uint64 key, which fixes both this ceiling and MaxVertices.
const MaxSupportedDimension = 3

// MaxVertices is the largest cloud size the packed vertex key supports:
// a slot stores index+1, so the largest index is 2^vertexBits − 2.
const MaxVertices = 1<<vertexBits - 1

const (
	// DefaultMaxDimension enumerates vertices, edges and triangles —
	// enough for H0 and H1 (births and deaths) and H2 births.
	DefaultMaxDimension = 2

	// DefaultSimplexBudget caps the total simplex count of one
	// enumeration. Hitting it yields ErrSimplexBudget, never a hang.
	DefaultSimplexBudget = 1_000_000
)

// Options configures Vietoris–Rips enumeration.
// Use DefaultOptions() for the documented defaults; public entry points
// accept ...Option and resolve them via gatherOptions.
type Options struct {
	// MaxDimension is the highest simplex dimension to enumerate,
	// in [1, MaxSupportedDimension].
	MaxDimension int

	// SimplexBudget caps the total number of simplices (all dimensions).
	SimplexBudget int
}

// Option mutates Options. Safe to apply repeatedly; last-writer-wins.
type Option func(*Options)

// WithMaxDimension returns an Option that sets the highest enumerated
// dimension. Values outside [1, MaxSupportedDimension] are rejected by
// BuildFiltration with ErrDimensionOutOfRange, not here — the ceiling is
// a runtime contract, not a programmer invariant.
func WithMaxDimension(d int) Option {
	return func(o *Options) { o.MaxDimension = d }
}

// WithSimplexBudget returns an Option that sets the simplex-count cap.
// Non-positive budgets are rejected by BuildFiltration with ErrSimplexBudget.
func WithSimplexBudget(n int) Option {
	return func(o *Options) { o.SimplexBudget = n }
}

// DefaultOptions returns the documented defaults:
//
//	– MaxDimension  = DefaultMaxDimension (2)
//	– SimplexBudget = DefaultSimplexBudget (1,000,000)
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		MaxDimension:  DefaultMaxDimension,
		SimplexBudget: DefaultSimplexBudget,
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
