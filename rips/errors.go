package rips

import "errors"

var (
	// ErrNonPositiveRadius indicates maxRadius <= 0.
	ErrNonPositiveRadius = errors.New("rips: maxRadius must be positive")
	// ErrNonFiniteRadius indicates maxRadius is NaN or ±Inf.
	ErrNonFiniteRadius = errors.New("rips: maxRadius must be finite")
	// ErrDimensionOutOfRange indicates MaxDimension outside [1, MaxSupportedDimension].
	ErrDimensionOutOfRange = errors.New("rips: MaxDimension out of supported range")
	// ErrTooManyPoints indicates the cloud exceeds the vertex-index capacity of the filtration.
	ErrTooManyPoints = errors.New("rips: point count exceeds supported maximum")
	// ErrSimplexBudget indicates enumeration would exceed the configured simplex budget.
	// Returned wrapped with the budget value that was hit, so callers can shrink
	// radius, dimension or point count and retry.
	ErrSimplexBudget = errors.New("rips: simplex budget exceeded")
)
