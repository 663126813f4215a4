package cloud

import "errors"

var (
	// ErrNoPoints indicates an empty point sequence; a cloud needs at least one point.
	ErrNoPoints = errors.New("cloud: point set must contain at least one point")
	// ErrNonFinite indicates a NaN or ±Inf coordinate in the input.
	ErrNonFinite = errors.New("cloud: point coordinates must be finite")
	// ErrDuplicateID indicates two points sharing the same caller-assigned ID.
	ErrDuplicateID = errors.New("cloud: point IDs must be unique")
	// ErrBadGeneratorArg indicates a preset-generator argument out of its valid range.
	ErrBadGeneratorArg = errors.New("cloud: generator argument out of range")
)
