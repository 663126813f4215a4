package engine

import "errors"

var (
	// ErrPointsNotSet indicates ComputePersistence was called before SetPoints.
	ErrPointsNotSet = errors.New("engine: no point set; call SetPoints first")
	// ErrRadiusNotSet indicates ComputePersistence was called before ComputeVietorisRips.
	ErrRadiusNotSet = errors.New("engine: no filtration radius; call ComputeVietorisRips first")
)
