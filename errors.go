package curves

import "errors"

var (
	// ErrInvalidStep indicates a step outside [0, num_steps).
	ErrInvalidStep = errors.New("step out of range")
	// ErrNotBuilt indicates evaluation of a curve before Build() has been called.
	ErrNotBuilt = errors.New("curve has not been built")
	// ErrDimensionMismatch indicates a parameter, tangent or knot sequence of wrong length.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrSingularSystem indicates coincident parameter values where distinct ones are required.
	ErrSingularSystem = errors.New("singular system")
	// ErrInvalidOrder indicates a curve order k outside [1, n].
	ErrInvalidOrder = errors.New("invalid curve order")
	// ErrTooFewPoints indicates fewer than 2 control points.
	ErrTooFewPoints = errors.New("too few control points")
	// ErrInvalidStepCount indicates num_steps < 2.
	ErrInvalidStepCount = errors.New("number of steps must be at least 2")
	// ErrInvalidKnots indicates a decreasing or degenerate knot vector.
	ErrInvalidKnots = errors.New("invalid knot vector")
	// ErrInvalidCoordinate indicates a NaN/Inf coordinate or parameter value.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrMissingSpec indicates a nil curve spec.
	ErrMissingSpec = errors.New("missing curve spec")
	// ErrFamilyMismatch indicates a curve spec for another family than the evaluator's.
	ErrFamilyMismatch = errors.New("curve spec is for another family")
	// ErrUnknownFamily indicates an interpolation family this package does not know.
	ErrUnknownFamily = errors.New("unknown curve family")
)
