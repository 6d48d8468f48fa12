package fixedpoint

import "errors"

var (
	// ErrNoConvergence indicates MaxIterations were exhausted before two
	// successive iterates came within Tolerance. Returned wrapped with
	// the iteration count and final residual; match with errors.Is.
	ErrNoConvergence = errors.New("fixedpoint: iteration did not converge")
	// ErrDimensionMismatch indicates f changed the length of a vector
	// iterate between steps.
	ErrDimensionMismatch = errors.New("fixedpoint: vector length changed between iterations")
	// ErrBadTolerance indicates a tolerance that is not a positive finite
	// number.
	ErrBadTolerance = errors.New("fixedpoint: tolerance must be positive and finite")
	// ErrBadMaxIterations indicates a non-positive iteration budget.
	ErrBadMaxIterations = errors.New("fixedpoint: max iterations must be >= 1")
	// ErrNilFunc indicates a nil map callable.
	ErrNilFunc = errors.New("fixedpoint: f must be non-nil")
)
