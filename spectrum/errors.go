package spectrum

import "errors"

var (
	// ErrBadRange indicates a scan range violating 1 <= lo <= hi.
	ErrBadRange = errors.New("spectrum: scan range must satisfy 1 <= lo <= hi")
	// ErrBoundaryCurvature indicates Curvature was asked for n < 2, where
	// the left neighbor f(n−1) does not exist.
	ErrBoundaryCurvature = errors.New("spectrum: curvature requires n >= 2")
	// ErrBadThreshold indicates a curvature threshold that is not a
	// positive finite number.
	ErrBadThreshold = errors.New("spectrum: curvature threshold must be positive and finite")
	// ErrUnknownCriterion indicates Options.Criterion is not ByMagnitude
	// or ByCurvature.
	ErrUnknownCriterion = errors.New("spectrum: unknown criterion")
)
