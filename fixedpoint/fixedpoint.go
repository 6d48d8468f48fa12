package fixedpoint

import (
	"fmt"
	"math"
)

// Solve iterates x_{k+1} = f(x_k) from x0 until two successive iterates
// fall within opts.Tolerance of each other, returning the converged
// iterate.
//
// Contracts:
//   - f must be non-nil and must preserve vector length between steps.
//   - Convergence is guaranteed only when f is a contraction (ratio < 1)
//     near the fixed point; for anything else the solver fails closed:
//     exhausting opts.MaxIterations returns an error wrapping
//     ErrNoConvergence with the iteration count and final residual.
//   - Iterates are cloned between steps, so f may mutate its argument or
//     reuse returned containers without corrupting the solve.
//
// Errors: ErrNilFunc, ErrBadTolerance, ErrBadMaxIterations,
// ErrDimensionMismatch, wrapped ErrNoConvergence.
//
// Complexity: O(MaxIterations · (cost(f) + dim)).
func Solve[P Point](f func(P) P, x0 P, opts Options) (P, error) {
	// Stage 1: validate inputs.
	var zero P
	if f == nil {
		return zero, ErrNilFunc
	}
	if opts.Tolerance <= 0 || math.IsNaN(opts.Tolerance) || math.IsInf(opts.Tolerance, 0) {
		return zero, ErrBadTolerance
	}
	if opts.MaxIterations < 1 {
		return zero, ErrBadMaxIterations
	}

	// Stage 2: iterate until the successive distance drops below
	// tolerance or the budget runs out.
	var (
		x        = clone(x0)
		residual = math.Inf(1)
		k        int
		err      error
	)
	for k = 0; k < opts.MaxIterations; k++ {
		// f receives its own copy: an f that mutates in place must not
		// touch the iterate held for the distance check.
		next := clone(f(clone(x)))

		if residual, err = Distance(x, next); err != nil {
			return zero, err
		}
		x = next

		if residual < opts.Tolerance {
			return x, nil
		}
	}

	// Stage 3: fail closed. The residual names how far from a fixed
	// point the iteration still was.
	return zero, fmt.Errorf("fixedpoint: residual %.3e after %d iterations: %w",
		residual, opts.MaxIterations, ErrNoConvergence)
}
