// Package fixedpoint: iterate-type constraint and solver configuration.
package fixedpoint

// DEFAULTS - single source of truth for solver behavior.
const (
	// DefaultTolerance is the successive-iterate distance below which the
	// iteration counts as converged.
	DefaultTolerance = 1e-12

	// DefaultMaxIterations caps the iteration budget before the solver
	// fails closed with ErrNoConvergence.
	DefaultMaxIterations = 1000
)

// Point constrains the iterate types the solver understands. The
// distance between successive iterates generalizes per type:
//
//   - float64            — |a − b|
//   - []float64          — Euclidean norm of the element-wise difference
//     (lengths must agree between iterations)
//   - map[string]float64 — Euclidean norm over the union of keys, with a
//     missing entry treated as 0
type Point interface {
	float64 | []float64 | map[string]float64
}

// Options configures the solver.
//
// Fields:
//   - Tolerance     — convergence cutoff on the successive distance.
//   - MaxIterations — hard iteration budget; exhausting it is an error.
//
// Example:
//
//	opts := fixedpoint.DefaultOptions()
//	opts.MaxIterations = 50
//	x, err := fixedpoint.Solve(f, x0, opts)
type Options struct {
	Tolerance     float64
	MaxIterations int
}

// DefaultOptions returns the canonical configuration: tolerance 1e-12,
// budget 1000 iterations.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}
