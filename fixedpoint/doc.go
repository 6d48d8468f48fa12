// Package fixedpoint iterates a map x ↦ f(x) to its fixed point and
// fails closed when the iteration does not contract.
//
// 🚀 What is fixed-point iteration?
//
//	Repeated application x_{k+1} = f(x_k) converges to the unique fixed
//	point x* = f(x*) whenever f is a contraction (Lipschitz ratio < 1)
//	near x*. The solver stops as soon as two successive iterates fall
//	within Tolerance of each other.
//
// ✨ Key properties:
//   - Generic over the iterate type: float64 scalars, []float64 vectors
//     (Euclidean distance), and map[string]float64 states (Euclidean
//     norm over the union of keys, missing entries treated as 0)
//   - Fail closed: exhausting MaxIterations without convergence returns
//     an error wrapping ErrNoConvergence that names the final residual —
//     never a silently wrong value
//   - No retries, no recovery: the caller decides what a non-contraction
//     means
//
// ⚙️ Usage:
//
//	import "github.com/kvalterin/aureum/fixedpoint"
//
//	half := func(x float64) float64 { return 0.5 * (x + 1) }
//	x, err := fixedpoint.Solve(half, 0.0, fixedpoint.DefaultOptions())
//	// x ≈ 1.0 after ~40 iterations (contraction ratio 0.5)
//
// Complexity: O(MaxIterations · cost(f) + MaxIterations · dim) — the
// distance adds one pass over the iterate per step.
package fixedpoint
