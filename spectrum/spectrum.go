package spectrum

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/kvalterin/aureum/operator"
	"github.com/kvalterin/aureum/phi"
)

// MinEigenMagnitude builds Operator(n) and returns the minimum absolute
// value among its eigenvalues.
//
// Solver routing:
//   - Extended operator, verified Hermitian to operator.HermitianEps →
//     symmetric eigensolver on the real embedding (real eigenvalues).
//   - Anything else → general eigensolver on the real embedding.
//
// A factorization that fails to converge yields the degraded-result
// sentinel 0 (a zero eigenvalue), never an error: singularity is a valid
// answer for a magnitude-minimization scan, not a crash.
//
// Errors: only those of operator.Build (bad n, unknown variant).
// Complexity: O(d³) time, O(d²) memory for the 2d×2d embedding.
func MinEigenMagnitude(n int, opts Options) (float64, error) {
	op, err := operator.Build(n, opts.Operator)
	if err != nil {
		return 0, err
	}

	return minMagnitude(op), nil
}

// Curvature returns |f(n−1) − 2f(n) + f(n+1)| where f is
// MinEigenMagnitude under the same options. Requires n ≥ 2; callers
// holding a scan range should substitute the raw magnitude at the range
// boundaries instead (Scan does exactly that).
//
// Errors: ErrBoundaryCurvature (n < 2), operator errors forwarded.
func Curvature(n int, opts Options) (float64, error) {
	if n < 2 {
		return 0, ErrBoundaryCurvature
	}

	prev, err := MinEigenMagnitude(n-1, opts)
	if err != nil {
		return 0, err
	}
	curr, err := MinEigenMagnitude(n, opts)
	if err != nil {
		return 0, err
	}
	next, err := MinEigenMagnitude(n+1, opts)
	if err != nil {
		return 0, err
	}

	return math.Abs(prev - 2*curr + next), nil
}

// IsLocallyNecessary reports whether the discrete curvature at n falls
// strictly below the configured threshold — the conventional test for n
// sitting at a flat local extremum of the magnitude curve.
//
// A zero Options.CurvatureThreshold selects the documented default φ⁻⁹
// (phi.DefaultCurvatureThreshold).
//
// Errors: ErrBadThreshold, plus those of Curvature.
func IsLocallyNecessary(n int, opts Options) (bool, error) {
	threshold := opts.CurvatureThreshold
	if threshold == 0 {
		threshold = phi.DefaultCurvatureThreshold
	}
	if threshold < 0 || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return false, ErrBadThreshold
	}

	c, err := Curvature(n, opts)
	if err != nil {
		return false, err
	}

	return c < threshold, nil
}

// minMagnitude reduces one operator to the smallest |λ| of its spectrum.
func minMagnitude(op *operator.Operator) float64 {
	// Hermitian path: symmetric embedding, real eigenvalues.
	if op.Variant() == operator.Extended && op.IsHermitian(operator.HermitianEps) {
		var eig mat.EigenSym
		if !eig.Factorize(realifySym(op), false) {
			return 0 // degraded result: treat as a zero eigenvalue
		}

		var (
			vals = eig.Values(nil)
			best = math.Inf(1)
		)
		for _, v := range vals {
			if a := math.Abs(v); a < best {
				best = a
			}
		}

		return best
	}

	// General path: non-symmetric embedding, complex eigenvalues.
	var eig mat.Eigen
	if !eig.Factorize(realify(op), mat.EigenNone) {
		return 0 // degraded result: treat as a zero eigenvalue
	}

	var (
		vals = eig.Values(nil)
		best = math.Inf(1)
	)
	for _, v := range vals {
		if a := cmplx.Abs(v); a < best {
			best = a
		}
	}

	return best
}
