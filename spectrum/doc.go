// Package spectrum computes per-parameter eigenvalue statistics of the
// aureum operators and searches an integer range for the parameter that
// minimizes a chosen criterion.
//
// 🚀 What does spectrum do?
//
//	For each integer n the scanner builds Operator(n), computes its full
//	eigenvalue set, and reduces it to a single scalar:
//	  • MinEigenMagnitude(n) — the smallest |λ| over all eigenvalues
//	  • Curvature(n)         — |f(n−1) − 2f(n) + f(n+1)|, the second
//	    finite difference of the magnitude, a local-extremum detector
//	Scan evaluates one of the two over [lo,hi] and FindOptimal returns
//	the argmin.
//
// ✨ Key properties:
//   - Pure: every value is a deterministic function of n and φ; no state
//     survives a call, no caching across scans
//   - Eigensolver routing: a Hermitian-specialized solver when the
//     Extended operator verifies Hermitian to tolerance, the general
//     solver otherwise
//   - Degraded-result policy: a failed factorization yields magnitude 0,
//     never a linear-algebra panic
//   - Tie policy: FindOptimal breaks ties by first occurrence in
//     ascending n
//
// ⚙️ Usage:
//
//	import "github.com/kvalterin/aureum/spectrum"
//
//	opts := spectrum.DefaultOptions()
//	opts.Criterion = spectrum.ByCurvature
//
//	best, err := spectrum.FindOptimal(50, 200, opts)
//
// Complexity: one n costs O(d³) for the d×d eigendecomposition (d ≤ 60,
// realified to 2d); a scan over [lo,hi] costs O((hi−lo+1)·d³). Each n is
// independent and pure, so callers may parallelize the outer loop, but
// no correctness property depends on ordering.
package spectrum
