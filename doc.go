// Package aureum is a small numerical toolkit built around the golden
// ratio φ — parametrized operator construction, eigenvalue-magnitude
// scanning, and contraction (fixed-point) solving.
//
// 🚀 What is aureum?
//
//	A deterministic, single-threaded library that brings together:
//		• Operator builder: dense complex matrices M(n) whose entries are
//		  closed-form functions of an integer parameter n and φ
//		• Spectrum scanner: per-n minimum eigenvalue magnitude, discrete
//		  curvature, and argmin search over an integer range
//		• Fixed-point solver: generic contraction iteration over scalars,
//		  vectors, and string-keyed maps with a hard non-convergence error
//		• Registry: tamper-evident JSON records with SHA-256 integrity
//
// ✨ Why choose aureum?
//
//   - Deterministic – pure functions of n and φ, no globals, no randomness
//   - Fail-closed – non-convergence raises an error, never a silent result
//   - Minimal API – Options + DefaultOptions() per package, sentinel errors
//   - Small footprint – gonum for linear algebra, nothing else at runtime
//
// Under the hood, everything is organized under five subpackages:
//
//	phi/        — golden-ratio constants and φ^x helpers
//	operator/   — parametrized complex operator builder (Compact/Extended)
//	spectrum/   — eigenvalue-magnitude and curvature scans, argmin search
//	fixedpoint/ — generic contraction solver with typed distance
//	registry/   — SHA-256 tamper-evident JSON record store
//
// Quick sketch:
//
//	n ──▶ Operator(n) ──▶ eigenvalues ──▶ min |λ| ──▶ argmin over [lo,hi]
//
// Dive into examples/ for runnable walkthroughs of a spectral scan and a
// fixed-point solve.
//
//	go get github.com/kvalterin/aureum
package aureum
