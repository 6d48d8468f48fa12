// Package operator builds the parametrized dense complex matrices M(n)
// at the heart of aureum's spectral scans.
//
// 🚀 What is an operator here?
//
//	For an integer parameter n ≥ 1, Build returns a square complex matrix
//	whose every entry is a deterministic closed-form function of n and the
//	golden ratio φ. There is no randomness, no caching, and no mutation:
//	two calls with the same (n, Options) produce bit-identical matrices.
//
// Two named variants exist, selected via Options.Variant:
//
//   - Compact  — dimension clamp(n/10, 10, 50). Diagonal, first and second
//     off-diagonals scaled by φ^(−n/7), plus an anti-symmetric torsion
//     term that makes the matrix non-Hermitian.
//   - Extended — dimension clamp(n/2, 10, 60). Tri-diagonal Hermitian base
//     plus a Hermitian torsion term iA (A real anti-symmetric), explicitly
//     symmetrized as 0.5(Ψ+Ψ†) so the output is Hermitian to numerical
//     tolerance.
//
// ⚙️ Usage:
//
//	import "github.com/kvalterin/aureum/operator"
//
//	op, err := operator.Build(113, operator.DefaultOptions())
//	if err != nil {
//	  // handle ErrBadParameter / ErrUnknownVariant
//	}
//	dim := op.Dim()          // 11 for n=113 under Compact
//	v, _ := op.At(0, 1)      // first off-diagonal entry
//
// Complexity: O(d²) time and memory for a d×d operator, d ≤ 60.
package operator
