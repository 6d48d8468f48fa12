package spectrum

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kvalterin/aureum/operator"
)

// realify returns the 2d×2d real block embedding
//
//	E = ⎡ A  −B ⎤
//	    ⎣ B   A ⎦
//
// of the complex operator M = A + iB. The spectrum of E is the spectrum
// of M together with its complex conjugates, so eigenvalue magnitudes —
// the only statistic this package extracts — carry over unchanged.
func realify(op *operator.Operator) *mat.Dense {
	var (
		d    = op.Dim()
		out  = mat.NewDense(2*d, 2*d, nil)
		i, j int
	)
	for i = 0; i < d; i++ {
		for j = 0; j < d; j++ {
			v, _ := op.At(i, j) // indices are in range by construction
			re, im := real(v), imag(v)
			out.Set(i, j, re)
			out.Set(i, j+d, -im)
			out.Set(i+d, j, im)
			out.Set(i+d, j+d, re)
		}
	}

	return out
}

// realifySym returns the same embedding as a symmetric matrix. Valid only
// when M is Hermitian: then A is symmetric, B is anti-symmetric, and E is
// symmetric exactly (the Extended builder symmetrizes in exact
// arithmetic, so entries match bit-for-bit).
func realifySym(op *operator.Operator) *mat.SymDense {
	var (
		d    = op.Dim()
		out  = mat.NewSymDense(2*d, nil)
		i, j int
	)
	for i = 0; i < d; i++ {
		for j = i; j < d; j++ {
			v, _ := op.At(i, j)
			re, im := real(v), imag(v)
			out.SetSym(i, j, re)     // A, upper triangle
			out.SetSym(i+d, j+d, re) // A, repeated in the lower block
			out.SetSym(i, j+d, -im)  // −B[i][j] in the upper-right block
			if i != j {
				// −B[j][i] = B[i][j] by anti-symmetry of B.
				out.SetSym(j, i+d, im)
			}
		}
	}

	return out
}
