package operator

import (
	"math"
	"math/cmplx"

	"github.com/kvalterin/aureum/phi"
)

// Operator is an immutable dense complex square matrix M(n) produced by
// Build. It carries its generating parameter and variant for callers that
// route on them (e.g. spectrum's Hermitian-specialized eigensolver path),
// but has no identity beyond those parameters.
type Operator struct {
	n       int
	dim     int
	variant Variant
	data    []complex128 // row-major, dim*dim entries
}

// Build constructs M(n) for integer n ≥ 1 under the given options.
//
// Entry rules (Compact), with scale = φ^(−n/7) and denom = n+φ:
//  1. Diagonal:             scale·(1 + (i+1)/φ), real.
//  2. First off-diagonal:   magnitude scale/φ, phase 2π(i+j+1)/denom,
//     the same value at (i,j) and (j,i).
//  3. Second off-diagonal:  purely imaginary, sign (−1)^(i+j),
//     magnitude scale/φ².
//  4. Torsion (all i<j):    +i·τ(n)·sin(π(i+j+1)/denom) at (i,j),
//     subtracted at (j,i) to keep the term anti-symmetric.
//
// τ(n) = (1/φ⁴)/(2π)·sin(πn/denom)·φ^(−n/(1+φ)).
//
// The Extended variant keeps rules 1–2 on a tri-diagonal Hermitian base
// (lower triangle conjugated), replaces rule 4 with the Hermitian torsion
// iA (A real anti-symmetric), and symmetrizes the result as 0.5(Ψ+Ψ†).
//
// Denominators n+φ and 1+φ are ≥ φ > 0, so n=1 is safe.
//
// Errors: ErrBadParameter (n < 1), ErrUnknownVariant.
// Complexity: O(d²) time and memory, d = Dim.
func Build(n int, opts Options) (*Operator, error) {
	if n < 1 {
		return nil, ErrBadParameter
	}

	switch opts.Variant {
	case Compact:
		return buildCompact(n), nil
	case Extended:
		return buildExtended(n), nil
	default:
		return nil, ErrUnknownVariant
	}
}

// N returns the generating parameter.
func (op *Operator) N() int { return op.n }

// Dim returns the matrix dimension d (the operator is d×d).
func (op *Operator) Dim() int { return op.dim }

// Variant returns the entry/size convention the operator was built under.
func (op *Operator) Variant() Variant { return op.variant }

// At returns entry (i, j). Returns ErrOutOfRange instead of panicking.
func (op *Operator) At(i, j int) (complex128, error) {
	if i < 0 || i >= op.dim || j < 0 || j >= op.dim {
		return 0, ErrOutOfRange
	}

	return op.data[i*op.dim+j], nil
}

// Data returns a defensive copy of the entries in row-major order.
// Mutating the returned slice never affects the operator.
func (op *Operator) Data() []complex128 {
	out := make([]complex128, len(op.data))
	copy(out, op.data)

	return out
}

// IsHermitian reports whether |M[i][j] − conj(M[j][i])| ≤ eps for all
// i ≤ j. The Extended variant satisfies this for eps = HermitianEps; the
// Compact variant does not (its torsion term is anti-symmetric, not
// Hermitian, and its lower first off-diagonal is unconjugated).
func (op *Operator) IsHermitian(eps float64) bool {
	var i, j int
	for i = 0; i < op.dim; i++ {
		for j = i; j < op.dim; j++ {
			if cmplx.Abs(op.data[i*op.dim+j]-cmplx.Conj(op.data[j*op.dim+i])) > eps {
				return false
			}
		}
	}

	return true
}

// clampDim applies the variant's size rule: candidate bounded to [lo, hi].
func clampDim(candidate, lo, hi int) int {
	if candidate < lo {
		return lo
	}
	if candidate > hi {
		return hi
	}

	return candidate
}

// torsionFactor computes τ(n) = (1/φ⁴)/(2π)·sin(πn/(n+φ))·φ^(−n/(1+φ)).
func torsionFactor(n int) float64 {
	x := float64(n)

	return 1 / (phi.Phi4 * 2 * math.Pi) *
		math.Sin(math.Pi*x/(x+phi.Phi)) *
		phi.Pow(-x/(1+phi.Phi))
}

// buildCompact fills the non-Hermitian Compact matrix for n ≥ 1.
func buildCompact(n int) *Operator {
	// Stage 1: dimension and shared scalars.
	var (
		dim   = clampDim(n/CompactDivisor, CompactMinDim, CompactMaxDim)
		scale = phi.Pow(-float64(n) / 7)
		denom = float64(n) + phi.Phi
		tau   = torsionFactor(n)
		data  = make([]complex128, dim*dim)
		i, j  int
	)

	// Stage 2: diagonal and off-diagonal bands.
	for i = 0; i < dim; i++ {
		for j = 0; j < dim; j++ {
			switch d := i - j; {
			case d == 0:
				data[i*dim+j] = complex(scale*(1+float64(i+1)*phi.InvPhi), 0)
			case d == 1 || d == -1:
				theta := 2 * math.Pi * float64(i+j+1) / denom
				data[i*dim+j] = cmplx.Rect(scale*phi.InvPhi, theta)
			case d == 2 || d == -2:
				sign := 1.0
				if (i+j)%2 != 0 {
					sign = -1.0
				}
				data[i*dim+j] = complex(0, sign*scale/phi.Phi2)
			}
		}
	}

	// Stage 3: anti-symmetric torsion, added above the diagonal and
	// subtracted below it.
	for i = 0; i < dim; i++ {
		for j = i + 1; j < dim; j++ {
			t := complex(0, tau*math.Sin(math.Pi*float64(i+j+1)/denom))
			data[i*dim+j] += t
			data[j*dim+i] -= t
		}
	}

	return &Operator{n: n, dim: dim, variant: Compact, data: data}
}

// buildExtended fills the Hermitian Extended matrix for n ≥ 1.
func buildExtended(n int) *Operator {
	// Stage 1: dimension and shared scalars.
	var (
		dim   = clampDim(n/ExtendedDivisor, ExtendedMinDim, ExtendedMaxDim)
		scale = phi.Pow(-float64(n) / 7)
		denom = float64(n) + phi.Phi
		tau   = torsionFactor(n)
		data  = make([]complex128, dim*dim)
		i, j  int
	)

	// Stage 2: tri-diagonal Hermitian base H — real diagonal, upper first
	// off-diagonal with the phase rule, lower triangle conjugated.
	for i = 0; i < dim; i++ {
		data[i*dim+i] = complex(scale*(1+float64(i+1)*phi.InvPhi), 0)
	}
	for i = 0; i < dim-1; i++ {
		theta := 2 * math.Pi * float64(2*i+2) / denom // i+j+1 with j=i+1
		v := cmplx.Rect(scale*phi.InvPhi, theta)
		data[i*dim+i+1] = v
		data[(i+1)*dim+i] = cmplx.Conj(v)
	}

	// Stage 3: Hermitian torsion iA with A real anti-symmetric.
	// (iA)† = −i·Aᵀ = iA, so the sum stays Hermitian.
	for i = 0; i < dim; i++ {
		for j = i + 1; j < dim; j++ {
			a := tau * math.Sin(math.Pi*float64(i+j+1)/denom)
			data[i*dim+j] += complex(0, a)
			data[j*dim+i] += complex(0, -a)
		}
	}

	// Stage 4: explicit symmetrization 0.5(Ψ+Ψ†). The construction above
	// is Hermitian already; this pins the guarantee to exact arithmetic.
	for i = 0; i < dim; i++ {
		for j = i; j < dim; j++ {
			v := 0.5 * (data[i*dim+j] + cmplx.Conj(data[j*dim+i]))
			data[i*dim+j] = v
			data[j*dim+i] = cmplx.Conj(v)
		}
	}

	return &Operator{n: n, dim: dim, variant: Extended, data: data}
}
