package phi

import "math"

// Package-level constants, computed once at init. Declared as variables
// because math.Sqrt is not a constant expression, but they are never
// reassigned anywhere in the module.
var (
	// Phi is the golden ratio (1+√5)/2 ≈ 1.6180339887498949.
	Phi = (1 + math.Sqrt(5)) / 2

	// InvPhi is 1/φ = φ−1 ≈ 0.6180339887498949.
	InvPhi = 1 / Phi

	// Phi2 is φ² = φ+1.
	Phi2 = Phi * Phi

	// Phi4 is φ⁴.
	Phi4 = Phi * Phi * Phi * Phi

	// DefaultCurvatureThreshold is φ⁻⁹ ≈ 0.00157, the conventional cutoff
	// below which a discrete curvature value counts as a local minimum.
	// Exposed as a named default; spectrum.Options can override it per scan.
	DefaultCurvatureThreshold = Pow(-9)
)

// Pow returns φ^x.
func Pow(x float64) float64 {
	return math.Pow(Phi, x)
}
