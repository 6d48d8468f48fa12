// Package phi holds the golden-ratio constants shared by every aureum
// package and the φ-power helper used to derive entry scales and
// thresholds.
//
// φ = (1+√5)/2 is computed once at package initialization and never
// mutated. All derived values (InvPhi, Phi2, Phi4, the default curvature
// threshold φ⁻⁹) are fixed at the same moment, so two processes running
// the same binary always agree bit-for-bit.
//
// The curvature threshold deserves a note: φ⁻⁹ ≈ 0.00157 is a convention,
// not a derived quantity. It is exported as DefaultCurvatureThreshold so
// callers can see it, reference it, and override it per scan instead of
// relying on an invisible hardcoded literal.
package phi
