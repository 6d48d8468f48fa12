// Package operator: variant selection and functional configuration.
package operator

// Variant selects the entry rule and size convention of the operator.
//
//   - Compact  — dimension n/10 clamped to [10,50]; full off-diagonal
//     structure plus anti-symmetric torsion. Non-Hermitian.
//
//   - Extended — dimension n/2 clamped to [10,60]; tri-diagonal Hermitian
//     base plus Hermitian torsion, explicitly symmetrized. Hermitian to
//     numerical tolerance (see HermitianEps).
type Variant int

const (
	// Compact variant: clamp(n/10, 10, 50), non-Hermitian.
	Compact Variant = iota

	// Extended variant: clamp(n/2, 10, 60), Hermitian.
	Extended
)

// String implements fmt.Stringer for diagnostics.
func (v Variant) String() string {
	switch v {
	case Compact:
		return "Compact"
	case Extended:
		return "Extended"
	default:
		return "Unknown"
	}
}

// DEFAULTS - single source of truth for size conventions and tolerances.
const (
	// CompactDivisor maps n to a candidate dimension in the Compact variant.
	CompactDivisor = 10
	// CompactMinDim is the lower dimension clamp of the Compact variant.
	CompactMinDim = 10
	// CompactMaxDim is the upper dimension clamp of the Compact variant.
	CompactMaxDim = 50

	// ExtendedDivisor maps n to a candidate dimension in the Extended variant.
	ExtendedDivisor = 2
	// ExtendedMinDim is the lower dimension clamp of the Extended variant.
	ExtendedMinDim = 10
	// ExtendedMaxDim is the upper dimension clamp of the Extended variant.
	ExtendedMaxDim = 60

	// HermitianEps is the tolerance within which the Extended variant is
	// guaranteed Hermitian: |M[i][j] − conj(M[j][i])| ≤ HermitianEps.
	HermitianEps = 1e-9
)

// Options configures operator construction.
//
// Fields:
//   - Variant — Compact or Extended entry/size convention.
//
// Example:
//
//	opts := operator.DefaultOptions()
//	opts.Variant = operator.Extended
//	op, err := operator.Build(113, opts)
type Options struct {
	Variant Variant
}

// DefaultOptions returns the canonical configuration: Compact variant.
func DefaultOptions() Options {
	return Options{Variant: Compact}
}
