// Package spectrum: criterion selection and scan configuration.
package spectrum

import (
	"github.com/kvalterin/aureum/operator"
	"github.com/kvalterin/aureum/phi"
)

// Criterion selects the per-n scalar a scan minimizes.
//
//   - ByMagnitude — f(n), the minimum eigenvalue magnitude itself.
//
//   - ByCurvature — |f(n−1) − 2f(n) + f(n+1)|, the discrete curvature of
//     f. At the scan boundaries (n = lo or n = hi) the raw magnitude is
//     used instead, since a neighbor is missing.
type Criterion int

const (
	// ByMagnitude minimizes the raw minimum eigenvalue magnitude.
	ByMagnitude Criterion = iota

	// ByCurvature minimizes the discrete curvature of the magnitude.
	ByCurvature
)

// String implements fmt.Stringer for diagnostics.
func (c Criterion) String() string {
	switch c {
	case ByMagnitude:
		return "ByMagnitude"
	case ByCurvature:
		return "ByCurvature"
	default:
		return "Unknown"
	}
}

// Options configures spectrum computations.
//
// Fields:
//   - Operator           — variant routing for the underlying builder.
//   - Criterion          — scalar minimized by Scan/FindOptimal.
//   - CurvatureThreshold — cutoff used by IsLocallyNecessary. Zero means
//     "use phi.DefaultCurvatureThreshold (φ⁻⁹)".
//
// Example:
//
//	opts := spectrum.DefaultOptions()
//	opts.Criterion = spectrum.ByCurvature
//	res, err := spectrum.Scan(50, 200, opts)
type Options struct {
	Operator           operator.Options
	Criterion          Criterion
	CurvatureThreshold float64
}

// DefaultOptions returns the canonical configuration: Compact operator,
// ByMagnitude criterion, φ⁻⁹ curvature threshold.
func DefaultOptions() Options {
	return Options{
		Operator:           operator.DefaultOptions(),
		Criterion:          ByMagnitude,
		CurvatureThreshold: phi.DefaultCurvatureThreshold,
	}
}

// ScanResult holds the outcome of a single Scan invocation. It is built
// once per scan and carries no identity beyond its values; nothing is
// cached between scans.
type ScanResult struct {
	// Lo and Hi echo the inclusive range the scan covered.
	Lo, Hi int

	// Values maps each n in [Lo,Hi] to its criterion value.
	Values map[int]float64

	// OptimalN is the argmin over Values, ties broken by the smallest n.
	OptimalN int

	// MinValue is Values[OptimalN].
	MinValue float64
}
