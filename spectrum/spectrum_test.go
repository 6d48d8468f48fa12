package spectrum_test

import (
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/kvalterin/aureum/operator"
	"github.com/kvalterin/aureum/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinEigenMagnitude_FiniteNonNegative verifies the magnitude is a
// finite non-negative float around the n=113 neighborhood for both
// variants.
func TestMinEigenMagnitude_FiniteNonNegative(t *testing.T) {
	for _, variant := range []operator.Variant{operator.Compact, operator.Extended} {
		opts := spectrum.DefaultOptions()
		opts.Operator.Variant = variant

		for _, n := range []int{112, 113, 114} {
			mag, err := spectrum.MinEigenMagnitude(n, opts)
			require.NoError(t, err, "variant %s n=%d", variant, n)
			assert.False(t, math.IsNaN(mag) || math.IsInf(mag, 0),
				"magnitude must be finite for variant %s n=%d", variant, n)
			assert.GreaterOrEqual(t, mag, 0.0,
				"magnitude must be non-negative for variant %s n=%d", variant, n)
		}
	}
}

// TestMinEigenMagnitude_Deterministic verifies repeated calls agree
// bit-for-bit: the whole pipeline is a pure function of n and φ.
func TestMinEigenMagnitude_Deterministic(t *testing.T) {
	opts := spectrum.DefaultOptions()

	a, err := spectrum.MinEigenMagnitude(113, opts)
	require.NoError(t, err)
	b, err := spectrum.MinEigenMagnitude(113, opts)
	require.NoError(t, err)

	assert.Equal(t, a, b, "repeated magnitudes must be identical")
}

// TestMinEigenMagnitude_ForwardsOperatorErrors verifies builder errors
// surface unchanged.
func TestMinEigenMagnitude_ForwardsOperatorErrors(t *testing.T) {
	_, err := spectrum.MinEigenMagnitude(0, spectrum.DefaultOptions())
	assert.ErrorIs(t, err, operator.ErrBadParameter, "n=0 must forward ErrBadParameter")

	opts := spectrum.DefaultOptions()
	opts.Operator.Variant = operator.Variant(99)
	_, err = spectrum.MinEigenMagnitude(10, opts)
	assert.ErrorIs(t, err, operator.ErrUnknownVariant, "bad variant must forward")
}

// TestCurvature_MatchesFiniteDifference verifies Curvature(113) equals
// |f(112) − 2f(113) + f(114)| computed from the public magnitude calls.
func TestCurvature_MatchesFiniteDifference(t *testing.T) {
	opts := spectrum.DefaultOptions()

	prev, err := spectrum.MinEigenMagnitude(112, opts)
	require.NoError(t, err)
	curr, err := spectrum.MinEigenMagnitude(113, opts)
	require.NoError(t, err)
	next, err := spectrum.MinEigenMagnitude(114, opts)
	require.NoError(t, err)

	got, err := spectrum.Curvature(113, opts)
	require.NoError(t, err)
	assert.InDelta(t, math.Abs(prev-2*curr+next), got, 1e-9,
		"curvature must match its defining finite difference")
}

// TestCurvature_Boundary verifies n < 2 is rejected: the left neighbor
// f(n−1) does not exist there.
func TestCurvature_Boundary(t *testing.T) {
	_, err := spectrum.Curvature(1, spectrum.DefaultOptions())
	assert.ErrorIs(t, err, spectrum.ErrBoundaryCurvature)

	_, err = spectrum.Curvature(0, spectrum.DefaultOptions())
	assert.ErrorIs(t, err, spectrum.ErrBoundaryCurvature)
}

// TestIsLocallyNecessary_ThresholdSemantics pins the strict-less-than
// contract by bracketing the measured curvature with thresholds on
// either side of it.
func TestIsLocallyNecessary_ThresholdSemantics(t *testing.T) {
	opts := spectrum.DefaultOptions()

	c, err := spectrum.Curvature(113, opts)
	require.NoError(t, err)

	// Threshold above the curvature: locally necessary.
	opts.CurvatureThreshold = c + 1
	ok, err := spectrum.IsLocallyNecessary(113, opts)
	require.NoError(t, err)
	assert.True(t, ok, "curvature must fall below threshold c+1")

	// Threshold equal to the curvature: strict comparison says no.
	if c > 0 {
		opts.CurvatureThreshold = c
		ok, err = spectrum.IsLocallyNecessary(113, opts)
		require.NoError(t, err)
		assert.False(t, ok, "comparison must be strictly less-than")
	}
}

// TestIsLocallyNecessary_BadThreshold verifies NaN, ±Inf and negative
// thresholds are rejected, while zero selects the φ⁻⁹ default.
func TestIsLocallyNecessary_BadThreshold(t *testing.T) {
	opts := spectrum.DefaultOptions()

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1e-3} {
		opts.CurvatureThreshold = bad
		_, err := spectrum.IsLocallyNecessary(113, opts)
		assert.ErrorIs(t, err, spectrum.ErrBadThreshold, "threshold %v must error", bad)
	}

	opts.CurvatureThreshold = 0
	_, err := spectrum.IsLocallyNecessary(113, opts)
	assert.NoError(t, err, "zero threshold must select the φ⁻⁹ default")
}

// TestMinEigenMagnitude_HermitianPathAgreesWithGeneral cross-checks the
// two eigensolver paths: for the Hermitian Extended operator, a general
// eigendecomposition of the real block embedding built independently
// here must find the same minimum magnitude as the specialized path
// inside MinEigenMagnitude, up to dense-solver tolerance.
func TestMinEigenMagnitude_HermitianPathAgreesWithGeneral(t *testing.T) {
	opts := spectrum.DefaultOptions()
	opts.Operator.Variant = operator.Extended

	sym, err := spectrum.MinEigenMagnitude(60, opts)
	require.NoError(t, err)

	op, err := operator.Build(60, opts.Operator)
	require.NoError(t, err)

	// Independent embedding [[A,−B],[B,A]] and general solve.
	d := op.Dim()
	embed := mat.NewDense(2*d, 2*d, nil)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			v, errAt := op.At(i, j)
			require.NoError(t, errAt)
			embed.Set(i, j, real(v))
			embed.Set(i, j+d, -imag(v))
			embed.Set(i+d, j, imag(v))
			embed.Set(i+d, j+d, real(v))
		}
	}

	var eig mat.Eigen
	require.True(t, eig.Factorize(embed, mat.EigenNone), "general factorization must converge")

	gen := math.Inf(1)
	for _, v := range eig.Values(nil) {
		if a := cmplx.Abs(v); a < gen {
			gen = a
		}
	}

	assert.InDelta(t, gen, sym, 1e-9, "solver paths must agree on min |λ|")
}
