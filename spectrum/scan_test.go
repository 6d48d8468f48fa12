package spectrum_test

import (
	"testing"

	"github.com/kvalterin/aureum/operator"
	"github.com/kvalterin/aureum/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScan_BadRange verifies the range contract 1 <= lo <= hi.
func TestScan_BadRange(t *testing.T) {
	opts := spectrum.DefaultOptions()

	_, err := spectrum.Scan(0, 10, opts)
	assert.ErrorIs(t, err, spectrum.ErrBadRange, "lo=0 must error")

	_, err = spectrum.Scan(20, 10, opts)
	assert.ErrorIs(t, err, spectrum.ErrBadRange, "hi < lo must error")
}

// TestScan_UnknownCriterion verifies out-of-range criteria are rejected.
func TestScan_UnknownCriterion(t *testing.T) {
	opts := spectrum.DefaultOptions()
	opts.Criterion = spectrum.Criterion(42)

	_, err := spectrum.Scan(50, 60, opts)
	assert.ErrorIs(t, err, spectrum.ErrUnknownCriterion)
}

// TestScan_CoversRange verifies every n in [lo,hi] receives a value and
// the result echoes the range.
func TestScan_CoversRange(t *testing.T) {
	res, err := spectrum.Scan(50, 60, spectrum.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 50, res.Lo)
	assert.Equal(t, 60, res.Hi)
	assert.Len(t, res.Values, 11, "one value per n in [50,60]")
	for n := 50; n <= 60; n++ {
		assert.Contains(t, res.Values, n)
	}
}

// TestScan_OptimumWithinRangeAndConsistent verifies the argmin lies in
// [lo,hi], MinValue matches Values[OptimalN], and no value undercuts it.
func TestScan_OptimumWithinRangeAndConsistent(t *testing.T) {
	for _, criterion := range []spectrum.Criterion{spectrum.ByMagnitude, spectrum.ByCurvature} {
		opts := spectrum.DefaultOptions()
		opts.Criterion = criterion

		res, err := spectrum.Scan(50, 70, opts)
		require.NoError(t, err, "criterion %s", criterion)

		assert.GreaterOrEqual(t, res.OptimalN, 50)
		assert.LessOrEqual(t, res.OptimalN, 70)
		assert.Equal(t, res.Values[res.OptimalN], res.MinValue)
		for n, v := range res.Values {
			assert.GreaterOrEqual(t, v, res.MinValue,
				"criterion %s: value at n=%d undercuts the reported minimum", criterion, n)
		}
	}
}

// TestScan_CurvatureBoundaryFallback verifies the curvature criterion
// substitutes the raw magnitude at both range boundaries and the exact
// finite difference everywhere else.
func TestScan_CurvatureBoundaryFallback(t *testing.T) {
	opts := spectrum.DefaultOptions()
	opts.Criterion = spectrum.ByCurvature

	res, err := spectrum.Scan(55, 65, opts)
	require.NoError(t, err)

	magOpts := spectrum.DefaultOptions()
	loMag, err := spectrum.MinEigenMagnitude(55, magOpts)
	require.NoError(t, err)
	hiMag, err := spectrum.MinEigenMagnitude(65, magOpts)
	require.NoError(t, err)

	assert.InDelta(t, loMag, res.Values[55], 1e-12, "lo boundary must hold the raw magnitude")
	assert.InDelta(t, hiMag, res.Values[65], 1e-12, "hi boundary must hold the raw magnitude")

	interior, err := spectrum.Curvature(60, magOpts)
	require.NoError(t, err)
	assert.InDelta(t, interior, res.Values[60], 1e-9, "interior must hold the curvature")
}

// TestScan_SingletonRange verifies a one-element range is valid and
// returns that element under both criteria.
func TestScan_SingletonRange(t *testing.T) {
	for _, criterion := range []spectrum.Criterion{spectrum.ByMagnitude, spectrum.ByCurvature} {
		opts := spectrum.DefaultOptions()
		opts.Criterion = criterion

		res, err := spectrum.Scan(113, 113, opts)
		require.NoError(t, err)
		assert.Equal(t, 113, res.OptimalN)
		assert.Len(t, res.Values, 1)
	}
}

// TestFindOptimal_WithinRange verifies the range property
// lo <= FindOptimal(lo,hi) <= hi across variants and criteria.
func TestFindOptimal_WithinRange(t *testing.T) {
	for _, variant := range []operator.Variant{operator.Compact, operator.Extended} {
		for _, criterion := range []spectrum.Criterion{spectrum.ByMagnitude, spectrum.ByCurvature} {
			opts := spectrum.DefaultOptions()
			opts.Operator.Variant = variant
			opts.Criterion = criterion

			best, err := spectrum.FindOptimal(50, 80, opts)
			require.NoError(t, err, "variant %s criterion %s", variant, criterion)
			assert.GreaterOrEqual(t, best, 50)
			assert.LessOrEqual(t, best, 80)
		}
	}
}

// TestFindOptimal_Deterministic verifies repeated scans agree: the tie
// policy (first occurrence in ascending n) leaves no room for drift.
func TestFindOptimal_Deterministic(t *testing.T) {
	opts := spectrum.DefaultOptions()

	a, err := spectrum.FindOptimal(50, 100, opts)
	require.NoError(t, err)
	b, err := spectrum.FindOptimal(50, 100, opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
