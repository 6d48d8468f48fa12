package spectrum

import "math"

// Scan evaluates the configured criterion for every n in the inclusive
// range [lo, hi] and identifies the minimizer.
//
// Contracts:
//   - 1 <= lo <= hi (ErrBadRange otherwise).
//   - ByCurvature uses |f(n−1) − 2f(n) + f(n+1)| for interior n and falls
//     back to the raw magnitude f(n) at n = lo and n = hi, where a
//     neighbor is missing.
//   - Ties are broken by first occurrence in ascending n. Documented
//     policy, relied upon by FindOptimal.
//
// The magnitudes f(lo..hi) are computed exactly once; curvature reuses
// neighbors rather than rebuilding operators.
//
// Errors: ErrBadRange, ErrUnknownCriterion, operator errors forwarded.
// Complexity: O((hi−lo+1)·d³) time, O(hi−lo) memory.
func Scan(lo, hi int, opts Options) (*ScanResult, error) {
	// Stage 1: validate the range and criterion.
	if lo < 1 || hi < lo {
		return nil, ErrBadRange
	}
	if opts.Criterion != ByMagnitude && opts.Criterion != ByCurvature {
		return nil, ErrUnknownCriterion
	}

	// Stage 2: one magnitude per n, single pass.
	var (
		count = hi - lo + 1
		mags  = make(map[int]float64, count)
		n     int
		err   error
	)
	for n = lo; n <= hi; n++ {
		if mags[n], err = MinEigenMagnitude(n, opts); err != nil {
			return nil, err
		}
	}

	// Stage 3: derive criterion values, reusing neighbor magnitudes.
	values := make(map[int]float64, count)
	for n = lo; n <= hi; n++ {
		switch {
		case opts.Criterion == ByMagnitude, n == lo, n == hi:
			values[n] = mags[n]
		default:
			values[n] = math.Abs(mags[n-1] - 2*mags[n] + mags[n+1])
		}
	}

	// Stage 4: argmin in ascending n, first occurrence wins.
	var (
		bestN = lo
		best  = values[lo]
	)
	for n = lo + 1; n <= hi; n++ {
		if values[n] < best {
			bestN, best = n, values[n]
		}
	}

	return &ScanResult{Lo: lo, Hi: hi, Values: values, OptimalN: bestN, MinValue: best}, nil
}

// FindOptimal is the argmin shortcut: it scans [lo, hi] and returns only
// the optimal n. The result always satisfies lo <= result <= hi.
//
// Errors: those of Scan.
func FindOptimal(lo, hi int, opts Options) (int, error) {
	res, err := Scan(lo, hi, opts)
	if err != nil {
		return 0, err
	}

	return res.OptimalN, nil
}
