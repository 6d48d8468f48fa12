package fixedpoint

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Distance returns the typed distance between two iterates: |a−b| for
// scalars, the Euclidean norm of the element-wise difference for vectors,
// and the Euclidean norm over the union of keys for maps (missing entries
// treated as 0). A nil map behaves as an empty one.
//
// Errors: ErrDimensionMismatch when vector lengths differ.
func Distance[P Point](a, b P) (float64, error) {
	switch av := any(a).(type) {
	case float64:
		return math.Abs(av - any(b).(float64)), nil

	case []float64:
		bv := any(b).([]float64)
		if len(av) != len(bv) {
			return 0, ErrDimensionMismatch
		}

		return floats.Distance(av, bv, 2), nil

	case map[string]float64:
		bv := any(b).(map[string]float64)

		var sum float64
		for k, x := range av {
			d := x - bv[k] // missing key reads as 0
			sum += d * d
		}
		for k, y := range bv {
			if _, ok := av[k]; !ok {
				sum += y * y
			}
		}

		return math.Sqrt(sum), nil

	default:
		// Unreachable: the Point constraint admits no other type.
		return 0, ErrDimensionMismatch
	}
}

// clone returns an iterate the caller may keep across f invocations even
// when f mutates its argument or reuses a returned container.
func clone[P Point](p P) P {
	switch pv := any(p).(type) {
	case float64:
		return p
	case []float64:
		out := make([]float64, len(pv))
		copy(out, pv)

		return any(out).(P)
	case map[string]float64:
		out := make(map[string]float64, len(pv))
		for k, v := range pv {
			out[k] = v
		}

		return any(out).(P)
	default:
		return p
	}
}
