package numeric

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. It also reports whether v had to be changed.
func Clamp[T constraints.Ordered](v, lo, hi T) (T, bool) {
	if v < lo {
		return lo, true
	}

	if v > hi {
		return hi, true
	}

	return v, false
}

// FloorZero limits v to be non-negative, which is the physical bound of
// concentrations and liquid levels.
func FloorZero(v float64) (float64, bool) {
	if v < 0 {
		return 0, true
	}

	return v, false
}
