package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// IsFinite tells if v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AllFinite tells if every element of xs is finite.
func AllFinite(xs []float64) bool {
	if floats.HasNaN(xs) {
		return false
	}

	for _, x := range xs {
		if math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
