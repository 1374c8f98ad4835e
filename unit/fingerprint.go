package unit

import (
	"math"

	"github.com/sarchlab/procsim/numeric/spatial"
)

// Fingerprint is a compact summary of a distributed unit's boundary values.
// Two equal fingerprints taken one check interval apart mean steady state.
type Fingerprint [4]float64

// Quantize rounds every value to a multiple of resolution.
func (f Fingerprint) Quantize(resolution float64) Fingerprint {
	if resolution <= 0 {
		return f
	}

	var q Fingerprint
	for i, v := range f {
		q[i] = math.Round(v/resolution) * resolution
	}

	return q
}

// Distributed is a unit solved on a spatial grid.
type Distributed interface {
	Unit

	// Stability returns the worst stability numbers of all the unit's
	// fields at the given unit time step.
	Stability(unitTimeStep float64) spatial.Stability

	// Fingerprint summarizes the boundary nodes.
	Fingerprint() Fingerprint

	// ResidenceTime returns the time a fluid element stays in the unit.
	ResidenceTime() float64

	// Grid returns the grid of the unit.
	Grid() spatial.Grid
}
