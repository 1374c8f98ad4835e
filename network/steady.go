package network

import (
	"math"

	"github.com/sarchlab/procsim/numeric"
	"github.com/sarchlab/procsim/unit"
)

// Fingerprint is the summary that the steady-state check compares.
type Fingerprint = unit.Fingerprint

// DefaultResolution is the quantization applied to fingerprints before they
// are compared.
const DefaultResolution = 1e-4

// SteadyStateCheck detects when a reference distributed unit stops
// changing. The reference fingerprint is sampled every check interval, which
// is at least one residence time of the reference. Two equal consecutive
// samples mean steady state.
type SteadyStateCheck struct {
	reference  unit.Distributed
	resolution float64
	minimum    float64

	interval  float64
	lastCheck float64
	last      numeric.Optional[Fingerprint]
	atSteady  bool
}

// NewSteadyStateCheck creates a check on the reference unit.
func NewSteadyStateCheck(
	reference unit.Distributed,
	resolution float64,
) *SteadyStateCheck {
	if resolution <= 0 {
		resolution = DefaultResolution
	}

	return &SteadyStateCheck{
		reference:  reference,
		resolution: resolution,
	}
}

// Reference returns the reference unit.
func (s *SteadyStateCheck) Reference() unit.Distributed {
	return s.reference
}

// Interval returns the time between two samples.
func (s *SteadyStateCheck) Interval() float64 {
	return s.interval
}

// AtSteadyState tells if steady state has been detected.
func (s *SteadyStateCheck) AtSteadyState() bool {
	return s.atSteady
}

// Invalidate forgets every sample. It is called on resets and parameter
// changes. minimum is the smallest allowed interval, normally one tick.
func (s *SteadyStateCheck) Invalidate(now, minimum float64) {
	s.minimum = minimum
	s.interval = math.Max(s.reference.ResidenceTime(), minimum)
	s.lastCheck = now
	s.last = numeric.None[Fingerprint]()
	s.atSteady = false
}

// Check samples the reference if a check interval has passed. It returns
// true when steady state is detected by this call.
func (s *SteadyStateCheck) Check(now float64) bool {
	if s.atSteady || now < s.lastCheck+s.interval {
		return false
	}

	fp := s.reference.Fingerprint().Quantize(s.resolution)
	prev, sampled := s.last.Get()

	s.last = numeric.Some(fp)
	s.lastCheck = now

	if sampled && prev == fp {
		s.atSteady = true
		return true
	}

	return false
}
