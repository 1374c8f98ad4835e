package display

import (
	"sort"
	"sync"

	"github.com/sarchlab/procsim/sim/naming"
	"github.com/sarchlab/procsim/unit"
)

// LatestSink keeps the last published value of every variable. It is safe to
// read while the simulation publishes.
type LatestSink struct {
	mu     sync.RWMutex
	values map[string]unit.Value
}

// NewLatestSink creates an empty LatestSink.
func NewLatestSink() *LatestSink {
	return &LatestSink{values: make(map[string]unit.Value)}
}

// Publish implements unit.DisplaySink.
func (s *LatestSink) Publish(unitName, variable string, value unit.Value) {
	if value.IsProfile() {
		value.Profile = append([]float64(nil), value.Profile...)
	}

	s.mu.Lock()
	s.values[naming.BuildName(unitName, variable)] = value
	s.mu.Unlock()
}

// Get returns the last value of a variable.
func (s *LatestSink) Get(unitName, variable string) (unit.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[naming.BuildName(unitName, variable)]

	return v, ok
}

// Names returns every "Unit.Variable" seen so far, sorted.
func (s *LatestSink) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Scalars returns the last value of every scalar variable.
func (s *LatestSink) Scalars() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scalars := make(map[string]float64, len(s.values))
	for name, v := range s.values {
		if !v.IsProfile() {
			scalars[name] = v.Scalar
		}
	}

	return scalars
}
