// Package params provides parameter sources that units read their parameters
// from.
package params

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sarchlab/procsim/sim/naming"
	"gopkg.in/yaml.v3"
)

// MapSource is an in-memory parameter source. It is safe for concurrent use.
type MapSource struct {
	lock   sync.RWMutex
	values map[string]map[string]float64
}

// NewMapSource creates an empty MapSource.
func NewMapSource() *MapSource {
	return &MapSource{values: make(map[string]map[string]float64)}
}

// Get returns a parameter value.
func (s *MapSource) Get(unitName, paramName string) (float64, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	v, ok := s.values[unitName][paramName]

	return v, ok
}

// Set sets a parameter value.
func (s *MapSource) Set(unitName, paramName string, v float64) {
	s.lock.Lock()
	defer s.lock.Unlock()

	m, found := s.values[unitName]
	if !found {
		m = make(map[string]float64)
		s.values[unitName] = m
	}

	m[paramName] = v
}

// Delete removes a parameter value, so that the unit falls back to its
// initial value.
func (s *MapSource) Delete(unitName, paramName string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.values[unitName], paramName)
}

// Keys returns all the parameters as "Unit.Param", sorted.
func (s *MapSource) Keys() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	var keys []string

	for u, m := range s.values {
		for p := range m {
			keys = append(keys, u+"."+p)
		}
	}

	sort.Strings(keys)

	return keys
}

// SetAssignment parses and applies an assignment of the form
// "Unit.Param=value".
func (s *MapSource) SetAssignment(assignment string) error {
	lhs, rhs, found := strings.Cut(assignment, "=")
	if !found {
		return fmt.Errorf("assignment %q has no '='", assignment)
	}

	unitName, paramName, ok := naming.SplitVariable(strings.TrimSpace(lhs))
	if !ok {
		return fmt.Errorf("assignment %q must be Unit.Param=value", assignment)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(rhs), 64)
	if err != nil {
		return fmt.Errorf("assignment %q: %w", assignment, err)
	}

	s.Set(unitName, paramName, v)

	return nil
}

// A Source supplies parameter values.
type Source interface {
	Get(unitName, paramName string) (float64, bool)
}

// LayeredSource looks parameters up in several sources. The first source
// that has a value wins.
type LayeredSource struct {
	layers []Source
}

// NewLayeredSource creates a source from layers, highest priority first.
func NewLayeredSource(layers ...Source) *LayeredSource {
	return &LayeredSource{layers: layers}
}

// Get returns the value of the first layer that has one.
func (s *LayeredSource) Get(unitName, paramName string) (float64, bool) {
	for _, l := range s.layers {
		if v, ok := l.Get(unitName, paramName); ok {
			return v, true
		}
	}

	return 0, false
}

// ParseYAML reads parameters from a YAML document that maps unit names to
// parameter names to values.
//
//	Tank1:
//	  Flow: 0.5
//	  Area: 2
func ParseYAML(data []byte) (*MapSource, error) {
	var doc map[string]map[string]float64

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing parameters: %w", err)
	}

	return FromMap(doc), nil
}

// FromMap creates a MapSource holding a copy of values.
func FromMap(values map[string]map[string]float64) *MapSource {
	s := NewMapSource()

	for u, m := range values {
		for p, v := range m {
			s.Set(u, p, v)
		}
	}

	return s
}
