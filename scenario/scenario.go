// Package scenario describes unit networks as YAML documents and builds them.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"regexp"

	"github.com/sarchlab/procsim/network"
	"github.com/sarchlab/procsim/params"
	"github.com/sarchlab/procsim/sim/naming"
	"github.com/sarchlab/procsim/sim/timing"
	"github.com/sarchlab/procsim/unit"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario is wrapped by every error that Parse and Build report
// about the content of a scenario.
var ErrInvalidScenario = errors.New("invalid scenario")

// Document is a parsed scenario.
type Document struct {
	Name        string                        `yaml:"name"`
	Description string                        `yaml:"description"`
	Clock       ClockSpec                     `yaml:"clock"`
	Units       []UnitSpec                    `yaml:"units"`
	Connections []ConnectionSpec              `yaml:"connections"`
	Params      map[string]map[string]float64 `yaml:"params"`
	Steady      *SteadySpec                   `yaml:"steady"`
}

// ClockSpec configures the simulation clock.
type ClockSpec struct {
	TimeStep    float64 `yaml:"timeStep"`
	StepRepeats int     `yaml:"stepRepeats"`
}

// UnitSpec declares one unit.
type UnitSpec struct {
	Name     string            `yaml:"name"`
	Kind     string            `yaml:"kind"`
	SubSteps int               `yaml:"subSteps"`
	Nodes    int               `yaml:"nodes"`
	Length   float64           `yaml:"length"`
	Range    []float64         `yaml:"range"`
	Options  map[string]string `yaml:"options"`
}

// Option returns an option, or def when it is not set.
func (s UnitSpec) Option(key, def string) string {
	if v, ok := s.Options[key]; ok {
		return v
	}

	return def
}

// ConnectionSpec binds an output to an input, both as "Unit.Variable".
type ConnectionSpec struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// SteadySpec selects the steady-state reference unit.
type SteadySpec struct {
	Unit       string  `yaml:"unit"`
	Resolution float64 `yaml:"resolution"`
}

var unitNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)

// Parse decodes and validates a scenario. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	if doc.Clock.StepRepeats == 0 {
		doc.Clock.StepRepeats = 1
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

// Validate checks the parts of the document that do not need the units to be
// built.
func (d *Document) Validate() error {
	var errs []error

	fail := func(format string, args ...any) {
		errs = append(errs,
			fmt.Errorf("%w: "+format, append([]any{ErrInvalidScenario}, args...)...))
	}

	ts := d.Clock.TimeStep
	if ts <= 0 || math.IsNaN(ts) || math.IsInf(ts, 0) {
		fail("time step must be positive, got %g", ts)
	}

	if d.Clock.StepRepeats < 1 {
		fail("step repeats must be at least 1, got %d", d.Clock.StepRepeats)
	}

	if len(d.Units) == 0 {
		fail("no units")
	}

	seen := make(map[string]bool)

	for _, u := range d.Units {
		if !unitNamePattern.MatchString(u.Name) {
			fail("unit name %q must start with a capital letter and "+
				"contain only letters, digits and underscores", u.Name)
		}

		if seen[u.Name] {
			fail("duplicated unit %s", u.Name)
		}

		seen[u.Name] = true

		if u.SubSteps < 0 || u.Nodes < 0 || u.Length < 0 {
			fail("unit %s has negative sizes", u.Name)
		}

		k, ok := lookupKind(u.Kind)

		switch {
		case !ok:
			fail("unit %s has unknown kind %q", u.Name, u.Kind)
		case k.singleStep && u.SubSteps > 1:
			fail("unit %s of kind %s updates once per tick, sub-steps must "+
				"be 0 or 1, got %d", u.Name, k.name, u.SubSteps)
		case k.lumped && (u.Nodes > 0 || u.Length > 0):
			fail("unit %s of kind %s is lumped and takes no nodes or length",
				u.Name, k.name)
		}
	}

	for _, c := range d.Connections {
		fromUnit, _, ok1 := naming.SplitVariable(c.From)
		toUnit, _, ok2 := naming.SplitVariable(c.To)

		switch {
		case !ok1 || !ok2:
			fail("connection %s -> %s must use Unit.Variable", c.From, c.To)
		case fromUnit == toUnit:
			fail("connection %s -> %s connects a unit to itself", c.From, c.To)
		}
	}

	return errors.Join(errs...)
}

// Build creates the network described by the document. The network is not
// initialized.
func (d *Document) Build() (*network.Network, error) {
	clock := timing.NewClock(d.Clock.TimeStep, d.Clock.StepRepeats)
	n := network.NewNetwork(clock)

	for _, spec := range d.Units {
		k, _ := lookupKind(spec.Kind)

		u, err := k.build(spec)
		if err != nil {
			return nil, fmt.Errorf("%w: unit %s: %w",
				ErrInvalidScenario, spec.Name, err)
		}

		n.Add(u)
	}

	if err := d.checkParams(n); err != nil {
		return nil, err
	}

	n.SetParameterSource(params.FromMap(d.Params))

	for _, c := range d.Connections {
		if err := n.Connect(c.From, c.To); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
	}

	if d.Steady != nil {
		err := n.SetSteadyStateReference(d.Steady.Unit, d.Steady.Resolution)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
	}

	return n, nil
}

func (d *Document) checkParams(n *network.Network) error {
	var errs []error

	for unitName, values := range d.Params {
		u, err := n.Unit(unitName)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidScenario, err))
			continue
		}

		for name := range values {
			if _, ok := u.Params().Spec(name); !ok {
				errs = append(errs, fmt.Errorf("%w: %w: %s.%s",
					ErrInvalidScenario, unit.ErrUnknownParameter,
					unitName, name))
			}
		}
	}

	return errors.Join(errs...)
}
