package feed

import (
	"github.com/sarchlab/procsim/unit"
)

// Builder can build feed units.
type Builder struct {
	clock      unit.Clock
	outputName string
	units      string
	min        float64
	max        float64
	initial    float64
	shape      Shape
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		outputName: "Value",
		min:        0,
		max:        1000,
		initial:    1,
	}
}

// WithClock sets the clock of the unit.
func (b Builder) WithClock(clock unit.Clock) Builder {
	b.clock = clock
	return b
}

// WithOutputName sets the name of the output variable.
func (b Builder) WithOutputName(name string) Builder {
	b.outputName = name
	return b
}

// WithRange sets the declared range and initial value of the Base
// parameter.
func (b Builder) WithRange(min, max, initial float64) Builder {
	b.min = min
	b.max = max
	b.initial = initial

	return b
}

// WithUnits sets the physical units of the output.
func (b Builder) WithUnits(units string) Builder {
	b.units = units
	return b
}

// WithShape sets the initial disturbance shape.
func (b Builder) WithShape(shape Shape) Builder {
	b.shape = shape
	return b
}

// Build creates a feed unit.
func (b Builder) Build(name string) *Comp {
	c := &Comp{}
	c.Base = unit.NewBase(name, c)

	if b.clock != nil {
		c.AttachClock(b.clock)
	}

	span := b.max - b.min

	p := c.Params()
	p.Declare(unit.ParamSpec{Name: "Base", Units: b.units,
		Min: b.min, Max: b.max, Initial: b.initial}, &c.base)
	p.Declare(unit.ParamSpec{Name: "Amplitude", Units: b.units,
		Min: 0, Max: span / 2}, &c.amplitude)
	p.Declare(unit.ParamSpec{Name: "Period", Units: "s",
		Min: 0.1, Max: 1e4, Initial: 60}, &c.period)
	p.Declare(unit.ParamSpec{Name: "Shape",
		Min: float64(Constant), Max: float64(Step),
		Initial: float64(b.shape)}, &c.shape)
	p.Declare(unit.ParamSpec{Name: "StepTime", Units: "s",
		Min: 0, Max: 1e5, Initial: 10}, &c.stepTime)

	c.Outputs().DeclareScalar(b.outputName, c.Value)

	return c
}
