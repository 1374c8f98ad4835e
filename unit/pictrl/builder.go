package pictrl

import (
	"github.com/sarchlab/procsim/unit"
)

// Builder can build controller units.
type Builder struct {
	clock unit.Clock
	units string
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{}
}

// WithClock sets the clock of the controller.
func (b Builder) WithClock(clock unit.Clock) Builder {
	b.clock = clock
	return b
}

// WithUnits sets the physical units of the measured variable.
func (b Builder) WithUnits(units string) Builder {
	b.units = units
	return b
}

// Build creates a controller unit.
func (b Builder) Build(name string) *Comp {
	c := &Comp{}
	c.Base = unit.NewBase(name, c)

	if b.clock != nil {
		c.AttachClock(b.clock)
	}

	p := c.Params()
	p.Declare(unit.ParamSpec{Name: "SetPoint", Units: b.units,
		Min: -1000, Max: 1000, Initial: 0}, &c.setPoint)
	p.Declare(unit.ParamSpec{Name: "Gain",
		Min: -1000, Max: 1000, Initial: 1}, &c.gain)
	p.Declare(unit.ParamSpec{Name: "ResetTime", Units: "s",
		Min: 0, Max: 1e4, Initial: 10}, &c.resetTime)
	p.Declare(unit.ParamSpec{Name: "Bias",
		Min: -1000, Max: 1000, Initial: 0}, &c.bias)
	p.Declare(unit.ParamSpec{Name: "Min",
		Min: -1000, Max: 1000, Initial: 0}, &c.min)
	p.Declare(unit.ParamSpec{Name: "Max",
		Min: -1000, Max: 1000, Initial: 1}, &c.max)
	p.Declare(unit.ParamSpec{Name: "Manual",
		Min: 0, Max: 1, Initial: 0}, &c.manual)
	p.Declare(unit.ParamSpec{Name: "ManualCommand",
		Min: -1000, Max: 1000, Initial: 0}, &c.manualCommand)

	c.Inputs().Declare("Measured", &c.measured,
		func() float64 { return c.setPoint })

	c.Outputs().DeclareScalar("Command", c.Command)
	c.Outputs().DeclareScalar("Error", c.Error)
	c.Outputs().DeclareScalar("Integral", c.Integral)

	return c
}
