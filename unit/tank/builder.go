package tank

import (
	"github.com/sarchlab/procsim/unit"
)

// Builder can build tanks.
type Builder struct {
	clock    unit.Clock
	subSteps int
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		subSteps: 1,
	}
}

// WithClock sets the clock of the tank.
func (b Builder) WithClock(clock unit.Clock) Builder {
	b.clock = clock
	return b
}

// WithSubSteps sets the number of sub-steps per tick.
func (b Builder) WithSubSteps(n int) Builder {
	b.subSteps = n
	return b
}

// Build creates a tank.
func (b Builder) Build(name string) *Comp {
	c := &Comp{}
	c.Base = unit.NewBase(name, c)
	c.SetSubSteps(b.subSteps)

	if b.clock != nil {
		c.AttachClock(b.clock)
	}

	p := c.Params()
	p.Declare(unit.ParamSpec{Name: "Flow", Units: "m3/s",
		Min: 0, Max: 2, Initial: 0.5}, &c.flow)
	p.Declare(unit.ParamSpec{Name: "ValveCoef", Units: "m2.5/s",
		Min: 0.1, Max: 5, Initial: 1}, &c.valveCoef)
	p.Declare(unit.ParamSpec{Name: "Area", Units: "m2",
		Min: 0.1, Max: 10, Initial: 1}, &c.area)
	p.Declare(unit.ParamSpec{Name: "InitialLevel", Units: "m",
		Min: 0, Max: 2, Initial: 0}, &c.initialLevel)
	p.Declare(unit.ParamSpec{Name: "MaxLevel", Units: "m",
		Min: 0.5, Max: 10, Initial: 4}, &c.maxLevel)

	c.Inputs().Declare("FlowIn", &c.flowIn, func() float64 { return c.flow })
	c.Inputs().Declare("Command", &c.command, func() float64 { return 1 })

	c.Outputs().DeclareScalar("Level", c.Level)
	c.Outputs().DeclareScalar("FlowOut", c.FlowOut)

	return c
}
