package pendulum

import (
	"math"

	"github.com/sarchlab/procsim/numeric"
	"github.com/sarchlab/procsim/unit"
)

// Builder can build pendulums.
type Builder struct {
	clock    unit.Clock
	subSteps int
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		subSteps: 20,
	}
}

// WithClock sets the clock of the pendulum.
func (b Builder) WithClock(clock unit.Clock) Builder {
	b.clock = clock
	return b
}

// WithSubSteps sets the number of sub-steps per tick.
func (b Builder) WithSubSteps(n int) Builder {
	b.subSteps = n
	return b
}

// Build creates a pendulum.
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		integrator: numeric.NewIntegrator(2),
		state:      make([]float64, 2),
	}
	c.Base = unit.NewBase(name, c)
	c.SetSubSteps(b.subSteps)

	if b.clock != nil {
		c.AttachClock(b.clock)
	}

	p := c.Params()
	p.Declare(unit.ParamSpec{Name: "Length", Units: "m",
		Min: 0.1, Max: 10, Initial: 1}, &c.length)
	p.Declare(unit.ParamSpec{Name: "Damping", Units: "1/s",
		Min: 0, Max: 5, Initial: 0.1}, &c.damping)
	p.Declare(unit.ParamSpec{Name: "InitialAngle", Units: "rad",
		Min: -math.Pi, Max: math.Pi, Initial: 0.5}, &c.initialAngle)
	p.Declare(unit.ParamSpec{Name: "Gravity", Units: "m/s2",
		Min: 0, Max: 30, Initial: 9.81}, &c.gravity)

	c.Inputs().Declare("Drive", &c.drive, func() float64 { return 0 })

	c.Outputs().DeclareScalar("Angle", c.Angle)
	c.Outputs().DeclareScalar("AngularVelocity", c.AngularVelocity)
	c.Outputs().DeclareScalar("Energy", c.Energy)

	return c
}
