package hx

import (
	"github.com/sarchlab/procsim/numeric/spatial"
	"github.com/sarchlab/procsim/unit"
)

// Builder can build heat exchangers.
type Builder struct {
	clock     unit.Clock
	subSteps  int
	length    float64
	intervals int
	coldFlow  spatial.Direction
}

// MakeBuilder returns a Builder with default parameters. The default
// exchanger is counter-current.
func MakeBuilder() Builder {
	return Builder{
		subSteps:  2,
		length:    4,
		intervals: 16,
		coldFlow:  spatial.Backward,
	}
}

// WithClock sets the clock of the exchanger.
func (b Builder) WithClock(clock unit.Clock) Builder {
	b.clock = clock
	return b
}

// WithSubSteps sets the number of sub-steps per tick.
func (b Builder) WithSubSteps(n int) Builder {
	b.subSteps = n
	return b
}

// WithLength sets the exchanger length in m.
func (b Builder) WithLength(length float64) Builder {
	b.length = length
	return b
}

// WithIntervals sets the number of grid intervals N.
func (b Builder) WithIntervals(n int) Builder {
	b.intervals = n
	return b
}

// WithCoCurrent makes both sides flow the same way.
func (b Builder) WithCoCurrent() Builder {
	b.coldFlow = spatial.Forward
	return b
}

// WithCounterCurrent makes the sides flow opposite ways.
func (b Builder) WithCounterCurrent() Builder {
	b.coldFlow = spatial.Backward
	return b
}

// Build creates a heat exchanger.
func (b Builder) Build(name string) *Comp {
	c := &Comp{coldFlow: b.coldFlow}
	c.Base = unit.NewBase(name, c)
	c.SetSubSteps(b.subSteps)

	if b.clock != nil {
		c.AttachClock(b.clock)
	}

	c.grid = spatial.NewGrid(b.length, b.intervals)
	c.th = spatial.NewField(c.grid, 0)
	c.tc = spatial.NewField(c.grid, 0)
	c.coupled = spatial.NewCoupled(c.th, c.tc)

	p := c.Params()
	p.Declare(unit.ParamSpec{Name: "HotVelocity", Units: "m/s",
		Min: 0.01, Max: 1, Initial: 0.1}, &c.hotVelocity)
	p.Declare(unit.ParamSpec{Name: "ColdVelocity", Units: "m/s",
		Min: 0.01, Max: 1, Initial: 0.1}, &c.coldVelocity)
	p.Declare(unit.ParamSpec{Name: "HotDiff", Units: "m2/s",
		Min: 0, Max: 0.01, Initial: 0.001}, &c.hotDiff)
	p.Declare(unit.ParamSpec{Name: "ColdDiff", Units: "m2/s",
		Min: 0, Max: 0.01, Initial: 0.001}, &c.coldDiff)
	p.Declare(unit.ParamSpec{Name: "HotCoef", Units: "1/s",
		Min: 0, Max: 1, Initial: 0.1}, &c.hotCoef)
	p.Declare(unit.ParamSpec{Name: "ColdCoef", Units: "1/s",
		Min: 0, Max: 1, Initial: 0.1}, &c.coldCoef)
	p.Declare(unit.ParamSpec{Name: "HotInletT", Units: "K",
		Min: 250, Max: 500, Initial: 370}, &c.hotInletT)
	p.Declare(unit.ParamSpec{Name: "ColdInletT", Units: "K",
		Min: 250, Max: 500, Initial: 290}, &c.coldInletT)
	p.Declare(unit.ParamSpec{Name: "InitialT", Units: "K",
		Min: 250, Max: 500, Initial: 300}, &c.initialT)

	c.Inputs().Declare("ThIn", &c.thIn, func() float64 { return c.hotInletT })
	c.Inputs().Declare("TcIn", &c.tcIn, func() float64 { return c.coldInletT })

	c.Outputs().DeclareScalar("ThOut", c.ThOut)
	c.Outputs().DeclareScalar("TcOut", c.TcOut)
	c.Outputs().DeclareProfile("Th", c.ThProfile)
	c.Outputs().DeclareProfile("Tc", c.TcProfile)

	return c
}
