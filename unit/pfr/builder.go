package pfr

import (
	"github.com/sarchlab/procsim/numeric/spatial"
	"github.com/sarchlab/procsim/unit"
)

// Builder can build plug-flow reactors.
type Builder struct {
	clock     unit.Clock
	subSteps  int
	length    float64
	intervals int
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		subSteps:  4,
		length:    2,
		intervals: 20,
	}
}

// WithClock sets the clock of the reactor.
func (b Builder) WithClock(clock unit.Clock) Builder {
	b.clock = clock
	return b
}

// WithSubSteps sets the number of sub-steps per tick.
func (b Builder) WithSubSteps(n int) Builder {
	b.subSteps = n
	return b
}

// WithLength sets the reactor length in m.
func (b Builder) WithLength(length float64) Builder {
	b.length = length
	return b
}

// WithIntervals sets the number of grid intervals N. The grid has N+1 nodes.
func (b Builder) WithIntervals(n int) Builder {
	b.intervals = n
	return b
}

// Build creates a plug-flow reactor.
func (b Builder) Build(name string) *Comp {
	c := &Comp{}
	c.Base = unit.NewBase(name, c)
	c.SetSubSteps(b.subSteps)

	if b.clock != nil {
		c.AttachClock(b.clock)
	}

	c.grid = spatial.NewGrid(b.length, b.intervals)
	c.ca = spatial.NewField(c.grid, 0)
	c.t = spatial.NewField(c.grid, 0)
	c.coupled = spatial.NewCoupled(c.ca, c.t)

	b.declareParams(c)

	c.Inputs().Declare("Tin", &c.tIn, func() float64 { return c.feedT })
	c.Inputs().Declare("Cain", &c.caIn, func() float64 { return c.feedConc })
	c.Inputs().Declare("Tw", &c.tw, func() float64 { return c.wallT })

	c.Outputs().DeclareScalar("CaOut", c.CaOut)
	c.Outputs().DeclareScalar("TOut", c.TOut)
	c.Outputs().DeclareScalar("Conversion", c.Conversion)
	c.Outputs().DeclareProfile("Ca", c.CaProfile)
	c.Outputs().DeclareProfile("T", c.TProfile)

	return c
}

func (b Builder) declareParams(c *Comp) {
	p := c.Params()

	p.Declare(unit.ParamSpec{Name: "Velocity", Units: "m/s",
		Min: 0.01, Max: 1, Initial: 0.1}, &c.velocity)
	p.Declare(unit.ParamSpec{Name: "Dispersion", Units: "m2/s",
		Min: 0, Max: 0.01, Initial: 0.001}, &c.dispersion)
	p.Declare(unit.ParamSpec{Name: "ThermalDiff", Units: "m2/s",
		Min: 0, Max: 0.01, Initial: 0.001}, &c.thermalDiff)
	p.Declare(unit.ParamSpec{Name: "RateConst", Units: "1/s",
		Min: 0, Max: 1, Initial: 0.05}, &c.rateConst)
	p.Declare(unit.ParamSpec{Name: "ActivationEnergy", Units: "kJ/kmol",
		Min: 0, Max: 150000, Initial: 50000}, &c.activationE)
	p.Declare(unit.ParamSpec{Name: "HeatOfReaction", Units: "kJ/kmol",
		Min: 0, Max: 200000, Initial: 50000}, &c.heatOfReaction)
	p.Declare(unit.ParamSpec{Name: "HeatCapacity", Units: "kJ/(m3.K)",
		Min: 1000, Max: 10000, Initial: 4000}, &c.heatCapacity)
	p.Declare(unit.ParamSpec{Name: "WallCoef", Units: "1/s",
		Min: 0, Max: 1, Initial: 0.05}, &c.wallCoef)
	p.Declare(unit.ParamSpec{Name: "FeedT", Units: "K",
		Min: 250, Max: 500, Initial: 300}, &c.feedT)
	p.Declare(unit.ParamSpec{Name: "FeedConc", Units: "kmol/m3",
		Min: 0, Max: 10, Initial: 1}, &c.feedConc)
	p.Declare(unit.ParamSpec{Name: "WallT", Units: "K",
		Min: 250, Max: 500, Initial: 300}, &c.wallT)
	p.Declare(unit.ParamSpec{Name: "InitialT", Units: "K",
		Min: 250, Max: 500, Initial: 300}, &c.initialT)
}
