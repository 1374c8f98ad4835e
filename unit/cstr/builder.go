package cstr

import (
	"github.com/sarchlab/procsim/unit"
)

// Builder can build CSTRs.
type Builder struct {
	clock      unit.Clock
	subSteps   int
	jacketMode JacketMode
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		subSteps:   1,
		jacketMode: JacketDynamic,
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

// WithJacketMode sets the jacket model.
func (b Builder) WithJacketMode(mode JacketMode) Builder {
	b.jacketMode = mode
	return b
}

// Build creates a CSTR.
func (b Builder) Build(name string) *Comp {
	c := &Comp{jacketMode: b.jacketMode}
	c.Base = unit.NewBase(name, c)
	c.SetSubSteps(b.subSteps)

	if b.clock != nil {
		c.AttachClock(b.clock)
	}

	b.declareParams(c)

	c.Inputs().Declare("TjIn", &c.tjIn,
		func() float64 { return c.jacketInletT })
	c.Inputs().Declare("Tin", &c.tIn, func() float64 { return c.feedT })
	c.Inputs().Declare("Cain", &c.caIn, func() float64 { return c.feedConc })

	c.Outputs().DeclareScalar("Ca", c.Ca)
	c.Outputs().DeclareScalar("T", c.T)
	c.Outputs().DeclareScalar("Tj", c.Tj)
	c.Outputs().DeclareScalar("Rate", c.Rate)

	return c
}

func (b Builder) declareParams(c *Comp) {
	p := c.Params()

	p.Declare(unit.ParamSpec{Name: "Flow", Units: "m3/s",
		Min: 0, Max: 1, Initial: 0.1}, &c.flow)
	p.Declare(unit.ParamSpec{Name: "Volume", Units: "m3",
		Min: 0.1, Max: 10, Initial: 1}, &c.volume)
	p.Declare(unit.ParamSpec{Name: "RateConst", Units: "1/s",
		Min: 0, Max: 1, Initial: 0.05}, &c.rateConst)
	p.Declare(unit.ParamSpec{Name: "ActivationEnergy", Units: "kJ/kmol",
		Min: 0, Max: 150000, Initial: 50000}, &c.activationE)
	p.Declare(unit.ParamSpec{Name: "HeatOfReaction", Units: "kJ/kmol",
		Min: 0, Max: 200000, Initial: 50000}, &c.heatOfReaction)
	p.Declare(unit.ParamSpec{Name: "HeatCapacity", Units: "kJ/(m3.K)",
		Min: 1000, Max: 10000, Initial: 4000}, &c.heatCapacity)
	p.Declare(unit.ParamSpec{Name: "UA", Units: "kW/K",
		Min: 0, Max: 1000, Initial: 50}, &c.ua)
	p.Declare(unit.ParamSpec{Name: "JacketVolume", Units: "m3",
		Min: 0.01, Max: 5, Initial: 0.2}, &c.jacketVolume)
	p.Declare(unit.ParamSpec{Name: "JacketFlow", Units: "m3/s",
		Min: 0, Max: 1, Initial: 0.05}, &c.jacketFlow)
	p.Declare(unit.ParamSpec{Name: "JacketInletT", Units: "K",
		Min: 250, Max: 500, Initial: 300}, &c.jacketInletT)
	p.Declare(unit.ParamSpec{Name: "FeedT", Units: "K",
		Min: 250, Max: 500, Initial: 300}, &c.feedT)
	p.Declare(unit.ParamSpec{Name: "FeedConc", Units: "kmol/m3",
		Min: 0, Max: 10, Initial: 1}, &c.feedConc)
	p.Declare(unit.ParamSpec{Name: "InitialConc", Units: "kmol/m3",
		Min: 0, Max: 10, Initial: 0}, &c.initialConc)
	p.Declare(unit.ParamSpec{Name: "InitialT", Units: "K",
		Min: 250, Max: 500, Initial: 300}, &c.initialT)
}
