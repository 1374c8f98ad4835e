// Package pfr provides an axial-dispersion plug-flow reactor.
//
// The concentration and temperature fields are solved on a grid of N+1
// nodes with first-order upwind convection and central dispersion:
//
//	∂Ca/∂t = D ∂²Ca/∂z² - v ∂Ca/∂z - k(T) Ca
//	∂T/∂t  = α ∂²T/∂z²  - v ∂T/∂z  + (-ΔH) k(T) Ca / ρCp - Ua (T - Tw)
package pfr

import (
	"math"

	"github.com/sarchlab/procsim/numeric/spatial"
	"github.com/sarchlab/procsim/unit"
)

// GasConstant is R in kJ/(kmol·K).
const GasConstant = 8.314

// ReferenceTemperature is the temperature at which RateConst is given.
const ReferenceTemperature = 300.0

// Temperature bounds of the state, in K.
const (
	MinTemperature = 200.0
	MaxTemperature = 1000.0
)

const (
	fieldCa = iota
	fieldT
)

// Comp is a plug-flow reactor unit.
type Comp struct {
	*unit.Base

	grid    spatial.Grid
	ca      *spatial.Field
	t       *spatial.Field
	coupled *spatial.Coupled

	velocity       float64
	dispersion     float64
	thermalDiff    float64
	rateConst      float64
	activationE    float64
	heatOfReaction float64
	heatCapacity   float64
	wallCoef       float64
	feedT          float64
	feedConc       float64
	wallT          float64
	initialT       float64

	tIn  float64
	caIn float64
	tw   float64

	conversion float64
}

// Grid returns the grid of the reactor.
func (c *Comp) Grid() spatial.Grid {
	return c.grid
}

// CaProfile returns the concentration field. It must not be modified.
func (c *Comp) CaProfile() []float64 {
	return c.ca.Values
}

// TProfile returns the temperature field. It must not be modified.
func (c *Comp) TProfile() []float64 {
	return c.t.Values
}

// CaOut returns the outlet concentration.
func (c *Comp) CaOut() float64 {
	return c.ca.Last()
}

// TOut returns the outlet temperature.
func (c *Comp) TOut() float64 {
	return c.t.Last()
}

// Conversion returns the fraction of the feed converted at the outlet, as of
// the last committed step.
func (c *Comp) Conversion() float64 {
	return c.conversion
}

func (c *Comp) updateConversion() {
	if c.caIn <= 0 {
		c.conversion = 0
		return
	}

	c.conversion = 1 - c.CaOut()/c.caIn
}

// Stability returns the worst stability numbers of both fields.
func (c *Comp) Stability(unitTimeStep float64) spatial.Stability {
	return spatial.Worst(
		spatial.StabilityOf(c.grid, unitTimeStep, c.dispersion, c.velocity),
		spatial.StabilityOf(c.grid, unitTimeStep, c.thermalDiff, c.velocity),
	)
}

// Fingerprint summarizes the inlet and outlet nodes of both fields.
func (c *Comp) Fingerprint() unit.Fingerprint {
	return unit.Fingerprint{c.ca.First(), c.ca.Last(), c.t.First(), c.t.Last()}
}

// ResidenceTime returns L/v.
func (c *Comp) ResidenceTime() float64 {
	if c.velocity <= 0 {
		return math.Inf(1)
	}

	return c.grid.Length() / c.velocity
}

func (c *Comp) k(t float64) float64 {
	return c.rateConst *
		math.Exp(-c.activationE/GasConstant*(1/t-1/ReferenceTemperature))
}

// InitState fills the reactor with reactant-free fluid at the initial
// temperature.
func (c *Comp) InitState() {
	c.tIn = c.feedT
	c.caIn = c.feedConc
	c.tw = c.wallT

	c.ca.Fill(0)
	c.t.Fill(c.initialT)
	c.updateConversion()
}

// SubStep advances both fields together.
func (c *Comp) SubStep(_, dt float64) {
	caSt := spatial.Stencil{Grid: c.grid, Direction: spatial.Forward, Inlet: c.caIn}
	tSt := spatial.Stencil{Grid: c.grid, Direction: spatial.Forward, Inlet: c.tIn}
	ca, t := c.ca.Values, c.t.Values

	c.coupled.Step(func(f, n int) float64 {
		r := c.k(t[n]) * ca[n]

		switch f {
		case fieldCa:
			d := c.dispersion*caSt.Diffusion(ca, n) +
				c.velocity*caSt.Convection(ca, n) - r

			return c.FloorState("Ca", ca[n]+d*dt)
		default:
			d := c.thermalDiff*tSt.Diffusion(t, n) +
				c.velocity*tSt.Convection(t, n) +
				c.heatOfReaction*r/c.heatCapacity -
				c.wallCoef*(t[n]-c.tw)

			return c.ClampState("T", t[n]+d*dt, MinTemperature, MaxTemperature)
		}
	})

	c.updateConversion()
}
