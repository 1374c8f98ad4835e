// Package cstr provides a continuous stirred-tank reactor running the
// exothermic first-order reaction A -> B, cooled by a jacket.
package cstr

import (
	"math"

	"github.com/sarchlab/procsim/numeric"
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

// JacketMode selects how the jacket temperature is modeled.
type JacketMode int

// Jacket modes.
const (
	// JacketDynamic integrates the jacket energy balance.
	JacketDynamic JacketMode = iota

	// JacketFixed holds the jacket at its inlet temperature.
	JacketFixed
)

func (m JacketMode) String() string {
	if m == JacketFixed {
		return "Fixed"
	}

	return "Dynamic"
}

// Comp is a CSTR unit.
type Comp struct {
	*unit.Base

	jacketMode JacketMode

	flow           float64
	volume         float64
	rateConst      float64
	activationE    float64
	heatOfReaction float64
	heatCapacity   float64
	ua             float64
	jacketVolume   float64
	jacketFlow     float64
	jacketInletT   float64
	feedT          float64
	feedConc       float64
	initialConc    float64
	initialT       float64

	tjIn float64
	tIn  float64
	caIn float64

	ca unit.StateVar
	t  unit.StateVar
	tj unit.StateVar
}

// JacketMode returns the jacket model.
func (c *Comp) JacketMode() JacketMode {
	return c.jacketMode
}

// Ca returns the concentration of A.
func (c *Comp) Ca() float64 {
	return c.ca.Value
}

// T returns the reactor temperature.
func (c *Comp) T() float64 {
	return c.t.Value
}

// Tj returns the jacket temperature.
func (c *Comp) Tj() float64 {
	return c.tj.Value
}

// Rate returns the reaction rate k(T)·Ca.
func (c *Comp) Rate() float64 {
	return c.k(c.t.Value) * c.ca.Value
}

// k is the Arrhenius rate constant at temperature t.
func (c *Comp) k(t float64) float64 {
	return c.rateConst *
		math.Exp(-c.activationE/GasConstant*(1/t-1/ReferenceTemperature))
}

// InitState sets the initial concentration and temperatures.
func (c *Comp) InitState() {
	c.tjIn = c.jacketInletT
	c.tIn = c.feedT
	c.caIn = c.feedConc

	c.ca.Set(c.initialConc)
	c.t.Set(c.initialT)
	c.tj.Set(c.jacketInletT)
}

// SubStep integrates the mass and energy balances. All rates are computed
// from the committed state before any state variable is written.
func (c *Comp) SubStep(_, dt float64) {
	ca, t, tj := c.ca.Value, c.t.Value, c.tj.Value
	dilution := c.flow / c.volume
	r := c.k(t) * ca
	exchange := c.ua * (t - tj) / c.heatCapacity

	dCa := dilution*(c.caIn-ca) - r
	dT := dilution*(c.tIn-t) +
		c.heatOfReaction*r/c.heatCapacity -
		exchange/c.volume

	c.ca.New = c.FloorState("Ca", numeric.Euler(ca, dCa, dt))
	c.t.New = c.ClampState("T", numeric.Euler(t, dT, dt),
		MinTemperature, MaxTemperature)

	switch c.jacketMode {
	case JacketFixed:
		c.tj.New = c.tjIn
	default:
		dTj := c.jacketFlow/c.jacketVolume*(c.tjIn-tj) +
			exchange/c.jacketVolume
		c.tj.New = c.ClampState("Tj", numeric.Euler(tj, dTj, dt),
			MinTemperature, MaxTemperature)
	}

	unit.CommitAll(&c.ca, &c.t, &c.tj)
}
