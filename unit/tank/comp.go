// Package tank provides a gravity-drained liquid tank.
//
// The level h follows dh/dt = (Fin - Cv·u·√h) / A, where Fin is the inflow,
// Cv the valve coefficient, u the valve opening and A the cross-section area.
package tank

import (
	"math"

	"github.com/sarchlab/procsim/numeric"
	"github.com/sarchlab/procsim/unit"
)

// Comp is a tank unit.
type Comp struct {
	*unit.Base

	flow         float64
	valveCoef    float64
	area         float64
	initialLevel float64
	maxLevel     float64

	flowIn  float64
	command float64

	level   unit.StateVar
	flowOut float64
}

// Level returns the liquid level.
func (c *Comp) Level() float64 {
	return c.level.Value
}

// FlowOut returns the outflow through the valve.
func (c *Comp) FlowOut() float64 {
	return c.flowOut
}

// EquilibriumLevel returns the level at which the outflow through a fully
// open valve matches the current inflow.
func (c *Comp) EquilibriumLevel() float64 {
	r := c.flowIn / c.valveCoef

	return r * r
}

func (c *Comp) opening() float64 {
	u, _ := numeric.Clamp(c.command, 0, 1)

	return u
}

func (c *Comp) outflow(h float64) float64 {
	return c.valveCoef * c.opening() * math.Sqrt(h)
}

// InitState fills the tank to the initial level.
func (c *Comp) InitState() {
	c.flowIn = c.flow
	c.command = 1
	c.level.Set(c.initialLevel)
	c.flowOut = c.outflow(c.level.Value)
}

// SubStep integrates the mass balance.
func (c *Comp) SubStep(_, dt float64) {
	h := c.level.Value
	dhdt := (c.flowIn - c.outflow(h)) / c.area

	c.level.New = numeric.Euler(h, dhdt, dt)
	c.level.New = c.FloorState("Level", c.level.New)
	c.level.New = c.ClampState("Level", c.level.New, 0, c.maxLevel)
	c.level.Commit()

	c.flowOut = c.outflow(c.level.Value)
}
