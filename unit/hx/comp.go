// Package hx provides a double-pipe heat exchanger with a hot and a cold
// side, each solved as a temperature field on a common grid.
//
//	∂Th/∂t = Dh ∂²Th/∂z² - vh ∂Th/∂z - UaH (Th - Tc)
//	∂Tc/∂t = Dc ∂²Tc/∂z² - vc ∂Tc/∂z + UaC (Th - Tc)
//
// The hot side always enters at node 0. The cold side enters at node 0 in
// co-current operation and at node N in counter-current operation.
package hx

import (
	"math"

	"github.com/sarchlab/procsim/numeric/spatial"
	"github.com/sarchlab/procsim/unit"
)

const (
	fieldHot = iota
	fieldCold
)

// Comp is a heat exchanger unit.
type Comp struct {
	*unit.Base

	grid     spatial.Grid
	coldFlow spatial.Direction
	th       *spatial.Field
	tc       *spatial.Field
	coupled  *spatial.Coupled

	hotVelocity  float64
	coldVelocity float64
	hotDiff      float64
	coldDiff     float64
	hotCoef      float64
	coldCoef     float64
	hotInletT    float64
	coldInletT   float64
	initialT     float64

	thIn float64
	tcIn float64
}

// Grid returns the grid of the exchanger.
func (c *Comp) Grid() spatial.Grid {
	return c.grid
}

// ColdFlow returns the flow direction of the cold side.
func (c *Comp) ColdFlow() spatial.Direction {
	return c.coldFlow
}

// ThProfile returns the hot-side field. It must not be modified.
func (c *Comp) ThProfile() []float64 {
	return c.th.Values
}

// TcProfile returns the cold-side field. It must not be modified.
func (c *Comp) TcProfile() []float64 {
	return c.tc.Values
}

// ThOut returns the hot outlet temperature.
func (c *Comp) ThOut() float64 {
	return c.th.Values[spatial.Forward.OutletNode(c.grid)]
}

// TcOut returns the cold outlet temperature.
func (c *Comp) TcOut() float64 {
	return c.tc.Values[c.coldFlow.OutletNode(c.grid)]
}

// Stability returns the worst stability numbers of both sides.
func (c *Comp) Stability(unitTimeStep float64) spatial.Stability {
	return spatial.Worst(
		spatial.StabilityOf(c.grid, unitTimeStep, c.hotDiff, c.hotVelocity),
		spatial.StabilityOf(c.grid, unitTimeStep, c.coldDiff, c.coldVelocity),
	)
}

// Fingerprint summarizes the end nodes of both sides.
func (c *Comp) Fingerprint() unit.Fingerprint {
	return unit.Fingerprint{c.th.First(), c.th.Last(), c.tc.First(), c.tc.Last()}
}

// ResidenceTime returns the residence time of the slower side.
func (c *Comp) ResidenceTime() float64 {
	v := math.Min(c.hotVelocity, c.coldVelocity)
	if v <= 0 {
		return math.Inf(1)
	}

	return c.grid.Length() / v
}

// InitState fills both sides with fluid at the initial temperature.
func (c *Comp) InitState() {
	c.thIn = c.hotInletT
	c.tcIn = c.coldInletT

	c.th.Fill(c.initialT)
	c.tc.Fill(c.initialT)
}

// SubStep advances both sides together, so that the exchange term of every
// node reads the temperatures of the previous sub-step.
func (c *Comp) SubStep(_, dt float64) {
	hot := spatial.Stencil{Grid: c.grid, Direction: spatial.Forward, Inlet: c.thIn}
	cold := spatial.Stencil{Grid: c.grid, Direction: c.coldFlow, Inlet: c.tcIn}
	th, tc := c.th.Values, c.tc.Values

	c.coupled.Step(func(f, n int) float64 {
		exchange := th[n] - tc[n]

		if f == fieldHot {
			d := c.hotDiff*hot.Diffusion(th, n) +
				c.hotVelocity*hot.Convection(th, n) -
				c.hotCoef*exchange

			return th[n] + d*dt
		}

		d := c.coldDiff*cold.Diffusion(tc, n) +
			c.coldVelocity*cold.Convection(tc, n) +
			c.coldCoef*exchange

		return tc[n] + d*dt
	})
}
