// Package pendulum provides a damped pendulum. It is the smallest model that
// exercises the vector integrator and is used to demonstrate sub-stepping.
package pendulum

import (
	"math"

	"github.com/sarchlab/procsim/numeric"
	"github.com/sarchlab/procsim/unit"
)

const (
	theta = iota
	omega
)

// Comp is a pendulum unit.
type Comp struct {
	*unit.Base

	integrator *numeric.Integrator
	state      []float64

	length       float64
	damping      float64
	initialAngle float64
	gravity      float64

	drive float64
}

// Angle returns the angle from the vertical in rad.
func (c *Comp) Angle() float64 {
	return c.state[theta]
}

// AngularVelocity returns the angular velocity in rad/s.
func (c *Comp) AngularVelocity() float64 {
	return c.state[omega]
}

// Energy returns the mechanical energy per unit mass.
func (c *Comp) Energy() float64 {
	v := c.length * c.state[omega]

	return 0.5*v*v + c.gravity*c.length*(1-math.Cos(c.state[theta]))
}

func (c *Comp) derivative(_ float64, x, dxdt []float64) {
	dxdt[theta] = x[omega]
	dxdt[omega] = -c.gravity/c.length*math.Sin(x[theta]) -
		c.damping*x[omega] + c.drive
}

// InitState releases the pendulum at rest from the initial angle.
func (c *Comp) InitState() {
	c.state[theta] = c.initialAngle
	c.state[omega] = 0
}

// SubStep advances the angle and the angular velocity together.
func (c *Comp) SubStep(t, dt float64) {
	c.integrator.Step(c.derivative, t, c.state, dt)
}
