// Package feed provides a source unit that supplies a boundary value to other
// units, optionally with a periodic or step disturbance.
package feed

import (
	"math"

	"github.com/sarchlab/procsim/unit"
)

// Shape selects the disturbance added to the base value.
type Shape int

// Disturbance shapes.
const (
	Constant Shape = iota
	Sine
	Square
	Step
)

func (s Shape) String() string {
	switch s {
	case Constant:
		return "Constant"
	case Sine:
		return "Sine"
	case Square:
		return "Square"
	case Step:
		return "Step"
	default:
		return "Unknown"
	}
}

// Comp is a feed unit.
type Comp struct {
	*unit.Base

	base      float64
	amplitude float64
	period    float64
	shape     float64
	stepTime  float64

	value float64
}

// Value returns the current output.
func (c *Comp) Value() float64 {
	return c.value
}

// Shape returns the selected disturbance shape.
func (c *Comp) Shape() Shape {
	return Shape(math.Round(c.shape))
}

// At returns the output at time t.
func (c *Comp) At(t float64) float64 {
	return c.base + c.amplitude*c.disturbance(t)
}

func (c *Comp) disturbance(t float64) float64 {
	switch c.Shape() {
	case Sine:
		return math.Sin(2 * math.Pi * t / c.period)
	case Square:
		if math.Sin(2*math.Pi*t/c.period) >= 0 {
			return 1
		}

		return -1
	case Step:
		if t >= c.stepTime {
			return 1
		}

		return 0
	default:
		return 0
	}
}

// InitState evaluates the output at the current time.
func (c *Comp) InitState() {
	c.value = c.At(c.Now())
}

// SubStep evaluates the output at the end of the sub-step.
func (c *Comp) SubStep(t, dt float64) {
	c.value = c.At(t + dt)
}
