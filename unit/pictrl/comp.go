// Package pictrl provides a controller unit that drives a manipulated
// variable of one unit from a measured variable of another.
package pictrl

import (
	"math"

	"github.com/sarchlab/procsim/control"
	"github.com/sarchlab/procsim/unit"
)

// Comp is a PI controller unit. It updates once per tick.
type Comp struct {
	*unit.Base

	pi *control.PI

	setPoint      float64
	gain          float64
	resetTime     float64
	bias          float64
	min           float64
	max           float64
	manual        float64
	manualCommand float64

	appliedBias float64
	measured    float64
}

// Controller returns the underlying controller.
func (c *Comp) Controller() *control.PI {
	return c.pi
}

// Command returns the current command.
func (c *Comp) Command() float64 {
	return c.pi.Command()
}

// Error returns the error of the last update.
func (c *Comp) Error() float64 {
	return c.pi.Error()
}

// Integral returns the accumulated error integral.
func (c *Comp) Integral() float64 {
	return c.pi.Integral()
}

func (c *Comp) mode() control.Mode {
	if c.manual >= 0.5 {
		return control.Manual
	}

	return control.Auto
}

func (c *Comp) config() control.Config {
	return control.Config{
		SetPoint:      c.setPoint,
		Gain:          c.gain,
		ResetTime:     c.resetTime,
		Bias:          c.bias,
		Min:           c.min,
		Max:           math.Max(c.min, c.max),
		ManualCommand: c.manualCommand,
	}
}

// InitState creates a fresh controller from the parameters.
func (c *Comp) InitState() {
	c.measured = c.setPoint
	c.appliedBias = c.bias

	c.pi = control.NewPI(c.config())
	c.pi.SetMode(c.mode())
	c.pi.Reset()
}

// ParamsChanged retunes the running controller. The integral is kept, and
// the bias is only overwritten when the Bias parameter itself changed, so
// that a switch from Manual to Auto stays bump-free.
func (c *Comp) ParamsChanged() {
	cfg := c.config()

	if c.bias == c.appliedBias {
		cfg.Bias = c.pi.Bias
	}

	c.appliedBias = c.bias
	c.pi.Config = cfg
	c.pi.SetMode(c.mode())
}

// SubStep runs one controller update.
func (c *Comp) SubStep(_, dt float64) {
	c.pi.Update(c.measured, dt)
}
