// Package control implements the proportional-integral controller used by the
// controller units.
package control

import (
	"fmt"

	"github.com/sarchlab/procsim/numeric"
)

// Mode is the operating mode of a controller.
type Mode int

// Controller modes.
const (
	Auto Mode = iota
	Manual
)

func (m Mode) String() string {
	if m == Manual {
		return "Manual"
	}

	return "Auto"
}

// Config holds the tuning of a PI controller.
type Config struct {
	SetPoint  float64
	Gain      float64
	ResetTime float64
	Bias      float64
	Min       float64
	Max       float64

	// ManualCommand is the command output while in Manual mode.
	ManualCommand float64
}

// PI is a proportional-integral controller with output limits and integral
// anti-windup.
//
//	error   = SetPoint - measured
//	command = Bias + Gain*(error + Integral/ResetTime), clamped to [Min, Max]
//
// The integral accumulates error*dt only in steps where the unclamped command
// is within the limits. A ResetTime of zero or less disables integral action.
type PI struct {
	Config

	mode      Mode
	integral  float64
	command   float64
	lastError float64
	saturated bool
}

// NewPI creates a controller in Auto mode.
func NewPI(cfg Config) *PI {
	configMustBeValid(cfg)

	c := &PI{Config: cfg}
	c.Reset()

	return c
}

func configMustBeValid(cfg Config) {
	if cfg.Min > cfg.Max {
		panic(fmt.Sprintf("controller limits are inverted: min %g > max %g",
			cfg.Min, cfg.Max))
	}
}

// Reset clears the integral and sets the command to the bias.
func (c *PI) Reset() {
	c.integral = 0
	c.lastError = 0
	c.saturated = false
	c.command, _ = numeric.Clamp(c.Bias, c.Min, c.Max)

	if c.mode == Manual {
		c.command = c.ManualCommand
	}
}

// Mode returns the current mode.
func (c *PI) Mode() Mode {
	return c.mode
}

// SetMode switches the mode. Switching from Manual to Auto moves the bias so
// that the first Auto command continues from the manual command.
func (c *PI) SetMode(m Mode) {
	if c.mode == Manual && m == Auto {
		c.Bias = c.ManualCommand - c.Gain*c.integralTerm()
	}

	c.mode = m
}

// Integral returns the accumulated error integral.
func (c *PI) Integral() float64 {
	return c.integral
}

// Command returns the last command.
func (c *PI) Command() float64 {
	return c.command
}

// Error returns the error of the last update.
func (c *PI) Error() float64 {
	return c.lastError
}

// Saturated tells if the unclamped command of the last update was outside
// the limits.
func (c *PI) Saturated() bool {
	return c.saturated
}

func (c *PI) integralTerm() float64 {
	if c.ResetTime <= 0 {
		return 0
	}

	return c.integral / c.ResetTime
}

// Update computes a new command from the measured value and advances the
// integral by one step of length dt.
func (c *PI) Update(measured, dt float64) float64 {
	e := c.SetPoint - measured
	c.lastError = e

	unclamped := c.Bias + c.Gain*(e+c.integralTerm())
	cmd, saturated := numeric.Clamp(unclamped, c.Min, c.Max)
	c.saturated = saturated

	if !saturated {
		c.integral += e * dt
	}

	if c.mode == Manual {
		cmd = c.ManualCommand
	}

	c.command = cmd

	return cmd
}
