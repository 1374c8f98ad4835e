package timing

import (
	"errors"
	"fmt"
	"math"
)

// VTimeInSec defines the time in the simulated space in the unit of second.
type VTimeInSec = float64

// ErrNotAtBoundary is returned when the time step is changed while a batch of
// ticks is in flight.
var ErrNotAtBoundary = errors.New("time step can only change at a batch boundary")

// Clock is the simulation clock. It advances by a fixed time step per tick and
// groups StepRepeats ticks into one display-refresh batch. The time step is
// constant within a batch so that simulated time stays proportional to wall
// time.
type Clock struct {
	epoch       VTimeInSec
	ticks       uint64
	timeStep    VTimeInSec
	stepRepeats int
	atBoundary  bool
}

// NewClock creates a clock at time 0, positioned at a batch boundary.
func NewClock(timeStep VTimeInSec, stepRepeats int) *Clock {
	timeStepMustBeValid(timeStep)

	if stepRepeats < 1 {
		panic("step repeats must be at least 1")
	}

	return &Clock{
		timeStep:    timeStep,
		stepRepeats: stepRepeats,
		atBoundary:  true,
	}
}

func timeStepMustBeValid(timeStep VTimeInSec) {
	if timeStep <= 0 || math.IsNaN(timeStep) || math.IsInf(timeStep, 0) {
		panic(fmt.Sprintf("invalid time step %g", timeStep))
	}
}

// Now returns the current simulated time.
func (c *Clock) Now() VTimeInSec {
	return c.epoch + float64(c.ticks)*c.timeStep
}

// TimeStep returns the time advanced by one tick.
func (c *Clock) TimeStep() VTimeInSec {
	return c.timeStep
}

// StepRepeats returns the number of ticks per batch.
func (c *Clock) StepRepeats() int {
	return c.stepRepeats
}

// Ticks returns the number of ticks since the time step was last changed.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// AtBoundary tells if the clock is between two batches.
func (c *Clock) AtBoundary() bool {
	return c.atBoundary
}

// Advance moves the clock forward by one tick. The clock leaves the batch
// boundary until MarkBoundary is called.
func (c *Clock) Advance() {
	c.ticks++
	c.atBoundary = false
}

// BeginBatch marks the start of a batch of ticks.
func (c *Clock) BeginBatch() {
	c.atBoundary = false
}

// MarkBoundary marks the end of a batch.
func (c *Clock) MarkBoundary() {
	c.atBoundary = true
}

// ScaleTimeStep multiplies the time step by factor. It is only allowed at a
// batch boundary.
func (c *Clock) ScaleTimeStep(factor float64) error {
	if !c.atBoundary {
		return ErrNotAtBoundary
	}

	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("invalid time step scale %g", factor)
	}

	return c.SetTimeStep(c.timeStep * factor)
}

// SetTimeStep replaces the time step, keeping the current time. It is only
// allowed at a batch boundary.
func (c *Clock) SetTimeStep(timeStep VTimeInSec) error {
	if !c.atBoundary {
		return ErrNotAtBoundary
	}

	if timeStep <= 0 || math.IsNaN(timeStep) || math.IsInf(timeStep, 0) {
		return fmt.Errorf("invalid time step %g", timeStep)
	}

	c.epoch = c.Now()
	c.ticks = 0
	c.timeStep = timeStep

	return nil
}

// SetStepRepeats changes the number of ticks per batch. It is only allowed at
// a batch boundary.
func (c *Clock) SetStepRepeats(n int) error {
	if !c.atBoundary {
		return ErrNotAtBoundary
	}

	if n < 1 {
		return fmt.Errorf("invalid step repeats %d", n)
	}

	c.stepRepeats = n

	return nil
}

// Reset moves the clock back to time 0 at a batch boundary. The time step is
// kept.
func (c *Clock) Reset() {
	c.epoch = 0
	c.ticks = 0
	c.atBoundary = true
}
