// Package network connects process units and advances them together.
//
// Every tick runs in phases. In phase A every unit reads its inputs from the
// committed outputs of the units it is connected to. In phase B every unit
// advances its own state. Because no unit advances before all units have
// read, the order in which units were added does not matter. Phase C checks
// for steady state, and phase D lets every unit produce its outputs and
// publishes them to the display sink.
package network

import (
	"errors"
	"fmt"

	"github.com/sarchlab/procsim/params"
	"github.com/sarchlab/procsim/sim/hooking"
	"github.com/sarchlab/procsim/sim/naming"
	"github.com/sarchlab/procsim/sim/timing"
	"github.com/sarchlab/procsim/unit"
)

// Connection connects an output of one unit to an input of another.
type Connection struct {
	From string
	To   string
}

// Network owns an ordered list of units and the clock that drives them.
type Network struct {
	hooking.HookableBase

	clock       *timing.Clock
	units       []unit.Unit
	byName      map[string]unit.Unit
	connections []Connection

	overrides *params.MapSource
	source    unit.ParameterSource
	sink      unit.DisplaySink
	steady    *SteadyStateCheck
}

// NewNetwork creates an empty network driven by clock.
func NewNetwork(clock *timing.Clock) *Network {
	n := &Network{
		clock:     clock,
		byName:    make(map[string]unit.Unit),
		overrides: params.NewMapSource(),
	}
	n.source = n.overrides

	return n
}

// Clock returns the clock.
func (n *Network) Clock() *timing.Clock {
	return n.clock
}

// Now returns the simulated time.
func (n *Network) Now() timing.VTimeInSec {
	return n.clock.Now()
}

// Add appends a unit. Unit names must be unique.
func (n *Network) Add(u unit.Unit) {
	naming.NameMustBeValid(u.Name())

	if _, found := n.byName[u.Name()]; found {
		panic(fmt.Sprintf("unit %s is already in the network", u.Name()))
	}

	u.SetIndex(len(n.units))
	u.AttachClock(n.clock)

	n.units = append(n.units, u)
	n.byName[u.Name()] = u
}

// Units returns the units in the order they were added.
func (n *Network) Units() []unit.Unit {
	return n.units
}

// Unit returns the unit with the given name.
func (n *Network) Unit(name string) (unit.Unit, error) {
	u, found := n.byName[name]
	if !found {
		return nil, fmt.Errorf("%w: %s", unit.ErrUnknownUnit, name)
	}

	return u, nil
}

// Connections returns the connections in the order they were made.
func (n *Network) Connections() []Connection {
	return n.connections
}

// Connect binds an output to an input. Both are given as "Unit.Variable".
func (n *Network) Connect(from, to string) error {
	fromUnit, fromVar, err := n.resolve(from)
	if err != nil {
		return err
	}

	toUnit, toVar, err := n.resolve(to)
	if err != nil {
		return err
	}

	if fromUnit == toUnit {
		panic(fmt.Sprintf("cannot connect unit %s to itself", fromUnit.Name()))
	}

	acc, err := fromUnit.Outputs().Scalar(fromVar)
	if err != nil {
		return fmt.Errorf("connecting %s: %w", from, err)
	}

	if err := toUnit.Inputs().Bind(toVar, from, acc); err != nil {
		return fmt.Errorf("connecting %s: %w", to, err)
	}

	n.connections = append(n.connections, Connection{From: from, To: to})

	return nil
}

func (n *Network) resolve(fullName string) (unit.Unit, string, error) {
	unitName, variable, ok := naming.SplitVariable(fullName)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q is not Unit.Variable",
			unit.ErrUnknownVariable, fullName)
	}

	u, err := n.Unit(unitName)
	if err != nil {
		return nil, "", err
	}

	return u, variable, nil
}

// SetParameterSource sets the source that units read parameters from.
// Parameters changed through the network take precedence over it.
func (n *Network) SetParameterSource(src unit.ParameterSource) {
	if src == nil {
		n.source = n.overrides
		return
	}

	n.source = params.NewLayeredSource(n.overrides, src)
}

// Overrides returns the parameters changed through the network.
func (n *Network) Overrides() *params.MapSource {
	return n.overrides
}

// SetDisplaySink sets the sink that receives the published outputs.
func (n *Network) SetDisplaySink(sink unit.DisplaySink) {
	n.sink = sink
}

// SetSteadyStateReference enables steady-state detection on a distributed
// unit. A resolution of zero selects DefaultResolution.
func (n *Network) SetSteadyStateReference(name string, resolution float64) error {
	u, err := n.Unit(name)
	if err != nil {
		return err
	}

	d, ok := u.(unit.Distributed)
	if !ok {
		return fmt.Errorf("unit %s is not distributed and cannot be a "+
			"steady-state reference", name)
	}

	n.steady = NewSteadyStateCheck(d, resolution)
	n.steady.Invalidate(n.clock.Now(), n.clock.TimeStep())

	return nil
}

// SteadyStateCheck returns the steady-state check, or nil if disabled.
func (n *Network) SteadyStateCheck() *SteadyStateCheck {
	return n.steady
}

// AtSteadyState tells if the network is at steady state.
func (n *Network) AtSteadyState() bool {
	return n.steady != nil && n.steady.AtSteadyState()
}

// Initialize binds the parameter source to every unit, resets the clock and
// validates the configuration.
func (n *Network) Initialize() error {
	n.clock.Reset()

	for _, u := range n.units {
		u.Initialize(n.source)
	}

	n.invalidateSteadyState()
	n.publish()

	return n.Validate()
}

// Validate checks the stability of every distributed unit at the current
// time step.
func (n *Network) Validate() error {
	var errs []error

	for _, u := range n.units {
		if err := n.validateUnit(u); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (n *Network) validateUnit(u unit.Unit) error {
	d, ok := u.(unit.Distributed)
	if !ok {
		return nil
	}

	dt := n.clock.TimeStep() / float64(u.SubSteps())
	if err := d.Stability(dt).Check(); err != nil {
		return fmt.Errorf("%w: unit %s: %w",
			unit.ErrConfigurationHazard, u.Name(), err)
	}

	return nil
}

// Tick advances the network by one tick.
func (n *Network) Tick() error {
	standalone := n.clock.AtBoundary()

	err := n.tick()

	if standalone {
		n.clock.MarkBoundary()
	}

	return err
}

// RunBatch runs StepRepeats ticks. The time step cannot change in between.
func (n *Network) RunBatch() error {
	n.clock.BeginBatch()
	defer n.clock.MarkBoundary()

	for i := 0; i < n.clock.StepRepeats(); i++ {
		if err := n.tick(); err != nil {
			return err
		}
	}

	return nil
}

func (n *Network) tick() error {
	skipped := n.AtSteadyState()

	if !skipped {
		for _, u := range n.units {
			u.ReadInputs()
		}

		for _, u := range n.units {
			u.AdvanceState()
		}

		if err := n.stateMustBeFinite(); err != nil {
			return err
		}

		n.clock.Advance()
		n.checkSteadyState()
	}

	for _, u := range n.units {
		u.ProduceOutputs()
	}

	n.publish()

	n.InvokeHook(hooking.HookCtx{
		Domain: n,
		Pos:    HookPosTick,
		Item: TickInfo{
			Now:      n.clock.Now(),
			Skipped:  skipped,
			TimeStep: n.clock.TimeStep(),
		},
	})

	return nil
}

func (n *Network) stateMustBeFinite() error {
	for _, u := range n.units {
		if !u.StateIsFinite() {
			return fmt.Errorf("%w: unit %s has a non-finite state at t=%g",
				unit.ErrNumericalInstability, u.Name(), n.clock.Now())
		}
	}

	return nil
}

func (n *Network) checkSteadyState() {
	if n.steady == nil || !n.steady.Check(n.clock.Now()) {
		return
	}

	n.InvokeHook(hooking.HookCtx{
		Domain: n,
		Pos:    HookPosSteadyState,
		Item:   n.steady.Reference().Fingerprint(),
	})
}

func (n *Network) invalidateSteadyState() {
	if n.steady != nil {
		n.steady.Invalidate(n.clock.Now(), n.clock.TimeStep())
	}
}

func (n *Network) publish() {
	if n.sink == nil {
		return
	}

	for _, u := range n.units {
		u.Publish(n.sink)
	}
}

// Reset moves the clock back to zero and resets every unit. Changed
// parameters are kept.
func (n *Network) Reset() {
	n.clock.Reset()

	for _, u := range n.units {
		u.Reset()
	}

	n.invalidateSteadyState()
	n.publish()

	n.InvokeHook(hooking.HookCtx{Domain: n, Pos: HookPosReset})
}

// ChangeParameter sets a parameter of a unit. If the new value makes a
// distributed unit unstable, the change is rolled back and an error wrapping
// unit.ErrConfigurationHazard is returned.
func (n *Network) ChangeParameter(unitName, param string, v float64) error {
	u, err := n.Unit(unitName)
	if err != nil {
		return err
	}

	if _, found := u.Params().Spec(param); !found {
		return fmt.Errorf("%w: %s.%s", unit.ErrUnknownParameter, unitName, param)
	}

	prev, had := n.overrides.Get(unitName, param)

	n.overrides.Set(unitName, param, v)
	u.ReadParameters()

	if err := n.validateUnit(u); err != nil {
		if had {
			n.overrides.Set(unitName, param, prev)
		} else {
			n.overrides.Delete(unitName, param)
		}

		u.ReadParameters()

		return err
	}

	n.invalidateSteadyState()

	n.InvokeHook(hooking.HookCtx{
		Domain: n,
		Pos:    HookPosParamChanged,
		Item:   ChangeParameterCommand{Unit: unitName, Param: param, Value: v},
	})

	return nil
}

// ChangeTimeStepScale multiplies the time step by factor. It fails outside a
// batch boundary, and it is rolled back if any distributed unit would become
// unstable.
func (n *Network) ChangeTimeStepScale(factor float64) error {
	prev := n.clock.TimeStep()

	if err := n.clock.ScaleTimeStep(factor); err != nil {
		return err
	}

	if err := n.Validate(); err != nil {
		if rbErr := n.clock.SetTimeStep(prev); rbErr != nil {
			panic(rbErr)
		}

		return err
	}

	n.invalidateSteadyState()

	n.InvokeHook(hooking.HookCtx{
		Domain: n,
		Pos:    HookPosTimeStepScaled,
		Item:   n.clock.TimeStep(),
	})

	return nil
}

// Values returns every scalar output as "Unit.Variable".
func (n *Network) Values() map[string]float64 {
	values := make(map[string]float64)

	for _, u := range n.units {
		for _, name := range u.Outputs().ScalarNames() {
			acc, _ := u.Outputs().Scalar(name)
			values[naming.BuildName(u.Name(), name)] = acc()
		}
	}

	return values
}
