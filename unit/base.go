package unit

import (
	"fmt"
	"math"

	"github.com/sarchlab/procsim/numeric"
	"github.com/sarchlab/procsim/sim/hooking"
	"github.com/sarchlab/procsim/sim/naming"
)

// DefaultChartCapacity is the number of samples a strip chart keeps unless
// configured otherwise.
const DefaultChartCapacity = 500

// Base implements the parts of the Unit lifecycle that do not depend on the
// model. Unit kinds embed a *Base and provide a Model.
type Base struct {
	naming.NamedBase
	hooking.HookableBase

	model     Model
	index     int
	clock     Clock
	source    ParameterSource
	lifecycle Lifecycle
	subSteps  int

	params  *Params
	inputs  *Inputs
	outputs *Outputs

	chartCapacity int
	charts        map[string]*StripChart
}

// NewBase creates a Base driving the given model.
func NewBase(name string, model Model) *Base {
	b := &Base{
		NamedBase:     naming.MakeNamedBase(name),
		model:         model,
		index:         -1,
		subSteps:      1,
		params:        NewParams(),
		inputs:        NewInputs(),
		outputs:       NewOutputs(),
		chartCapacity: DefaultChartCapacity,
		charts:        make(map[string]*StripChart),
	}

	return b
}

// Index returns the position of the unit in its network.
func (b *Base) Index() int {
	return b.index
}

// SetIndex sets the position of the unit in its network.
func (b *Base) SetIndex(i int) {
	b.index = i
}

// AttachClock sets the clock that the unit reads the time step from.
func (b *Base) AttachClock(c Clock) {
	b.clock = c
}

// Clock returns the attached clock.
func (b *Base) Clock() Clock {
	return b.clock
}

// Lifecycle returns the lifecycle state.
func (b *Base) Lifecycle() Lifecycle {
	return b.lifecycle
}

// SubSteps returns the number of sub-steps per tick.
func (b *Base) SubSteps() int {
	return b.subSteps
}

// SetSubSteps sets the number of sub-steps per tick.
func (b *Base) SetSubSteps(n int) {
	if n < 1 {
		panic(fmt.Sprintf("unit %s: sub-steps must be at least 1, got %d",
			b.Name(), n))
	}

	b.subSteps = n
}

// SetChartCapacity sets how many samples each strip chart keeps. Existing
// charts are dropped.
func (b *Base) SetChartCapacity(n int) {
	b.chartCapacity = n
	b.charts = make(map[string]*StripChart)
}

// UnitTimeStep returns the time advanced by one sub-step.
func (b *Base) UnitTimeStep() float64 {
	return b.clockMustBeAttached().TimeStep() / float64(b.subSteps)
}

// Params returns the parameter registry.
func (b *Base) Params() *Params {
	return b.params
}

// Inputs returns the input registry.
func (b *Base) Inputs() *Inputs {
	return b.inputs
}

// Outputs returns the output registry.
func (b *Base) Outputs() *Outputs {
	return b.outputs
}

// StripChart returns the strip chart of a scalar output, or nil if the
// output has not produced any sample yet.
func (b *Base) StripChart(variable string) *StripChart {
	return b.charts[variable]
}

// Initialize binds the parameter source and resets the unit.
func (b *Base) Initialize(src ParameterSource) {
	b.source = src
	b.Reset()
}

// Reset reads the parameters and re-initializes the state.
func (b *Base) Reset() {
	b.ReadParameters()

	for _, inp := range b.inputs.list {
		inp.reported = false
	}

	for _, c := range b.charts {
		c.Clear()
	}

	b.model.InitState()
	b.lifecycle = ResetState
}

// ReadParameters reads every parameter from the source. Absent values take
// the declared initial value and out-of-range values are clamped.
func (b *Base) ReadParameters() {
	b.params.each(func(prm *param) {
		v, ok := b.lookupParam(prm.Name)
		if !ok {
			*prm.target = prm.Initial
			b.invoke(HookPosInputDefaulted, prm.Name,
				numeric.None[float64](), prm.Initial,
				fmt.Errorf("%w: parameter %s", ErrMissingInput, prm.Name))

			return
		}

		clamped, changed := numeric.Clamp(v, prm.Min, prm.Max)
		if math.IsNaN(v) {
			clamped, changed = prm.Initial, true
		}

		if changed {
			b.invoke(HookPosParamClamped, prm.Name,
				numeric.Some(v), clamped,
				fmt.Errorf("%w: %s = %g outside [%g, %g]",
					ErrOutOfRangeParameter, prm.Name, v, prm.Min, prm.Max))
		}

		*prm.target = clamped
	})

	if l, ok := b.model.(ParamListener); ok && b.lifecycle != Uninitialized {
		l.ParamsChanged()
	}
}

func (b *Base) lookupParam(name string) (float64, bool) {
	if b.source == nil {
		return 0, false
	}

	return b.source.Get(b.Name(), name)
}

// ReadInputs copies the bound upstream outputs into the input fields.
// Unbound inputs use their defaults, which is reported once per reset.
func (b *Base) ReadInputs() {
	for _, inp := range b.inputs.list {
		if inp.source != nil {
			*inp.target = inp.source()
			continue
		}

		*inp.target = inp.fallback()

		if !inp.reported {
			inp.reported = true
			b.invoke(HookPosInputDefaulted, inp.name,
				numeric.None[float64](), *inp.target,
				fmt.Errorf("%w: input %s is not connected",
					ErrMissingInput, inp.name))
		}
	}
}

// AdvanceState runs the model for SubSteps sub-steps.
func (b *Base) AdvanceState() {
	clock := b.clockMustBeAttached()
	dt := clock.TimeStep() / float64(b.subSteps)
	t := clock.Now()

	for i := 0; i < b.subSteps; i++ {
		b.model.SubStep(t+float64(i)*dt, dt)
	}

	b.lifecycle = Running
}

// ProduceOutputs pushes every scalar output into its strip chart.
func (b *Base) ProduceOutputs() {
	now := b.Now()

	for _, out := range b.outputs.list {
		if out.scalar == nil {
			continue
		}

		chart, found := b.charts[out.name]
		if !found {
			chart = NewStripChart(b.chartCapacity)
			b.charts[out.name] = chart
		}

		chart.Push(now, out.scalar())
	}
}

// Publish hands every output to the sink.
func (b *Base) Publish(sink DisplaySink) {
	now := b.Now()

	for _, out := range b.outputs.list {
		v := Value{Time: now}

		if out.scalar != nil {
			v.Scalar = out.scalar()
		} else {
			profile := out.profile()
			v.Profile = make([]float64, len(profile))
			copy(v.Profile, profile)
		}

		sink.Publish(b.Name(), out.name, v)
	}
}

// StateIsFinite tells if every output is finite.
func (b *Base) StateIsFinite() bool {
	for _, out := range b.outputs.list {
		if out.scalar != nil && !numeric.IsFinite(out.scalar()) {
			return false
		}

		if out.profile != nil && !numeric.AllFinite(out.profile()) {
			return false
		}
	}

	return true
}

// ClampState limits a state value to [lo, hi] and reports the clamp.
func (b *Base) ClampState(variable string, v, lo, hi float64) float64 {
	clamped, changed := numeric.Clamp(v, lo, hi)
	if changed {
		b.invoke(HookPosStateClamped, variable, numeric.Some(v), clamped,
			fmt.Errorf("%w: %s = %g outside [%g, %g]",
				ErrNumericalInstability, variable, v, lo, hi))
	}

	return clamped
}

// FloorState limits a state value to be non-negative and reports the clamp.
func (b *Base) FloorState(variable string, v float64) float64 {
	floored, changed := numeric.FloorZero(v)
	if changed {
		b.invoke(HookPosStateClamped, variable, numeric.Some(v), floored,
			fmt.Errorf("%w: %s = %g below 0",
				ErrNumericalInstability, variable, v))
	}

	return floored
}

func (b *Base) invoke(
	pos *hooking.HookPos,
	variable string,
	requested numeric.Optional[float64],
	used float64,
	err error,
) {
	if b.NumHooks() == 0 {
		return
	}

	b.InvokeHook(hooking.HookCtx{
		Domain: b,
		Pos:    pos,
		Item: Event{
			Unit:      b.Name(),
			Variable:  variable,
			Requested: requested,
			Used:      used,
		},
		Detail: err,
	})
}

// Now returns the simulated time, or 0 before a clock is attached.
func (b *Base) Now() float64 {
	if b.clock == nil {
		return 0
	}

	return b.clock.Now()
}

func (b *Base) clockMustBeAttached() Clock {
	if b.clock == nil {
		panic(fmt.Sprintf("unit %s has no clock attached", b.Name()))
	}

	return b.clock
}
