// Package unit defines the lifecycle contract of a process unit and the base
// that every concrete unit kind builds on.
//
// A unit owns its parameters, inputs, state and outputs. Other units only see
// it through the output accessors that a network binds to their inputs when
// the network is configured. Every tick, the network first lets every unit
// read its inputs (ReadInputs), then lets every unit advance (AdvanceState),
// so that all reads observe the state committed in the previous tick.
package unit

import (
	"github.com/sarchlab/procsim/sim/hooking"
	"github.com/sarchlab/procsim/sim/naming"
	"github.com/sarchlab/procsim/sim/timing"
)

// Lifecycle is the lifecycle state of a unit.
type Lifecycle int

// Lifecycle states. Reset can be re-entered at any time.
const (
	Uninitialized Lifecycle = iota
	ResetState
	Running
)

func (l Lifecycle) String() string {
	switch l {
	case Uninitialized:
		return "Uninitialized"
	case ResetState:
		return "Reset"
	case Running:
		return "Running"
	default:
		return "Unknown"
	}
}

// A Clock tells the simulated time and the tick length.
type Clock interface {
	timing.TimeTeller
	TimeStep() timing.VTimeInSec
}

// ParameterSource supplies user-edited parameter values. A false return means
// the value is absent and the unit uses the declared initial value.
type ParameterSource interface {
	Get(unitName, paramName string) (float64, bool)
}

// Value is one published sample: either a scalar or a snapshot of a profile.
type Value struct {
	Time    timing.VTimeInSec
	Scalar  float64
	Profile []float64
}

// IsProfile tells if the value is a field snapshot.
func (v Value) IsProfile() bool {
	return v.Profile != nil
}

// DisplaySink consumes the state that units publish after every tick. It
// must tolerate being called before any reset.
type DisplaySink interface {
	Publish(unitName, variable string, value Value)
}

// Unit is the lifecycle contract of a process unit.
type Unit interface {
	naming.Named
	hooking.Hookable

	Index() int
	SetIndex(i int)
	AttachClock(c Clock)
	Lifecycle() Lifecycle
	SubSteps() int

	Params() *Params
	Inputs() *Inputs
	Outputs() *Outputs

	// Initialize binds the parameter source and resets the unit.
	Initialize(src ParameterSource)

	// Reset reads the parameters and re-initializes the state.
	Reset()

	// ReadParameters reads every declared parameter from the source. It is
	// idempotent.
	ReadParameters()

	// ReadInputs copies the committed outputs of the bound units into the
	// unit's inputs. It must not mutate other units.
	ReadInputs()

	// AdvanceState advances the unit by one tick, using only the captured
	// inputs and the unit's own state.
	AdvanceState()

	// ProduceOutputs pushes the current state into unit-local buffers.
	ProduceOutputs()

	// Publish hands the current outputs to a sink.
	Publish(sink DisplaySink)

	// StateIsFinite tells if no output is NaN or infinite.
	StateIsFinite() bool
}

// Model is the numerical model of one unit kind.
type Model interface {
	// InitState sets the state to its initial values. Parameters have been
	// read when it is called.
	InitState()

	// SubStep advances the state by dt, starting from time t.
	SubStep(t, dt float64)
}

// ParamListener is implemented by models that derive state from parameters
// and need to know when parameters are re-read outside a reset.
type ParamListener interface {
	ParamsChanged()
}
