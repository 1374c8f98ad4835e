package unit

import (
	"fmt"
	"log"

	"github.com/sarchlab/procsim/numeric"
	"github.com/sarchlab/procsim/sim/hooking"
)

// Hook positions of recoverable conditions.
var (
	// HookPosInputDefaulted marks an input or parameter that fell back to its
	// declared default.
	HookPosInputDefaulted = &hooking.HookPos{Name: "InputDefaulted"}

	// HookPosParamClamped marks a parameter clamped to its declared range.
	HookPosParamClamped = &hooking.HookPos{Name: "ParamClamped"}

	// HookPosStateClamped marks a state variable clamped to its physical
	// bounds.
	HookPosStateClamped = &hooking.HookPos{Name: "StateClamped"}
)

// Event is the item of the hooks that a unit invokes on recoverable
// conditions.
type Event struct {
	Unit      string
	Variable  string
	Requested numeric.Optional[float64]
	Used      float64
}

func (e Event) String() string {
	if v, ok := e.Requested.Get(); ok {
		return fmt.Sprintf("%s.%s: requested %g, used %g",
			e.Unit, e.Variable, v, e.Used)
	}

	return fmt.Sprintf("%s.%s: absent, used %g", e.Unit, e.Variable, e.Used)
}

// EventLogger logs the recoverable conditions reported by units.
type EventLogger struct {
	hooking.LogHookBase

	positions map[*hooking.HookPos]bool
}

// NewEventLogger creates an EventLogger that logs the given positions. With
// no positions given, clamps are logged and defaulted inputs are not.
func NewEventLogger(logger *log.Logger, pos ...*hooking.HookPos) *EventLogger {
	if len(pos) == 0 {
		pos = []*hooking.HookPos{HookPosParamClamped, HookPosStateClamped}
	}

	l := &EventLogger{
		LogHookBase: hooking.LogHookBase{Logger: logger},
		positions:   make(map[*hooking.HookPos]bool),
	}

	for _, p := range pos {
		l.positions[p] = true
	}

	return l
}

// Func writes one line per event.
func (l *EventLogger) Func(ctx hooking.HookCtx) {
	if !l.positions[ctx.Pos] {
		return
	}

	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	l.Printf("%s %s: %v", ctx.Pos.Name, evt, ctx.Detail)
}
