package network

import (
	"log"

	"github.com/sarchlab/procsim/sim/hooking"
)

// Hook positions of the network and the runner.
var (
	// HookPosTick is triggered after every tick. The item is a TickInfo.
	HookPosTick = &hooking.HookPos{Name: "Tick"}

	// HookPosSteadyState is triggered when steady state is detected. The
	// item is the reference fingerprint.
	HookPosSteadyState = &hooking.HookPos{Name: "SteadyState"}

	// HookPosReset is triggered after a reset.
	HookPosReset = &hooking.HookPos{Name: "Reset"}

	// HookPosParamChanged is triggered after a parameter change. The item is
	// a ChangeParameterCommand.
	HookPosParamChanged = &hooking.HookPos{Name: "ParamChanged"}

	// HookPosTimeStepScaled is triggered after the time step changed. The
	// item is the new time step.
	HookPosTimeStepScaled = &hooking.HookPos{Name: "TimeStepScaled"}

	// HookPosBatchEnd is triggered by the runner after every batch. The item
	// is a BatchInfo.
	HookPosBatchEnd = &hooking.HookPos{Name: "BatchEnd"}
)

// TickInfo describes a finished tick.
type TickInfo struct {
	Now      float64
	Skipped  bool
	TimeStep float64
}

// TickLogger is a hook that logs network events.
type TickLogger struct {
	hooking.LogHookBase

	logTicks bool
}

// NewTickLogger returns a TickLogger. When logTicks is false, only resets,
// parameter changes, time step changes and steady state are logged.
func NewTickLogger(logger *log.Logger, logTicks bool) *TickLogger {
	h := new(TickLogger)
	h.Logger = logger
	h.logTicks = logTicks

	return h
}

// Func writes the event into the logger.
func (h *TickLogger) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case HookPosTick:
		if !h.logTicks {
			return
		}

		info := ctx.Item.(TickInfo)
		if info.Skipped {
			h.Printf("%.6f, tick skipped at steady state", info.Now)
			return
		}

		h.Printf("%.6f, tick", info.Now)
	case HookPosSteadyState:
		h.Printf("steady state reached, fingerprint %v", ctx.Item)
	case HookPosReset:
		h.Printf("reset")
	case HookPosParamChanged:
		cmd := ctx.Item.(ChangeParameterCommand)
		h.Printf("%s.%s set to %g", cmd.Unit, cmd.Param, cmd.Value)
	case HookPosTimeStepScaled:
		h.Printf("time step is now %g s", ctx.Item)
	}
}
