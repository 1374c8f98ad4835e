package timing

import (
	"context"

	"github.com/sarchlab/procsim/sim/hooking"
)

// TimeTeller can be used to get the current simulated time.
type TimeTeller interface {
	Now() VTimeInSec
}

// An Engine is a unit that keeps the simulation run.
type Engine interface {
	hooking.Hookable
	TimeTeller

	// Run keeps the simulation running until the context is cancelled or the
	// engine decides to stop. Cancellation takes effect at the next batch
	// boundary.
	Run(ctx context.Context) error

	// Pause will pause the simulation until continue is called.
	Pause()

	// Continue will continue the paused simulation.
	Continue()
}
