package network

import (
	"context"
	"sync"
	"time"

	"github.com/sarchlab/procsim/sim/hooking"
	"github.com/sarchlab/procsim/sim/timing"
)

// BatchInfo describes a finished batch.
type BatchInfo struct {
	Batch   uint64
	Now     float64
	Elapsed time.Duration
}

type pendingCommand struct {
	cmd    Command
	result chan error
}

// Runner runs a network in batches, paced against a wall clock. Other
// goroutines control it through Pause, Continue and Submit. Submitted
// commands are applied between batches, never within one.
type Runner struct {
	hooking.HookableBase

	network    *Network
	wallClock  timing.WallClock
	interval   time.Duration
	maxBatches uint64

	lock     sync.Mutex
	paused   bool
	pending  []pendingCommand
	wake     chan struct{}
	batches  uint64
	now      float64
	lastErr  error
	runLock  sync.Mutex
}

// RunnerBuilder can build runners.
type RunnerBuilder struct {
	wallClock  timing.WallClock
	interval   time.Duration
	maxBatches uint64
	paused     bool
}

// MakeRunnerBuilder returns a RunnerBuilder with default parameters. The
// default runner refreshes 10 times per second and never stops by itself.
func MakeRunnerBuilder() RunnerBuilder {
	return RunnerBuilder{
		wallClock: timing.SystemWallClock{},
		interval:  100 * time.Millisecond,
	}
}

// WithWallClock sets the wall clock used for pacing.
func (b RunnerBuilder) WithWallClock(c timing.WallClock) RunnerBuilder {
	b.wallClock = c
	return b
}

// WithInterval sets the target wall time between batch starts. Zero runs as
// fast as possible.
func (b RunnerBuilder) WithInterval(d time.Duration) RunnerBuilder {
	b.interval = d
	return b
}

// WithMaxBatches makes the runner stop after n batches. Zero means no
// limit.
func (b RunnerBuilder) WithMaxBatches(n uint64) RunnerBuilder {
	b.maxBatches = n
	return b
}

// WithStartPaused makes the runner wait for Continue before the first batch.
func (b RunnerBuilder) WithStartPaused() RunnerBuilder {
	b.paused = true
	return b
}

// Build creates a runner for the network.
func (b RunnerBuilder) Build(n *Network) *Runner {
	return &Runner{
		network:    n,
		wallClock:  b.wallClock,
		interval:   b.interval,
		maxBatches: b.maxBatches,
		paused:     b.paused,
		wake:       make(chan struct{}, 1),
		now:        n.Now(),
	}
}

// Network returns the network being run.
func (r *Runner) Network() *Network {
	return r.network
}

// Now returns the simulated time at the end of the last batch.
func (r *Runner) Now() timing.VTimeInSec {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.now
}

// Batches returns the number of batches run so far.
func (r *Runner) Batches() uint64 {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.batches
}

// MaxBatches returns the batch limit, or zero if there is none.
func (r *Runner) MaxBatches() uint64 {
	return r.maxBatches
}

// IsPaused tells if the runner is paused.
func (r *Runner) IsPaused() bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.paused
}

// Pause stops the runner after the current batch.
func (r *Runner) Pause() {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.paused = true
}

// Continue resumes a paused runner.
func (r *Runner) Continue() {
	r.lock.Lock()
	r.paused = false
	r.lock.Unlock()

	r.signal()
}

// Submit queues a command. The returned channel receives the result once
// the command has been applied.
func (r *Runner) Submit(cmd Command) <-chan error {
	result := make(chan error, 1)

	r.lock.Lock()
	r.pending = append(r.pending, pendingCommand{cmd: cmd, result: result})
	r.lock.Unlock()

	r.signal()

	return result
}

func (r *Runner) signal() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Run runs batches until the context is done, the batch limit is reached,
// or a batch fails. Cancellation is observed between batches.
func (r *Runner) Run(ctx context.Context) error {
	r.runLock.Lock()
	defer r.runLock.Unlock()

	for {
		if err := r.waitWhilePaused(ctx); err != nil {
			return err
		}

		r.applyPending()

		if r.limitReached() {
			return nil
		}

		start := r.wallClock.Now()

		if err := r.network.RunBatch(); err != nil {
			r.setLastErr(err)
			return err
		}

		elapsed := r.wallClock.Now().Sub(start)
		r.finishBatch(elapsed)

		if r.limitReached() {
			return nil
		}

		delay := timing.PacingDelay(r.interval, elapsed)
		if err := r.wallClock.Sleep(ctx, delay); err != nil {
			return err
		}
	}
}

func (r *Runner) waitWhilePaused(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !r.IsPaused() {
			return nil
		}

		r.applyPending()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.wake:
		}
	}
}

func (r *Runner) applyPending() {
	r.lock.Lock()
	pending := r.pending
	r.pending = nil
	r.lock.Unlock()

	if len(pending) == 0 {
		return
	}

	for _, p := range pending {
		p.result <- p.cmd.Apply(r.network)
	}

	r.lock.Lock()
	r.now = r.network.Now()
	r.lock.Unlock()
}

func (r *Runner) limitReached() bool {
	return r.maxBatches > 0 && r.Batches() >= r.maxBatches
}

func (r *Runner) finishBatch(elapsed time.Duration) {
	r.lock.Lock()
	r.batches++
	r.now = r.network.Now()
	info := BatchInfo{Batch: r.batches, Now: r.now, Elapsed: elapsed}
	r.lock.Unlock()

	r.InvokeHook(hooking.HookCtx{
		Domain: r,
		Pos:    HookPosBatchEnd,
		Item:   info,
	})
}

func (r *Runner) setLastErr(err error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.lastErr = err
}

// Err returns the error that stopped the last run, if any.
func (r *Runner) Err() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.lastErr
}
