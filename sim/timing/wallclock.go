package timing

import (
	"context"
	"time"
)

// A WallClock tells the real time and waits in real time.
type WallClock interface {
	Now() time.Time

	// Sleep waits for d, or until ctx is done. It returns ctx.Err() if the
	// wait was cut short.
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemWallClock is the WallClock of the operating system.
type SystemWallClock struct{}

// Now returns time.Now().
func (SystemWallClock) Now() time.Time {
	return time.Now()
}

// Sleep waits for d without busy waiting.
func (SystemWallClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// PacingDelay returns how long to wait after a batch that took elapsed so
// that batches start every interval. The result is never negative.
func PacingDelay(interval, elapsed time.Duration) time.Duration {
	d := interval - elapsed
	if d < 0 {
		return 0
	}

	return d
}
