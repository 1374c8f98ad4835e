package timing

import (
	"log"
	"time"
)

// Freq defines the type of frequency.
type Freq float64

// Defines the unit of frequency.
const (
	Hz  Freq = 1
	KHz Freq = 1e3
)

// Period returns the time between two consecutive refreshes.
func (f Freq) Period() VTimeInSec {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}

	return VTimeInSec(1.0 / f)
}

// Interval returns the wall-clock time between two consecutive refreshes.
func (f Freq) Interval() time.Duration {
	return time.Duration(f.Period() * float64(time.Second))
}
