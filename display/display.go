// Package display provides unit.DisplaySink implementations that write
// published values to files or keep them for the monitor.
package display

import (
	"github.com/sarchlab/procsim/unit"
)

// MultiSink forwards every published value to all of its sinks, in order.
type MultiSink []unit.DisplaySink

// Publish implements unit.DisplaySink.
func (m MultiSink) Publish(unitName, variable string, value unit.Value) {
	for _, s := range m {
		s.Publish(unitName, variable, value)
	}
}
