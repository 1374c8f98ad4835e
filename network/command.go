package network

// A Command is a request to change a running network. Commands are applied
// at batch boundaries.
type Command interface {
	Apply(n *Network) error
}

// ResetCommand resets the network.
type ResetCommand struct{}

// Apply resets the network.
func (ResetCommand) Apply(n *Network) error {
	n.Reset()
	return nil
}

// ScaleTimeStepCommand multiplies the time step by Factor.
type ScaleTimeStepCommand struct {
	Factor float64
}

// Apply scales the time step.
func (c ScaleTimeStepCommand) Apply(n *Network) error {
	return n.ChangeTimeStepScale(c.Factor)
}

// ChangeParameterCommand sets a parameter of a unit.
type ChangeParameterCommand struct {
	Unit  string
	Param string
	Value float64
}

// Apply changes the parameter.
func (c ChangeParameterCommand) Apply(n *Network) error {
	return n.ChangeParameter(c.Unit, c.Param, c.Value)
}

// SetStepRepeatsCommand sets the number of ticks per batch.
type SetStepRepeatsCommand struct {
	N int
}

// Apply sets the step repeats.
func (c SetStepRepeatsCommand) Apply(n *Network) error {
	return n.Clock().SetStepRepeats(c.N)
}

// CommandFunc adapts a plain function into a Command. It lets other
// goroutines read the network safely while a runner owns it.
type CommandFunc func(n *Network) error

// Apply calls f.
func (f CommandFunc) Apply(n *Network) error {
	return f(n)
}
