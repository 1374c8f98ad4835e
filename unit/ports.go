package unit

import (
	"fmt"
	"sort"
)

// An Accessor reads one committed scalar of a unit.
type Accessor func() float64

// A ProfileAccessor reads one committed profile of a unit. The returned slice
// must not be modified.
type ProfileAccessor func() []float64

type input struct {
	name     string
	target   *float64
	fallback Accessor
	source   Accessor
	from     string
	reported bool
}

// Inputs is the registry of the values a unit reads from other units.
type Inputs struct {
	list  []*input
	index map[string]int
}

// NewInputs creates an empty registry.
func NewInputs() *Inputs {
	return &Inputs{index: make(map[string]int)}
}

// Declare registers an input written into target. When the input is not
// bound, fallback supplies the value.
func (in *Inputs) Declare(name string, target *float64, fallback Accessor) {
	if _, found := in.index[name]; found {
		panic(fmt.Sprintf("input %s declared twice", name))
	}

	in.index[name] = len(in.list)
	in.list = append(in.list, &input{
		name:     name,
		target:   target,
		fallback: fallback,
	})
}

// Bind connects an input to an accessor of another unit. from names the
// source for reporting.
func (in *Inputs) Bind(name string, from string, src Accessor) error {
	i, found := in.index[name]
	if !found {
		return fmt.Errorf("%w: input %s", ErrUnknownVariable, name)
	}

	in.list[i].source = src
	in.list[i].from = from

	return nil
}

// Unbind disconnects an input so that it falls back to its default.
func (in *Inputs) Unbind(name string) error {
	i, found := in.index[name]
	if !found {
		return fmt.Errorf("%w: input %s", ErrUnknownVariable, name)
	}

	in.list[i].source = nil
	in.list[i].from = ""

	return nil
}

// IsBound tells if an input is connected.
func (in *Inputs) IsBound(name string) bool {
	i, found := in.index[name]

	return found && in.list[i].source != nil
}

// BoundTo returns the name of the variable an input is connected to.
func (in *Inputs) BoundTo(name string) string {
	i, found := in.index[name]
	if !found {
		return ""
	}

	return in.list[i].from
}

// Names returns the input names in declaration order.
func (in *Inputs) Names() []string {
	names := make([]string, len(in.list))
	for i, inp := range in.list {
		names[i] = inp.name
	}

	return names
}

type output struct {
	name    string
	scalar  Accessor
	profile ProfileAccessor
}

// Outputs is the registry of the values a unit exposes to other units and to
// display sinks.
type Outputs struct {
	list  []*output
	index map[string]int
}

// NewOutputs creates an empty registry.
func NewOutputs() *Outputs {
	return &Outputs{index: make(map[string]int)}
}

func (o *Outputs) add(out *output) {
	if _, found := o.index[out.name]; found {
		panic(fmt.Sprintf("output %s declared twice", out.name))
	}

	o.index[out.name] = len(o.list)
	o.list = append(o.list, out)
}

// DeclareScalar registers a scalar output.
func (o *Outputs) DeclareScalar(name string, a Accessor) {
	o.add(&output{name: name, scalar: a})
}

// DeclareProfile registers a profile output.
func (o *Outputs) DeclareProfile(name string, a ProfileAccessor) {
	o.add(&output{name: name, profile: a})
}

// Scalar returns the accessor of a scalar output.
func (o *Outputs) Scalar(name string) (Accessor, error) {
	i, found := o.index[name]
	if !found || o.list[i].scalar == nil {
		return nil, fmt.Errorf("%w: scalar output %s", ErrUnknownVariable, name)
	}

	return o.list[i].scalar, nil
}

// Profile returns the accessor of a profile output.
func (o *Outputs) Profile(name string) (ProfileAccessor, error) {
	i, found := o.index[name]
	if !found || o.list[i].profile == nil {
		return nil, fmt.Errorf("%w: profile output %s",
			ErrUnknownVariable, name)
	}

	return o.list[i].profile, nil
}

// ScalarNames returns the names of the scalar outputs in declaration order.
func (o *Outputs) ScalarNames() []string {
	var names []string

	for _, out := range o.list {
		if out.scalar != nil {
			names = append(names, out.name)
		}
	}

	return names
}

// ProfileNames returns the names of the profile outputs, sorted.
func (o *Outputs) ProfileNames() []string {
	var names []string

	for _, out := range o.list {
		if out.profile != nil {
			names = append(names, out.name)
		}
	}

	sort.Strings(names)

	return names
}
