package unit

import (
	"fmt"
)

// ParamSpec declares a parameter.
type ParamSpec struct {
	Name    string
	Units   string
	Min     float64
	Max     float64
	Initial float64
}

type param struct {
	ParamSpec
	target *float64
}

// Params is the typed parameter registry of a unit. Every parameter is bound
// to a field of the unit when the unit is built, so reading parameters never
// resolves names at tick time.
type Params struct {
	list  []*param
	index map[string]int
}

// NewParams creates an empty registry.
func NewParams() *Params {
	return &Params{index: make(map[string]int)}
}

// Declare registers a parameter bound to target and sets target to the
// initial value.
func (p *Params) Declare(spec ParamSpec, target *float64) {
	if _, found := p.index[spec.Name]; found {
		panic(fmt.Sprintf("parameter %s declared twice", spec.Name))
	}

	if spec.Min > spec.Max {
		panic(fmt.Sprintf("parameter %s has min %g > max %g",
			spec.Name, spec.Min, spec.Max))
	}

	if spec.Initial < spec.Min || spec.Initial > spec.Max {
		panic(fmt.Sprintf("parameter %s initial %g outside [%g, %g]",
			spec.Name, spec.Initial, spec.Min, spec.Max))
	}

	*target = spec.Initial

	p.index[spec.Name] = len(p.list)
	p.list = append(p.list, &param{ParamSpec: spec, target: target})
}

// Spec returns the declaration of a parameter.
func (p *Params) Spec(name string) (ParamSpec, bool) {
	i, found := p.index[name]
	if !found {
		return ParamSpec{}, false
	}

	return p.list[i].ParamSpec, true
}

// Specs returns all the declarations in declaration order.
func (p *Params) Specs() []ParamSpec {
	specs := make([]ParamSpec, len(p.list))
	for i, prm := range p.list {
		specs[i] = prm.ParamSpec
	}

	return specs
}

// Value returns the current value of a parameter.
func (p *Params) Value(name string) (float64, bool) {
	i, found := p.index[name]
	if !found {
		return 0, false
	}

	return *p.list[i].target, true
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	return len(p.list)
}

func (p *Params) each(f func(prm *param)) {
	for _, prm := range p.list {
		f(prm)
	}
}
