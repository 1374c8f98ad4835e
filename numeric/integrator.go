// Package numeric provides the explicit integration helpers shared by all the
// process models.
package numeric

import "fmt"

// Euler advances x by one explicit Euler step.
func Euler(x, dxdt, dt float64) float64 {
	return x + dxdt*dt
}

// EulerVec advances every element of x by one explicit Euler step and writes
// the result into dst. dst may alias x.
func EulerVec(dst, x, dxdt []float64, dt float64) {
	if len(x) != len(dxdt) || len(dst) != len(x) {
		panic(fmt.Sprintf("dimension mismatch: dst %d, x %d, dxdt %d",
			len(dst), len(x), len(dxdt)))
	}

	for i := range x {
		dst[i] = x[i] + dxdt[i]*dt
	}
}

// A Derivative computes dx/dt at time t for the state x, writing into dxdt.
type Derivative func(t float64, x, dxdt []float64)

// Integrator advances a vector state with a derivative function. It owns the
// scratch buffer so that repeated steps do not allocate.
type Integrator struct {
	dxdt []float64
}

// NewIntegrator creates an Integrator for states of dimension dim.
func NewIntegrator(dim int) *Integrator {
	return &Integrator{dxdt: make([]float64, dim)}
}

// Step advances x in place by one explicit Euler step of size dt.
func (in *Integrator) Step(f Derivative, t float64, x []float64, dt float64) {
	f(t, x, in.dxdt)
	EulerVec(x, x, in.dxdt, dt)
}
