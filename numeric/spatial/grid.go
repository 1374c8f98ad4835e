// Package spatial discretizes one-dimensional continua (reactor beds,
// exchanger tubes) into N+1 nodes and provides the explicit finite-difference
// terms used by the distributed process models.
package spatial

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Grid is a uniform 1-D grid of N intervals, thus N+1 nodes, over a length.
type Grid struct {
	length    float64
	intervals int
}

// NewGrid creates a grid. It panics if the grid is degenerate.
func NewGrid(length float64, intervals int) Grid {
	if intervals < 1 {
		panic(fmt.Sprintf("grid must have at least 1 interval, got %d",
			intervals))
	}

	if length <= 0 {
		panic(fmt.Sprintf("grid length must be positive, got %g", length))
	}

	return Grid{length: length, intervals: intervals}
}

// Length returns the length of the continuum.
func (g Grid) Length() float64 {
	return g.length
}

// Intervals returns N.
func (g Grid) Intervals() int {
	return g.intervals
}

// NumNodes returns N+1.
func (g Grid) NumNodes() int {
	return g.intervals + 1
}

// Dz returns the node spacing L/N.
func (g Grid) Dz() float64 {
	return g.length / float64(g.intervals)
}

// Position returns the coordinate of node n.
func (g Grid) Position(n int) float64 {
	return float64(n) * g.Dz()
}

// Field is a discretized profile, one value per node.
type Field struct {
	Values []float64
}

// NewField creates a field on the grid with every node set to v.
func NewField(g Grid, v float64) *Field {
	f := &Field{Values: make([]float64, g.NumNodes())}
	f.Fill(v)

	return f
}

// Fill sets every node to v.
func (f *Field) Fill(v float64) {
	for i := range f.Values {
		f.Values[i] = v
	}
}

// Len returns the number of nodes.
func (f *Field) Len() int {
	return len(f.Values)
}

// First returns the value at node 0.
func (f *Field) First() float64 {
	return f.Values[0]
}

// Last returns the value at node N.
func (f *Field) Last() float64 {
	return f.Values[len(f.Values)-1]
}

// Snapshot returns a copy of the node values.
func (f *Field) Snapshot() []float64 {
	s := make([]float64, len(f.Values))
	copy(s, f.Values)

	return s
}

// Min returns the smallest node value.
func (f *Field) Min() float64 {
	return floats.Min(f.Values)
}

// Max returns the largest node value.
func (f *Field) Max() float64 {
	return floats.Max(f.Values)
}

// Mean returns the average node value.
func (f *Field) Mean() float64 {
	return floats.Sum(f.Values) / float64(len(f.Values))
}
