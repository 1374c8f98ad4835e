package spatial

import "fmt"

// NodeUpdate returns the new value of node n of field f. It must only read the
// field values, never write them.
type NodeUpdate func(f, n int) float64

// Coupled advances several fields that depend on each other. Every new node
// value of every field is computed from the previous values before any field
// is overwritten, so the result does not depend on the order of evaluation.
type Coupled struct {
	fields  []*Field
	scratch [][]float64
}

// NewCoupled groups fields of the same length.
func NewCoupled(fields ...*Field) *Coupled {
	c := &Coupled{fields: fields}

	for _, f := range fields {
		if f.Len() != fields[0].Len() {
			panic(fmt.Sprintf("coupled fields must have the same length, "+
				"got %d and %d", fields[0].Len(), f.Len()))
		}

		c.scratch = append(c.scratch, make([]float64, f.Len()))
	}

	return c
}

// Step gathers the new values of every node and then commits them.
func (c *Coupled) Step(update NodeUpdate) {
	for fi, f := range c.fields {
		for n := range f.Values {
			c.scratch[fi][n] = update(fi, n)
		}
	}

	for fi, f := range c.fields {
		copy(f.Values, c.scratch[fi])
	}
}
