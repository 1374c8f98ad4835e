package spatial

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Grid", func() {
	It("should compute spacing and node count", func() {
		g := NewGrid(2, 8)

		Expect(g.NumNodes()).To(Equal(9))
		Expect(g.Dz()).To(Equal(0.25))
		Expect(g.Position(4)).To(Equal(1.0))
	})

	It("should panic on degenerate grids", func() {
		Expect(func() { NewGrid(1, 0) }).To(Panic())
		Expect(func() { NewGrid(0, 4) }).To(Panic())
	})

	It("should summarize fields", func() {
		f := NewField(NewGrid(1, 3), 0)
		copy(f.Values, []float64{1, 4, 2, 5})

		Expect(f.Min()).To(Equal(1.0))
		Expect(f.Max()).To(Equal(5.0))
		Expect(f.Mean()).To(Equal(3.0))
		Expect(f.First()).To(Equal(1.0))
		Expect(f.Last()).To(Equal(5.0))

		s := f.Snapshot()
		s[0] = 100
		Expect(f.First()).To(Equal(1.0))
	})
})

var _ = Describe("Stencil", func() {
	var (
		g Grid
		v []float64
	)

	BeforeEach(func() {
		g = NewGrid(4, 4)
		v = []float64{1, 2, 4, 8, 16}
	})

	It("should compute forward convection with the inlet at node 0", func() {
		s := Stencil{Grid: g, Direction: Forward, Inlet: 0}

		Expect(s.Convection(v, 0)).To(Equal(-1.0))
		Expect(s.Convection(v, 2)).To(Equal(-2.0))
		Expect(s.Convection(v, 4)).To(Equal(-8.0))
	})

	It("should compute backward convection with the inlet at node N", func() {
		s := Stencil{Grid: g, Direction: Backward, Inlet: 20}

		Expect(s.Convection(v, 4)).To(Equal(4.0))
		Expect(s.Convection(v, 2)).To(Equal(4.0))
		Expect(s.Convection(v, 0)).To(Equal(1.0))
	})

	It("should compute the 3-point Laplacian", func() {
		s := Stencil{Grid: g, Direction: Forward, Inlet: 0}

		Expect(s.Diffusion(v, 2)).To(Equal(2.0 - 8.0 + 8.0))
	})

	It("should substitute inlet and zero gradient at the boundaries", func() {
		s := Stencil{Grid: g, Direction: Forward, Inlet: 3}

		Expect(s.Diffusion(v, 0)).To(Equal(3.0 - 2.0 + 2.0))
		Expect(s.Diffusion(v, 4)).To(Equal(8.0 - 32.0 + 16.0))
	})

	It("should report inlet and outlet nodes", func() {
		Expect(Forward.InletNode(g)).To(Equal(0))
		Expect(Forward.OutletNode(g)).To(Equal(4))
		Expect(Backward.InletNode(g)).To(Equal(4))
		Expect(Backward.OutletNode(g)).To(Equal(0))
	})
})

var _ = Describe("Coupled", func() {
	It("should update from previous values only", func() {
		g := NewGrid(1, 2)
		a := NewField(g, 0)
		b := NewField(g, 0)
		copy(a.Values, []float64{1, 2, 3})
		copy(b.Values, []float64{10, 20, 30})

		c := NewCoupled(a, b)
		c.Step(func(f, n int) float64 {
			if f == 0 {
				return b.Values[n]
			}

			return a.Values[n]
		})

		Expect(a.Values).To(Equal([]float64{10, 20, 30}))
		Expect(b.Values).To(Equal([]float64{1, 2, 3}))
	})

	It("should not depend on node order", func() {
		g := NewGrid(1, 4)
		f := NewField(g, 0)
		copy(f.Values, []float64{1, 0, 0, 0, 0})

		c := NewCoupled(f)
		s := Stencil{Grid: g, Direction: Forward, Inlet: 1}
		c.Step(func(_, n int) float64 {
			return f.Values[n] + 0.5*s.Convection(f.Values, n)*g.Dz()
		})

		Expect(f.Values).To(Equal([]float64{1, 0.5, 0, 0, 0}))
	})

	It("should panic on fields of different length", func() {
		Expect(func() {
			NewCoupled(NewField(NewGrid(1, 2), 0), NewField(NewGrid(1, 3), 0))
		}).To(Panic())
	})
})

func relax(g Grid, d, dt float64, steps int) *Field {
	f := NewField(g, 0)
	s := Stencil{Grid: g, Direction: Forward, Inlet: 1}
	c := NewCoupled(f)

	for i := 0; i < steps; i++ {
		c.Step(func(_, n int) float64 {
			return f.Values[n] + dt*d*s.Diffusion(f.Values, n)
		})
	}

	return f
}

var _ = Describe("Stability", func() {
	It("should compute stability numbers", func() {
		s := StabilityOf(NewGrid(1, 10), 0.01, 0.1, -2)

		Expect(s.Diffusion).To(BeNumerically("~", 0.1, 1e-12))
		Expect(s.Courant).To(BeNumerically("~", 0.2, 1e-12))
		Expect(s.Check()).To(Succeed())
	})

	It("should reject diffusion numbers at or above 0.5", func() {
		s := Stability{Diffusion: 0.5}

		Expect(s.Check()).To(MatchError(ErrUnstable))
	})

	It("should reject the combined upwind limit", func() {
		s := Stability{Diffusion: 0.3, Courant: 0.5}

		Expect(s.Check()).To(MatchError(ErrUnstable))
	})

	It("should take the worst numbers", func() {
		w := Worst(
			Stability{Diffusion: 0.1, Courant: 0.4},
			Stability{Diffusion: 0.3, Courant: 0.2},
		)

		Expect(w).To(Equal(Stability{Diffusion: 0.3, Courant: 0.4}))
	})

	It("should relax a stable diffusion problem to the inlet value", func() {
		g := NewGrid(1, 10)
		dt := 0.004
		d := 1.0
		Expect(StabilityOf(g, dt, d, 0).Check()).To(Succeed())

		f := relax(g, d, dt, 5000)

		for _, v := range f.Values {
			Expect(v).To(BeNumerically("~", 1, 1e-6))
		}
	})

	It("should blow up when the limit is violated", func() {
		g := NewGrid(1, 10)
		dt := 0.008
		d := 1.0
		Expect(StabilityOf(g, dt, d, 0).Check()).NotTo(Succeed())

		f := relax(g, d, dt, 200)

		Expect(math.Abs(f.Max()) > 1e3 || math.Abs(f.Min()) > 1e3).
			To(BeTrue())
	})
})

var _ = Describe("Rescale", func() {
	It("should keep the diffusion number and the time per tick", func() {
		g := NewGrid(2, 10)
		tick := 0.1
		subSteps := 4
		before := StabilityOf(g, tick/float64(subSteps), 0.01, 0)

		intervals, newSubSteps := Rescale(10, subSteps, 3)
		g2 := NewGrid(2, intervals)
		after := StabilityOf(g2, tick/float64(newSubSteps), 0.01, 0)

		Expect(intervals).To(Equal(30))
		Expect(newSubSteps).To(Equal(36))
		Expect(after.Diffusion).To(BeNumerically("~", before.Diffusion, 1e-12))
		Expect(after.Check()).To(Succeed())
	})

	It("should detect a refinement without the matching sub-steps", func() {
		g := NewGrid(1, 10)
		dt := 0.004
		Expect(StabilityOf(g, dt, 1, 0).Check()).To(Succeed())

		refined := NewGrid(1, 20)
		Expect(StabilityOf(refined, dt, 1, 0).Check()).
			To(MatchError(ErrUnstable))
	})
})
