package cstr

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/procsim/params"
	"github.com/sarchlab/procsim/sim/hooking"
	"github.com/sarchlab/procsim/sim/timing"
	"github.com/sarchlab/procsim/unit"
)

var _ = Describe("CSTR", func() {
	var (
		clock *timing.Clock
		src   *params.MapSource
	)

	run := func(c *Comp, ticks int) {
		for i := 0; i < ticks; i++ {
			c.ReadInputs()
			c.AdvanceState()
			clock.Advance()
		}
	}

	BeforeEach(func() {
		clock = timing.NewClock(0.5, 10)
		src = params.NewMapSource()
	})

	It("should reach the isothermal steady state", func() {
		c := MakeBuilder().WithClock(clock).Build("R")
		src.Set("R", "ActivationEnergy", 0)
		src.Set("R", "HeatOfReaction", 0)
		src.Set("R", "UA", 0)
		c.Initialize(src)

		run(c, 200)

		Expect(c.Ca()).To(BeNumerically("~", 0.1/0.15, 1e-6))
		Expect(c.T()).To(Equal(300.0))
		Expect(c.Rate()).To(BeNumerically("~", 0.05*0.1/0.15, 1e-6))
	})

	It("should take the first step from the feed", func() {
		c := MakeBuilder().WithClock(clock).Build("R")
		c.Initialize(src)

		run(c, 1)

		Expect(c.Ca()).To(BeNumerically("~", 0.05, 1e-12))
		Expect(c.T()).To(BeNumerically("~", 300, 1e-12))
		Expect(c.Tj()).To(BeNumerically("~", 300, 1e-12))
	})

	It("should speed the reaction up with temperature", func() {
		c := MakeBuilder().WithClock(clock).Build("R")
		src.Set("R", "InitialConc", 1)
		src.Set("R", "InitialT", 300)
		c.Initialize(src)
		cold := c.Rate()

		src.Set("R", "InitialT", 350)
		c.Reset()

		Expect(c.Rate()).To(BeNumerically(">", cold))
		Expect(cold).To(BeNumerically("~", 0.05, 1e-12))
	})

	It("should hold a fixed jacket at its inlet temperature", func() {
		c := MakeBuilder().
			WithClock(clock).
			WithJacketMode(JacketFixed).
			Build("R")
		Expect(c.Inputs().Bind("TjIn", "Cool.T",
			func() float64 { return 280 })).To(Succeed())
		c.Initialize(src)

		run(c, 1)
		Expect(c.Tj()).To(Equal(280.0))
		Expect(c.JacketMode()).To(Equal(JacketFixed))

		run(c, 1)
		Expect(c.T()).To(BeNumerically("<", 300))
	})

	It("should heat a dynamic jacket from a hot reactor", func() {
		c := MakeBuilder().WithClock(clock).Build("R")
		src.Set("R", "InitialT", 350)
		src.Set("R", "FeedConc", 0)
		c.Initialize(src)

		run(c, 1)

		Expect(c.Tj()).To(BeNumerically("~", 300+3.125*0.5, 1e-9))
		Expect(c.T()).To(BeNumerically("<", 350))
	})

	It("should keep the concentration non-negative", func() {
		clock = timing.NewClock(2, 1)
		c := MakeBuilder().WithClock(clock).Build("R")
		counter := hooking.NewPosCountTracer()
		c.AcceptHook(counter)
		src.Set("R", "Flow", 0)
		src.Set("R", "RateConst", 1)
		src.Set("R", "ActivationEnergy", 0)
		src.Set("R", "HeatOfReaction", 0)
		src.Set("R", "InitialConc", 1)
		c.Initialize(src)

		run(c, 1)

		Expect(c.Ca()).To(Equal(0.0))
		Expect(counter.GetCount(unit.HookPosStateClamped.Name)).
			To(Equal(uint64(1)))
	})
})
