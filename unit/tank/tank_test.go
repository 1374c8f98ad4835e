package tank

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/procsim/params"
	"github.com/sarchlab/procsim/sim/hooking"
	"github.com/sarchlab/procsim/sim/timing"
	"github.com/sarchlab/procsim/unit"
)

func tick(c *Comp, clock *timing.Clock) {
	c.ReadInputs()
	c.AdvanceState()
	clock.Advance()
	c.ProduceOutputs()
}

var _ = Describe("Tank", func() {
	var (
		clock *timing.Clock
		src   *params.MapSource
		c     *Comp
	)

	BeforeEach(func() {
		clock = timing.NewClock(0.1, 10)
		src = params.NewMapSource()
		c = MakeBuilder().WithClock(clock).Build("Tank")
	})

	It("should fill monotonically to the equilibrium level", func() {
		src.Set("Tank", "Flow", 0.5)
		src.Set("Tank", "ValveCoef", 1)
		c.Initialize(src)

		prev := c.Level()
		for i := 0; i < 100; i++ {
			tick(c, clock)

			Expect(c.Level()).To(BeNumerically(">=", prev))
			prev = c.Level()
		}

		Expect(c.Level()).To(BeNumerically("~", 0.25, 1e-3))
		Expect(c.EquilibriumLevel()).To(BeNumerically("~", 0.25, 1e-12))
		Expect(c.FlowOut()).To(BeNumerically("~", 0.5, 1e-3))
	})

	It("should drain when the inflow stops", func() {
		src.Set("Tank", "Flow", 0)
		src.Set("Tank", "InitialLevel", 1)
		c.Initialize(src)

		for i := 0; i < 10; i++ {
			tick(c, clock)
		}

		Expect(c.Level()).To(BeNumerically("<", 1))
		Expect(c.Level()).To(BeNumerically(">=", 0))
	})

	It("should never go below zero", func() {
		counter := hooking.NewPosCountTracer()
		c.AcceptHook(counter)
		src.Set("Tank", "Flow", 0)
		src.Set("Tank", "InitialLevel", 0.001)
		src.Set("Tank", "ValveCoef", 5)
		c.Initialize(src)

		tick(c, clock)

		Expect(c.Level()).To(Equal(0.0))
		Expect(counter.GetCount(unit.HookPosStateClamped.Name)).
			To(Equal(uint64(1)))
	})

	It("should cap the level at the maximum", func() {
		src.Set("Tank", "Flow", 2)
		src.Set("Tank", "ValveCoef", 0.1)
		src.Set("Tank", "MaxLevel", 0.5)
		c.Initialize(src)

		for i := 0; i < 100; i++ {
			tick(c, clock)
		}

		Expect(c.Level()).To(Equal(0.5))
	})

	It("should follow the valve command", func() {
		command := 0.0
		Expect(c.Inputs().Bind("Command", "PI.Command",
			func() float64 { return command })).To(Succeed())
		src.Set("Tank", "InitialLevel", 1)
		src.Set("Tank", "Flow", 0)
		c.Initialize(src)

		tick(c, clock)
		Expect(c.Level()).To(Equal(1.0))
		Expect(c.FlowOut()).To(BeZero())

		command = 2
		tick(c, clock)
		Expect(c.Level()).To(BeNumerically("~", 0.9, 1e-12))
	})

	It("should read the inflow from an upstream unit", func() {
		Expect(c.Inputs().Bind("FlowIn", "Up.FlowOut",
			func() float64 { return 0.3 })).To(Succeed())
		c.Initialize(src)

		tick(c, clock)

		Expect(c.Level()).To(BeNumerically("~", 0.03, 1e-12))
		Expect(math.IsNaN(c.FlowOut())).To(BeFalse())
	})
})
