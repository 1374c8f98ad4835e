package pendulum

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/procsim/params"
	"github.com/sarchlab/procsim/sim/timing"
)

var _ = Describe("Pendulum", func() {
	var (
		clock *timing.Clock
		src   *params.MapSource
		c     *Comp
	)

	run := func(ticks int) {
		for i := 0; i < ticks; i++ {
			c.ReadInputs()
			c.AdvanceState()
			clock.Advance()
		}
	}

	BeforeEach(func() {
		clock = timing.NewClock(0.1, 10)
		src = params.NewMapSource()
	})

	It("should start at rest from the initial angle", func() {
		c = MakeBuilder().WithClock(clock).Build("P")
		c.Initialize(src)

		Expect(c.Angle()).To(Equal(0.5))
		Expect(c.AngularVelocity()).To(BeZero())
		Expect(c.Energy()).To(BeNumerically("~", 9.81*(1-math.Cos(0.5)), 1e-12))
	})

	It("should take one Euler sub-step", func() {
		c = MakeBuilder().WithClock(clock).WithSubSteps(1).Build("P")
		c.Initialize(src)

		run(1)

		Expect(c.Angle()).To(Equal(0.5))
		Expect(c.AngularVelocity()).
			To(BeNumerically("~", -9.81*math.Sin(0.5)*0.1, 1e-12))
	})

	It("should stay at rest when hanging straight", func() {
		c = MakeBuilder().WithClock(clock).Build("P")
		src.Set("P", "InitialAngle", 0)
		c.Initialize(src)

		run(50)

		Expect(c.Angle()).To(BeZero())
		Expect(c.Energy()).To(BeZero())
	})

	It("should lose energy with damping", func() {
		c = MakeBuilder().WithClock(clock).Build("P")
		src.Set("P", "Damping", 0.5)
		c.Initialize(src)
		initial := c.Energy()

		run(200)

		Expect(c.Energy()).To(BeNumerically("<", initial/10))
		Expect(math.Abs(c.Angle())).To(BeNumerically("<", 0.5))
	})

	It("should swing with the small-angle period", func() {
		c = MakeBuilder().WithClock(clock).WithSubSteps(200).Build("P")
		src.Set("P", "Damping", 0)
		src.Set("P", "InitialAngle", 0.05)
		c.Initialize(src)

		// Half of the 2.006 s small-angle period.
		run(10)

		Expect(c.StateIsFinite()).To(BeTrue())
		Expect(c.Angle()).To(BeNumerically("<", 0))
	})
})
