package monitoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/procsim/display"
	"github.com/sarchlab/procsim/network"
	"github.com/sarchlab/procsim/sim/hooking"
	"github.com/sarchlab/procsim/sim/timing"
	"github.com/sarchlab/procsim/unit/tank"
)

var _ = Describe("Monitor", func() {
	var (
		n       *network.Network
		latest  *display.LatestSink
		r       *network.Runner
		m       *Monitor
		handler http.Handler
		cancel  context.CancelFunc
		done    chan error
	)

	request := func(method, url, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(method, url, strings.NewReader(body))
		handler.ServeHTTP(rec, req)

		return rec
	}

	decode := func(rec *httptest.ResponseRecorder, v any) {
		Expect(json.Unmarshal(rec.Body.Bytes(), v)).To(Succeed())
	}

	startRunner := func() {
		var ctx context.Context
		ctx, cancel = context.WithCancel(context.Background())
		done = make(chan error, 1)

		go func() {
			done <- r.Run(ctx)
		}()
	}

	BeforeEach(func() {
		n = network.NewNetwork(timing.NewClock(0.1, 10))
		n.Add(tank.MakeBuilder().Build("Tank"))

		latest = display.NewLatestSink()
		n.SetDisplaySink(latest)
		Expect(n.Initialize()).To(Succeed())
		Expect(n.RunBatch()).To(Succeed())

		r = network.MakeRunnerBuilder().
			WithInterval(0).
			WithStartPaused().
			Build(n)

		m = NewMonitor().WithCommandTimeout(time.Second)
		m.RegisterRunner(r)
		m.RegisterValues(latest)
		handler = m.Router()
	})

	AfterEach(func() {
		if cancel != nil {
			cancel()
			Eventually(done).Should(Receive())
			cancel = nil
		}
	})

	It("should report the time", func() {
		rec := request("GET", "/api/now", "")

		rsp := nowRsp{}
		decode(rec, &rsp)
		Expect(rsp.Paused).To(BeTrue())
		Expect(rsp.Batches).To(BeZero())
	})

	It("should pause and continue", func() {
		r.Continue()
		Expect(request("POST", "/api/pause", "").Code).To(Equal(200))
		Expect(r.IsPaused()).To(BeTrue())

		Expect(request("POST", "/api/continue", "").Code).To(Equal(200))
		Expect(r.IsPaused()).To(BeFalse())
	})

	It("should list the units", func() {
		var names []string
		decode(request("GET", "/api/list_units", ""), &names)

		Expect(names).To(Equal([]string{"Tank"}))
	})

	It("should list the latest values", func() {
		values := map[string]float64{}
		decode(request("GET", "/api/values", ""), &values)

		Expect(values).To(HaveKey("Tank.Level"))
		Expect(values["Tank.Level"]).To(BeNumerically(">", 0))
	})

	It("should serve the page", func() {
		rec := request("GET", "/", "")

		Expect(rec.Code).To(Equal(200))
		Expect(rec.Body.String()).To(HavePrefix("<!DOCTYPE html>"))
	})

	It("should report process resources", func() {
		rec := request("GET", "/api/resource", "")

		Expect(rec.Code).To(Equal(200))
		Expect(rec.Body.String()).To(ContainSubstring("memory_size"))
	})

	It("should refuse to reset with GET", func() {
		Expect(request("GET", "/api/reset", "").Code).
			To(Equal(http.StatusMethodNotAllowed))
	})

	It("should time out when the runner is not running", func() {
		m.WithCommandTimeout(20 * time.Millisecond)

		rec := request("POST", "/api/reset", "")

		Expect(rec.Code).To(Equal(http.StatusServiceUnavailable))
	})

	Context("with a running runner", func() {
		BeforeEach(func() {
			startRunner()
		})

		It("should reset", func() {
			Expect(request("POST", "/api/reset", "").Code).To(Equal(200))
			Expect(r.Now()).To(BeZero())
		})

		It("should scale the time step", func() {
			rec := request("POST", "/api/timestep/2", "")

			Expect(rec.Code).To(Equal(200))

			rsp := map[string]float64{}
			decode(rec, &rsp)
			Expect(rsp["time_step"]).To(BeNumerically("~", 0.2, 1e-12))
		})

		It("should reject bad time step factors", func() {
			Expect(request("POST", "/api/timestep/abc", "").Code).
				To(Equal(http.StatusBadRequest))
			Expect(request("POST", "/api/timestep/-1", "").Code).
				To(Equal(http.StatusBadRequest))
		})

		It("should change parameters", func() {
			rec := request("POST", "/api/param",
				`{"unit": "Tank", "param": "Area", "value": 2}`)
			Expect(rec.Code).To(Equal(200))

			var area float64
			Expect(<-r.Submit(network.CommandFunc(func(n *network.Network) error {
				u, err := n.Unit("Tank")
				area, _ = u.Params().Value("Area")
				return err
			}))).To(Succeed())
			Expect(area).To(Equal(2.0))
		})

		It("should report unknown parameters", func() {
			Expect(request("POST", "/api/param",
				`{"unit": "Tank", "param": "Colour", "value": 2}`).Code).
				To(Equal(http.StatusNotFound))
			Expect(request("POST", "/api/param", `{"unit":`).Code).
				To(Equal(http.StatusBadRequest))
		})

		It("should serialize a unit", func() {
			rec := request("GET", "/api/unit/Tank", "")

			Expect(rec.Code).To(Equal(200))
			Expect(rec.Body.Len()).To(BeNumerically(">", 0))

			Expect(request("GET", "/api/unit/Pump", "").Code).
				To(Equal(http.StatusNotFound))
		})

		It("should return strip charts", func() {
			rec := request("GET", "/api/strip/Tank/Level", "")
			Expect(rec.Code).To(Equal(200))

			rsp := stripRsp{}
			decode(rec, &rsp)
			Expect(rsp.Times).To(HaveLen(10))
			Expect(rsp.Times[9]).To(BeNumerically("~", 1.0, 1e-9))
			Expect(rsp.Values[9]).To(BeNumerically(">", rsp.Values[0]))

			Expect(request("GET", "/api/strip/Tank/Volume", "").Code).
				To(Equal(http.StatusNotFound))
		})

		It("should report the steady state", func() {
			rsp := steadyRsp{}
			decode(request("GET", "/api/steady", ""), &rsp)

			Expect(rsp.Enabled).To(BeFalse())
		})
	})

	It("should list values through the runner without a sink", func() {
		m.values = nil
		startRunner()

		values := map[string]float64{}
		decode(request("GET", "/api/values", ""), &values)

		Expect(values).To(HaveKey("Tank.FlowOut"))
	})

	It("should serve over TCP", func() {
		url := m.StartServer()
		defer m.StopServer(context.Background())

		rsp, err := http.Get(url + "/api/list_units")
		Expect(err).NotTo(HaveOccurred())
		defer rsp.Body.Close()

		Expect(rsp.StatusCode).To(Equal(200))
	})
})

var _ = Describe("Progress bars", func() {
	It("should follow the batches of a limited runner", func() {
		n := network.NewNetwork(timing.NewClock(0.1, 1))
		n.Add(tank.MakeBuilder().Build("Tank"))
		r := network.MakeRunnerBuilder().WithMaxBatches(3).Build(n)

		m := NewMonitor()
		m.RegisterRunner(r)
		Expect(r.NumHooks()).To(Equal(1))

		hook := r.Hooks()[0]
		hook.Func(hooking.HookCtx{Domain: r, Pos: network.HookPosBatchEnd})
		hook.Func(hooking.HookCtx{Domain: r, Pos: network.HookPosTick})

		bars := []ProgressSnapshot{}
		rec := httptest.NewRecorder()
		m.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/api/progress", nil))
		Expect(json.Unmarshal(rec.Body.Bytes(), &bars)).To(Succeed())

		Expect(bars).To(HaveLen(1))
		Expect(bars[0].Name).To(Equal("Batches"))
		Expect(bars[0].Total).To(Equal(uint64(3)))
		Expect(bars[0].Finished).To(Equal(uint64(1)))
	})

	It("should remove completed bars", func() {
		m := NewMonitor()
		a := m.CreateProgressBar("A", 10)
		b := m.CreateProgressBar("B", 10)

		a.IncrementInProgress(4)
		a.MoveInProgressToFinished(3)
		Expect(a.Snapshot().InProgress).To(Equal(uint64(1)))
		Expect(a.Snapshot().Finished).To(Equal(uint64(3)))
		Expect(a.Snapshot().ID).NotTo(Equal(b.Snapshot().ID))

		m.CompleteProgressBar(a)

		Expect(m.progressBars).To(ConsistOf(b))
	})
})
