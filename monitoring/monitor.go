// Package monitoring turns a running simulation into a web server that can be
// watched and controlled from a browser.
package monitoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/sarchlab/procsim/display"
	"github.com/sarchlab/procsim/monitoring/web"
	"github.com/sarchlab/procsim/network"
	"github.com/sarchlab/procsim/sim/hooking"
	"github.com/sarchlab/procsim/sim/id"
	"github.com/sarchlab/procsim/sim/timing"
	"github.com/sarchlab/procsim/unit"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"
)

// Monitor serves the state of a runner over HTTP and forwards control
// requests to it. Requests that read or change the network are submitted
// to the runner, so they are served between batches.
type Monitor struct {
	runner         *network.Runner
	values         *display.LatestSink
	portNumber     int
	openBrowser    bool
	commandTimeout time.Duration
	idGenerator    id.IDGenerator

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar

	server *http.Server
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{
		commandTimeout: 5 * time.Second,
		idGenerator:    id.NewUniqueIDGenerator(),
	}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber != 0 && portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowser makes StartServer open the page in a browser.
func (m *Monitor) WithBrowser() *Monitor {
	m.openBrowser = true
	return m
}

// WithCommandTimeout sets how long a request waits for the runner.
func (m *Monitor) WithCommandTimeout(d time.Duration) *Monitor {
	m.commandTimeout = d
	return m
}

// RegisterRunner registers the runner that drives the simulation. If the
// runner has a batch limit, a progress bar follows it.
func (m *Monitor) RegisterRunner(r *network.Runner) {
	m.runner = r

	if r.MaxBatches() > 0 {
		bar := m.CreateProgressBar("Batches", r.MaxBatches())
		r.AcceptHook(&batchProgressHook{bar: bar})
	}
}

// RegisterValues registers the sink that holds the latest published values.
func (m *Monitor) RegisterValues(s *display.LatestSink) {
	m.values = s
}

type batchProgressHook struct {
	bar *ProgressBar
}

func (h *batchProgressHook) Func(ctx hooking.HookCtx) {
	if ctx.Pos == network.HookPosBatchEnd {
		h.bar.IncrementFinished(1)
	}
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		id:        m.idGenerator.Generate(),
		name:      name,
		startTime: time.Now(),
		total:     total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar to be shown on the webpage.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// Router returns the handler of all the endpoints.
func (m *Monitor) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/pause", m.pause)
	r.HandleFunc("/api/continue", m.continueRunner)
	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/reset", m.reset).Methods(http.MethodPost)
	r.HandleFunc("/api/timestep/{factor}", m.scaleTimeStep).
		Methods(http.MethodPost)
	r.HandleFunc("/api/param", m.changeParameter).Methods(http.MethodPost)
	r.HandleFunc("/api/list_units", m.listUnits)
	r.HandleFunc("/api/unit/{name}", m.unitDetails)
	r.HandleFunc("/api/values", m.listValues)
	r.HandleFunc("/api/strip/{unit}/{var}", m.stripChart)
	r.HandleFunc("/api/steady", m.steady)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
	r.PathPrefix("/").Handler(http.FileServer(web.GetAssets()))

	return r
}

// StartServer starts serving in the background and returns the URL of the
// page.
func (m *Monitor) StartServer() string {
	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)

	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", url)

	m.server = &http.Server{
		Handler:           m.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		err := m.server.Serve(listener)
		if !errors.Is(err, http.ErrServerClosed) {
			dieOnErr(err)
		}
	}()

	if m.openBrowser {
		if err := browser.OpenURL(url); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open browser: %v\n", err)
		}
	}

	return url
}

// StopServer shuts the server down.
func (m *Monitor) StopServer(ctx context.Context) error {
	if m.server == nil {
		return nil
	}

	return m.server.Shutdown(ctx)
}

func (m *Monitor) pause(w http.ResponseWriter, _ *http.Request) {
	m.runner.Pause()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) continueRunner(w http.ResponseWriter, _ *http.Request) {
	m.runner.Continue()
	_, err := w.Write(nil)
	dieOnErr(err)
}

type nowRsp struct {
	Now     timing.VTimeInSec `json:"now"`
	Batches uint64            `json:"batches"`
	Paused  bool              `json:"paused"`
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, nowRsp{
		Now:     m.runner.Now(),
		Batches: m.runner.Batches(),
		Paused:  m.runner.IsPaused(),
	})
}

// apply submits a command and waits for it. It writes the error response
// and returns false if the command could not be applied.
func (m *Monitor) apply(
	w http.ResponseWriter,
	r *http.Request,
	cmd network.Command,
) bool {
	select {
	case err := <-m.runner.Submit(cmd):
		if err != nil {
			http.Error(w, err.Error(), statusOf(err))
			return false
		}

		return true
	case <-r.Context().Done():
		return false
	case <-time.After(m.commandTimeout):
		http.Error(w, "the simulation is not running",
			http.StatusServiceUnavailable)

		return false
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, unit.ErrUnknownUnit),
		errors.Is(err, unit.ErrUnknownParameter),
		errors.Is(err, unit.ErrUnknownVariable):
		return http.StatusNotFound
	case errors.Is(err, unit.ErrConfigurationHazard),
		errors.Is(err, timing.ErrNotAtBoundary):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func (m *Monitor) reset(w http.ResponseWriter, r *http.Request) {
	if m.apply(w, r, network.ResetCommand{}) {
		w.WriteHeader(http.StatusOK)
	}
}

func (m *Monitor) scaleTimeStep(w http.ResponseWriter, r *http.Request) {
	factor, err := strconv.ParseFloat(mux.Vars(r)["factor"], 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var timeStep timing.VTimeInSec

	cmd := network.CommandFunc(func(n *network.Network) error {
		if err := n.ChangeTimeStepScale(factor); err != nil {
			return err
		}

		timeStep = n.Clock().TimeStep()

		return nil
	})

	if m.apply(w, r, cmd) {
		writeJSON(w, map[string]float64{"time_step": timeStep})
	}
}

type paramReq struct {
	Unit  string  `json:"unit"`
	Param string  `json:"param"`
	Value float64 `json:"value"`
}

func (m *Monitor) changeParameter(w http.ResponseWriter, r *http.Request) {
	req := paramReq{}

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cmd := network.ChangeParameterCommand{
		Unit:  req.Unit,
		Param: req.Param,
		Value: req.Value,
	}

	if m.apply(w, r, cmd) {
		w.WriteHeader(http.StatusOK)
	}
}

func (m *Monitor) listUnits(w http.ResponseWriter, _ *http.Request) {
	units := m.runner.Network().Units()

	names := make([]string, len(units))
	for i, u := range units {
		names[i] = u.Name()
	}

	writeJSON(w, names)
}

func (m *Monitor) unitDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	buf := bytes.NewBuffer(nil)

	cmd := network.CommandFunc(func(n *network.Network) error {
		u, err := n.Unit(name)
		if err != nil {
			return err
		}

		serializer := goseth.NewSerializer()
		serializer.SetRoot(viewOf(u))
		serializer.SetMaxDepth(2)

		return serializer.Serialize(buf)
	})

	if m.apply(w, r, cmd) {
		_, err := w.Write(buf.Bytes())
		dieOnErr(err)
	}
}

type unitView struct {
	Name      string
	Lifecycle string
	SubSteps  int
	Params    map[string]float64
	Inputs    map[string]string
	Outputs   map[string]float64
}

func viewOf(u unit.Unit) *unitView {
	v := &unitView{
		Name:      u.Name(),
		Lifecycle: u.Lifecycle().String(),
		SubSteps:  u.SubSteps(),
		Params:    make(map[string]float64),
		Inputs:    make(map[string]string),
		Outputs:   make(map[string]float64),
	}

	for _, spec := range u.Params().Specs() {
		v.Params[spec.Name], _ = u.Params().Value(spec.Name)
	}

	for _, name := range u.Inputs().Names() {
		v.Inputs[name] = "default"
		if u.Inputs().IsBound(name) {
			v.Inputs[name] = u.Inputs().BoundTo(name)
		}
	}

	for _, name := range u.Outputs().ScalarNames() {
		acc, _ := u.Outputs().Scalar(name)
		v.Outputs[name] = acc()
	}

	return v
}

func (m *Monitor) listValues(w http.ResponseWriter, r *http.Request) {
	if m.values != nil {
		writeJSON(w, m.values.Scalars())
		return
	}

	var values map[string]float64

	cmd := network.CommandFunc(func(n *network.Network) error {
		values = n.Values()
		return nil
	})

	if m.apply(w, r, cmd) {
		writeJSON(w, values)
	}
}

type stripCharter interface {
	StripChart(variable string) *unit.StripChart
}

type stripRsp struct {
	Times  []float64 `json:"times"`
	Values []float64 `json:"values"`
}

func (m *Monitor) stripChart(w http.ResponseWriter, r *http.Request) {
	unitName := mux.Vars(r)["unit"]
	variable := mux.Vars(r)["var"]
	rsp := stripRsp{}

	cmd := network.CommandFunc(func(n *network.Network) error {
		u, err := n.Unit(unitName)
		if err != nil {
			return err
		}

		sc, ok := u.(stripCharter)
		if !ok {
			return fmt.Errorf("%w: unit %s keeps no strip charts",
				unit.ErrUnknownVariable, unitName)
		}

		chart := sc.StripChart(variable)
		if chart == nil {
			return fmt.Errorf("%w: %s.%s", unit.ErrUnknownVariable,
				unitName, variable)
		}

		rsp.Times, rsp.Values = chart.Samples()

		return nil
	})

	if m.apply(w, r, cmd) {
		writeJSON(w, rsp)
	}
}

type steadyRsp struct {
	Enabled   bool    `json:"enabled"`
	Reference string  `json:"reference,omitempty"`
	Steady    bool    `json:"steady"`
	Interval  float64 `json:"interval,omitempty"`
}

func (m *Monitor) steady(w http.ResponseWriter, r *http.Request) {
	rsp := steadyRsp{}

	cmd := network.CommandFunc(func(n *network.Network) error {
		check := n.SteadyStateCheck()
		if check == nil {
			return nil
		}

		rsp.Enabled = true
		rsp.Reference = check.Reference().Name()
		rsp.Steady = check.AtSteadyState()
		rsp.Interval = check.Interval()

		return nil
	})

	if m.apply(w, r, cmd) {
		writeJSON(w, rsp)
	}
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	bars := make([]ProgressSnapshot, len(m.progressBars))
	for i, b := range m.progressBars {
		bars[i] = b.Snapshot()
	}
	m.progressBarsLock.Unlock()

	writeJSON(w, bars)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memorySize, err := proc.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	writeJSON(w, prof)
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")

	_, err = w.Write(data)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
