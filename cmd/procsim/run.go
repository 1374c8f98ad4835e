package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/sarchlab/procsim/config"
	"github.com/sarchlab/procsim/datarecording"
	"github.com/sarchlab/procsim/display"
	"github.com/sarchlab/procsim/monitoring"
	"github.com/sarchlab/procsim/network"
	"github.com/sarchlab/procsim/params"
	"github.com/sarchlab/procsim/scenario"
	"github.com/sarchlab/procsim/sim/hooking"
	"github.com/sarchlab/procsim/sim/id"
	"github.com/sarchlab/procsim/sim/naming"
	"github.com/sarchlab/procsim/sim/timing"
	"github.com/sarchlab/procsim/unit"
	"github.com/spf13/cobra"
)

// autoName asks for an output file named after the run.
const autoName = "auto"

var runCmd = &cobra.Command{
	Use:   "run [scenario]",
	Short: "Run a scenario.",
	Long: "`run [scenario]` runs a built-in scenario or a scenario file. " +
		"Settings come from .env, then PROCSIM_* variables, then flags.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if err := applyRunFlags(cmd, &cfg); err != nil {
			return err
		}

		if len(args) > 0 {
			cfg.Scenario = args[0]
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		assignments, _ := cmd.Flags().GetStringArray("set")

		s, err := newSimulation(cfg, assignments, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		runErr := s.run(ctx)
		finishErr := s.finish(cmd.OutOrStdout())

		if errors.Is(runErr, context.Canceled) {
			runErr = nil
		}

		return errors.Join(runErr, finishErr)
	},
}

func init() {
	d := config.Default()
	f := runCmd.Flags()

	f.Uint64("batches", d.Batches, "number of batches to run, 0 for no limit")
	f.Bool("realtime", d.Realtime, "pace batches to the wall clock")
	f.Duration("interval", d.Interval, "wall time of one batch in realtime mode")
	f.Float64("rate", 0, "batches per second in realtime mode, replaces --interval")
	f.Float64("scale", d.Scale, "factor applied to the scenario time step")
	f.String("csv", d.CSV, "write the published scalars to a CSV file")
	f.String("db", d.DB, "record the published values into a SQLite file")
	f.String("plot", d.Plot, "save plots of the published values into a directory")
	f.Bool("monitor", d.Monitor, "serve the monitoring page")
	f.Int("monitor-port", d.MonitorPort, "port of the monitoring page, 0 for any")
	f.Bool("open-browser", d.OpenBrowser, "open the monitoring page in a browser")
	f.StringArray("set", nil, "override a parameter, as Unit.Param=value")
	f.Bool("log-ticks", d.LogTicks, "log every tick")

	f.Lookup("csv").NoOptDefVal = autoName
	f.Lookup("db").NoOptDefVal = autoName

	rootCmd.AddCommand(runCmd)
}

// applyRunFlags overrides the loaded settings with the flags that were given
// on the command line.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()

	if f.Changed("batches") {
		cfg.Batches, _ = f.GetUint64("batches")
	}

	if f.Changed("realtime") {
		cfg.Realtime, _ = f.GetBool("realtime")
	}

	if f.Changed("interval") {
		cfg.Interval, _ = f.GetDuration("interval")
	}

	if f.Changed("rate") {
		rate, _ := f.GetFloat64("rate")
		if rate <= 0 {
			return fmt.Errorf("rate must be positive, got %g", rate)
		}

		cfg.Interval = timing.Freq(rate).Interval()
	}

	if f.Changed("scale") {
		cfg.Scale, _ = f.GetFloat64("scale")
	}

	if f.Changed("csv") {
		cfg.CSV, _ = f.GetString("csv")
	}

	if f.Changed("db") {
		cfg.DB, _ = f.GetString("db")
	}

	if f.Changed("plot") {
		cfg.Plot, _ = f.GetString("plot")
	}

	if f.Changed("monitor") {
		cfg.Monitor, _ = f.GetBool("monitor")
	}

	if f.Changed("monitor-port") {
		cfg.MonitorPort, _ = f.GetInt("monitor-port")
	}

	if f.Changed("open-browser") {
		cfg.OpenBrowser, _ = f.GetBool("open-browser")
	}

	if f.Changed("log-ticks") {
		cfg.LogTicks, _ = f.GetBool("log-ticks")
	}

	return nil
}

// simulation wires a scenario network to its runner and its outputs.
type simulation struct {
	cfg    config.Config
	runID  string
	logger *log.Logger

	net    *network.Network
	runner *network.Runner
	events *hooking.PosCountTracer

	latest   *display.LatestSink
	csv      *display.CSVSink
	plots    *display.PlotSink
	recorder datarecording.DataRecorder
	exec     *datarecording.ExecRecorder
	monitor  *monitoring.Monitor
}

func newSimulation(
	cfg config.Config,
	assignments []string,
	logOut io.Writer,
) (*simulation, error) {
	doc, err := scenario.Load(cfg.Scenario)
	if err != nil {
		return nil, err
	}

	n, err := doc.Build()
	if err != nil {
		return nil, err
	}

	if err := applyAssignments(n, assignments); err != nil {
		return nil, err
	}

	if cfg.Scale != 1 {
		if err := n.Clock().ScaleTimeStep(cfg.Scale); err != nil {
			return nil, err
		}
	}

	s := &simulation{
		cfg:    cfg,
		runID:  id.NewRunID(),
		logger: log.New(logOut, "", log.LstdFlags),
		net:    n,
		events: hooking.NewPosCountTracer(),
		latest: display.NewLatestSink(),
	}

	s.attachHooks()
	s.attachSinks(doc)

	if err := n.Initialize(); err != nil {
		return nil, err
	}

	s.buildRunner()

	return s, nil
}

// applyAssignments layers "Unit.Param=value" assignments over the scenario
// parameters.
func applyAssignments(n *network.Network, assignments []string) error {
	src := params.NewMapSource()

	for _, a := range assignments {
		if err := src.SetAssignment(a); err != nil {
			return err
		}
	}

	for _, key := range src.Keys() {
		unitName, paramName, _ := naming.SplitVariable(key)

		u, err := n.Unit(unitName)
		if err != nil {
			return err
		}

		if _, ok := u.Params().Spec(paramName); !ok {
			return fmt.Errorf("%w: %s", unit.ErrUnknownParameter, key)
		}

		v, _ := src.Get(unitName, paramName)
		n.Overrides().Set(unitName, paramName, v)
	}

	return nil
}

func (s *simulation) attachHooks() {
	s.net.AcceptHook(network.NewTickLogger(s.logger, s.cfg.LogTicks))

	events := unit.NewEventLogger(s.logger)
	for _, u := range s.net.Units() {
		u.AcceptHook(events)
		u.AcceptHook(s.events)
	}
}

func (s *simulation) attachSinks(doc *scenario.Document) {
	sinks := display.MultiSink{s.latest}

	if s.cfg.CSV != "" {
		s.csv = display.NewCSVSink(outputPath(s.cfg.CSV, ".csv"))
		s.csv.Init()
		sinks = append(sinks, s.csv)
	}

	if s.cfg.Plot != "" {
		s.plots = display.NewPlotSink()
		sinks = append(sinks, s.plots)
	}

	if s.cfg.DB != "" {
		s.recorder = datarecording.New(outputPath(s.cfg.DB, ".sqlite3"))
		sinks = append(sinks, datarecording.NewSink(s.recorder))

		s.exec = datarecording.NewExecRecorder(s.recorder)
		s.exec.Start(
			datarecording.ExecInfo{Property: "Run ID", Value: s.runID},
			datarecording.ExecInfo{Property: "Scenario", Value: doc.Name},
			datarecording.ExecInfo{
				Property: "Time Step",
				Value:    fmt.Sprintf("%g", s.net.Clock().TimeStep()),
			},
		)
	}

	s.net.SetDisplaySink(sinks)
}

// outputPath strips the suffix that the writer appends. The auto name
// selects a generated unique name.
func outputPath(name, suffix string) string {
	if name == autoName {
		return ""
	}

	return strings.TrimSuffix(name, suffix)
}

func (s *simulation) buildRunner() {
	interval := time.Duration(0)
	if s.cfg.Realtime {
		interval = s.cfg.Interval
	}

	s.runner = network.MakeRunnerBuilder().
		WithInterval(interval).
		WithMaxBatches(s.cfg.Batches).
		Build(s.net)

	if !s.cfg.Monitor {
		return
	}

	s.monitor = monitoring.NewMonitor().WithPortNumber(s.cfg.MonitorPort)
	if s.cfg.OpenBrowser {
		s.monitor = s.monitor.WithBrowser()
	}

	s.monitor.RegisterRunner(s.runner)
	s.monitor.RegisterValues(s.latest)
}

func (s *simulation) run(ctx context.Context) error {
	if s.monitor != nil {
		s.monitor.StartServer()
	}

	s.logger.Printf("run %s: scenario %s, time step %g s, %d ticks per batch",
		s.runID, s.cfg.Scenario,
		s.net.Clock().TimeStep(), s.net.Clock().StepRepeats())

	return s.runner.Run(ctx)
}

// finish stops the monitor, writes the outputs and prints the final values.
func (s *simulation) finish(out io.Writer) error {
	var errs []error

	if s.monitor != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		errs = append(errs, s.monitor.StopServer(ctx))
		cancel()
	}

	if s.csv != nil {
		errs = append(errs, s.csv.Close())
	}

	if s.exec != nil {
		s.exec.End()
		errs = append(errs, s.recorder.Close())
	}

	if s.plots != nil {
		files, err := s.plots.Save(s.cfg.Plot)
		errs = append(errs, err)
		s.logger.Printf("saved %d plots into %s", len(files), s.cfg.Plot)
	}

	s.writeSummary(out)

	return errors.Join(errs...)
}

func (s *simulation) writeSummary(out io.Writer) {
	fmt.Fprintf(out, "t = %.4f s after %d batches\n",
		s.runner.Now(), s.runner.Batches())

	if s.net.AtSteadyState() {
		fmt.Fprintln(out, "steady state reached")
	}

	values := s.latest.Scalars()

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(out, "%-24s %12.6g\n", name, values[name])
	}

	for _, pos := range s.events.GetPosNames() {
		fmt.Fprintf(out, "%s: %d\n", pos, s.events.GetCount(pos))
	}
}
