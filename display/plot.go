package display

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sarchlab/procsim/sim/naming"
	"github.com/sarchlab/procsim/unit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotSink keeps the history of scalar variables and the last snapshot of
// every profile, and renders them as PNG charts.
type PlotSink struct {
	mu        sync.Mutex
	filter    map[string]bool
	histories map[string]plotter.XYs
	profiles  map[string][]float64
	width     vg.Length
	height    vg.Length
}

// NewPlotSink creates a PlotSink. When variables are given as
// "Unit.Variable", only those are kept.
func NewPlotSink(variables ...string) *PlotSink {
	s := &PlotSink{
		histories: make(map[string]plotter.XYs),
		profiles:  make(map[string][]float64),
		width:     8 * vg.Inch,
		height:    5 * vg.Inch,
	}

	if len(variables) > 0 {
		s.filter = make(map[string]bool, len(variables))
		for _, v := range variables {
			s.filter[v] = true
		}
	}

	return s
}

// Publish implements unit.DisplaySink.
func (s *PlotSink) Publish(unitName, variable string, value unit.Value) {
	name := naming.BuildName(unitName, variable)
	if s.filter != nil && !s.filter[name] {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if value.IsProfile() {
		s.profiles[name] = append(s.profiles[name][:0], value.Profile...)
		return
	}

	s.histories[name] = append(s.histories[name],
		plotter.XY{X: value.Time, Y: value.Scalar})
}

// Len returns the number of points kept for a scalar variable.
func (s *PlotSink) Len(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.histories[name])
}

// Save writes one PNG per variable into dir and returns the file names.
func (s *PlotSink) Save(dir string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create directory: %w", err)
	}

	var files []string

	for _, name := range sortedKeys(s.histories) {
		file := filepath.Join(dir, fileName(name)+".png")

		err := s.save(file, name, "time (s)", s.histories[name])
		if err != nil {
			return files, err
		}

		files = append(files, file)
	}

	for _, name := range sortedKeys(s.profiles) {
		profile := s.profiles[name]

		xys := make(plotter.XYs, len(profile))
		for i, v := range profile {
			xys[i] = plotter.XY{X: float64(i), Y: v}
		}

		file := filepath.Join(dir, fileName(name)+"_profile.png")

		err := s.save(file, name, "node", xys)
		if err != nil {
			return files, err
		}

		files = append(files, file)
	}

	return files, nil
}

func (s *PlotSink) save(file, title, xLabel string, xys plotter.XYs) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("plot %s: %w", title, err)
	}

	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)

	if err := p.Save(s.width, s.height, file); err != nil {
		return fmt.Errorf("cannot write %s: %w", file, err)
	}

	return nil
}

func fileName(name string) string {
	return strings.NewReplacer(".", "_", "[", "_", "]", "").Replace(name)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
