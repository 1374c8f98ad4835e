package display

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/sarchlab/procsim/unit"
	"github.com/tebeka/atexit"
)

type csvRow struct {
	time     float64
	unit     string
	variable string
	value    float64
}

// CSVSink writes one row per published scalar. Profiles are not written.
type CSVSink struct {
	path string
	file *os.File
	w    *bufio.Writer

	rows       []csvRow
	bufferSize int
}

// NewCSVSink creates a CSVSink that writes into path + ".csv". An empty path
// produces a unique file name.
func NewCSVSink(path string) *CSVSink {
	return &CSVSink{
		path:       path,
		bufferSize: 1000,
	}
}

// Path returns the name of the CSV file, including the extension.
func (s *CSVSink) Path() string {
	return s.path + ".csv"
}

// Init creates the CSV file and writes the header. It panics if the file
// already exists.
func (s *CSVSink) Init() {
	if s.path == "" {
		s.path = "procsim_values_" + xid.New().String()
	}

	filename := s.Path()

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}

	s.file = file
	s.w = bufio.NewWriter(file)

	fmt.Fprintf(s.w, "Time, Unit, Variable, Value\n")

	atexit.Register(func() {
		if err := s.Close(); err != nil {
			panic(err)
		}
	})
}

// Publish implements unit.DisplaySink.
func (s *CSVSink) Publish(unitName, variable string, value unit.Value) {
	if value.IsProfile() {
		return
	}

	s.rows = append(s.rows, csvRow{value.Time, unitName, variable, value.Scalar})
	if len(s.rows) >= s.bufferSize {
		s.Flush()
	}
}

// Flush writes the buffered rows to the file.
func (s *CSVSink) Flush() {
	if s.w == nil {
		return
	}

	for _, r := range s.rows {
		fmt.Fprintf(s.w, "%.10f, %s, %s, %.10g\n",
			r.time, r.unit, r.variable, r.value)
	}

	s.rows = nil

	if err := s.w.Flush(); err != nil {
		panic(err)
	}
}

// Close flushes and closes the file. Closing twice is a no-op.
func (s *CSVSink) Close() error {
	if s.file == nil {
		return nil
	}

	s.Flush()

	err := s.file.Close()
	s.file = nil
	s.w = nil

	return err
}
