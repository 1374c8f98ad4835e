package display

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/procsim/unit"
	"go.uber.org/mock/gomock"
)

var _ = Describe("MultiSink", func() {
	It("should forward values to every sink in order", func() {
		mockCtrl := gomock.NewController(GinkgoT())
		a := NewMockDisplaySink(mockCtrl)
		b := NewMockDisplaySink(mockCtrl)
		v := unit.Value{Time: 1, Scalar: 2}

		gomock.InOrder(
			a.EXPECT().Publish("T1", "Level", v),
			b.EXPECT().Publish("T1", "Level", v),
		)

		MultiSink{a, b}.Publish("T1", "Level", v)
	})
})

var _ = Describe("LatestSink", func() {
	var s *LatestSink

	BeforeEach(func() {
		s = NewLatestSink()
	})

	It("should keep the last value", func() {
		s.Publish("T1", "Level", unit.Value{Time: 0.1, Scalar: 1})
		s.Publish("T1", "Level", unit.Value{Time: 0.2, Scalar: 2})
		s.Publish("R1", "Ca", unit.Value{Time: 0.2, Profile: []float64{1, 2}})

		v, ok := s.Get("T1", "Level")
		Expect(ok).To(BeTrue())
		Expect(v.Scalar).To(Equal(2.0))
		Expect(s.Names()).To(Equal([]string{"R1.Ca", "T1.Level"}))
		Expect(s.Scalars()).To(Equal(map[string]float64{"T1.Level": 2}))

		_, ok = s.Get("T2", "Level")
		Expect(ok).To(BeFalse())
	})

	It("should copy profiles", func() {
		profile := []float64{1, 2, 3}
		s.Publish("R1", "Ca", unit.Value{Profile: profile})
		profile[0] = 9

		v, _ := s.Get("R1", "Ca")
		Expect(v.Profile).To(Equal([]float64{1, 2, 3}))
	})
})

var _ = Describe("CSVSink", func() {
	var (
		path string
		s    *CSVSink
	)

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "values")
		s = NewCSVSink(path)
		s.Init()
	})

	It("should write one row per scalar", func() {
		s.Publish("T1", "Level", unit.Value{Time: 0.5, Scalar: 1.25})
		s.Publish("R1", "Ca", unit.Value{Time: 0.5, Profile: []float64{1}})
		s.Publish("T1", "FlowOut", unit.Value{Time: 0.5, Scalar: 0.75})
		Expect(s.Close()).To(Succeed())
		Expect(s.Close()).To(Succeed())

		data, err := os.ReadFile(s.Path())
		Expect(err).NotTo(HaveOccurred())

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		Expect(lines).To(Equal([]string{
			"Time, Unit, Variable, Value",
			"0.5000000000, T1, Level, 1.25",
			"0.5000000000, T1, FlowOut, 0.75",
		}))
	})

	It("should refuse to overwrite a file", func() {
		Expect(func() { NewCSVSink(path).Init() }).To(Panic())
	})
})

var _ = Describe("PlotSink", func() {
	It("should keep only the selected variables", func() {
		s := NewPlotSink("T1.Level")

		s.Publish("T1", "Level", unit.Value{Time: 0, Scalar: 0})
		s.Publish("T1", "Level", unit.Value{Time: 1, Scalar: 1})
		s.Publish("T1", "FlowOut", unit.Value{Time: 1, Scalar: 1})

		Expect(s.Len("T1.Level")).To(Equal(2))
		Expect(s.Len("T1.FlowOut")).To(Equal(0))
	})

	It("should render PNG charts", func() {
		dir := filepath.Join(GinkgoT().TempDir(), "plots")
		s := NewPlotSink()

		for i := 0; i < 10; i++ {
			s.Publish("T1", "Level", unit.Value{
				Time: float64(i), Scalar: float64(i * i),
			})
		}
		s.Publish("R1", "Ca", unit.Value{Time: 9, Profile: []float64{3, 2, 1}})

		files, err := s.Save(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(files).To(Equal([]string{
			filepath.Join(dir, "T1_Level.png"),
			filepath.Join(dir, "R1_Ca_profile.png"),
		}))

		for _, f := range files {
			info, err := os.Stat(f)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Size()).To(BeNumerically(">", 0))
		}
	})
})
