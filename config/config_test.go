package config_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sarchlab/procsim/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	lookupFrom := func(m map[string]string) func(string) (string, bool) {
		return func(key string) (string, bool) {
			v, ok := m[key]
			return v, ok
		}
	}

	It("should use the defaults", func() {
		c, err := config.FromLookup(lookupFrom(nil))

		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(config.Default()))
	})

	It("should parse every setting", func() {
		c, err := config.FromLookup(lookupFrom(map[string]string{
			"PROCSIM_SCENARIO":     "reactor",
			"PROCSIM_BATCHES":      "0",
			"PROCSIM_REALTIME":     "true",
			"PROCSIM_INTERVAL":     "250ms",
			"PROCSIM_SCALE":        "0.5",
			"PROCSIM_CSV":          "out",
			"PROCSIM_DB":           "rec",
			"PROCSIM_PLOT":         "plots",
			"PROCSIM_MONITOR":      "1",
			"PROCSIM_MONITOR_PORT": "32776",
			"PROCSIM_OPEN_BROWSER": "false",
			"PROCSIM_LOG_TICKS":    "true",
		}))

		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(config.Config{
			Scenario:    "reactor",
			Batches:     0,
			Realtime:    true,
			Interval:    250 * time.Millisecond,
			Scale:       0.5,
			CSV:         "out",
			DB:          "rec",
			Plot:        "plots",
			Monitor:     true,
			MonitorPort: 32776,
			LogTicks:    true,
		}))
	})

	It("should report every malformed value", func() {
		_, err := config.FromLookup(lookupFrom(map[string]string{
			"PROCSIM_BATCHES":  "many",
			"PROCSIM_REALTIME": "maybe",
		}))

		Expect(err).To(MatchError(ContainSubstring("PROCSIM_BATCHES")))
		Expect(err).To(MatchError(ContainSubstring("PROCSIM_REALTIME")))
	})

	It("should reject out-of-range values", func() {
		_, err := config.FromLookup(lookupFrom(map[string]string{
			"PROCSIM_SCALE": "-1",
		}))

		Expect(err).To(MatchError(ContainSubstring("scale")))
	})

	It("should let the environment override env files", func() {
		file := filepath.Join(GinkgoT().TempDir(), "test.env")
		Expect(os.WriteFile(file,
			[]byte("PROCSIM_SCENARIO=pendulum\nPROCSIM_BATCHES=7\n"),
			0o644)).To(Succeed())
		GinkgoT().Setenv("PROCSIM_BATCHES", "9")

		c, err := config.Load(file)

		Expect(err).NotTo(HaveOccurred())
		Expect(c.Scenario).To(Equal("pendulum"))
		Expect(c.Batches).To(Equal(uint64(9)))
	})

	It("should fail on a missing env file", func() {
		_, err := config.Load(filepath.Join(GinkgoT().TempDir(), "missing.env"))

		Expect(err).To(HaveOccurred())
	})
})
