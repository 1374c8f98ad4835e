// Package config loads run settings from .env files and PROCSIM_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "PROCSIM_"

// DefaultEnvFile is read when Load is called without files and the file
// exists.
const DefaultEnvFile = ".env"

// Config holds the settings of a run.
type Config struct {
	Scenario    string
	Batches     uint64
	Realtime    bool
	Interval    time.Duration
	Scale       float64
	CSV         string
	DB          string
	Plot        string
	Monitor     bool
	MonitorPort int
	OpenBrowser bool
	LogTicks    bool
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Scenario: "tanks",
		Batches:  100,
		Interval: 100 * time.Millisecond,
		Scale:    1,
	}
}

// Load starts from Default, applies the .env files and then the environment.
// Variables already in the environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err == nil {
			files = []string{DefaultEnvFile}
		}
	}

	values := make(map[string]string)

	if len(files) > 0 {
		fromFiles, err := godotenv.Read(files...)
		if err != nil {
			return Config{}, fmt.Errorf("read env files: %w", err)
		}

		values = fromFiles
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}

		v, ok := values[key]

		return v, ok
	}

	return FromLookup(lookup)
}

// FromLookup builds a Config from a key lookup function, such as
// os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	p := parser{lookup: lookup}

	p.stringVar("SCENARIO", &c.Scenario)
	p.uintVar("BATCHES", &c.Batches)
	p.boolVar("REALTIME", &c.Realtime)
	p.durationVar("INTERVAL", &c.Interval)
	p.floatVar("SCALE", &c.Scale)
	p.stringVar("CSV", &c.CSV)
	p.stringVar("DB", &c.DB)
	p.stringVar("PLOT", &c.Plot)
	p.boolVar("MONITOR", &c.Monitor)
	p.intVar("MONITOR_PORT", &c.MonitorPort)
	p.boolVar("OPEN_BROWSER", &c.OpenBrowser)
	p.boolVar("LOG_TICKS", &c.LogTicks)

	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks the value ranges.
func (c Config) Validate() error {
	var errs []error

	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %g", c.Scale))
	}

	if c.Interval < 0 {
		errs = append(errs, fmt.Errorf("interval must not be negative, got %s",
			c.Interval))
	}

	if c.MonitorPort < 0 || c.MonitorPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid monitor port %d", c.MonitorPort))
	}

	return errors.Join(errs...)
}

type parser struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (p *parser) get(name string) (string, string, bool) {
	key := EnvPrefix + name
	v, ok := p.lookup(key)

	return key, v, ok && v != ""
}

func (p *parser) fail(key, v string, err error) {
	p.errs = append(p.errs, fmt.Errorf("%s=%q: %w", key, v, err))
}

func (p *parser) stringVar(name string, dst *string) {
	if _, v, ok := p.get(name); ok {
		*dst = v
	}
}

func (p *parser) boolVar(name string, dst *bool) {
	key, v, ok := p.get(name)
	if !ok {
		return
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, v, err)
		return
	}

	*dst = b
}

func (p *parser) intVar(name string, dst *int) {
	key, v, ok := p.get(name)
	if !ok {
		return
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return
	}

	*dst = i
}

func (p *parser) uintVar(name string, dst *uint64) {
	key, v, ok := p.get(name)
	if !ok {
		return
	}

	u, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		p.fail(key, v, err)
		return
	}

	*dst = u
}

func (p *parser) floatVar(name string, dst *float64) {
	key, v, ok := p.get(name)
	if !ok {
		return
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(key, v, err)
		return
	}

	*dst = f
}

func (p *parser) durationVar(name string, dst *time.Duration) {
	key, v, ok := p.get(name)
	if !ok {
		return
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, v, err)
		return
	}

	*dst = d
}
