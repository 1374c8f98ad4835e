package scenario

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sarchlab/procsim/unit"
	"github.com/sarchlab/procsim/unit/cstr"
	"github.com/sarchlab/procsim/unit/feed"
	"github.com/sarchlab/procsim/unit/hx"
	"github.com/sarchlab/procsim/unit/pendulum"
	"github.com/sarchlab/procsim/unit/pfr"
	"github.com/sarchlab/procsim/unit/pictrl"
	"github.com/sarchlab/procsim/unit/tank"
)

// Factory builds a unit from its declaration.
type Factory func(spec UnitSpec) (unit.Unit, error)

type kind struct {
	name        string
	description string
	build       Factory

	// singleStep kinds update once per tick and take no sub-steps.
	singleStep bool
	// lumped kinds take no nodes and no length.
	lumped bool
}

var (
	kindsLock sync.RWMutex
	kinds     = make(map[string]kind)
)

// RegisterKind makes a unit kind available to scenarios. It panics if the
// kind is already registered.
func RegisterKind(name, description string, f Factory) {
	kindsLock.Lock()
	defer kindsLock.Unlock()

	if _, found := kinds[name]; found {
		panic(fmt.Sprintf("unit kind %s is already registered", name))
	}

	kinds[name] = kind{name: name, description: description, build: f}
}

func lookupKind(name string) (kind, bool) {
	kindsLock.RLock()
	defer kindsLock.RUnlock()

	k, ok := kinds[strings.ToLower(name)]

	return k, ok
}

// Kinds returns the registered kinds with their descriptions, sorted by name.
func Kinds() [][2]string {
	kindsLock.RLock()
	defer kindsLock.RUnlock()

	list := make([][2]string, 0, len(kinds))
	for _, k := range kinds {
		list = append(list, [2]string{k.name, k.description})
	}

	sort.Slice(list, func(i, j int) bool { return list[i][0] < list[j][0] })

	return list
}

func init() {
	RegisterKind("feed", "boundary source with optional disturbance", buildFeed)
	RegisterKind("tank", "gravity-drained tank with outlet valve", buildTank)
	RegisterKind("cstr", "lumped jacketed reactor", buildCSTR)
	RegisterKind("pfr", "distributed tubular reactor", buildPFR)
	RegisterKind("hx", "distributed double-pipe heat exchanger", buildHX)
	RegisterKind("pi", "PI controller with anti-windup", buildPI)
	RegisterKind("pendulum", "damped pendulum", buildPendulum)

	setKindTraits("feed", true, true)
	setKindTraits("pi", true, true)
	setKindTraits("tank", false, true)
	setKindTraits("cstr", false, true)
	setKindTraits("pendulum", false, true)
}

func setKindTraits(name string, singleStep, lumped bool) {
	kindsLock.Lock()
	defer kindsLock.Unlock()

	k := kinds[name]
	k.singleStep = singleStep
	k.lumped = lumped
	kinds[name] = k
}

var feedShapes = map[string]feed.Shape{
	"constant": feed.Constant,
	"sine":     feed.Sine,
	"square":   feed.Square,
	"step":     feed.Step,
}

func buildFeed(s UnitSpec) (unit.Unit, error) {
	b := feed.MakeBuilder().
		WithOutputName(s.Option("output", "Value")).
		WithUnits(s.Option("units", ""))

	shapeName := strings.ToLower(s.Option("shape", "constant"))

	shape, ok := feedShapes[shapeName]
	if !ok {
		return nil, fmt.Errorf("unknown shape %q", shapeName)
	}

	b = b.WithShape(shape)

	switch len(s.Range) {
	case 0:
	case 3:
		lo, hi, initial := s.Range[0], s.Range[1], s.Range[2]
		if lo > hi || initial < lo || initial > hi {
			return nil, fmt.Errorf("range [%g, %g] does not hold %g",
				lo, hi, initial)
		}

		b = b.WithRange(lo, hi, initial)
	default:
		return nil, fmt.Errorf("range must be [min, max, initial]")
	}

	return b.Build(s.Name), nil
}

func buildTank(s UnitSpec) (unit.Unit, error) {
	b := tank.MakeBuilder()
	if s.SubSteps > 0 {
		b = b.WithSubSteps(s.SubSteps)
	}

	return b.Build(s.Name), nil
}

func buildCSTR(s UnitSpec) (unit.Unit, error) {
	b := cstr.MakeBuilder()
	if s.SubSteps > 0 {
		b = b.WithSubSteps(s.SubSteps)
	}

	switch mode := strings.ToLower(s.Option("jacket", "dynamic")); mode {
	case "dynamic":
		b = b.WithJacketMode(cstr.JacketDynamic)
	case "fixed":
		b = b.WithJacketMode(cstr.JacketFixed)
	default:
		return nil, fmt.Errorf("unknown jacket mode %q", mode)
	}

	return b.Build(s.Name), nil
}

func buildPFR(s UnitSpec) (unit.Unit, error) {
	b := pfr.MakeBuilder()
	if s.SubSteps > 0 {
		b = b.WithSubSteps(s.SubSteps)
	}

	if s.Nodes > 0 {
		if s.Nodes < 3 {
			return nil, fmt.Errorf("a reactor needs at least 3 nodes")
		}

		b = b.WithIntervals(s.Nodes - 1)
	}

	if s.Length > 0 {
		b = b.WithLength(s.Length)
	}

	return b.Build(s.Name), nil
}

func buildHX(s UnitSpec) (unit.Unit, error) {
	b := hx.MakeBuilder()
	if s.SubSteps > 0 {
		b = b.WithSubSteps(s.SubSteps)
	}

	if s.Nodes > 0 {
		if s.Nodes < 3 {
			return nil, fmt.Errorf("an exchanger needs at least 3 nodes")
		}

		b = b.WithIntervals(s.Nodes - 1)
	}

	if s.Length > 0 {
		b = b.WithLength(s.Length)
	}

	switch flow := strings.ToLower(s.Option("flow", "counter")); flow {
	case "counter":
		b = b.WithCounterCurrent()
	case "co":
		b = b.WithCoCurrent()
	default:
		return nil, fmt.Errorf("unknown flow arrangement %q", flow)
	}

	return b.Build(s.Name), nil
}

func buildPI(s UnitSpec) (unit.Unit, error) {
	return pictrl.MakeBuilder().WithUnits(s.Option("units", "")).
		Build(s.Name), nil
}

func buildPendulum(s UnitSpec) (unit.Unit, error) {
	b := pendulum.MakeBuilder()
	if s.SubSteps > 0 {
		b = b.WithSubSteps(s.SubSteps)
	}

	return b.Build(s.Name), nil
}
