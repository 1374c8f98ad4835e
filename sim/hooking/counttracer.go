package hooking

import (
	"sync"
)

// PosCountTracer counts how many times each hook position is triggered. It is
// typically attached to every unit of a network to count how often a
// recoverable condition (a clamp, a defaulted input) happened during a run.
type PosCountTracer struct {
	lock sync.Mutex

	posNames []string
	posCount map[string]uint64
}

// NewPosCountTracer creates a new PosCountTracer.
func NewPosCountTracer() *PosCountTracer {
	t := &PosCountTracer{
		posCount: make(map[string]uint64),
	}

	return t
}

// Func counts the position of the hook context.
func (t *PosCountTracer) Func(ctx HookCtx) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.count(ctx.Pos.Name)
}

// GetPosNames returns the names of all the positions observed so far, in the
// order they were first observed.
func (t *PosCountTracer) GetPosNames() []string {
	t.lock.Lock()
	defer t.lock.Unlock()

	names := make([]string, len(t.posNames))
	copy(names, t.posNames)

	return names
}

// GetCount returns how many times the position with the given name was
// triggered.
func (t *PosCountTracer) GetCount(posName string) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.posCount[posName]
}

func (t *PosCountTracer) count(posName string) {
	_, ok := t.posCount[posName]
	if !ok {
		t.posNames = append(t.posNames, posName)
	}

	t.posCount[posName]++
}
