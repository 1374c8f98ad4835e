package id

import (
	"strconv"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator generates identifiers.
type IDGenerator interface {
	Generate() string
}

// NewIDGenerator returns a generator that yields "1", "2", "3", ... It is used
// for things that need reproducible ids across runs, such as unit indices in
// recordings.
func NewIDGenerator() IDGenerator {
	return &sequentialIDGenerator{}
}

// NewUniqueIDGenerator returns a generator of globally unique ids.
func NewUniqueIDGenerator() IDGenerator {
	return uniqueIDGenerator{}
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)
	id := strconv.FormatUint(idNumber, 10)

	return id
}

type uniqueIDGenerator struct{}

func (g uniqueIDGenerator) Generate() string {
	return xid.New().String()
}

// NewRunID returns an id that names one simulation run. Output files that are
// not given an explicit name are named after it.
func NewRunID() string {
	return xid.New().String()
}
