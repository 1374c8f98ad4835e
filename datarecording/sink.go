package datarecording

import (
	"github.com/sarchlab/procsim/unit"
)

// Sample is one published scalar.
type Sample struct {
	Time     float64
	Unit     string
	Variable string
	Value    float64
}

// ProfileNode is the value of one node of a published profile.
type ProfileNode struct {
	Time     float64
	Unit     string
	Variable string
	Node     int
	Value    float64
}

// Table names used by Sink.
const (
	SamplesTable  = "samples"
	ProfilesTable = "profiles"
)

// Sink is a unit.DisplaySink that records every published value.
type Sink struct {
	recorder DataRecorder
}

// NewSink creates the samples and profiles tables on the recorder and returns
// a sink that fills them.
func NewSink(recorder DataRecorder) *Sink {
	recorder.CreateTable(SamplesTable, Sample{})
	recorder.CreateTable(ProfilesTable, ProfileNode{})

	return &Sink{recorder: recorder}
}

// Publish implements unit.DisplaySink.
func (s *Sink) Publish(unitName, variable string, value unit.Value) {
	if !value.IsProfile() {
		s.recorder.InsertData(SamplesTable, Sample{
			Time:     value.Time,
			Unit:     unitName,
			Variable: variable,
			Value:    value.Scalar,
		})

		return
	}

	for i, v := range value.Profile {
		s.recorder.InsertData(ProfilesTable, ProfileNode{
			Time:     value.Time,
			Unit:     unitName,
			Variable: variable,
			Node:     i,
			Value:    v,
		})
	}
}

// Flush writes buffered rows to the database.
func (s *Sink) Flush() {
	s.recorder.Flush()
}
