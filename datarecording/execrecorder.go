package datarecording

import (
	"os"
	"strings"
	"time"
)

// ExecInfoTable is the table that holds run metadata.
const ExecInfoTable = "exec_info"

const execTimeFormat = "2006-01-02 15:04:05.000000000"

// ExecInfo is one property of a run.
type ExecInfo struct {
	Property string
	Value    string
}

// ExecRecorder records when and how a run was started.
type ExecRecorder struct {
	recorder DataRecorder
	entries  []ExecInfo
	started  bool
}

// NewExecRecorder creates the exec_info table on the recorder.
func NewExecRecorder(recorder DataRecorder) *ExecRecorder {
	recorder.CreateTable(ExecInfoTable, ExecInfo{})

	return &ExecRecorder{recorder: recorder}
}

// Start remembers the start time, the command line and the working
// directory. Extra properties, such as the run id or the scenario, follow.
func (e *ExecRecorder) Start(extra ...ExecInfo) {
	e.entries = append(e.entries,
		ExecInfo{"Start Time", time.Now().Format(execTimeFormat)},
		ExecInfo{"Command", strings.Join(os.Args, " ")},
	)

	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	e.entries = append(e.entries, ExecInfo{"Working Directory", cwd})
	e.entries = append(e.entries, extra...)
	e.started = true
}

// End writes the remembered properties along with the end time.
func (e *ExecRecorder) End() {
	if !e.started {
		return
	}

	for _, entry := range e.entries {
		e.recorder.InsertData(ExecInfoTable, entry)
	}

	e.recorder.InsertData(ExecInfoTable,
		ExecInfo{"End Time", time.Now().Format(execTimeFormat)})

	e.entries = nil
	e.started = false

	e.recorder.Flush()
}
