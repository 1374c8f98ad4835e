package unit

// StateVar is a state variable with a committed value and a pending value.
// Models compute every pending value from committed values and then commit
// them all, so that no update reads a value written in the same step.
type StateVar struct {
	Value float64
	New   float64
}

// Set sets both the committed and the pending value.
func (s *StateVar) Set(v float64) {
	s.Value = v
	s.New = v
}

// Commit makes the pending value the committed value.
func (s *StateVar) Commit() {
	s.Value = s.New
}

// CommitAll commits a group of state variables.
func CommitAll(vars ...*StateVar) {
	for _, v := range vars {
		v.Commit()
	}
}
