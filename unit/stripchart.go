package unit

// StripChart keeps the most recent samples of one variable, the way a strip
// chart recorder shows the recent history of a signal.
type StripChart struct {
	times  []float64
	values []float64
	head   int
	size   int
}

// NewStripChart creates a strip chart that keeps up to capacity samples.
func NewStripChart(capacity int) *StripChart {
	if capacity < 1 {
		panic("strip chart capacity must be at least 1")
	}

	return &StripChart{
		times:  make([]float64, capacity),
		values: make([]float64, capacity),
	}
}

// Push appends a sample, dropping the oldest one when full.
func (s *StripChart) Push(t, v float64) {
	s.times[s.head] = t
	s.values[s.head] = v
	s.head = (s.head + 1) % len(s.times)

	if s.size < len(s.times) {
		s.size++
	}
}

// Len returns the number of samples kept.
func (s *StripChart) Len() int {
	return s.size
}

// Capacity returns the maximum number of samples kept.
func (s *StripChart) Capacity() int {
	return len(s.times)
}

// Clear drops all samples.
func (s *StripChart) Clear() {
	s.head = 0
	s.size = 0
}

// Samples returns the samples from oldest to newest.
func (s *StripChart) Samples() (times, values []float64) {
	times = make([]float64, s.size)
	values = make([]float64, s.size)
	start := (s.head - s.size + len(s.times)) % len(s.times)

	for i := 0; i < s.size; i++ {
		j := (start + i) % len(s.times)
		times[i] = s.times[j]
		values[i] = s.values[j]
	}

	return times, values
}
