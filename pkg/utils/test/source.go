package testutils

// SequenceSource is a greeter.Source that replays fixed values, each reduced
// modulo n. It is not safe for concurrent use on its own; the greeter
// serializes access to injected sources.
type SequenceSource struct {
	values []int
	next   int
}

// NewSequenceSource returns a source cycling through values.
func NewSequenceSource(values ...int) *SequenceSource {
	if len(values) == 0 {
		values = []int{0}
	}
	return &SequenceSource{values: values}
}

func (s *SequenceSource) IntN(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}
