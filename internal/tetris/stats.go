package tetris

import "github.com/kamstrup/intmap"

// Stats counts spawned pieces per kind for the current attempt.
type Stats struct {
	counts *intmap.Map[Kind, int]
}

// NewStats creates empty statistics.
func NewStats() *Stats {
	return &Stats{counts: intmap.New[Kind, int](NumKinds)}
}

// Record counts one spawn of kind k.
func (s *Stats) Record(k Kind) {
	n, _ := s.counts.Get(k)
	s.counts.Put(k, n+1)
}

// Count returns how many pieces of kind k have spawned.
func (s *Stats) Count(k Kind) int {
	n, _ := s.counts.Get(k)
	return n
}

// Counts returns the spawn count of every kind, in Kind order.
func (s *Stats) Counts() [NumKinds]int {
	var out [NumKinds]int
	for k := range Kind(NumKinds) {
		out[k] = s.Count(k)
	}
	return out
}

// Total returns the number of spawned pieces.
func (s *Stats) Total() int {
	total := 0
	for _, n := range s.Counts() {
		total += n
	}
	return total
}

// Reset forgets all counts.
func (s *Stats) Reset() {
	s.counts = intmap.New[Kind, int](NumKinds)
}
