package gamemath

import "math"

// Sequence is a RandomSource that replays a fixed list of draws, wrapping
// around at the end. Used wherever a deterministic source is needed.
type Sequence struct {
	drawer
	values []float64
	next   int
	drawn  int
}

// NewSequence returns a source replaying values. Draws are clamped into [0, 1).
// An empty list always draws 0.
func NewSequence(values ...float64) *Sequence {
	s := &Sequence{values: append([]float64(nil), values...)}
	s.drawer = drawer{value: s.pop}
	return s
}

func (s *Sequence) pop() float64 {
	s.drawn++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v >= 1:
		return math.Nextafter(1, 0)
	}
	return v
}

// Drawn reports how many draws have been taken.
func (s *Sequence) Drawn() int {
	return s.drawn
}
