package gamemath

import (
	"errors"
	"testing"
)

func TestRandomRangeBounds(t *testing.T) {
	r := NewRandom(42)
	for i := 0; i < 10000; i++ {
		v := r.Range(-3.5, 12)
		if v < -3.5 || v >= 12 {
			t.Fatalf("Range(-3.5, 12) = %v on draw %d, outside [-3.5, 12)", v, i)
		}
	}
}

func TestRandomIntegerInclusive(t *testing.T) {
	r := NewRandom(7)
	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		v := r.Integer(1, 3)
		if v < 1 || v > 3 {
			t.Fatalf("Integer(1, 3) = %d, outside [1, 3]", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected all of 1..3 to appear, saw %v", seen)
	}
}

func TestRandomDeterministicPerSeed(t *testing.T) {
	a, b := NewRandom(99), NewRandom(99)
	for i := 0; i < 100; i++ {
		if x, y := a.Value(), b.Value(); x != y {
			t.Fatalf("Draw %d differs for equal seeds: %v vs %v", i, x, y)
		}
	}
}

func TestChoice(t *testing.T) {
	src := NewSequence(0, 0.5, 0.99)
	items := []string{"a", "b", "c"}
	want := []string{"a", "b", "c"}
	for i, w := range want {
		got, err := Choice(src, items)
		if err != nil {
			t.Fatalf("Choice draw %d: unexpected error %v", i, err)
		}
		if got != w {
			t.Errorf("Choice draw %d = %q, want %q", i, got, w)
		}
	}
}

func TestChoiceEmpty(t *testing.T) {
	_, err := Choice[int](NewRandom(1), nil)
	if !errors.Is(err, ErrEmptyChoice) {
		t.Errorf("Choice on empty set: got %v, want ErrEmptyChoice", err)
	}
}

func TestSequenceDerivedDraws(t *testing.T) {
	s := NewSequence(0.25, 0.75, 1.5, -1)

	if got := s.Range(10, 20); got != 12.5 {
		t.Errorf("Range = %v, want 12.5", got)
	}
	if got := s.Sign(0.5); got != -1 {
		t.Errorf("Sign with draw 0.75 = %v, want -1", got)
	}
	if got := s.Value(); got >= 1 {
		t.Errorf("Value clamps draws >= 1, got %v", got)
	}
	if got := s.AngleDegrees(); got != 0 {
		t.Errorf("AngleDegrees with negative draw = %v, want 0", got)
	}
	// wraps
	if got := s.Value(); got != 0.25 {
		t.Errorf("Value after wrap = %v, want 0.25", got)
	}
	if s.Drawn() != 5 {
		t.Errorf("Drawn = %d, want 5", s.Drawn())
	}
}
