package gamemath

import (
	"errors"
	"math"
	"math/rand/v2"
)

// ErrEmptyChoice is returned when choosing from an empty set.
var ErrEmptyChoice = errors.New("cannot pick from empty set")

// RandomSource is the uniform random capability used by the simulation.
// Every derived draw is built from Value, so a source only has to supply that
// to be deterministic.
type RandomSource interface {
	// Value returns a uniform draw in [0, 1).
	Value() float64
	// Range returns a uniform draw in [min, max).
	Range(min, max float64) float64
	// Integer returns a uniform integer in [min, max], both inclusive.
	Integer(min, max int) int
	// Chance returns true with probability p.
	Chance(p float64) bool
	AngleRadians() float64
	AngleDegrees() float64
	// Sign returns 1 with probability p, otherwise -1.
	Sign(p float64) float64
}

// Choice picks a uniformly random element of items.
func Choice[T any](src RandomSource, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyChoice
	}
	i := int(src.Value() * float64(len(items)))
	if i >= len(items) {
		i = len(items) - 1
	}
	return items[i], nil
}

// drawer derives every RandomSource operation from a single Value function.
type drawer struct {
	value func() float64
}

func (d drawer) Value() float64 {
	return d.value()
}

func (d drawer) Range(min, max float64) float64 {
	v := d.value()*(max-min) + min
	// rounding can land exactly on max for draws just below 1
	if max > min && v >= max {
		return math.Nextafter(max, min)
	}
	return v
}

func (d drawer) Integer(min, max int) int {
	return int(math.Floor(d.value()*float64(max-min+1))) + min
}

func (d drawer) Chance(p float64) bool {
	return d.value() < p
}

func (d drawer) AngleRadians() float64 {
	return d.value() * 2 * math.Pi
}

func (d drawer) AngleDegrees() float64 {
	return d.value() * 360
}

func (d drawer) Sign(p float64) float64 {
	if d.Chance(p) {
		return 1
	}
	return -1
}

// Random is a RandomSource backed by a seeded PCG generator.
type Random struct {
	drawer
	rng *rand.Rand
}

// NewRandom creates a generator with a fixed seed.
func NewRandom(seed uint64) *Random {
	r := &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	r.drawer = drawer{value: r.rng.Float64}
	return r
}

// NewRandomUnseeded creates a generator seeded from the runtime's entropy.
func NewRandomUnseeded() *Random {
	return NewRandom(rand.Uint64())
}
