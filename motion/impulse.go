package motion

import (
	"math"
	"time"

	"github.com/automoto/mascot/config"
	"github.com/automoto/mascot/gamemath"
)

// Pointer describes a tap or click against the mascot, all in screen pixels.
type Pointer struct {
	Event   gamemath.Vector2 // where the pointer went down
	Center  gamemath.Vector2 // mascot center on screen
	Radius  float64          // mascot radius on screen
	Compact bool             // device class at the time of the event
}

// ImpulseMapper turns pointer events into impulses.
type ImpulseMapper struct {
	Clock Clock

	// FlipPeriod is how long the compact spin direction holds before flipping.
	FlipPeriod time.Duration
}

// NewImpulseMapper returns a mapper reading wall time from clock.
func NewImpulseMapper(clock Clock) *ImpulseMapper {
	if clock == nil {
		clock = SystemClock{}
	}
	return &ImpulseMapper{Clock: clock, FlipPeriod: config.Frame.SpinFlipPeriod}
}

// Map computes the impulse for p under cfg.
//
// On compact devices a tap near the center spins hardest and a tap near the
// edge pushes hardest, and the spin direction alternates with wall time. On
// other devices a click at the center pushes hardest, a click at the edge spins
// hardest, and the spin direction follows the side that was clicked.
func (m *ImpulseMapper) Map(p Pointer, cfg config.Motion) Impulse {
	offset := p.Event.Sub(p.Center)
	n := normalizedDistance(offset, p.Radius)

	var linear, angular float64
	if p.Compact {
		linear = cfg.ClickLinearImpulseMax * n
		angular = cfg.ClickAngularImpulseMax * (1 - n) * m.compactSpinSign()
	} else {
		linear = cfg.ClickLinearImpulseMax * (1 - n)
		sign := 1.0
		if offset.X > 0 {
			sign = -1
		}
		angular = cfg.ClickAngularImpulseMax * n * sign
	}

	dir := p.Center.Sub(p.Event).Normalized()
	if dir == (gamemath.Vector2{}) {
		dir = gamemath.Vec(0, 1)
	}
	return Impulse{Linear: dir.Scale(linear), Angular: angular}
}

// Apply maps p and adds the result to sim.
func (m *ImpulseMapper) Apply(sim *Simulation, p Pointer) Impulse {
	imp := m.Map(p, sim.Config())
	sim.ApplyImpulse(imp)
	return imp
}

func (m *ImpulseMapper) compactSpinSign() float64 {
	period := m.FlipPeriod.Milliseconds()
	if period <= 0 {
		return -1
	}
	phase := int64(math.Floor(float64(m.Clock.Now().UnixMilli()) / float64(period)))
	if phase%2 == 0 {
		return -1
	}
	return 1
}

// normalizedDistance is |offset|/radius capped at 1. A non-positive radius
// counts every off-center event as an edge hit.
func normalizedDistance(offset gamemath.Vector2, radius float64) float64 {
	dist := offset.Magnitude()
	if radius <= 0 {
		if dist == 0 {
			return 0
		}
		return 1
	}
	return math.Min(dist/radius, 1)
}
