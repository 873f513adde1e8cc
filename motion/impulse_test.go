package motion

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/mascot/config"
	"github.com/automoto/mascot/gamemath"
)

func newTestMapper(ms int64) (*ImpulseMapper, *ManualClock) {
	clock := NewManualClock(time.UnixMilli(ms))
	m := NewImpulseMapper(clock)
	m.FlipPeriod = 7 * time.Second
	return m, clock
}

func TestImpulseDesktopSymmetry(t *testing.T) {
	cfg := config.DefaultMotion()
	m, _ := newTestMapper(0)
	center := gamemath.Vec(400, 300)

	tests := []struct {
		name        string
		event       gamemath.Vector2
		wantLinear  gamemath.Vector2
		wantAngular float64
	}{
		{"center pushes hardest, default down", center, gamemath.Vec(0, cfg.ClickLinearImpulseMax), 0},
		{"right edge spins clockwise-negative", center.Add(gamemath.Vec(50, 0)), gamemath.Vec(0, 0), -cfg.ClickAngularImpulseMax},
		{"left edge spins positive", center.Add(gamemath.Vec(-50, 0)), gamemath.Vec(0, 0), cfg.ClickAngularImpulseMax},
		{"outside clamps to edge", center.Add(gamemath.Vec(0, 500)), gamemath.Vec(0, 0), cfg.ClickAngularImpulseMax},
		{"inside pushes away from click", center.Add(gamemath.Vec(10, 0)), gamemath.Vec(-cfg.ClickLinearImpulseMax*0.8, 0), -cfg.ClickAngularImpulseMax * 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imp := m.Map(Pointer{Event: tt.event, Center: center, Radius: 50}, cfg)
			if !imp.Linear.Equals(tt.wantLinear, eps) {
				t.Errorf("Linear = %v, want %v", imp.Linear, tt.wantLinear)
			}
			if math.Abs(imp.Angular-tt.wantAngular) > eps {
				t.Errorf("Angular = %v, want %v", imp.Angular, tt.wantAngular)
			}
		})
	}
}

func TestImpulseDesktopMagnitudes(t *testing.T) {
	cfg := config.DefaultMotion()
	m, _ := newTestMapper(0)
	center := gamemath.Vec(0, 0)

	centerHit := m.Map(Pointer{Event: center, Center: center, Radius: 40}, cfg)
	if got := centerHit.Linear.Magnitude(); math.Abs(got-cfg.ClickLinearImpulseMax) > eps {
		t.Errorf("Center linear magnitude = %v, want %v", got, cfg.ClickLinearImpulseMax)
	}
	if centerHit.Angular != 0 {
		t.Errorf("Center angular = %v, want 0", centerHit.Angular)
	}

	edgeHit := m.Map(Pointer{Event: gamemath.Vec(-40, 0), Center: center, Radius: 40}, cfg)
	if got := edgeHit.Linear.Magnitude(); got > eps {
		t.Errorf("Edge linear magnitude = %v, want 0", got)
	}
	if math.Abs(edgeHit.Angular) != cfg.ClickAngularImpulseMax {
		t.Errorf("Edge angular = %v, want magnitude %v", edgeHit.Angular, cfg.ClickAngularImpulseMax)
	}
}

func TestImpulseCompactMapping(t *testing.T) {
	cfg := config.CompactMotion()
	m, _ := newTestMapper(0)
	center := gamemath.Vec(100, 100)

	tap := m.Map(Pointer{Event: center, Center: center, Radius: 30, Compact: true}, cfg)
	if got := tap.Linear.Magnitude(); got != 0 {
		t.Errorf("Center tap linear = %v, want 0", got)
	}
	if tap.Angular != -cfg.ClickAngularImpulseMax {
		t.Errorf("Center tap angular = %v, want %v", tap.Angular, -cfg.ClickAngularImpulseMax)
	}

	edge := m.Map(Pointer{Event: center.Add(gamemath.Vec(0, -30)), Center: center, Radius: 30, Compact: true}, cfg)
	if !edge.Linear.Equals(gamemath.Vec(0, cfg.ClickLinearImpulseMax), eps) {
		t.Errorf("Edge tap linear = %v, want push down", edge.Linear)
	}
	if math.Abs(edge.Angular) > eps {
		t.Errorf("Edge tap angular = %v, want 0", edge.Angular)
	}
}

func TestImpulseCompactSpinFlipsWithWallClock(t *testing.T) {
	cfg := config.CompactMotion()
	m, clock := newTestMapper(0)
	p := Pointer{Event: gamemath.Vec(5, 5), Center: gamemath.Vec(5, 5), Radius: 10, Compact: true}

	tests := []struct {
		ms   int64
		sign float64
	}{
		{0, -1},
		{6999, -1},
		{7000, 1},
		{13999, 1},
		{14000, -1},
		{21000, 1},
	}
	for _, tt := range tests {
		clock.Set(time.UnixMilli(tt.ms))
		imp := m.Map(p, cfg)
		if gamemath.Sign(imp.Angular) != tt.sign {
			t.Errorf("At %dms angular = %v, want sign %v", tt.ms, imp.Angular, tt.sign)
		}
	}
}

func TestImpulseCompactIgnoresClickSide(t *testing.T) {
	cfg := config.CompactMotion()
	m, _ := newTestMapper(0)
	center := gamemath.Vec(0, 0)

	left := m.Map(Pointer{Event: gamemath.Vec(-5, 0), Center: center, Radius: 20, Compact: true}, cfg)
	right := m.Map(Pointer{Event: gamemath.Vec(5, 0), Center: center, Radius: 20, Compact: true}, cfg)
	if left.Angular != right.Angular {
		t.Errorf("Compact spin depends on side: left %v, right %v", left.Angular, right.Angular)
	}
}

func TestImpulseZeroRadius(t *testing.T) {
	cfg := config.DefaultMotion()
	m, _ := newTestMapper(0)

	off := m.Map(Pointer{Event: gamemath.Vec(3, 4), Center: gamemath.Vec(0, 0), Radius: 0}, cfg)
	if !off.Linear.IsFinite() || !gamemath.IsFinite(off.Angular) {
		t.Fatalf("Non-finite impulse for zero radius: %+v", off)
	}
	if math.Abs(off.Angular) != cfg.ClickAngularImpulseMax {
		t.Errorf("Zero radius off-center angular = %v, want edge value", off.Angular)
	}

	centered := m.Map(Pointer{Event: gamemath.Vec(0, 0), Center: gamemath.Vec(0, 0), Radius: 0}, cfg)
	if got := centered.Linear.Magnitude(); math.Abs(got-cfg.ClickLinearImpulseMax) > eps {
		t.Errorf("Zero radius centered linear = %v, want %v", got, cfg.ClickLinearImpulseMax)
	}
}

func TestImpulseApplyAddsToSimulation(t *testing.T) {
	cfg := config.DefaultMotion()
	m, _ := newTestMapper(0)
	start := State{Velocity: gamemath.Vec(0.1, 0), AngularVelocity: 20}
	sim := NewSimulationFrom(start, cfg, gamemath.NewSequence(0.5))

	imp := m.Apply(sim, Pointer{Event: gamemath.Vec(60, 0), Center: gamemath.Vec(50, 0), Radius: 20})

	got := sim.State()
	if !got.Velocity.Equals(start.Velocity.Add(imp.Linear), eps) {
		t.Errorf("Velocity = %v, want %v", got.Velocity, start.Velocity.Add(imp.Linear))
	}
	if got.AngularVelocity != start.AngularVelocity+imp.Angular {
		t.Errorf("Spin = %v, want %v", got.AngularVelocity, start.AngularVelocity+imp.Angular)
	}
	if got.Position != start.Position {
		t.Error("Impulse must not move the mascot by itself")
	}
}
