package main

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/mascot/config"
	"github.com/automoto/mascot/gamemath"
	"github.com/automoto/mascot/motion"
	"github.com/gdamore/tcell/v2"
)

func newTestApp(t *testing.T, cols, rows int) (*app, *motion.ManualClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)

	clock := motion.NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	a := newApp(screen, appOptions{Rand: gamemath.NewSequence(0.25, 0.75), Clock: clock, Muted: true})
	return a, clock
}

func TestViewportGeometry(t *testing.T) {
	v := viewport{cols: 80, rows: 20}

	if c := v.center(); c != gamemath.Vec(40, 20) {
		t.Errorf("Expected center (40, 20), got %v", c)
	}
	want := 40 * config.UI.EntityViewportFraction
	if got := v.entitySize(false); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected entity size %v, got %v", want, got)
	}
	if got := (viewport{}).entitySize(true); got != 0 {
		t.Errorf("Expected zero size for an empty viewport, got %v", got)
	}
	if p := cellToPixel(3, 4); p != gamemath.Vec(3.5, 9) {
		t.Errorf("Expected (3.5, 9), got %v", p)
	}
}

func TestClassify(t *testing.T) {
	r := 10.0
	tests := []struct {
		name  string
		local gamemath.Vector2
		want  cellKind
	}{
		{"outside", gamemath.Vec(11, 0), cellEmpty},
		{"center", gamemath.Vec(0, 0), cellBody},
		{"rim", gamemath.Vec(9.5, 0), cellOutline},
		{"left eye", gamemath.Vec(-3.5, -2), cellFace},
		{"smile", gamemath.Vec(0, 5), cellFace},
		{"forehead", gamemath.Vec(0, -6), cellBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.local, r); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
	if got := classify(gamemath.Vec(0, 0), 0); got != cellEmpty {
		t.Errorf("Expected empty for zero radius, got %v", got)
	}
}

func TestPressOnMascotAppliesImpulse(t *testing.T) {
	a, _ := newTestApp(t, 80, 25)
	before := a.sim.State()

	// left of center on the mascot: pushes right and spins positive
	hit := a.mascotCenter().Add(gamemath.Vec(-a.mapper.EntitySize()/4, 0))
	if !a.press(hit) {
		t.Fatal("Expected the press to hit the mascot")
	}

	after := a.sim.State()
	if after.Velocity.X <= before.Velocity.X {
		t.Errorf("Expected a push to the right, velocity %v -> %v", before.Velocity, after.Velocity)
	}
	if after.AngularVelocity <= before.AngularVelocity {
		t.Errorf("Expected positive spin impulse, %v -> %v", before.AngularVelocity, after.AngularVelocity)
	}
}

func TestPressOffMascotIsIgnored(t *testing.T) {
	a, _ := newTestApp(t, 80, 25)
	before := a.sim.State()

	if a.press(gamemath.Vec(0, 0)) {
		t.Error("Expected a corner press to miss")
	}
	if a.sim.State() != before {
		t.Error("A miss must not change the simulation")
	}
}

func TestMouseEventsUsePressEdges(t *testing.T) {
	a, _ := newTestApp(t, 80, 25)
	c := a.view.center()
	col, row := int(c.X), int(c.Y/cellAspect)

	a.handleEvent(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	first := a.sim.State()
	a.handleEvent(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	if a.sim.State() != first {
		t.Error("Holding the button must not apply a second impulse")
	}

	a.handleEvent(tcell.NewEventMouse(col, row, tcell.ButtonNone, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	if a.sim.State() == first {
		t.Error("A new press should apply another impulse")
	}
}

func TestKeysToggleState(t *testing.T) {
	a, clock := newTestApp(t, 80, 25)

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if !a.reduced {
		t.Fatal("Expected reduced motion after 'r'")
	}
	start := a.sim.State()
	for i := 0; i < 3; i++ {
		clock.Advance(16 * time.Millisecond)
		a.tick()
	}
	if a.sim.State() != start {
		t.Error("Reduced motion must freeze the mascot")
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	if !a.compact {
		t.Fatal("Expected compact after 'c'")
	}
	if got := a.sim.Config(); got != config.CompactMotion() {
		t.Errorf("Expected the compact table, got %+v", got)
	}

	if a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("Expected 'q' to quit")
	}
}

func TestTickAdvancesSimulation(t *testing.T) {
	a, clock := newTestApp(t, 80, 25)
	start := a.sim.State()

	a.tick() // first frame records the timestamp
	clock.Advance(16 * time.Millisecond)
	a.tick()

	if a.sim.State() == start {
		t.Error("Expected the mascot to move")
	}
	if got := a.driver.LastDelta(); math.Abs(got-0.016) > 1e-9 {
		t.Errorf("Expected delta 0.016, got %v", got)
	}
}

func TestMutedStartKeepsPlayerForUnmute(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)

	player := &blipPlayer{}
	a := newApp(screen, appOptions{Rand: gamemath.NewSequence(0.5), Muted: true, Sound: player})
	if !a.muted {
		t.Fatal("Expected the app to start muted")
	}
	if a.sound != player {
		t.Fatal("Expected a muted app to keep its player")
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	if a.muted {
		t.Error("Expected 'm' to unmute")
	}
	if a.sound != player {
		t.Error("Expected unmuting to play through the same player")
	}
}

func TestStopEndsRun(t *testing.T) {
	a, _ := newTestApp(t, 80, 25)

	done := make(chan struct{})
	go func() {
		a.Run(60)
		close(done)
	}()

	a.Stop()
	a.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
