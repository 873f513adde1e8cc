// Package motion implements the mascot's motion: a per-frame state machine
// that steers, regulates and integrates a single body around a rest point.
//
// Each Advance evaluates four non-exclusive rules against the distance from the
// rest point measured at the start of the frame:
//
//  1. Homing - beyond GoHomeDistance, turn the velocity straight at the rest
//     point at bounded acceleration.
//  2. Turnaround - beyond TurnaroundDistance, pick a randomized heading biased
//     toward the rest point once, then accelerate along it until back inside.
//  3. Regulation - inside TargetSpeedRange, pull speed and spin toward their
//     cruise targets without overshooting.
//  4. Integration - position and rotation advance by their rates.
//
// Positions are measured in entity-lengths so the simulation never sees pixels;
// CoordinateMapper converts on the way out.
package motion

import (
	"math"
	"sync"

	"github.com/automoto/mascot/config"
	"github.com/automoto/mascot/gamemath"
)

// State is the kinematic state of the mascot.
type State struct {
	Position        gamemath.Vector2 // offset from the rest point, entity-lengths
	Rotation        float64          // degrees, kept in [0, 360)
	Velocity        gamemath.Vector2 // entity-lengths per second
	AngularVelocity float64          // degrees per second

	// TurnaroundDirection is a unit vector while TurnaroundInProgress is set.
	TurnaroundDirection  gamemath.Vector2
	TurnaroundInProgress bool
}

// Distance is the current distance from the rest point.
func (s State) Distance() float64 {
	return s.Position.Magnitude()
}

// Speed is the current linear speed.
func (s State) Speed() float64 {
	return s.Velocity.Magnitude()
}

// InitialState returns a state at rest point with a random heading at cruise
// speed and a random spin direction at cruise spin.
func InitialState(cfg config.Motion, rng gamemath.RandomSource) State {
	return State{
		Velocity:        gamemath.FromAngle(rng.AngleRadians(), cfg.TargetSpeed),
		AngularVelocity: rng.Sign(0.5) * cfg.TargetAngularSpeed,
	}
}

// SanitizeDelta maps a raw frame delta onto a usable value: NaN, infinite and
// negative deltas become 0. Upper clamping is the frame driver's concern.
func SanitizeDelta(dt float64) float64 {
	if !gamemath.IsFinite(dt) || dt < 0 {
		return 0
	}
	return dt
}

// Advance computes the next state. It reads randomness only from rng and has
// no other side effects.
func Advance(s State, cfg config.Motion, dt float64, rng gamemath.RandomSource) State {
	dt = SanitizeDelta(dt)
	d := s.Position.Magnitude()

	if d > cfg.GoHomeDistance {
		s.TurnaroundInProgress = false
		s.Velocity = steerHome(s, cfg, dt)
	} else if d > cfg.TurnaroundDistance && !s.TurnaroundInProgress {
		s.TurnaroundDirection = pickTurnaround(s.Position, cfg, rng)
		s.TurnaroundInProgress = true
	}

	if d > cfg.TurnaroundDistance && s.TurnaroundInProgress {
		s.Velocity = s.Velocity.Add(s.TurnaroundDirection.Scale(cfg.TurnaroundAcceleration * dt))
	}

	if d < cfg.TurnaroundDistance && s.TurnaroundInProgress {
		s.TurnaroundInProgress = false
	}

	if d < cfg.TargetSpeedRange {
		s.Velocity = regulateSpeed(s.Velocity, cfg, dt, rng)
		s.AngularVelocity = regulateSpin(s.AngularVelocity, cfg, dt, rng)
	}

	s.Position = s.Position.Add(s.Velocity.Scale(dt))
	s.Rotation = gamemath.WrapDegrees(s.Rotation + s.AngularVelocity*dt)
	return s
}

// steerHome moves velocity toward the homing velocity without overshooting it.
func steerHome(s State, cfg config.Motion, dt float64) gamemath.Vector2 {
	target := s.Position.Negate().Normalized().Scale(cfg.GoHomeTargetSpeed)
	diff := target.Sub(s.Velocity)
	step := math.Min(cfg.GoHomeAcceleration*dt, diff.Magnitude())
	return s.Velocity.Add(diff.Normalized().Scale(step))
}

// pickTurnaround returns a unit heading offset from the bearing to the rest point.
func pickTurnaround(position gamemath.Vector2, cfg config.Motion, rng gamemath.RandomSource) gamemath.Vector2 {
	bearing := position.Negate().AngleDegrees()
	offset := rng.Range(cfg.TurnaroundAngleMin, cfg.TurnaroundAngleMax)
	return gamemath.FromAngleDegrees(bearing+offset, 1)
}

// regulateSpeed eases v toward the target speed. A velocity of exactly zero
// has no direction to normalize, so it speeds up along a random heading
// instead of staying stopped; that costs one extra draw from rng.
func regulateSpeed(v gamemath.Vector2, cfg config.Motion, dt float64, rng gamemath.RandomSource) gamemath.Vector2 {
	speed := v.Magnitude()
	switch {
	case speed > cfg.TargetSpeed:
		dec := math.Min(cfg.SpeedCorrectionDeceleration*dt, speed-cfg.TargetSpeed)
		return v.Sub(v.Normalized().Scale(dec))
	case speed < cfg.TargetSpeed:
		acc := math.Min(cfg.SpeedCorrectionAcceleration*dt, cfg.TargetSpeed-speed)
		dir := v.Normalized()
		if speed == 0 {
			dir = gamemath.FromAngle(rng.AngleRadians(), 1)
		}
		return v.Add(dir.Scale(acc))
	}
	return v
}

func regulateSpin(w float64, cfg config.Motion, dt float64, rng gamemath.RandomSource) float64 {
	mag := math.Abs(w)
	switch {
	case mag > cfg.TargetAngularSpeed:
		w *= math.Pow(cfg.AngularDragCoefficient, dt*config.Frame.DragReferenceRate)
		if math.Abs(w) <= cfg.TargetAngularSpeed {
			w = gamemath.Sign(w) * cfg.TargetAngularSpeed
		}
	case mag < cfg.TargetAngularSpeed:
		acc := math.Min(cfg.AngularCorrectionAcceleration*dt, cfg.TargetAngularSpeed-mag)
		dir := gamemath.Sign(w)
		if w == 0 {
			dir = rng.Sign(0.5)
		}
		w += dir * acc
	}
	return w
}

// Impulse is an instantaneous change of velocity and spin.
type Impulse struct {
	Linear  gamemath.Vector2
	Angular float64
}

// Simulation owns the mascot's state. Step and ApplyImpulse each commit a
// whole read-modify-write under the lock, so an impulse landing between
// frames is never lost.
type Simulation struct {
	mu    sync.Mutex
	state State
	cfg   config.Motion
	rng   gamemath.RandomSource
}

// NewSimulation creates a simulation starting from InitialState.
func NewSimulation(cfg config.Motion, rng gamemath.RandomSource) *Simulation {
	return &Simulation{
		state: InitialState(cfg, rng),
		cfg:   cfg,
		rng:   rng,
	}
}

// NewSimulationFrom creates a simulation with an explicit starting state.
func NewSimulationFrom(s State, cfg config.Motion, rng gamemath.RandomSource) *Simulation {
	return &Simulation{state: s, cfg: cfg, rng: rng}
}

// Step advances the simulation by dt seconds.
func (s *Simulation) Step(dt float64) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Advance(s.state, s.cfg, dt, s.rng)
	return s.state
}

// ApplyImpulse adds an impulse to the latest state.
func (s *Simulation) ApplyImpulse(imp Impulse) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Velocity = s.state.Velocity.Add(imp.Linear)
	s.state.AngularVelocity += imp.Angular
	return s.state
}

// Reconfigure swaps the tunables, e.g. after a device-class change. The
// kinematic state carries over.
func (s *Simulation) Reconfigure(cfg config.Motion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

// State returns a snapshot of the current state.
func (s *Simulation) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Config returns the active tunables.
func (s *Simulation) Config() config.Motion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}
