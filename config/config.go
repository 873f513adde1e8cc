package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

// ErrInvalidBands is returned when the motion radii do not nest as
// turnaround < regulation < go-home.
var ErrInvalidBands = errors.New("motion bands must satisfy turnaround < target speed range < go home")

// Motion holds the tunables of the mascot simulation. Distances are in
// entity-lengths, speeds in entity-lengths per second, angles in degrees.
// It is a value type: pick one with MotionFor and pass it to the simulation.
type Motion struct {
	// Turnaround: steer back onto a randomized heading when drifting past this radius
	TurnaroundDistance     float64
	TurnaroundAcceleration float64
	TurnaroundAngleMin     float64 // offset from the bearing to the rest point
	TurnaroundAngleMax     float64

	// Homing: beyond this radius steer straight back at bounded acceleration
	GoHomeDistance     float64
	GoHomeAcceleration float64
	GoHomeTargetSpeed  float64

	// Cruise regulation inside TargetSpeedRange
	TargetSpeed        float64
	TargetAngularSpeed float64
	TargetSpeedRange   float64

	SpeedCorrectionAcceleration   float64
	SpeedCorrectionDeceleration   float64 // much larger than acceleration so overshoot settles fast
	AngularCorrectionAcceleration float64
	AngularDragCoefficient        float64 // per 1/60 s

	// Click impulse caps
	ClickLinearImpulseMax  float64
	ClickAngularImpulseMax float64
}

// Validate checks that the radius bands compose.
func (m Motion) Validate() error {
	if !(m.TurnaroundDistance < m.TargetSpeedRange && m.TargetSpeedRange < m.GoHomeDistance) {
		return fmt.Errorf("%w: got %.3f, %.3f, %.3f", ErrInvalidBands,
			m.TurnaroundDistance, m.TargetSpeedRange, m.GoHomeDistance)
	}
	if m.TurnaroundAngleMin > m.TurnaroundAngleMax {
		return fmt.Errorf("turnaround angle min %.1f exceeds max %.1f", m.TurnaroundAngleMin, m.TurnaroundAngleMax)
	}
	return nil
}

// DefaultMotion is the table used on regular displays.
func DefaultMotion() Motion {
	return Motion{
		TurnaroundDistance:     0.3,
		TurnaroundAcceleration: 0.25,
		TurnaroundAngleMin:     30,
		TurnaroundAngleMax:     80,

		GoHomeDistance:     0.8,
		GoHomeAcceleration: 1.0,
		GoHomeTargetSpeed:  0.3,

		TargetSpeed:        0.12,
		TargetAngularSpeed: 25,
		TargetSpeedRange:   0.5,

		SpeedCorrectionAcceleration:   0.05,
		SpeedCorrectionDeceleration:   0.6,
		AngularCorrectionAcceleration: 10,
		AngularDragCoefficient:        0.98,

		ClickLinearImpulseMax:  1.2,
		ClickAngularImpulseMax: 540,
	}
}

// CompactMotion slows cruising down for small viewports. Only the two
// target speeds differ from DefaultMotion.
func CompactMotion() Motion {
	m := DefaultMotion()
	m.TargetSpeed = 0.07
	m.TargetAngularSpeed = 18
	return m
}

// MotionFor selects the table for a device class.
func MotionFor(compact bool) Motion {
	if compact {
		return CompactMotion()
	}
	return DefaultMotion()
}

// FrameConfig contains frame timing configuration
type FrameConfig struct {
	MaxDeltaTime      float64       // seconds integrated per frame at most
	DragReferenceRate float64       // updates per second the drag coefficient is tuned for
	SpinFlipPeriod    time.Duration // compact-device spin direction toggle
	TickRate          int           // terminal frontend ticks per second
}

// UIConfig contains layout and rendering configuration
type UIConfig struct {
	EntityViewportFraction        float64 // mascot size relative to the shorter viewport side
	CompactEntityViewportFraction float64
	CompactMaxWidth               int // viewports narrower than this count as compact

	BackgroundColor color.RGBA
	MascotBody      color.RGBA
	MascotOutline   color.RGBA
	MascotFace      color.RGBA

	// Debug overlay
	TurnaroundBandColor color.RGBA
	RegulationBandColor color.RGBA
	GoHomeBandColor     color.RGBA
	VelocityColor       color.RGBA
	HUDTextColor        color.RGBA
	HUDTextBgColor      color.RGBA
	HUDFontSize         float64
	VelocityArrowScale  float64 // seconds of travel drawn for the velocity arrow
}

// SquashConfig contains the click "pop" and spawn fade tweens
type SquashConfig struct {
	PopScale        float32 // scale reached on click
	PopDuration     float32 // seconds to squash
	RecoverDuration float32 // seconds to spring back
	FadeInDuration  float32
}

type DebugConfig struct {
	ShowOverlay bool // start with the overlay visible
}

type Config struct {
	Width  int
	Height int
	Title  string
}

var C *Config
var Frame FrameConfig
var UI UIConfig
var Squash SquashConfig
var Debug DebugConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 720,
		Title:  "Terry",
	}

	Frame = FrameConfig{
		MaxDeltaTime:      0.3,
		DragReferenceRate: 60,
		SpinFlipPeriod:    7 * time.Second,
		TickRate:          60,
	}

	UI = UIConfig{
		EntityViewportFraction:        0.45,
		CompactEntityViewportFraction: 0.7,
		CompactMaxWidth:               600,

		BackgroundColor: color.RGBA{R: 24, G: 22, B: 38, A: 255},
		MascotBody:      color.RGBA{R: 255, G: 196, B: 70, A: 255},
		MascotOutline:   color.RGBA{R: 120, G: 70, B: 20, A: 255},
		MascotFace:      color.RGBA{R: 40, G: 24, B: 10, A: 255},

		TurnaroundBandColor: LightBlue,
		RegulationBandColor: LightGreen,
		GoHomeBandColor:     Orange,
		VelocityColor:       Red,
		HUDTextColor:        White,
		HUDTextBgColor:      BlackOverlay,
		HUDFontSize:         13,
		VelocityArrowScale:  2,
	}

	Squash = SquashConfig{
		PopScale:        0.86,
		PopDuration:     0.06,
		RecoverDuration: 0.4,
		FadeInDuration:  0.6,
	}

	Debug = DebugConfig{
		ShowOverlay: false,
	}
}
