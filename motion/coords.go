package motion

import (
	"sync"

	"github.com/automoto/mascot/gamemath"
)

// Transform is what the renderer applies to the mascot each frame.
type Transform struct {
	Translation gamemath.Vector2 // pixels from the rest point
	Rotation    float64          // degrees
}

// CoordinateMapper converts entity-lengths to pixels using the measured
// on-screen size of the mascot (assumed square).
type CoordinateMapper struct {
	mu   sync.RWMutex
	size float64
}

// SetEntitySize records the mascot's on-screen size in pixels.
func (m *CoordinateMapper) SetEntitySize(px float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.size = px
}

func (m *CoordinateMapper) EntitySize() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.size
}

// ToPixels converts a distance in entity-lengths to pixels.
func (m *CoordinateMapper) ToPixels(units float64) float64 {
	return units * m.EntitySize()
}

// ToUnits converts pixels to entity-lengths; 0 until a size is measured.
func (m *CoordinateMapper) ToUnits(px float64) float64 {
	size := m.EntitySize()
	if size <= 0 {
		return 0
	}
	return px / size
}

// Translate converts a simulation position to a pixel offset.
func (m *CoordinateMapper) Translate(position gamemath.Vector2) gamemath.Vector2 {
	return position.Scale(m.EntitySize())
}

// Transform builds the render transform for s.
func (m *CoordinateMapper) Transform(s State) Transform {
	return Transform{
		Translation: m.Translate(s.Position),
		Rotation:    s.Rotation,
	}
}
