package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is the mascot's on-screen placement. Offset is in pixels
// from the viewport center, Rotation in degrees.
type TransformData struct {
	Offset   math.Vec2
	Rotation float64
}

var Transform = donburi.NewComponentType[TransformData]()
