package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashData drives the click pop and spawn fade. It only changes how the
// mascot is drawn.
type SquashData struct {
	Pop   *gween.Sequence // nil when idle
	Fade  *gween.Tween    // nil once fully visible
	Scale float32
	Alpha float32
}

var Squash = donburi.NewComponentType[SquashData]()
