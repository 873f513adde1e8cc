package systems

import (
	"log"
	"math"

	"github.com/automoto/mascot/components"
	cfg "github.com/automoto/mascot/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLayout sizes the mascot for the viewport and switches the motion
// table when the device class changes.
func UpdateLayout(e *ecs.ECS) {
	display := GetOrCreateDisplay(e)

	components.Mascot.Each(e.World, func(entry *donburi.Entry) {
		mascot := components.Mascot.Get(entry)
		sprite := components.Sprite.Get(entry)

		size := entitySize(display.Width, display.Height, display.Compact)
		mascot.Mapper.SetEntitySize(size)
		sprite.Size = size

		if mascot.Compact != display.Compact {
			mascot.Compact = display.Compact
			mascot.Sim.Reconfigure(cfg.MotionFor(display.Compact))
			log.Printf("Device class changed, compact: %v", display.Compact)
		}
	})
}

// entitySize is the on-screen edge length of the mascot in pixels.
func entitySize(width, height int, compact bool) float64 {
	fraction := cfg.UI.EntityViewportFraction
	if compact {
		fraction = cfg.UI.CompactEntityViewportFraction
	}
	return math.Max(0, float64(min(width, height))*fraction)
}
