package systems

import (
	"github.com/automoto/mascot/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion runs the frame callbacks queued by each mascot's driver,
// stamped with the current wall time.
func UpdateMotion(e *ecs.ECS) {
	components.Mascot.Each(e.World, func(entry *donburi.Entry) {
		mascot := components.Mascot.Get(entry)
		mascot.Frames.Pump(mascot.Clock.Now())
	})
}

// StopMotion cancels every pending frame so nothing steps a torn-down scene.
func StopMotion(e *ecs.ECS) {
	components.Mascot.Each(e.World, func(entry *donburi.Entry) {
		components.Mascot.Get(entry).Driver.Stop()
	})
}
