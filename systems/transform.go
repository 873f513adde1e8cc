package systems

import (
	"github.com/automoto/mascot/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateTransform maps the latest simulation state to pixels.
func UpdateTransform(e *ecs.ECS) {
	components.Mascot.Each(e.World, func(entry *donburi.Entry) {
		mascot := components.Mascot.Get(entry)
		tr := mascot.Mapper.Transform(mascot.Sim.State())
		components.Transform.SetValue(entry, components.TransformData{
			Offset:   math.NewVec2(tr.Translation.X, tr.Translation.Y),
			Rotation: tr.Rotation,
		})
	})
}
