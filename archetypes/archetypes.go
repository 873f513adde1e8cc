package archetypes

import (
	"github.com/automoto/mascot/components"
	fcfg "github.com/automoto/mascot/config/frontend"
	"github.com/automoto/mascot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Mascot = newArchetype(
		tags.Mascot,
		components.Mascot,
		components.Transform,
		components.Sprite,
		components.Squash,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Display = newArchetype(
		components.Display,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(fcfg.Default, all...))
}
