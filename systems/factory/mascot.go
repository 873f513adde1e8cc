package factory

import (
	"github.com/automoto/mascot/archetypes"
	"github.com/automoto/mascot/components"
	cfg "github.com/automoto/mascot/config"
	"github.com/automoto/mascot/gamemath"
	"github.com/automoto/mascot/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MascotOptions configures CreateMascot.
type MascotOptions struct {
	Image   *ebiten.Image
	Rand    gamemath.RandomSource // nil seeds from the runtime
	Clock   motion.Clock          // nil uses the system clock
	Compact bool
}

// CreateMascot spawns the mascot entity with a started frame driver. The
// driver reads the reduced-motion signal from the Display singleton.
func CreateMascot(ecs *ecs.ECS, opts MascotOptions) *donburi.Entry {
	rng := opts.Rand
	if rng == nil {
		rng = gamemath.NewRandomUnseeded()
	}
	clock := opts.Clock
	if clock == nil {
		clock = motion.SystemClock{}
	}

	sim := motion.NewSimulation(cfg.MotionFor(opts.Compact), rng)
	queue := motion.NewFrameQueue()
	driver := motion.NewFrameDriver(sim, queue, func() bool {
		entry, ok := components.Display.First(ecs.World)
		return ok && components.Display.Get(entry).ReducedMotion
	})
	driver.SetMaxDelta(cfg.Frame.MaxDeltaTime)

	mascot := archetypes.Mascot.Spawn(ecs)
	components.Mascot.SetValue(mascot, components.MascotData{
		Sim:     sim,
		Driver:  driver,
		Frames:  queue,
		Impulse: motion.NewImpulseMapper(clock),
		Mapper:  &motion.CoordinateMapper{},
		Clock:   clock,
		Compact: opts.Compact,
	})
	components.Sprite.SetValue(mascot, components.SpriteData{Image: opts.Image})

	// The mascot fades in once on spawn.
	components.Squash.SetValue(mascot, components.SquashData{
		Fade:  gween.New(0, 1, cfg.Squash.FadeInDuration, ease.OutQuad),
		Scale: 1,
	})

	driver.Start()
	return mascot
}
