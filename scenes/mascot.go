package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/mascot/config"
	fcfg "github.com/automoto/mascot/config/frontend"
	"github.com/automoto/mascot/gamemath"
	"github.com/automoto/mascot/motion"
	"github.com/automoto/mascot/systems"
	"github.com/automoto/mascot/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MascotOptions carries the command-line choices into the scene.
type MascotOptions struct {
	Image   *ebiten.Image
	Rand    gamemath.RandomSource
	Clock   motion.Clock
	Compact bool // force the compact device class
	Debug   bool // start with the overlay visible
}

// MascotScene shows the floating mascot.
type MascotScene struct {
	ecs  *ecs.ECS
	opts MascotOptions
	once sync.Once

	width, height int
}

// NewMascotScene creates the scene; the ECS is built on the first Update.
func NewMascotScene(opts MascotOptions) *MascotScene {
	return &MascotScene{opts: opts, width: cfg.C.Width, height: cfg.C.Height}
}

func (ms *MascotScene) Update() {
	ms.once.Do(ms.configure)
	systems.SetViewport(ms.ecs, ms.width, ms.height)
	ms.ecs.Update()
}

func (ms *MascotScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

// SetViewport receives the layout size from the game.
func (ms *MascotScene) SetViewport(width, height int) {
	ms.width, ms.height = width, height
}

// QuitRequested reports whether the user asked to close the app.
func (ms *MascotScene) QuitRequested() bool {
	return ms.ecs != nil && systems.QuitRequested(ms.ecs)
}

// Close stops the frame driver so no callback touches the scene afterwards.
func (ms *MascotScene) Close() {
	if ms.ecs != nil {
		systems.StopMotion(ms.ecs)
	}
}

func (ms *MascotScene) configure() {
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input and preferences first so this frame's toggles apply immediately
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateDisplay)
	ecs.AddSystem(systems.UpdateLayout)

	// Impulses land before the step so a click is never lost between frames
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdateMotion)
	ecs.AddSystem(systems.UpdateSquash)
	ecs.AddSystem(systems.UpdateTransform)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(fcfg.Default, systems.DrawBackground)
	ecs.AddRenderer(fcfg.Default, systems.DrawMascot)
	ecs.AddRenderer(fcfg.Default, systems.DrawDebug)

	ms.ecs = ecs

	settings := systems.GetOrCreateSettings(ecs)
	settings.CompactOverride = ms.opts.Compact
	if ms.opts.Debug {
		settings.ShowDebug = true
	}

	// Derive the device class before spawning so the first table is right.
	systems.SetViewport(ecs, ms.width, ms.height)
	systems.UpdateDisplay(ecs)
	display := systems.GetOrCreateDisplay(ecs)

	factory.CreateMascot(ecs, factory.MascotOptions{
		Image:   ms.opts.Image,
		Rand:    ms.opts.Rand,
		Clock:   ms.opts.Clock,
		Compact: display.Compact,
	})
}
