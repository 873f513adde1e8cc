package systems

import (
	"github.com/automoto/mascot/components"
	cfg "github.com/automoto/mascot/config"
	"github.com/automoto/mascot/gamemath"
	"github.com/automoto/mascot/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var pointerEvents []gamemath.Vector2

// UpdatePointer turns clicks and taps on the mascot into impulses. Each
// impulse is committed to the simulation immediately, between frame steps.
func UpdatePointer(e *ecs.ECS) {
	pointerEvents = appendPointerPresses(pointerEvents[:0])
	if len(pointerEvents) == 0 {
		return
	}
	display := GetOrCreateDisplay(e)
	screenMid := screenCenter(display.Width, display.Height)

	components.Mascot.Each(e.World, func(entry *donburi.Entry) {
		mascot := components.Mascot.Get(entry)
		sprite := components.Sprite.Get(entry)
		squash := components.Squash.Get(entry)

		for _, ev := range pointerEvents {
			// Re-read per event so stacked presses see each other's impulse.
			center := screenMid.Add(mascot.Mapper.Translate(mascot.Sim.State().Position))
			radius := sprite.Size / 2
			if !hitMascot(ev, center, radius) {
				continue
			}

			mascot.Impulse.Apply(mascot.Sim, motion.Pointer{
				Event:   ev,
				Center:  center,
				Radius:  radius,
				Compact: display.Compact,
			})
			startPop(squash)

			sound := cfg.SoundPoke
			if display.Compact {
				sound = cfg.SoundSpin
			}
			PlaySFX(e, sound)
		}
	})
}

func appendPointerPresses(dst []gamemath.Vector2) []gamemath.Vector2 {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dst = append(dst, gamemath.Vec(float64(x), float64(y)))
	}
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		dst = append(dst, gamemath.Vec(float64(x), float64(y)))
	}
	return dst
}

func screenCenter(width, height int) gamemath.Vector2 {
	return gamemath.Vec(float64(width)/2, float64(height)/2)
}

// hitMascot treats the mascot as a disc; the edge counts as a hit.
func hitMascot(event, center gamemath.Vector2, radius float64) bool {
	if radius <= 0 {
		return false
	}
	return event.DistanceTo(center) <= radius
}
