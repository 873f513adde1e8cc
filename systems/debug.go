package systems

import (
	"fmt"

	"github.com/automoto/mascot/components"
	cfg "github.com/automoto/mascot/config"
	"github.com/automoto/mascot/fonts"
	"github.com/automoto/mascot/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudPadding    = 8
	hudLineHeight = 16
)

// DrawDebug overlays the motion bands around the rest point, the velocity
// vector and a text readout of the simulation.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowDebug {
		return
	}
	display := GetOrCreateDisplay(ecs)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	mid := screenCenter(width, height)

	components.Mascot.Each(ecs.World, func(e *donburi.Entry) {
		mascot := components.Mascot.Get(e)
		st := mascot.Sim.State()
		m := mascot.Sim.Config()
		mapper := mascot.Mapper

		cx, cy := float32(mid.X), float32(mid.Y)
		vector.StrokeCircle(screen, cx, cy, float32(mapper.ToPixels(m.TurnaroundDistance)), 1, cfg.UI.TurnaroundBandColor, true)
		vector.StrokeCircle(screen, cx, cy, float32(mapper.ToPixels(m.TargetSpeedRange)), 1, cfg.UI.RegulationBandColor, true)
		vector.StrokeCircle(screen, cx, cy, float32(mapper.ToPixels(m.GoHomeDistance)), 1, cfg.UI.GoHomeBandColor, true)

		// Velocity arrow shows where the mascot would be after a few seconds.
		from := mid.Add(mapper.Translate(st.Position))
		to := from.Add(mapper.Translate(st.Velocity.Scale(cfg.UI.VelocityArrowScale)))
		vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 2, cfg.UI.VelocityColor, true)
		if st.TurnaroundInProgress {
			aim := from.Add(mapper.Translate(st.TurnaroundDirection.Scale(m.TurnaroundDistance)))
			vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(aim.X), float32(aim.Y), 1, cfg.UI.TurnaroundBandColor, true)
		}

		lines := debugLines(st, mascot.Driver.LastDelta(), mascot.Driver.Frames(), ebiten.ActualTPS(),
			display.Compact, display.ReducedMotion)
		drawHUD(screen, lines)
	})
}

func drawHUD(screen *ebiten.Image, lines []string) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	face := fonts.HUD.Get()

	widest := 0
	for _, line := range lines {
		widest = max(widest, text.BoundString(face, line).Dx())
	}
	vector.FillRect(screen, 0, 0,
		float32(widest+2*hudPadding), float32(len(lines)*hudLineHeight+hudPadding),
		cfg.UI.HUDTextBgColor, false)

	for i, line := range lines {
		text.Draw(screen, line, face, hudPadding, hudPadding+(i+1)*hudLineHeight-4, cfg.UI.HUDTextColor)
	}
}

func debugLines(st motion.State, dt float64, frames uint64, tps float64, compact, reduced bool) []string {
	return []string{
		fmt.Sprintf("pos   %s  d=%.3f", st.Position, st.Distance()),
		fmt.Sprintf("speed %.3f  spin %.1f deg/s", st.Speed(), st.AngularVelocity),
		fmt.Sprintf("rot   %.1f deg", st.Rotation),
		fmt.Sprintf("turn  %v", st.TurnaroundInProgress),
		fmt.Sprintf("dt    %.4f s  frames %d  tps %.1f", dt, frames, tps),
		fmt.Sprintf("compact %v  reduced %v", compact, reduced),
	}
}
