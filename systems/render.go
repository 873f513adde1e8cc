package systems

import (
	"math"

	"github.com/automoto/mascot/components"
	cfg "github.com/automoto/mascot/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)
}

// DrawMascot renders the sprite centered on its transform, scaled to the
// layout size and the current squash, rotated about its center.
func DrawMascot(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	components.Mascot.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil || sprite.Size <= 0 {
			return
		}
		tr := components.Transform.Get(e)
		squash := components.Squash.Get(e)

		iw, ih := sprite.Image.Bounds().Dx(), sprite.Image.Bounds().Dy()
		if iw == 0 || ih == 0 {
			return
		}
		scale := sprite.Size / float64(max(iw, ih)) * float64(squash.Scale)

		// Reset draw options.
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.Filter = ebiten.FilterLinear

		drawOp.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
		drawOp.GeoM.Scale(scale, scale)
		drawOp.GeoM.Rotate(tr.Rotation * math.Pi / 180)
		drawOp.GeoM.Translate(float64(width)/2+tr.Offset.X, float64(height)/2+tr.Offset.Y)
		drawOp.ColorScale.ScaleAlpha(squash.Alpha)

		screen.DrawImage(sprite.Image, drawOp)
	})
}
