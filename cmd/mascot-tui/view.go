package main

import (
	"fmt"
	"math"

	"github.com/automoto/mascot/config"
	"github.com/automoto/mascot/gamemath"
	"github.com/gdamore/tcell/v2"
)

// cellAspect is how much taller a terminal cell is than it is wide. The
// simulation works in square "pixels": one per column, cellAspect per row.
const cellAspect = 2.0

type viewport struct {
	cols, rows int
}

func (v viewport) size() (w, h float64) {
	return float64(v.cols), float64(v.rows) * cellAspect
}

func (v viewport) center() gamemath.Vector2 {
	w, h := v.size()
	return gamemath.Vec(w/2, h/2)
}

func (v viewport) entitySize(compact bool) float64 {
	fraction := config.UI.EntityViewportFraction
	if compact {
		fraction = config.UI.CompactEntityViewportFraction
	}
	w, h := v.size()
	return math.Max(0, math.Min(w, h)*fraction)
}

// cellToPixel returns the center of a cell in square pixels.
func cellToPixel(col, row int) gamemath.Vector2 {
	return gamemath.Vec(float64(col)+0.5, (float64(row)+0.5)*cellAspect)
}

type cellKind int

const (
	cellEmpty cellKind = iota
	cellBody
	cellOutline
	cellFace
)

// classify places a point given relative to the mascot center, in the
// mascot's own unrotated frame, on the procedural face.
func classify(local gamemath.Vector2, radius float64) cellKind {
	if radius <= 0 {
		return cellEmpty
	}
	d := local.Magnitude()
	if d > radius {
		return cellEmpty
	}

	eyeR := math.Max(radius*0.16, 0.6)
	for _, eye := range []gamemath.Vector2{
		gamemath.Vec(-radius*0.35, -radius*0.2),
		gamemath.Vec(radius*0.35, -radius*0.2),
	} {
		if local.DistanceTo(eye) < eyeR {
			return cellFace
		}
	}
	if local.Y > radius*0.15 && math.Abs(d-radius*0.5) < math.Max(radius*0.08, 0.5) {
		return cellFace
	}
	if d > radius-1 {
		return cellOutline
	}
	return cellBody
}

var (
	bodyStyle    = tcell.StyleDefault.Background(rgb(config.UI.MascotBody)).Foreground(rgb(config.UI.MascotBody))
	outlineStyle = tcell.StyleDefault.Background(rgb(config.UI.MascotOutline)).Foreground(rgb(config.UI.MascotOutline))
	faceStyle    = tcell.StyleDefault.Background(rgb(config.UI.MascotFace)).Foreground(rgb(config.UI.MascotFace))
	bgStyle      = tcell.StyleDefault.Background(rgb(config.UI.BackgroundColor))
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	bandStyle    = tcell.StyleDefault.Background(rgb(config.UI.BackgroundColor)).Foreground(tcell.ColorDimGray)
)

func (a *app) draw() {
	a.screen.Clear()
	st := a.sim.State()
	center := a.mascotCenter()
	radius := a.mapper.EntitySize() / 2
	rest := a.view.center()
	rot := -gamemath.DegToRad(st.Rotation)

	for row := 0; row < a.view.rows; row++ {
		for col := 0; col < a.view.cols; col++ {
			p := cellToPixel(col, row)
			rel := p.Sub(center)
			local := gamemath.FromAngle(rel.AngleRadians()+rot, rel.Magnitude())

			style, ch := bgStyle, ' '
			switch classify(local, radius) {
			case cellBody:
				style = bodyStyle
			case cellOutline:
				style = outlineStyle
			case cellFace:
				style = faceStyle
			default:
				if a.debug && onBand(p.DistanceTo(rest), a.mapper.ToPixels(a.sim.Config().TargetSpeedRange)) {
					style, ch = bandStyle, '·'
				}
			}
			a.screen.SetContent(col, row, ch, nil, style)
		}
	}

	a.drawText(0, a.view.rows, a.statusLine(), statusStyle)
	if a.debug {
		for i, line := range a.debugLines() {
			a.drawText(0, i, line, statusStyle)
		}
	}
	a.screen.Show()
}

func onBand(d, r float64) bool {
	return r > 0 && math.Abs(d-r) < 0.5
}

func (a *app) drawText(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		if col >= a.view.cols {
			return
		}
		a.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func (a *app) statusLine() string {
	flag := func(on bool) string {
		if on {
			return "on"
		}
		return "off"
	}
	return fmt.Sprintf(" click to poke | r reduced:%s | c compact:%s | m mute:%s | d debug | q quit",
		flag(a.reduced || a.envReduced), flag(a.compact), flag(a.muted))
}

func (a *app) debugLines() []string {
	st := a.sim.State()
	return []string{
		fmt.Sprintf("pos %s d=%.3f", st.Position, st.Distance()),
		fmt.Sprintf("speed %.3f spin %.1f rot %.1f", st.Speed(), st.AngularVelocity, st.Rotation),
		fmt.Sprintf("turn %v dt %.4f frames %d", st.TurnaroundInProgress, a.driver.LastDelta(), a.driver.Frames()),
	}
}

func rgb(c interface{ RGBA() (r, g, b, a uint32) }) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
