package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image *ebiten.Image
	Size  float64 // on-screen edge length in pixels
}

var Sprite = donburi.NewComponentType[SpriteData]()
