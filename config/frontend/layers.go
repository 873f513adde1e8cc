// Package frontend holds configuration that only the ebiten app needs:
// key bindings and render layers. It is kept apart from package config so
// the simulation and the terminal app build without ebiten.
package frontend

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer
const Default ecs.LayerID = 0
