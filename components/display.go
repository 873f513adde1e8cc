package components

import "github.com/yohamta/donburi"

// DisplayData holds the capability signals the frontend derives each frame
// (singleton component).
type DisplayData struct {
	Width, Height int
	TouchSeen     bool
	EnvReduced    bool // reduced motion requested by the environment

	Compact       bool // effective device class
	ReducedMotion bool // effective reduced-motion signal read by the frame driver
}

var Display = donburi.NewComponentType[DisplayData]()
