package components

import "github.com/yohamta/donburi"

// SettingsData holds the user preferences (singleton component).
// Everything here except CompactOverride is persisted.
type SettingsData struct {
	ShowDebug       bool
	ReducedMotion   bool
	Muted           bool
	CompactOverride bool
	Quit            bool
}

var Settings = donburi.NewComponentType[SettingsData]()
