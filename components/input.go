package components

import (
	fcfg "github.com/automoto/mascot/config/frontend"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [fcfg.ActionCount]bool
	Previous [fcfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
