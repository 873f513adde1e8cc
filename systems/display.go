package systems

import (
	"os"
	"runtime"
	"slices"

	"github.com/automoto/mascot/archetypes"
	"github.com/automoto/mascot/components"
	cfg "github.com/automoto/mascot/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var touchIDs []ebiten.TouchID

// UpdateDisplay derives the device class and reduced-motion signal from the
// platform, the input seen so far, the viewport, and the user's settings.
func UpdateDisplay(e *ecs.ECS) {
	display := GetOrCreateDisplay(e)
	settings := GetOrCreateSettings(e)

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		display.TouchSeen = true
	}

	display.Compact = isCompact(runtime.GOOS, display.TouchSeen, display.Width, settings.CompactOverride)
	display.ReducedMotion = settings.ReducedMotion || display.EnvReduced
}

// SetViewport records the layout size reported by the window.
func SetViewport(e *ecs.ECS, width, height int) {
	display := GetOrCreateDisplay(e)
	display.Width, display.Height = width, height
}

// GetOrCreateDisplay returns the singleton Display component, creating if needed
func GetOrCreateDisplay(e *ecs.ECS) *components.DisplayData {
	entry, ok := components.Display.First(e.World)
	if !ok {
		entry = archetypes.Display.Spawn(e)
		display := components.Display.Get(entry)
		display.EnvReduced = envReducedMotion(os.Getenv(cfg.Settings.ReducedMotionEnv))
		display.Width, display.Height = cfg.C.Width, cfg.C.Height
	}
	return components.Display.Get(entry)
}

func isCompact(goos string, touchSeen bool, width int, override bool) bool {
	if override || touchSeen {
		return true
	}
	if slices.Contains(cfg.Settings.CompactGOOS, goos) {
		return true
	}
	return width > 0 && width < cfg.UI.CompactMaxWidth
}

func envReducedMotion(v string) bool {
	return v != "" && v != "0" && v != "false"
}
