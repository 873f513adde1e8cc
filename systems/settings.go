package systems

import (
	"log"

	"github.com/automoto/mascot/archetypes"
	"github.com/automoto/mascot/components"
	cfg "github.com/automoto/mascot/config"
	fcfg "github.com/automoto/mascot/config/frontend"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies key toggles and saves preferences when they change.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	changed := false
	if GetAction(input, fcfg.ActionToggleDebug).JustPressed {
		settings.ShowDebug = !settings.ShowDebug
		changed = true
	}
	if GetAction(input, fcfg.ActionToggleReducedMotion).JustPressed {
		settings.ReducedMotion = !settings.ReducedMotion
		log.Printf("Reduced motion: %v", settings.ReducedMotion)
		changed = true
	}
	if GetAction(input, fcfg.ActionToggleMute).JustPressed {
		settings.Muted = !settings.Muted
		changed = true
	}
	// The compact override is a session toggle and is not saved.
	if GetAction(input, fcfg.ActionToggleCompact).JustPressed {
		settings.CompactOverride = !settings.CompactOverride
	}
	if GetAction(input, fcfg.ActionQuit).JustPressed {
		settings.Quit = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
// A new component starts from the saved preferences when there are any.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		settings := components.Settings.Get(entry)
		settings.ShowDebug = cfg.Debug.ShowOverlay
		if saved, err := LoadSettings(); err == nil {
			ApplySavedSettings(settings, saved)
		}
	}
	return components.Settings.Get(entry)
}

// QuitRequested reports whether the user asked to close the app.
func QuitRequested(e *ecs.ECS) bool {
	entry, ok := components.Settings.First(e.World)
	return ok && components.Settings.Get(entry).Quit
}
