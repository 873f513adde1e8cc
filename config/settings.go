package config

// SettingsConfig contains preference storage and capability detection values
type SettingsConfig struct {
	AppName          string // gdata namespace
	SaveKey          string
	ReducedMotionEnv string   // any non-empty value other than "0" requests reduced motion
	CompactGOOS      []string // platforms that always count as compact
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:          "mascot",
		SaveKey:          "settings",
		ReducedMotionEnv: "MASCOT_REDUCED_MOTION",
		CompactGOOS:      []string{"android", "ios"},
	}
}
