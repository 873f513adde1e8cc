package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/mascot/components"
	cfg "github.com/automoto/mascot/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the preferences stored on disk.
// Motion state is never persisted.
type SavedSettings struct {
	ReducedMotion bool `json:"reducedMotion"`
	ShowDebug     bool `json:"showDebug"`
	Muted         bool `json:"muted"`
}

// itemStore is the subset of *gdata.Manager the settings code needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var settingsStore itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return err
	}
	settingsStore = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when
// persistence is unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if settingsStore == nil {
		return nil, nil
	}

	data, err := settingsStore.LoadItem(cfg.Settings.SaveKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := settingsStore.SaveItem(cfg.Settings.SaveKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the persisted subset of the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		ReducedMotion: s.ReducedMotion,
		ShowDebug:     s.ShowDebug,
		Muted:         s.Muted,
	})
}

// ApplySavedSettings copies loaded preferences into the Settings component
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.ReducedMotion = saved.ReducedMotion
	s.ShowDebug = saved.ShowDebug
	s.Muted = saved.Muted
}
