package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPoke         // off-center click or tap pushing the mascot
	SoundSpin         // compact tap that only spins
)

// Tone is a short generated sine blip
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Volume    float64 // 0.0 - 1.0
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	FadeOut       time.Duration // release applied to the tail of every tone
}

// SoundConfig maps sound IDs to tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		FadeOut:       20 * time.Millisecond,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundPoke: {Frequency: 660, Duration: 60 * time.Millisecond, Volume: 0.35},
			SoundSpin: {Frequency: 880, Duration: 45 * time.Millisecond, Volume: 0.25},
		},
	}
}
