package systems

import (
	"encoding/binary"
	"log"
	"math"
	"sync"
	"time"

	"github.com/automoto/mascot/components"
	cfg "github.com/automoto/mascot/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	toneCache          = map[cfg.SoundID][]byte{}
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// PreloadAllSFX renders every tone at startup so the first click does not stall.
func PreloadAllSFX() {
	for id, tone := range cfg.Sound.Tones {
		toneCache[id] = ToneBytes(tone, cfg.Audio.SampleRate, cfg.Audio.FadeOut)
	}
}

// UpdateAudio plays the sounds queued this frame
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}
	muted := GetOrCreateSettings(e).Muted
	if !muted && audioData.SFXVolume > 0 {
		initGlobalAudio()
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID, audioData.SFXVolume)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound for the next UpdateAudio
func PlaySFX(e *ecs.ECS, soundID cfg.SoundID) {
	audioData := getOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, soundID)
}

func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.Get(entry).SFXVolume = cfg.Audio.DefaultSFXVol
	}
	return components.Audio.Get(entry)
}

func playSFX(soundID cfg.SoundID, volume float64) {
	data, ok := toneCache[soundID]
	if !ok {
		tone, known := cfg.Sound.Tones[soundID]
		if !known {
			log.Printf("Warning: Unknown sound %d", soundID)
			return
		}
		data = ToneBytes(tone, cfg.Audio.SampleRate, cfg.Audio.FadeOut)
		toneCache[soundID] = data
	}

	player := globalAudioContext.NewPlayerFromBytes(data)
	player.SetVolume(volume)
	player.Play()
}

// ToneBytes renders t as 16-bit little-endian stereo PCM, the format
// ebiten's audio context expects. The last fade of the tone ramps to silence
// to avoid a click.
func ToneBytes(t cfg.Tone, sampleRate int, fade time.Duration) []byte {
	n := int(t.Duration.Seconds() * float64(sampleRate))
	if n <= 0 || t.Volume <= 0 {
		return nil
	}
	fadeSamples := min(int(fade.Seconds()*float64(sampleRate)), n)

	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		amp := t.Volume
		if remaining := n - i; remaining < fadeSamples {
			amp *= float64(remaining) / float64(fadeSamples)
		}
		v := amp * math.Sin(2*math.Pi*t.Frequency*float64(i)/float64(sampleRate))
		s := int16(max(-1, min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[4*i:], uint16(s))
		binary.LittleEndian.PutUint16(buf[4*i+2:], uint16(s))
	}
	return buf
}
