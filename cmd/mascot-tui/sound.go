package main

import (
	"log"
	"time"

	"github.com/automoto/mascot/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// blipPlayer plays short sine tones through the speaker. A nil player is
// silent.
type blipPlayer struct {
	rate beep.SampleRate
}

func newBlipPlayer(sampleRate int) *blipPlayer {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		// Non-fatal, the mascot works without sound
		log.Printf("Warning: Audio initialization failed: %v", err)
		return nil
	}
	return &blipPlayer{rate: rate}
}

func (b *blipPlayer) play(t config.Tone) {
	if b == nil || t.Duration <= 0 {
		return
	}
	sine, err := generators.SineTone(b.rate, t.Frequency)
	if err != nil {
		log.Printf("Warning: Could not generate tone: %v", err)
		return
	}
	speaker.Play(&effects.Gain{
		Streamer: beep.Take(b.rate.N(t.Duration), sine),
		Gain:     t.Volume - 1,
	})
}

func (b *blipPlayer) close() {
	if b == nil {
		return
	}
	speaker.Close()
}
