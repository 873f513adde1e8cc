package systems

import (
	"github.com/automoto/mascot/components"
	cfg "github.com/automoto/mascot/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSquash advances the pop and fade tweens by one tick.
func UpdateSquash(e *ecs.ECS) {
	// Update runs at a fixed tick rate regardless of the display refresh.
	dt := float32(1.0 / float64(ebiten.TPS()))

	components.Squash.Each(e.World, func(entry *donburi.Entry) {
		advanceSquash(components.Squash.Get(entry), dt)
	})
}

func advanceSquash(s *components.SquashData, dt float32) {
	if s.Fade != nil {
		alpha, done := s.Fade.Update(dt)
		s.Alpha = alpha
		if done {
			s.Alpha = 1
			s.Fade = nil
		}
	} else {
		s.Alpha = 1
	}

	if s.Pop != nil {
		scale, _, done := s.Pop.Update(dt)
		s.Scale = scale
		if done {
			s.Scale = 1
			s.Pop = nil
		}
	} else {
		s.Scale = 1
	}
}

// startPop squashes from the current scale and springs back to full size.
func startPop(s *components.SquashData) {
	from := s.Scale
	if from <= 0 {
		from = 1
	}
	s.Pop = gween.NewSequence(
		gween.New(from, cfg.Squash.PopScale, cfg.Squash.PopDuration, ease.OutQuad),
		gween.New(cfg.Squash.PopScale, 1, cfg.Squash.RecoverDuration, ease.OutElastic),
	)
}
