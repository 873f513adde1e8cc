package main

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/automoto/mascot/config"
	"github.com/automoto/mascot/gamemath"
	"github.com/automoto/mascot/motion"
	"github.com/gdamore/tcell/v2"
)

type appOptions struct {
	Rand    gamemath.RandomSource
	Clock   motion.Clock
	Compact bool
	Debug   bool
	Muted   bool
	Sound   *blipPlayer
}

// app owns the terminal, the simulation and its frame queue. All of its
// methods except Stop run on the loop goroutine.
type app struct {
	screen tcell.Screen
	clock  motion.Clock

	sim     *motion.Simulation
	queue   *motion.FrameQueue
	driver  *motion.FrameDriver
	impulse *motion.ImpulseMapper
	mapper  motion.CoordinateMapper

	view       viewport
	compact    bool
	reduced    bool
	envReduced bool
	debug      bool
	muted      bool
	mouseDown  bool

	sound    *blipPlayer
	stopOnce sync.Once
	stopChan chan struct{}
}

func newApp(screen tcell.Screen, opts appOptions) *app {
	rng := opts.Rand
	if rng == nil {
		rng = gamemath.NewRandomUnseeded()
	}
	clock := opts.Clock
	if clock == nil {
		clock = motion.SystemClock{}
	}

	a := &app{
		screen:     screen,
		clock:      clock,
		compact:    opts.Compact,
		debug:      opts.Debug,
		muted:      opts.Muted,
		sound:      opts.Sound,
		envReduced: envReducedMotion(os.Getenv(config.Settings.ReducedMotionEnv)),
		stopChan:   make(chan struct{}),
	}
	a.sim = motion.NewSimulation(config.MotionFor(a.compact), rng)
	a.queue = motion.NewFrameQueue()
	a.driver = motion.NewFrameDriver(a.sim, a.queue, func() bool { return a.reduced || a.envReduced })
	a.impulse = motion.NewImpulseMapper(clock)

	a.resize()
	a.driver.Start()
	return a
}

// Run pumps frames at tickRate until Stop is called or the user quits.
func (a *app) Run(tickRate int) {
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	log.Printf("Loop started at %d ticks/second", tickRate)

	for {
		select {
		case <-a.stopChan:
			log.Println("Loop stopped")
			return
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.tick()
		}
	}
}

// Stop makes Run return. It is safe to call more than once and from any goroutine.
func (a *app) Stop() {
	a.stopOnce.Do(func() { close(a.stopChan) })
}

func (a *app) tick() {
	a.queue.Pump(a.clock.Now())
	a.draw()
}

func (a *app) cleanup() {
	a.driver.Stop()
	a.sound.close()
	a.screen.Fini()
}

// handleEvent returns false when the app should exit.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !a.mouseDown {
			col, row := ev.Position()
			a.press(cellToPixel(col, row))
		}
		a.mouseDown = down

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			break
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			a.reduced = !a.reduced
			log.Printf("Reduced motion: %v", a.reduced)
		case 'c':
			a.setCompact(!a.compact)
		case 'm':
			a.muted = !a.muted
		case 'd':
			a.debug = !a.debug
		}
	}
	return true
}

// press applies an impulse when p lands on the mascot.
func (a *app) press(p gamemath.Vector2) bool {
	center := a.mascotCenter()
	radius := a.mapper.EntitySize() / 2
	if radius <= 0 || p.DistanceTo(center) > radius {
		return false
	}

	a.impulse.Apply(a.sim, motion.Pointer{
		Event:   p,
		Center:  center,
		Radius:  radius,
		Compact: a.compact,
	})

	if !a.muted {
		sound := config.SoundPoke
		if a.compact {
			sound = config.SoundSpin
		}
		a.sound.play(config.Sound.Tones[sound])
	}
	return true
}

func (a *app) setCompact(compact bool) {
	if a.compact == compact {
		return
	}
	a.compact = compact
	a.sim.Reconfigure(config.MotionFor(compact))
	a.resize()
	log.Printf("Device class changed, compact: %v", compact)
}

func (a *app) resize() {
	cols, rows := a.screen.Size()
	// the bottom row holds the status line
	a.view = viewport{cols: cols, rows: max(0, rows-1)}
	a.mapper.SetEntitySize(a.view.entitySize(a.compact))
}

func (a *app) mascotCenter() gamemath.Vector2 {
	return a.view.center().Add(a.mapper.Translate(a.sim.State().Position))
}

func envReducedMotion(v string) bool {
	return v != "" && v != "0" && v != "false"
}
