// Command mascot-tui runs the floating mascot in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/mascot/config"
	"github.com/automoto/mascot/gamemath"
	"github.com/gdamore/tcell/v2"
)

func main() {
	seed := flag.Uint64("seed", 0, "random seed for a reproducible run (0 = random)")
	compact := flag.Bool("compact", false, "start in the compact device class")
	debug := flag.Bool("debug", false, "show the simulation readout")
	mute := flag.Bool("mute", false, "disable the click blip")
	logPath := flag.String("log", "", "write log output to this file instead of discarding it")
	flag.Parse()

	// The terminal is the display, so log lines must not land on it.
	log.SetPrefix("[mascot-tui] ")
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Muting only gates playback, so the player exists for a later unmute.
	opts := appOptions{
		Compact: *compact,
		Debug:   *debug,
		Muted:   *mute,
		Sound:   newBlipPlayer(config.Audio.SampleRate),
	}
	if *seed != 0 {
		opts.Rand = gamemath.NewRandom(*seed)
	}

	a := newApp(screen, opts)
	defer a.cleanup()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		a.Stop()
	}()

	a.Run(config.Frame.TickRate)
}
