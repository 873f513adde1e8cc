package main

import (
	"flag"
	"log"

	"github.com/automoto/mascot/assets"
	"github.com/automoto/mascot/config"
	"github.com/automoto/mascot/fonts"
	"github.com/automoto/mascot/gamemath"
	"github.com/automoto/mascot/scenes"
	"github.com/automoto/mascot/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(opts scenes.MascotOptions) *Game {
	if err := fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, config.UI.HUDFontSize); err != nil {
		log.Printf("Warning: Debug overlay text disabled: %v", err)
	}

	return &Game{scene: scenes.NewMascotScene(opts)}
}

func (g *Game) Update() error {
	g.scene.Update()
	if q, ok := g.scene.(interface{ QuitRequested() bool }); ok && q.QuitRequested() {
		if c, ok := g.scene.(interface{ Close() }); ok {
			c.Close()
		}
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the mascot scales with it.
func (g *Game) Layout(width, height int) (int, int) {
	if v, ok := g.scene.(interface{ SetViewport(w, h int) }); ok {
		v.SetViewport(width, height)
	}
	return width, height
}

func main() {
	imagePath := flag.String("image", "", "custom mascot image (png, jpeg or webp)")
	seed := flag.Uint64("seed", 0, "random seed for a reproducible run (0 = random)")
	debug := flag.Bool("debug", config.Debug.ShowOverlay, "start with the debug overlay visible")
	compact := flag.Bool("compact", false, "force the compact device class")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence so the scene picks up saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	img, err := assets.LoadMascot(*imagePath)
	if err != nil {
		log.Fatalf("Failed to load mascot: %v", err)
	}

	opts := scenes.MascotOptions{
		Image:   img,
		Compact: *compact,
		Debug:   *debug,
	}
	if *seed != 0 {
		opts.Rand = gamemath.NewRandom(*seed)
	}

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
