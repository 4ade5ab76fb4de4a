package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/startree/pkg/app"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen mode")
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		ShapeTuning: shapeTuningYAML,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(app.WindowWidth, app.WindowHeight)
	ebiten.SetWindowTitle("StarTree - 节日照片星云")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if *fullscreen {
		ebiten.SetFullscreen(true)
	}

	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
