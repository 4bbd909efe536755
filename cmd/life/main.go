//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"active-life/internal/app"
	"active-life/internal/life"
	"active-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	engine, err := life.NewFromConfig(cfg.Life())
	if err != nil {
		log.Fatalf("start: %v", err)
	}

	scale := cfg.Scale
	if scale <= 0 {
		sw, sh := ebiten.ScreenSizeInFullscreen()
		scale = render.ScaleToFit(cfg.Rows, cfg.Cols, sw-cfg.Panel, sh, 25)
	}

	game := app.New(engine, *cfg, scale)

	ebiten.SetWindowTitle("active-life: " + engine.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Cols*scale+cfg.Panel, cfg.Rows*scale)

	log.Printf("%dx%d board, %d live cells; click to edit, Enter to run, P to pause", cfg.Rows, cfg.Cols, engine.Population())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
