//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gol-viz/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	drv, err := cfg.NewDriver()
	if err != nil {
		log.Fatalf("life: %v", err)
	}
	defer drv.Close()

	game := app.New(drv, cfg.Scale)

	ebiten.SetWindowTitle("gol-viz " + drv.Rule().String())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(cfg.Cols*cfg.Scale+app.HUDWidth, cfg.Rows*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
