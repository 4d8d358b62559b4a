//go:build !ebiten

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gol-viz/internal/app"
	"gol-viz/internal/driver"
	"gol-viz/internal/render"
)

// Without the ebiten tag the board is drawn to the terminal.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	drv, err := cfg.NewDriver()
	if err != nil {
		log.Fatalf("life: %v", err)
	}
	defer drv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := bufio.NewWriter(os.Stdout)
	draw := func(f driver.Frame) bool {
		fmt.Fprint(out, "\x1b[H\x1b[2J")
		fmt.Fprintln(out, render.Text(f.Grid))
		fmt.Fprintln(out, render.Status(f.Generation, f.Population, f.Rule))
		out.Flush()
		return cfg.Generations == 0 || f.Generation < cfg.Generations
	}

	draw(drv.Frame())
	if !drv.Running() {
		return
	}
	if err := drv.Run(ctx, draw); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("life: %v", err)
	}
}
