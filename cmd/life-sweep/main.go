package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"time"

	"gol-viz/internal/sweep"
	"gol-viz/pkg/life"
)

type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*l = append(*l, v)
		}
	}
	return nil
}

func main() {
	def := sweep.DefaultConfig()
	rows := flag.Int("rows", def.Rows, "board height")
	cols := flag.Int("cols", def.Cols, "board width")
	steps := flag.Int("steps", def.Steps, "generations to simulate per scenario")
	seed := flag.Int64("seed", def.Seed, "base seed; scenario i uses seed+i+1")
	workers := flag.Int("workers", def.Workers, "number of worker goroutines")
	top := flag.Int("top", 0, "only print the N most populous results (0 prints all)")
	var rules, densities listFlag
	flag.Var(&rules, "rule", "rule in B/S notation (repeatable or comma separated)")
	flag.Var(&densities, "density", "seeding density (repeatable or comma separated)")
	flag.Parse()

	if len(rules) == 0 {
		rules = listFlag{"B3/S23", "B36/S23", "B3/S12345", "B2/S"}
	}
	if len(densities) == 0 {
		densities = listFlag{"0.1", "0.2", "0.3", "0.4", "0.5"}
	}

	parsedRules := make([]life.Rule, 0, len(rules))
	for _, s := range rules {
		r, err := life.ParseRule(s)
		if err != nil {
			log.Fatalf("life-sweep: %v", err)
		}
		parsedRules = append(parsedRules, r)
	}
	parsedDensities := make([]float64, 0, len(densities))
	for _, s := range densities {
		d, err := strconv.ParseFloat(s, 64)
		if err != nil || d < 0 || d > 1 {
			log.Fatalf("life-sweep: density %q must be a number in [0, 1]", s)
		}
		parsedDensities = append(parsedDensities, d)
	}

	cfg := sweep.Config{Rows: *rows, Cols: *cols, Steps: *steps, Seed: *seed, Workers: *workers}
	scenarios := sweep.Grid(parsedRules, parsedDensities)

	fmt.Printf("Sweeping %d scenarios on %dx%d (%d workers, %d steps)\n", len(scenarios), cfg.Rows, cfg.Cols, cfg.Workers, cfg.Steps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep.Run(ctx, cfg, scenarios)
	if err != nil {
		log.Fatalf("life-sweep: %v", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Final > results[j].Final
	})
	if *top > 0 && *top < len(results) {
		results = results[:*top]
	}

	fmt.Printf("%-12s %8s %8s %8s %8s %10s\n", "rule", "density", "initial", "peak", "final", "settled")
	for _, r := range results {
		settled := "no"
		if r.Settled() {
			settled = strconv.Itoa(r.SettledAt)
		}
		fmt.Printf("%-12s %8.2f %8d %8d %8d %10s\n", r.Scenario.Rule, r.Scenario.Density, r.Initial, r.Peak, r.Final, settled)
	}
	fmt.Printf("Done in %s\n", time.Since(start).Round(time.Millisecond))
}
