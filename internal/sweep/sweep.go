// Package sweep runs many independent boards over a grid of rules and
// seeding densities and summarises how each one evolves.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"gol-viz/pkg/life"
)

// Config controls the board used for every scenario.
type Config struct {
	Rows    int
	Cols    int
	Steps   int
	Seed    int64
	Workers int
}

// DefaultConfig returns a 64x64 board run for 500 generations.
func DefaultConfig() Config {
	return Config{Rows: 64, Cols: 64, Steps: 500, Seed: 1337, Workers: runtime.NumCPU()}
}

// Scenario is one (rule, density) combination.
type Scenario struct {
	Rule    life.Rule
	Density float64
}

func (s Scenario) String() string {
	return fmt.Sprintf("%s density=%.2f", s.Rule, s.Density)
}

// Result summarises one scenario.
type Result struct {
	Scenario Scenario
	Initial  int
	Final    int
	Peak     int
	// SettledAt is the first generation equal to the board one or two
	// generations earlier, or -1 if the board never settled.
	SettledAt int
}

// Settled reports whether the board reached a still life or period-2 cycle.
func (r Result) Settled() bool { return r.SettledAt >= 0 }

// Grid returns every combination of rules and densities, rules outermost.
func Grid(rules []life.Rule, densities []float64) []Scenario {
	out := make([]Scenario, 0, len(rules)*len(densities))
	for _, rule := range rules {
		for _, d := range densities {
			out = append(out, Scenario{Rule: rule, Density: d})
		}
	}
	return out
}

// Run evaluates scenarios on a worker pool. Results are returned in scenario
// order. Each scenario is seeded from cfg.Seed and its index so runs are
// reproducible regardless of worker count.
func Run(ctx context.Context, cfg Config, scenarios []Scenario) ([]Result, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	type job struct {
		idx int
		sc  Scenario
	}
	jobs := make(chan job)
	results := make([]Result, len(scenarios))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.idx] = runScenario(cfg, j.sc, cfg.Seed+int64(j.idx)+1)
			}
		}()
	}

	var err error
feed:
	for i, sc := range scenarios {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- job{idx: i, sc: sc}:
		}
	}
	close(jobs)
	wg.Wait()
	if err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(cfg Config, sc Scenario, seed int64) Result {
	e := life.NewWithConfig(life.Config{Rows: cfg.Rows, Cols: cfg.Cols, Seed: seed})
	e.Randomize(sc.Density)

	res := Result{Scenario: sc, Initial: e.Population(), SettledAt: -1}
	res.Peak = res.Initial
	res.Final = res.Initial

	prev2, prev := life.Grid(nil), e.Grid()
	for i := 0; i < cfg.Steps; i++ {
		step := e.Step(sc.Rule)
		res.Final = step.Population
		res.Peak = max(res.Peak, step.Population)
		if step.Grid.Equal(prev) || (prev2 != nil && step.Grid.Equal(prev2)) {
			res.SettledAt = step.Generation
			break
		}
		prev2, prev = prev, step.Grid
	}
	return res
}
