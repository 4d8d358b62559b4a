package app

import (
	"errors"
	"flag"
	"io"
	"log"
	"testing"

	"gol-viz/internal/driver"
	"gol-viz/pkg/life"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-rows", "20", "-cols", "30", "-rule", "B36/S23", "-density", "0.4", "-fill", "clustered", "-pattern", "glider", "-seed", "9"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Rows != 20 || cfg.Cols != 30 || cfg.Rule != "B36/S23" || cfg.Density != 0.4 || cfg.Seed != 9 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	opts := cfg.DriverOptions()
	if opts.Fill != driver.FillClustered || opts.Rows != 20 {
		t.Fatalf("opts = %+v", opts)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"rows":        func(c *Config) { c.Rows = 0 },
		"cols":        func(c *Config) { c.Cols = driver.MaxDimension + 1 },
		"scale":       func(c *Config) { c.Scale = 0 },
		"density":     func(c *Config) { c.Density = 1.5 },
		"fill":        func(c *Config) { c.Fill = "sparse" },
		"generations": func(c *Config) { c.Generations = -1 },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}

	cfg := NewConfig()
	cfg.Pattern = "unknown"
	if err := cfg.Validate(); !errors.Is(err, life.ErrUnknownPattern) {
		t.Fatalf("pattern: err = %v, want ErrUnknownPattern", err)
	}
}

func TestNewDriverPlacesPattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Logger = log.New(io.Discard, "", 0)
	cfg.Rows, cfg.Cols = 9, 9
	cfg.Density = 0
	cfg.Seed = 1
	cfg.Pattern = "blinker"
	cfg.Play = false
	d, err := cfg.NewDriver()
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	defer d.Close()
	if d.Running() {
		t.Fatal("driver must stay paused with -play=false")
	}
	e := d.Engine()
	if e.Population() != 3 || !e.Alive(4, 3) || !e.Alive(4, 5) {
		t.Fatalf("blinker not centred, population %d", e.Population())
	}
}
