package app

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"gol-viz/internal/driver"
	"gol-viz/pkg/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rows        int
	Cols        int
	Scale       int
	TPS         int
	Seed        int64
	Density     float64
	Rule        string
	Fill        string
	Pattern     string
	Generations int
	Play        bool

	// Logger receives driver lifecycle lines. Nil logs to stderr.
	Logger *log.Logger
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := driver.DefaultOptions()
	return &Config{
		Rows:    d.Rows,
		Cols:    d.Cols,
		Scale:   10,
		TPS:     d.TPS,
		Density: d.Density,
		Rule:    d.Rule,
		Fill:    string(d.Fill),
		Play:    true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board height in cells")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board width in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 uses the clock)")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a cell starts alive")
	fs.StringVar(&c.Rule, "rule", c.Rule, "birth/survive rule, e.g. B36/S23")
	fs.StringVar(&c.Fill, "fill", c.Fill, "seeding mode: uniform or clustered")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "stamp this pattern at the centre on start ("+strings.Join(life.Names(), ", ")+")")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations (0 runs until interrupted)")
	fs.BoolVar(&c.Play, "play", c.Play, "start running immediately")
}

// Validate rejects values the simulation cannot start with.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.Rows > driver.MaxDimension || c.Cols > driver.MaxDimension {
		return fmt.Errorf("board is limited to %dx%d", driver.MaxDimension, driver.MaxDimension)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be within [0, 1], got %v", c.Density)
	}
	switch driver.FillMode(c.Fill) {
	case driver.FillUniform, driver.FillClustered:
	default:
		return fmt.Errorf("unknown fill mode %q", c.Fill)
	}
	if c.Pattern != "" {
		if _, err := life.Lookup(c.Pattern); err != nil {
			return err
		}
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", c.Generations)
	}
	return nil
}

// DriverOptions converts the flags into driver options.
func (c *Config) DriverOptions() driver.Options {
	opts := driver.DefaultOptions()
	opts.Rows = c.Rows
	opts.Cols = c.Cols
	opts.TPS = c.TPS
	opts.Seed = c.Seed
	opts.Density = c.Density
	opts.Rule = c.Rule
	opts.Fill = driver.FillMode(c.Fill)
	opts.Logger = c.Logger
	return opts
}

// NewDriver builds the driver described by c and applies the start-up
// pattern and play state.
func (c *Config) NewDriver() (*driver.Driver, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	d := driver.New(c.DriverOptions())
	if c.Pattern != "" {
		if err := d.PlaceCentered(c.Pattern, c.Rows/2, c.Cols/2); err != nil {
			d.Close()
			return nil, err
		}
	}
	if c.Play {
		d.Play()
	}
	return d, nil
}
