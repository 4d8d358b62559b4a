// Package driver owns a Game of Life engine together with the state that
// drives it: the active rule, seeding density, play/pause flag, tick rate and
// pattern selection. A Driver is created once, run from a host loop (Tick) or
// its own loop (Run) and finally closed. It is not safe for concurrent use.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gol-viz/internal/core"
	pcore "gol-viz/pkg/core"
	"gol-viz/pkg/life"

	"github.com/google/uuid"
)

// ErrClosed is returned by Run once the driver has been closed.
var ErrClosed = errors.New("driver: closed")

// FillMode selects how Randomize seeds the board.
type FillMode string

const (
	// FillUniform gives every cell the same chance of being alive.
	FillUniform FillMode = "uniform"
	// FillClustered modulates the density with Perlin noise.
	FillClustered FillMode = "clustered"
)

const (
	// MaxTPS bounds the tick-rate control.
	MaxTPS = 240
	// MaxDimension bounds the row and column controls.
	MaxDimension = 1000
)

// Options configures a Driver.
type Options struct {
	Rows, Cols   int
	TPS          int
	Density      float64
	Rule         string
	Fill         FillMode
	ClusterScale float64
	Seed         int64
	Logger       *log.Logger
}

// DefaultOptions mirrors the browser defaults: an 80x50 board seeded at 25%.
func DefaultOptions() Options {
	cfg := life.DefaultConfig()
	return Options{
		Rows:         cfg.Rows,
		Cols:         cfg.Cols,
		TPS:          10,
		Density:      0.25,
		Rule:         life.DefaultRule().String(),
		Fill:         FillUniform,
		ClusterScale: life.DefaultClusterScale,
	}
}

// Frame is a read-only view of the board for renderers.
type Frame struct {
	Grid       life.Grid
	Generation int
	Population int
	Rule       life.Rule
	Running    bool
}

// Driver runs a single engine.
type Driver struct {
	id       string
	opts     Options
	engine   *life.Engine
	rule     life.Rule
	density  float64
	running  bool
	closed   bool
	selected string

	clock *core.FixedStep
	rng   *pcore.RNG
	log   *log.Logger
}

// New builds a driver and seeds the initial board.
func New(opts Options) *Driver {
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, "life: ", log.LstdFlags)
	}
	if opts.Fill == "" {
		opts.Fill = FillUniform
	}
	if opts.ClusterScale <= 0 {
		opts.ClusterScale = DefaultOptions().ClusterScale
	}
	d := &Driver{
		id:      uuid.NewString(),
		opts:    opts,
		density: clampDensity(opts.Density),
		clock:   core.NewFixedStep(clampTPS(opts.TPS)),
		rng:     pcore.NewRNG(opts.Seed),
		log:     opts.Logger,
	}
	d.engine = d.newEngine(opts.Rows, opts.Cols)
	d.rule = life.ParseRuleOr(opts.Rule, life.DefaultRule())
	d.seed()
	d.logf("created %dx%d board, rule %s", d.engine.Rows(), d.engine.Cols(), d.rule)
	return d
}

func (d *Driver) newEngine(rows, cols int) *life.Engine {
	return life.NewWithConfig(life.Config{Rows: rows, Cols: cols, Seed: d.rng.Int64() | 1})
}

func (d *Driver) logf(format string, args ...any) {
	d.log.Printf("session=%s %s", d.id, fmt.Sprintf(format, args...))
}

func clampDensity(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func clampTPS(tps int) int {
	if tps <= 0 {
		return core.DefaultTPS
	}
	return min(tps, MaxTPS)
}

// ID returns the session identifier used in log lines.
func (d *Driver) ID() string { return d.id }

// Engine exposes the engine for read access.
func (d *Driver) Engine() *life.Engine { return d.engine }

// Rule returns the active rule.
func (d *Driver) Rule() life.Rule { return d.rule }

// SetRule parses s and makes it the active rule. A malformed string installs
// the default rule and the parse error is returned.
func (d *Driver) SetRule(s string) error {
	if d.closed {
		return ErrClosed
	}
	rule, err := life.ParseRule(s)
	if err != nil {
		d.rule = life.DefaultRule()
		d.logf("rule %q rejected, using %s", s, d.rule)
		return err
	}
	d.rule = rule
	d.logf("rule set to %s", rule)
	return nil
}

// Density returns the seeding probability.
func (d *Driver) Density() float64 { return d.density }

// SetDensity sets the seeding probability, clamped to [0, 1].
func (d *Driver) SetDensity(p float64) {
	if d.closed {
		return
	}
	d.density = clampDensity(p)
}

// TPS returns the target generations per second.
func (d *Driver) TPS() int { return d.clock.TPS() }

// SetTPS changes the stepping cadence.
func (d *Driver) SetTPS(tps int) {
	if d.closed {
		return
	}
	d.clock.SetTPS(clampTPS(tps))
}

// Running reports whether Tick and Run advance the board.
func (d *Driver) Running() bool { return d.running }

// Play starts automatic stepping.
func (d *Driver) Play() {
	if d.closed || d.running {
		return
	}
	d.running = true
	d.clock.Reset()
	d.logf("play at %d tps", d.clock.TPS())
}

// Pause stops automatic stepping.
func (d *Driver) Pause() {
	if !d.running {
		return
	}
	d.running = false
	d.logf("pause at generation %d", d.engine.Generation())
}

// TogglePlay flips between Play and Pause and returns the new state.
func (d *Driver) TogglePlay() bool {
	if d.running {
		d.Pause()
	} else {
		d.Play()
	}
	return d.running
}

// Tick advances the board by every generation the clock has made due since
// the last call, so rates above the host frame rate are still delivered. It
// reports whether a step happened.
func (d *Driver) Tick() bool {
	if d.closed || !d.running {
		return false
	}
	n := d.clock.Due()
	for range n {
		d.engine.Step(d.rule)
	}
	return n > 0
}

// StepOnce advances exactly one generation regardless of the run state.
func (d *Driver) StepOnce() life.Result {
	if d.closed {
		return life.Result{}
	}
	return d.engine.Step(d.rule)
}

// Randomize reseeds the board at the current density and resets the
// generation counter.
func (d *Driver) Randomize() {
	if d.closed {
		return
	}
	d.seed()
}

func (d *Driver) seed() {
	switch d.opts.Fill {
	case FillClustered:
		d.engine.RandomizeClustered(d.density, d.opts.ClusterScale)
	default:
		d.engine.Randomize(d.density)
	}
}

// Clear stops the simulation and replaces the engine with an empty board of
// the same size.
func (d *Driver) Clear() {
	if d.closed {
		return
	}
	d.Pause()
	d.selected = ""
	d.engine = d.newEngine(d.engine.Rows(), d.engine.Cols())
	d.logf("cleared")
}

// Resize changes the board dimensions, keeping the top-left overlap.
func (d *Driver) Resize(rows, cols int) {
	if d.closed {
		return
	}
	d.engine.Resize(min(rows, MaxDimension), min(cols, MaxDimension))
	d.logf("resized to %dx%d", d.engine.Rows(), d.engine.Cols())
}

// ToggleCell flips a single cell; out-of-range coordinates are ignored.
func (d *Driver) ToggleCell(r, c int) {
	if d.closed {
		return
	}
	d.engine.ToggleCell(r, c)
}

// Place stamps the named pattern with its top-left corner at (r, c).
func (d *Driver) Place(name string, r, c int) error {
	p, err := d.pattern(name)
	if err != nil {
		return err
	}
	p.Place(d.engine, r, c)
	return nil
}

// PlaceCentered stamps the named pattern centred on (r, c).
func (d *Driver) PlaceCentered(name string, r, c int) error {
	p, err := d.pattern(name)
	if err != nil {
		return err
	}
	p.PlaceCentered(d.engine, r, c)
	return nil
}

// PlaceRandom stamps the named pattern wherever it fits.
func (d *Driver) PlaceRandom(name string) error {
	p, err := d.pattern(name)
	if err != nil {
		return err
	}
	p.PlaceRandom(d.engine)
	return nil
}

func (d *Driver) pattern(name string) (life.Pattern, error) {
	if d.closed {
		return life.Pattern{}, ErrClosed
	}
	return life.Lookup(name)
}

// Selected returns the pattern armed for the next Click, if any.
func (d *Driver) Selected() string { return d.selected }

// SelectPattern arms name for placement by the next Click. Selecting the
// pattern that is already armed places it at random instead and disarms it.
// It reports whether a placement happened.
func (d *Driver) SelectPattern(name string) (bool, error) {
	if _, err := d.pattern(name); err != nil {
		return false, err
	}
	if d.selected == name {
		d.selected = ""
		return true, d.PlaceRandom(name)
	}
	d.selected = name
	return false, nil
}

// CancelSelection disarms any selected pattern.
func (d *Driver) CancelSelection() {
	if d.closed {
		return
	}
	d.selected = ""
}

// Click applies a pointer press on cell (r, c): it places the armed pattern
// centred there, or toggles the cell when nothing is armed.
func (d *Driver) Click(r, c int) {
	if d.closed {
		return
	}
	if d.selected == "" {
		d.engine.ToggleCell(r, c)
		return
	}
	name := d.selected
	d.selected = ""
	if err := d.PlaceCentered(name, r, c); err != nil {
		d.logf("place %s: %v", name, err)
	}
}

// Frame captures the current board.
func (d *Driver) Frame() Frame {
	return Frame{
		Grid:       d.engine.Grid(),
		Generation: d.engine.Generation(),
		Population: d.engine.Population(),
		Rule:       d.rule,
		Running:    d.running,
	}
}

// Run steps the board at the configured TPS while running, calling fn with a
// fresh frame after each step. It returns when ctx is done, the driver is
// closed, or fn returns false.
func (d *Driver) Run(ctx context.Context, fn func(Frame) bool) error {
	if d.closed {
		return ErrClosed
	}
	interval := d.clock.Interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if d.closed {
			return ErrClosed
		}
		if iv := d.clock.Interval(); iv != interval {
			interval = iv
			ticker.Reset(iv)
		}
		if !d.running {
			continue
		}
		d.engine.Step(d.rule)
		if fn != nil && !fn(d.Frame()) {
			return nil
		}
	}
}

// Close stops the driver. Later mutating calls are ignored.
func (d *Driver) Close() error {
	if d.closed {
		return nil
	}
	d.Pause()
	d.closed = true
	d.logf("closed at generation %d", d.engine.Generation())
	return nil
}
