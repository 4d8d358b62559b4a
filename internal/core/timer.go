package core

import "time"

const (
	// DefaultTPS is used whenever a non-positive tick rate is requested.
	DefaultTPS = 60
	// MaxCatchUp bounds the ticks Due reports for a single call.
	MaxCatchUp = 8
)

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first Due call after construction or Reset reports one tick.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.Reset()
	return fs
}

// SetClock replaces the time source. Intended for tests.
func (f *FixedStep) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	f.now = now
	f.last = time.Time{}
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = DefaultTPS
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the current tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset forgets accumulated time so the next Due reports a tick immediately.
func (f *FixedStep) Reset() {
	f.accumulator = f.step
	f.last = time.Time{}
}

func (f *FixedStep) advance() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
}

// Due reports how many ticks have elapsed since the previous call, so a
// host looping slower than the tick rate can run several per frame. At most
// MaxCatchUp are reported; time beyond that is dropped.
func (f *FixedStep) Due() int {
	f.advance()
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	return min(n, MaxCatchUp)
}
