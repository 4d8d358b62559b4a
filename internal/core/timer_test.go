package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepCadence(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(10)
	fs.SetClock(clock.now)

	if fs.Due() != 1 {
		t.Fatal("first call must step")
	}
	if fs.Due() != 0 {
		t.Fatal("no time elapsed, must not step")
	}
	clock.advance(50 * time.Millisecond)
	if fs.Due() != 0 {
		t.Fatal("half a tick elapsed, must not step")
	}
	clock.advance(50 * time.Millisecond)
	if fs.Due() != 1 {
		t.Fatal("a full tick elapsed, must step")
	}
	fs.Reset()
	if fs.Due() != 1 {
		t.Fatal("Reset must make the next call step")
	}
}

func TestFixedStepDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != DefaultTPS {
		t.Fatalf("TPS = %d, want %d", fs.TPS(), DefaultTPS)
	}
	fs.SetTPS(20)
	if fs.Interval() != 50*time.Millisecond {
		t.Fatalf("Interval = %v, want 50ms", fs.Interval())
	}
}

func TestFixedStepDueCatchesUp(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStep(240)
	fs.SetClock(clock.now)

	if got := fs.Due(); got != 1 {
		t.Fatalf("first Due = %d, want 1", got)
	}
	clock.advance(20 * time.Millisecond)
	if got := fs.Due(); got != 4 {
		t.Fatalf("Due after 20ms at 240 tps = %d, want 4", got)
	}
	if got := fs.Due(); got != 0 {
		t.Fatalf("Due with no elapsed time = %d, want 0", got)
	}

	clock.advance(time.Second)
	if got := fs.Due(); got != MaxCatchUp {
		t.Fatalf("Due after stall = %d, want %d", got, MaxCatchUp)
	}
	if got := fs.Due(); got != 0 {
		t.Fatalf("backlog beyond MaxCatchUp must be dropped, got %d", got)
	}
}
