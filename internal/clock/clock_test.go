package clock

import (
	"testing"
	"time"
)

func newTestClock() (*SimClock, *ManualTimeProvider) {
	tp := NewManualTimeProvider(time.Unix(1000, 0))
	c := New(tp)
	c.Tick()
	return c, tp
}

func TestFirstTickSetsEpoch(t *testing.T) {
	c, _ := newTestClock()
	if c.Now() != 0 || c.Unscaled() != 0 {
		t.Fatalf("expected zero times after first tick, got scaled=%v unscaled=%v", c.Now(), c.Unscaled())
	}
	if c.Delta() != 0 {
		t.Fatalf("expected zero delta after first tick, got %v", c.Delta())
	}
}

func TestTickAdvancesBothTimelinesAtNormalScale(t *testing.T) {
	c, tp := newTestClock()
	tp.Advance(16 * time.Millisecond)
	c.Tick()

	if c.Now() != 16*time.Millisecond {
		t.Errorf("scaled time = %v, want 16ms", c.Now())
	}
	if c.Unscaled() != 16*time.Millisecond {
		t.Errorf("unscaled time = %v, want 16ms", c.Unscaled())
	}
	if c.Delta() != 16*time.Millisecond || c.UnscaledDelta() != 16*time.Millisecond {
		t.Errorf("deltas = %v/%v, want 16ms/16ms", c.Delta(), c.UnscaledDelta())
	}
}

func TestZeroScaleFreezesScaledTime(t *testing.T) {
	c, tp := newTestClock()
	c.SetScale(0)
	if !c.IsPaused() {
		t.Fatal("expected clock to report paused")
	}

	tp.Advance(time.Second)
	c.Tick()

	if c.Now() != 0 {
		t.Errorf("scaled time moved while paused: %v", c.Now())
	}
	if c.Delta() != 0 {
		t.Errorf("scaled delta should be 0 while paused, got %v", c.Delta())
	}
	if c.Unscaled() != time.Second {
		t.Errorf("unscaled time = %v, want 1s", c.Unscaled())
	}
}

func TestScaleChangeAppliesFromNextTick(t *testing.T) {
	c, tp := newTestClock()
	tp.Advance(100 * time.Millisecond)
	c.Tick()
	c.SetScale(0.5)
	tp.Advance(100 * time.Millisecond)
	c.Tick()

	if c.Now() != 150*time.Millisecond {
		t.Errorf("scaled time = %v, want 150ms", c.Now())
	}
	if c.Unscaled() != 200*time.Millisecond {
		t.Errorf("unscaled time = %v, want 200ms", c.Unscaled())
	}
}

func TestNegativeScaleClampsToZero(t *testing.T) {
	c, _ := newTestClock()
	c.SetScale(-3)
	if c.Scale() != 0 {
		t.Fatalf("scale = %v, want 0", c.Scale())
	}
}

func TestAdvanceIgnoresNegativeDurations(t *testing.T) {
	c, _ := newTestClock()
	c.Advance(-time.Second)
	if c.Now() != 0 || c.Unscaled() != 0 {
		t.Fatalf("negative advance moved the clock: %v/%v", c.Now(), c.Unscaled())
	}
}

func TestNilProviderUsesSystemClock(t *testing.T) {
	c := New(nil)
	c.Tick()
	time.Sleep(2 * time.Millisecond)
	c.Tick()
	if c.Unscaled() <= 0 {
		t.Fatalf("expected real time to pass, got %v", c.Unscaled())
	}
}
