package craft

import (
	"math"
	"testing"
	"time"
)

// testClock is a hand-driven Clock. Its scale follows the TimeScale effects
// fed to apply, the way the dispatcher drives the real clock.
type testClock struct {
	now, unscaled, delta time.Duration
	scale                float64
}

func newTestClock() *testClock {
	return &testClock{scale: 1}
}

func (c *testClock) Now() time.Duration      { return c.now }
func (c *testClock) Unscaled() time.Duration { return c.unscaled }
func (c *testClock) Delta() time.Duration    { return c.delta }

func (c *testClock) advance(d time.Duration) {
	c.unscaled += d
	c.delta = time.Duration(float64(d) * c.scale)
	c.now += c.delta
}

func (c *testClock) apply(fx []Effect) []Effect {
	for _, e := range fx {
		if e.Kind == EffectTimeScale {
			c.scale = e.Value
		}
	}
	return fx
}

// newRunning returns a spawned controller whose spawn hold has been released.
func newRunning(t *testing.T, cfg Config, opts ...Option) (*Controller, *testClock) {
	t.Helper()
	clk := newTestClock()
	c := New(cfg, clk, opts...)
	clk.apply(c.Spawn())
	clk.apply(c.Begin())
	if clk.scale != 1 {
		t.Fatalf("scale after Begin = %v, want 1", clk.scale)
	}
	return c, clk
}

// tick advances the clock by d and runs one frame tick.
func tick(c *Controller, clk *testClock, d time.Duration, drilling bool) Effects {
	clk.advance(d)
	return clk.apply(c.Tick(TickInput{Drilling: drilling}))
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func kinds(fx []Effect) []EffectKind {
	out := make([]EffectKind, len(fx))
	for i, e := range fx {
		out[i] = e.Kind
	}
	return out
}
