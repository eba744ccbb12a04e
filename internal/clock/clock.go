// Package clock provides the simulation time source shared by the frame tick
// and the fixed-step physics tick.
package clock

import "time"

// TimeProvider supplies wall-clock readings to a SimClock.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the system clock (monotonic).
type RealTimeProvider struct{}

// Now returns the current time using the system clock.
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// SimClock tracks scaled simulation time next to unscaled real time.
// A scale of 0 freezes simulation time while unscaled time keeps running,
// which is what pause timers must be measured against.
//
// SimClock is not safe for concurrent use; it is owned by one game loop.
type SimClock struct {
	provider TimeProvider
	last     time.Time
	started  bool

	scale         float64
	scaled        time.Duration // Simulation time since epoch (affected by scale)
	unscaled      time.Duration // Real time since epoch
	delta         time.Duration // Scaled length of the last tick
	unscaledDelta time.Duration // Real length of the last tick
}

// New creates a clock running at normal speed. A nil provider uses the system clock.
func New(provider TimeProvider) *SimClock {
	if provider == nil {
		provider = RealTimeProvider{}
	}
	return &SimClock{
		provider: provider,
		scale:    1,
	}
}

// Tick samples the time provider and advances the clock by the real time
// elapsed since the previous Tick. The first Tick only sets the epoch.
func (c *SimClock) Tick() {
	now := c.provider.Now()
	if !c.started {
		c.started = true
		c.last = now
		c.delta = 0
		c.unscaledDelta = 0
		return
	}
	elapsed := now.Sub(c.last)
	c.last = now
	c.Advance(elapsed)
}

// Advance moves the clock forward by a real duration, applying the current scale
// to the simulation side.
func (c *SimClock) Advance(real time.Duration) {
	if real < 0 {
		real = 0
	}
	c.unscaledDelta = real
	c.unscaled += real
	c.delta = time.Duration(float64(real) * c.scale)
	c.scaled += c.delta
}

// Now returns scaled simulation time since the epoch.
func (c *SimClock) Now() time.Duration {
	return c.scaled
}

// Unscaled returns real time since the epoch, unaffected by the scale.
func (c *SimClock) Unscaled() time.Duration {
	return c.unscaled
}

// Delta returns the scaled length of the last tick.
func (c *SimClock) Delta() time.Duration {
	return c.delta
}

// UnscaledDelta returns the real length of the last tick.
func (c *SimClock) UnscaledDelta() time.Duration {
	return c.unscaledDelta
}

// Scale returns the current simulation scale (0 = paused, 1 = normal).
func (c *SimClock) Scale() float64 {
	return c.scale
}

// SetScale changes the simulation scale. Negative values are treated as 0.
// The new scale applies from the next tick on.
func (c *SimClock) SetScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	c.scale = scale
}

// IsPaused reports whether simulation time is frozen.
func (c *SimClock) IsPaused() bool {
	return c.scale == 0
}
