package object

import (
	"math"

	"github.com/tomz197/horde/internal/config"
	"github.com/tomz197/horde/internal/draw"
	"github.com/tomz197/horde/internal/feedback"
)

const shakeAmplitude = 1.5 // Logical units

// Camera follows the ship. It shakes on the "hit" trigger and widens its
// lead while "ramming" is set.
type Camera struct {
	X, Y    float64
	Ramming bool
	shake   float64
	phase   float64
}

// SetBool implements feedback.Animator.
func (c *Camera) SetBool(name string, v bool) {
	if name == feedback.ParamRamming {
		c.Ramming = v
	}
}

// SetTrigger implements feedback.Animator.
func (c *Camera) SetTrigger(name string) {
	if name == feedback.ParamHit {
		c.shake = config.CraftHitFlash
	}
}

// Shaking reports whether a hit shake is running.
func (c *Camera) Shaking() bool {
	return c.shake > 0
}

// Follow moves the camera onto the ship, leading it along its velocity.
// dt is real seconds so the shake settles during a pause.
func (c *Camera) Follow(s *Ship, dt float64) {
	lead := 0.15
	if c.Ramming {
		lead = 0.35
	}
	c.X = s.X + s.VX*lead
	c.Y = s.Y + s.VY*lead

	if c.shake > 0 {
		c.shake = math.Max(0, c.shake-dt)
		c.phase += dt * 60
	}
}

// View returns the point the view is centred on, including shake.
func (c *Camera) View() draw.Point {
	if c.shake <= 0 {
		return draw.Point{X: c.X, Y: c.Y}
	}
	amp := shakeAmplitude * c.shake / config.CraftHitFlash
	return draw.Point{
		X: c.X + amp*math.Sin(c.phase*1.7),
		Y: c.Y + amp*math.Cos(c.phase*2.3),
	}
}
