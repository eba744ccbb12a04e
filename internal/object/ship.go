package object

import (
	"math"

	"github.com/tomz197/horde/internal/config"
	"github.com/tomz197/horde/internal/draw"
	"github.com/tomz197/horde/internal/feedback"
)

// Hitbox is a circular collider that can be switched off.
type Hitbox struct {
	Radius float64
	Active bool
}

// SetActive implements feedback.Collider.
func (h *Hitbox) SetActive(on bool) {
	h.Active = on
}

// Ship is the player's craft body. Its runtime state (health, drill, ramming)
// lives in craft.Controller; the ship only moves, fires and shows that state.
type Ship struct {
	X, Y   float64
	VX, VY float64
	Angle  float64 // Radians, 0 = pointing right

	ThrustPower   float64 // Units per second²
	RotationSpeed float64 // Radians per second
	MaxSpeed      float64
	Drag          float64 // Fraction of speed kept per second while coasting
	Brake         float64 // Fraction kept per second while braking
	Size          float64

	FireInterval float64 // Seconds between drill bolts
	fireCooldown float64

	Hit *Hitbox // Takes contact damage
	Ram *Hitbox // Destroys what it touches while ramming

	DrillReady bool // Set by the owner; bolts fire only when true
	Blink      bool // Invincible; drawn blinking
	Hidden     bool // Destroyed; not drawn and not updated
	Ramming    bool
	jets       bool
	age        float64
}

// NewShip creates a ship at (x, y) pointing up.
func NewShip(x, y, fireInterval float64) *Ship {
	return &Ship{
		X:             x,
		Y:             y,
		Angle:         -math.Pi / 2,
		ThrustPower:   40,
		RotationSpeed: 5,
		MaxSpeed:      25,
		Drag:          0.5,
		Brake:         0.05,
		Size:          2,
		FireInterval:  fireInterval,
		Hit:           &Hitbox{Radius: 2, Active: true},
		Ram:           &Hitbox{Radius: 3.5},
	}
}

// Respawn puts the ship back at (x, y), at rest and pointing up. Colliders
// are reset in place so sinks bound to them stay valid.
func (s *Ship) Respawn(x, y float64) {
	s.X, s.Y = x, y
	s.VX, s.VY = 0, 0
	s.Angle = -math.Pi / 2
	s.fireCooldown = 0
	s.Hit.Active = true
	s.Ram.Active = false
	s.DrillReady = false
	s.Blink = false
	s.Hidden = false
	s.Ramming = false
	s.jets = false
}

// Radius returns the ship's active collision radius.
func (s *Ship) Radius() float64 {
	if s.Ram.Active {
		return s.Ram.Radius
	}
	return s.Hit.Radius
}

// SetBool implements feedback.Animator.
func (s *Ship) SetBool(name string, v bool) {
	if name == feedback.ParamRamming {
		s.Ramming = v
	}
}

// SetTrigger implements feedback.Animator. The ship has no triggers; the
// camera shows hits.
func (s *Ship) SetTrigger(string) {}

// SetEmitting implements feedback.Emitter for the ram jets.
func (s *Ship) SetEmitting(on bool) {
	s.jets = on
}

// Emitting reports whether the ram jets are on.
func (s *Ship) Emitting() bool {
	return s.jets
}

// Update handles rotation, thrust, momentum and drill bolts.
func (s *Ship) Update(ctx UpdateContext) (bool, error) {
	if s.Hidden {
		return false, nil
	}
	dt := ctx.Delta.Seconds()
	s.age += dt
	c := ctx.Controls

	s.Angle += c.Horizontal * s.RotationSpeed * dt
	s.Angle = math.Remainder(s.Angle, 2*math.Pi)

	switch {
	case c.Vertical > 0:
		s.VX += math.Cos(s.Angle) * s.ThrustPower * c.Vertical * dt
		s.VY += math.Sin(s.Angle) * s.ThrustPower * c.Vertical * dt
		SpawnThrust(s.tail(), s.Angle, ctx.Spawner)
	case c.Vertical < 0:
		f := math.Pow(s.Brake, dt)
		s.VX *= f
		s.VY *= f
	default:
		f := math.Pow(s.Drag, dt)
		s.VX *= f
		s.VY *= f
	}
	if s.jets {
		SpawnJet(s.tail(), s.Angle, ctx.Spawner)
	}

	speed := math.Hypot(s.VX, s.VY)
	if limit := s.maxSpeed(); speed > limit {
		s.VX *= limit / speed
		s.VY *= limit / speed
	}

	s.X, s.Y = ctx.World.Wrap(s.X+s.VX*dt, s.Y+s.VY*dt)

	s.fireCooldown -= dt
	if c.Drill && s.DrillReady && s.fireCooldown <= 0 && ctx.Spawner != nil {
		s.fireCooldown = s.FireInterval
		nose := s.nose()
		ctx.Spawner.Spawn(NewBolt(nose.X, nose.Y, s.Angle, s.VX, s.VY))
	}
	return false, nil
}

func (s *Ship) maxSpeed() float64 {
	if s.Ramming {
		return s.MaxSpeed * 1.6
	}
	return s.MaxSpeed
}

func (s *Ship) nose() draw.Point {
	return draw.Point{X: s.X + math.Cos(s.Angle)*s.Size, Y: s.Y + math.Sin(s.Angle)*s.Size}
}

func (s *Ship) tail() draw.Point {
	return draw.Point{X: s.X - math.Cos(s.Angle)*s.Size*0.5, Y: s.Y - math.Sin(s.Angle)*s.Size*0.5}
}

// Draw renders the ship as a triangle, with a shield ring while ramming.
func (s *Ship) Draw(ctx DrawContext) error {
	if s.Hidden {
		return nil
	}
	if s.Blink && !ShouldRenderBlink(s.age, config.CraftBlinkFrequency) {
		return nil
	}
	pos := WorldToScreen(s.X, s.Y, ctx)
	for i := 0; i < pos.Count; i++ {
		p := pos.Positions[i]
		s.drawAt(ctx.Canvas, p.X, p.Y)
	}
	return nil
}

func (s *Ship) drawAt(c *draw.Canvas, x, y float64) {
	if s.Ramming {
		c.DrawCircle(x, y, s.Ram.Radius)
	}
	pts := c.BorrowPoints(3)
	pts[0] = draw.Point{X: x + math.Cos(s.Angle)*s.Size*1.5, Y: y + math.Sin(s.Angle)*s.Size*1.5}
	pts[1] = draw.Point{X: x + math.Cos(s.Angle+2.5)*s.Size, Y: y + math.Sin(s.Angle+2.5)*s.Size}
	pts[2] = draw.Point{X: x + math.Cos(s.Angle-2.5)*s.Size, Y: y + math.Sin(s.Angle-2.5)*s.Size}
	c.DrawPolygon(pts, true)
}
