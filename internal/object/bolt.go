package object

import "math"

const (
	BoltSpeed    = 50.0
	BoltLifetime = 1.2 // Seconds
	BoltRadius   = 0.5
)

// Bolt is a drill charge fired from the ship's nose.
type Bolt struct {
	X, Y      float64
	VX, VY    float64
	Life      float64
	destroyed bool
}

// NewBolt fires a bolt along angle, inheriting the shooter's velocity.
func NewBolt(x, y, angle, shooterVX, shooterVY float64) *Bolt {
	return &Bolt{
		X:    x,
		Y:    y,
		VX:   shooterVX + math.Cos(angle)*BoltSpeed,
		VY:   shooterVY + math.Sin(angle)*BoltSpeed,
		Life: BoltLifetime,
	}
}

// MarkDestroyed implements Destructible.
func (b *Bolt) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed implements Destructible.
func (b *Bolt) IsDestroyed() bool {
	return b.destroyed || b.Life <= 0
}

// Update moves the bolt until it expires or hits something.
func (b *Bolt) Update(ctx UpdateContext) (bool, error) {
	if b.destroyed {
		return true, nil
	}
	dt := ctx.Delta.Seconds()
	b.Life -= dt
	if b.Life <= 0 {
		return true, nil
	}
	b.X, b.Y = ctx.World.Wrap(b.X+b.VX*dt, b.Y+b.VY*dt)
	return false, nil
}

// Draw plots the bolt as a short streak.
func (b *Bolt) Draw(ctx DrawContext) error {
	pos := WorldToScreen(b.X, b.Y, ctx)
	for i := 0; i < pos.Count; i++ {
		p := pos.Positions[i]
		ctx.Canvas.SetFloat(p.X, p.Y)
		ctx.Canvas.SetFloat(p.X-b.VX*0.01, p.Y-b.VY*0.01)
	}
	return nil
}
