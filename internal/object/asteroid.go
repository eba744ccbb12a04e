package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/horde/internal/craft"
	"github.com/tomz197/horde/internal/draw"
	"github.com/tomz197/horde/internal/physics"
)

// AsteroidSize is the size category of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

var asteroidRadii = map[AsteroidSize]float64{
	AsteroidSmall:  1.5,
	AsteroidMedium: 3.0,
	AsteroidLarge:  5.0,
}

var asteroidSpeeds = map[AsteroidSize]float64{
	AsteroidSmall:  15.0,
	AsteroidMedium: 10.0,
	AsteroidLarge:  6.0,
}

// Weight is how much the size counts toward the spawner's target.
func (s AsteroidSize) Weight() int {
	switch s {
	case AsteroidLarge:
		return 4
	case AsteroidMedium:
		return 2
	default:
		return 1
	}
}

// HealthAdjuster receives the reward of a destroyed asteroid.
// craft.Controller implements it.
type HealthAdjuster interface {
	AdjustHealth(delta int) (craft.Outcome, []craft.Effect)
}

// Asteroid is a drifting rock. Destroying it heals the craft by Reward.
type Asteroid struct {
	X, Y            float64
	VX, VY          float64
	Angle           float64
	RotationSpeed   float64
	Size            AsteroidSize
	Radius          float64
	Vertices        []float64 // Vertex distances from the centre
	Reward          int
	Destroyed       bool
	SpawnProtection float64 // Seconds left before it can be hit
	rewarded        bool
}

// NewAsteroid creates an asteroid at (x, y). A negative angle picks a random heading.
func NewAsteroid(x, y float64, size AsteroidSize, angle float64, reward int) *Asteroid {
	radius := asteroidRadii[size]
	speed := asteroidSpeeds[size]
	if angle < 0 {
		angle = rand.Float64() * 2 * math.Pi
	}

	vertices := make([]float64, 8+rand.Intn(5))
	for i := range vertices {
		vertices[i] = radius * (0.7 + rand.Float64()*0.6)
	}

	return &Asteroid{
		X:             x,
		Y:             y,
		VX:            math.Cos(angle) * speed,
		VY:            math.Sin(angle) * speed,
		Angle:         rand.Float64() * 2 * math.Pi,
		RotationSpeed: (rand.Float64() - 0.5) * 2,
		Size:          size,
		Radius:        radius,
		Vertices:      vertices,
		Reward:        reward,
	}
}

// NewAsteroidAway places an asteroid at a random spot at least minDist from
// focus, protected for protection seconds.
func NewAsteroidAway(world physics.Bounds, focus draw.Point, minDist float64, size AsteroidSize, protection float64, reward int) *Asteroid {
	if limit := math.Min(world.W, world.H) / 2; minDist > limit {
		minDist = limit
	}
	var x, y float64
	for i := 0; i < 16; i++ {
		x = rand.Float64() * world.W
		y = rand.Float64() * world.H
		if world.Distance(x, y, focus.X, focus.Y) >= minDist {
			break
		}
	}
	a := NewAsteroid(x, y, size, -1, reward)
	a.SpawnProtection = protection
	return a
}

// IsProtected reports whether the asteroid is still spawn-protected.
func (a *Asteroid) IsProtected() bool {
	return a.SpawnProtection > 0
}

// Die marks the asteroid destroyed and pays its reward into target once.
// Later calls return OutcomeUnchanged with no effects.
func (a *Asteroid) Die(target HealthAdjuster) (craft.Outcome, []craft.Effect) {
	a.Destroyed = true
	if a.rewarded || target == nil {
		return craft.OutcomeUnchanged, nil
	}
	a.rewarded = true
	return target.AdjustHealth(a.Reward)
}

// Update moves the asteroid. A destroyed asteroid bursts into particles and
// two smaller fragments, then asks to be removed.
func (a *Asteroid) Update(ctx UpdateContext) (bool, error) {
	if a.Destroyed {
		SpawnExplosion(a.X, a.Y, int(a.Size)*4, 20, 0.5, ctx.Spawner)
		if a.Size > AsteroidSmall && ctx.Spawner != nil {
			for i := 0; i < 2; i++ {
				ctx.Spawner.Spawn(NewAsteroid(a.X, a.Y, a.Size-1, -1, a.Reward))
			}
		}
		return true, nil
	}

	dt := ctx.Delta.Seconds()
	a.SpawnProtection = math.Max(0, a.SpawnProtection-dt)
	a.Angle += a.RotationSpeed * dt
	a.X, a.Y = ctx.World.Wrap(a.X+a.VX*dt, a.Y+a.VY*dt)
	return false, nil
}

// Draw renders the asteroid as an irregular outline, blinking while protected.
func (a *Asteroid) Draw(ctx DrawContext) error {
	if a.IsProtected() && !ShouldRenderBlink(a.SpawnProtection, 5) {
		return nil
	}
	pos := WorldToScreen(a.X, a.Y, ctx)
	for i := 0; i < pos.Count; i++ {
		a.drawAt(ctx.Canvas, pos.Positions[i].X, pos.Positions[i].Y)
	}
	return nil
}

func (a *Asteroid) drawAt(c *draw.Canvas, x, y float64) {
	n := len(a.Vertices)
	points := c.BorrowPoints(n)
	for i, dist := range a.Vertices {
		angle := a.Angle + float64(i)*2*math.Pi/float64(n)
		points[i] = draw.Point{X: x + math.Cos(angle)*dist, Y: y + math.Sin(angle)*dist}
	}
	c.DrawPolygon(points, false)
}

// MarkDestroyed implements Destructible without paying the reward.
func (a *Asteroid) MarkDestroyed() {
	a.Destroyed = true
}

// IsDestroyed implements Destructible.
func (a *Asteroid) IsDestroyed() bool {
	return a.Destroyed
}
