package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/horde/internal/draw"
)

var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived dot: explosion debris or engine exhaust.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Life     float64 // Seconds remaining
	MaxLife  float64
	Drag     float64 // Fraction of speed kept per 1/60 s
	released bool
}

// NewParticle takes a particle from the pool.
func NewParticle(x, y, vx, vy, life float64) *Particle {
	p := particlePool.Get().(*Particle)
	*p = Particle{X: x, Y: y, VX: vx, VY: vy, Life: life, MaxLife: life, Drag: 0.95}
	return p
}

// Release returns the particle to the pool. Safe to call twice.
func (p *Particle) Release() {
	if p.released {
		return
	}
	p.released = true
	particlePool.Put(p)
}

// SpawnExplosion emits count particles in a ring around (x, y).
func SpawnExplosion(x, y float64, count int, speed, life float64, spawner Spawner) {
	if spawner == nil {
		return
	}
	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		spd := speed * (0.5 + rand.Float64())
		l := life * (0.5 + rand.Float64()*0.5)
		spawner.Spawn(NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, l))
	}
}

// SpawnThrust emits exhaust behind a thrusting ship.
func SpawnThrust(at draw.Point, angle float64, spawner Spawner) {
	spawnExhaust(at, angle, 1+rand.Intn(2), 8, 0.5, spawner)
}

// SpawnJet emits the wider, faster exhaust of the ram jets.
func SpawnJet(at draw.Point, angle float64, spawner Spawner) {
	spawnExhaust(at, angle, 2+rand.Intn(2), 16, 0.9, spawner)
}

func spawnExhaust(at draw.Point, angle float64, count int, speed, spread float64, spawner Spawner) {
	if spawner == nil {
		return
	}
	for i := 0; i < count; i++ {
		a := angle + math.Pi + (rand.Float64()-0.5)*spread
		spd := speed + rand.Float64()*speed/2
		p := NewParticle(at.X, at.Y, math.Cos(a)*spd, math.Sin(a)*spd, 0.1+rand.Float64()*0.15)
		p.Drag = 0.85
		spawner.Spawn(p)
	}
}

// Update moves the particle and reports when its life runs out.
func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()
	p.Life -= dt
	if p.Life <= 0 {
		return true, nil
	}
	drag := math.Pow(p.Drag, dt*60)
	p.VX *= drag
	p.VY *= drag
	p.X, p.Y = ctx.World.Wrap(p.X+p.VX*dt, p.Y+p.VY*dt)
	return false, nil
}

// Draw plots the particle until its last quarter of life.
func (p *Particle) Draw(ctx DrawContext) error {
	if p.MaxLife > 0 && p.Life/p.MaxLife < 0.25 {
		return nil
	}
	pos := WorldToScreen(p.X, p.Y, ctx)
	for i := 0; i < pos.Count; i++ {
		ctx.Canvas.SetFloat(pos.Positions[i].X, pos.Positions[i].Y)
	}
	return nil
}
