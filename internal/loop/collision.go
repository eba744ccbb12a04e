package loop

import (
	"github.com/tomz197/horde/internal/craft"
	"github.com/tomz197/horde/internal/object"
)

// Damager is the part of the craft a collision policy may hurt.
type Damager interface {
	Damage(amount int) (craft.Outcome, []craft.Effect)
}

// CollisionHandler decides what touching an asteroid does to the craft.
// It runs for every contact on every world step; the craft's invincibility
// window keeps repeated contacts from stacking.
type CollisionHandler func(target Damager, a *object.Asteroid) []craft.Effect

// NoCollision ignores contacts. Asteroids pass through the craft.
func NoCollision(Damager, *object.Asteroid) []craft.Effect {
	return nil
}

// DamageOnContact hurts the craft by amount per contact. A non-positive
// amount is the same as NoCollision.
func DamageOnContact(amount int) CollisionHandler {
	if amount <= 0 {
		return NoCollision
	}
	return func(target Damager, _ *object.Asteroid) []craft.Effect {
		_, fx := target.Damage(amount)
		return fx
	}
}

// bounceAsteroids resolves an elastic collision between two overlapping
// asteroids. (nx, ny) is the unit normal from a1 to a2 and dist their
// centre distance.
func bounceAsteroids(a1, a2 *object.Asteroid, nx, ny, dist float64) {
	dvn := (a1.VX-a2.VX)*nx + (a1.VY-a2.VY)*ny
	if dvn < 0 {
		return // Already separating
	}

	// Mass by area.
	m1 := a1.Radius * a1.Radius
	m2 := a2.Radius * a2.Radius
	total := m1 + m2

	impulse := 2 * dvn / total
	a1.VX -= impulse * m2 * nx
	a1.VY -= impulse * m2 * ny
	a2.VX += impulse * m1 * nx
	a2.VY += impulse * m1 * ny

	if overlap := a1.Radius + a2.Radius - dist; overlap > 0 {
		sep1 := overlap * m2 / total
		sep2 := overlap * m1 / total
		a1.X -= nx * sep1
		a1.Y -= ny * sep1
		a2.X += nx * sep2
		a2.Y += ny * sep2
	}
}
