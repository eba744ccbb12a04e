// Package object holds the world's entities: the player's ship, asteroids,
// drill bolts and particles.
package object

import (
	"time"

	"github.com/tomz197/horde/internal/draw"
	"github.com/tomz197/horde/internal/input"
	"github.com/tomz197/horde/internal/physics"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta    time.Duration
	Controls input.Controls
	World    physics.Bounds
	Focus    draw.Point // Where the player is; spawns keep their distance
	Spawner  Spawner
	Objects  []Object
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas
	Camera draw.Point // World position at the centre of the view
	View   physics.Bounds
	World  physics.Bounds
}

// Object is a drawable and updatable world entity.
type Object interface {
	// Update advances the object. Returns true if it should be removed.
	Update(ctx UpdateContext) (remove bool, err error)
	Draw(ctx DrawContext) error
}

// Destructible is implemented by objects that can be marked for removal.
type Destructible interface {
	MarkDestroyed()
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects.
type Releasable interface {
	Release()
}

// ReleaseObject returns obj to its pool if it has one.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// ScreenPositions holds up to 4 view positions of a world-wrapped object.
type ScreenPositions struct {
	Positions [4]draw.Point
	Count     int
}

// WorldToScreen converts a world position to view positions relative to the
// camera, one per wrapped copy that falls inside the view.
func WorldToScreen(x, y float64, ctx DrawContext) ScreenPositions {
	var result ScreenPositions

	left := ctx.Camera.X - ctx.View.W/2
	top := ctx.Camera.Y - ctx.View.H/2
	sx0 := x - left
	sy0 := y - top

	const margin = 10.0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			sx := sx0 + float64(dx)*ctx.World.W
			sy := sy0 + float64(dy)*ctx.World.H
			if sx < -margin || sx > ctx.View.W+margin || sy < -margin || sy > ctx.View.H+margin {
				continue
			}
			if result.Count < len(result.Positions) {
				result.Positions[result.Count] = draw.Point{X: sx, Y: sy}
				result.Count++
			}
		}
	}
	return result
}

// ShouldRenderBlink reports whether an object blinking at frequency Hz is in
// its visible phase at time t (seconds).
func ShouldRenderBlink(t, frequency float64) bool {
	return int(t*frequency)%2 == 0
}
