package loop

import (
	"time"

	"github.com/tomz197/horde/internal/config"
	"github.com/tomz197/horde/internal/draw"
	"github.com/tomz197/horde/internal/input"
	"github.com/tomz197/horde/internal/object"
	"github.com/tomz197/horde/internal/physics"
)

// gridCell is the spatial grid's cell size. It must be at least twice the
// largest asteroid radius so neighbours are always in adjacent cells.
const gridCell = 12.0

// StepResult reports what the craft ran into during one world step.
type StepResult struct {
	Kills    []*object.Asteroid // Asteroids destroyed by bolts or ramming
	Contacts []*object.Asteroid // Asteroids touching the craft's hit collider
}

// World holds one session's objects. It is not safe for concurrent use.
type World struct {
	Bounds  physics.Bounds
	Ship    *object.Ship
	Objects []object.Object
	toSpawn []object.Object

	spawner *object.AsteroidSpawner
	grid    *physics.SpatialGrid

	// Scratch slices reused across steps.
	bolts     []*object.Bolt
	asteroids []*object.Asteroid
	result    StepResult
}

// NewWorld creates an empty world with the ship at its centre.
func NewWorld(bounds physics.Bounds, game config.Game) *World {
	w := &World{
		Bounds:  bounds,
		Ship:    object.NewShip(bounds.W/2, bounds.H/2, config.BoltFireInterval),
		spawner: object.NewAsteroidSpawner(game.AsteroidTarget, game.AsteroidReward, config.ViewWidth/2),
		grid:    physics.NewSpatialGrid(bounds.W, bounds.H, gridCell),
	}
	w.Reset()
	return w
}

// Reset clears every object and puts the ship back at the centre.
func (w *World) Reset() {
	for _, obj := range w.Objects {
		object.ReleaseObject(obj)
	}
	for _, obj := range w.toSpawn {
		object.ReleaseObject(obj)
	}
	w.Objects = append(w.Objects[:0], w.spawner, w.Ship)
	w.toSpawn = w.toSpawn[:0]
	w.Ship.Respawn(w.Bounds.W/2, w.Bounds.H/2)
}

// Spawn queues obj until the end of the current step. Implements object.Spawner.
func (w *World) Spawn(obj object.Object) {
	w.toSpawn = append(w.toSpawn, obj)
}

// flushSpawned adds the queued objects.
func (w *World) flushSpawned() {
	w.Objects = append(w.Objects, w.toSpawn...)
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// Step advances every object by dt, then resolves collisions. The returned
// result is reused by the next call.
func (w *World) Step(dt time.Duration, controls input.Controls) (StepResult, error) {
	ctx := object.UpdateContext{
		Delta:    dt,
		Controls: controls,
		World:    w.Bounds,
		Focus:    draw.Point{X: w.Ship.X, Y: w.Ship.Y},
		Spawner:  w,
		Objects:  w.Objects,
	}

	kept := w.Objects[:0]
	for _, obj := range w.Objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return StepResult{}, err
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(w.Objects[len(kept):])
	w.Objects = kept
	w.flushSpawned()

	w.collide()
	return w.result, nil
}

// collectCollidables fills the scratch slices from the object list.
func (w *World) collectCollidables() {
	w.bolts = w.bolts[:0]
	w.asteroids = w.asteroids[:0]
	for _, obj := range w.Objects {
		switch o := obj.(type) {
		case *object.Bolt:
			w.bolts = append(w.bolts, o)
		case *object.Asteroid:
			w.asteroids = append(w.asteroids, o)
		}
	}
}

func (w *World) collide() {
	w.result.Kills = w.result.Kills[:0]
	w.result.Contacts = w.result.Contacts[:0]

	w.collectCollidables()
	w.grid.Clear()
	for i, a := range w.asteroids {
		w.grid.Insert(a.X, a.Y, i)
	}

	w.checkBoltHits()
	w.checkAsteroidBounces()
	w.checkShipContacts()
}

// checkBoltHits destroys bolts that hit an unprotected asteroid and records
// the asteroid as a kill.
func (w *World) checkBoltHits() {
	for _, b := range w.bolts {
		if b.IsDestroyed() {
			continue
		}
		w.grid.QueryAround(b.X, b.Y, func(i int) bool {
			a := w.asteroids[i]
			if a.IsDestroyed() || a.IsProtected() || w.hasKill(a) {
				return false
			}
			if w.Bounds.PointInCircle(b.X, b.Y, a.X, a.Y, a.Radius) {
				b.MarkDestroyed()
				w.result.Kills = append(w.result.Kills, a)
				return true
			}
			return false
		})
	}
}

func (w *World) checkAsteroidBounces() {
	for i, a1 := range w.asteroids {
		if a1.IsDestroyed() {
			continue
		}
		w.grid.QueryAround(a1.X, a1.Y, func(j int) bool {
			if j <= i {
				return false
			}
			a2 := w.asteroids[j]
			if a2.IsDestroyed() {
				return false
			}
			dx, dy := w.Bounds.Delta(a1.X, a1.Y, a2.X, a2.Y)
			if dist := w.Bounds.Distance(a1.X, a1.Y, a2.X, a2.Y); dist < a1.Radius+a2.Radius && dist > 0 {
				bounceAsteroids(a1, a2, dx/dist, dy/dist, dist)
			}
			return false
		})
	}
}

// checkShipContacts sorts touching asteroids into kills (ram collider
// active) and contacts (hit collider active).
func (w *World) checkShipContacts() {
	s := w.Ship
	if s.Hidden {
		return
	}
	r := s.Radius()
	w.grid.QueryAround(s.X, s.Y, func(i int) bool {
		a := w.asteroids[i]
		if a.IsDestroyed() || a.IsProtected() || w.hasKill(a) {
			return false
		}
		if !w.Bounds.CirclesOverlap(s.X, s.Y, r, a.X, a.Y, a.Radius) {
			return false
		}
		switch {
		case s.Ram.Active:
			w.result.Kills = append(w.result.Kills, a)
		case s.Hit.Active:
			w.result.Contacts = append(w.result.Contacts, a)
		}
		return false
	})
}

func (w *World) hasKill(a *object.Asteroid) bool {
	for _, k := range w.result.Kills {
		if k == a {
			return true
		}
	}
	return false
}
