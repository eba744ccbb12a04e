package loop

import (
	"testing"

	"github.com/tomz197/horde/internal/config"
	"github.com/tomz197/horde/internal/input"
	"github.com/tomz197/horde/internal/object"
	"github.com/tomz197/horde/internal/physics"
)

func newTestWorld() *World {
	return NewWorld(physics.Bounds{W: 120, H: 120}, config.Game{})
}

func TestWorldBoltKillAcrossSeam(t *testing.T) {
	w := newTestWorld()
	rock := object.NewAsteroid(1, 60, object.AsteroidLarge, 0, 1)
	rock.VX, rock.VY = 0, 0
	bolt := object.NewBolt(118.5, 60, 0, 0, 0)
	bolt.VX = 0
	w.Objects = append(w.Objects, rock, bolt)

	res, err := w.Step(config.TickTime, input.Controls{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Kills) != 1 || res.Kills[0] != rock {
		t.Fatalf("kills = %v", res.Kills)
	}
	if !bolt.IsDestroyed() {
		t.Error("bolt survived its hit")
	}
	if rock.IsDestroyed() {
		t.Error("world destroyed the asteroid; that is the session's call")
	}
}

func TestWorldSkipsProtectedAsteroids(t *testing.T) {
	w := newTestWorld()
	rock := object.NewAsteroid(w.Ship.X, w.Ship.Y, object.AsteroidSmall, 0, 1)
	rock.VX, rock.VY = 0, 0
	rock.SpawnProtection = 10
	w.Objects = append(w.Objects, rock)

	res, _ := w.Step(config.TickTime, input.Controls{})
	if len(res.Contacts) != 0 || len(res.Kills) != 0 {
		t.Errorf("protected asteroid collided: %+v", res)
	}
}

func TestWorldResetKeepsShip(t *testing.T) {
	w := newTestWorld()
	ship := w.Ship
	ship.X = 3
	w.Spawn(object.NewParticle(0, 0, 0, 0, 1))
	w.Objects = append(w.Objects, object.NewAsteroid(10, 10, object.AsteroidSmall, 0, 1))

	w.Reset()
	if w.Ship != ship || ship.X != 60 {
		t.Errorf("ship replaced or not recentred: %v", ship.X)
	}
	if len(w.Objects) != 2 || len(w.toSpawn) != 0 {
		t.Errorf("objects = %d, queued = %d", len(w.Objects), len(w.toSpawn))
	}
}

func TestBounceSeparatesAsteroids(t *testing.T) {
	a1 := object.NewAsteroid(10, 10, object.AsteroidMedium, 0, 1)
	a2 := object.NewAsteroid(14, 10, object.AsteroidMedium, 0, 1)
	a1.VX, a1.VY = 5, 0
	a2.VX, a2.VY = -5, 0

	bounceAsteroids(a1, a2, 1, 0, 4)
	if a1.VX >= 0 || a2.VX <= 0 {
		t.Errorf("velocities after bounce: %v, %v", a1.VX, a2.VX)
	}
	if d := a2.X - a1.X; d < a1.Radius+a2.Radius-1e-9 {
		t.Errorf("still overlapping: distance %v", d)
	}
}
