package object

import "github.com/tomz197/horde/internal/config"

// AsteroidSpawner keeps the weighted asteroid population at a target level.
// Large rocks weigh 4, medium 2, small 1.
type AsteroidSpawner struct {
	target  int
	reward  int
	minDist float64
}

// NewAsteroidSpawner creates a spawner. New rocks appear at least minDist
// from the focus and pay reward when destroyed.
func NewAsteroidSpawner(target, reward int, minDist float64) *AsteroidSpawner {
	if target < 0 {
		target = 0
	}
	return &AsteroidSpawner{target: target, reward: reward, minDist: minDist}
}

// Update tops the population back up when it drops more than a large rock below target.
func (s *AsteroidSpawner) Update(ctx UpdateContext) (bool, error) {
	if s.target == 0 || ctx.Spawner == nil {
		return false, nil
	}
	count := Population(ctx.Objects)
	if s.target-count <= AsteroidLarge.Weight() {
		return false, nil
	}
	for count < s.target {
		size := AsteroidSmall
		switch missing := s.target - count; {
		case missing >= AsteroidLarge.Weight():
			size = AsteroidLarge
		case missing >= AsteroidMedium.Weight():
			size = AsteroidMedium
		}
		count += size.Weight()
		ctx.Spawner.Spawn(NewAsteroidAway(ctx.World, ctx.Focus, s.minDist, size, config.AsteroidSpawnGuard, s.reward))
	}
	return false, nil
}

// Draw is a no-op.
func (s *AsteroidSpawner) Draw(DrawContext) error {
	return nil
}

// Population sums the weights of the live asteroids in objs.
func Population(objs []Object) int {
	total := 0
	for _, obj := range objs {
		if a, ok := obj.(*Asteroid); ok && !a.Destroyed {
			total += a.Size.Weight()
		}
	}
	return total
}
