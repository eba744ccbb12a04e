package config

import "time"

// View resolution - the visible viewport in logical units.
// Actual rendering scales to fit terminal size.
const (
	ViewWidth  = 120 // Logical viewport width
	ViewHeight = 80  // Logical viewport height (in sub-pixels, so 40 terminal rows)
)

// World dimensions. The camera follows the craft across a wrapping world.
const (
	WorldWidth  = 360
	WorldHeight = 240
)

// Frame loop and fixed physics step.
const (
	FrameRate = 60
	FrameTime = time.Second / FrameRate
	TickRate  = 60
	TickTime  = time.Second / TickRate
	MaxSteps  = 5 // Fixed steps per frame before the accumulator is dropped
)

// Craft body
const (
	CraftBlinkFrequency = 10.0 // Hz while invincible
	CraftHitFlash       = 0.25 // Seconds of camera shake after a hit
	BoltFireInterval    = 0.12 // Seconds between drill bolts
)

// Spawning
const (
	DefaultAsteroidTarget = 40
	DefaultAsteroidReward = 5 // Health restored when an asteroid dies
	AsteroidSpawnGuard    = 1.5
)

// SSH serving
const (
	DefaultSSHHost = "0.0.0.0"
	DefaultSSHPort = "23234"
	DefaultHostKey = ".ssh/id_ed25519"
	ShutdownGrace  = 30 * time.Second
)
