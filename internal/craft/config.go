package craft

import "time"

// Config holds the craft's tunables.
type Config struct {
	MaxHealth     int           // Health at spawn and upper clamp (>= 1)
	DangerBelow   int           // Danger indicator shows at or below this health
	InvincibleFor time.Duration // Invincibility window after accepted damage

	DrillMax          float64 // Drill at spawn and display ceiling
	DrillDepletion    float64 // Units per second while drilling
	DrillRecovery     float64 // Units per second while idle
	DrillCooldown     time.Duration
	DrillCooldownLong time.Duration // Cooldown when the drill is depleted below zero
	DrillKillBonus    float64       // Added to the drill after a kill

	PauseHurt time.Duration // Feedback pause length after taking damage
	PauseKill time.Duration // Feedback pause length after a kill
}

// Default returns the stock craft tuning.
func Default() Config {
	return Config{
		MaxHealth:     10,
		DangerBelow:   3,
		InvincibleFor: 2 * time.Second,

		DrillMax:          10,
		DrillDepletion:    1,
		DrillRecovery:     1,
		DrillCooldown:     time.Second,
		DrillCooldownLong: 3 * time.Second,
		DrillKillBonus:    0.25,

		PauseHurt: 50 * time.Millisecond,
		PauseKill: 100 * time.Millisecond,
	}
}

// normalized fixes values that would break the controller's invariants.
func (c Config) normalized() Config {
	if c.MaxHealth < 1 {
		c.MaxHealth = 1
	}
	if c.DangerBelow < 0 {
		c.DangerBelow = 0
	}
	if c.InvincibleFor < 0 {
		c.InvincibleFor = 0
	}
	if c.DrillMax < 0 {
		c.DrillMax = 0
	}
	if c.DrillDepletion < 0 {
		c.DrillDepletion = 0
	}
	if c.DrillRecovery < 0 {
		c.DrillRecovery = 0
	}
	if c.DrillCooldown < 0 {
		c.DrillCooldown = 0
	}
	if c.DrillCooldownLong < 0 {
		c.DrillCooldownLong = 0
	}
	if c.PauseHurt < 0 {
		c.PauseHurt = 0
	}
	if c.PauseKill < 0 {
		c.PauseKill = 0
	}
	return c
}
