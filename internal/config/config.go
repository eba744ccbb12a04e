package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/horde/internal/craft"
)

// Game holds the session-level tunables around the craft.
type Game struct {
	AsteroidTarget int // Weighted asteroid population the spawner maintains
	AsteroidReward int // Health an asteroid grants its killer
	ContactDamage  int // Health lost on asteroid contact; 0 disables contact damage
	KillTarget     int // Kills that complete the level; 0 plays endlessly
}

// SSH holds the server's listen settings.
type SSH struct {
	Host    string
	Port    string
	HostKey string
}

// Config is everything read from the environment.
type Config struct {
	Craft    craft.Config
	Game     Game
	SSH      SSH
	LogLevel log.Level
	Audio    bool
	OTLP     string // Collector endpoint; empty disables tracing
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Craft: craft.Default(),
		Game: Game{
			AsteroidTarget: DefaultAsteroidTarget,
			AsteroidReward: DefaultAsteroidReward,
		},
		SSH: SSH{
			Host:    DefaultSSHHost,
			Port:    DefaultSSHPort,
			HostKey: DefaultHostKey,
		},
		LogLevel: log.InfoLevel,
		Audio:    true,
	}
}

// Load reads the configuration from the environment. Malformed values keep
// their defaults and are reported together in the returned error, so callers
// may log it and carry on with the returned Config.
func Load() (Config, error) {
	cfg := Default()
	var errs []error

	intVar := func(dst *int, key string) {
		v, err := GetEnvInt(key, *dst)
		*dst = v
		errs = append(errs, err)
	}
	// Counts and thresholds where a negative value has no meaning.
	countVar := func(dst *int, key string) {
		def := *dst
		intVar(dst, key)
		if *dst < 0 {
			errs = append(errs, fmt.Errorf("%s=%d: %w", key, *dst, ErrInvalidValue))
			*dst = def
		}
	}
	floatVar := func(dst *float64, key string) {
		v, err := GetEnvFloat(key, *dst)
		*dst = v
		errs = append(errs, err)
	}
	durVar := func(dst *time.Duration, key string) {
		v, err := GetEnvDuration(key, *dst)
		*dst = v
		errs = append(errs, err)
	}

	c := &cfg.Craft
	intVar(&c.MaxHealth, "HORDE_MAX_HEALTH")
	countVar(&c.DangerBelow, "HORDE_DANGER_BELOW")
	durVar(&c.InvincibleFor, "HORDE_INVINCIBLE_FOR")
	floatVar(&c.DrillMax, "HORDE_DRILL_MAX")
	floatVar(&c.DrillDepletion, "HORDE_DRILL_DEPLETION")
	floatVar(&c.DrillRecovery, "HORDE_DRILL_RECOVERY")
	durVar(&c.DrillCooldown, "HORDE_DRILL_COOLDOWN")
	durVar(&c.DrillCooldownLong, "HORDE_DRILL_COOLDOWN_DEPLETED")
	floatVar(&c.DrillKillBonus, "HORDE_DRILL_KILL_BONUS")
	durVar(&c.PauseHurt, "HORDE_PAUSE_HURT")
	durVar(&c.PauseKill, "HORDE_PAUSE_KILL")

	g := &cfg.Game
	countVar(&g.AsteroidTarget, "HORDE_ASTEROIDS")
	intVar(&g.AsteroidReward, "HORDE_ASTEROID_REWARD")
	countVar(&g.ContactDamage, "HORDE_CONTACT_DAMAGE")
	countVar(&g.KillTarget, "HORDE_KILL_TARGET")

	cfg.SSH.Host = GetEnv("SSH_HOST", cfg.SSH.Host)
	cfg.SSH.Port = GetEnv("SSH_PORT", cfg.SSH.Port)
	cfg.SSH.HostKey = GetEnv("SSH_HOST_KEY", cfg.SSH.HostKey)
	cfg.OTLP = GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	audio, err := GetEnvBool("HORDE_AUDIO", cfg.Audio)
	cfg.Audio = audio
	errs = append(errs, err)

	if v, ok := lookup("HORDE_LOG_LEVEL"); ok {
		lvl, err := log.ParseLevel(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("HORDE_LOG_LEVEL=%q: %w", v, ErrInvalidValue))
		} else {
			cfg.LogLevel = lvl
		}
	}

	return cfg, errors.Join(errs...)
}
