package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("HORDE_TEST_STRING", "value")
	if got := GetEnv("HORDE_TEST_STRING", "x"); got != "value" {
		t.Fatalf("GetEnv = %q", got)
	}
	if got := GetEnv("HORDE_TEST_UNSET", "x"); got != "x" {
		t.Fatalf("GetEnv fallback = %q", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"150ms", 150 * time.Millisecond},
		{"2", 2 * time.Second},
		{"0.05", 50 * time.Millisecond},
		{"  1s ", time.Second},
	}
	for _, tc := range cases {
		t.Setenv("HORDE_TEST_DUR", tc.raw)
		got, err := GetEnvDuration("HORDE_TEST_DUR", 0)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.raw, err)
		}
		if got != tc.want {
			t.Errorf("%q: got %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestTypedGettersRejectGarbage(t *testing.T) {
	t.Setenv("HORDE_TEST_BAD", "lots")

	if v, err := GetEnvInt("HORDE_TEST_BAD", 7); !errors.Is(err, ErrInvalidValue) || v != 7 {
		t.Errorf("GetEnvInt = %d, %v", v, err)
	}
	if v, err := GetEnvFloat("HORDE_TEST_BAD", 1.5); !errors.Is(err, ErrInvalidValue) || v != 1.5 {
		t.Errorf("GetEnvFloat = %v, %v", v, err)
	}
	if v, err := GetEnvDuration("HORDE_TEST_BAD", time.Second); !errors.Is(err, ErrInvalidValue) || v != time.Second {
		t.Errorf("GetEnvDuration = %v, %v", v, err)
	}
	if v, err := GetEnvBool("HORDE_TEST_BAD", true); !errors.Is(err, ErrInvalidValue) || !v {
		t.Errorf("GetEnvBool = %v, %v", v, err)
	}
}

func TestGetEnvBoolWords(t *testing.T) {
	for raw, want := range map[string]bool{"off": false, "YES": true, "0": false, "true": true} {
		t.Setenv("HORDE_TEST_BOOL", raw)
		got, err := GetEnvBool("HORDE_TEST_BOOL", !want)
		if err != nil || got != want {
			t.Errorf("%q: got %v, %v", raw, got, err)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Craft.MaxHealth != 10 || cfg.Craft.InvincibleFor != 2*time.Second {
		t.Fatalf("craft defaults = %+v", cfg.Craft)
	}
	if cfg.Game.AsteroidReward != DefaultAsteroidReward || cfg.Game.ContactDamage != 0 {
		t.Fatalf("game defaults = %+v", cfg.Game)
	}
	if cfg.SSH.Port != DefaultSSHPort {
		t.Fatalf("ssh port = %q", cfg.SSH.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HORDE_MAX_HEALTH", "20")
	t.Setenv("HORDE_DRILL_COOLDOWN", "0")
	t.Setenv("HORDE_PAUSE_KILL", "250ms")
	t.Setenv("HORDE_CONTACT_DAMAGE", "5")
	t.Setenv("HORDE_KILL_TARGET", "12")
	t.Setenv("HORDE_LOG_LEVEL", "debug")
	t.Setenv("HORDE_AUDIO", "off")
	t.Setenv("SSH_PORT", "2222")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Craft.MaxHealth != 20 || cfg.Craft.DrillCooldown != 0 || cfg.Craft.PauseKill != 250*time.Millisecond {
		t.Fatalf("craft = %+v", cfg.Craft)
	}
	if cfg.Game.ContactDamage != 5 || cfg.Game.KillTarget != 12 {
		t.Fatalf("game = %+v", cfg.Game)
	}
	if cfg.LogLevel != log.DebugLevel || cfg.Audio || cfg.SSH.Port != "2222" {
		t.Fatalf("level=%v audio=%t port=%q", cfg.LogLevel, cfg.Audio, cfg.SSH.Port)
	}
}

func TestLoadReportsEveryBadValue(t *testing.T) {
	t.Setenv("HORDE_MAX_HEALTH", "ten")
	t.Setenv("HORDE_LOG_LEVEL", "loud")

	cfg, err := Load()
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Load error = %v, want ErrInvalidValue", err)
	}
	if cfg.Craft.MaxHealth != 10 || cfg.LogLevel != log.InfoLevel {
		t.Fatal("bad values should keep their defaults")
	}
}

func TestLoadRejectsNegativeCounts(t *testing.T) {
	t.Setenv("HORDE_DANGER_BELOW", "-1")
	t.Setenv("HORDE_ASTEROIDS", "-4")
	t.Setenv("HORDE_CONTACT_DAMAGE", "-2")
	t.Setenv("HORDE_KILL_TARGET", "-3")

	cfg, err := Load()
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Load error = %v, want ErrInvalidValue", err)
	}
	def := Default()
	if cfg.Craft.DangerBelow != def.Craft.DangerBelow {
		t.Errorf("danger below = %d, want default %d", cfg.Craft.DangerBelow, def.Craft.DangerBelow)
	}
	if cfg.Game != def.Game {
		t.Errorf("game = %+v, want defaults %+v", cfg.Game, def.Game)
	}
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("HORDE_TEST_DOTENV=file\nHORDE_TEST_SET=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HORDE_TEST_SET", "env")
	t.Cleanup(func() { os.Unsetenv("HORDE_TEST_DOTENV") })

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("HORDE_TEST_DOTENV"); got != "file" {
		t.Errorf("dotenv value = %q", got)
	}
	if got := os.Getenv("HORDE_TEST_SET"); got != "env" {
		t.Errorf("existing variable overridden: %q", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("missing file should be reported")
	}
}
