// Package config reads the game's settings from the environment and holds the
// fixed tuning constants.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidValue is wrapped by the typed getters when a variable is set but
// cannot be parsed.
var ErrInvalidValue = errors.New("invalid value")

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// lookup returns the trimmed value of key, or ok=false when unset or blank.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// GetEnvInt parses key as an integer.
func GetEnvInt(key string, fallback int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s=%q: %w", key, v, ErrInvalidValue)
	}
	return n, nil
}

// GetEnvFloat parses key as a float.
func GetEnvFloat(key string, fallback float64) (float64, error) {
	v, ok := lookup(key)
	if !ok {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s=%q: %w", key, v, ErrInvalidValue)
	}
	return f, nil
}

// GetEnvDuration parses key as a Go duration ("150ms") or a bare number of
// seconds ("0.15").
func GetEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := lookup(key)
	if !ok {
		return fallback, nil
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s=%q: %w", key, v, ErrInvalidValue)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// GetEnvBool parses key with strconv.ParseBool, also accepting on/off and yes/no.
func GetEnvBool(key string, fallback bool) (bool, error) {
	v, ok := lookup(key)
	if !ok {
		return fallback, nil
	}
	switch strings.ToLower(v) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("%s=%q: %w", key, v, ErrInvalidValue)
	}
	return b, nil
}

// LoadDotEnv loads the given files (default ".env") into the environment
// without overriding variables that are already set.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}
