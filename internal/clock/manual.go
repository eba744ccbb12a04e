package clock

import (
	"sync"
	"time"
)

// ManualTimeProvider is a controllable TimeProvider for tests and replays.
type ManualTimeProvider struct {
	mu      sync.RWMutex
	current time.Time
}

// NewManualTimeProvider creates a provider frozen at start.
func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{current: start}
}

// Now returns the provider's current time.
func (m *ManualTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set moves the provider to t.
func (m *ManualTimeProvider) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance moves the provider forward by d.
func (m *ManualTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
