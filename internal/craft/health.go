package craft

import (
	"fmt"
	"math"
	"time"
)

// Outcome reports what a health call did, so callers can tell a rejected
// change from one that had nothing to change.
type Outcome int

const (
	OutcomeAccepted   Outcome = iota // Value changed
	OutcomeUnchanged                 // Accepted, but the clamped value equals the current one
	OutcomeInvincible                // Rejected: inside the invincibility window
	OutcomeFinished                  // Rejected: the craft's lifecycle has ended
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeInvincible:
		return "invincible"
	case OutcomeFinished:
		return "finished"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Rejected reports whether the call was refused without being evaluated.
func (o Outcome) Rejected() bool {
	return o == OutcomeInvincible || o == OutcomeFinished
}

// HealthPhase is the health state machine's current state.
type HealthPhase int

const (
	PhaseAlive HealthPhase = iota
	PhaseInvincible
	PhaseDead
)

func (p HealthPhase) String() string {
	switch p {
	case PhaseAlive:
		return "alive"
	case PhaseInvincible:
		return "invincible"
	case PhaseDead:
		return "dead"
	default:
		return fmt.Sprintf("HealthPhase(%d)", int(p))
	}
}

// HealthState is a snapshot of the craft's health.
type HealthState struct {
	Current    int
	Max        int
	LastDamage time.Duration // Scaled time of the last accepted decrease
	Damaged    bool          // False until the first accepted decrease
	Window     time.Duration
}

// Invincible reports whether a call at now falls inside the invincibility window.
func (s HealthState) Invincible(now time.Duration) bool {
	return s.Damaged && now-s.LastDamage < s.Window
}

// HealthRegulator owns HealthState and applies the regulated mutator.
type HealthRegulator struct {
	state       HealthState
	dangerBelow int
}

func newHealthRegulator(cfg Config) HealthRegulator {
	return HealthRegulator{
		state: HealthState{
			Current: cfg.MaxHealth,
			Max:     cfg.MaxHealth,
			Window:  cfg.InvincibleFor,
		},
		dangerBelow: cfg.DangerBelow,
	}
}

// State returns a copy of the health state.
func (r *HealthRegulator) State() HealthState {
	return r.state
}

// Set moves health toward target at scaled time now. Out-of-range targets are
// clamped; calls inside the invincibility window are dropped.
func (r *HealthRegulator) Set(target int, now time.Duration, fx *Effects) Outcome {
	if r.state.Invincible(now) {
		return OutcomeInvincible
	}

	next := clampInt(target, 0, r.state.Max)
	if next == r.state.Current {
		return OutcomeUnchanged
	}

	if next < r.state.Current {
		r.state.LastDamage = now
		r.state.Damaged = true
		fx.emit(EffectHitCue)
		fx.emit(EffectHitAnimation)
	}

	r.state.Current = next

	fx.emitValue(EffectHealthGauge, float64(next))
	if next <= r.dangerBelow {
		fx.emitBool(EffectDangerIndicator, true)
		fx.emit(EffectDangerCue)
	} else {
		fx.emitBool(EffectDangerIndicator, false)
	}
	return OutcomeAccepted
}

// Depleted reports whether health has reached zero.
func (r *HealthRegulator) Depleted() bool {
	return r.state.Current <= 0
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// addSaturating adds without wrapping around on overflow.
func addSaturating(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}
