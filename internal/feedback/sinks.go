// Package feedback applies craft effects to the things that present them:
// audio cues, HUD widgets, animators, colliders, particle emitters and the
// simulation clock.
package feedback

// Cue is a sound that can be started, stopped and queried.
type Cue interface {
	Play()
	Stop()
	Playing() bool
}

// Emitter is a particle source that is switched on and off.
type Emitter interface {
	SetEmitting(on bool)
}

// Animator receives named animation parameters.
type Animator interface {
	SetBool(name string, v bool)
	SetTrigger(name string)
}

// Collider is a collision volume that can be enabled and disabled.
type Collider interface {
	SetActive(on bool)
}

// OutcomeHandler is told once when a lifecycle ends.
type OutcomeHandler interface {
	Finish(success bool)
}

// TimeScaler is the simulation clock's scale setter.
type TimeScaler interface {
	SetScale(scale float64)
}

// Gauge displays a numeric value.
type Gauge interface {
	SetValue(v float64)
}

// Flag displays an on/off indicator.
type Flag interface {
	SetVisible(on bool)
}

// Label displays a short text.
type Label interface {
	SetText(s string)
}

// Animation parameter names.
const (
	ParamHit     = "hit"
	ParamRamming = "ramming"
)

// Cues groups the craft's sounds.
type Cues struct {
	Hit     Cue
	Danger  Cue
	Jet     Cue // Looped while ramming
	Alarm   Cue // Looped while the drill is depleted
	Refill  Cue
	Success Cue
	Fail    Cue
}

// Sinks is everything a Dispatcher can drive. Nil members are skipped.
type Sinks struct {
	Clock TimeScaler

	HealthGauge Gauge
	DrillGauge  Gauge
	Danger      Flag
	Empty       Flag
	Flight      Label

	Cues Cues

	Body   Animator
	Camera Animator

	RamCollider  Collider
	HitCollider  Collider
	RamParticles Emitter

	Outcome OutcomeHandler
}
