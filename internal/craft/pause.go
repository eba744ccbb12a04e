package craft

import "time"

// PauseState is a snapshot of the pause controller. Times are unscaled.
type PauseState struct {
	Active    bool // A timed pause is waiting to resume
	StartedAt time.Duration
	Duration  time.Duration
	Held      bool // Frozen since spawn until Begin
}

// Scale returns the simulation scale implied by the state.
func (s PauseState) Scale() float64 {
	if s.Held || s.Active {
		return 0
	}
	return 1
}

// PauseController is the only producer of EffectTimeScale.
type PauseController struct {
	state PauseState
}

// State returns a copy of the pause state.
func (p *PauseController) State() PauseState {
	return p.state
}

// Hold freezes the simulation until Release. Used at spawn.
func (p *PauseController) Hold(fx *Effects) {
	p.state = PauseState{Held: true}
	fx.emitValue(EffectTimeScale, 0)
}

// Release ends the spawn hold. Returns false if the clock was not held.
func (p *PauseController) Release(fx *Effects) bool {
	if !p.state.Held {
		return false
	}
	p.state = PauseState{}
	fx.emitValue(EffectTimeScale, 1)
	return true
}

// Pause freezes the simulation for d of unscaled time starting at now.
// A pause already pending is replaced (last call wins). Ignored while held.
func (p *PauseController) Pause(d, now time.Duration, fx *Effects) bool {
	if p.state.Held {
		return false
	}
	if d < 0 {
		d = 0
	}
	p.state.Active = true
	p.state.StartedAt = now
	p.state.Duration = d
	fx.emitValue(EffectTimeScale, 0)
	return true
}

// Check resumes normal speed once the pending pause has run its course.
// Reports whether a resume happened.
func (p *PauseController) Check(now time.Duration, fx *Effects) bool {
	if !p.state.Active {
		return false
	}
	if now-p.state.StartedAt < p.state.Duration {
		return false
	}
	p.state.Active = false
	p.state.StartedAt = 0
	p.state.Duration = 0
	fx.emitValue(EffectTimeScale, 1)
	return true
}
