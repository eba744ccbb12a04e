package craft

// RamState is a snapshot of the ramming mode.
type RamState struct {
	Active bool
}

// RamInput is what a ramming predicate may look at.
type RamInput struct {
	Horizontal, Vertical float64 // Control vector
	VX, VY               float64 // Craft velocity
	Drilling             bool
}

// RamPredicate decides whether the craft should be ramming this tick.
type RamPredicate func(RamInput) bool

// NeverRamming is the stock predicate. The trigger policy for ramming is not
// decided yet, so the craft never enters ramming mode on its own.
func NeverRamming(RamInput) bool {
	return false
}

// RamSwitch owns RamState. Transitions are discrete events: enter and exit
// effects fire only when the desired value differs from the current one.
type RamSwitch struct {
	state RamState
}

// State returns a copy of the ram state.
func (s *RamSwitch) State() RamState {
	return s.state
}

// Set applies the desired mode and reports whether a transition happened.
func (s *RamSwitch) Set(desired bool, fx *Effects) bool {
	if desired == s.state.Active {
		return false
	}
	s.state.Active = desired

	fx.emitBool(EffectRamAnimation, desired)
	fx.emitBool(EffectRamCollider, desired)
	fx.emitBool(EffectJetCue, desired)
	fx.emitBool(EffectRamParticles, desired)
	return true
}
