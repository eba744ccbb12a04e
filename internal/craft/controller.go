// Package craft implements the player craft's runtime state: regulated health
// with invincibility windows, the ramming mode switch, the drill resource and
// the feedback pause that owns the simulation time scale.
//
// Every mutator returns the side effects it wants performed instead of
// performing them; the feedback package dispatches them.
package craft

import "time"

// Clock is the time source the controller evaluates against.
type Clock interface {
	Now() time.Duration      // Scaled simulation time
	Unscaled() time.Duration // Real time, unaffected by the scale
	Delta() time.Duration    // Scaled length of the current tick
}

// TickInput carries the inputs sampled once per frame tick.
type TickInput struct {
	Drilling bool
	Ram      RamInput
}

// Option configures a Controller.
type Option func(*Controller)

// WithRamPredicate replaces the ramming predicate.
func WithRamPredicate(p RamPredicate) Option {
	return func(c *Controller) {
		if p != nil {
			c.predicate = p
		}
	}
}

// Controller owns the four craft sub-states. Nothing else mutates them;
// collaborators supply inputs and receive effects.
type Controller struct {
	cfg       Config
	clock     Clock
	predicate RamPredicate

	health HealthRegulator
	ram    RamSwitch
	drill  DrillResource
	pause  PauseController
	flight FlightMode

	finished bool
	success  bool
}

// New creates a controller. Call Spawn before the first tick.
func New(cfg Config, clock Clock, opts ...Option) *Controller {
	c := &Controller{
		cfg:       cfg.normalized(),
		clock:     clock,
		predicate: NeverRamming,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.reset()
	return c
}

func (c *Controller) reset() {
	c.health = newHealthRegulator(c.cfg)
	c.ram = RamSwitch{}
	c.drill = newDrillResource(c.cfg)
	c.pause = PauseController{}
	c.flight = FlightToTarget
	c.finished = false
	c.success = false
}

// Spawn (re)initializes every sub-state and freezes the simulation until Begin.
func (c *Controller) Spawn() []Effect {
	var fx Effects
	if c.ram.State().Active {
		c.ram.Set(false, &fx)
	}
	c.reset()

	c.pause.Hold(&fx)
	fx.emitValue(EffectHealthGauge, float64(c.cfg.MaxHealth))
	fx.emitValue(EffectDrillGauge, c.drill.State().Display())
	fx.emitLabel(EffectFlightLabel, c.flight.Label())
	fx.emitBool(EffectDangerIndicator, false)
	fx.emitBool(EffectEmptyIndicator, false)
	fx.emitBool(EffectEmptyAlarm, false)
	fx.emitBool(EffectRamParticles, false)
	return fx
}

// Begin releases the spawn hold and lets simulation time run.
func (c *Controller) Begin() []Effect {
	var fx Effects
	c.pause.Release(&fx)
	return fx
}

// Tick advances the controller by one frame tick.
func (c *Controller) Tick(in TickInput) []Effect {
	var fx Effects
	if !c.finished {
		c.ram.Set(c.predicate(in.Ram), &fx)
		c.drill.Tick(in.Drilling, c.clock.Now(), c.clock.Delta(), &fx)
	}
	c.pause.Check(c.clock.Unscaled(), &fx)
	return fx
}

// SetHealth sets health to target, subject to the invincibility guard.
func (c *Controller) SetHealth(target int) (Outcome, []Effect) {
	if c.finished {
		return OutcomeFinished, nil
	}
	var fx Effects
	out := c.health.Set(target, c.clock.Now(), &fx)
	if out == OutcomeAccepted && c.health.Depleted() {
		c.finish(false, &fx)
	}
	return out, fx
}

// AdjustHealth changes health by delta. Rewards use positive deltas and go
// through the same invincibility guard as damage.
func (c *Controller) AdjustHealth(delta int) (Outcome, []Effect) {
	return c.SetHealth(addSaturating(c.health.State().Current, delta))
}

// Damage lowers health by amount.
func (c *Controller) Damage(amount int) (Outcome, []Effect) {
	return c.AdjustHealth(-amount)
}

// SetRamming applies the ramming predicate's verdict.
func (c *Controller) SetRamming(desired bool) []Effect {
	if c.finished {
		return nil
	}
	var fx Effects
	c.ram.Set(desired, &fx)
	return fx
}

// Deplete removes a one-off amount from the drill.
func (c *Controller) Deplete(amount float64) []Effect {
	if c.finished {
		return nil
	}
	var fx Effects
	c.drill.Deplete(amount, c.clock.Now(), &fx)
	return fx
}

// RecoverAfterKill applies the one-time drill bonus for a kill.
func (c *Controller) RecoverAfterKill() []Effect {
	if c.finished {
		return nil
	}
	var fx Effects
	c.drill.Bonus(&fx)
	return fx
}

// Pause freezes simulation time for d of real time.
func (c *Controller) Pause(d time.Duration) []Effect {
	var fx Effects
	c.pause.Pause(d, c.clock.Unscaled(), &fx)
	return fx
}

// PauseOnHurt is the feedback beat for taking damage.
func (c *Controller) PauseOnHurt() []Effect {
	return c.Pause(c.cfg.PauseHurt)
}

// PauseOnKill is the feedback beat for destroying an enemy.
func (c *Controller) PauseOnKill() []Effect {
	return c.Pause(c.cfg.PauseKill)
}

// SetFlightMode changes the flight direction and refreshes its label.
func (c *Controller) SetFlightMode(mode FlightMode) []Effect {
	if mode == c.flight {
		return nil
	}
	c.flight = mode
	var fx Effects
	fx.emitLabel(EffectFlightLabel, mode.Label())
	return fx
}

// Complete ends the lifecycle successfully (level complete).
func (c *Controller) Complete() []Effect {
	var fx Effects
	c.finish(true, &fx)
	return fx
}

// finish ends the lifecycle once; later calls are ignored.
func (c *Controller) finish(success bool, fx *Effects) {
	if c.finished {
		return
	}
	c.ram.Set(false, fx)
	c.finished = true
	c.success = success
	fx.emitBool(EffectFinish, success)
}

// Health returns a snapshot of the health state.
func (c *Controller) Health() HealthState {
	return c.health.State()
}

// HealthPhase returns the health state machine's state at the current time.
func (c *Controller) HealthPhase() HealthPhase {
	h := c.health.State()
	switch {
	case h.Current <= 0:
		return PhaseDead
	case h.Invincible(c.clock.Now()):
		return PhaseInvincible
	default:
		return PhaseAlive
	}
}

// Ram returns a snapshot of the ram state.
func (c *Controller) Ram() RamState {
	return c.ram.State()
}

// Drill returns a snapshot of the drill state.
func (c *Controller) Drill() DrillState {
	return c.drill.State()
}

// PauseState returns a snapshot of the pause state.
func (c *Controller) PauseState() PauseState {
	return c.pause.State()
}

// Flight returns the current flight mode.
func (c *Controller) Flight() FlightMode {
	return c.flight
}

// Finished reports whether the lifecycle has ended and how.
func (c *Controller) Finished() (finished, success bool) {
	return c.finished, c.success
}

// Config returns the normalized configuration.
func (c *Controller) Config() Config {
	return c.cfg
}
