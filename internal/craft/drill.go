package craft

import "time"

// DrillState is a snapshot of the drill resource. Current may drop below zero,
// which means "depleted, alarm active".
type DrillState struct {
	Current    float64
	Max        float64
	Depletion  float64 // Units per second while drilling
	Recovery   float64 // Units per second while idle
	LastActive time.Duration
	Used       bool // False until the first drilling tick
}

// Depleted reports whether the stored value is below zero.
func (s DrillState) Depleted() bool {
	return s.Current < 0
}

// Display returns the value for gauges, clamped to [0, Max].
func (s DrillState) Display() float64 {
	if s.Current < 0 {
		return 0
	}
	if s.Current > s.Max {
		return s.Max
	}
	return s.Current
}

// DrillResource owns DrillState.
type DrillResource struct {
	state        DrillState
	cooldown     time.Duration
	cooldownLong time.Duration
	killBonus    float64
}

func newDrillResource(cfg Config) DrillResource {
	return DrillResource{
		state: DrillState{
			Current:   cfg.DrillMax,
			Max:       cfg.DrillMax,
			Depletion: cfg.DrillDepletion,
			Recovery:  cfg.DrillRecovery,
		},
		cooldown:     cfg.DrillCooldown,
		cooldownLong: cfg.DrillCooldownLong,
		killBonus:    cfg.DrillKillBonus,
	}
}

// State returns a copy of the drill state.
func (d *DrillResource) State() DrillState {
	return d.state
}

// Tick advances the resource by dt of scaled time ending at now.
func (d *DrillResource) Tick(drilling bool, now, dt time.Duration, fx *Effects) {
	if dt <= 0 {
		return
	}
	secs := dt.Seconds()
	if drilling {
		d.markActive(now)
		d.change(-d.state.Depletion*secs, fx)
		return
	}
	if !d.recovering(now) {
		return
	}
	d.change(d.state.Recovery*secs, fx)
}

// Deplete removes a one-off amount, counting as drilling activity.
func (d *DrillResource) Deplete(amount float64, now time.Duration, fx *Effects) {
	if amount <= 0 {
		return
	}
	d.markActive(now)
	d.change(-amount, fx)
}

// Bonus adds the configured kill bonus directly to the stored value.
func (d *DrillResource) Bonus(fx *Effects) {
	if d.killBonus == 0 {
		return
	}
	d.change(d.killBonus, fx)
}

func (d *DrillResource) markActive(now time.Duration) {
	d.state.LastActive = now
	d.state.Used = true
}

// recovering reports whether the idle cooldown has run out.
func (d *DrillResource) recovering(now time.Duration) bool {
	if !d.state.Used {
		return true
	}
	wait := d.cooldown
	if d.state.Depleted() {
		wait = d.cooldownLong
	}
	return now-d.state.LastActive >= wait
}

func (d *DrillResource) change(amount float64, fx *Effects) {
	if amount == 0 {
		return
	}
	wasDepleted := d.state.Depleted()
	d.state.Current += amount

	fx.emitValue(EffectDrillGauge, d.state.Display())
	fx.emitBool(EffectEmptyIndicator, d.state.Depleted())
	if d.state.Depleted() {
		fx.emitBool(EffectEmptyAlarm, true)
	} else if wasDepleted {
		fx.emitBool(EffectEmptyAlarm, false)
		fx.emit(EffectRefillCue)
	}
}
