package feedback

import (
	"github.com/charmbracelet/log"

	"github.com/tomz197/horde/internal/craft"
)

// Dispatcher performs craft effects against a set of sinks.
type Dispatcher struct {
	sinks  Sinks
	logger *log.Logger
}

// NewDispatcher creates a dispatcher. logger may be nil.
func NewDispatcher(sinks Sinks, logger *log.Logger) *Dispatcher {
	return &Dispatcher{sinks: sinks, logger: logger}
}

// Sinks returns the sinks the dispatcher drives.
func (d *Dispatcher) Sinks() Sinks {
	return d.sinks
}

// Dispatch applies fx in order.
func (d *Dispatcher) Dispatch(fx []craft.Effect) {
	for _, e := range fx {
		d.apply(e)
	}
}

func (d *Dispatcher) apply(e craft.Effect) {
	s := &d.sinks
	switch e.Kind {
	case craft.EffectHealthGauge:
		if s.HealthGauge != nil {
			s.HealthGauge.SetValue(e.Value)
		}
	case craft.EffectDrillGauge:
		if s.DrillGauge != nil {
			s.DrillGauge.SetValue(e.Value)
		}
	case craft.EffectDangerIndicator:
		if s.Danger != nil {
			s.Danger.SetVisible(e.On)
		}
	case craft.EffectEmptyIndicator:
		if s.Empty != nil {
			s.Empty.SetVisible(e.On)
		}
	case craft.EffectFlightLabel:
		if s.Flight != nil {
			s.Flight.SetText(e.Label)
		}
	case craft.EffectDangerCue:
		play(s.Cues.Danger)
	case craft.EffectHitCue:
		play(s.Cues.Hit)
	case craft.EffectRefillCue:
		play(s.Cues.Refill)
	case craft.EffectEmptyAlarm:
		// Requested every depleted tick; restarting would stutter.
		if !e.On {
			stop(s.Cues.Alarm)
		} else if s.Cues.Alarm != nil && !s.Cues.Alarm.Playing() {
			s.Cues.Alarm.Play()
		}
	case craft.EffectHitAnimation:
		if s.Camera != nil {
			s.Camera.SetTrigger(ParamHit)
		}
	case craft.EffectRamAnimation:
		if s.Body != nil {
			s.Body.SetBool(ParamRamming, e.On)
		}
		if s.Camera != nil {
			s.Camera.SetBool(ParamRamming, e.On)
		}
	case craft.EffectRamCollider:
		if s.RamCollider != nil {
			s.RamCollider.SetActive(e.On)
		}
		if s.HitCollider != nil {
			s.HitCollider.SetActive(!e.On)
		}
	case craft.EffectJetCue:
		if s.Cues.Jet == nil {
			break
		}
		if e.On {
			s.Cues.Jet.Play()
		} else {
			s.Cues.Jet.Stop()
		}
	case craft.EffectRamParticles:
		if s.RamParticles != nil {
			s.RamParticles.SetEmitting(e.On)
		}
	case craft.EffectTimeScale:
		if s.Clock != nil {
			s.Clock.SetScale(e.Value)
		}
	case craft.EffectFinish:
		d.finish(e.On)
	default:
		if d.logger != nil {
			d.logger.Warn("unhandled effect", "effect", e)
		}
	}
}

func (d *Dispatcher) finish(success bool) {
	s := &d.sinks
	stop(s.Cues.Alarm)
	if success {
		play(s.Cues.Success)
	} else {
		play(s.Cues.Fail)
	}
	if d.logger != nil {
		d.logger.Debug("craft finished", "success", success)
	}
	if s.Outcome != nil {
		s.Outcome.Finish(success)
	}
}

func play(c Cue) {
	if c != nil {
		c.Play()
	}
}

func stop(c Cue) {
	if c != nil {
		c.Stop()
	}
}
