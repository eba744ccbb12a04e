package craft

import "fmt"

// EffectKind identifies a side effect requested by the controller.
type EffectKind int

const (
	EffectHealthGauge     EffectKind = iota // Value: new health
	EffectDangerIndicator                   // On: indicator visible
	EffectDangerCue                         // Play the low-health cue
	EffectHitCue                            // Play the hit cue
	EffectHitAnimation                      // Fire the camera "hit" trigger
	EffectFinish                            // On: success
	EffectRamAnimation                      // On: "ramming" flag on body and camera
	EffectRamCollider                       // On: ram collider active, hit collider inactive
	EffectJetCue                            // On: play, off: stop
	EffectRamParticles                      // On: play, off: stop
	EffectDrillGauge                        // Value: display value clamped to [0, max]
	EffectEmptyIndicator                    // On: indicator visible
	EffectEmptyAlarm                        // On: play unless already playing, off: stop
	EffectRefillCue                         // Play the refill cue
	EffectTimeScale                         // Value: simulation scale
	EffectFlightLabel                       // Label: flight mode text
)

var effectNames = [...]string{
	EffectHealthGauge:     "HealthGauge",
	EffectDangerIndicator: "DangerIndicator",
	EffectDangerCue:       "DangerCue",
	EffectHitCue:          "HitCue",
	EffectHitAnimation:    "HitAnimation",
	EffectFinish:          "Finish",
	EffectRamAnimation:    "RamAnimation",
	EffectRamCollider:     "RamCollider",
	EffectJetCue:          "JetCue",
	EffectRamParticles:    "RamParticles",
	EffectDrillGauge:      "DrillGauge",
	EffectEmptyIndicator:  "EmptyIndicator",
	EffectEmptyAlarm:      "EmptyAlarm",
	EffectRefillCue:       "RefillCue",
	EffectTimeScale:       "TimeScale",
	EffectFlightLabel:     "FlightLabel",
}

func (k EffectKind) String() string {
	if k >= 0 && int(k) < len(effectNames) {
		return effectNames[k]
	}
	return fmt.Sprintf("EffectKind(%d)", int(k))
}

// Effect is a one-way notification for the feedback layer (UI, audio,
// animation, colliders, clock). Only the fields relevant to Kind are set.
type Effect struct {
	Kind  EffectKind
	On    bool
	Value float64
	Label string
}

func (e Effect) String() string {
	switch e.Kind {
	case EffectHealthGauge, EffectDrillGauge, EffectTimeScale:
		return fmt.Sprintf("%s(%g)", e.Kind, e.Value)
	case EffectFlightLabel:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Label)
	case EffectDangerIndicator, EffectFinish, EffectRamAnimation, EffectRamCollider,
		EffectJetCue, EffectRamParticles, EffectEmptyIndicator:
		return fmt.Sprintf("%s(%t)", e.Kind, e.On)
	default:
		return e.Kind.String()
	}
}

// Effects collects effects in emission order.
type Effects []Effect

func (fx *Effects) emit(kind EffectKind) {
	*fx = append(*fx, Effect{Kind: kind})
}

func (fx *Effects) emitBool(kind EffectKind, on bool) {
	*fx = append(*fx, Effect{Kind: kind, On: on})
}

func (fx *Effects) emitValue(kind EffectKind, v float64) {
	*fx = append(*fx, Effect{Kind: kind, Value: v})
}

func (fx *Effects) emitLabel(kind EffectKind, label string) {
	*fx = append(*fx, Effect{Kind: kind, Label: label})
}

// Count returns how many effects of the given kind were collected.
func (fx Effects) Count(kind EffectKind) int {
	n := 0
	for _, e := range fx {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent effect of the given kind.
func (fx Effects) Last(kind EffectKind) (Effect, bool) {
	for i := len(fx) - 1; i >= 0; i-- {
		if fx[i].Kind == kind {
			return fx[i], true
		}
	}
	return Effect{}, false
}
