package craft

// FlightMode is the direction the craft flies relative to its target.
type FlightMode int

const (
	FlightToTarget FlightMode = iota
	FlightAwayFromTarget
)

// Flight mode labels shown on the HUD.
const (
	LabelTowardsTarget  = "Forward"
	LabelAwayFromTarget = "Reverse"
)

// Label returns the HUD text for the mode.
func (m FlightMode) Label() string {
	if m == FlightAwayFromTarget {
		return LabelAwayFromTarget
	}
	return LabelTowardsTarget
}

// Toggle returns the opposite mode.
func (m FlightMode) Toggle() FlightMode {
	if m == FlightAwayFromTarget {
		return FlightToTarget
	}
	return FlightAwayFromTarget
}

func (m FlightMode) String() string {
	return m.Label()
}
