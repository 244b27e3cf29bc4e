package inputmap

// Phase is the activation state of a KeySet or AxisSet.
//
// Events move a set from Released to ShouldActivate and from Active to
// ShouldDeactivate. Promote, run once per tick, resolves the two
// intermediate phases. The intermediate phases are what consumers observe
// as one-tick "just pressed" / "just released" pulses.
type Phase uint8

const (
	PhaseReleased Phase = iota
	PhaseShouldActivate
	PhaseActive
	PhaseShouldDeactivate
)

func (p Phase) String() string {
	switch p {
	case PhaseReleased:
		return "Released"
	case PhaseShouldActivate:
		return "ShouldActivate"
	case PhaseActive:
		return "Active"
	case PhaseShouldDeactivate:
		return "ShouldDeactivate"
	}
	return "?"
}

// promoted returns the phase after one promotion step.
func (p Phase) promoted() Phase {
	switch p {
	case PhaseShouldActivate:
		return PhaseActive
	case PhaseShouldDeactivate:
		return PhaseReleased
	}
	return p
}

// pulse converts a phase to the edge state a consumer sees this tick.
func (p Phase) pulse() (ElementState, bool) {
	switch p {
	case PhaseShouldActivate:
		return Pressed, true
	case PhaseShouldDeactivate:
		return Released, true
	}
	return Released, false
}
