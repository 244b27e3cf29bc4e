package inputmap

// KeySet is a discrete action gate. It activates when every member input is
// held at once and deactivates as soon as one member is released.
//
// With requireFullRelease set, releasing any member drops the held count to
// zero, so the gate only re-activates after all members were released and
// then pressed again.
type KeySet struct {
	phase              Phase
	states             map[PhysicalInput]ElementState
	order              []PhysicalInput // member order as bound
	pressed            int
	requireFullRelease bool
}

// NewKeySet creates a gate over the given inputs. Duplicate inputs count once.
// A gate without inputs is valid but never activates.
func NewKeySet(inputs []PhysicalInput, requireFullRelease bool) *KeySet {
	s := &KeySet{
		states:             make(map[PhysicalInput]ElementState, len(inputs)),
		order:              make([]PhysicalInput, 0, len(inputs)),
		requireFullRelease: requireFullRelease,
	}
	for _, in := range inputs {
		if _, dup := s.states[in]; dup {
			continue
		}
		s.states[in] = Released
		s.order = append(s.order, in)
	}
	return s
}

// Update records a new state for one input. Inputs that are not members and
// states equal to the stored one are ignored. Returns true if the stored
// state changed.
func (s *KeySet) Update(in PhysicalInput, state ElementState) bool {
	prev, ok := s.states[in]
	if !ok || prev == state {
		return false
	}
	s.states[in] = state

	switch state {
	case Pressed:
		s.pressed++
		if s.pressed > len(s.states) {
			s.pressed = len(s.states)
		}
		if s.pressed == len(s.states) && s.phase != PhaseActive {
			s.phase = PhaseShouldActivate
		}
	case Released:
		if s.requireFullRelease {
			s.pressed = 0
		} else if s.pressed > 0 {
			s.pressed--
		}
		if s.phase == PhaseActive {
			s.phase = PhaseShouldDeactivate
		}
	}
	return true
}

// Promote advances the gate by one tick.
//
// A gate that activated and lost a member within the same tick is Active
// without being held; it steps to ShouldDeactivate on the following
// promotion instead of staying latched.
func (s *KeySet) Promote() {
	if s.phase == PhaseActive && s.pressed < len(s.states) {
		s.phase = PhaseShouldDeactivate
		return
	}
	s.phase = s.phase.promoted()
}

// Phase returns the current activation phase.
func (s *KeySet) Phase() Phase { return s.phase }

// JustActivated reports the one-tick press pulse.
func (s *KeySet) JustActivated() bool { return s.phase == PhaseShouldActivate }

// JustDeactivated reports the one-tick release pulse.
func (s *KeySet) JustDeactivated() bool { return s.phase == PhaseShouldDeactivate }

// Held reports whether the gate is activated, including the tick it activated.
func (s *KeySet) Held() bool {
	return s.phase == PhaseShouldActivate || s.phase == PhaseActive
}

// PressedCount returns how many members the gate counts as held.
func (s *KeySet) PressedCount() int { return s.pressed }

// RequiresFullRelease reports whether re-activation needs every member released first.
func (s *KeySet) RequiresFullRelease() bool { return s.requireFullRelease }

// Inputs returns the member inputs in binding order.
func (s *KeySet) Inputs() []PhysicalInput {
	out := make([]PhysicalInput, len(s.order))
	copy(out, s.order)
	return out
}

// Clone returns an independent copy including live state.
func (s *KeySet) Clone() *KeySet {
	c := &KeySet{
		phase:              s.phase,
		states:             make(map[PhysicalInput]ElementState, len(s.states)),
		order:              make([]PhysicalInput, len(s.order)),
		pressed:            s.pressed,
		requireFullRelease: s.requireFullRelease,
	}
	for in, st := range s.states {
		c.states[in] = st
	}
	copy(c.order, s.order)
	return c
}

// withConfig returns a fresh gate with member inputs rebound through cfg.
func (s *KeySet) withConfig(cfg *Config) *KeySet {
	inputs := make([]PhysicalInput, len(s.order))
	for i, in := range s.order {
		inputs[i] = cfg.Resolve(in)
	}
	return NewKeySet(inputs, s.requireFullRelease)
}
