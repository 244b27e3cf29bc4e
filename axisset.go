package inputmap

// AxisSet is a continuous action fed by several physical inputs. The most
// recently engaged input wins; releasing it falls back to the next most
// recent one still held, so switching devices mid-action never snaps the
// value to zero.
type AxisSet struct {
	phase       Phase
	multipliers map[PhysicalInput]axisMultiplier
	order       []PhysicalInput // member order as bound
	active      []PhysicalInput // activation order, most recent last
	raw         map[PhysicalInput]float32
	value       float32
	hasValue    bool
}

type axisMultiplier struct {
	value    float32
	explicit bool
}

func (m axisMultiplier) get() float32 {
	if m.explicit {
		return m.value
	}
	return 1.0
}

// AxisMember is one input bound to an AxisSet. A nil Multiplier means 1.0
// unless a Config override applies.
type AxisMember struct {
	Input      PhysicalInput
	Multiplier *float32
}

// NewAxisSet creates an axis over the given members. A later member with the
// same input replaces the earlier one's multiplier.
func NewAxisSet(members []AxisMember) *AxisSet {
	s := &AxisSet{
		multipliers: make(map[PhysicalInput]axisMultiplier, len(members)),
		order:       make([]PhysicalInput, 0, len(members)),
		raw:         make(map[PhysicalInput]float32),
	}
	for _, m := range members {
		s.add(m)
	}
	return s
}

func (s *AxisSet) add(m AxisMember) {
	if _, dup := s.multipliers[m.Input]; !dup {
		s.order = append(s.order, m.Input)
	}
	mult := axisMultiplier{}
	if m.Multiplier != nil {
		mult = axisMultiplier{value: *m.Multiplier, explicit: true}
	}
	s.multipliers[m.Input] = mult
}

// Update records a new reading for one input. raw is the magnitude the
// source reported; boolean sources pass 1.0. Non-members are ignored.
func (s *AxisSet) Update(in PhysicalInput, state ElementState, raw float32) {
	if _, ok := s.multipliers[in]; !ok {
		return
	}

	switch state {
	case Pressed:
		s.raw[in] = raw
		idx := s.indexOf(in)
		switch {
		case idx < 0:
			s.active = append(s.active, in)
			if len(s.active) == 1 {
				s.phase = PhaseShouldActivate
			}
			s.refresh()
		case idx == len(s.active)-1:
			s.refresh()
		}
		// A superseded source keeps its magnitude for a later fallback but
		// does not take over the output.

	case Released:
		idx := s.indexOf(in)
		if idx < 0 {
			return
		}
		s.active = append(s.active[:idx], s.active[idx+1:]...)
		delete(s.raw, in)
		if len(s.active) > 0 {
			s.refresh()
			return
		}
		s.value, s.hasValue = 0, false
		s.phase = PhaseShouldDeactivate
	}
}

// refresh recomputes the output from the top of the activation stack.
func (s *AxisSet) refresh() {
	top := s.active[len(s.active)-1]
	raw, ok := s.raw[top]
	if !ok {
		raw = 1.0
	}
	s.value = s.multipliers[top].get() * raw
	s.hasValue = true
}

func (s *AxisSet) indexOf(in PhysicalInput) int {
	for i, a := range s.active {
		if a == in {
			return i
		}
	}
	return -1
}

// Promote advances the axis by one tick.
func (s *AxisSet) Promote() {
	if s.phase == PhaseShouldDeactivate {
		s.active = s.active[:0]
		clear(s.raw)
	}
	s.phase = s.phase.promoted()
}

// Value returns the current output, or false when no member is engaged.
func (s *AxisSet) Value() (float32, bool) {
	return s.value, s.hasValue
}

// Phase returns the current activation phase.
func (s *AxisSet) Phase() Phase { return s.phase }

// Top returns the input currently driving the value.
func (s *AxisSet) Top() (PhysicalInput, bool) {
	if len(s.active) == 0 {
		return PhysicalInput{}, false
	}
	return s.active[len(s.active)-1], true
}

// Multiplier returns the effective multiplier for a member input.
func (s *AxisSet) Multiplier(in PhysicalInput) (float32, bool) {
	m, ok := s.multipliers[in]
	if !ok {
		return 0, false
	}
	return m.get(), true
}

// Members returns the bound members in binding order.
func (s *AxisSet) Members() []AxisMember {
	out := make([]AxisMember, 0, len(s.order))
	for _, in := range s.order {
		m := AxisMember{Input: in}
		if mult := s.multipliers[in]; mult.explicit {
			v := mult.value
			m.Multiplier = &v
		}
		out = append(out, m)
	}
	return out
}

// Clone returns an independent copy including live state.
func (s *AxisSet) Clone() *AxisSet {
	c := &AxisSet{
		phase:       s.phase,
		multipliers: make(map[PhysicalInput]axisMultiplier, len(s.multipliers)),
		order:       make([]PhysicalInput, len(s.order)),
		active:      make([]PhysicalInput, len(s.active)),
		raw:         make(map[PhysicalInput]float32, len(s.raw)),
		value:       s.value,
		hasValue:    s.hasValue,
	}
	for in, m := range s.multipliers {
		c.multipliers[in] = m
	}
	for in, r := range s.raw {
		c.raw[in] = r
	}
	copy(c.order, s.order)
	copy(c.active, s.active)
	return c
}

// withConfig returns a fresh axis with members rebound through cfg and
// multipliers overridden by its default-value table.
func (s *AxisSet) withConfig(cfg *Config) *AxisSet {
	members := make([]AxisMember, 0, len(s.order))
	for _, m := range s.Members() {
		m.Input = cfg.Resolve(m.Input)
		if v, ok := cfg.DefaultValue(m.Input); ok {
			m.Multiplier = &v
		}
		members = append(members, m)
	}
	return NewAxisSet(members)
}
