package inputmap

// BindingSet maps logical actions to KeySets and AxisSets. One set is
// registered per input context; every actor works on its own clone.
//
// An action names either a KeySet or an AxisSet, never both: finishing a
// binding of one kind removes a binding of the other kind for the same action.
type BindingSet[A comparable] struct {
	keys map[A]*KeySet
	axes map[A]*AxisSet
}

// NewBindingSet creates an empty binding set.
func NewBindingSet[A comparable]() *BindingSet[A] {
	return &BindingSet[A]{
		keys: make(map[A]*KeySet),
		axes: make(map[A]*AxisSet),
	}
}

// KeyBuilder accumulates the inputs of a discrete action.
// Nothing is registered until Finish is called.
type KeyBuilder[A comparable] struct {
	owner              *BindingSet[A]
	action             A
	inputs             []PhysicalInput
	requireFullRelease bool
}

// BeginKey starts a discrete binding for action.
//
//	set.BeginKey(Jump).Add(inputmap.KeyInput(inputmap.KeySpace)).Finish()
func (b *BindingSet[A]) BeginKey(action A) *KeyBuilder[A] {
	return &KeyBuilder[A]{owner: b, action: action}
}

// Add appends member inputs. All of them must be held to activate.
func (kb *KeyBuilder[A]) Add(inputs ...PhysicalInput) *KeyBuilder[A] {
	kb.inputs = append(kb.inputs, inputs...)
	return kb
}

// RequireFullRelease makes re-activation wait until every member was released.
func (kb *KeyBuilder[A]) RequireFullRelease() *KeyBuilder[A] {
	kb.requireFullRelease = true
	return kb
}

// Finish registers the KeySet, replacing any binding for the same action.
func (kb *KeyBuilder[A]) Finish() *KeySet {
	set := NewKeySet(kb.inputs, kb.requireFullRelease)
	if len(kb.inputs) == 0 {
		logger.Debug("key binding has no inputs and will never activate", "action", kb.action)
	}
	kb.owner.putKey(kb.action, set)
	return set
}

// AxisBuilder accumulates the members of a continuous action.
// Nothing is registered until Finish is called.
type AxisBuilder[A comparable] struct {
	owner   *BindingSet[A]
	action  A
	members []AxisMember
}

// BeginAxis starts a continuous binding for action.
//
//	set.BeginAxis(Forward).
//		AddWithMultiplier(inputmap.KeyInput(inputmap.KeyW), 1).
//		AddWithMultiplier(inputmap.KeyInput(inputmap.KeyS), -1).
//		Add(inputmap.GamepadAxisInput(inputmap.GamepadLeftStickY)).
//		Finish()
func (b *BindingSet[A]) BeginAxis(action A) *AxisBuilder[A] {
	return &AxisBuilder[A]{owner: b, action: action}
}

// Add binds in with the default multiplier.
func (ab *AxisBuilder[A]) Add(in PhysicalInput) *AxisBuilder[A] {
	ab.members = append(ab.members, AxisMember{Input: in})
	return ab
}

// AddWithMultiplier binds in with an explicit multiplier.
func (ab *AxisBuilder[A]) AddWithMultiplier(in PhysicalInput, multiplier float32) *AxisBuilder[A] {
	m := multiplier
	ab.members = append(ab.members, AxisMember{Input: in, Multiplier: &m})
	return ab
}

// Finish registers the AxisSet, replacing any binding for the same action.
func (ab *AxisBuilder[A]) Finish() *AxisSet {
	set := NewAxisSet(ab.members)
	if len(ab.members) == 0 {
		logger.Debug("axis binding has no inputs and will never produce a value", "action", ab.action)
	}
	ab.owner.putAxis(ab.action, set)
	return set
}

func (b *BindingSet[A]) putKey(action A, set *KeySet) {
	if _, ok := b.axes[action]; ok {
		logger.Debug("key binding replaces axis binding", "action", action)
		delete(b.axes, action)
	}
	b.keys[action] = set
}

func (b *BindingSet[A]) putAxis(action A, set *AxisSet) {
	if _, ok := b.keys[action]; ok {
		logger.Debug("axis binding replaces key binding", "action", action)
		delete(b.keys, action)
	}
	b.axes[action] = set
}

// Remove drops any binding for action.
func (b *BindingSet[A]) Remove(action A) {
	delete(b.keys, action)
	delete(b.axes, action)
}

// ChangeKeyState fans one raw reading out to every KeySet.
func (b *BindingSet[A]) ChangeKeyState(in PhysicalInput, state ElementState) {
	for _, set := range b.keys {
		set.Update(in, state)
	}
}

// ChangeAxisState fans one raw reading out to every AxisSet.
func (b *BindingSet[A]) ChangeAxisState(in PhysicalInput, state ElementState, raw float32) {
	for _, set := range b.axes {
		set.Update(in, state, raw)
	}
}

// UpdateStates promotes every KeySet and AxisSet. Call once per tick.
func (b *BindingSet[A]) UpdateStates() {
	for _, set := range b.keys {
		set.Promote()
	}
	for _, set := range b.axes {
		set.Promote()
	}
}

// AxisValue returns the value of an axis action. It returns false when the
// action is unbound, bound as a key, or no member is engaged.
func (b *BindingSet[A]) AxisValue(action A) (float32, bool) {
	set, ok := b.axes[action]
	if !ok {
		return 0, false
	}
	return set.Value()
}

// KeyState returns Pressed on the tick a key action activated and Released
// on the tick it deactivated. Otherwise it returns false.
func (b *BindingSet[A]) KeyState(action A) (ElementState, bool) {
	set, ok := b.keys[action]
	if !ok {
		return Released, false
	}
	return set.Phase().pulse()
}

// KeyHeld reports whether a key action is currently activated.
func (b *BindingSet[A]) KeyHeld(action A) bool {
	set, ok := b.keys[action]
	return ok && set.Held()
}

// Key returns the KeySet bound to action.
func (b *BindingSet[A]) Key(action A) (*KeySet, bool) {
	set, ok := b.keys[action]
	return set, ok
}

// Axis returns the AxisSet bound to action.
func (b *BindingSet[A]) Axis(action A) (*AxisSet, bool) {
	set, ok := b.axes[action]
	return set, ok
}

// KeyActions returns every action bound as a key, in no particular order.
func (b *BindingSet[A]) KeyActions() []A {
	out := make([]A, 0, len(b.keys))
	for a := range b.keys {
		out = append(out, a)
	}
	return out
}

// AxisActions returns every action bound as an axis, in no particular order.
func (b *BindingSet[A]) AxisActions() []A {
	out := make([]A, 0, len(b.axes))
	for a := range b.axes {
		out = append(out, a)
	}
	return out
}

// Len returns the number of bound actions.
func (b *BindingSet[A]) Len() int { return len(b.keys) + len(b.axes) }

// Clone returns a deep copy; live state of the copy is independent.
func (b *BindingSet[A]) Clone() *BindingSet[A] {
	c := &BindingSet[A]{
		keys: make(map[A]*KeySet, len(b.keys)),
		axes: make(map[A]*AxisSet, len(b.axes)),
	}
	for a, set := range b.keys {
		c.keys[a] = set.Clone()
	}
	for a, set := range b.axes {
		c.axes[a] = set.Clone()
	}
	return c
}

// ApplyConfig returns a fresh copy with cfg's rebinds and multiplier
// overrides applied. Live state is not carried over.
func (b *BindingSet[A]) ApplyConfig(cfg *Config) *BindingSet[A] {
	c := &BindingSet[A]{
		keys: make(map[A]*KeySet, len(b.keys)),
		axes: make(map[A]*AxisSet, len(b.axes)),
	}
	for a, set := range b.keys {
		c.keys[a] = set.withConfig(cfg)
	}
	for a, set := range b.axes {
		c.axes[a] = set.withConfig(cfg)
	}
	return c
}
