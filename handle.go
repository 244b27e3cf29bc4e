package inputmap

// Handle is a read-only view of one actor's bindings and context, captured
// when it was fetched. After the actor switches context the handle keeps
// reading the bindings it was created with; fetch a new handle each tick.
type Handle[C, A comparable] struct {
	actor   ActorID
	set     *BindingSet[A]
	context C
}

// AxisValue returns the current value of an axis action, or false if the
// action is not an axis in this context or no member is engaged.
func (h Handle[C, A]) AxisValue(action A) (float32, bool) {
	if h.set == nil {
		return 0, false
	}
	return h.set.AxisValue(action)
}

// KeyState returns Pressed on the tick a key action activated, Released on
// the tick it deactivated, and false while it is steady.
func (h Handle[C, A]) KeyState(action A) (ElementState, bool) {
	if h.set == nil {
		return Released, false
	}
	return h.set.KeyState(action)
}

// JustPressed reports the press pulse of a key action.
func (h Handle[C, A]) JustPressed(action A) bool {
	st, ok := h.KeyState(action)
	return ok && st == Pressed
}

// JustReleased reports the release pulse of a key action.
func (h Handle[C, A]) JustReleased(action A) bool {
	st, ok := h.KeyState(action)
	return ok && st == Released
}

// KeyHeld reports whether a key action is activated.
func (h Handle[C, A]) KeyHeld(action A) bool {
	return h.set != nil && h.set.KeyHeld(action)
}

// InputType returns the context the actor was in when the handle was fetched.
func (h Handle[C, A]) InputType() C {
	return h.context
}

// Actor returns the actor the handle belongs to.
func (h Handle[C, A]) Actor() ActorID {
	return h.actor
}
