package inputmap

import "slices"

// Trigger selects when an ActionEntry fires.
type Trigger uint8

const (
	OnPress   Trigger = iota // tick the key action activated
	OnRelease                // tick the key action deactivated
	OnHeld                   // every tick the key action is activated
	OnAxis                   // every tick the axis action has a value
)

// ActionHandler is called when an entry fires. value is the axis value for
// OnAxis entries and 1 or 0 for key entries.
type ActionHandler func(value float32)

// ActionCondition returns true if the action can be executed.
type ActionCondition func() bool

// ActionEntry holds a registered handler for one action.
type ActionEntry[C, A comparable] struct {
	Name      string          // entry name for debugging and Unregister
	Action    A               // logical action to watch
	Trigger   Trigger         // when to fire
	Handler   ActionHandler   // called when the trigger matches
	Condition ActionCondition // optional: must return true to execute (nil = always)
	BlockedIn []C             // contexts in which the entry never fires
}

// ActionRegistry dispatches handle reads to callbacks. Use it for game-wide
// shortcuts and for code that prefers callbacks to polling.
type ActionRegistry[C, A comparable] struct {
	actions []ActionEntry[C, A]
}

// NewActionRegistry creates an empty action registry.
func NewActionRegistry[C, A comparable]() *ActionRegistry[C, A] {
	return &ActionRegistry[C, A]{
		actions: make([]ActionEntry[C, A], 0, 16),
	}
}

// Register adds a handler fired by trigger on action.
func (r *ActionRegistry[C, A]) Register(name string, action A, trigger Trigger, handler ActionHandler) {
	r.actions = append(r.actions, ActionEntry[C, A]{
		Name:    name,
		Action:  action,
		Trigger: trigger,
		Handler: handler,
	})
}

// RegisterWithCondition adds a handler that only runs while condition holds.
func (r *ActionRegistry[C, A]) RegisterWithCondition(name string, action A, trigger Trigger, handler ActionHandler, condition ActionCondition) {
	r.actions = append(r.actions, ActionEntry[C, A]{
		Name:      name,
		Action:    action,
		Trigger:   trigger,
		Handler:   handler,
		Condition: condition,
	})
}

// RegisterBlocked adds a handler that never runs in the given contexts.
func (r *ActionRegistry[C, A]) RegisterBlocked(name string, action A, trigger Trigger, handler ActionHandler, blockedIn ...C) {
	r.actions = append(r.actions, ActionEntry[C, A]{
		Name:      name,
		Action:    action,
		Trigger:   trigger,
		Handler:   handler,
		BlockedIn: blockedIn,
	})
}

// RegisterEntry adds a fully specified entry.
func (r *ActionRegistry[C, A]) RegisterEntry(entry ActionEntry[C, A]) {
	r.actions = append(r.actions, entry)
}

// HandleActions runs every entry whose trigger matches the handle's state,
// in registration order. Returns true if any handler ran.
func (r *ActionRegistry[C, A]) HandleActions(h Handle[C, A]) bool {
	fired := false
	for i := range r.actions {
		a := &r.actions[i]
		if a.Handler == nil {
			continue
		}

		value, ok := a.matches(h)
		if !ok {
			continue
		}

		// Check if blocked in the current context
		if slices.Contains(a.BlockedIn, h.InputType()) {
			continue
		}

		// Check condition
		if a.Condition != nil && !a.Condition() {
			continue
		}

		a.Handler(value)
		fired = true
	}
	return fired
}

func (a *ActionEntry[C, A]) matches(h Handle[C, A]) (float32, bool) {
	switch a.Trigger {
	case OnPress:
		return 1, h.JustPressed(a.Action)
	case OnRelease:
		return 0, h.JustReleased(a.Action)
	case OnHeld:
		return 1, h.KeyHeld(a.Action)
	case OnAxis:
		return h.AxisValue(a.Action)
	}
	return 0, false
}

// Unregister removes every entry with the given name.
func (r *ActionRegistry[C, A]) Unregister(name string) {
	r.actions = slices.DeleteFunc(r.actions, func(a ActionEntry[C, A]) bool {
		return a.Name == name
	})
}

// Clear removes all registered entries.
func (r *ActionRegistry[C, A]) Clear() {
	r.actions = r.actions[:0]
}

// Len returns the number of registered entries.
func (r *ActionRegistry[C, A]) Len() int {
	return len(r.actions)
}
