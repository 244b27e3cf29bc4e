package inputmap

// GamepadSnapshot is one full reading of a standard-layout gamepad.
// Buttons and triggers range 0..1, sticks -1..1.
type GamepadSnapshot struct {
	Buttons [GamepadButtonCount]float32
	Axes    [GamepadAxisCount]float32
}

// GamepadTracker turns polled gamepad snapshots into Sink events.
// Backends for hosts that poll gamepads instead of delivering events use it
// to forward only the buttons and axes that changed.
type GamepadTracker struct {
	last map[GamepadID]*GamepadSnapshot
}

// NewGamepadTracker creates a tracker with no known gamepads.
func NewGamepadTracker() *GamepadTracker {
	return &GamepadTracker{last: make(map[GamepadID]*GamepadSnapshot)}
}

// Update forwards the differences between pad's previous snapshot and snap.
// A pad seen for the first time is compared against an all-zero snapshot.
func (t *GamepadTracker) Update(sink Sink, pad GamepadID, snap GamepadSnapshot) {
	prev, ok := t.last[pad]
	if !ok {
		prev = &GamepadSnapshot{}
		t.last[pad] = prev
	}

	for i, v := range snap.Buttons {
		if v != prev.Buttons[i] {
			sink.ProcessGamepadButton(pad, GamepadButton(i), v)
		}
	}
	for i, v := range snap.Axes {
		if v != prev.Axes[i] {
			sink.ProcessGamepadAxis(pad, GamepadAxis(i), v)
		}
	}
	*prev = snap
}

// Disconnect releases everything pad still reports and forgets it.
func (t *GamepadTracker) Disconnect(sink Sink, pad GamepadID) {
	if _, ok := t.last[pad]; !ok {
		return
	}
	t.Update(sink, pad, GamepadSnapshot{})
	delete(t.last, pad)
	logger.Debug("gamepad disconnected", "gamepad", pad)
}

// Known reports whether pad has been seen since it last disconnected.
func (t *GamepadTracker) Known(pad GamepadID) bool {
	_, ok := t.last[pad]
	return ok
}

// Pads returns the known gamepads.
func (t *GamepadTracker) Pads() []GamepadID {
	pads := make([]GamepadID, 0, len(t.last))
	for pad := range t.last {
		pads = append(pads, pad)
	}
	return pads
}
