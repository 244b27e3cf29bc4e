// Package glfwinput feeds GLFW window and gamepad input into an inputmap.Sink.
package glfwinput

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/inputmap"
)

// Adapter forwards GLFW events to a Sink.
//
// Window events arrive through callbacks during glfw.PollEvents; gamepads
// are polled by PollGamepads. Call both between BeginTick and EndTick:
//
//	reg.BeginTick()
//	glfw.PollEvents()
//	adapter.PollGamepads()
//	reg.EndTick()
type Adapter struct {
	window *glfw.Window
	sink   inputmap.Sink

	cursor    inputmap.Vec2
	hasCursor bool

	pads *inputmap.GamepadTracker
}

// NewAdapter installs input callbacks on window. Callbacks previously set on
// the window are replaced.
func NewAdapter(window *glfw.Window, sink inputmap.Sink) *Adapter {
	a := &Adapter{
		window: window,
		sink:   sink,
		pads:   inputmap.NewGamepadTracker(),
	}

	// Setup callbacks
	window.SetKeyCallback(a.keyCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

func (a *Adapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := mapKey(key)
	if k == inputmap.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.sink.ProcessKey(k, inputmap.Pressed)
	case glfw.Release:
		a.sink.ProcessKey(k, inputmap.Released)
	}
}

func (a *Adapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := mapMouseButton(button)
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		a.sink.ProcessMouseButton(b, inputmap.Pressed)
	case glfw.Release:
		a.sink.ProcessMouseButton(b, inputmap.Released)
	}
}

func (a *Adapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.sink.ProcessMouseWheel(inputmap.Vec2{X: float32(xoff), Y: float32(yoff)})
}

func (a *Adapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.moveCursor(inputmap.Vec2{X: float32(xpos), Y: float32(ypos)})
}

// moveCursor reports a cursor position with its delta against the previous
// one. The first position has a zero delta.
func (a *Adapter) moveCursor(pos inputmap.Vec2) {
	var delta inputmap.Vec2
	if a.hasCursor {
		delta = pos.Sub(a.cursor)
	}
	a.cursor, a.hasCursor = pos, true
	a.sink.ProcessMouseMotion(pos, delta)
}

// PollGamepads reads every connected gamepad with a standard mapping and
// forwards the buttons and axes that changed since the last poll. A pad that
// disconnects has its held inputs released.
func (a *Adapter) PollGamepads() {
	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		pad := inputmap.GamepadID(joy)
		if !joy.Present() || !joy.IsGamepad() {
			a.pads.Disconnect(a.sink, pad)
			continue
		}
		if st := joy.GetGamepadState(); st != nil {
			a.pads.Update(a.sink, pad, readGamepad(st))
		}
	}
}

// readGamepad converts a GLFW gamepad state. GLFW reports triggers as axes
// resting at -1; they are rescaled to 0..1 and reported both as the Z axes
// and as analog trigger buttons.
func readGamepad(st *glfw.GamepadState) inputmap.GamepadSnapshot {
	var out inputmap.GamepadSnapshot
	for gb, b := range gamepadButtons {
		if st.Buttons[gb] == glfw.Press {
			out.Buttons[b] = 1
		}
	}

	out.Axes[inputmap.GamepadLeftStickX] = st.Axes[glfw.AxisLeftX]
	out.Axes[inputmap.GamepadLeftStickY] = st.Axes[glfw.AxisLeftY]
	out.Axes[inputmap.GamepadRightStickX] = st.Axes[glfw.AxisRightX]
	out.Axes[inputmap.GamepadRightStickY] = st.Axes[glfw.AxisRightY]

	left := (st.Axes[glfw.AxisLeftTrigger] + 1) / 2
	right := (st.Axes[glfw.AxisRightTrigger] + 1) / 2
	out.Axes[inputmap.GamepadLeftZ] = left
	out.Axes[inputmap.GamepadRightZ] = right
	out.Buttons[inputmap.GamepadLeftTrigger] = left
	out.Buttons[inputmap.GamepadRightTrigger] = right
	return out
}
