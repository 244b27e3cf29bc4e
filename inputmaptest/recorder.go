// Package inputmaptest provides helpers for testing input backends.
package inputmaptest

import (
	"fmt"

	"github.com/go-theft-auto/inputmap"
)

// Recorder is an inputmap.Sink that records every call as a short string,
// for example "key W Pressed" or "pad 0 axis left_stick_x 0.5".
type Recorder struct {
	Events []string
}

// ProcessKey implements inputmap.Sink.
func (r *Recorder) ProcessKey(k inputmap.Key, state inputmap.ElementState) {
	r.add("key %v %v", k, state)
}

// ProcessMouseMotion implements inputmap.Sink.
func (r *Recorder) ProcessMouseMotion(position, delta inputmap.Vec2) {
	r.add("motion %g,%g %g,%g", position.X, position.Y, delta.X, delta.Y)
}

// ProcessMouseButton implements inputmap.Sink.
func (r *Recorder) ProcessMouseButton(b inputmap.MouseButton, state inputmap.ElementState) {
	r.add("button %v %v", b, state)
}

// ProcessMouseWheel implements inputmap.Sink.
func (r *Recorder) ProcessMouseWheel(delta inputmap.Vec2) {
	r.add("wheel %g,%g", delta.X, delta.Y)
}

// ProcessGamepadButton implements inputmap.Sink.
func (r *Recorder) ProcessGamepadButton(pad inputmap.GamepadID, b inputmap.GamepadButton, value float32) {
	r.add("pad %d button %v %g", pad, b, value)
}

// ProcessGamepadAxis implements inputmap.Sink.
func (r *Recorder) ProcessGamepadAxis(pad inputmap.GamepadID, a inputmap.GamepadAxis, value float32) {
	r.add("pad %d axis %v %g", pad, a, value)
}

// Reset drops the recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

func (r *Recorder) add(format string, args ...any) {
	r.Events = append(r.Events, fmt.Sprintf(format, args...))
}

var _ inputmap.Sink = (*Recorder)(nil)
