// Package ebiteninput feeds Ebitengine input into an inputmap.Sink.
package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-theft-auto/inputmap"
)

// Adapter polls Ebitengine's input state once per tick. Call Poll from the
// game's Update between BeginTick and EndTick:
//
//	func (g *Game) Update() error {
//		g.reg.BeginTick()
//		g.input.Poll()
//		g.reg.EndTick()
//		...
//	}
type Adapter struct {
	sink inputmap.Sink

	keys []ebiten.Key // scratch buffer
	pads []ebiten.GamepadID

	cursor    inputmap.Vec2
	hasCursor bool

	tracker *inputmap.GamepadTracker
	present map[inputmap.GamepadID]bool
}

// NewAdapter creates an adapter feeding sink.
func NewAdapter(sink inputmap.Sink) *Adapter {
	return &Adapter{
		sink:    sink,
		tracker: inputmap.NewGamepadTracker(),
		present: make(map[inputmap.GamepadID]bool),
	}
}

// Poll forwards the input edges and levels Ebitengine reports for the
// current tick.
func (a *Adapter) Poll() {
	a.pollKeys()
	a.pollMouse()
	a.pollGamepads()
}

func (a *Adapter) pollKeys() {
	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, key := range a.keys {
		if k, ok := keys[key]; ok {
			a.sink.ProcessKey(k, inputmap.Pressed)
		}
	}
	a.keys = inpututil.AppendJustReleasedKeys(a.keys[:0])
	for _, key := range a.keys {
		if k, ok := keys[key]; ok {
			a.sink.ProcessKey(k, inputmap.Released)
		}
	}
}

func (a *Adapter) pollMouse() {
	x, y := ebiten.CursorPosition()
	a.moveCursor(inputmap.Vec2{X: float32(x), Y: float32(y)})

	for eb, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(eb) {
			a.sink.ProcessMouseButton(b, inputmap.Pressed)
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			a.sink.ProcessMouseButton(b, inputmap.Released)
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		a.sink.ProcessMouseWheel(inputmap.Vec2{X: float32(wx), Y: float32(wy)})
	}
}

// moveCursor reports the cursor when it moved. Ebitengine reports positions,
// not motion events, so an unmoved cursor sends nothing.
func (a *Adapter) moveCursor(pos inputmap.Vec2) {
	if a.hasCursor && pos == a.cursor {
		return
	}
	var delta inputmap.Vec2
	if a.hasCursor {
		delta = pos.Sub(a.cursor)
	}
	a.cursor, a.hasCursor = pos, true
	a.sink.ProcessMouseMotion(pos, delta)
}

func (a *Adapter) pollGamepads() {
	clear(a.present)
	a.pads = ebiten.AppendGamepadIDs(a.pads[:0])
	for _, id := range a.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		pad := inputmap.GamepadID(id)
		a.present[pad] = true
		a.tracker.Update(a.sink, pad, readGamepad(id))
	}

	for _, pad := range a.tracker.Pads() {
		if !a.present[pad] {
			a.tracker.Disconnect(a.sink, pad)
		}
	}
}

func readGamepad(id ebiten.GamepadID) inputmap.GamepadSnapshot {
	var out inputmap.GamepadSnapshot
	for sb, b := range gamepadButtons {
		out.Buttons[b] = float32(ebiten.StandardGamepadButtonValue(id, sb))
	}
	for sa, ax := range gamepadAxes {
		out.Axes[ax] = float32(ebiten.StandardGamepadAxisValue(id, sa))
	}
	out.Axes[inputmap.GamepadLeftZ] = out.Buttons[inputmap.GamepadLeftTrigger]
	out.Axes[inputmap.GamepadRightZ] = out.Buttons[inputmap.GamepadRightTrigger]
	return out
}
