// Package tcellinput feeds terminal input from tcell into an inputmap.Sink.
//
// Terminals report key presses but never key releases. The adapter treats a
// key as held until a tick passes without the key being reported again;
// holding a key down relies on the terminal's key repeat.
package tcellinput

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/inputmap"
)

// DefaultHoldTicks is how many ticks without a repeat a key stays held.
const DefaultHoldTicks = 1

// Adapter translates tcell events into Sink calls.
//
//	reg.BeginTick()
//	for screen.HasPendingEvent() {
//		adapter.Feed(screen.PollEvent())
//	}
//	adapter.Flush()
//	reg.EndTick()
type Adapter struct {
	sink inputmap.Sink
	hold int

	held map[inputmap.Key]int // key -> ticks since last seen

	buttons   tcell.ButtonMask
	cursor    inputmap.Vec2
	hasCursor bool
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithHoldTicks sets how many silent ticks a key survives before it is
// released. Values below 1 are treated as 1.
func WithHoldTicks(n int) Option {
	return func(a *Adapter) { a.hold = max(n, 1) }
}

// NewAdapter creates an adapter feeding sink.
func NewAdapter(sink inputmap.Sink, opts ...Option) *Adapter {
	a := &Adapter{
		sink: sink,
		hold: DefaultHoldTicks,
		held: make(map[inputmap.Key]int),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Feed forwards one tcell event. Events other than key and mouse events are
// ignored. Returns true if the event was consumed.
func (a *Adapter) Feed(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.feedKey(ev)
	case *tcell.EventMouse:
		a.feedMouse(ev)
		return true
	}
	return false
}

func (a *Adapter) feedKey(ev *tcell.EventKey) bool {
	k := mapKey(ev.Key(), ev.Rune())
	if k == inputmap.KeyNone {
		return false
	}

	mods := ev.Modifiers()
	if mods&tcell.ModShift != 0 {
		a.press(inputmap.KeyLeftShift)
	}
	if mods&tcell.ModCtrl != 0 {
		a.press(inputmap.KeyLeftControl)
	}
	if mods&tcell.ModAlt != 0 {
		a.press(inputmap.KeyLeftAlt)
	}
	a.press(k)
	return true
}

func (a *Adapter) press(k inputmap.Key) {
	a.held[k] = 0
	a.sink.ProcessKey(k, inputmap.Pressed)
}

var mouseButtons = [...]struct {
	mask   tcell.ButtonMask
	button inputmap.MouseButton
}{
	{tcell.Button1, inputmap.MouseButtonLeft},
	{tcell.Button2, inputmap.MouseButtonRight},
	{tcell.Button3, inputmap.MouseButtonMiddle},
}

func (a *Adapter) feedMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := inputmap.Vec2{X: float32(x), Y: float32(y)}
	if !a.hasCursor || pos != a.cursor {
		var delta inputmap.Vec2
		if a.hasCursor {
			delta = pos.Sub(a.cursor)
		}
		a.cursor, a.hasCursor = pos, true
		a.sink.ProcessMouseMotion(pos, delta)
	}

	buttons := ev.Buttons()
	for _, mb := range mouseButtons {
		was, is := a.buttons&mb.mask != 0, buttons&mb.mask != 0
		switch {
		case is && !was:
			a.sink.ProcessMouseButton(mb.button, inputmap.Pressed)
		case was && !is:
			a.sink.ProcessMouseButton(mb.button, inputmap.Released)
		}
	}
	a.buttons = buttons

	var wheel inputmap.Vec2
	if buttons&tcell.WheelUp != 0 {
		wheel.Y++
	}
	if buttons&tcell.WheelDown != 0 {
		wheel.Y--
	}
	if buttons&tcell.WheelLeft != 0 {
		wheel.X--
	}
	if buttons&tcell.WheelRight != 0 {
		wheel.X++
	}
	if !wheel.IsZero() {
		a.sink.ProcessMouseWheel(wheel)
	}
}

// Flush releases keys that were not reported for the hold period. Call it
// once per tick after the tick's events were fed.
func (a *Adapter) Flush() {
	for k, silent := range a.held {
		if silent >= a.hold {
			delete(a.held, k)
			a.sink.ProcessKey(k, inputmap.Released)
			continue
		}
		a.held[k] = silent + 1
	}
}

// Reset releases every held key and mouse button, for example when the
// terminal loses focus.
func (a *Adapter) Reset() {
	for k := range a.held {
		delete(a.held, k)
		a.sink.ProcessKey(k, inputmap.Released)
	}
	for _, mb := range mouseButtons {
		if a.buttons&mb.mask != 0 {
			a.sink.ProcessMouseButton(mb.button, inputmap.Released)
		}
	}
	a.buttons = 0
}
