package inputmap

// ElementState is the instantaneous on/off reading of a physical input for a tick.
type ElementState uint8

const (
	Released ElementState = iota
	Pressed
)

func (s ElementState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// InputSource classifies the device family that produced the most recent event.
type InputSource uint8

const (
	SourceKeyboard InputSource = iota
	SourceMouse
	SourceGamepad
)

func (s InputSource) String() string {
	switch s {
	case SourceKeyboard:
		return "Keyboard"
	case SourceMouse:
		return "Mouse"
	case SourceGamepad:
		return "Gamepad"
	}
	return "?"
}

// MouseButton represents a mouse button.
type MouseButton uint16

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack
	MouseButtonForward
	MouseButtonCount
)

// MouseAxis identifies a mouse channel that carries a value.
type MouseAxis uint16

const (
	MouseAxisX MouseAxis = iota
	MouseAxisY
	MouseAxisWheel
	MouseAxisCount
)

// Key represents a keyboard key.
type Key uint16

const (
	KeyNone Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeySemicolon
	KeyApostrophe
	KeyComma
	KeyPeriod
	KeySlash
	KeyBackslash
	KeyGraveAccent
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

// GamepadButton identifies a button on a standard-layout gamepad.
// Face buttons are named by position so the same binding works on any vendor layout.
type GamepadButton uint16

const (
	GamepadSouth GamepadButton = iota
	GamepadEast
	GamepadWest
	GamepadNorth
	GamepadLeftBumper
	GamepadRightBumper
	GamepadLeftTrigger
	GamepadRightTrigger
	GamepadSelect
	GamepadStart
	GamepadMode
	GamepadLeftThumb
	GamepadRightThumb
	GamepadDPadUp
	GamepadDPadDown
	GamepadDPadLeft
	GamepadDPadRight
	GamepadButtonCount
)

// GamepadAxis identifies an analog gamepad channel.
type GamepadAxis uint16

const (
	GamepadLeftStickX GamepadAxis = iota
	GamepadLeftStickY
	GamepadRightStickX
	GamepadRightStickY
	GamepadLeftZ
	GamepadRightZ
	GamepadAxisCount
)

// GamepadID is the host's index for a connected gamepad.
type GamepadID int

var keyNames = map[Key]string{
	KeyNone:         "--",
	KeyA:            "A",
	KeyB:            "B",
	KeyC:            "C",
	KeyD:            "D",
	KeyE:            "E",
	KeyF:            "F",
	KeyG:            "G",
	KeyH:            "H",
	KeyI:            "I",
	KeyJ:            "J",
	KeyK:            "K",
	KeyL:            "L",
	KeyM:            "M",
	KeyN:            "N",
	KeyO:            "O",
	KeyP:            "P",
	KeyQ:            "Q",
	KeyR:            "R",
	KeyS:            "S",
	KeyT:            "T",
	KeyU:            "U",
	KeyV:            "V",
	KeyW:            "W",
	KeyX:            "X",
	KeyY:            "Y",
	KeyZ:            "Z",
	Key0:            "0",
	Key1:            "1",
	Key2:            "2",
	Key3:            "3",
	Key4:            "4",
	Key5:            "5",
	Key6:            "6",
	Key7:            "7",
	Key8:            "8",
	Key9:            "9",
	KeySpace:        "Space",
	KeyEnter:        "Enter",
	KeyEscape:       "Esc",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyPageUp:       "PgUp",
	KeyPageDown:     "PgDn",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyInsert:       "Ins",
	KeyDelete:       "Del",
	KeyLeftShift:    "LShift",
	KeyRightShift:   "RShift",
	KeyLeftControl:  "LCtrl",
	KeyRightControl: "RCtrl",
	KeyLeftAlt:      "LAlt",
	KeyRightAlt:     "RAlt",
	KeyLeftSuper:    "LSuper",
	KeyRightSuper:   "RSuper",
	KeyMinus:        "Minus",
	KeyEqual:        "Equal",
	KeyLeftBracket:  "LBracket",
	KeyRightBracket: "RBracket",
	KeySemicolon:    "Semicolon",
	KeyApostrophe:   "Apostrophe",
	KeyComma:        "Comma",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeyBackslash:    "Backslash",
	KeyGraveAccent:  "Grave",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
}

var mouseButtonNames = map[MouseButton]string{
	MouseButtonLeft:    "left",
	MouseButtonRight:   "right",
	MouseButtonMiddle:  "middle",
	MouseButtonBack:    "back",
	MouseButtonForward: "forward",
}

var mouseAxisNames = map[MouseAxis]string{
	MouseAxisX:     "x",
	MouseAxisY:     "y",
	MouseAxisWheel: "wheel",
}

var gamepadButtonNames = map[GamepadButton]string{
	GamepadSouth:        "south",
	GamepadEast:         "east",
	GamepadWest:         "west",
	GamepadNorth:        "north",
	GamepadLeftBumper:   "left_bumper",
	GamepadRightBumper:  "right_bumper",
	GamepadLeftTrigger:  "left_trigger",
	GamepadRightTrigger: "right_trigger",
	GamepadSelect:       "select",
	GamepadStart:        "start",
	GamepadMode:         "mode",
	GamepadLeftThumb:    "left_thumb",
	GamepadRightThumb:   "right_thumb",
	GamepadDPadUp:       "dpad_up",
	GamepadDPadDown:     "dpad_down",
	GamepadDPadLeft:     "dpad_left",
	GamepadDPadRight:    "dpad_right",
}

var gamepadAxisNames = map[GamepadAxis]string{
	GamepadLeftStickX:  "left_stick_x",
	GamepadLeftStickY:  "left_stick_y",
	GamepadRightStickX: "right_stick_x",
	GamepadRightStickY: "right_stick_y",
	GamepadLeftZ:       "left_z",
	GamepadRightZ:      "right_z",
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}

func (k Key) String() string { return KeyName(k) }

func (b MouseButton) String() string { return lookupName(mouseButtonNames, b) }

func (a MouseAxis) String() string { return lookupName(mouseAxisNames, a) }

func (b GamepadButton) String() string { return lookupName(gamepadButtonNames, b) }

func (a GamepadAxis) String() string { return lookupName(gamepadAxisNames, a) }

func lookupName[T comparable](names map[T]string, v T) string {
	if name, ok := names[v]; ok {
		return name
	}
	return "?"
}
