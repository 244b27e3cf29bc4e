package glfwinput

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/inputmap"
)

var keys = map[glfw.Key]inputmap.Key{
	glfw.KeyA: inputmap.KeyA, glfw.KeyB: inputmap.KeyB, glfw.KeyC: inputmap.KeyC,
	glfw.KeyD: inputmap.KeyD, glfw.KeyE: inputmap.KeyE, glfw.KeyF: inputmap.KeyF,
	glfw.KeyG: inputmap.KeyG, glfw.KeyH: inputmap.KeyH, glfw.KeyI: inputmap.KeyI,
	glfw.KeyJ: inputmap.KeyJ, glfw.KeyK: inputmap.KeyK, glfw.KeyL: inputmap.KeyL,
	glfw.KeyM: inputmap.KeyM, glfw.KeyN: inputmap.KeyN, glfw.KeyO: inputmap.KeyO,
	glfw.KeyP: inputmap.KeyP, glfw.KeyQ: inputmap.KeyQ, glfw.KeyR: inputmap.KeyR,
	glfw.KeyS: inputmap.KeyS, glfw.KeyT: inputmap.KeyT, glfw.KeyU: inputmap.KeyU,
	glfw.KeyV: inputmap.KeyV, glfw.KeyW: inputmap.KeyW, glfw.KeyX: inputmap.KeyX,
	glfw.KeyY: inputmap.KeyY, glfw.KeyZ: inputmap.KeyZ,

	glfw.Key0: inputmap.Key0, glfw.Key1: inputmap.Key1, glfw.Key2: inputmap.Key2,
	glfw.Key3: inputmap.Key3, glfw.Key4: inputmap.Key4, glfw.Key5: inputmap.Key5,
	glfw.Key6: inputmap.Key6, glfw.Key7: inputmap.Key7, glfw.Key8: inputmap.Key8,
	glfw.Key9: inputmap.Key9,

	glfw.KeySpace:     inputmap.KeySpace,
	glfw.KeyEnter:     inputmap.KeyEnter,
	glfw.KeyEscape:    inputmap.KeyEscape,
	glfw.KeyTab:       inputmap.KeyTab,
	glfw.KeyBackspace: inputmap.KeyBackspace,
	glfw.KeyLeft:      inputmap.KeyLeft,
	glfw.KeyRight:     inputmap.KeyRight,
	glfw.KeyUp:        inputmap.KeyUp,
	glfw.KeyDown:      inputmap.KeyDown,
	glfw.KeyPageUp:    inputmap.KeyPageUp,
	glfw.KeyPageDown:  inputmap.KeyPageDown,
	glfw.KeyHome:      inputmap.KeyHome,
	glfw.KeyEnd:       inputmap.KeyEnd,
	glfw.KeyInsert:    inputmap.KeyInsert,
	glfw.KeyDelete:    inputmap.KeyDelete,

	glfw.KeyLeftShift:    inputmap.KeyLeftShift,
	glfw.KeyRightShift:   inputmap.KeyRightShift,
	glfw.KeyLeftControl:  inputmap.KeyLeftControl,
	glfw.KeyRightControl: inputmap.KeyRightControl,
	glfw.KeyLeftAlt:      inputmap.KeyLeftAlt,
	glfw.KeyRightAlt:     inputmap.KeyRightAlt,
	glfw.KeyLeftSuper:    inputmap.KeyLeftSuper,
	glfw.KeyRightSuper:   inputmap.KeyRightSuper,

	glfw.KeyMinus:        inputmap.KeyMinus,
	glfw.KeyEqual:        inputmap.KeyEqual,
	glfw.KeyLeftBracket:  inputmap.KeyLeftBracket,
	glfw.KeyRightBracket: inputmap.KeyRightBracket,
	glfw.KeySemicolon:    inputmap.KeySemicolon,
	glfw.KeyApostrophe:   inputmap.KeyApostrophe,
	glfw.KeyComma:        inputmap.KeyComma,
	glfw.KeyPeriod:       inputmap.KeyPeriod,
	glfw.KeySlash:        inputmap.KeySlash,
	glfw.KeyBackslash:    inputmap.KeyBackslash,
	glfw.KeyGraveAccent:  inputmap.KeyGraveAccent,

	glfw.KeyF1: inputmap.KeyF1, glfw.KeyF2: inputmap.KeyF2, glfw.KeyF3: inputmap.KeyF3,
	glfw.KeyF4: inputmap.KeyF4, glfw.KeyF5: inputmap.KeyF5, glfw.KeyF6: inputmap.KeyF6,
	glfw.KeyF7: inputmap.KeyF7, glfw.KeyF8: inputmap.KeyF8, glfw.KeyF9: inputmap.KeyF9,
	glfw.KeyF10: inputmap.KeyF10, glfw.KeyF11: inputmap.KeyF11, glfw.KeyF12: inputmap.KeyF12,
}

// mapKey maps a GLFW key. Unmapped keys return KeyNone.
func mapKey(key glfw.Key) inputmap.Key {
	return keys[key]
}

// mapMouseButton maps GLFW mouse buttons. Button 4 and 5 are the side buttons.
func mapMouseButton(button glfw.MouseButton) (inputmap.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return inputmap.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return inputmap.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return inputmap.MouseButtonMiddle, true
	case glfw.MouseButton4:
		return inputmap.MouseButtonBack, true
	case glfw.MouseButton5:
		return inputmap.MouseButtonForward, true
	default:
		return 0, false
	}
}

// gamepadButtons maps GLFW's standard gamepad buttons by position.
// Triggers are axes in GLFW and handled by readGamepad.
var gamepadButtons = map[glfw.GamepadButton]inputmap.GamepadButton{
	glfw.ButtonA:           inputmap.GamepadSouth,
	glfw.ButtonB:           inputmap.GamepadEast,
	glfw.ButtonX:           inputmap.GamepadWest,
	glfw.ButtonY:           inputmap.GamepadNorth,
	glfw.ButtonLeftBumper:  inputmap.GamepadLeftBumper,
	glfw.ButtonRightBumper: inputmap.GamepadRightBumper,
	glfw.ButtonBack:        inputmap.GamepadSelect,
	glfw.ButtonStart:       inputmap.GamepadStart,
	glfw.ButtonGuide:       inputmap.GamepadMode,
	glfw.ButtonLeftThumb:   inputmap.GamepadLeftThumb,
	glfw.ButtonRightThumb:  inputmap.GamepadRightThumb,
	glfw.ButtonDpadUp:      inputmap.GamepadDPadUp,
	glfw.ButtonDpadDown:    inputmap.GamepadDPadDown,
	glfw.ButtonDpadLeft:    inputmap.GamepadDPadLeft,
	glfw.ButtonDpadRight:   inputmap.GamepadDPadRight,
}
