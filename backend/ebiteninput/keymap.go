package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/inputmap"
)

var keys = map[ebiten.Key]inputmap.Key{
	ebiten.KeyA: inputmap.KeyA, ebiten.KeyB: inputmap.KeyB, ebiten.KeyC: inputmap.KeyC,
	ebiten.KeyD: inputmap.KeyD, ebiten.KeyE: inputmap.KeyE, ebiten.KeyF: inputmap.KeyF,
	ebiten.KeyG: inputmap.KeyG, ebiten.KeyH: inputmap.KeyH, ebiten.KeyI: inputmap.KeyI,
	ebiten.KeyJ: inputmap.KeyJ, ebiten.KeyK: inputmap.KeyK, ebiten.KeyL: inputmap.KeyL,
	ebiten.KeyM: inputmap.KeyM, ebiten.KeyN: inputmap.KeyN, ebiten.KeyO: inputmap.KeyO,
	ebiten.KeyP: inputmap.KeyP, ebiten.KeyQ: inputmap.KeyQ, ebiten.KeyR: inputmap.KeyR,
	ebiten.KeyS: inputmap.KeyS, ebiten.KeyT: inputmap.KeyT, ebiten.KeyU: inputmap.KeyU,
	ebiten.KeyV: inputmap.KeyV, ebiten.KeyW: inputmap.KeyW, ebiten.KeyX: inputmap.KeyX,
	ebiten.KeyY: inputmap.KeyY, ebiten.KeyZ: inputmap.KeyZ,

	ebiten.KeyDigit0: inputmap.Key0, ebiten.KeyDigit1: inputmap.Key1,
	ebiten.KeyDigit2: inputmap.Key2, ebiten.KeyDigit3: inputmap.Key3,
	ebiten.KeyDigit4: inputmap.Key4, ebiten.KeyDigit5: inputmap.Key5,
	ebiten.KeyDigit6: inputmap.Key6, ebiten.KeyDigit7: inputmap.Key7,
	ebiten.KeyDigit8: inputmap.Key8, ebiten.KeyDigit9: inputmap.Key9,

	ebiten.KeySpace:      inputmap.KeySpace,
	ebiten.KeyEnter:      inputmap.KeyEnter,
	ebiten.KeyEscape:     inputmap.KeyEscape,
	ebiten.KeyTab:        inputmap.KeyTab,
	ebiten.KeyBackspace:  inputmap.KeyBackspace,
	ebiten.KeyArrowLeft:  inputmap.KeyLeft,
	ebiten.KeyArrowRight: inputmap.KeyRight,
	ebiten.KeyArrowUp:    inputmap.KeyUp,
	ebiten.KeyArrowDown:  inputmap.KeyDown,
	ebiten.KeyPageUp:     inputmap.KeyPageUp,
	ebiten.KeyPageDown:   inputmap.KeyPageDown,
	ebiten.KeyHome:       inputmap.KeyHome,
	ebiten.KeyEnd:        inputmap.KeyEnd,
	ebiten.KeyInsert:     inputmap.KeyInsert,
	ebiten.KeyDelete:     inputmap.KeyDelete,

	ebiten.KeyShiftLeft:    inputmap.KeyLeftShift,
	ebiten.KeyShiftRight:   inputmap.KeyRightShift,
	ebiten.KeyControlLeft:  inputmap.KeyLeftControl,
	ebiten.KeyControlRight: inputmap.KeyRightControl,
	ebiten.KeyAltLeft:      inputmap.KeyLeftAlt,
	ebiten.KeyAltRight:     inputmap.KeyRightAlt,
	ebiten.KeyMetaLeft:     inputmap.KeyLeftSuper,
	ebiten.KeyMetaRight:    inputmap.KeyRightSuper,

	ebiten.KeyMinus:        inputmap.KeyMinus,
	ebiten.KeyEqual:        inputmap.KeyEqual,
	ebiten.KeyBracketLeft:  inputmap.KeyLeftBracket,
	ebiten.KeyBracketRight: inputmap.KeyRightBracket,
	ebiten.KeySemicolon:    inputmap.KeySemicolon,
	ebiten.KeyQuote:        inputmap.KeyApostrophe,
	ebiten.KeyComma:        inputmap.KeyComma,
	ebiten.KeyPeriod:       inputmap.KeyPeriod,
	ebiten.KeySlash:        inputmap.KeySlash,
	ebiten.KeyBackslash:    inputmap.KeyBackslash,
	ebiten.KeyBackquote:    inputmap.KeyGraveAccent,

	ebiten.KeyF1: inputmap.KeyF1, ebiten.KeyF2: inputmap.KeyF2, ebiten.KeyF3: inputmap.KeyF3,
	ebiten.KeyF4: inputmap.KeyF4, ebiten.KeyF5: inputmap.KeyF5, ebiten.KeyF6: inputmap.KeyF6,
	ebiten.KeyF7: inputmap.KeyF7, ebiten.KeyF8: inputmap.KeyF8, ebiten.KeyF9: inputmap.KeyF9,
	ebiten.KeyF10: inputmap.KeyF10, ebiten.KeyF11: inputmap.KeyF11, ebiten.KeyF12: inputmap.KeyF12,
}

var mouseButtons = map[ebiten.MouseButton]inputmap.MouseButton{
	ebiten.MouseButtonLeft:   inputmap.MouseButtonLeft,
	ebiten.MouseButtonRight:  inputmap.MouseButtonRight,
	ebiten.MouseButtonMiddle: inputmap.MouseButtonMiddle,
	ebiten.MouseButton3:      inputmap.MouseButtonBack,
	ebiten.MouseButton4:      inputmap.MouseButtonForward,
}

// gamepadButtons maps the standard layout by position.
var gamepadButtons = map[ebiten.StandardGamepadButton]inputmap.GamepadButton{
	ebiten.StandardGamepadButtonRightBottom:      inputmap.GamepadSouth,
	ebiten.StandardGamepadButtonRightRight:       inputmap.GamepadEast,
	ebiten.StandardGamepadButtonRightLeft:        inputmap.GamepadWest,
	ebiten.StandardGamepadButtonRightTop:         inputmap.GamepadNorth,
	ebiten.StandardGamepadButtonFrontTopLeft:     inputmap.GamepadLeftBumper,
	ebiten.StandardGamepadButtonFrontTopRight:    inputmap.GamepadRightBumper,
	ebiten.StandardGamepadButtonFrontBottomLeft:  inputmap.GamepadLeftTrigger,
	ebiten.StandardGamepadButtonFrontBottomRight: inputmap.GamepadRightTrigger,
	ebiten.StandardGamepadButtonCenterLeft:       inputmap.GamepadSelect,
	ebiten.StandardGamepadButtonCenterRight:      inputmap.GamepadStart,
	ebiten.StandardGamepadButtonCenterCenter:     inputmap.GamepadMode,
	ebiten.StandardGamepadButtonLeftStick:        inputmap.GamepadLeftThumb,
	ebiten.StandardGamepadButtonRightStick:       inputmap.GamepadRightThumb,
	ebiten.StandardGamepadButtonLeftTop:          inputmap.GamepadDPadUp,
	ebiten.StandardGamepadButtonLeftBottom:       inputmap.GamepadDPadDown,
	ebiten.StandardGamepadButtonLeftLeft:         inputmap.GamepadDPadLeft,
	ebiten.StandardGamepadButtonLeftRight:        inputmap.GamepadDPadRight,
}

var gamepadAxes = map[ebiten.StandardGamepadAxis]inputmap.GamepadAxis{
	ebiten.StandardGamepadAxisLeftStickHorizontal:  inputmap.GamepadLeftStickX,
	ebiten.StandardGamepadAxisLeftStickVertical:    inputmap.GamepadLeftStickY,
	ebiten.StandardGamepadAxisRightStickHorizontal: inputmap.GamepadRightStickX,
	ebiten.StandardGamepadAxisRightStickVertical:   inputmap.GamepadRightStickY,
}
