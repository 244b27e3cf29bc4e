package inputmap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownInput is returned when a physical input cannot be parsed.
var ErrUnknownInput = errors.New("unknown physical input")

// InputKind is the tag of a PhysicalInput.
type InputKind uint8

const (
	KindKey InputKind = iota
	KindMouseButton
	KindGamepadButton
	KindMouseAxis
	KindMouseAxisDelta
	KindGamepadAxis
	KindGamepadAxisDelta
	// Touch input would take the next tag; it is not implemented.
)

var kindNames = map[InputKind]string{
	KindKey:              "key",
	KindMouseButton:      "mouse_button",
	KindGamepadButton:    "gamepad_button",
	KindMouseAxis:        "mouse_axis",
	KindMouseAxisDelta:   "mouse_axis_delta",
	KindGamepadAxis:      "gamepad_axis",
	KindGamepadAxisDelta: "gamepad_axis_delta",
}

func (k InputKind) String() string { return lookupName(kindNames, k) }

// PhysicalInput identifies one physical input source. It is comparable and
// used directly as a map key; two inputs are equal iff kind and code match.
type PhysicalInput struct {
	Kind InputKind
	Code uint16
}

// KeyInput returns the physical input for a keyboard key.
func KeyInput(k Key) PhysicalInput {
	return PhysicalInput{Kind: KindKey, Code: uint16(k)}
}

// MouseButtonInput returns the physical input for a mouse button.
func MouseButtonInput(b MouseButton) PhysicalInput {
	return PhysicalInput{Kind: KindMouseButton, Code: uint16(b)}
}

// GamepadButtonInput returns the physical input for a gamepad button.
func GamepadButtonInput(b GamepadButton) PhysicalInput {
	return PhysicalInput{Kind: KindGamepadButton, Code: uint16(b)}
}

// MouseAxisInput returns the absolute channel of a mouse axis.
func MouseAxisInput(a MouseAxis) PhysicalInput {
	return PhysicalInput{Kind: KindMouseAxis, Code: uint16(a)}
}

// MouseAxisDeltaInput returns the per-event delta channel of a mouse axis.
func MouseAxisDeltaInput(a MouseAxis) PhysicalInput {
	return PhysicalInput{Kind: KindMouseAxisDelta, Code: uint16(a)}
}

// GamepadAxisInput returns the absolute channel of a gamepad axis.
func GamepadAxisInput(a GamepadAxis) PhysicalInput {
	return PhysicalInput{Kind: KindGamepadAxis, Code: uint16(a)}
}

// GamepadAxisDeltaInput returns the delta channel of a gamepad axis.
func GamepadAxisDeltaInput(a GamepadAxis) PhysicalInput {
	return PhysicalInput{Kind: KindGamepadAxisDelta, Code: uint16(a)}
}

// String returns the text form "kind:name", e.g. "key:W" or "gamepad_axis:left_stick_y".
func (p PhysicalInput) String() string {
	return p.Kind.String() + ":" + p.codeName()
}

func (p PhysicalInput) codeName() string {
	switch p.Kind {
	case KindKey:
		return Key(p.Code).String()
	case KindMouseButton:
		return MouseButton(p.Code).String()
	case KindGamepadButton:
		return GamepadButton(p.Code).String()
	case KindMouseAxis, KindMouseAxisDelta:
		return MouseAxis(p.Code).String()
	case KindGamepadAxis, KindGamepadAxisDelta:
		return GamepadAxis(p.Code).String()
	}
	return "?"
}

// ParsePhysicalInput parses the text form produced by String.
// Names are matched case-insensitively.
func ParsePhysicalInput(s string) (PhysicalInput, error) {
	kindName, codeName, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return PhysicalInput{}, fmt.Errorf("%w: %q: missing kind prefix", ErrUnknownInput, s)
	}

	var kind InputKind
	found := false
	for k, name := range kindNames {
		if strings.EqualFold(name, kindName) {
			kind, found = k, true
			break
		}
	}
	if !found {
		return PhysicalInput{}, fmt.Errorf("%w: %q: unknown kind %q", ErrUnknownInput, s, kindName)
	}

	var code uint16
	switch kind {
	case KindKey:
		code, found = findCode(keyNames, codeName)
		if !found {
			code, found = findCode(keyAliases, codeName)
		}
	case KindMouseButton:
		code, found = findCode(mouseButtonNames, codeName)
	case KindGamepadButton:
		code, found = findCode(gamepadButtonNames, codeName)
	case KindMouseAxis, KindMouseAxisDelta:
		code, found = findCode(mouseAxisNames, codeName)
	case KindGamepadAxis, KindGamepadAxisDelta:
		code, found = findCode(gamepadAxisNames, codeName)
	}
	if !found {
		return PhysicalInput{}, fmt.Errorf("%w: %q: unknown %s %q", ErrUnknownInput, s, kind, codeName)
	}
	return PhysicalInput{Kind: kind, Code: code}, nil
}

// keyAliases are accepted when parsing but never produced by String.
var keyAliases = map[Key]string{
	KeyEscape:       "Escape",
	KeyEnter:        "Return",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyLeftControl:  "LeftCtrl",
	KeyRightControl: "RightCtrl",
	KeyLeftShift:    "LeftShift",
	KeyRightShift:   "RightShift",
}

func findCode[T ~uint16](names map[T]string, name string) (uint16, bool) {
	for v, n := range names {
		if strings.EqualFold(n, name) {
			return uint16(v), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (p PhysicalInput) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PhysicalInput) UnmarshalText(text []byte) error {
	parsed, err := ParsePhysicalInput(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
