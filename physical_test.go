package inputmap_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/inputmap"
)

func TestPhysicalInputString(t *testing.T) {
	tests := []struct {
		in   inputmap.PhysicalInput
		want string
	}{
		{inputmap.KeyInput(inputmap.KeyW), "key:W"},
		{inputmap.KeyInput(inputmap.KeySpace), "key:Space"},
		{inputmap.MouseButtonInput(inputmap.MouseButtonLeft), "mouse_button:left"},
		{inputmap.MouseAxisDeltaInput(inputmap.MouseAxisWheel), "mouse_axis_delta:wheel"},
		{inputmap.GamepadButtonInput(inputmap.GamepadSouth), "gamepad_button:south"},
		{inputmap.GamepadAxisInput(inputmap.GamepadLeftStickY), "gamepad_axis:left_stick_y"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
		parsed, err := inputmap.ParsePhysicalInput(tt.want)
		if err != nil {
			t.Errorf("parse %q: %v", tt.want, err)
			continue
		}
		if parsed != tt.in {
			t.Errorf("parse %q: expected %v, got %v", tt.want, tt.in, parsed)
		}
	}
}

func TestParsePhysicalInputIsCaseInsensitive(t *testing.T) {
	got, err := inputmap.ParsePhysicalInput("  KEY:w ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != inputmap.KeyInput(inputmap.KeyW) {
		t.Errorf("expected key:W, got %v", got)
	}
}

func TestParsePhysicalInputKeyAliases(t *testing.T) {
	tests := []struct {
		in   string
		want inputmap.Key
	}{
		{"key:Escape", inputmap.KeyEscape},
		{"key:esc", inputmap.KeyEscape},
		{"key:Return", inputmap.KeyEnter},
		{"key:PageDown", inputmap.KeyPageDown},
		{"key:LeftCtrl", inputmap.KeyLeftControl},
	}
	for _, tt := range tests {
		got, err := inputmap.ParsePhysicalInput(tt.in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.in, err)
			continue
		}
		if got != inputmap.KeyInput(tt.want) {
			t.Errorf("%q: expected %v, got %v", tt.in, inputmap.KeyInput(tt.want), got)
		}
	}

	// String keeps the short names.
	if s := inputmap.KeyInput(inputmap.KeyEscape).String(); s != "key:Esc" {
		t.Errorf("expected key:Esc, got %s", s)
	}
}

func TestParsePhysicalInputErrors(t *testing.T) {
	for _, s := range []string{"", "W", "joystick:x", "key:nope", "gamepad_axis:wheel"} {
		_, err := inputmap.ParsePhysicalInput(s)
		if !errors.Is(err, inputmap.ErrUnknownInput) {
			t.Errorf("%q: expected ErrUnknownInput, got %v", s, err)
		}
	}
}

func TestPhysicalInputText(t *testing.T) {
	var in inputmap.PhysicalInput
	if err := in.UnmarshalText([]byte("mouse_axis:x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in != inputmap.MouseAxisInput(inputmap.MouseAxisX) {
		t.Errorf("expected mouse_axis:x, got %v", in)
	}
	text, err := in.MarshalText()
	if err != nil || string(text) != "mouse_axis:x" {
		t.Errorf("expected mouse_axis:x, got %q (%v)", text, err)
	}
}

func TestAbsoluteAndDeltaChannelsDiffer(t *testing.T) {
	if inputmap.MouseAxisInput(inputmap.MouseAxisX) == inputmap.MouseAxisDeltaInput(inputmap.MouseAxisX) {
		t.Error("absolute and delta channels must be distinct inputs")
	}
}
