package main

import (
	"strings"
	"testing"

	"github.com/go-theft-auto/inputmap"
)

func TestHeldWhen(t *testing.T) {
	tests := []struct {
		in   inputmap.PhysicalInput
		want string
	}{
		{inputmap.KeyInput(inputmap.KeyW), "pressed"},
		{inputmap.MouseAxisInput(inputmap.MouseAxisX), "motion"},
		{inputmap.MouseAxisDeltaInput(inputmap.MouseAxisY), "motion"},
		{inputmap.MouseAxisInput(inputmap.MouseAxisWheel), "wheel"},
		{inputmap.MouseAxisDeltaInput(inputmap.MouseAxisWheel), "wheel"},
		{inputmap.GamepadAxisInput(inputmap.GamepadLeftStickX), "dead zone"},
	}
	for _, tt := range tests {
		if got := heldWhen(tt.in); !strings.Contains(got, tt.want) {
			t.Errorf("%v: expected %q in %q", tt.in, tt.want, got)
		}
	}
}
