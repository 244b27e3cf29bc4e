package bindfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-theft-auto/inputmap"
	"github.com/go-theft-auto/inputmap/bindfile"
)

const sample = `config:
  rebind:
    key:W: key:Up
  defaults:
    key:S: -0.5
contexts:
  gameplay:
    keys:
      jump:
        inputs: ["key:Space"]
      dash:
        inputs: ["key:LShift", "key:Space"]
        require_full_release: true
    axes:
      forward:
        - input: key:W
        - input: key:S
          multiplier: -1
        - input: gamepad_axis:left_stick_y
  menu:
    keys:
      confirm:
        inputs: ["key:Enter", "gamepad_button:south"]
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write bindings file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		create   bool
		content  string
		wantErr  bool
		validate func(t *testing.T, f *bindfile.File, err error)
	}{
		{
			name:    "valid file",
			create:  true,
			content: sample,
			validate: func(t *testing.T, f *bindfile.File, err error) {
				if len(f.Contexts) != 2 {
					t.Errorf("expected 2 contexts, got %d", len(f.Contexts))
				}
				dash := f.Contexts["gameplay"].Keys["dash"]
				if !dash.RequireFullRelease || len(dash.Inputs) != 2 {
					t.Errorf("unexpected dash binding %+v", dash)
				}
				forward := f.Contexts["gameplay"].Axes["forward"]
				if len(forward) != 3 || forward[1].Multiplier == nil || *forward[1].Multiplier != -1 {
					t.Errorf("unexpected forward binding %+v", forward)
				}
			},
		},
		{
			name:    "missing file",
			wantErr: true,
			validate: func(t *testing.T, f *bindfile.File, err error) {
				if !os.IsNotExist(err) {
					t.Errorf("expected not-exist error, got %v", err)
				}
			},
		},
		{
			name:    "malformed yaml",
			create:  true,
			content: "contexts: [gameplay\n",
			wantErr: true,
			validate: func(t *testing.T, f *bindfile.File, err error) {
				if err == nil || !strings.Contains(err.Error(), "yaml") {
					t.Errorf("expected yaml error, got %v", err)
				}
			},
		},
		{
			name:    "unknown input",
			create:  true,
			content: "contexts:\n  gameplay:\n    keys:\n      jump:\n        inputs: [\"key:Hyper\"]\n",
			wantErr: true,
			validate: func(t *testing.T, f *bindfile.File, err error) {
				if !errors.Is(err, inputmap.ErrUnknownInput) {
					t.Errorf("expected ErrUnknownInput, got %v", err)
				}
			},
		},
		{
			name:    "action bound twice",
			create:  true,
			content: "contexts:\n  gameplay:\n    keys:\n      fire:\n        inputs: [\"key:F\"]\n    axes:\n      fire:\n        - input: key:G\n",
			wantErr: true,
		},
		{
			name:    "empty file",
			create:  true,
			content: "",
			validate: func(t *testing.T, f *bindfile.File, err error) {
				if len(f.Contexts) != 0 {
					t.Errorf("expected no contexts, got %d", len(f.Contexts))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.yaml")
			if tt.create {
				path = writeFile(t, tt.content)
			}

			f, err := bindfile.Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && f == nil {
				t.Fatal("Load() returned a nil file")
			}
			if tt.validate != nil {
				tt.validate(t, f, err)
			}
		})
	}
}

func TestInstall(t *testing.T) {
	f, err := bindfile.Parse([]byte(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reg := inputmap.NewRegistry[string, string]()
	if err := f.Install(reg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reg.HasInput("gameplay") || !reg.HasInput("menu") {
		t.Fatal("expected both contexts registered")
	}

	player := reg.CreateActor("gameplay")
	reg.BeginTick()
	reg.ProcessKey(inputmap.KeyUp, inputmap.Pressed)
	reg.ProcessKey(inputmap.KeySpace, inputmap.Pressed)
	reg.EndTick()

	h, ok := reg.Handle(player)
	if !ok {
		t.Fatal("expected handle")
	}
	if v, ok := h.AxisValue("forward"); !ok || v != 1 {
		t.Errorf("expected rebound Up to drive forward, got %v %v", v, ok)
	}
	if !h.JustPressed("jump") {
		t.Error("expected jump on Space")
	}
	if h.JustPressed("dash") {
		t.Error("dash needs LShift too")
	}

	reg.BeginTick()
	reg.ProcessKey(inputmap.KeyUp, inputmap.Released)
	reg.ProcessKey(inputmap.KeyS, inputmap.Pressed)
	reg.EndTick()
	h, _ = reg.Handle(player)
	if v, ok := h.AxisValue("forward"); !ok || v != -0.5 {
		t.Errorf("expected overridden S multiplier, got %v %v", v, ok)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := inputmap.NewConfig()
	cfg.RebindAxis(inputmap.KeyInput(inputmap.KeyW), inputmap.KeyInput(inputmap.KeyUp))
	cfg.RebindDefaultValue(inputmap.GamepadAxisInput(inputmap.GamepadLeftStickY), -1)

	path := filepath.Join(t.TempDir(), "overrides.yaml")
	if err := bindfile.Save(path, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := bindfile.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := f.Config()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if to := got.Resolve(inputmap.KeyInput(inputmap.KeyW)); to != inputmap.KeyInput(inputmap.KeyUp) {
		t.Errorf("expected key:Up, got %v", to)
	}
	if m, ok := got.DefaultValue(inputmap.GamepadAxisInput(inputmap.GamepadLeftStickY)); !ok || m != -1 {
		t.Errorf("expected -1, got %v %v", m, ok)
	}
}

func TestEncodeEmptyConfig(t *testing.T) {
	data, err := bindfile.Encode(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(string(data)) != "{}" {
		t.Errorf("expected empty document, got %q", data)
	}
}

func TestExampleBindingsLoad(t *testing.T) {
	f, err := bindfile.Load(filepath.Join("..", "example", "glfw", "bindings.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reg := inputmap.NewRegistry[string, string]()
	if err := f.Install(reg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	player := reg.CreateActor("play")

	press := func(k inputmap.Key) {
		reg.BeginTick()
		reg.ProcessKey(k, inputmap.Pressed)
		reg.EndTick()
	}
	release := func(k inputmap.Key) {
		reg.BeginTick()
		reg.ProcessKey(k, inputmap.Released)
		reg.EndTick()
	}

	press(inputmap.KeyEscape)
	if h, _ := reg.Handle(player); !h.JustPressed("quit") {
		t.Error("expected Esc to quit")
	}
	release(inputmap.KeyEscape)

	reg.SwitchInput(player, "paused")
	press(inputmap.KeyP)
	if h, _ := reg.Handle(player); !h.JustPressed("pause") {
		t.Error("expected P alone to unpause")
	}
	release(inputmap.KeyP)

	reg.BeginTick()
	reg.ProcessGamepadButton(0, inputmap.GamepadStart, 1)
	reg.EndTick()
	if h, _ := reg.Handle(player); !h.JustPressed("pause_pad") {
		t.Error("expected Start alone to unpause")
	}
}
