// Example glfw tints a window from axis actions.
//
//	go run ./example/glfw/                       # built-in bindings
//	go run ./example/glfw/ -bindings my.yaml -v  # custom bindings, debug logging
//
// R/F, G/H, the left stick and horizontal mouse motion move the red, green
// and blue channels. P or the gamepad's Start pauses, Ctrl+R resets,
// Escape quits.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/inputmap"
	"github.com/go-theft-auto/inputmap/backend/glfwinput"
	"github.com/go-theft-auto/inputmap/bindfile"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "inputmap example"

	ctxPlay   = "play"
	ctxPaused = "paused"
)

//go:embed bindings.yaml
var defaultBindings []byte

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	bindingsPath := flag.String("bindings", "", "YAML bindings file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	inputmap.SetVerbose(*verbose)

	if err := run(*bindingsPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadBindings(path string) (*bindfile.File, error) {
	if path == "" {
		return bindfile.Parse(defaultBindings)
	}
	return bindfile.Load(path)
}

type color struct{ r, g, b float32 }

func (c *color) add(dr, dg, db float32) {
	c.r = clamp01(c.r + dr)
	c.g = clamp01(c.g + dg)
	c.b = clamp01(c.b + db)
}

func clamp01(v float32) float32 { return min(max(v, 0), 1) }

func run(bindingsPath string) error {
	bindings, err := loadBindings(bindingsPath)
	if err != nil {
		return fmt.Errorf("load bindings: %w", err)
	}
	reg := inputmap.NewRegistry[string, string]()
	if err := bindings.Install(reg); err != nil {
		return fmt.Errorf("install bindings: %w", err)
	}
	player := reg.CreateActor(ctxPlay)

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	adapter := glfwinput.NewAdapter(window, reg)

	const speed = 1.0 / 60.0
	tint := color{r: 0.12, g: 0.12, b: 0.14}

	actions := inputmap.NewActionRegistry[string, string]()
	actions.Register("quit", "quit", inputmap.OnPress, func(float32) { window.SetShouldClose(true) })
	actions.Register("reset", "reset", inputmap.OnPress, func(float32) { tint = color{r: 0.12, g: 0.12, b: 0.14} })
	actions.RegisterBlocked("red", "red", inputmap.OnAxis, func(v float32) { tint.add(v*speed, 0, 0) }, ctxPaused)
	actions.RegisterBlocked("green", "green", inputmap.OnAxis, func(v float32) { tint.add(0, v*speed, 0) }, ctxPaused)
	actions.RegisterBlocked("blue", "blue", inputmap.OnAxis, func(v float32) { tint.add(0, 0, v) }, ctxPaused)
	togglePause := func(float32) {
		if ctx, _ := reg.Context(player); ctx == ctxPlay {
			reg.SwitchInput(player, ctxPaused)
		} else {
			reg.SwitchInput(player, ctxPlay)
		}
	}
	actions.Register("pause", "pause", inputmap.OnPress, togglePause)
	actions.Register("pause_pad", "pause_pad", inputmap.OnPress, togglePause)

	// Main loop.
	for !window.ShouldClose() {
		reg.BeginTick()
		glfw.PollEvents()
		adapter.PollGamepads()
		reg.EndTick()

		if h, ok := reg.Handle(player); ok {
			actions.HandleActions(h)
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		if ctx, _ := reg.Context(player); ctx == ctxPaused {
			gl.ClearColor(tint.r/2, tint.g/2, tint.b/2, 1.0)
		} else {
			gl.ClearColor(tint.r, tint.g, tint.b, 1.0)
		}
		gl.Clear(gl.COLOR_BUFFER_BIT)

		window.SwapBuffers()
	}

	return nil
}
