// Command gen writes doc/inputs.md, the reference of every physical input
// name accepted in bindings files.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/inputmap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// section is one table of the reference.
type section struct {
	title  string
	about  string
	inputs []inputmap.PhysicalInput
}

func run() error {
	outDir := "doc"
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	path := filepath.Join(outDir, "inputs.md")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# Physical inputs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Names accepted by `inputmap.ParsePhysicalInput` and in bindings files.")
	fmt.Fprintln(w, "Names are case-insensitive. Generated by `go run ./doc/gen/`.")

	count := 0
	for _, s := range buildSections() {
		fmt.Fprintf(w, "\n## %s\n\n%s\n\n| Name | Held when |\n|------|-----------|\n", s.title, s.about)
		for _, in := range s.inputs {
			fmt.Fprintf(w, "| `%s` | %s |\n", in, heldWhen(in))
		}
		count += len(s.inputs)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("Wrote %d inputs to %s\n", count, path)
	return nil
}

func buildSections() []section {
	var keys, mouseButtons, mouseAxes, padButtons, padAxes []inputmap.PhysicalInput
	for k := inputmap.KeyNone + 1; k < inputmap.KeyCount; k++ {
		keys = append(keys, inputmap.KeyInput(k))
	}
	for b := range inputmap.MouseButtonCount {
		mouseButtons = append(mouseButtons, inputmap.MouseButtonInput(b))
	}
	for a := range inputmap.MouseAxisCount {
		mouseAxes = append(mouseAxes, inputmap.MouseAxisInput(a), inputmap.MouseAxisDeltaInput(a))
	}
	for b := range inputmap.GamepadButtonCount {
		padButtons = append(padButtons, inputmap.GamepadButtonInput(b))
	}
	for a := range inputmap.GamepadAxisCount {
		padAxes = append(padAxes, inputmap.GamepadAxisInput(a), inputmap.GamepadAxisDeltaInput(a))
	}

	return []section{
		{"Keyboard", "Usable in key and axis bindings; an axis member reads 1 while held.", keys},
		{"Mouse buttons", "Usable in key and axis bindings.", mouseButtons},
		{"Mouse axes", "Level channels, released after a tick without motion (or scrolling, for the wheel).", mouseAxes},
		{"Gamepad buttons", "Analog buttons report their pressure to axis bindings.", padButtons},
		{"Gamepad axes", "Delta channels carry the change since the previous reading.", padAxes},
	}
}

func heldWhen(in inputmap.PhysicalInput) string {
	switch in.Kind {
	case inputmap.KindKey, inputmap.KindMouseButton:
		return "pressed"
	case inputmap.KindMouseAxis, inputmap.KindMouseAxisDelta:
		if inputmap.MouseAxis(in.Code) == inputmap.MouseAxisWheel {
			return "the wheel scrolled this tick"
		}
		return "the mouse reported motion this tick"
	default:
		return fmt.Sprintf("magnitude above the dead zone (%g by default)", inputmap.DefaultDeadZone)
	}
}
