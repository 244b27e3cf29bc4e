// Example terminal moves a marker around the terminal with WASD, the arrow
// keys or the mouse wheel, and shows the action pulses of each tick.
//
//	go run ./example/terminal/
//	go run ./example/terminal/ -log input.log   # debug log to a file
//
// Space jumps, Tab opens the menu, Escape or Ctrl+Q quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/inputmap"
	"github.com/go-theft-auto/inputmap/backend/tcellinput"
)

type context int

const (
	play context = iota
	menu
)

type action int

const (
	moveX action = iota
	moveY
	jump
	toggleMenu
	quit
)

func bindings() (playSet, menuSet *inputmap.BindingSet[action]) {
	key := inputmap.KeyInput

	playSet = inputmap.NewBindingSet[action]()
	playSet.BeginAxis(moveX).
		AddWithMultiplier(key(inputmap.KeyD), 1).
		AddWithMultiplier(key(inputmap.KeyA), -1).
		AddWithMultiplier(key(inputmap.KeyRight), 1).
		AddWithMultiplier(key(inputmap.KeyLeft), -1).
		Finish()
	playSet.BeginAxis(moveY).
		AddWithMultiplier(key(inputmap.KeyS), 1).
		AddWithMultiplier(key(inputmap.KeyW), -1).
		AddWithMultiplier(key(inputmap.KeyDown), 1).
		AddWithMultiplier(key(inputmap.KeyUp), -1).
		AddWithMultiplier(inputmap.MouseAxisDeltaInput(inputmap.MouseAxisWheel), -1).
		Finish()
	playSet.BeginKey(jump).Add(key(inputmap.KeySpace)).Finish()
	playSet.BeginKey(toggleMenu).Add(key(inputmap.KeyTab)).Finish()
	playSet.BeginKey(quit).Add(key(inputmap.KeyEscape)).Finish()

	menuSet = inputmap.NewBindingSet[action]()
	menuSet.BeginKey(toggleMenu).Add(key(inputmap.KeyTab)).Finish()
	menuSet.BeginKey(quit).Add(key(inputmap.KeyLeftControl), key(inputmap.KeyQ)).Finish()
	return playSet, menuSet
}

func main() {
	logPath := flag.String("log", "", "write debug log to this file")
	flag.Parse()

	if err := run(*logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logPath string) error {
	var opts []inputmap.Option
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		opts = append(opts, inputmap.WithLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	reg := inputmap.NewRegistry[context, action](opts...)
	playSet, menuSet := bindings()
	reg.AddInput(play, playSet)
	reg.AddInput(menu, menuSet)
	player := reg.CreateActor(play)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	// The tick loop is the only writer; events reach it through a channel.
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	adapter := tcellinput.NewAdapter(reg, tcellinput.WithHoldTicks(3))
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	var x, y float32 = 10, 5
	jumps := 0
	for range ticker.C {
		reg.BeginTick()
	drain:
		for {
			select {
			case ev := <-events:
				if _, ok := ev.(*tcell.EventResize); ok {
					screen.Sync()
				}
				adapter.Feed(ev)
			default:
				break drain
			}
		}
		adapter.Flush()
		reg.EndTick()

		h, ok := reg.Handle(player)
		if !ok {
			continue
		}
		if h.JustPressed(quit) {
			return nil
		}
		if h.JustPressed(toggleMenu) {
			if h.InputType() == play {
				reg.SwitchInput(player, menu)
			} else {
				reg.SwitchInput(player, play)
			}
			adapter.Reset()
		}
		if h.JustPressed(jump) {
			jumps++
		}
		if v, ok := h.AxisValue(moveX); ok {
			x += v * 0.5
		}
		if v, ok := h.AxisValue(moveY); ok {
			y += v * 0.25
		}

		w, ht := screen.Size()
		x = min(max(x, 0), float32(w-1))
		y = min(max(y, 1), float32(ht-1))

		screen.Clear()
		status := fmt.Sprintf("tick %d  jumps %d  source ", reg.Tick(), jumps)
		if src, ok := reg.LastInputSource(); ok {
			status += src.String()
		}
		if h.InputType() == menu {
			status += "  [menu: Tab resumes, Ctrl+Q quits]"
		}
		drawText(screen, 0, 0, status)
		screen.SetContent(int(x), int(y), '@', nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))
		screen.Show()
	}
	return nil
}

func drawText(s tcell.Screen, x, y int, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
