/*
Package inputmap maps physical input to logical game actions.

An application defines logical actions of two kinds: discrete key actions
("Jump", "Pause") and continuous axis actions ("Forward", "CameraYaw"). Each
action is bound to one or more physical inputs (keyboard keys, mouse buttons
and axes, gamepad buttons and axes) inside a BindingSet. One BindingSet is
registered per input context (menu, gameplay, editor, ...), and every tracked
actor (a local player) works on its own copy of the set for its active context.

# Quick Start

	type Context int
	type Action int

	const (
		Gameplay Context = iota
	)

	const (
		Jump Action = iota
		Forward
	)

	set := inputmap.NewBindingSet[Action]()
	set.BeginKey(Jump).
		Add(inputmap.KeyInput(inputmap.KeySpace)).
		Finish()
	set.BeginAxis(Forward).
		AddWithMultiplier(inputmap.KeyInput(inputmap.KeyW), 1).
		AddWithMultiplier(inputmap.KeyInput(inputmap.KeyS), -1).
		Add(inputmap.GamepadAxisInput(inputmap.GamepadLeftStickY)).
		Finish()

	reg := inputmap.NewRegistry[Context, Action]()
	reg.AddInput(Gameplay, set)
	player := reg.CreateActor(Gameplay)

	// Game loop
	for running {
	    reg.BeginTick()
	    pollEvents(reg) // a backend calls reg.ProcessKey, reg.ProcessMouseMotion, ...
	    reg.EndTick()

	    if h, ok := reg.Handle(player); ok {
	        if h.JustPressed(Jump) {
	            // jump
	        }
	        if v, ok := h.AxisValue(Forward); ok {
	            // move by v
	        }
	    }
	}

# Tick Model

Everything is synchronous and single-threaded. A tick has four steps that
must not be reordered:

	BeginTick   promote last tick's edges; release mouse channels that were silent
	Process*    ingest every raw event of the tick, in arrival order
	EndTick     seal the tick
	Handle      consumers read until the next BeginTick

Handle reports nothing between BeginTick and EndTick.

# Key Actions

A key action is a KeySet: it activates when all of its inputs are held at
once. Handle.KeyState returns Pressed exactly on the tick the action activated
and Released exactly on the tick it deactivated; a consumer polling every tick
sees each edge once. KeyHeld reports the steady state.

A chord that activates and loses a member within the same tick still
reports its release: on the next tick it steps from active to the release
pulse instead of staying active until the member is pressed again. A plain
press, activate, release state machine would leave it latched.

Binding with RequireFullRelease makes a chord re-activate only after every
member was released and pressed again.

# Axis Actions

An axis action is an AxisSet: any of its inputs can drive it and the most
recently engaged one wins. Its value is the member's multiplier times the
magnitude the source reported (1 for keys and buttons). Releasing the driving
input falls back to the next most recent input still held; releasing all of
them clears the value.

Mouse position, mouse motion and the wheel are level channels. They are
reported as held with their value for every event and released by BeginTick
when a tick passed without an event.

# Gamepads

Gamepad readings count as held when their magnitude exceeds the dead zone
(DefaultDeadZone, see WithDeadZone). Gamepad events are routed to the actor
assigned to the pad: by default the actor whose ID equals the pad index, see
Registry.AssignGamepad.

# Configuration

A Config rebinds physical inputs and overrides axis multipliers for every
context. Registry.RebindAxis, Registry.RebindDefaultValue and
Registry.ApplyConfig update the registered templates only: an actor that is
already active keeps its bindings until its next context switch.

Package bindfile loads bindings and Config from YAML.

# Backends

Subpackages of backend translate host events into Sink calls:

	backend/glfwinput    GLFW windows and gamepads
	backend/ebiteninput  Ebitengine games
	backend/tcellinput   terminal programs

# Logging

Diagnostics go through log/slog at debug level. SetVerbose(true) enables them
on the package logger; WithLogger routes a Registry's messages elsewhere.
*/
package inputmap
