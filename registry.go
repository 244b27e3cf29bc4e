package inputmap

import (
	"log/slog"
	"slices"
)

// DefaultDeadZone is the magnitude at or below which a gamepad reading
// counts as released.
const DefaultDeadZone float32 = 0.1

// Sink receives raw events from a host backend. Registry implements it.
type Sink interface {
	ProcessKey(k Key, state ElementState)
	ProcessMouseMotion(position, delta Vec2)
	ProcessMouseButton(b MouseButton, state ElementState)
	ProcessMouseWheel(delta Vec2)
	ProcessGamepadButton(pad GamepadID, b GamepadButton, value float32)
	ProcessGamepadAxis(pad GamepadID, a GamepadAxis, value float32)
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	deadZone float32
	config   *Config
}

// WithLogger sets the logger used for actor and context diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithDeadZone sets the gamepad dead zone. Negative values are treated as 0.
func WithDeadZone(dz float32) Option {
	return func(o *options) { o.deadZone = max(dz, 0) }
}

// WithConfig sets the initial Config. The Registry keeps its own copy.
func WithConfig(cfg *Config) Option {
	return func(o *options) { o.config = cfg }
}

// actor is the per-actor state owned by a Registry.
type actor[C, A comparable] struct {
	context  C
	set      *BindingSet[A] // nil until a registered context is activated
	gamepad  GamepadID
	lastAxis map[GamepadAxis]float32
}

// Registry owns the binding templates of every input context, the live
// bindings of every tracked actor and the per-tick lifecycle.
//
// C is the input context type (menu, gameplay, ...), A the logical action
// type. A Registry is not safe for concurrent use; it has exactly one
// writer, the host's tick loop.
//
// Each tick the host must call, in order:
//
//	r.BeginTick()           // promote last tick's edges, release silent mouse channels
//	r.ProcessKey(...)       // ... every raw event of this tick
//	r.EndTick()             // seal the tick; handles become readable
//	h, ok := r.Handle(id)   // consumers read until the next BeginTick
type Registry[C, A comparable] struct {
	templates map[C]*BindingSet[A] // as registered
	effective map[C]*BindingSet[A] // templates with config applied
	config    *Config

	actors map[ActorID]*actor[C, A]
	ids    *idAllocator

	mousePosition    Vec2
	hasMousePosition bool
	mouseDelta       Vec2
	hasMouseDelta    bool
	mouseMoved       bool
	wheelMoved       bool

	lastSource    InputSource
	hasLastSource bool

	deadZone  float32
	ingesting bool
	tick      uint64

	logger *slog.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry[C, A comparable](opts ...Option) *Registry[C, A] {
	o := options{
		logger:   logger,
		deadZone: DefaultDeadZone,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger
	}

	return &Registry[C, A]{
		templates: make(map[C]*BindingSet[A]),
		effective: make(map[C]*BindingSet[A]),
		config:    o.config.Clone(),
		actors:    make(map[ActorID]*actor[C, A]),
		ids:       newIDAllocator(),
		deadZone:  o.deadZone,
		logger:    o.logger,
	}
}

// === Registration ===

// AddInput registers (or replaces) the binding template of a context.
// The Registry keeps a copy of set. Actors already in the context keep
// their current bindings until they switch context.
func (r *Registry[C, A]) AddInput(context C, set *BindingSet[A]) {
	template := set.Clone()
	r.templates[context] = template
	r.effective[context] = template.ApplyConfig(r.config)
	r.logger.Debug("input context registered", "context", context, "actions", template.Len())
}

// RemoveInput unregisters a context template. Active actors are unaffected.
func (r *Registry[C, A]) RemoveInput(context C) {
	delete(r.templates, context)
	delete(r.effective, context)
}

// HasInput reports whether a template is registered for context.
func (r *Registry[C, A]) HasInput(context C) bool {
	_, ok := r.templates[context]
	return ok
}

// === Configuration ===

// RebindAxis rebinds an input in every registered template.
// Active actors pick the change up on their next context switch.
func (r *Registry[C, A]) RebindAxis(from, to PhysicalInput) {
	r.config.RebindAxis(from, to)
	r.rebuildTemplates()
}

// RebindDefaultValue overrides an axis member multiplier in every registered template.
// Active actors pick the change up on their next context switch.
func (r *Registry[C, A]) RebindDefaultValue(in PhysicalInput, multiplier float32) {
	r.config.RebindDefaultValue(in, multiplier)
	r.rebuildTemplates()
}

// ApplyConfig replaces the Registry's config with a copy of cfg and
// re-derives every template from its registered definition.
// Active actors pick the change up on their next context switch.
func (r *Registry[C, A]) ApplyConfig(cfg *Config) {
	r.config = cfg.Clone()
	r.rebuildTemplates()
}

// Config returns a copy of the current config.
func (r *Registry[C, A]) Config() *Config {
	return r.config.Clone()
}

func (r *Registry[C, A]) rebuildTemplates() {
	for context, template := range r.templates {
		r.effective[context] = template.ApplyConfig(r.config)
	}
}

// === Actor lifecycle ===

// CreateActor allocates an actor ID and activates context for it.
// If no template is registered for context yet, the actor exists but
// Handle reports nothing until SwitchInput succeeds.
func (r *Registry[C, A]) CreateActor(context C) ActorID {
	id := r.ids.acquire()
	r.actors[id] = &actor[C, A]{
		gamepad:  GamepadID(id),
		lastAxis: make(map[GamepadAxis]float32),
	}
	r.logger.Debug("actor created", "actor", id)
	r.SwitchInput(id, context)
	return id
}

// SwitchInput replaces the actor's live bindings with a fresh copy of the
// context's template. Requesting the context the actor is already in is a
// no-op, so in-flight presses survive repeated calls. Returns true if the
// bindings were replaced.
func (r *Registry[C, A]) SwitchInput(id ActorID, context C) bool {
	a, ok := r.actors[id]
	if !ok {
		return false
	}
	if a.set != nil && a.context == context {
		return false
	}
	template, ok := r.effective[context]
	if !ok {
		r.logger.Debug("switch to unregistered input context ignored", "actor", id, "context", context)
		return false
	}
	a.set = template.Clone()
	a.context = context
	r.logger.Debug("input context switched", "actor", id, "context", context)
	return true
}

// StopTracking drops the actor's live state and frees its ID for reuse.
func (r *Registry[C, A]) StopTracking(id ActorID) {
	if _, ok := r.actors[id]; !ok {
		return
	}
	delete(r.actors, id)
	r.ids.release(id)
	r.logger.Debug("actor stopped", "actor", id)
}

// AssignGamepad routes events from pad to the actor. By default an actor
// receives the gamepad whose index equals its ID.
func (r *Registry[C, A]) AssignGamepad(id ActorID, pad GamepadID) bool {
	a, ok := r.actors[id]
	if !ok {
		return false
	}
	if a.gamepad != pad {
		clear(a.lastAxis)
	}
	a.gamepad = pad
	return true
}

// Gamepad returns the gamepad routed to the actor.
func (r *Registry[C, A]) Gamepad(id ActorID) (GamepadID, bool) {
	a, ok := r.actors[id]
	if !ok {
		return 0, false
	}
	return a.gamepad, true
}

// Context returns the actor's active context.
func (r *Registry[C, A]) Context(id ActorID) (C, bool) {
	a, ok := r.actors[id]
	if !ok || a.set == nil {
		var zero C
		return zero, false
	}
	return a.context, true
}

// Actors returns the IDs of every actor, tracked or pending, in ascending order.
func (r *Registry[C, A]) Actors() []ActorID {
	ids := make([]ActorID, 0, len(r.actors))
	for id := range r.actors {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// === Tick lifecycle ===

// BeginTick opens a tick. It promotes the edges raised last tick and
// releases mouse channels that saw no event last tick; those channels carry
// levels, and a host never reports "the mouse did not move".
func (r *Registry[C, A]) BeginTick() {
	if r.ingesting {
		r.logger.Debug("BeginTick called twice without EndTick", "tick", r.tick)
	}
	r.ingesting = true

	for _, a := range r.actors {
		if a.set == nil {
			continue
		}
		a.set.UpdateStates()

		if !r.mouseMoved {
			for _, axis := range [...]MouseAxis{MouseAxisX, MouseAxisY} {
				a.set.ChangeAxisState(MouseAxisInput(axis), Released, 0)
				a.set.ChangeAxisState(MouseAxisDeltaInput(axis), Released, 0)
			}
		}
		if !r.wheelMoved {
			for _, in := range [...]PhysicalInput{MouseAxisInput(MouseAxisWheel), MouseAxisDeltaInput(MouseAxisWheel)} {
				a.set.ChangeAxisState(in, Released, 0)
				a.set.ChangeKeyState(in, Released)
			}
		}
	}

	r.mouseMoved = false
	r.wheelMoved = false
	r.mouseDelta, r.hasMouseDelta = Vec2{}, false
}

// EndTick seals the tick. Edges raised during the tick stay observable
// through handles until the next BeginTick.
func (r *Registry[C, A]) EndTick() {
	r.ingesting = false
	r.tick++
	if verbose() {
		r.logger.Debug("tick sealed", "tick", r.tick, "actors", len(r.actors))
	}
}

// Tick returns the number of sealed ticks.
func (r *Registry[C, A]) Tick() uint64 { return r.tick }

// === Ingestion ===

func (r *Registry[C, A]) eachTracked(fn func(a *actor[C, A])) {
	for _, a := range r.actors {
		if a.set != nil {
			fn(a)
		}
	}
}

// ProcessKey ingests a keyboard key event. A key can back both a key action
// and an axis member.
func (r *Registry[C, A]) ProcessKey(k Key, state ElementState) {
	in := KeyInput(k)
	r.eachTracked(func(a *actor[C, A]) {
		a.set.ChangeKeyState(in, state)
		a.set.ChangeAxisState(in, state, 1.0)
	})
	r.setSource(SourceKeyboard)
}

// ProcessMouseMotion ingests one cursor event paired with its motion delta.
// The four mouse channels are reported as held with the event's values.
func (r *Registry[C, A]) ProcessMouseMotion(position, delta Vec2) {
	r.eachTracked(func(a *actor[C, A]) {
		a.set.ChangeAxisState(MouseAxisInput(MouseAxisX), Pressed, position.X)
		a.set.ChangeAxisState(MouseAxisInput(MouseAxisY), Pressed, position.Y)
		a.set.ChangeAxisState(MouseAxisDeltaInput(MouseAxisX), Pressed, delta.X)
		a.set.ChangeAxisState(MouseAxisDeltaInput(MouseAxisY), Pressed, delta.Y)
	})

	r.mousePosition, r.hasMousePosition = position, true
	r.mouseDelta, r.hasMouseDelta = delta, true
	r.mouseMoved = true
	r.setSource(SourceMouse)
}

// ProcessMouseButton ingests a mouse button event.
func (r *Registry[C, A]) ProcessMouseButton(b MouseButton, state ElementState) {
	in := MouseButtonInput(b)
	r.eachTracked(func(a *actor[C, A]) {
		a.set.ChangeKeyState(in, state)
		a.set.ChangeAxisState(in, state, 1.0)
	})
	r.setSource(SourceMouse)
}

// ProcessMouseWheel ingests a wheel event. Only the vertical delta is
// reported, on both the absolute and the delta wheel channel.
func (r *Registry[C, A]) ProcessMouseWheel(delta Vec2) {
	abs, diff := MouseAxisInput(MouseAxisWheel), MouseAxisDeltaInput(MouseAxisWheel)
	r.eachTracked(func(a *actor[C, A]) {
		a.set.ChangeKeyState(abs, Pressed)
		a.set.ChangeKeyState(diff, Pressed)
		a.set.ChangeAxisState(abs, Pressed, delta.Y)
		a.set.ChangeAxisState(diff, Pressed, delta.Y)
	})
	r.wheelMoved = true
	r.setSource(SourceMouse)
}

// ProcessGamepadButton ingests an analog or digital gamepad button reading.
// It is routed only to actors assigned to pad.
func (r *Registry[C, A]) ProcessGamepadButton(pad GamepadID, b GamepadButton, value float32) {
	in := GamepadButtonInput(b)
	state := r.classify(value)
	routed := r.eachOnGamepad(pad, func(a *actor[C, A]) {
		a.set.ChangeKeyState(in, state)
		a.set.ChangeAxisState(in, state, value)
	})
	if !routed {
		r.logger.Debug("gamepad event has no actor", "gamepad", pad, "button", b)
	}
	r.setSource(SourceGamepad)
}

// ProcessGamepadAxis ingests a gamepad axis reading. The delta channel
// carries the change since the actor last saw this axis; an axis the actor
// has not seen yet is taken to rest at 0.
func (r *Registry[C, A]) ProcessGamepadAxis(pad GamepadID, axis GamepadAxis, value float32) {
	abs, diff := GamepadAxisInput(axis), GamepadAxisDeltaInput(axis)
	state := r.classify(value)
	routed := r.eachOnGamepad(pad, func(a *actor[C, A]) {
		a.set.ChangeKeyState(abs, state)
		a.set.ChangeAxisState(abs, state, value)

		delta := value - a.lastAxis[axis]
		a.lastAxis[axis] = value
		a.set.ChangeAxisState(diff, state, delta)
	})
	if !routed {
		r.logger.Debug("gamepad event has no actor", "gamepad", pad, "axis", axis)
	}
	r.setSource(SourceGamepad)
}

func (r *Registry[C, A]) eachOnGamepad(pad GamepadID, fn func(a *actor[C, A])) bool {
	routed := false
	r.eachTracked(func(a *actor[C, A]) {
		if a.gamepad == pad {
			fn(a)
			routed = true
		}
	})
	return routed
}

func (r *Registry[C, A]) classify(value float32) ElementState {
	if absf32(value) > r.deadZone {
		return Pressed
	}
	return Released
}

func (r *Registry[C, A]) setSource(s InputSource) {
	r.lastSource, r.hasLastSource = s, true
}

// === Queries ===

// Handle returns a read-only view of the actor's bindings. It reports
// false for unknown or untracked actors and while a tick is being ingested.
// A handle is bound to the bindings current at lookup; fetch a new one
// every tick.
func (r *Registry[C, A]) Handle(id ActorID) (Handle[C, A], bool) {
	if r.ingesting {
		return Handle[C, A]{}, false
	}
	a, ok := r.actors[id]
	if !ok || a.set == nil {
		return Handle[C, A]{}, false
	}
	return Handle[C, A]{actor: id, set: a.set, context: a.context}, true
}

// LastInputSource returns the device family of the most recent event.
func (r *Registry[C, A]) LastInputSource() (InputSource, bool) {
	return r.lastSource, r.hasLastSource
}

// MousePosition returns the last reported cursor position.
func (r *Registry[C, A]) MousePosition() (Vec2, bool) {
	return r.mousePosition, r.hasMousePosition
}

// MouseDelta returns the cursor delta reported since the current tick began.
func (r *Registry[C, A]) MouseDelta() (Vec2, bool) {
	return r.mouseDelta, r.hasMouseDelta
}

var _ Sink = (*Registry[int, int])(nil)
