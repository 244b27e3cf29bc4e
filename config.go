package inputmap

import (
	"iter"
	"maps"
	"slices"
)

// Config holds player-facing overrides applied to binding definitions:
// a rebind table (physical input -> physical input) and a default
// multiplier table for axis members. It is context-agnostic; one Config
// applies to every registered context.
//
// A Config is applied to templates when they are registered or when the
// Registry's config changes. Actors that are already active keep their
// bindings until their next context switch.
type Config struct {
	rebind   map[PhysicalInput]PhysicalInput
	defaults map[PhysicalInput]float32
}

// NewConfig returns an empty Config.
func NewConfig() *Config {
	return &Config{
		rebind:   make(map[PhysicalInput]PhysicalInput),
		defaults: make(map[PhysicalInput]float32),
	}
}

// RebindAxis makes bindings that name from use to instead.
// Rebinding an input to itself removes the entry.
func (c *Config) RebindAxis(from, to PhysicalInput) {
	if from == to {
		delete(c.rebind, from)
		return
	}
	c.rebind[from] = to
}

// RebindDefaultValue overrides the multiplier of every axis member bound to in.
func (c *Config) RebindDefaultValue(in PhysicalInput, multiplier float32) {
	c.defaults[in] = multiplier
}

// ClearDefaultValue removes a multiplier override.
func (c *Config) ClearDefaultValue(in PhysicalInput) {
	delete(c.defaults, in)
}

// Resolve returns the input a binding of in should listen to.
// Rebinds are applied once, not chained.
func (c *Config) Resolve(in PhysicalInput) PhysicalInput {
	if c == nil {
		return in
	}
	if to, ok := c.rebind[in]; ok {
		return to
	}
	return in
}

// DefaultValue returns the multiplier override for in, if any.
func (c *Config) DefaultValue(in PhysicalInput) (float32, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c.defaults[in]
	return v, ok
}

// Multiplier returns the override for in, falling back to 1.0.
func (c *Config) Multiplier(in PhysicalInput) float32 {
	if v, ok := c.DefaultValue(in); ok {
		return v
	}
	return 1.0
}

// Rebinds returns a copy of the rebind table.
func (c *Config) Rebinds() map[PhysicalInput]PhysicalInput {
	return maps.Clone(c.rebind)
}

// Defaults returns a copy of the multiplier override table.
func (c *Config) Defaults() map[PhysicalInput]float32 {
	return maps.Clone(c.defaults)
}

// RebindSources returns the rebound inputs in a stable order.
func (c *Config) RebindSources() []PhysicalInput {
	return sortedInputs(maps.Keys(c.rebind))
}

// DefaultSources returns the inputs with multiplier overrides in a stable order.
func (c *Config) DefaultSources() []PhysicalInput {
	return sortedInputs(maps.Keys(c.defaults))
}

// Merge copies every entry of other into c, overwriting existing ones.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	maps.Copy(c.rebind, other.rebind)
	maps.Copy(c.defaults, other.defaults)
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	if c == nil {
		return NewConfig()
	}
	return &Config{
		rebind:   maps.Clone(c.rebind),
		defaults: maps.Clone(c.defaults),
	}
}

// Empty reports whether the config has no entries.
func (c *Config) Empty() bool {
	return c == nil || (len(c.rebind) == 0 && len(c.defaults) == 0)
}

func sortedInputs(seq iter.Seq[PhysicalInput]) []PhysicalInput {
	return slices.SortedFunc(seq, func(a, b PhysicalInput) int {
		if a.Kind != b.Kind {
			return int(a.Kind) - int(b.Kind)
		}
		return int(a.Code) - int(b.Code)
	})
}
