// Package bindfile reads and writes bindings and player overrides as YAML.
//
// A file has an optional config section (rebinds and axis multiplier
// overrides) and one section per input context. Inputs use the text form of
// inputmap.PhysicalInput:
//
//	config:
//	  rebind:
//	    key:W: key:Up
//	  defaults:
//	    key:S: -0.5
//	contexts:
//	  gameplay:
//	    keys:
//	      jump:
//	        inputs: ["key:Space"]
//	      dash:
//	        inputs: ["key:LShift", "key:Space"]
//	        require_full_release: true
//	    axes:
//	      forward:
//	        - input: key:W
//	        - input: key:S
//	          multiplier: -1
//	        - input: gamepad_axis:left_stick_y
//
// Context and action names are plain strings; use a
// inputmap.Registry[string, string] with Install.
package bindfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/inputmap"
)

// File is a decoded bindings file.
type File struct {
	Overrides ConfigSection             `yaml:"config,omitempty"`
	Contexts  map[string]ContextSection `yaml:"contexts,omitempty"`
}

// ConfigSection holds rebinds and axis multiplier overrides.
type ConfigSection struct {
	Rebind   map[string]string  `yaml:"rebind,omitempty"`
	Defaults map[string]float32 `yaml:"defaults,omitempty"`
}

// ContextSection holds the bindings of one input context.
type ContextSection struct {
	Keys map[string]KeyBinding   `yaml:"keys,omitempty"`
	Axes map[string][]AxisMember `yaml:"axes,omitempty"`
}

// KeyBinding is a discrete action: all inputs held at once.
type KeyBinding struct {
	Inputs             []string `yaml:"inputs"`
	RequireFullRelease bool     `yaml:"require_full_release,omitempty"`
}

// AxisMember is one input of an axis action. Multiplier defaults to 1.
type AxisMember struct {
	Input      string   `yaml:"input"`
	Multiplier *float32 `yaml:"multiplier,omitempty"`
}

// Load reads and validates a bindings file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates YAML data. Empty data is a valid, empty file.
func Parse(data []byte) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, err
	}
	if _, err := f.Config(); err != nil {
		return nil, err
	}
	if _, err := f.BindingSets(); err != nil {
		return nil, err
	}
	return f, nil
}

// Config builds the overrides of the config section.
func (f *File) Config() (*inputmap.Config, error) {
	cfg := inputmap.NewConfig()
	for from, to := range f.Overrides.Rebind {
		src, err := inputmap.ParsePhysicalInput(from)
		if err != nil {
			return nil, fmt.Errorf("config rebind: %w", err)
		}
		dst, err := inputmap.ParsePhysicalInput(to)
		if err != nil {
			return nil, fmt.Errorf("config rebind %s: %w", from, err)
		}
		cfg.RebindAxis(src, dst)
	}
	for name, m := range f.Overrides.Defaults {
		in, err := inputmap.ParsePhysicalInput(name)
		if err != nil {
			return nil, fmt.Errorf("config defaults: %w", err)
		}
		cfg.RebindDefaultValue(in, m)
	}
	return cfg, nil
}

// BindingSets builds one binding set per context section.
func (f *File) BindingSets() (map[string]*inputmap.BindingSet[string], error) {
	sets := make(map[string]*inputmap.BindingSet[string], len(f.Contexts))
	for context, section := range f.Contexts {
		set, err := section.bindingSet()
		if err != nil {
			return nil, fmt.Errorf("context %q: %w", context, err)
		}
		sets[context] = set
	}
	return sets, nil
}

func (s ContextSection) bindingSet() (*inputmap.BindingSet[string], error) {
	set := inputmap.NewBindingSet[string]()

	for action, kb := range s.Keys {
		if _, dup := s.Axes[action]; dup {
			return nil, fmt.Errorf("action %q is bound as both key and axis", action)
		}
		b := set.BeginKey(action)
		for _, name := range kb.Inputs {
			in, err := inputmap.ParsePhysicalInput(name)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", action, err)
			}
			b.Add(in)
		}
		if kb.RequireFullRelease {
			b.RequireFullRelease()
		}
		b.Finish()
	}

	for action, members := range s.Axes {
		b := set.BeginAxis(action)
		for _, m := range members {
			in, err := inputmap.ParsePhysicalInput(m.Input)
			if err != nil {
				return nil, fmt.Errorf("axis %q: %w", action, err)
			}
			if m.Multiplier != nil {
				b.AddWithMultiplier(in, *m.Multiplier)
			} else {
				b.Add(in)
			}
		}
		b.Finish()
	}
	return set, nil
}

// Install replaces reg's config with the file's config section and registers
// every context.
func (f *File) Install(reg *inputmap.Registry[string, string]) error {
	cfg, err := f.Config()
	if err != nil {
		return err
	}
	sets, err := f.BindingSets()
	if err != nil {
		return err
	}
	reg.ApplyConfig(cfg)
	for context, set := range sets {
		reg.AddInput(context, set)
	}
	return nil
}

// FromConfig converts overrides into a config section.
func FromConfig(cfg *inputmap.Config) ConfigSection {
	var sec ConfigSection
	if cfg.Empty() {
		return sec
	}
	if rebinds := cfg.Rebinds(); len(rebinds) > 0 {
		sec.Rebind = make(map[string]string, len(rebinds))
		for from, to := range rebinds {
			sec.Rebind[from.String()] = to.String()
		}
	}
	if defaults := cfg.Defaults(); len(defaults) > 0 {
		sec.Defaults = make(map[string]float32, len(defaults))
		for in, m := range defaults {
			sec.Defaults[in.String()] = m
		}
	}
	return sec
}

// Encode renders cfg as a file holding only a config section, which is how
// player overrides are saved.
func Encode(cfg *inputmap.Config) ([]byte, error) {
	return yaml.Marshal(&File{Overrides: FromConfig(cfg)})
}

// Save writes cfg to path, see Encode.
func Save(path string, cfg *inputmap.Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
