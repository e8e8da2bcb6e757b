// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package commands

import (
	"errors"
	"os"
	"sort"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/glass"
)

var (
	// ErrUnknownPreset is returned when a preset name is not defined.
	ErrUnknownPreset = zerr.New("unknown preset")

	// ErrInvalidConfig is returned for config files that do not parse.
	ErrInvalidConfig = zerr.New("invalid config file")
)

// Preset maps attribute names to values.
type Preset map[string]string

// Config is the YAML preset file:
//
//	presets:
//	  frosted:
//	    strength: 40
//	    blur: 8
type Config struct {
	Presets map[string]Preset `yaml:"presets"`
}

// builtinPresets are always available and can be overridden by a config file.
func builtinPresets() map[string]Preset {
	return map[string]Preset{
		"default": {},
		"subtle": {
			glass.AttrStrength: "40",
			glass.AttrDepth:    "6",
			glass.AttrBlur:     "1",
		},
		"prism": {
			glass.AttrStrength:            "80",
			glass.AttrChromaticAberration: "6",
		},
		"frosted": {
			glass.AttrStrength: "0",
			glass.AttrBlur:     "8",
		},
	}
}

// LoadConfig reads path and merges its presets over the built-in ones.
// An empty path yields the built-in presets.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{Presets: builtinPresets()}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config"), "path", path)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(ErrInvalidConfig, zerr.With(zerr.Wrap(err, "failed to parse config"), "path", path))
	}
	for name, p := range file.Presets {
		if p == nil {
			p = Preset{}
		}
		cfg.Presets[name] = p
	}
	return cfg, nil
}

// Preset returns a copy of the named preset.
func (c *Config) Preset(name string) (Preset, error) {
	p, ok := c.Presets[name]
	if !ok {
		return nil, zerr.With(ErrUnknownPreset, "preset", name)
	}
	out := make(Preset, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out, nil
}

// Names returns the preset names, sorted.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
