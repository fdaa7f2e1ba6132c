package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/note2video/internal/classify"
)

// Timing overrides the frame hold durations, in seconds. Zero values mean
// "keep the default".
type Timing struct {
	PreHold   float64 `yaml:"pre_hold"`
	PostHold  float64 `yaml:"post_hold"`
	IntroHold float64 `yaml:"intro_hold"`
	OutroHold float64 `yaml:"outro_hold"`
}

// Profile is an optional YAML file tuning timing and the classifier
// vocabulary without a rebuild. Pattern lists replace the built-in list of
// the named category wholesale.
type Profile struct {
	Timing   Timing                        `yaml:"timing"`
	Patterns map[string][]classify.Pattern `yaml:"patterns"`
}

func ReadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	for name := range p.Patterns {
		if _, ok := classify.CategoryFromName(name); !ok {
			return nil, fmt.Errorf("profile %s: unknown category %q", path, name)
		}
	}
	return &p, nil
}

// WriteProfile saves a profile, used to dump the active defaults as a
// starting point for editing.
func WriteProfile(path string, p *Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply copies the non-zero timing overrides into cfg.
func (p *Profile) Apply(cfg *Config) {
	if p.Timing.PreHold > 0 {
		cfg.PreHold = p.Timing.PreHold
	}
	if p.Timing.PostHold > 0 {
		cfg.PostHold = p.Timing.PostHold
	}
	if p.Timing.IntroHold > 0 {
		cfg.IntroHold = p.Timing.IntroHold
	}
	if p.Timing.OutroHold > 0 {
		cfg.OutroHold = p.Timing.OutroHold
	}
}

// Table merges the profile patterns over the built-in classifier table.
func (p *Profile) Table() classify.Table {
	table := classify.DefaultTable()
	for name, patterns := range p.Patterns {
		if cat, ok := classify.CategoryFromName(name); ok {
			table[cat] = patterns
		}
	}
	return table
}
