// Package config resolves fsrx settings from defaults, a config file, the
// environment and command-line flags, in increasing priority.
package config

import (
	"fmt"
	"strings"

	"fsrx/internal/bionic"
)

// Settings is the user-facing configuration. Empty strings and nil pointers
// mean "not set" so that layers can be merged.
type Settings struct {
	Fixation string `toml:"fixation" yaml:"fixation" json:"fixation,omitempty"`
	Saccade  string `toml:"saccade" yaml:"saccade" json:"saccade,omitempty"`
	Contrast *bool  `toml:"contrast" yaml:"contrast" json:"contrast,omitempty"`
	Coalesce *bool  `toml:"coalesce" yaml:"coalesce" json:"coalesce,omitempty"`
	LogLevel string `toml:"log_level" yaml:"log_level" json:"log_level,omitempty"`
}

// Defaults: fixation m, saccade h, no contrast, warn logging.
func Defaults() Settings {
	return Settings{
		Fixation: "m",
		Saccade:  "h",
		Contrast: Bool(false),
		Coalesce: Bool(false),
		LogLevel: "warn",
	}
}

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Merge overlays over on base. Unset fields in over leave base untouched.
func Merge(base, over Settings) Settings {
	out := base
	if s := strings.TrimSpace(over.Fixation); s != "" {
		out.Fixation = s
	}
	if s := strings.TrimSpace(over.Saccade); s != "" {
		out.Saccade = s
	}
	if over.Contrast != nil {
		out.Contrast = Bool(*over.Contrast)
	}
	if over.Coalesce != nil {
		out.Coalesce = Bool(*over.Coalesce)
	}
	if s := strings.TrimSpace(over.LogLevel); s != "" {
		out.LogLevel = s
	}
	return out
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func Validate(s Settings) error {
	if _, err := bionic.ParseIntensity(s.Fixation); err != nil {
		return fmt.Errorf("fixation: %w", err)
	}
	if _, err := bionic.ParseIntensity(s.Saccade); err != nil {
		return fmt.Errorf("saccade: %w", err)
	}
	if lv := strings.ToLower(strings.TrimSpace(s.LogLevel)); lv != "" && !logLevels[lv] {
		return fmt.Errorf("%w: log level %q (want debug, info, warn or error)", bionic.ErrConfig, s.LogLevel)
	}
	return nil
}

// Resolve validates s and turns it into the styler configuration.
func Resolve(s Settings) (bionic.Config, error) {
	if err := Validate(s); err != nil {
		return bionic.Config{}, err
	}
	fix, _ := bionic.ParseIntensity(s.Fixation)
	sac, _ := bionic.ParseIntensity(s.Saccade)
	cfg, err := bionic.NewConfig(fix, sac, s.Contrast != nil && *s.Contrast)
	if err != nil {
		return bionic.Config{}, err
	}
	cfg.Coalesce = s.Coalesce != nil && *s.Coalesce
	return cfg, nil
}
