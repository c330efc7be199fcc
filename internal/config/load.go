package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"fsrx/internal/bionic"
)

const envPrefix = "FSRX_"

// DefaultPath is $XDG_CONFIG_HOME/fsrx/config.toml (or the OS equivalent).
// It is only read, never created.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "fsrx", "config.toml")
}

// Path picks the config file: the flag value, then FSRX_CONFIG, then the
// default path. explicit reports whether a missing file is an error.
func Path(flagValue string, getenv func(string) string) (path string, explicit bool) {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p, true
	}
	if p := strings.TrimSpace(getenv(envPrefix + "CONFIG")); p != "" {
		return p, true
	}
	return DefaultPath(), false
}

// LoadFile reads a TOML or YAML settings file, chosen by extension. Unknown
// keys are rejected. A missing file is reported with os.ErrNotExist.
func LoadFile(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	return Parse(filepath.Ext(path), raw)
}

// Parse decodes raw as the format named by ext (".toml", ".yaml", ".yml").
func Parse(ext string, raw []byte) (Settings, error) {
	var s Settings
	switch strings.ToLower(ext) {
	case ".toml", "":
		dec := toml.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return Settings{}, fmt.Errorf("%w: toml: %w", bionic.ErrConfig, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return Settings{}, fmt.Errorf("%w: yaml: %w", bionic.ErrConfig, err)
		}
	default:
		return Settings{}, fmt.Errorf("%w: unsupported config format %q", bionic.ErrConfig, ext)
	}
	return s, nil
}

// EnvOverlay reads FSRX_* variables from environ (KEY=VALUE pairs).
func EnvOverlay(environ []string) (Settings, error) {
	var s Settings
	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, envPrefix) {
			continue
		}
		val = strings.TrimSpace(val)
		if val == "" {
			continue
		}
		switch strings.TrimPrefix(key, envPrefix) {
		case "FIXATION":
			s.Fixation = val
		case "SACCADE":
			s.Saccade = val
		case "LOG_LEVEL":
			s.LogLevel = val
		case "CONTRAST":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return Settings{}, fmt.Errorf("%w: %s=%q is not a boolean", bionic.ErrConfig, key, val)
			}
			s.Contrast = Bool(b)
		case "COALESCE":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return Settings{}, fmt.Errorf("%w: %s=%q is not a boolean", bionic.ErrConfig, key, val)
			}
			s.Coalesce = Bool(b)
		}
	}
	return s, nil
}

// Load builds the effective settings: Defaults < file < environment < flags.
func Load(path string, explicit bool, environ []string, flags Settings) (Settings, error) {
	s := Defaults()
	if path != "" {
		fileSettings, err := LoadFile(path)
		switch {
		case err == nil:
			s = Merge(s, fileSettings)
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return Settings{}, err
		}
	}
	env, err := EnvOverlay(environ)
	if err != nil {
		return Settings{}, err
	}
	s = Merge(s, env)
	s = Merge(s, flags)
	if err := Validate(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
