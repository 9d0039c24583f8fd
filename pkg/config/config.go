// Package config loads emplace configuration with layered precedence:
// built-in defaults, then an optional user config file, then EMPLACE_*
// environment variables.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/emplace/pkg/errors"
)

//go:embed defaults.toml
var defaultConfig []byte

// Config holds the user-tunable settings of the materialization layer.
type Config struct {
	Link     LinkConfig     `koanf:"link"`
	Registry RegistryConfig `koanf:"registry"`
}

// LinkConfig controls placement strategy defaults.
type LinkConfig struct {
	AllowSoftlinks bool `koanf:"allow_softlinks"`
	AlwaysCopy     bool `koanf:"always_copy"`
	Force          bool `koanf:"force"`
}

// RegistryConfig controls the private environment registry.
type RegistryConfig struct {
	Filename string `koanf:"filename"`
}

// Load builds the effective configuration. configFile may be empty, in
// which case only the embedded defaults and the environment apply.
func Load(configFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load built-in defaults")
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to load config from %s", configFile)
			}
		}
	}

	// EMPLACE_LINK_FORCE=true -> link.force, and so on.
	if err := k.Load(env.Provider("EMPLACE_", ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, "EMPLACE_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to decode configuration")
	}
	return &cfg, nil
}

// DefaultConfigFile returns the conventional user config path inside the
// XDG config home, or empty when the home directory cannot be resolved.
func DefaultConfigFile() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "emplace", "config.toml")
}
