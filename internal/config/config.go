// Package config provides layered configuration for swatch.
//
// Configuration is resolved in order: built-in defaults, an optional YAML
// file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/palette"
)

// Environment variables read by WithEnv.
const (
	EnvPalette  = "SWATCH_PALETTE"
	EnvLogLevel = "SWATCH_LOG_LEVEL"
	EnvConfig   = "SWATCH_CONFIG"
	EnvNoColour = "SWATCH_NO_COLOUR"
	EnvNoColor  = "NO_COLOR"
)

const (
	appDir         = "swatch"
	configFileName = "config.yaml"
	customPalette  = "custom"
)

// For mocking in tests.
var osUserConfigDir = os.UserConfigDir

// Config holds swatch settings.
type Config struct {
	// Palette is the palette used for lookups and listing (x11, web, ansi).
	Palette string `yaml:"palette"`

	// LogLevel is an hclog level name (trace, debug, info, warn, error, off).
	LogLevel string `yaml:"log_level"`

	// NoColour disables ANSI colour output.
	NoColour bool `yaml:"no_colour"`

	// Colours are user-defined colour names mapped to hex values.
	Colours map[string]string `yaml:"colours"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Palette:  palette.X11,
		LogLevel: "warn",
		Colours:  map[string]string{},
	}
}

// Validate checks that the palette is known, the log level parses, and
// every custom colour is a valid hex value.
func (c Config) Validate() error {
	if _, err := palette.ByName(c.Palette); err != nil {
		return err
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	for name, hex := range c.Colours {
		if strings.TrimSpace(name) == "" {
			return errors.New("custom colour with empty name")
		}
		if _, err := colour.ParseHex(hex); err != nil {
			return fmt.Errorf("custom colour %q: %w", name, err)
		}
	}
	return nil
}

// Level returns the configured log level.
func (c Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

// CustomPalette returns the user-defined colours as a palette named
// "custom". Malformed entries are skipped; Validate reports them.
func (c Config) CustomPalette() *palette.Palette {
	entries := make([]palette.Entry, 0, len(c.Colours))
	for _, name := range sortedKeys(c.Colours) {
		rgb, err := colour.ParseHex(c.Colours[name])
		if err != nil {
			continue
		}
		entries = append(entries, palette.Entry{Name: name, Colour: rgb})
	}
	return palette.New(customPalette, entries)
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/swatch/config.yaml or the platform equivalent.
func DefaultPath() (string, error) {
	dir, err := osUserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(dir, appDir, configFileName), nil
}

// loadFile reads a YAML config file. A missing file yields ok=false and no error.
func loadFile(path string) (fileConfig, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fileConfig{}, false, nil
	}
	if err != nil {
		return fileConfig{}, false, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, false, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return fc, true, nil
}

// fileConfig mirrors Config with pointer fields so unset keys can be told
// apart from zero values when layering.
type fileConfig struct {
	Palette  *string           `yaml:"palette"`
	LogLevel *string           `yaml:"log_level"`
	NoColour *bool             `yaml:"no_colour"`
	Colours  map[string]string `yaml:"colours"`
}

func (fc fileConfig) applyTo(c *Config) {
	if fc.Palette != nil {
		c.Palette = *fc.Palette
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.NoColour != nil {
		c.NoColour = *fc.NoColour
	}
	for name, hex := range fc.Colours {
		c.Colours[name] = hex
	}
}
