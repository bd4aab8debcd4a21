package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Loader provides a fluent interface for resolving configuration.
type Loader struct {
	base     Config
	path     string
	explicit bool
	useEnv   bool
	getenv   func(string) (string, bool)
}

// NewLoader creates a loader starting from the default configuration.
func NewLoader() *Loader {
	return &Loader{
		base:   Default(),
		getenv: os.LookupEnv,
	}
}

// WithConfig replaces the base configuration.
func (l *Loader) WithConfig(c Config) *Loader {
	l.base = c
	if l.base.Colours == nil {
		l.base.Colours = map[string]string{}
	}
	return l
}

// WithFile sets the YAML file to read. An empty path means the default
// location, which is allowed to be missing. An explicit path must exist.
func (l *Loader) WithFile(path string) *Loader {
	l.path = path
	l.explicit = path != ""
	return l
}

// WithEnv enables environment variable overrides. SWATCH_CONFIG, when set,
// also names the config file unless WithFile was given a path.
func (l *Loader) WithEnv() *Loader {
	l.useEnv = true
	return l
}

// Load resolves and validates the configuration.
func (l *Loader) Load() (Config, error) {
	cfg := l.base
	cfg.Colours = make(map[string]string, len(l.base.Colours))
	for k, v := range l.base.Colours {
		cfg.Colours[k] = v
	}

	path, explicit := l.path, l.explicit
	if !explicit && l.useEnv {
		if p, ok := l.getenv(EnvConfig); ok && p != "" {
			path, explicit = p, true
		}
	}
	if path == "" {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		fc, found, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		if !found && explicit {
			return Config{}, fmt.Errorf("config file not found: %s", path)
		}
		if found {
			fc.applyTo(&cfg)
		}
	}

	if l.useEnv {
		l.applyEnv(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (l *Loader) applyEnv(cfg *Config) {
	if v, ok := l.getenv(EnvPalette); ok && v != "" {
		cfg.Palette = v
	}
	if v, ok := l.getenv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	// NO_COLOR disables colour whenever it is present, regardless of value.
	if _, ok := l.getenv(EnvNoColor); ok {
		cfg.NoColour = true
	}
	if v, ok := l.getenv(EnvNoColour); ok && parseBool(v) {
		cfg.NoColour = true
	}
}

// parseBool accepts the values strconv.ParseBool does; anything else is false.
func parseBool(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}

func sortedKeys(m map[string]string) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
