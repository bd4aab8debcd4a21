package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatch/internal/palette"
)

// withConfigDir points the default config location at a temp directory.
func withConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig := osUserConfigDir
	osUserConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { osUserConfigDir = orig })
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func fakeEnv(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	withConfigDir(t)

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Palette != palette.X11 {
		t.Errorf("Palette = %q, want x11", cfg.Palette)
	}
	if cfg.Level() != hclog.Warn {
		t.Errorf("Level() = %v, want warn", cfg.Level())
	}
	if cfg.NoColour {
		t.Error("NoColour should default to false")
	}
}

func TestLoadDefaultFile(t *testing.T) {
	dir := withConfigDir(t)
	writeConfig(t, filepath.Join(dir, "swatch", "config.yaml"), `
palette: web
log_level: debug
no_colour: true
colours:
  brand: "#ff5f87"
  ink: "#123"
`)

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Palette != palette.Web {
		t.Errorf("Palette = %q, want web", cfg.Palette)
	}
	if cfg.Level() != hclog.Debug {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
	if !cfg.NoColour {
		t.Error("NoColour = false, want true")
	}
	if cfg.Colours["brand"] != "#ff5f87" {
		t.Errorf("Colours[brand] = %q", cfg.Colours["brand"])
	}
}

func TestLoadFilePartial(t *testing.T) {
	dir := withConfigDir(t)
	writeConfig(t, filepath.Join(dir, "swatch", "config.yaml"), "colours:\n  brand: \"#ff5f87\"\n")

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Palette != palette.X11 || cfg.LogLevel != "warn" {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	withConfigDir(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeConfig(t, path, "palette: ansi\n")

	cfg, err := NewLoader().WithFile(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Palette != palette.ANSI {
		t.Errorf("Palette = %q, want ansi", cfg.Palette)
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	withConfigDir(t)
	_, err := NewLoader().WithFile(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("Load() error = %v, want not found", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := withConfigDir(t)
	writeConfig(t, filepath.Join(dir, "swatch", "config.yaml"), "palette: [unterminated\n")

	if _, err := NewLoader().Load(); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := withConfigDir(t)
	writeConfig(t, filepath.Join(dir, "swatch", "config.yaml"), "palette: web\nlog_level: error\n")

	l := NewLoader().WithEnv()
	l.getenv = fakeEnv(map[string]string{
		EnvPalette:  "ansi",
		EnvLogLevel: "trace",
		EnvNoColor:  "",
	})

	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Palette != palette.ANSI {
		t.Errorf("Palette = %q, want env override ansi", cfg.Palette)
	}
	if cfg.Level() != hclog.Trace {
		t.Errorf("Level() = %v, want trace", cfg.Level())
	}
	if !cfg.NoColour {
		t.Error("NO_COLOR should disable colour even when empty")
	}
}

func TestLoadEnvConfigPath(t *testing.T) {
	withConfigDir(t)
	path := filepath.Join(t.TempDir(), "env.yaml")
	writeConfig(t, path, "palette: web\n")

	l := NewLoader().WithEnv()
	l.getenv = fakeEnv(map[string]string{EnvConfig: path})

	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Palette != palette.Web {
		t.Errorf("Palette = %q, want web from SWATCH_CONFIG file", cfg.Palette)
	}
}

func TestLoadEnvNoColour(t *testing.T) {
	withConfigDir(t)

	for value, want := range map[string]bool{"1": true, "true": true, "TRUE": true, " t ": true, "no": false, "0": false, "": false} {
		t.Run(value, func(t *testing.T) {
			l := NewLoader().WithEnv()
			l.getenv = fakeEnv(map[string]string{EnvNoColour: value})
			cfg, err := l.Load()
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if cfg.NoColour != want {
				t.Errorf("NoColour = %v, want %v", cfg.NoColour, want)
			}
		})
	}
}

func TestWithConfigDoesNotAlias(t *testing.T) {
	withConfigDir(t)
	base := Default()
	base.Colours["brand"] = "#ff5f87"

	cfg, err := NewLoader().WithConfig(base).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	cfg.Colours["other"] = "#000000"
	if _, ok := base.Colours["other"]; ok {
		t.Error("Load() should copy the base colour map")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "unknown palette", mutate: func(c *Config) { c.Palette = "pantone" }, wantErr: true},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "bad colour", mutate: func(c *Config) { c.Colours["brand"] = "pink" }, wantErr: true},
		{name: "empty colour name", mutate: func(c *Config) { c.Colours[" "] = "#fff" }, wantErr: true},
		{name: "good colour", mutate: func(c *Config) { c.Colours["brand"] = "#fff" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	cfg := Default()
	cfg.Palette = "pantone"
	if err := cfg.Validate(); !errors.Is(err, palette.ErrUnknownPalette) {
		t.Errorf("Validate() error = %v, want ErrUnknownPalette", err)
	}
}

func TestCustomPalette(t *testing.T) {
	cfg := Default()
	cfg.Colours = map[string]string{
		"zebra": "#000000",
		"brand": "#ff5f87",
		"bad":   "nope",
	}

	p := cfg.CustomPalette()
	if p.Name() != "custom" {
		t.Errorf("Name() = %q, want custom", p.Name())
	}

	got := p.Names()
	if len(got) != 2 || got[0] != "brand" || got[1] != "zebra" {
		t.Errorf("Names() = %v, want [brand zebra]", got)
	}
}
