// Package cli provides the command-line interface for swatch.
package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/completion"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/palette"
	"github.com/jmylchreest/swatch/internal/version"
)

// Completion parameter identifiers.
const (
	paramColour  = "colour"
	paramFg      = "fg"
	paramBg      = "bg"
	paramPalette = "palette"
	paramPattern = "pattern"
	paramSuggest = "suggest"
)

// app holds the state shared by all commands of one root command tree.
type app struct {
	root     *cobra.Command
	logger   hclog.Logger
	registry *completion.Registry

	// Global flags.
	verbose    bool
	configPath string
	paletteArg string
	noColour   bool

	mu     sync.Mutex
	cfg    config.Config
	loaded bool
}

// NewRootCmd builds the swatch command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	a.root = &cobra.Command{
		Use:   "swatch",
		Short: "Look up, preview and complete colour names",
		Long: `Swatch looks up named colours from the X11, web and ANSI palettes,
previews them in the terminal, and renders text in them.

Every command parameter that takes a colour has shell completion for colour
names. Install completions with "swatch completion <shell>", then press Tab
after --fg, --bg or a colour argument.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.preRun,
	}
	a.root.SetVersionTemplate(version.String() + "\n")

	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: stderrProxy{a.root},
		Level:  hclog.Warn,
	})
	a.registry = completion.NewRegistry(a.logger)

	// Global flags
	flags := a.root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.StringVar(&a.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/swatch/config.yaml)")
	flags.StringVarP(&a.paletteArg, "palette", "p", "", "palette for lookups and listing (x11, web, ansi)")
	flags.BoolVar(&a.noColour, "no-colour", false, "disable colour output")

	a.registerCompleters()

	a.root.AddCommand(a.newShowCmd())
	a.root.AddCommand(a.newTextCmd())
	a.root.AddCommand(a.newListCmd())
	a.root.AddCommand(a.newSuggestCmd())
	a.root.AddCommand(newVersionCmd())

	a.bindCompleters()

	return a.root
}

// registerCompleters populates the completion registry. Colour parameters
// all share the colour-name completer.
func (a *app) registerCompleters() {
	a.registry.Register(paramColour, a.colourCompleter)
	a.registry.Register(paramFg, a.colourCompleter)
	a.registry.Register(paramBg, a.colourCompleter)
	a.registry.Register(paramPattern, a.paletteCompleter)
	a.registry.Register(paramPalette, completion.Static(palette.Available...))
	a.registry.Register(paramSuggest, a.suggestCompleter)
}

// bindCompleters attaches registered completers to the commands' flags and
// positional arguments.
func (a *app) bindCompleters() {
	must := func(err error) {
		if err != nil {
			// Only reachable through a programming error in the command tree.
			panic(err)
		}
	}

	must(a.registry.BindFlag(a.root, paramPalette))
	for _, cmd := range a.root.Commands() {
		switch cmd.Name() {
		case "show":
			must(a.registry.BindArgs(cmd, paramColour))
		case "text":
			must(a.registry.BindFlag(cmd, paramFg))
			must(a.registry.BindFlag(cmd, paramBg))
		case "list":
			must(a.registry.BindArgs(cmd, paramPattern))
		case "suggest":
			must(a.registry.BindArgs(cmd, paramSuggest))
		}
	}
}

// preRun loads configuration and applies global flags before any command runs.
func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		// Completion requests must never fail because of configuration.
		if cmd.Name() == cobra.ShellCompRequestCmd || cmd.Name() == cobra.ShellCompNoDescRequestCmd {
			a.logger.Warn("using default configuration", "error", err)
			a.setConfig(config.Default())
			return nil
		}
		return err
	}
	a.setConfig(cfg)

	if a.verbose {
		a.logger.SetLevel(hclog.Debug)
	}
	colour.DisableColourOutput = cfg.NoColour
	a.logger.Debug("configuration loaded", "palette", cfg.Palette, "custom_colours", len(cfg.Colours))
	return nil
}

// loadConfig resolves configuration from file, environment and flags.
func (a *app) loadConfig() (config.Config, error) {
	cfg, err := config.NewLoader().WithFile(a.configPath).WithEnv().Load()
	if err != nil {
		return config.Config{}, err
	}

	if a.paletteArg != "" {
		if _, err := palette.ByName(a.paletteArg); err != nil {
			return config.Config{}, fmt.Errorf("invalid --palette: %w", err)
		}
		cfg.Palette = a.paletteArg
	}
	if a.noColour {
		cfg.NoColour = true
	}

	a.logger.SetLevel(cfg.Level())
	return cfg, nil
}

func (a *app) setConfig(cfg config.Config) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cfg, a.loaded = cfg, true
}

// config returns the loaded configuration, falling back to defaults when
// no command has loaded it yet. Safe for concurrent use by completers.
func (a *app) config() config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.loaded {
		cfg, err := a.loadConfig()
		if err != nil {
			a.logger.Warn("using default configuration", "error", err)
			cfg = config.Default()
		}
		a.cfg, a.loaded = cfg, true
	}
	return a.cfg
}

// stderrProxy writes to the command's current error stream, so loggers
// created before SetErr still follow it.
type stderrProxy struct {
	cmd *cobra.Command
}

func (p stderrProxy) Write(b []byte) (int, error) {
	return p.cmd.ErrOrStderr().Write(b)
}

var _ io.Writer = stderrProxy{}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
