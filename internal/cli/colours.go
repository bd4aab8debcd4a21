package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/completion"
	"github.com/jmylchreest/swatch/internal/palette"
)

// ColorCompleter is the completer factory for colour-name parameters.
// Each call returns an independent completer backed by a fresh X11 palette;
// all matching is done by the palette.
func ColorCompleter() completion.Completer {
	return palette.NewX11()
}

var _ completion.Factory = ColorCompleter

// colourCompleter is ColorCompleter extended with the user's custom colours.
func (a *app) colourCompleter() completion.Completer {
	custom := a.config().CustomPalette()
	if custom.Len() == 0 {
		return ColorCompleter()
	}
	return palette.Merge(palette.X11, palette.NewX11(), custom)
}

// paletteCompleter completes names from the selected palette. A --palette
// flag already on the command line takes precedence over configuration.
func (a *app) paletteCompleter() completion.Completer {
	return completion.CompleterFunc(func(req completion.Request) []completion.Candidate {
		name := a.config().Palette
		if bound, ok := req.Bound[paramPalette]; ok && bound != "" {
			name = bound
		}
		p, err := palette.ByName(name)
		if err != nil {
			a.logger.Debug("cannot complete from palette", "palette", name, "error", err)
			return nil
		}
		return palette.Merge(p.Name(), p, a.config().CustomPalette()).Complete(req)
	})
}

// errUnknownColour is returned when a colour name is in no palette.
var errUnknownColour = errors.New("unknown colour")

// resolvedColour is a colour argument after lookup.
type resolvedColour struct {
	Input   string     `json:"input"`
	Name    string     `json:"name"`
	Palette string     `json:"palette"`
	RGB     colour.RGB `json:"rgb"`
	Hex     string     `json:"hex"`
}

// lookupChain returns the palettes searched for colour names, in order:
// custom colours, the selected palette, then the remaining built-ins.
func (a *app) lookupChain() []*palette.Palette {
	cfg := a.config()
	chain := []*palette.Palette{cfg.CustomPalette()}

	if selected, err := palette.ByName(cfg.Palette); err == nil {
		chain = append(chain, selected)
	}
	for _, name := range palette.Available {
		if p, _ := palette.ByName(name); !lo.ContainsBy(chain, func(c *palette.Palette) bool { return c.Name() == p.Name() }) {
			chain = append(chain, p)
		}
	}
	return chain
}

// resolveColour turns a colour argument (name or hex) into a colour.
// Hex values are named after the closest colour in the selected palette.
func (a *app) resolveColour(input string) (resolvedColour, error) {
	chain := a.lookupChain()

	if colour.IsHex(input) {
		rgb, err := colour.ParseHex(input)
		if err != nil {
			return resolvedColour{}, err
		}
		res := resolvedColour{Input: input, RGB: rgb, Hex: rgb.Hex()}
		if closest, ok := chain[1].Closest(rgb); ok {
			res.Name = closest.Name
			res.Palette = chain[1].Name()
		}
		return res, nil
	}

	for _, p := range chain {
		if e, ok := p.Lookup(input); ok {
			a.logger.Trace("resolved colour", "input", input, "palette", p.Name(), "name", e.Name)
			return resolvedColour{Input: input, Name: e.Name, Palette: p.Name(), RGB: e.Colour, Hex: e.Hex()}, nil
		}
	}

	err := fmt.Errorf("%w: %q", errUnknownColour, input)
	if suggestions := chain[1].Match(input); len(suggestions) > 0 {
		names := lo.Map(lo.Slice(suggestions, 0, 3), func(e palette.Entry, _ int) string { return e.Name })
		err = fmt.Errorf("%w (did you mean %s?)", err, strings.Join(names, ", "))
	}
	return resolvedColour{}, err
}

// colourValue is a pflag.Value holding a colour argument. Resolution is
// deferred until the command runs, when the palette configuration is known.
type colourValue struct {
	raw string
}

var _ pflag.Value = (*colourValue)(nil)

func (v *colourValue) String() string { return v.raw }

func (v *colourValue) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("colour must not be empty")
	}
	if colour.IsHex(s) {
		if _, err := colour.ParseHex(s); err != nil {
			return err
		}
	}
	v.raw = s
	return nil
}

func (v *colourValue) Type() string { return "colour" }

// IsSet reports whether a value was given.
func (v *colourValue) IsSet() bool { return v.raw != "" }
