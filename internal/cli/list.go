package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/palette"
)

func (a *app) newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list [pattern]",
		Short: "List the colours in a palette",
		Long: `List the colours in the selected palette, optionally filtered.

The pattern is matched the same way shell completion matches colour names:
a case-insensitive prefix, a glob when it contains *, ? or [, and a fuzzy
match when nothing starts with the pattern. Custom colours from the config
file are listed after the palette's own.

Examples:
  # All X11 colours
  swatch list

  # Web colours ending in "blue"
  swatch list -p web '*blue'

  # Just the names, one per line
  swatch list --format names Dark`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.config()
			selected, err := palette.ByName(cfg.Palette)
			if err != nil {
				return err
			}
			p := palette.Merge(selected.Name(), selected, cfg.CustomPalette())

			pattern := ""
			if len(args) == 1 {
				pattern = args[0]
			}
			entries := p.Match(pattern)
			a.logger.Debug("listing palette", "palette", p.Name(), "pattern", pattern, "matches", len(entries))

			out := cmd.OutOrStdout()
			switch format {
			case "table":
				fmt.Fprint(out, paletteTable(entries).Render())
			case "names":
				for _, e := range entries {
					fmt.Fprintln(out, colour.ColourString(e.Colour, e.Name))
				}
			case "json":
				return writeJSON(out, paletteJSON{Palette: p.Name(), Count: len(entries), Colours: toColourJSON(entries)})
			default:
				return fmt.Errorf("unsupported format: %s (supported: table, names, json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, names, json)")
	return cmd
}

// paletteTable lays entries out with a swatch column when colour is on.
func paletteTable(entries []palette.Entry) *Table {
	withSwatch := colour.SupportsANSIColours()

	headers := []string{"NAME", "HEX", "RGB"}
	if withSwatch {
		headers = append([]string{""}, headers...)
	}

	table := NewTable(headers)
	for _, e := range entries {
		row := []string{e.Name, e.Hex(), strings.TrimPrefix(e.Colour.String(), "rgb")}
		if withSwatch {
			row = append([]string{colour.ColourPreview(e.Colour, 4)}, row...)
		}
		table.AddRow(row)
	}
	return table
}

// colourJSON represents a colour in JSON output format.
type colourJSON struct {
	Name string     `json:"name"`
	Hex  string     `json:"hex"`
	RGB  colour.RGB `json:"rgb"`
}

// paletteJSON represents the palette in JSON format.
type paletteJSON struct {
	Palette string       `json:"palette"`
	Count   int          `json:"count"`
	Colours []colourJSON `json:"colours"`
}

func toColourJSON(entries []palette.Entry) []colourJSON {
	out := make([]colourJSON, len(entries))
	for i, e := range entries {
		out[i] = colourJSON{Name: e.Name, Hex: e.Hex(), RGB: e.Colour}
	}
	return out
}
