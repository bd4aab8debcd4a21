package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

var (
	black = colour.RGB{}
	white = colour.RGB{R: 255, G: 255, B: 255}
)

// colourDetails is the JSON form of the show command's output.
type colourDetails struct {
	resolvedColour
	HSL             [3]float64 `json:"hsl"`
	Luminance       float64    `json:"luminance"`
	ContrastOnBlack float64    `json:"contrast_on_black"`
	ContrastOnWhite float64    `json:"contrast_on_white"`
}

func (a *app) newShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <colour>...",
		Short: "Show details for one or more colours",
		Long: `Show the hex, RGB and HSL values of colours, with their luminance and
WCAG contrast ratio against black and white.

Colours can be given by name from any palette or as hex values. Hex values
are labelled with the closest named colour.

Examples:
  # Show an X11 colour
  swatch show CornflowerBlue

  # Names are case and space insensitive
  swatch show "dark slate gray"

  # Show a hex colour and its nearest name
  swatch show '#ff6040'

  # Output as JSON
  swatch show --format json Red Navy`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			details := make([]colourDetails, 0, len(args))
			for _, arg := range args {
				res, err := a.resolveColour(arg)
				if err != nil {
					return err
				}
				details = append(details, describe(res))
			}

			switch format {
			case "text":
				for i, d := range details {
					if i > 0 {
						fmt.Fprintln(cmd.OutOrStdout())
					}
					writeDetails(cmd.OutOrStdout(), d)
				}
				return nil
			case "json":
				return writeJSON(cmd.OutOrStdout(), details)
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	return cmd
}

func describe(res resolvedColour) colourDetails {
	h, s, l := res.RGB.HSL()
	return colourDetails{
		resolvedColour:  res,
		HSL:             [3]float64{round(h, 1), round(s, 3), round(l, 3)},
		Luminance:       round(colour.Luminance(res.RGB), 4),
		ContrastOnBlack: round(colour.ContrastRatio(res.RGB, black), 2),
		ContrastOnWhite: round(colour.ContrastRatio(res.RGB, white), 2),
	}
}

func writeDetails(w io.Writer, d colourDetails) {
	label := d.Name
	if colour.IsHex(d.Input) {
		label = fmt.Sprintf("%s (closest: %s)", d.Hex, d.Name)
	}

	if colour.SupportsANSIColours() {
		fmt.Fprintf(w, "%s  %s\n", colour.ColourPreviewWithText(d.RGB, d.Hex, 9), label)
	} else {
		fmt.Fprintln(w, label)
	}
	if d.Palette != "" {
		fmt.Fprintf(w, "  %-10s %s\n", "palette", d.Palette)
	}
	fmt.Fprintf(w, "  %-10s %s\n", "hex", d.Hex)
	fmt.Fprintf(w, "  %-10s %s\n", "rgb", d.RGB.String())
	fmt.Fprintf(w, "  %-10s hsl(%.0f, %.0f%%, %.0f%%)\n", "hsl", d.HSL[0], d.HSL[1]*100, d.HSL[2]*100)
	fmt.Fprintf(w, "  %-10s %.4f\n", "luminance", d.Luminance)
	fmt.Fprintf(w, "  %-10s %.2f:1 on black, %.2f:1 on white\n", "contrast", d.ContrastOnBlack, d.ContrastOnWhite)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
