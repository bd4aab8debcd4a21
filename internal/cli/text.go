package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func (a *app) newTextCmd() *cobra.Command {
	var (
		fg, bg              colourValue
		bold, italic, under bool
		padding             int
	)

	cmd := &cobra.Command{
		Use:   "text [flags] <text>...",
		Short: "Write text in colour",
		Long: `Write text using a foreground and background colour.

Colours can be names from any palette or hex values, and --fg and --bg
complete colour names when shell completion is installed.

Examples:
  # Red text
  swatch text --fg Red "something went wrong"

  # White on a custom background with padding
  swatch text --fg white --bg '#1e66f5' --padding 1 deploy complete

  # Bold, with colours from the web palette
  swatch text -p web --fg rebeccapurple --bold hello`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer := lipgloss.NewRenderer(cmd.OutOrStdout())
			style := renderer.NewStyle().
				Bold(bold).
				Italic(italic).
				Underline(under).
				Padding(0, padding)

			if fg.IsSet() {
				res, err := a.resolveColour(fg.String())
				if err != nil {
					return fmt.Errorf("invalid --fg: %w", err)
				}
				style = style.Foreground(lipgloss.Color(res.Hex))
				a.logger.Debug("foreground", "name", res.Name, "hex", res.Hex)
			}
			if bg.IsSet() {
				res, err := a.resolveColour(bg.String())
				if err != nil {
					return fmt.Errorf("invalid --bg: %w", err)
				}
				style = style.Background(lipgloss.Color(res.Hex))
				a.logger.Debug("background", "name", res.Name, "hex", res.Hex)
			}

			text := strings.Join(args, " ")
			if a.config().NoColour {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.Render(text))
			return nil
		},
	}

	cmd.Flags().Var(&fg, paramFg, "foreground colour (name or hex)")
	cmd.Flags().Var(&bg, paramBg, "background colour (name or hex)")
	cmd.Flags().BoolVarP(&bold, "bold", "b", false, "bold text")
	cmd.Flags().BoolVar(&italic, "italic", false, "italic text")
	cmd.Flags().BoolVar(&under, "underline", false, "underlined text")
	cmd.Flags().IntVar(&padding, "padding", 0, "horizontal padding in cells")
	return cmd
}
