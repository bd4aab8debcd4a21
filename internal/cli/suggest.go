package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/completion"
)

func (a *app) newSuggestCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "suggest <parameter> [word]",
		Short: "Show the completions offered for a parameter",
		Long: `Run the completer registered for a parameter and print its candidates,
exactly as Tab completion would offer them.

Parameters: colour (positional colours), fg, bg, palette, pattern.

Examples:
  # What does --fg offer for "Red"?
  swatch suggest fg Red

  # Every colour the completer knows
  swatch suggest colour

  # Glob and fuzzy matching
  swatch suggest colour '*violet*'
  swatch suggest colour cornflwr`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			param := args[0]
			if _, ok := a.registry.Get(param); !ok {
				return fmt.Errorf("no completer for %q (available: %s)", param, strings.Join(a.suggestableParams(), ", "))
			}

			word := ""
			if len(args) == 2 {
				word = args[1]
			}

			candidates := a.registry.Complete(param, completion.Request{
				Command: cmd.CommandPath(),
				Word:    word,
				Bound:   map[string]string{},
			})

			out := cmd.OutOrStdout()
			switch format {
			case "table":
				table := NewTable([]string{"VALUE", "DISPLAY", "TOOLTIP"})
				table.SetColumnMaxWidth(2, 48)
				for _, c := range candidates {
					table.AddRow([]string{c.Value, c.DisplayText(), c.Tooltip})
				}
				fmt.Fprint(out, table.Render())
			case "values":
				for _, c := range candidates {
					fmt.Fprintln(out, c.Value)
				}
			default:
				return fmt.Errorf("unsupported format: %s (supported: table, values)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, values)")
	return cmd
}

// suggestableParams lists the parameters suggest can query.
func (a *app) suggestableParams() []string {
	return lo.Without(a.registry.Params(), paramSuggest)
}

// suggestCompleter completes the suggest command's own arguments: first the
// parameter name, then the word using that parameter's completer.
func (a *app) suggestCompleter() completion.Completer {
	return completion.CompleterFunc(func(req completion.Request) []completion.Candidate {
		args := strings.Fields(req.Bound[completion.ArgsKey])
		switch len(args) {
		case 0:
			return completion.Static(a.suggestableParams()...)().Complete(req)
		case 1:
			if args[0] == paramSuggest {
				return nil
			}
			return a.registry.Complete(args[0], req)
		default:
			return nil
		}
	})
}
