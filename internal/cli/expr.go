package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lattice-systems/gridmorph/graphexpr"
)

// newExprCmd creates the expr command, which parses an edge-run
// expression and echoes it in normalized form.
func newExprCmd() *cobra.Command {
	var check string

	cmd := &cobra.Command{
		Use:   "expr [expression]",
		Short: "Parse and normalize an edge-run expression",
		Long: `Parse an edge-run expression, report its vertex and edge counts, and
echo it back in normalized form (one run per edge, sorted).

Examples:
  gridmorph expr "0-1-2-0, 1-3"
  gridmorph expr --check "2-0;0-1"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 1 {
				check = args[0]
			}
			if check == "" {
				return errors.New("no expression given (use a positional expression or --check)")
			}

			g, err := graphexpr.Parse(check)
			if err != nil {
				return err
			}

			fmt.Println(StyleHighlight.Render(graphexpr.Format(g)))
			printKeyValue("vertices", strconv.Itoa(g.N()))
			printKeyValue("edges", strconv.Itoa(g.M()))
			return nil
		},
	}

	cmd.Flags().StringVar(&check, "check", "", "expression to check (alternative to the positional argument)")

	return cmd
}
