package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg"
)

var traceCmd = &cobra.Command{
	Use:   "trace <expression>",
	Short: "Show each rewriting pass of an expression",
	Long: `Rewrite the innermost brackets step by step and print every pass.

Each pass expands the leftmost innermost commutator, then the leftmost
innermost conjugate. The last line is the flat result.

Examples:
  cubealg trace "[[D, R U R'], F]"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	expr := exprFromArgs(args)
	steps, err := cubealg.SimplifyTrace(expr, algOptions()...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "   %s\n", expr)
	for i, step := range steps {
		fmt.Fprintf(out, "%d. %s\n", i+1, step)
	}
	return nil
}
