package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg"
)

var invertStrict bool

var invertCmd = &cobra.Command{
	Use:   "invert <sequence>",
	Short: "Print the inverse of a simple sequence",
	Long: `Reverse a simple sequence and invert every move.

By default unknown tokens are inverted like ordinary turns ("Q" becomes "Q'").
Use --strict to reject them. Bracket notation is expanded first in strict mode.

Examples:
  cubealg invert "R U R'"
  cubealg invert --strict "[R, U]"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInvert,
}

func init() {
	rootCmd.AddCommand(invertCmd)
	invertCmd.Flags().BoolVar(&invertStrict, "strict", false, "Reject tokens outside the move alphabet")
}

func runInvert(cmd *cobra.Command, args []string) error {
	expr := exprFromArgs(args)

	if !invertStrict {
		fmt.Fprintln(cmd.OutOrStdout(), cubealg.Invert(expr))
		return nil
	}

	flat, err := cubealg.Simplify(expr, algOptions()...)
	if err != nil {
		return err
	}
	seq, err := cubealg.ParseSequence(flat)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), seq.Inverse().String())
	return nil
}
