package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg"
)

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Expand a single commutator or conjugate",
}

var expandCommutatorCmd = &cobra.Command{
	Use:   "commutator <[A, B]>",
	Short: "Expand [A, B] into A B A' B'",
	Long: `Expand exactly one commutator.

Examples:
  cubealg expand commutator "[D, R U R']"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExpand(cmd, args, cubealg.ExpandCommutator)
	},
}

var expandConjugateCmd = &cobra.Command{
	Use:   "conjugate <[A: B]>",
	Short: "Expand [A: B] into A B A'",
	Long: `Expand exactly one conjugate.

Examples:
  cubealg expand conjugate "[R' U': R' F R F']"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExpand(cmd, args, cubealg.ExpandConjugate)
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
	expandCmd.AddCommand(expandCommutatorCmd)
	expandCmd.AddCommand(expandConjugateCmd)
}

func runExpand(cmd *cobra.Command, args []string, expand func(string) (string, error)) error {
	result, err := expand(exprFromArgs(args))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
