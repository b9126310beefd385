package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubealg"
	"github.com/SeamusWaldron/cubealg/internal/notation"
)

var (
	simplifyCount    bool
	simplifyDescribe bool
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [expression]",
	Short: "Expand an expression into a flat move sequence",
	Long: `Expand commutators and conjugates into a single simple sequence.

With no arguments, expressions are read from stdin one per line.

Examples:
  cubealg simplify "[[D, R U R'], F]"
  cubealg simplify "[R' U': R' F R F']" --count
  cubealg simplify "[F: [R, U]]" --describe
  cat algs.txt | cubealg simplify`,
	RunE: runSimplify,
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
	simplifyCmd.Flags().BoolVarP(&simplifyCount, "count", "c", false, "Print the move count after the sequence")
	simplifyCmd.Flags().BoolVarP(&simplifyDescribe, "describe", "d", false, "Print plain-language instructions")
}

func runSimplify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) > 0 {
		return simplifyOne(out, exprFromArgs(args))
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	line := 0
	for scanner.Scan() {
		line++
		expr := strings.TrimSpace(scanner.Text())
		if expr == "" || strings.HasPrefix(expr, "#") {
			continue
		}
		if err := simplifyOne(out, expr); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func simplifyOne(out io.Writer, expr string) error {
	result, err := cubealg.Simplify(expr, algOptions()...)
	if err != nil {
		logger.Debug("simplify failed", zap.String("expression", expr), zap.Error(err))
		return err
	}

	if simplifyCount {
		fmt.Fprintf(out, "%s (%d moves)\n", result, len(strings.Fields(result)))
	} else {
		fmt.Fprintln(out, result)
	}

	if simplifyDescribe && result != "" {
		seq, err := cubealg.ParseSequence(result)
		if err != nil {
			return err
		}
		for i, step := range notation.DescribeSequence(seq) {
			fmt.Fprintf(out, "  %2d. %s\n", i+1, step)
		}
	}

	return nil
}
