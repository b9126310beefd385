// Package cli implements the command-line interface for cubealg.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubealg"
	"github.com/SeamusWaldron/cubealg/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath   string
	verbose  bool
	maxDepth int
	maxMoves int
	cancel   bool

	// Resolved by PersistentPreRunE
	settings config.Config
	logger   = zap.NewNop()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubealg",
	Short: "Expand commutator and conjugate notation",
	Long: `cubealg - expand twisty-puzzle algorithm notation into flat move sequences.

Understands simple sequences ("R U R' U'"), commutators ("[A, B]" = A B A' B')
and conjugates ("[A: B]" = A B A'), nested to any depth.

Settings may also come from the environment: CUBEALG_DB, CUBEALG_MAX_DEPTH,
CUBEALG_MAX_MOVES, CUBEALG_CANCEL and CUBEALG_VERBOSE. Flags take precedence.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Algorithm library path (default: ~/.cubealg/cubealg.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", cubealg.DefaultMaxDepth, "Maximum bracket nesting depth")
	rootCmd.PersistentFlags().IntVar(&maxMoves, "max-moves", cubealg.DefaultMaxMoves, "Maximum number of moves in an expansion")
	rootCmd.PersistentFlags().BoolVar(&cancel, "cancel", false, "Merge adjacent same-face moves in results")
}

// loadSettings reads the environment and lets explicit flags override it.
func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = dbPath
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("max-depth") {
		if maxDepth < 1 {
			return fmt.Errorf("--max-depth must be positive, got %d", maxDepth)
		}
		cfg.MaxDepth = maxDepth
	}
	if flags.Changed("max-moves") {
		if maxMoves < 1 {
			return fmt.Errorf("--max-moves must be positive, got %d", maxMoves)
		}
		cfg.MaxMoves = maxMoves
	}
	if flags.Changed("cancel") {
		cfg.Cancel = cancel
	}

	l, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}

	settings = cfg
	logger = l
	logger.Debug("settings loaded",
		zap.String("command", cmd.Name()),
		zap.Int("max_depth", cfg.MaxDepth),
		zap.Int("max_moves", cfg.MaxMoves),
		zap.Bool("cancel", cfg.Cancel))
	return nil
}

// algOptions returns library options for the current settings.
func algOptions() []cubealg.Option {
	return append(settings.Options(), cubealg.WithLogger(logger))
}

// exprFromArgs joins arguments so unquoted moves work: cubealg simplify R U R'
func exprFromArgs(args []string) string {
	return strings.Join(args, " ")
}
