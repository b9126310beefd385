package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show settings and library information",
	Long:  `Display the effective settings and the state of the algorithm library.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "cubealg status")
	fmt.Fprintln(out, "==============")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Max depth:    %d\n", settings.MaxDepth)
	fmt.Fprintf(out, "Max moves:    %d\n", settings.MaxMoves)
	fmt.Fprintf(out, "Cancellation: %t\n", settings.Cancel)
	fmt.Fprintln(out)

	path, err := settings.ResolveDBPath()
	if err != nil {
		return err
	}

	// Status must not create the library as a side effect.
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(out, "Database: %s (not created yet)\n", path)
		printStatusTips(out)
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to stat database: %w", err)
	}

	db, err := openDB()
	if err != nil {
		fmt.Fprintf(out, "Database: %s\n", path)
		fmt.Fprintf(out, "Database error: %v\n", err)
		return nil
	}
	defer db.Close()

	fmt.Fprintf(out, "Database: %s\n", db.Path())

	version, err := db.CurrentVersion()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Schema version: %d\n", version)

	count, err := storage.NewAlgorithmRepository(db).Count()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved algorithms: %d\n", count)

	if count == 0 {
		printStatusTips(out)
	}

	return nil
}

func printStatusTips(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Tips:")
	fmt.Fprintln(out, "  - Load the built-in algorithms with: cubealg lib seed")
	fmt.Fprintln(out, "  - Save your own with: cubealg lib add <name> <expression>")
}
