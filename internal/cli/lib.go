package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubealg"
	"github.com/SeamusWaldron/cubealg/internal/storage"
)

var (
	libAddTag  string
	libNotes   string
	libListTag string
)

var libCmd = &cobra.Command{
	Use:   "lib",
	Short: "Manage the saved algorithm library",
	Long: `Save named expressions and recall their expansions.

Examples:
  cubealg lib add sexy "[R, U]" --tag trigger
  cubealg lib list --tag pll
  cubealg lib show aa-perm
  cubealg lib seed`,
}

var libAddCmd = &cobra.Command{
	Use:   "add <name> <expression>",
	Short: "Save an expression under a name",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runLibAdd,
}

var libUpdateCmd = &cobra.Command{
	Use:   "update <name> <expression>",
	Short: "Replace the expression saved under a name",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runLibUpdate,
}

var libListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved algorithms",
	Args:  cobra.NoArgs,
	RunE:  runLibList,
}

var libShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show an algorithm with its expansion and inverse",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibShow,
}

var libRemoveCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"remove", "delete"},
	Short:   "Remove a saved algorithm",
	Args:    cobra.ExactArgs(1),
	RunE:    runLibRemove,
}

var libSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Save the built-in algorithms that are not in the library yet",
	Args:  cobra.NoArgs,
	RunE:  runLibSeed,
}

func init() {
	rootCmd.AddCommand(libCmd)
	libCmd.AddCommand(libAddCmd, libUpdateCmd, libListCmd, libShowCmd, libRemoveCmd, libSeedCmd)

	libAddCmd.Flags().StringVar(&libAddTag, "tag", "", "Tag for grouping (e.g. oll, pll, trigger)")
	libAddCmd.Flags().StringVar(&libNotes, "notes", "", "Free-form notes")
	libListCmd.Flags().StringVar(&libListTag, "tag", "", "Only list algorithms with this tag")
}

// openDB opens the library and applies pending migrations.
func openDB() (*storage.DB, error) {
	path, err := settings.ResolveDBPath()
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Debug("library opened", zap.String("path", path))
	return db, nil
}

func withRepo(fn func(*storage.AlgorithmRepository) error) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(storage.NewAlgorithmRepository(db))
}

func runLibAdd(cmd *cobra.Command, args []string) error {
	name, expr := args[0], exprFromArgs(args[1:])

	expansion, err := cubealg.Simplify(expr, algOptions()...)
	if err != nil {
		return fmt.Errorf("invalid expression: %w", err)
	}

	return withRepo(func(repo *storage.AlgorithmRepository) error {
		if _, err := repo.Create(name, expr, expansion, len(strings.Fields(expansion)), libAddTag, libNotes); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s: %s\n", name, expansion)
		return nil
	})
}

func runLibUpdate(cmd *cobra.Command, args []string) error {
	name, expr := args[0], exprFromArgs(args[1:])

	expansion, err := cubealg.Simplify(expr, algOptions()...)
	if err != nil {
		return fmt.Errorf("invalid expression: %w", err)
	}

	return withRepo(func(repo *storage.AlgorithmRepository) error {
		if err := repo.Update(name, expr, expansion, len(strings.Fields(expansion))); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", name, expansion)
		return nil
	})
}

func runLibList(cmd *cobra.Command, args []string) error {
	return withRepo(func(repo *storage.AlgorithmRepository) error {
		algs, err := repo.List(libListTag)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(algs) == 0 {
			fmt.Fprintln(out, "No algorithms saved. Add one with: cubealg lib add <name> <expression>")
			return nil
		}

		for _, a := range algs {
			tag := ""
			if a.Tag != "" {
				tag = " [" + a.Tag + "]"
			}
			fmt.Fprintf(out, "%-16s %-28s %3d moves%s\n", a.Name, a.Expression, a.MoveCount, tag)
		}
		return nil
	})
}

func runLibShow(cmd *cobra.Command, args []string) error {
	return withRepo(func(repo *storage.AlgorithmRepository) error {
		a, err := repo.Get(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Name:       %s\n", a.Name)
		fmt.Fprintf(out, "Expression: %s\n", a.Expression)
		fmt.Fprintf(out, "Expansion:  %s\n", a.Expansion)
		fmt.Fprintf(out, "Inverse:    %s\n", cubealg.Invert(a.Expansion))
		fmt.Fprintf(out, "Moves:      %d\n", a.MoveCount)
		if a.Tag != "" {
			fmt.Fprintf(out, "Tag:        %s\n", a.Tag)
		}
		if a.Notes != nil {
			fmt.Fprintf(out, "Notes:      %s\n", *a.Notes)
		}
		return nil
	})
}

func runLibRemove(cmd *cobra.Command, args []string) error {
	return withRepo(func(repo *storage.AlgorithmRepository) error {
		if err := repo.Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
		return nil
	})
}

func runLibSeed(cmd *cobra.Command, args []string) error {
	names := make([]string, 0, len(cubealg.Algorithms))
	for name := range cubealg.Algorithms {
		names = append(names, name)
	}
	sort.Strings(names)

	return withRepo(func(repo *storage.AlgorithmRepository) error {
		added := 0
		for _, name := range names {
			expr := cubealg.Algorithms[name]
			expansion, err := cubealg.Simplify(expr, algOptions()...)
			if err != nil {
				return fmt.Errorf("built-in %s: %w", name, err)
			}

			_, err = repo.Create(name, expr, expansion, len(strings.Fields(expansion)), "builtin", "")
			if errors.Is(err, storage.ErrExists) {
				continue
			}
			if err != nil {
				return err
			}
			added++
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d of %d built-in algorithms\n", added, len(names))
		return nil
	})
}
