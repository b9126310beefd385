package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg/internal/storage"
)

var (
	exportFormat string
	exportOutput string
	exportTag    string
)

var libExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved algorithms",
	Long: `Export the library in text or JSON format.

Examples:
  cubealg lib export
  cubealg lib export --format json -o algs.json
  cubealg lib export --tag pll --format txt`,
	Args: cobra.NoArgs,
	RunE: runLibExport,
}

func init() {
	libCmd.AddCommand(libExportCmd)
	libExportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	libExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	libExportCmd.Flags().StringVar(&exportTag, "tag", "", "Only export algorithms with this tag")
}

type algorithmJSON struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
	Expansion  string `json:"expansion"`
	MoveCount  int    `json:"move_count"`
	Tag        string `json:"tag,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

func runLibExport(cmd *cobra.Command, args []string) error {
	var algs []storage.Algorithm
	err := withRepo(func(repo *storage.AlgorithmRepository) error {
		var err error
		algs, err = repo.List(exportTag)
		return err
	})
	if err != nil {
		return err
	}

	// Format output
	var output string

	switch strings.ToLower(exportFormat) {
	case "txt":
		lines := make([]string, 0, len(algs))
		for _, a := range algs {
			lines = append(lines, a.Name+"\t"+a.Expression+"\t"+a.Expansion)
		}
		output = strings.Join(lines, "\n")

	case "json":
		items := make([]algorithmJSON, 0, len(algs))
		for _, a := range algs {
			item := algorithmJSON{
				Name:       a.Name,
				Expression: a.Expression,
				Expansion:  a.Expansion,
				MoveCount:  a.MoveCount,
				Tag:        a.Tag,
			}
			if a.Notes != nil {
				item.Notes = *a.Notes
			}
			items = append(items, item)
		}

		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)

	default:
		return fmt.Errorf("unknown format: %s (use txt or json)", exportFormat)
	}

	// Write output
	if exportOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d algorithms to %s\n", len(algs), exportOutput)
	return nil
}
