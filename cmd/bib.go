package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reprogrammability/tutorsite/internal/bibtex"
	"github.com/reprogrammability/tutorsite/internal/content"
)

var bibCmd = &cobra.Command{
	Use:   "bib",
	Short: "Manage the reading list from BibTeX",
}

var bibImportCmd = &cobra.Command{
	Use:   "import file.bib...",
	Short: "Import BibTeX entries into reading.yaml",
	Long: `Parses the given BibTeX files and appends their entries to one section of
the reading list. Entries already present (same title and year) are
skipped. Each imported item keeps its original BibTeX text.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBibImport,
}

func init() {
	bibImportCmd.Flags().String("section", "essential", "reading section: "+strings.Join(bibtex.Sections, ", "))
	bibImportCmd.Flags().String("out", "", "reading list to update (defaults to <content_dir>/reading.yaml)")
	bibImportCmd.Flags().Bool("dry-run", false, "print the resulting YAML instead of writing it")
	bibCmd.AddCommand(bibImportCmd)
	rootCmd.AddCommand(bibCmd)
}

func runBibImport(cmd *cobra.Command, args []string) error {
	section, _ := cmd.Flags().GetString("section")
	outPath, _ := cmd.Flags().GetString("out")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if outPath == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		outPath = filepath.Join(cfg.ContentDir, "reading.yaml")
	}

	var items []content.ReadingItem
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		items = append(items, bibtex.Items(bibtex.Parse(string(data)))...)
	}
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No convertible entries found.")
		return nil
	}

	var reading content.Reading
	data, err := os.ReadFile(outPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &reading); err != nil {
			return fmt.Errorf("parsing %s: %w", outPath, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return fmt.Errorf("reading %s: %w", outPath, err)
	}

	added, err := bibtex.AddToReading(&reading, section, items)
	if err != nil {
		return err
	}
	encoded, err := bibtex.MarshalReading(&reading)
	if err != nil {
		return err
	}

	if dryRun {
		_, err := cmd.OutOrStdout().Write(encoded)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d new items in %s, %d skipped as duplicates)\n",
		outPath, added, section, len(items)-added)
	return nil
}
