package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static tutorial website",
	Long: `Generates the rebuilt site from the YAML documents in content_dir. With
--legacy the filename-routed legacy site is generated from legacy_data
instead; a missing legacy document still produces the page shells.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().Bool("legacy", false, "build the legacy site from the aggregate JSON document")
	buildCmd.Flags().String("output", "", "override the output directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	legacy, _ := cmd.Flags().GetBool("legacy")
	outputDir, _ := cmd.Flags().GetString("output")

	if legacy {
		if outputDir == "" {
			outputDir = cfg.LegacyOutputDir
		}
		g, err := newLegacyGenerator(cfg, outputDir)
		if err != nil {
			return err
		}
		n, err := g.Generate()
		if err != nil {
			return fmt.Errorf("generating legacy site: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Legacy site generated: %s (%d pages)\n", outputDir, n)
		return nil
	}

	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	g, err := newGenerator(cfg, outputDir)
	if err != nil {
		return err
	}
	n, err := g.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Static site generated: %s (%d pages)\n", outputDir, n)
	return nil
}
