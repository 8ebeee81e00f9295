package cmd

import (
	"github.com/spf13/cobra"

	"github.com/reprogrammability/tutorsite/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tutorsite",
	Short: "Static website generator for conference tutorials",
	Long: `tutorsite turns a set of YAML content documents (tutorial, program,
speakers, materials, reading) into a static tutorial website, and keeps
the legacy single-document site building alongside it. It also validates
content, checks external links, imports BibTeX and exports calendars.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
