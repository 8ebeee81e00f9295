package cmd

import (
	"github.com/spf13/cobra"

	"github.com/reprogrammability/tutorsite/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize tutorsite configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure tutorsite for your tutorial and writes the config file (tutorsite.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
