package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reprogrammability/tutorsite/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the content documents for missing or invalid fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		b, err := loadBundle(cfg)
		if err != nil {
			return err
		}

		r := validate.Bundle(b)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Tutorial:      %s\n", b.Tutorial.Title)
		fmt.Fprintf(out, "Conference:    %s\n", b.Tutorial.Conference)
		fmt.Fprintf(out, "Sessions:      %d\n", r.Stats.Sessions)
		fmt.Fprintf(out, "Speakers:      %d\n", r.Stats.Speakers)
		fmt.Fprintf(out, "Reading items: %d\n", r.Stats.ReadingItems)
		fmt.Fprintf(out, "Slides: %d  Videos: %d  Code: %d\n", r.Stats.Slides, r.Stats.Videos, r.Stats.Code)

		for _, w := range r.Warnings {
			fmt.Fprintf(out, "WARN: %s\n", w)
		}
		for _, e := range r.Errors {
			fmt.Fprintf(out, "FAIL: %v\n", e)
		}
		if !r.OK() {
			return fmt.Errorf("validation failed with %d errors", len(r.Errors))
		}
		fmt.Fprintln(out, "Content is valid.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
