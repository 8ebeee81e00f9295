package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/reprogrammability/tutorsite/internal/calendar"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Export the tutorial or one session as an iCalendar file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		b, err := loadBundle(cfg)
		if err != nil {
			return err
		}
		defaults, err := cfg.Calendar.Defaults()
		if err != nil {
			return err
		}

		order, _ := cmd.Flags().GetInt("session")
		var event calendar.Event
		if order == 0 {
			event = calendar.TutorialEvent(&b.Tutorial, defaults)
		} else {
			found := false
			for _, s := range b.Program.Sessions {
				if s.Order == order {
					event = calendar.SessionEvent(&b.Tutorial, s, defaults)
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("no session with order %d", order)
			}
		}

		data := calendar.Render(time.Now(), event)
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Calendar written to %s\n", out)
		return nil
	},
}

func init() {
	calendarCmd.Flags().Int("session", 0, "session order to export (0 exports the whole tutorial)")
	calendarCmd.Flags().String("out", "", "output .ics file (defaults to stdout)")
	rootCmd.AddCommand(calendarCmd)
}
