package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reprogrammability/tutorsite/internal/db"
	"github.com/reprogrammability/tutorsite/internal/linkcheck"
	"github.com/reprogrammability/tutorsite/internal/progress"
)

var linkcheckCmd = &cobra.Command{
	Use:   "linkcheck",
	Short: "Check the external links referenced by the content",
	Long: `Scans the content directory for http(s) URLs and checks each one. Links
verified ok within linkcheck.cache_ttl are skipped. Exits non-zero when a
link fails; access-controlled and rate-limited links are only warnings.`,
	RunE: runLinkcheck,
}

func init() {
	linkcheckCmd.Flags().Bool("no-cache", false, "check every link even if recently verified")
	rootCmd.AddCommand(linkcheckCmd)
}

func runLinkcheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	urls, files, err := linkcheck.Discover(cfg.ContentDir, cfg.LinkCheck.Include, cfg.LinkCheck.Exclude)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(out, "No URLs found to check.")
		return nil
	}
	fmt.Fprintf(out, "Checking %d unique URLs from %d files...\n", len(urls), files)

	timeout, _ := cfg.LinkCheck.TimeoutDuration()
	opts := linkcheck.DefaultOptions()
	opts.Concurrency = cfg.LinkCheck.Concurrency
	opts.Retries = cfg.LinkCheck.Retries
	if timeout > 0 {
		opts.Timeout = timeout
	}
	checker := linkcheck.NewChecker(opts).WithReporter(progress.NewReporter("Checking links"))

	noCache, _ := cmd.Flags().GetBool("no-cache")
	if !noCache && cfg.LinkCheck.CachePath != "" {
		database, err := db.Open(cfg.LinkCheck.CachePath)
		if err != nil {
			return fmt.Errorf("opening link cache: %w", err)
		}
		defer database.Close()
		ttl, _ := cfg.LinkCheck.CacheTTLDuration()
		checker.WithCache(linkcheck.NewCache(database), ttl)
	}

	results := checker.Check(cmd.Context(), urls)
	for _, r := range results {
		switch r.Status {
		case linkcheck.StatusWarning:
			fmt.Fprintf(out, "WARN: %s -> %d (%s)\n", r.URL, r.Code, r.Detail)
		case linkcheck.StatusFailed:
			fmt.Fprintf(out, "FAIL: %s -> %d (%s)\n", r.URL, r.Code, r.Detail)
		}
	}

	s := linkcheck.Summarize(results)
	fmt.Fprintln(out, "\nLinkcheck summary:")
	fmt.Fprintf(out, "   Total:   %d\n", s.Total)
	fmt.Fprintf(out, "   OK:      %d (%d cached)\n", s.OK, s.Cached)
	fmt.Fprintf(out, "   Warning: %d\n", s.Warning)
	fmt.Fprintf(out, "   Failed:  %d\n", s.Failed)

	if s.Failed > 0 {
		return fmt.Errorf("%d links failed", s.Failed)
	}
	return nil
}
