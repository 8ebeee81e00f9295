package config

import (
	"time"

	"github.com/reprogrammability/tutorsite/internal/calendar"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "tutorsite.yml"

// DefaultIncludes are the content files scanned for links by default.
var DefaultIncludes = []string{
	"**/*.yaml",
	"**/*.yml",
	"**/*.md",
	"**/*.json",
}

// DefaultExcludes are glob patterns never scanned for links.
var DefaultExcludes = []string{
	"node_modules/**",
	".git/**",
	"out/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ContentDir:      "content",
		OutputDir:       "out",
		LegacyOutputDir: "out/legacy",
		LegacyData:      "data/content.json",
		SiteName:        "Neural Network Reprogrammability Tutorial",
		Calendar: CalendarConfig{
			Domain:        calendar.DefaultDomain,
			FallbackStart: calendar.DefaultStart.Format(time.RFC3339),
			FallbackEnd:   calendar.DefaultEnd.Format(time.RFC3339),
		},
		LinkCheck: LinkCheckConfig{
			Concurrency: 8,
			Timeout:     "10s",
			Retries:     2,
			CachePath:   ".tutorsite/links.db",
			CacheTTL:    "24h",
			Include:     DefaultIncludes,
			Exclude:     DefaultExcludes,
		},
		Serve: ServeConfig{
			Port: 8080,
		},
	}
}
