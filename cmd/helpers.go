package cmd

import (
	"fmt"

	"github.com/reprogrammability/tutorsite/internal/config"
	"github.com/reprogrammability/tutorsite/internal/content"
	"github.com/reprogrammability/tutorsite/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `tutorsite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newGenerator builds the rebuilt-site generator from config.
func newGenerator(cfg *config.Config, outputDir string) (*site.Generator, error) {
	defaults, err := cfg.Calendar.Defaults()
	if err != nil {
		return nil, err
	}
	g := site.NewGenerator(cfg.ContentDir, outputDir, cfg.SiteName)
	g.BasePath = cfg.BasePath
	g.SiteURL = cfg.SiteURL
	g.Calendar = defaults
	return g, nil
}

// newLegacyGenerator builds the legacy-site generator from config.
func newLegacyGenerator(cfg *config.Config, outputDir string) (*site.LegacyGenerator, error) {
	defaults, err := cfg.Calendar.Defaults()
	if err != nil {
		return nil, err
	}
	g := site.NewLegacyGenerator(cfg.LegacyData, outputDir, cfg.SiteName)
	g.Calendar = defaults
	return g, nil
}

// loadBundle reads the rebuilt content documents.
func loadBundle(cfg *config.Config) (*content.Bundle, error) {
	b, err := content.NewLoader(cfg.ContentDir).LoadBundle()
	if err != nil {
		return nil, fmt.Errorf("loading content from %s: %w", cfg.ContentDir, err)
	}
	return b, nil
}
