package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/reprogrammability/tutorsite/internal/calendar"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TUTORSITE_"

// envKey maps TUTORSITE_SITE_NAME to site_name and
// TUTORSITE_LINKCHECK__CONCURRENCY to linkcheck.concurrency.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Load reads configuration from the given YAML file, then overlays a .env
// file next to it (if present) and environment variable overrides
// (TUTORSITE_*). Variables already set in the environment win over .env.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults. List defaults are applied after unmarshalling
	// because decoding into a populated slice only overwrites a prefix.
	cfg := DefaultConfig()
	cfg.LinkCheck.Include = nil
	cfg.LinkCheck.Exclude = nil

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	dotenv := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", dotenv, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if len(cfg.LinkCheck.Include) == 0 {
		cfg.LinkCheck.Include = DefaultIncludes
	}
	if len(cfg.LinkCheck.Exclude) == 0 {
		cfg.LinkCheck.Exclude = DefaultExcludes
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.LegacyOutputDir == "" {
		return fmt.Errorf("legacy_output_dir is required")
	}
	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path %q must start with /", c.BasePath)
	}

	if _, err := c.Calendar.Defaults(); err != nil {
		return err
	}

	if c.LinkCheck.Concurrency <= 0 {
		return fmt.Errorf("linkcheck.concurrency must be positive")
	}
	if c.LinkCheck.Retries < 0 {
		return fmt.Errorf("linkcheck.retries must be non-negative")
	}
	if _, err := c.LinkCheck.TimeoutDuration(); err != nil {
		return err
	}
	if _, err := c.LinkCheck.CacheTTLDuration(); err != nil {
		return err
	}

	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port %d out of range", c.Serve.Port)
	}

	return nil
}

// Defaults converts the calendar settings to calendar fallbacks. Empty
// fields keep the built-in values.
func (c CalendarConfig) Defaults() (calendar.Defaults, error) {
	d := calendar.DefaultDefaults()
	if c.Domain != "" {
		d.Domain = c.Domain
	}
	if c.FallbackStart != "" {
		t, err := time.Parse(time.RFC3339, c.FallbackStart)
		if err != nil {
			return d, fmt.Errorf("invalid calendar.fallback_start %q: %w", c.FallbackStart, err)
		}
		d.Start = t
	}
	if c.FallbackEnd != "" {
		t, err := time.Parse(time.RFC3339, c.FallbackEnd)
		if err != nil {
			return d, fmt.Errorf("invalid calendar.fallback_end %q: %w", c.FallbackEnd, err)
		}
		d.End = t
	}
	if !d.End.After(d.Start) {
		return d, fmt.Errorf("calendar.fallback_end must be after fallback_start")
	}
	return d, nil
}

// TimeoutDuration parses the per-request timeout.
func (c LinkCheckConfig) TimeoutDuration() (time.Duration, error) {
	return parseDuration("linkcheck.timeout", c.Timeout)
}

// CacheTTLDuration parses how long an ok result stays cached. Zero
// disables the cache lookup.
func (c LinkCheckConfig) CacheTTLDuration() (time.Duration, error) {
	return parseDuration("linkcheck.cache_ttl", c.CacheTTL)
}

func parseDuration(name, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must be non-negative", name)
	}
	return d, nil
}
