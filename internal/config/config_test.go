package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reprogrammability/tutorsite/internal/calendar"
)

// unsetEnv clears key for the duration of the test and restores it after.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ContentDir != "content" {
		t.Errorf("expected default content_dir %q, got %q", "content", cfg.ContentDir)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("expected default output_dir %q, got %q", "out", cfg.OutputDir)
	}
	if cfg.LinkCheck.Concurrency != 8 {
		t.Errorf("expected default linkcheck.concurrency 8, got %d", cfg.LinkCheck.Concurrency)
	}
	if cfg.Serve.Port != 8080 {
		t.Errorf("expected default serve.port 8080, got %d", cfg.Serve.Port)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tutorsite.yml")

	original := DefaultConfig()
	original.ContentDir = "site/content"
	original.BasePath = "/awesome/tutorial-website"
	original.SiteURL = "https://example.org"
	original.LinkCheck.Include = []string{"**/*.yaml"}
	original.LinkCheck.Timeout = "3s"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.ContentDir != original.ContentDir {
		t.Errorf("content_dir: got %q, want %q", loaded.ContentDir, original.ContentDir)
	}
	if loaded.BasePath != original.BasePath {
		t.Errorf("base_path: got %q, want %q", loaded.BasePath, original.BasePath)
	}
	if loaded.SiteURL != original.SiteURL {
		t.Errorf("site_url: got %q, want %q", loaded.SiteURL, original.SiteURL)
	}
	if len(loaded.LinkCheck.Include) != 1 || loaded.LinkCheck.Include[0] != "**/*.yaml" {
		t.Errorf("linkcheck.include: got %v, want [**/*.yaml]", loaded.LinkCheck.Include)
	}
	if d, _ := loaded.LinkCheck.TimeoutDuration(); d != 3*time.Second {
		t.Errorf("linkcheck.timeout: got %v, want 3s", d)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("expected default output_dir, got %q", cfg.OutputDir)
	}
	if len(cfg.LinkCheck.Include) != len(DefaultIncludes) {
		t.Errorf("expected default includes, got %v", cfg.LinkCheck.Include)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tutorsite.yml")
	if err := os.WriteFile(path, []byte("site_name: Custom\nlinkcheck:\n  retries: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SiteName != "Custom" {
		t.Errorf("site_name = %q", cfg.SiteName)
	}
	if cfg.LinkCheck.Retries != 5 {
		t.Errorf("linkcheck.retries = %d, want 5", cfg.LinkCheck.Retries)
	}
	if cfg.LinkCheck.Concurrency != 8 {
		t.Errorf("linkcheck.concurrency = %d, want default 8", cfg.LinkCheck.Concurrency)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tutorsite.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("TUTORSITE_OUTPUT_DIR", "public")
	t.Setenv("TUTORSITE_LINKCHECK__CONCURRENCY", "3")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "public" {
		t.Errorf("env override failed: got %q, want %q", loaded.OutputDir, "public")
	}
	if loaded.LinkCheck.Concurrency != 3 {
		t.Errorf("nested env override failed: got %d, want 3", loaded.LinkCheck.Concurrency)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tutorsite.yml")
	unsetEnv(t, "TUTORSITE_SITE_URL")
	unsetEnv(t, "TUTORSITE_BASE_PATH")
	t.Setenv("TUTORSITE_BASE_PATH", "/from-env")

	dotenv := "TUTORSITE_SITE_URL=https://dotenv.example\nTUTORSITE_BASE_PATH=/from-dotenv\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SiteURL != "https://dotenv.example" {
		t.Errorf("site_url = %q, want value from .env", cfg.SiteURL)
	}
	if cfg.BasePath != "/from-env" {
		t.Errorf("base_path = %q, environment should win over .env", cfg.BasePath)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty content dir", func(c *Config) { c.ContentDir = "" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"empty legacy output dir", func(c *Config) { c.LegacyOutputDir = "" }},
		{"relative base path", func(c *Config) { c.BasePath = "tutorial" }},
		{"zero concurrency", func(c *Config) { c.LinkCheck.Concurrency = 0 }},
		{"negative retries", func(c *Config) { c.LinkCheck.Retries = -1 }},
		{"bad timeout", func(c *Config) { c.LinkCheck.Timeout = "soon" }},
		{"negative ttl", func(c *Config) { c.LinkCheck.CacheTTL = "-1h" }},
		{"bad fallback start", func(c *Config) { c.Calendar.FallbackStart = "Jan 21" }},
		{"inverted fallback", func(c *Config) {
			c.Calendar.FallbackStart = "2026-01-21T09:30:00Z"
			c.Calendar.FallbackEnd = "2026-01-21T06:00:00Z"
		}},
		{"port out of range", func(c *Config) { c.Serve.Port = 70000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCalendarDefaults(t *testing.T) {
	d, err := CalendarConfig{}.Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	if d != calendar.DefaultDefaults() {
		t.Errorf("empty config should keep built-in defaults, got %+v", d)
	}

	d, err = CalendarConfig{
		Domain:        "example.org",
		FallbackStart: "2026-02-01T01:00:00Z",
		FallbackEnd:   "2026-02-01T02:00:00Z",
	}.Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	if d.Domain != "example.org" || d.Start.Hour() != 1 || d.End.Hour() != 2 {
		t.Errorf("defaults = %+v", d)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"TUTORSITE_SITE_NAME", "site_name"},
		{"TUTORSITE_LINKCHECK__CACHE_TTL", "linkcheck.cache_ttl"},
		{"TUTORSITE_SERVE__PORT", "serve.port"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
