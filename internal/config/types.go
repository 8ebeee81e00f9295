package config

// Config is the top-level tutorsite configuration, corresponding to tutorsite.yml.
type Config struct {
	ContentDir      string          `yaml:"content_dir" koanf:"content_dir"`
	OutputDir       string          `yaml:"output_dir" koanf:"output_dir"`
	LegacyOutputDir string          `yaml:"legacy_output_dir" koanf:"legacy_output_dir"`
	LegacyData      string          `yaml:"legacy_data" koanf:"legacy_data"`
	BasePath        string          `yaml:"base_path" koanf:"base_path"`
	SiteURL         string          `yaml:"site_url" koanf:"site_url"`
	SiteName        string          `yaml:"site_name" koanf:"site_name"`
	Calendar        CalendarConfig  `yaml:"calendar" koanf:"calendar"`
	LinkCheck       LinkCheckConfig `yaml:"linkcheck" koanf:"linkcheck"`
	Serve           ServeConfig     `yaml:"serve" koanf:"serve"`
}

// CalendarConfig controls the generated .ics files.
type CalendarConfig struct {
	Domain        string `yaml:"domain" koanf:"domain"`
	FallbackStart string `yaml:"fallback_start" koanf:"fallback_start"` // RFC 3339
	FallbackEnd   string `yaml:"fallback_end" koanf:"fallback_end"`     // RFC 3339
}

// LinkCheckConfig holds external link checker settings. Durations use
// Go duration syntax ("10s", "24h").
type LinkCheckConfig struct {
	Concurrency int      `yaml:"concurrency" koanf:"concurrency"`
	Timeout     string   `yaml:"timeout" koanf:"timeout"`
	Retries     int      `yaml:"retries" koanf:"retries"`
	CachePath   string   `yaml:"cache_path" koanf:"cache_path"`
	CacheTTL    string   `yaml:"cache_ttl" koanf:"cache_ttl"`
	Include     []string `yaml:"include" koanf:"include"`
	Exclude     []string `yaml:"exclude" koanf:"exclude"`
}

// ServeConfig holds preview server settings.
type ServeConfig struct {
	Port int `yaml:"port" koanf:"port"`
}
