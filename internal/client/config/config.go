package config

import "time"

// Config holds runtime settings for the Konarr CLI.
//
// Fields:
//   - ServerURL: base URL of the Konarr API, including the /api prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - PageLimit: page size used for collection fetches.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	PageLimit      int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.PageLimit = 24
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
