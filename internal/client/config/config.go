package config

import "time"

// Config holds runtime settings for the UniConnect CLI.
//
// Fields:
//   - APIBaseURL: origin of the backend REST API. Fixed for the process
//     lifetime once resolved.
//   - RequestTimeout: per-request HTTP timeout.
//   - LocalDBPath: path of the local SQLite database holding the persisted
//     session record.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	LocalDBPath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000"
	c.RequestTimeout = 15 * time.Second
	c.LocalDBPath = "uniconnect.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
