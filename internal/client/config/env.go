package config

import (
	"os"
	"time"
)

// Recognized environment variables.
const (
	EnvAPIBaseURL     = "UNICONNECT_API_BASE_URL"
	EnvRequestTimeout = "UNICONNECT_REQUEST_TIMEOUT"
	EnvLocalDBPath    = "UNICONNECT_LOCAL_DB"
)

// parseEnv overlays cfg with values from the environment. An unparseable
// timeout value is ignored rather than fatal.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(EnvLocalDBPath); v != "" {
		cfg.LocalDBPath = v
	}
}
