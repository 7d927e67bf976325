package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/uniconnect/uniconnect-cli/internal/flagx"
	"github.com/uniconnect/uniconnect-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "15s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LocalDBPath    string         `json:"local_db_path"`
}

// parseJson overlays cfg with values loaded from a JSON file selected via the
// -c or -config flags. If no file is given, nothing happens. Read or
// unmarshal errors panic; the caller may recover if desired.
//
// Only fields present in the file override cfg, so a partial file keeps the
// defaults for the rest.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
}
