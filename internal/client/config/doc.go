// Package config loads runtime configuration for the UniConnect CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables: UNICONNECT_API_BASE_URL,
//     UNICONNECT_REQUEST_TIMEOUT, UNICONNECT_LOCAL_DB.
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      request timeout (seconds)
//	-d string   path of the local session database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:5000",
//	  "request_timeout": "15s",
//	  "local_db_path": "uniconnect.db"
//	}
package config
