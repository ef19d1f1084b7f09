// Package config loads runtime configuration for the Konarr CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Konarr API
//	-t int      request timeout (seconds)
//	-l int      collection page size
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:8000/api",
//	  "request_timeout": "10s",
//	  "page_limit": 24
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
