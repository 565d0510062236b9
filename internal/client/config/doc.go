// Package config loads runtime configuration for the GoBarber CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the GoBarber API
//	-d string   directory holding the local session database
//	-t int      request timeout (seconds)
//	-l string   log level: debug, info, warn or error
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "10s" or integer
// nanoseconds. Keys that are missing keep their previous value:
//
//	{
//	  "server_url": "http://127.0.0.1:3333",
//	  "data_dir": "data",
//	  "request_timeout": "10s",
//	  "log_level": "info"
//	}
package config
