// Package config loads runtime configuration for the Account Butler CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally loaded from a .env file
//     (GEMINI_API_KEY, GEMINI_MODEL, LOG_LEVEL).
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the local SQLite database
//	-m string   Gemini model name
//	-t int      categorization timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "database_dsn": "butler.db",
//	  "gemini_model": "gemini-2.0-flash",
//	  "categorize_timeout": "30s"
//	}
//
// The Gemini API key is deliberately env-only: it never appears in config
// files or on the command line.
package config
