package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the Account Butler CLI.
//
// Fields:
//   - DatabaseDSN: path of the local SQLite database file.
//   - GeminiAPIKey: API key for the hosted categorization model (env-only).
//   - GeminiModel: model name used for categorization.
//   - CategorizeTimeout: upper bound on a single categorization round trip.
type Config struct {
	DatabaseDSN       string
	GeminiAPIKey      string
	GeminiModel       string
	CategorizeTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "butler.db"
	c.GeminiModel = "gemini-2.0-flash"
	c.CategorizeTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (optionally a .env file), a JSON file (if present)
// and command-line flags (if present). Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// parseEnv overlays values from the process environment. A .env file in
// the working directory is merged in first when present; its absence is
// not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
}
