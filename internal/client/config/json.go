package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/accountbutler/internal/flagx"
	"github.com/dmitrijs2005/accountbutler/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be given either as a string like "30s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	DatabaseDSN       string         `json:"database_dsn"`
	GeminiModel       string         `json:"gemini_model"`
	CategorizeTimeout timex.Duration `json:"categorize_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via the -c/-config flags. When no file is given the function returns
// without touching cfg. Read or unmarshal errors panic (caller may recover).
// Empty JSON fields leave the corresponding Config values unchanged.
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

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.GeminiModel != "" {
		cfg.GeminiModel = jc.GeminiModel
	}
	if jc.CategorizeTimeout.Duration != 0 {
		cfg.CategorizeTimeout = jc.CategorizeTimeout.Duration
	}
}
