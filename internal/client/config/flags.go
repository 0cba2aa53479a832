package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/accountbutler/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local SQLite database (default from Config)
//	-m string   Gemini model name (default from Config)
//	-t int      categorization timeout in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path to the local database file")
	fs.StringVar(&cfg.GeminiModel, "m", cfg.GeminiModel, "gemini model name")
	timeoutSec := fs.Int("t", int(cfg.CategorizeTimeout.Seconds()), "categorization timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.CategorizeTimeout = time.Duration(*timeoutSec) * time.Second
}
