package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/accountbutler/internal/client/cli"
	"github.com/dmitrijs2005/accountbutler/internal/client/config"
	"github.com/dmitrijs2005/accountbutler/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	log := logging.NewTerminalLogger()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error(ctx, "exited with error", "error", err)
		os.Exit(1)
	}
}
