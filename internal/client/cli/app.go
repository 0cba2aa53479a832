package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/accountbutler/internal/client/accounts"
	"github.com/dmitrijs2005/accountbutler/internal/client/categorizer"
	"github.com/dmitrijs2005/accountbutler/internal/client/config"
	"github.com/dmitrijs2005/accountbutler/internal/client/db"
	"github.com/dmitrijs2005/accountbutler/internal/client/models"
	"github.com/dmitrijs2005/accountbutler/internal/client/repositories/storage"
	"github.com/dmitrijs2005/accountbutler/internal/client/services"
	"github.com/dmitrijs2005/accountbutler/internal/logging"
)

// App wires the services behind the REPL and holds the current session.
type App struct {
	config         *config.Config
	log            logging.Logger
	sessionService services.SessionService
	accountService services.AccountService
	session        *models.Session
	reader         *bufio.Reader
	out            io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	conn, err := db.Open(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	repo := storage.NewSQLiteRepository(conn)
	store := accounts.NewStore(repo, log)

	cat, err := categorizer.NewGeminiCategorizer(ctx, c.GeminiAPIKey, c.GeminiModel, c.CategorizeTimeout, log)
	if err != nil {
		return nil, err
	}

	return &App{
		config:         c,
		log:            log,
		sessionService: services.NewSessionService(repo, log),
		accountService: services.NewAccountService(store, cat, log),
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

// Run restores any stamped session and enters the REPL.
func (a *App) Run(ctx context.Context) error {
	session, err := a.sessionService.Current(ctx)
	if err != nil {
		return err
	}
	a.session = session

	a.Root(ctx)
	return nil
}
