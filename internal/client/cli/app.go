package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/dmitrijs2005/langgpt/internal/client/client"
	"github.com/dmitrijs2005/langgpt/internal/client/config"
	"github.com/dmitrijs2005/langgpt/internal/client/services"
)

type App struct {
	config    *config.Config
	db        *sql.DB
	session   services.SessionService
	direction string
	reader    *bufio.Reader
	out       io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := client.InitDatabase(ctx, c.StateFile)
	if err != nil {
		return nil, err
	}

	api := client.NewAPIClient(c.ServerURL, c.RequestTimeout)
	session := services.NewSessionService(api, db)

	return &App{
		config:    c,
		db:        db,
		session:   session,
		direction: c.Direction,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	printlnFn("Welcome to LangGPT CLI (type 'help' for commands)")
	if err := a.session.Ping(ctx); err != nil {
		printlnFn("Warning:", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	name, err := a.session.Username(ctx)
	return err == nil && name != ""
}

func (a *App) getStatus(ctx context.Context) string {
	name, _ := a.session.Username(ctx)
	if name == "" {
		return "(" + a.direction + ")"
	}
	return "(" + name + " " + a.direction + ")"
}
