// Package server initializes and runs the LangGPT backend: it opens and
// migrates the database, builds the services, and serves the HTTP API and the
// gRPC health service until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/langgpt/internal/logging"
	"github.com/dmitrijs2005/langgpt/internal/server/config"
	"github.com/dmitrijs2005/langgpt/internal/server/llm"
	"github.com/dmitrijs2005/langgpt/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/langgpt/internal/server/rest"
	"github.com/dmitrijs2005/langgpt/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/langgpt/internal/server/grpc"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config             *config.Config
	logger             logging.Logger
	db                 *sql.DB
	userService        *services.UserService
	translationService *services.TranslationService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	if err != nil {
		logger.Warn(ctx, "falling back to info log level", "error", err)
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}
	if v, err := rm.SchemaVersion(ctx, db); err == nil {
		logger.Info(ctx, "database ready", "schema_version", v)
	}

	model := llm.NewClient(llm.Options{
		BaseURL:     c.LLMBaseURL,
		APIKey:      c.LLMAPIKey,
		Model:       c.LLMModel,
		Temperature: c.LLMTemperature,
		MaxTokens:   c.LLMMaxTokens,
		Timeout:     c.LLMTimeout,
	})

	if c.LLMAPIKey == "" {
		logger.Warn(ctx, "no server model key configured, callers must supply their own")
	}

	us := services.NewUserService(db, rm, c)
	ts := services.NewTranslationService(db, rm, model, logger, c)

	return &App{config: c, logger: logger, db: db, userService: us, translationService: ts}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if app.config.EndpointAddrGRPC == "" {
		return
	}

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.db)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	handler := rest.NewRouter(app.userService, app.translationService, app.logger.With("module", "http_server"), app.config.AllowedOrigins)

	srv := &http.Server{
		Addr:              app.config.EndpointAddrHTTP,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "HTTP shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.config.EndpointAddrHTTP)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "db close error", "error", err)
	}

	app.logger.Info(context.Background(), "App stopped")
}
