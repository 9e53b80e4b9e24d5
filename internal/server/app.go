// Package server initializes and runs the ReelVault application server.
// It wires the credential store, session manager, and domain services,
// starts the HTTP API, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/reelvault/reelvault/internal/logging"
	"github.com/reelvault/reelvault/internal/server/auth"
	"github.com/reelvault/reelvault/internal/server/config"
	"github.com/reelvault/reelvault/internal/server/hashing"
	"github.com/reelvault/reelvault/internal/server/httpapi"
	"github.com/reelvault/reelvault/internal/server/repositories/repomanager"
	"github.com/reelvault/reelvault/internal/server/services"
	"github.com/reelvault/reelvault/internal/server/session"
	"github.com/reelvault/reelvault/internal/server/storemanager"
)

type App struct {
	config *config.Config
	logger logging.Logger
	stores *storemanager.Manager
	api    *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	rm := repomanager.NewPostgresRepositoryManager()

	// Migrations run on every successful connection attempt, so a store
	// that comes back after an outage is always up to date.
	stores := storemanager.NewManager(c.DatabaseDSN, c.StoreConnectTimeout, logger, rm.RunMigrations)

	sessions, err := session.NewManager(c.SessionSecret, c.SessionValidityDuration, c.SessionRefreshInterval)
	if err != nil {
		return nil, fmt.Errorf("session init error: %w", err)
	}

	hasher := hashing.NewHasher(c.BcryptCost)
	authn := auth.NewAuthenticator(stores, rm, hasher, logger)
	accounts := services.NewAccountService(stores, rm, hasher, logger)
	videos := services.NewVideoService(stores, rm, logger)

	api := httpapi.NewServer(c.EndpointAddrHTTP, logger, authn, sessions, accounts, videos)

	return &App{config: c, logger: logger, stores: stores, api: api}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.api.Run(ctx); err != nil {
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

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.stores.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
