// Package admincli implements the operator command line tool. It talks to the
// credential store directly and exists for account bootstrapping and support
// tasks that have no place on the public HTTP surface.
package admincli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/reelvault/reelvault/internal/logging"
	"github.com/reelvault/reelvault/internal/server/auth"
	"github.com/reelvault/reelvault/internal/server/config"
	"github.com/reelvault/reelvault/internal/server/hashing"
	"github.com/reelvault/reelvault/internal/server/repositories/repomanager"
	"github.com/reelvault/reelvault/internal/server/services"
	"github.com/reelvault/reelvault/internal/server/storemanager"
)

type App struct {
	stores   auth.StoreProvider
	repos    repomanager.RepositoryManager
	accounts *services.AccountService
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) *App {

	slogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(slogger)

	rm := repomanager.NewPostgresRepositoryManager()
	stores := storemanager.NewManager(c.DatabaseDSN, c.StoreConnectTimeout, logger, rm.RunMigrations)
	hasher := hashing.NewHasher(c.BcryptCost)

	return &App{
		stores:   stores,
		repos:    rm,
		accounts: services.NewAccountService(stores, rm, hasher, logger),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

const usage = `usage: admin <command> [flags]

commands:
  create-user     register a new account
  reset-password  set a new password for an existing account
`

// Run dispatches the subcommand named by args. It returns an error suitable
// for printing to the operator.
func (app *App) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprint(app.out, usage)
		return fmt.Errorf("no command given")
	}

	switch args[0] {
	case "create-user":
		return app.createUser(ctx)
	case "reset-password":
		return app.resetPassword(ctx)
	default:
		fmt.Fprint(app.out, usage)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}
