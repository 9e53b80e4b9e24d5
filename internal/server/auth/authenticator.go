package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/reelvault/reelvault/internal/common"
	"github.com/reelvault/reelvault/internal/logging"
	"github.com/reelvault/reelvault/internal/server/hashing"
	"github.com/reelvault/reelvault/internal/server/repositories/repomanager"
)

// StoreProvider yields the shared database handle. Implemented by
// storemanager.Manager.
type StoreProvider interface {
	Acquire(ctx context.Context) (*sql.DB, error)
}

// Authenticator orchestrates credential verification: store handle
// acquisition, account lookup by normalized email, and hash comparison.
// It is read-only with respect to the credential store.
type Authenticator struct {
	stores StoreProvider
	repos  repomanager.RepositoryManager
	hasher *hashing.Hasher
	logger logging.Logger
}

func NewAuthenticator(stores StoreProvider, repos repomanager.RepositoryManager, hasher *hashing.Hasher, logger logging.Logger) *Authenticator {
	return &Authenticator{
		stores: stores,
		repos:  repos,
		hasher: hasher,
		logger: logger.With("module", "authenticator"),
	}
}

// Authenticate verifies the supplied credentials and returns the account's
// Identity. Every credential-path failure (empty input, unknown email, wrong
// secret, malformed stored hash) yields the same common.ErrorInvalidCredentials
// so callers cannot enumerate accounts. Store acquisition failures propagate
// as common.ErrorStoreUnavailable instead.
func (a *Authenticator) Authenticate(ctx context.Context, email, secret string) (*Identity, error) {
	if email == "" || secret == "" {
		return nil, common.ErrorInvalidCredentials
	}

	normalized := NormalizeEmail(email)

	db, err := a.stores.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring store handle: %w", err)
	}

	user, err := a.repos.Users(db).GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		a.logger.Error(ctx, "account lookup failed", "error", err.Error())
		return nil, common.ErrorInternal
	}

	if user.PasswordHash == "" || !a.hasher.Verify(secret, user.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	return &Identity{ID: user.ID, Email: user.Email}, nil
}
