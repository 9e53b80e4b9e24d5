// Package services contains server-side business logic on top of the
// repositories: account registration and secret changes, and the video
// catalog operations.
package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/reelvault/reelvault/internal/common"
	"github.com/reelvault/reelvault/internal/dbx"
	"github.com/reelvault/reelvault/internal/logging"
	"github.com/reelvault/reelvault/internal/server/auth"
	"github.com/reelvault/reelvault/internal/server/hashing"
	"github.com/reelvault/reelvault/internal/server/models"
	"github.com/reelvault/reelvault/internal/server/repositories/repomanager"
)

// MinSecretLength is the minimum accepted password length.
const MinSecretLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AccountService creates accounts and replaces their secrets. The plaintext
// secret is hashed here, before any repository write; repositories only ever
// see the hash.
type AccountService struct {
	stores auth.StoreProvider
	repos  repomanager.RepositoryManager
	hasher *hashing.Hasher
	logger logging.Logger
}

func NewAccountService(stores auth.StoreProvider, repos repomanager.RepositoryManager, hasher *hashing.Hasher, logger logging.Logger) *AccountService {
	return &AccountService{
		stores: stores,
		repos:  repos,
		hasher: hasher,
		logger: logger.With("module", "accounts"),
	}
}

// Register creates an account under the normalized email. Duplicate emails
// (including case/whitespace variants of an existing one) fail with
// common.ErrorConflict.
func (s *AccountService) Register(ctx context.Context, email, secret string) (*auth.Identity, error) {
	normalized := auth.NormalizeEmail(email)

	if !emailPattern.MatchString(normalized) {
		return nil, fmt.Errorf("%w: invalid email format", common.ErrorValidation)
	}
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, MinSecretLength)
	}

	db, err := s.stores.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring store handle: %w", err)
	}

	hash, err := s.hasher.Hash(secret)
	if err != nil {
		s.logger.Error(ctx, "hashing failed", "error", err.Error())
		return nil, common.ErrorInternal
	}

	user, err := s.repos.Users(db).Create(ctx, &models.User{Email: normalized, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		s.logger.Error(ctx, "account creation failed", "error", err.Error())
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "account registered", "user_id", user.ID)
	return &auth.Identity{ID: user.ID, Email: user.Email}, nil
}

// ChangeSecret replaces the secret of the account with the given id. The
// lookup-by-email path is deliberately not involved; this is a direct by-id
// update, re-hashed on every call. Runs in a transaction so the existence
// check and the write observe the same record.
func (s *AccountService) ChangeSecret(ctx context.Context, id, newSecret string) (*auth.Identity, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: account id is required", common.ErrorValidation)
	}
	if len(newSecret) < MinSecretLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, MinSecretLength)
	}

	db, err := s.stores.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring store handle: %w", err)
	}

	hash, err := s.hasher.Hash(newSecret)
	if err != nil {
		s.logger.Error(ctx, "hashing failed", "error", err.Error())
		return nil, common.ErrorInternal
	}

	var updated *models.User
	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)
		if _, err := repo.GetByID(ctx, id); err != nil {
			return err
		}
		var updErr error
		updated, updErr = repo.UpdatePasswordHash(ctx, id, hash)
		return updErr
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "secret change failed", "error", err.Error())
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "secret changed", "user_id", id)
	return &auth.Identity{ID: updated.ID, Email: updated.Email}, nil
}
