// Package users persists account records. Emails are stored normalized;
// callers normalize before calling.
package users

import (
	"context"

	"github.com/reelvault/reelvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id string, passwordHash string) (*models.User, error)
}
