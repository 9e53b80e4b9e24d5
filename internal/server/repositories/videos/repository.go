// Package videos persists the video catalog metadata.
package videos

import (
	"context"

	"github.com/reelvault/reelvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, video *models.Video) (*models.Video, error)
	Get(ctx context.Context, id string) (*models.Video, error)
	List(ctx context.Context) ([]*models.Video, error)
	Delete(ctx context.Context, id string) error
}
