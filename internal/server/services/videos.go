package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reelvault/reelvault/internal/common"
	"github.com/reelvault/reelvault/internal/logging"
	"github.com/reelvault/reelvault/internal/server/auth"
	"github.com/reelvault/reelvault/internal/server/models"
	"github.com/reelvault/reelvault/internal/server/repositories/repomanager"
)

// CreateVideoInput is the typed request for adding a catalog entry.
// Optional knobs are pointers so "omitted" and "zero" stay distinguishable.
type CreateVideoInput struct {
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	Controls     *bool
	Height       int
	Width        int
	Quality      int
}

func (in *CreateVideoInput) validate() error {
	for _, f := range []struct{ name, value string }{
		{"title", in.Title},
		{"description", in.Description},
		{"videoUrl", in.VideoURL},
		{"thumbnailUrl", in.ThumbnailURL},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", common.ErrorValidation, f.name)
		}
	}
	return nil
}

// VideoService manages the video catalog metadata.
type VideoService struct {
	stores auth.StoreProvider
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewVideoService(stores auth.StoreProvider, repos repomanager.RepositoryManager, logger logging.Logger) *VideoService {
	return &VideoService{
		stores: stores,
		repos:  repos,
		logger: logger.With("module", "videos"),
	}
}

// List returns all videos, newest first. Always returns a non-nil slice.
func (s *VideoService) List(ctx context.Context) ([]*models.Video, error) {
	db, err := s.stores.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring store handle: %w", err)
	}

	videos, err := s.repos.Videos(db).List(ctx)
	if err != nil {
		s.logger.Error(ctx, "video list failed", "error", err.Error())
		return nil, common.ErrorInternal
	}
	return videos, nil
}

// Get returns one video by id.
func (s *VideoService) Get(ctx context.Context, id string) (*models.Video, error) {
	db, err := s.stores.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring store handle: %w", err)
	}

	video, err := s.repos.Videos(db).Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "video fetch failed", "error", err.Error())
		return nil, common.ErrorInternal
	}
	return video, nil
}

// Create validates the input, applies rendering defaults, and persists the
// entry.
func (s *VideoService) Create(ctx context.Context, in CreateVideoInput) (*models.Video, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	video := &models.Video{
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		VideoURL:     in.VideoURL,
		ThumbnailURL: in.ThumbnailURL,
		Controls:     true,
		Height:       models.DefaultVideoHeight,
		Width:        models.DefaultVideoWidth,
		Quality:      models.DefaultVideoQuality,
	}
	if in.Controls != nil {
		video.Controls = *in.Controls
	}
	if in.Height > 0 {
		video.Height = in.Height
	}
	if in.Width > 0 {
		video.Width = in.Width
	}
	if in.Quality > 0 {
		video.Quality = in.Quality
	}

	db, err := s.stores.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring store handle: %w", err)
	}

	created, err := s.repos.Videos(db).Create(ctx, video)
	if err != nil {
		s.logger.Error(ctx, "video creation failed", "error", err.Error())
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "video created", "video_id", created.ID)
	return created, nil
}

// Delete removes one video by id.
func (s *VideoService) Delete(ctx context.Context, id string) error {
	db, err := s.stores.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquiring store handle: %w", err)
	}

	if err := s.repos.Videos(db).Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		s.logger.Error(ctx, "video deletion failed", "error", err.Error())
		return common.ErrorInternal
	}

	s.logger.Info(ctx, "video deleted", "video_id", id)
	return nil
}
