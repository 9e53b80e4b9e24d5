package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelvault/reelvault/internal/common"
	"github.com/reelvault/reelvault/internal/server/models"
	"github.com/reelvault/reelvault/internal/server/repositories/repomanager"
)

func newInMemoryVideoService() *VideoService {
	rm := repomanager.NewInMemoryRepositoryManager()
	return NewVideoService(&fakeStores{}, rm, testLogger())
}

func validInput() CreateVideoInput {
	return CreateVideoInput{
		Title:        "clip",
		Description:  "a clip",
		VideoURL:     "https://cdn/v.mp4",
		ThumbnailURL: "https://cdn/t.jpg",
	}
}

func TestCreateVideo_AppliesDefaults(t *testing.T) {
	s := newInMemoryVideoService()

	v, err := s.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.True(t, v.Controls)
	assert.Equal(t, models.DefaultVideoHeight, v.Height)
	assert.Equal(t, models.DefaultVideoWidth, v.Width)
	assert.Equal(t, models.DefaultVideoQuality, v.Quality)
	assert.NotEmpty(t, v.ID)
}

func TestCreateVideo_ExplicitValuesKept(t *testing.T) {
	s := newInMemoryVideoService()

	controls := false
	in := validInput()
	in.Controls = &controls
	in.Height = 720
	in.Width = 480
	in.Quality = 50

	v, err := s.Create(context.Background(), in)
	require.NoError(t, err)

	assert.False(t, v.Controls, "explicit controls=false must not be overridden by the default")
	assert.Equal(t, 720, v.Height)
	assert.Equal(t, 480, v.Width)
	assert.Equal(t, 50, v.Quality)
}

func TestCreateVideo_Validation(t *testing.T) {
	s := newInMemoryVideoService()

	tests := []struct {
		name   string
		mutate func(*CreateVideoInput)
		field  string
	}{
		{"missing title", func(in *CreateVideoInput) { in.Title = "" }, "title"},
		{"missing description", func(in *CreateVideoInput) { in.Description = " " }, "description"},
		{"missing video url", func(in *CreateVideoInput) { in.VideoURL = "" }, "videoUrl"},
		{"missing thumbnail url", func(in *CreateVideoInput) { in.ThumbnailURL = "" }, "thumbnailUrl"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := s.Create(context.Background(), in)
			assert.ErrorIs(t, err, common.ErrorValidation)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestListVideos_NewestFirst(t *testing.T) {
	s := newInMemoryVideoService()

	first, err := s.Create(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.Title = "second"
	second, err := s.Create(context.Background(), in)
	require.NoError(t, err)

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
}

func TestListVideos_StoreUnavailable(t *testing.T) {
	rm := repomanager.NewInMemoryRepositoryManager()
	s := NewVideoService(&fakeStores{err: common.ErrorStoreUnavailable}, rm, testLogger())

	_, err := s.List(context.Background())
	assert.ErrorIs(t, err, common.ErrorStoreUnavailable)
}

func TestDeleteVideo(t *testing.T) {
	s := newInMemoryVideoService()

	v, err := s.Create(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), v.ID))
	assert.ErrorIs(t, s.Delete(context.Background(), v.ID), common.ErrorNotFound)

	_, err = s.Get(context.Background(), v.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
