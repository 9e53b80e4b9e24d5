package repomanager

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/reelvault/reelvault/internal/common"
	"github.com/reelvault/reelvault/internal/dbx"
	"github.com/reelvault/reelvault/internal/server/models"
	"github.com/reelvault/reelvault/internal/server/repositories/users"
	"github.com/reelvault/reelvault/internal/server/repositories/videos"
)

// InMemoryRepositoryManager backs the repositories with process memory.
// Used by tests and local experiments; the DBTX argument is ignored.
type InMemoryRepositoryManager struct {
	users  *inMemoryUsers
	videos *inMemoryVideos
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:  &inMemoryUsers{byEmail: make(map[string]*models.User)},
		videos: &inMemoryVideos{},
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Videos(db dbx.DBTX) videos.Repository {
	return m.videos
}

type inMemoryUsers struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
}

func (r *inMemoryUsers) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorConflict
	}

	now := time.Now()
	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.byEmail[stored.Email] = &stored

	out := stored
	return &out, nil
}

func (r *inMemoryUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

func (r *inMemoryUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byEmail {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *inMemoryUsers) UpdatePasswordHash(ctx context.Context, id string, passwordHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byEmail {
		if u.ID == id {
			u.PasswordHash = passwordHash
			u.UpdatedAt = time.Now()
			out := *u
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

type inMemoryVideos struct {
	mu    sync.Mutex
	items []*models.Video
}

func (r *inMemoryVideos) Create(ctx context.Context, video *models.Video) (*models.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	stored := *video
	stored.ID = uuid.NewString()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.items = append(r.items, &stored)

	out := stored
	return &out, nil
}

func (r *inMemoryVideos) Get(ctx context.Context, id string) (*models.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.items {
		if v.ID == id {
			out := *v
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *inMemoryVideos) List(ctx context.Context) ([]*models.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*models.Video, 0, len(r.items))
	for _, v := range r.items {
		out := *v
		result = append(result, &out)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *inMemoryVideos) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, v := range r.items {
		if v.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}
