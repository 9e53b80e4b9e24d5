// Package repomanager vends repository implementations bound to a database
// handle and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/reelvault/reelvault/internal/dbx"
	"github.com/reelvault/reelvault/internal/server/repositories/users"
	"github.com/reelvault/reelvault/internal/server/repositories/videos"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Videos(db dbx.DBTX) videos.Repository
}
