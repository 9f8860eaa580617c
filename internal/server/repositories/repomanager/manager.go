package repomanager

import (
	"context"
	"database/sql"

	"github.com/waterguard/backend/internal/dbx"
	"github.com/waterguard/backend/internal/server/repositories/bookings"
	"github.com/waterguard/backend/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX and
// exposes a schema migration hook. Passing a *sql.Tx instead of the *sql.DB
// yields repositories that participate in that transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Bookings(db dbx.DBTX) bookings.Repository
}
