package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/langgpt/internal/dbx"
	"github.com/dmitrijs2005/langgpt/internal/server/repositories/history"
	"github.com/dmitrijs2005/langgpt/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code path
// works on the pool and inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	SchemaVersion(context.Context, *sql.DB) (int64, error)
	Users(db dbx.DBTX) users.Repository
	History(db dbx.DBTX) history.Repository
}
