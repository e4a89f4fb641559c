// Package repomanager hands out the PostgreSQL users and history repositories
// bound to a pool or a transaction, and owns the goose schema migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/langgpt/internal/dbx"
	"github.com/dmitrijs2005/langgpt/internal/server/migrations"
	"github.com/dmitrijs2005/langgpt/internal/server/repositories/history"
	"github.com/dmitrijs2005/langgpt/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// History returns a history.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) History(db dbx.DBTX) history.Repository {
	return history.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	return gooseUpContext(ctx, db, ".")
}

// gooseVersion is a seam for testing goose.GetDBVersionContext.
var gooseVersion = goose.GetDBVersionContext

// SchemaVersion reports the latest applied migration.
func (m *PostgresRepositoryManager) SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	v, err := gooseVersion(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}
