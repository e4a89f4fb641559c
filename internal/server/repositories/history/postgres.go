// Package history provides the PostgreSQL-backed store of completed
// translations.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/langgpt/internal/dbx"
	"github.com/dmitrijs2005/langgpt/internal/server/models"
)

// PostgresRepository implements history storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the record and fills in the generated ID and CreatedAt.
// The foreign key on user_id rejects records for users that do not exist.
func (r *PostgresRepository) Create(ctx context.Context, record *models.TranslationRecord) (*models.TranslationRecord, error) {
	query := `
		INSERT INTO translation_history (user_id, original_text, translated_text, reviewed_text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		record.UserID, record.OriginalText, record.TranslatedText, record.ReviewedText).
		Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return record, nil
}

// ListByUser returns at most limit records of userID, newest first.
// Ties on created_at are broken by id so the order is stable.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*models.TranslationRecord, error) {
	query := `
		SELECT id, user_id, original_text, translated_text, reviewed_text, created_at
		FROM translation_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.TranslationRecord, 0, limit)
	for rows.Next() {
		rec := &models.TranslationRecord{}
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.OriginalText, &rec.TranslatedText, &rec.ReviewedText, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

// CountSince counts records of userID created at or after since.
func (r *PostgresRepository) CountSince(ctx context.Context, userID int64, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM translation_history
		WHERE user_id = $1 AND created_at >= $2
	`
	var n int
	if err := r.db.QueryRowContext(ctx, query, userID, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
