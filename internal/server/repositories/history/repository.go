package history

import (
	"context"
	"time"

	"github.com/dmitrijs2005/langgpt/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, record *models.TranslationRecord) (*models.TranslationRecord, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]*models.TranslationRecord, error)
	CountSince(ctx context.Context, userID int64, since time.Time) (int, error)
}
