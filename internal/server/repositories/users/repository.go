package users

import (
	"context"

	"github.com/dmitrijs2005/langgpt/internal/server/models"
)

// Repository stores accounts. Usernames and emails are unique.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByUsername returns common.ErrorNotFound for an unknown username.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
