// Package services contains server-side business logic. This file implements
// UserService, which handles registration, password login and issuing and
// validating bearer JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/langgpt/internal/common"
	"github.com/dmitrijs2005/langgpt/internal/server/auth"
	"github.com/dmitrijs2005/langgpt/internal/server/config"
	"github.com/dmitrijs2005/langgpt/internal/server/models"
	"github.com/dmitrijs2005/langgpt/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users with a bcrypt password hash
// - Authenticate / Login: verify credentials and mint tokens
// - ValidateToken: resolve a bearer token to its user
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user. Duplicate usernames or emails yield an error
// matching common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", common.ErrorValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		if auth.IsPasswordTooLong(err) {
			return nil, fmt.Errorf("%w: password is too long", common.ErrorValidation)
		}
		return nil, common.ErrorInternal
	}

	user := &models.User{UserName: username, Email: email, PasswordHash: hash}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Authenticate returns the user when the password matches. Unknown users and
// wrong passwords both yield (nil, nil).
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.BurnPasswordCheck(password)
			return nil, nil
		}
		return nil, common.ErrorInternal
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, nil
	}
	return user, nil
}

// IssueToken signs an access token whose subject is the username.
func (s *UserService) IssueToken(user *models.User) (string, error) {
	return auth.GenerateToken(user.UserName, s.jwtSecret, s.accessTokenValidityDuration)
}

// Login authenticates and, on success, returns a fresh access token.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", common.ErrorUnauthorized
	}
	token, err := s.IssueToken(user)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// ValidateToken resolves a bearer token to its user. Every failure matches
// common.ErrorUnauthorized; expiry additionally matches common.ErrTokenExpired.
func (s *UserService) ValidateToken(ctx context.Context, token string) (*models.User, error) {
	username, err := auth.GetUsernameFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}

	user, err := s.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrInvalidToken)
		}
		return nil, err
	}
	return user, nil
}

// GetByUsername looks a user up by username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}
