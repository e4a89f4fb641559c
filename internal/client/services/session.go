// Package services contains application services for the LangGPT client.
// SessionService keeps the login session and the user's own model key in the
// local metadata store and forwards work to the server.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/langgpt/internal/client/client"
	"github.com/dmitrijs2005/langgpt/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/langgpt/internal/dbx"
)

const (
	keyAccessToken = "access_token"
	keyUsername    = "username"
	keyModelAPIKey = "openai_api_key"
)

var (
	ErrNotLoggedIn         = errors.New("not logged in")
	ErrInvalidAPIKeyFormat = errors.New(`API key must start with "sk-"`)
)

// API is the part of client.APIClient the session needs.
type API interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	Me(ctx context.Context, token string) (*client.User, error)
	Translate(ctx context.Context, token, text, direction, apiKey string) (*client.Translation, error)
	History(ctx context.Context, token string, limit int) ([]client.HistoryRecord, error)
	Ping(ctx context.Context) error
}

// SessionService defines what the CLI can do.
//
// Contract:
//   - Login stores the token and username locally; Logout forgets them.
//   - SetAPIKey stores the user's own model key, an empty key clears it.
//   - Translate and History need a session; a 401 from the server ends it.
type SessionService interface {
	Register(ctx context.Context, username, email string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	Username(ctx context.Context) (string, error)
	LoggedInAt(ctx context.Context) (time.Time, bool, error)
	Me(ctx context.Context) (*client.User, error)
	SetAPIKey(ctx context.Context, key string) error
	HasAPIKey(ctx context.Context) (bool, error)
	Translate(ctx context.Context, text, direction string) (*client.Translation, error)
	History(ctx context.Context, limit int) ([]client.HistoryRecord, error)
	Ping(ctx context.Context) error
}

type sessionService struct {
	api API
	db  *sql.DB
}

func NewSessionService(api API, db *sql.DB) SessionService {
	return &sessionService{api: api, db: db}
}

func (s *sessionService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

func (s *sessionService) Register(ctx context.Context, username, email string, password []byte) error {
	return s.api.Register(ctx, username, email, string(password))
}

func (s *sessionService) Login(ctx context.Context, username string, password []byte) error {
	token, err := s.api.Login(ctx, username, string(password))
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyAccessToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUsername, []byte(username))
	})
}

// Logout forgets the session but keeps the stored model key.
func (s *sessionService) Logout(ctx context.Context) error {
	return s.getMetadataRepo().Delete(ctx, keyAccessToken, keyUsername)
}

func (s *sessionService) Username(ctx context.Context) (string, error) {
	token, err := s.getMetadataRepo().Get(ctx, keyAccessToken)
	if err != nil || token == nil {
		return "", err
	}
	name, err := s.getMetadataRepo().Get(ctx, keyUsername)
	return string(name), err
}

// LoggedInAt reports when the current token was stored.
func (s *sessionService) LoggedInAt(ctx context.Context) (time.Time, bool, error) {
	return s.getMetadataRepo().UpdatedAt(ctx, keyAccessToken)
}

func (s *sessionService) Me(ctx context.Context) (*client.User, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.api.Me(ctx, token)
	return u, s.endSessionOn401(ctx, err)
}

func (s *sessionService) SetAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return s.getMetadataRepo().Delete(ctx, keyModelAPIKey)
	}
	if !strings.HasPrefix(key, "sk-") {
		return ErrInvalidAPIKeyFormat
	}
	return s.getMetadataRepo().Set(ctx, keyModelAPIKey, []byte(key))
}

func (s *sessionService) HasAPIKey(ctx context.Context) (bool, error) {
	v, err := s.getMetadataRepo().Get(ctx, keyModelAPIKey)
	return v != nil, err
}

func (s *sessionService) Translate(ctx context.Context, text, direction string) (*client.Translation, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	apiKey, err := s.getMetadataRepo().Get(ctx, keyModelAPIKey)
	if err != nil {
		return nil, err
	}

	res, err := s.api.Translate(ctx, token, text, direction, string(apiKey))
	return res, s.endSessionOn401(ctx, err)
}

func (s *sessionService) History(ctx context.Context, limit int) ([]client.HistoryRecord, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	recs, err := s.api.History(ctx, token, limit)
	return recs, s.endSessionOn401(ctx, err)
}

func (s *sessionService) Ping(ctx context.Context) error {
	return s.api.Ping(ctx)
}

func (s *sessionService) token(ctx context.Context) (string, error) {
	token, err := s.getMetadataRepo().Get(ctx, keyAccessToken)
	if err != nil {
		return "", err
	}
	if token == nil {
		return "", ErrNotLoggedIn
	}
	return string(token), nil
}

// endSessionOn401 drops the stored token when the server no longer accepts
// it, typically after expiry.
func (s *sessionService) endSessionOn401(ctx context.Context, err error) error {
	if err == nil || !errors.Is(err, client.ErrUnauthorized) {
		return err
	}
	if lerr := s.Logout(ctx); lerr != nil {
		return errors.Join(err, lerr)
	}
	return fmt.Errorf("%w: session expired, please log in again", ErrNotLoggedIn)
}
