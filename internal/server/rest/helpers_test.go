package rest

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/langgpt/internal/common"
	"github.com/dmitrijs2005/langgpt/internal/dbx"
	"github.com/dmitrijs2005/langgpt/internal/logging"
	"github.com/dmitrijs2005/langgpt/internal/server/config"
	"github.com/dmitrijs2005/langgpt/internal/server/llm"
	"github.com/dmitrijs2005/langgpt/internal/server/models"
	historyrepo "github.com/dmitrijs2005/langgpt/internal/server/repositories/history"
	usersrepo "github.com/dmitrijs2005/langgpt/internal/server/repositories/users"
	"github.com/dmitrijs2005/langgpt/internal/server/services"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu      sync.Mutex
	users   []*models.User
	records []*models.TranslationRecord
}

func (m *memStore) Create(ctx context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.users {
		if e.UserName == u.UserName {
			return nil, common.ErrUsernameTaken
		}
		if e.Email == u.Email {
			return nil, common.ErrEmailTaken
		}
	}
	c := *u
	c.ID = int64(len(m.users) + 1)
	m.users = append(m.users, &c)
	return &c, nil
}

func (m *memStore) GetByUsername(ctx context.Context, login string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.users {
		if e.UserName == login {
			return e, nil
		}
	}
	return nil, common.ErrorNotFound
}

type memHistory struct{ *memStore }

func (h memHistory) Create(ctx context.Context, r *models.TranslationRecord) (*models.TranslationRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c := *r
	c.ID = int64(len(h.records) + 1)
	c.CreatedAt = time.Now()
	h.records = append(h.records, &c)
	return &c, nil
}

func (h memHistory) ListByUser(ctx context.Context, userID int64, limit int) ([]*models.TranslationRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := []*models.TranslationRecord{}
	for i := len(h.records) - 1; i >= 0 && len(out) < limit; i-- {
		if h.records[i].UserID == userID {
			out = append(out, h.records[i])
		}
	}
	return out, nil
}

func (h memHistory) CountSince(ctx context.Context, userID int64, since time.Time) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.UserID == userID && !r.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type memRepoManager struct{ s *memStore }

func (m memRepoManager) RunMigrations(context.Context, *sql.DB) error          { return nil }
func (m memRepoManager) SchemaVersion(context.Context, *sql.DB) (int64, error) { return 2, nil }
func (m memRepoManager) Users(dbx.DBTX) usersrepo.Repository                   { return m.s }
func (m memRepoManager) History(dbx.DBTX) historyrepo.Repository               { return memHistory{m.s} }

type countingModel struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (c *countingModel) ForKey(string) llm.Completer { return c }

func (c *countingModel) Complete(ctx context.Context, prompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	if strings.Contains(prompt, "초벌 번역") {
		return "reviewed\n", nil
	}
	return " draft ", nil
}

type testEnv struct {
	srv   *httptest.Server
	store *memStore
	model *countingModel
	mock  sqlmock.Sqlmock
}

func newTestEnv(t *testing.T, mutate func(*config.Config)) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	cfg.LLMAPIKey = "sk-server"
	if mutate != nil {
		mutate(cfg)
	}

	store := &memStore{}
	rm := memRepoManager{s: store}
	model := &countingModel{}
	logger := logging.NewDiscardLogger()

	users := services.NewUserService(db, rm, cfg)
	translations := services.NewTranslationService(db, rm, model, logger, cfg)

	srv := httptest.NewServer(NewRouter(users, translations, logger, cfg.AllowedOrigins))
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, store: store, model: model, mock: mock}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any, headers map[string]string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, e.srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (e *testEnv) register(t *testing.T, username string) {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/register", "", registerRequest{Username: username, Email: username + "@example.com", Password: "pw"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func (e *testEnv) login(t *testing.T, username string) string {
	t.Helper()
	form := url.Values{"username": {username}, "password": {"pw"}}
	resp, err := http.PostForm(e.srv.URL+"/token", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tok tokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tok))
	return tok.AccessToken
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}
