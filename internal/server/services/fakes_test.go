package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/langgpt/internal/common"
	"github.com/dmitrijs2005/langgpt/internal/dbx"
	"github.com/dmitrijs2005/langgpt/internal/server/llm"
	"github.com/dmitrijs2005/langgpt/internal/server/models"
	historyrepo "github.com/dmitrijs2005/langgpt/internal/server/repositories/history"
	usersrepo "github.com/dmitrijs2005/langgpt/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

type fakeUsersRepo struct {
	mu     sync.Mutex
	nextID int64
	byName map[string]*models.User
	getErr error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byName: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byName[u.UserName]; ok {
		return nil, common.ErrUsernameTaken
	}
	for _, existing := range f.byName {
		if existing.Email == u.Email {
			return nil, common.ErrEmailTaken
		}
	}
	f.nextID++
	stored := *u
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.byName[u.UserName] = &stored
	return &stored, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, userName string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

type fakeHistoryRepo struct {
	mu        sync.Mutex
	records   []*models.TranslationRecord
	createErr error
	countErr  error
	countOut  *int
}

func (f *fakeHistoryRepo) Create(ctx context.Context, r *models.TranslationRecord) (*models.TranslationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *r
	stored.ID = int64(len(f.records) + 1)
	stored.CreatedAt = time.Now()
	f.records = append(f.records, &stored)
	return &stored, nil
}

func (f *fakeHistoryRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]*models.TranslationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.TranslationRecord{}
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeHistoryRepo) CountSince(ctx context.Context, userID int64, since time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	if f.countOut != nil {
		return *f.countOut, nil
	}
	n := 0
	for _, r := range f.records {
		if r.UserID == userID && !r.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	h *fakeHistoryRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: newFakeUsersRepo(), h: &fakeHistoryRepo{}}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error          { return nil }
func (m *fakeRepoManager) SchemaVersion(context.Context, *sql.DB) (int64, error) { return 2, nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository                { return m.u }
func (m *fakeRepoManager) History(db dbx.DBTX) historyrepo.Repository            { return m.h }

// stubProvider returns canned completions and remembers which key was asked for.
type stubProvider struct {
	replies []string
	err     error
	keys    []string
	calls   int
}

func (p *stubProvider) ForKey(apiKey string) llm.Completer {
	p.keys = append(p.keys, apiKey)
	return p
}

func (p *stubProvider) Complete(ctx context.Context, prompt string) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.replies[(p.calls-1)%len(p.replies)], nil
}
