package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/langgpt/internal/common"
	"github.com/dmitrijs2005/langgpt/internal/server/auth"
	"github.com/dmitrijs2005/langgpt/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T, rm *fakeRepoManager, validity time.Duration) *UserService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	cfg := &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: validity,
	}
	return NewUserService(db, rm, cfg)
}

func TestRegister_Success(t *testing.T) {
	rm := newFakeRepoManager()
	s := newUserService(t, rm, time.Hour)

	u, err := s.Register(context.Background(), "alice", "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "alice", u.UserName)
	assert.NotEqual(t, "pw", u.PasswordHash)
	assert.True(t, auth.CheckPassword(u.PasswordHash, "pw"))
}

func TestRegister_Duplicate(t *testing.T) {
	rm := newFakeRepoManager()
	s := newUserService(t, rm, time.Hour)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	_, err = s.Register(ctx, "alice", "other@example.com", "pw")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.ErrorIs(t, err, common.ErrUsernameTaken)

	_, err = s.Register(ctx, "bob", "alice@example.com", "pw")
	assert.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	s := newUserService(t, newFakeRepoManager(), time.Hour)
	ctx := context.Background()

	cases := [][3]string{
		{"", "a@example.com", "pw"},
		{"alice", "", "pw"},
		{"alice", "a@example.com", ""},
		{"alice", "a@example.com", strings.Repeat("x", 73)},
	}
	for _, c := range cases {
		_, err := s.Register(ctx, c[0], c[1], c[2])
		assert.ErrorIs(t, err, common.ErrorValidation, c)
	}
}

func TestAuthenticate(t *testing.T) {
	rm := newFakeRepoManager()
	s := newUserService(t, rm, time.Hour)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	u, err := s.Authenticate(ctx, "alice", "pw")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "alice", u.UserName)

	u, err = s.Authenticate(ctx, "alice", "wrong")
	assert.NoError(t, err)
	assert.Nil(t, u)

	u, err = s.Authenticate(ctx, "nobody", "pw")
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestAuthenticate_StoreError(t *testing.T) {
	rm := newFakeRepoManager()
	rm.u.getErr = errBoom{}
	s := newUserService(t, rm, time.Hour)

	_, err := s.Authenticate(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestLoginAndValidateToken(t *testing.T) {
	rm := newFakeRepoManager()
	s := newUserService(t, rm, time.Hour)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	token, err := s.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	u, err := s.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.UserName)

	_, err = s.Login(ctx, "alice", "nope")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestValidateToken_Expired(t *testing.T) {
	rm := newFakeRepoManager()
	s := newUserService(t, rm, time.Hour)
	ctx := context.Background()

	u, err := s.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	s.accessTokenValidityDuration = -time.Minute
	token, err := s.IssueToken(u)
	require.NoError(t, err)

	_, err = s.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestValidateToken_Invalid(t *testing.T) {
	rm := newFakeRepoManager()
	s := newUserService(t, rm, time.Hour)
	ctx := context.Background()

	_, err := s.ValidateToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	other := newUserService(t, rm, time.Hour)
	other.jwtSecret = []byte("different")
	u, err := s.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)
	token, err := other.IssueToken(u)
	require.NoError(t, err)
	_, err = s.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestValidateToken_UnknownUser(t *testing.T) {
	rm := newFakeRepoManager()
	s := newUserService(t, rm, time.Hour)

	token, err := auth.GenerateToken("ghost", s.jwtSecret, time.Hour)
	require.NoError(t, err)

	_, err = s.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}
