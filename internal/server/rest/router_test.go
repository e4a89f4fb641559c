package rest

import (
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/dmitrijs2005/langgpt/internal/server/config"
	"github.com/dmitrijs2005/langgpt/internal/server/llm"
	"github.com/dmitrijs2005/langgpt/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	e := newTestEnv(t, nil)

	resp := e.do(t, http.MethodGet, "/health", "", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "OK", string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRegister(t *testing.T) {
	e := newTestEnv(t, nil)

	resp := e.do(t, http.MethodPost, "/register", "", registerRequest{Username: "alice", Email: "a@example.com", Password: "pw"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User registered successfully", decode[messageResponse](t, resp).Message)

	resp = e.do(t, http.MethodPost, "/register", "", registerRequest{Username: "alice", Email: "b@example.com", Password: "pw"}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Username already registered", decode[errorBody](t, resp).Detail)

	resp = e.do(t, http.MethodPost, "/register", "", registerRequest{Username: "", Email: "c@example.com", Password: "pw"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegister_InvalidJSON(t *testing.T) {
	e := newTestEnv(t, nil)

	resp := e.do(t, http.MethodPost, "/register", "", "not an object", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestToken(t *testing.T) {
	e := newTestEnv(t, nil)
	e.register(t, "alice")

	resp, err := http.PostForm(e.srv.URL+"/token", url.Values{"username": {"alice"}, "password": {"pw"}})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tok := decode[tokenResponse](t, resp)
	assert.NotEmpty(t, tok.AccessToken)
	assert.Equal(t, "bearer", tok.TokenType)

	bad, err := http.PostForm(e.srv.URL+"/token", url.Values{"username": {"alice"}, "password": {"nope"}})
	require.NoError(t, err)
	defer bad.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, bad.StatusCode)
	assert.Equal(t, "Bearer", bad.Header.Get("WWW-Authenticate"))
	assert.Equal(t, "Incorrect username or password", decode[errorBody](t, bad).Detail)
}

func TestLoginJSON(t *testing.T) {
	e := newTestEnv(t, nil)
	e.register(t, "alice")

	resp := e.do(t, http.MethodPost, "/login", "", loginRequest{Username: "alice", Password: "pw"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, decode[tokenResponse](t, resp).AccessToken)

	resp = e.do(t, http.MethodPost, "/login", "", loginRequest{Username: "ghost", Password: "pw"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMe(t *testing.T) {
	e := newTestEnv(t, nil)
	e.register(t, "alice")
	token := e.login(t, "alice")

	resp := e.do(t, http.MethodGet, "/api/me", token, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[meResponse](t, resp)
	assert.Equal(t, "alice", me.Username)
	assert.Equal(t, "alice@example.com", me.Email)
	assert.Equal(t, int64(1), me.ID)
}

func TestMe_Unauthorized(t *testing.T) {
	e := newTestEnv(t, nil)

	resp := e.do(t, http.MethodGet, "/api/me", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))

	resp = e.do(t, http.MethodGet, "/api/me", "garbage", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid authentication credentials", decode[errorBody](t, resp).Detail)
}

func TestTranslate_Success(t *testing.T) {
	e := newTestEnv(t, nil)
	e.register(t, "alice")
	token := e.login(t, "alice")

	e.mock.ExpectBegin()
	e.mock.ExpectCommit()

	resp := e.do(t, http.MethodPost, "/translate", token, translateRequest{Text: "안녕하세요", Direction: "ko2ja"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[translateResponse](t, resp)
	assert.Equal(t, "안녕하세요", out.Original)
	assert.Equal(t, "draft", out.Translated)
	assert.Equal(t, "reviewed", out.Reviewed)

	require.Len(t, e.store.records, 1)
	assert.Equal(t, int64(1), e.store.records[0].UserID)
	assert.Equal(t, "안녕하세요", e.store.records[0].OriginalText)
	require.NoError(t, e.mock.ExpectationsWereMet())
}

func TestTranslate_InvalidDirection(t *testing.T) {
	e := newTestEnv(t, nil)
	e.register(t, "alice")
	token := e.login(t, "alice")

	resp := e.do(t, http.MethodPost, "/translate", token, translateRequest{Text: "hi", Direction: "en2ja"}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid translation direction", decode[errorBody](t, resp).Detail)
	assert.Zero(t, e.model.calls)
	assert.Empty(t, e.store.records)
}

func TestTranslate_Unauthorized(t *testing.T) {
	e := newTestEnv(t, nil)

	resp := e.do(t, http.MethodPost, "/translate", "", translateRequest{Text: "hi"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, e.model.calls)
}

func TestTranslate_APIKeyRequired(t *testing.T) {
	e := newTestEnv(t, func(c *config.Config) { c.RequireClientAPIKey = true })
	e.register(t, "alice")
	token := e.login(t, "alice")

	resp := e.do(t, http.MethodPost, "/translate", token, translateRequest{Text: "hi"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	e.mock.ExpectBegin()
	e.mock.ExpectCommit()
	resp = e.do(t, http.MethodPost, "/translate", token, translateRequest{Text: "hi"}, map[string]string{"X-API-KEY": "sk-caller"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTranslate_DailyLimit(t *testing.T) {
	e := newTestEnv(t, func(c *config.Config) { c.DailyTranslationLimit = 1 })
	e.register(t, "alice")
	token := e.login(t, "alice")

	e.mock.ExpectBegin()
	e.mock.ExpectCommit()
	resp := e.do(t, http.MethodPost, "/translate", token, translateRequest{Text: "hi"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/translate", token, translateRequest{Text: "hi"}, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "Daily translation limit reached. Please try again tomorrow.", decode[errorBody](t, resp).Detail)
}

func TestTranslate_ModelFailureIsSanitized(t *testing.T) {
	e := newTestEnv(t, nil)
	e.register(t, "alice")
	token := e.login(t, "alice")
	e.model.err = &llm.ProviderError{Kind: llm.ErrInvalidAPIKey, StatusCode: 401, Message: "Incorrect API key provided: sk-caller-secret"}

	resp := e.do(t, http.MethodPost, "/translate", token, translateRequest{Text: "hi"}, map[string]string{"X-API-KEY": "sk-caller-secret"})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	detail := decode[errorBody](t, resp).Detail
	assert.Equal(t, "Translation failed: invalid API key", detail)
	assert.NotContains(t, detail, "sk-caller-secret")
	assert.Empty(t, e.store.records)
}

func TestHistory(t *testing.T) {
	e := newTestEnv(t, nil)
	e.register(t, "alice")
	e.register(t, "bob")
	token := e.login(t, "alice")

	for i := 0; i < 7; i++ {
		e.store.records = append(e.store.records, &models.TranslationRecord{ID: int64(i + 1), UserID: 1, OriginalText: "t"})
	}
	e.store.records = append(e.store.records, &models.TranslationRecord{ID: 8, UserID: 2, OriginalText: "bob"})

	resp := e.do(t, http.MethodGet, "/history?limit=5", token, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[[]models.TranslationRecord](t, resp)
	require.Len(t, got, 5)
	assert.Equal(t, int64(7), got[0].ID)
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i-1].ID, got[i].ID)
		assert.Equal(t, int64(1), got[i].UserID)
	}

	resp = e.do(t, http.MethodGet, "/history", token, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]models.TranslationRecord](t, resp), 7)

	resp = e.do(t, http.MethodGet, "/history?limit=abc", token, nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHistory_EmptyIsArray(t *testing.T) {
	e := newTestEnv(t, nil)
	e.register(t, "alice")
	token := e.login(t, "alice")

	resp := e.do(t, http.MethodGet, "/history", token, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `[]`, string(body))
}

func TestCORSPreflight(t *testing.T) {
	e := newTestEnv(t, func(c *config.Config) { c.AllowedOrigins = "http://localhost:3000" })

	req, err := http.NewRequest(http.MethodOptions, e.srv.URL+"/translate", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "X-API-KEY")

	req.Header.Set("Origin", "http://evil.example")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Empty(t, resp2.Header.Get("Access-Control-Allow-Origin"))
}
