package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/langgpt/internal/common"
)

type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Translation struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	Reviewed   string `json:"reviewed"`
}

type HistoryRecord struct {
	ID             int64     `json:"id"`
	OriginalText   string    `json:"original_text"`
	TranslatedText string    `json:"translated_text"`
	ReviewedText   string    `json:"reviewed_text"`
	CreatedAt      time.Time `json:"created_at"`
}

func (c *APIClient) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/register", "", nil, body, nil)
}

// Login exchanges credentials for a bearer token.
func (c *APIClient) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", "", nil, body, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

func (c *APIClient) Me(ctx context.Context, token string) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/me", token, nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Translate runs one translation. apiKey, when set, is sent in X-API-KEY so
// the server bills the caller's own model account.
func (c *APIClient) Translate(ctx context.Context, token, text, direction, apiKey string) (*Translation, error) {
	var headers http.Header
	if apiKey != "" {
		headers = http.Header{common.APIKeyHeaderName: {apiKey}}
	}

	var out Translation
	body := map[string]string{"text": text, "direction": direction}
	if err := c.do(ctx, http.MethodPost, "/translate", token, headers, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) History(ctx context.Context, token string, limit int) ([]HistoryRecord, error) {
	path := "/history"
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}

	var out []HistoryRecord
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping reports whether the server answers its health check.
func (c *APIClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health returned %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

func (c *APIClient) do(ctx context.Context, method, path, token string, headers http.Header, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb struct {
			Detail string `json:"detail"`
		}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&eb)
		return &APIError{StatusCode: resp.StatusCode, Detail: eb.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
