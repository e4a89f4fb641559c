package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Options configures Client.
type Options struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Client is an OpenAI-compatible chat-completions Completer.
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	client      *http.Client
}

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://api.openai.com/v1"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 120 * time.Second
	}
	return &Client{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		apiKey:      opts.APIKey,
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
		client:      &http.Client{Timeout: opts.Timeout},
	}
}

// ForKey returns a copy of c authorised with apiKey, sharing the HTTP client.
// An empty apiKey returns c itself.
func (c *Client) ForKey(apiKey string) Completer {
	if apiKey == "" {
		return c
	}
	clone := *c
	clone.apiKey = apiKey
	return &clone
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

// ProviderError carries the provider's status and message. Message is
// already redacted. Unwrap yields the failure category.
type ProviderError struct {
	Kind       error
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%v: status %d: %s", e.Kind, e.StatusCode, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Kind }

// Complete sends prompt as a single user message and returns the first
// choice's content untrimmed.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", &ProviderError{Kind: ErrInvalidAPIKey, Message: "no API key configured"}
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &ProviderError{Kind: ErrUpstream, Message: c.redact(err.Error())}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.statusError(resp)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &ProviderError{Kind: ErrUpstream, StatusCode: resp.StatusCode, Message: "failed to decode response: " + err.Error()}
	}
	if len(out.Choices) == 0 {
		return "", &ProviderError{Kind: ErrUpstream, StatusCode: resp.StatusCode, Message: "empty response from API"}
	}

	return out.Choices[0].Message.Content, nil
}

func (c *Client) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var er errorResponse
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &er) == nil && er.Error.Message != "" {
		msg = er.Error.Message
	}

	return &ProviderError{
		Kind:       classify(resp.StatusCode, er),
		StatusCode: resp.StatusCode,
		Message:    c.redact(msg),
	}
}

func classify(status int, er errorResponse) error {
	code := strings.ToLower(fmt.Sprint(er.Error.Code))
	typ := strings.ToLower(er.Error.Type)

	switch {
	case status == http.StatusUnauthorized || code == "invalid_api_key":
		return ErrInvalidAPIKey
	case code == "insufficient_quota" || typ == "insufficient_quota" || status == http.StatusPaymentRequired:
		return ErrQuotaExceeded
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return ErrUpstream
	}
}

func (c *Client) redact(s string) string {
	return Redact(s, c.apiKey)
}

var _ Provider = (*Client)(nil)
