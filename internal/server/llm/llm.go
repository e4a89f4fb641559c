// Package llm talks to the external language model. The rest of the server
// only sees the Completer capability: a filled prompt in, text out.
package llm

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// Completer turns a filled prompt into model output.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Provider hands out a Completer authorised with apiKey. An empty apiKey
// means the provider's own configured key.
type Provider interface {
	ForKey(apiKey string) Completer
}

// Failure categories. Every error returned by Client.Complete matches
// exactly one of them via errors.Is.
var (
	ErrInvalidAPIKey = errors.New("invalid API key")
	ErrRateLimited   = errors.New("rate limit exceeded")
	ErrQuotaExceeded = errors.New("quota exceeded")
	ErrUpstream      = errors.New("model service error")
)

// Category maps err onto one of the failure categories. Errors from other
// sources collapse into ErrUpstream.
func Category(err error) error {
	for _, c := range []error{ErrInvalidAPIKey, ErrRateLimited, ErrQuotaExceeded} {
		if errors.Is(err, c) {
			return c
		}
	}
	return ErrUpstream
}

var keyPattern = regexp.MustCompile(`sk-[A-Za-z0-9_\-*]{6,}`)

// Redact masks anything that looks like an API key in s, plus each of the
// given secrets verbatim.
func Redact(s string, secrets ...string) string {
	for _, secret := range secrets {
		if secret != "" {
			s = strings.ReplaceAll(s, secret, "[REDACTED]")
		}
	}
	return keyPattern.ReplaceAllString(s, "sk-[REDACTED]")
}
