// Package common defines shared constants and sentinel errors used across
// the LangGPT server layers. Callers should use errors.Is to match these
// values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Translation errors.
	ErrInvalidDirection   = errors.New("invalid translation direction")
	ErrAPIKeyRequired     = errors.New("api key required")
	ErrDailyLimitExceeded = errors.New("daily translation limit reached")
	ErrTranslationFailed  = errors.New("translation failed")
)

// Uniqueness violations reported by the user store. Both match
// ErrorAlreadyExists.
var (
	ErrUsernameTaken = fmt.Errorf("username %w", ErrorAlreadyExists)
	ErrEmailTaken    = fmt.Errorf("email %w", ErrorAlreadyExists)
)
