// Package metadata is the client's local key/value store. The CLI keeps its
// session there: the bearer token, the logged-in username and the user's own
// model key.
package metadata

import (
	"context"
	"time"
)

type Repository interface {
	// Get returns nil, nil when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// UpdatedAt reports when key was last written; ok is false when absent.
	UpdatedAt(ctx context.Context, key string) (t time.Time, ok bool, err error)
	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
