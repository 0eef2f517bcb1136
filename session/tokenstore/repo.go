// Package tokenstore persists the single session token across restarts of the
// console. There is exactly one entry, under TokenKey. Absence means there is
// no prior session to resume.
package tokenstore

import (
	"context"
)

// TokenKey is the name of the one durable entry.
const TokenKey = "token"

type Repo interface {
	// Load returns the stored token, or apperrors.ErrNotFound when none is stored.
	Load(ctx context.Context) (string, error)
	// Save stores token, replacing any previous value.
	Save(ctx context.Context, token string) error
	// Clear removes the entry. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
	Close() error
}
