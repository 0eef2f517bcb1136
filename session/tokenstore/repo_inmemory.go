package tokenstore

import (
	"context"
	"fmt"
	"sync"

	apperrors "github.com/jrsteele09/dept-console/internal/errors"
)

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryRepo keeps the token for the life of the process only.
type InMemoryRepo struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		values: make(map[string]string),
	}
}

func (r *InMemoryRepo) Load(_ context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.values[TokenKey]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return token, nil
}

func (r *InMemoryRepo) Save(_ context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("token is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[TokenKey] = token
	return nil
}

func (r *InMemoryRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, TokenKey)
	return nil
}

func (r *InMemoryRepo) Close() error {
	return nil
}
