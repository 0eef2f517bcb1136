package tokenstore

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/jrsteele09/dept-console/internal/errors"
	"github.com/redis/go-redis/v9"
)

var _ Repo = (*RedisRepo)(nil)

// RedisRepo keeps the token under "<prefix>:token" with no expiry. The entry
// lives until logout or rejection.
type RedisRepo struct {
	rdb    redis.UniversalClient
	prefix string
	owned  bool
}

func NewRedis(rdb redis.UniversalClient, prefix string) *RedisRepo {
	return &RedisRepo{rdb: rdb, prefix: prefix}
}

// DialRedis connects to addr and checks the connection. The returned repo
// closes the client on Close.
func DialRedis(ctx context.Context, addr, password string, db int, prefix string) (*RedisRepo, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	r := NewRedis(rdb, prefix)
	r.owned = true
	return r, nil
}

func (r *RedisRepo) key() string {
	if r.prefix == "" {
		return TokenKey
	}
	return r.prefix + ":" + TokenKey
}

func (r *RedisRepo) Load(ctx context.Context) (string, error) {
	token, err := r.rdb.Get(ctx, r.key()).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperrors.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return token, nil
}

func (r *RedisRepo) Save(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("token is required")
	}
	if err := r.rdb.Set(ctx, r.key(), token, 0).Err(); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (r *RedisRepo) Clear(ctx context.Context) error {
	if err := r.rdb.Del(ctx, r.key()).Err(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func (r *RedisRepo) Close() error {
	if !r.owned {
		return nil
	}
	return r.rdb.Close()
}
