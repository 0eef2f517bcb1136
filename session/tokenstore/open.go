package tokenstore

import (
	"context"
	"fmt"

	"github.com/jrsteele09/dept-console/internal/config"
)

// Open builds the Repo selected by cfg.GetTokenStore().
func Open(ctx context.Context, cfg config.StorageConfig) (Repo, error) {
	switch cfg.GetTokenStore() {
	case config.TokenStoreSQLite:
		return NewSQLite(cfg.GetSQLitePath())
	case config.TokenStoreRedis:
		return DialRedis(ctx, cfg.GetRedisAddr(), cfg.GetRedisPassword(), cfg.GetRedisDB(), cfg.GetTokenKeyPrefix())
	case config.TokenStoreMemory:
		return NewInMemoryRepo(), nil
	default:
		return nil, fmt.Errorf("unknown token store %q", cfg.GetTokenStore())
	}
}
