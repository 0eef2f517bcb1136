package tokenstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jrsteele09/dept-console/internal/config"
	apperrors "github.com/jrsteele09/dept-console/internal/errors"
	"github.com/jrsteele09/dept-console/session/tokenstore"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRedisRepo(t *testing.T) tokenstore.Repo {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return tokenstore.NewRedis(rdb, "test")
}

func newSQLiteRepo(t *testing.T) tokenstore.Repo {
	t.Helper()
	repo, err := tokenstore.NewSQLite(filepath.Join(t.TempDir(), "nested", "console.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestRepos(t *testing.T) {
	repos := map[string]func(t *testing.T) tokenstore.Repo{
		"memory": func(t *testing.T) tokenstore.Repo { return tokenstore.NewInMemoryRepo() },
		"sqlite": newSQLiteRepo,
		"redis":  newRedisRepo,
	}

	for name, newRepo := range repos {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)

			t.Run("empty store reports not found", func(t *testing.T) {
				_, err := repo.Load(ctx)
				require.ErrorIs(t, err, apperrors.ErrNotFound)
			})

			t.Run("save then load", func(t *testing.T) {
				require.NoError(t, repo.Save(ctx, "abc"))
				token, err := repo.Load(ctx)
				require.NoError(t, err)
				require.Equal(t, "abc", token)
			})

			t.Run("save replaces", func(t *testing.T) {
				require.NoError(t, repo.Save(ctx, "def"))
				token, err := repo.Load(ctx)
				require.NoError(t, err)
				require.Equal(t, "def", token)
			})

			t.Run("empty token rejected", func(t *testing.T) {
				require.Error(t, repo.Save(ctx, ""))
			})

			t.Run("clear is idempotent", func(t *testing.T) {
				require.NoError(t, repo.Clear(ctx))
				require.NoError(t, repo.Clear(ctx))
				_, err := repo.Load(ctx)
				require.ErrorIs(t, err, apperrors.ErrNotFound)
			})
		})
	}
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "console.db")

	first, err := tokenstore.NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "persisted"))
	require.NoError(t, first.Close())

	second, err := tokenstore.NewSQLite(path)
	require.NoError(t, err)
	defer second.Close()

	token, err := second.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "persisted", token)
}

func TestRedisKeyLayout(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	repo := tokenstore.NewRedis(rdb, "console")
	require.NoError(t, repo.Save(context.Background(), "abc"))

	got, err := mr.Get("console:token")
	require.NoError(t, err)
	require.Equal(t, "abc", got)
	require.Zero(t, mr.TTL("console:token"))
}

type storageConfig struct {
	config.Storage
	store string
	path  string
	addr  string
}

func (s storageConfig) GetTokenStore() string { return s.store }
func (s storageConfig) GetSQLitePath() string { return s.path }
func (s storageConfig) GetRedisAddr() string { return s.addr }

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		repo, err := tokenstore.Open(ctx, storageConfig{store: config.TokenStoreMemory})
		require.NoError(t, err)
		require.IsType(t, &tokenstore.InMemoryRepo{}, repo)
	})

	t.Run("sqlite", func(t *testing.T) {
		repo, err := tokenstore.Open(ctx, storageConfig{store: config.TokenStoreSQLite, path: filepath.Join(t.TempDir(), "c.db")})
		require.NoError(t, err)
		defer repo.Close()
		require.IsType(t, &tokenstore.SQLiteRepo{}, repo)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		repo, err := tokenstore.Open(ctx, storageConfig{store: config.TokenStoreRedis, addr: mr.Addr()})
		require.NoError(t, err)
		defer repo.Close()
		require.IsType(t, &tokenstore.RedisRepo{}, repo)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := tokenstore.Open(ctx, storageConfig{store: "etcd"})
		require.Error(t, err)
	})
}
