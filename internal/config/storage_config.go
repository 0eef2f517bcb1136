package config

import "path/filepath"

const (
	TokenStoreSQLite = "sqlite"
	TokenStoreRedis  = "redis"
	TokenStoreMemory = "memory"
)

type Storage struct{}

var _ StorageConfig = Storage{}

func (Storage) GetTokenStore() string {
	return GetEnv("TOKEN_STORE", TokenStoreSQLite)
}

func (Storage) GetDataFolder() string {
	return GetEnv("FOLDER", "./data")
}

// SQLitePath is the token database file inside the data folder.
func (s Storage) GetSQLitePath() string {
	return filepath.Join(s.GetDataFolder(), "console.db")
}

func (Storage) GetRedisAddr() string {
	return GetEnv("REDIS_ADDR", "localhost:6379")
}

func (Storage) GetRedisPassword() string {
	return GetEnv("REDIS_PASSWORD", "")
}

func (Storage) GetRedisDB() int {
	return GetEnvInt("REDIS_DB", 0)
}

func (Storage) GetTokenKeyPrefix() string {
	return GetEnv("TOKEN_KEY_PREFIX", "dept-console")
}

func (Storage) GetKeepTokenOnTransportFailure() bool {
	return GetEnvBool("KEEP_TOKEN_ON_TRANSPORT_FAILURE", false)
}
