package config

import "time"

type Config interface {
	EnvConfig
	CorsConfig
	APIConfig
	StorageConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
}

type APIConfig interface {
	GetAPIBaseURL() string
	GetAPITimeout() time.Duration
}

type StorageConfig interface {
	GetTokenStore() string
	GetDataFolder() string
	GetSQLitePath() string
	GetRedisAddr() string
	GetRedisPassword() string
	GetRedisDB() int
	GetTokenKeyPrefix() string
	GetKeepTokenOnTransportFailure() bool
}

type mainConfig struct {
	EnvVars
	Cors
	API
	Storage
}

func New() Config {
	return mainConfig{}
}
