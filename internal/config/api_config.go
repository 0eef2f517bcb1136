package config

import (
	"strings"
	"time"
)

type API struct{}

var _ APIConfig = API{}

// GetAPIBaseURL returns the department API root without a trailing slash,
// e.g. "http://localhost:5000". Endpoint paths carry the /api prefix.
func (API) GetAPIBaseURL() string {
	return strings.TrimRight(GetEnv("API_BASE_URL", "http://localhost:5000"), "/")
}

// GetAPITimeout is zero unless API_TIMEOUT is set. Zero means requests wait
// for the API indefinitely.
func (API) GetAPITimeout() time.Duration {
	return GetEnvDuration("API_TIMEOUT", 0)
}
