package storage

import "time"

// Snapshot is the read-only view of the effective configuration published
// for sibling processes.
type Snapshot struct {
	Environment string         `json:"environment"`
	LogLevel    string         `json:"log_level"`
	LogLevels   map[string]int `json:"log_levels"`
	Version     string         `json:"version"`
	PublishedAt time.Time      `json:"published_at"`
}

// RedisConfig holds Redis-specific configuration settings.
type RedisConfig struct {
	// Whether Redis storage is enabled (true/false)
	Enabled bool

	// Redis server address (e.g., "localhost:6379")
	Address string

	// Redis password for authentication
	Password string

	// Redis database number (0-15)
	Database int

	// Key prefix for all Redis keys (e.g., "appconfig")
	KeyPrefix string
}
