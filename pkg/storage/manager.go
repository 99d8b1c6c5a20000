package storage

import (
	"fmt"
	"time"

	"github.com/redhat-appstudio/appconfig/internal/config"
	"github.com/redhat-appstudio/appconfig/internal/version"
)

// NewManager creates a Redis client from the application's storage settings.
func NewManager(cfg config.StorageConfig) (*RedisClient, error) {
	if !cfg.Redis.Enabled {
		return nil, fmt.Errorf("redis storage is required but not enabled")
	}

	return NewRedisClient(RedisConfig{
		Enabled:   cfg.Redis.Enabled,
		Address:   cfg.Redis.Address,
		Password:  cfg.Redis.Password,
		Database:  cfg.Redis.Database,
		KeyPrefix: cfg.Redis.KeyPrefix,
	})
}

// BuildSnapshot captures the severity table and the effective environment
// and threshold of cfg.
func BuildSnapshot(cfg *config.Config, now time.Time) *Snapshot {
	levels := make(map[string]int, len(config.LevelNames()))
	for name, sev := range config.SrcLogLevels() {
		levels[name] = int(sev)
	}

	return &Snapshot{
		Environment: cfg.Env().String(),
		LogLevel:    cfg.Severity().String(),
		LogLevels:   levels,
		Version:     version.GetShortVersion(),
		PublishedAt: now.UTC(),
	}
}
