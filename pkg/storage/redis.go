package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redhat-appstudio/appconfig/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// ErrSnapshotNotFound is returned when no snapshot has been published yet.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// RedisClient publishes and reads configuration snapshots.
type RedisClient struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(config RedisConfig) (*RedisClient, error) {
	if !config.Enabled {
		return nil, fmt.Errorf("redis storage is disabled")
	}

	if config.Address == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	redis.SetLogger(logger.NewRedisLogger())

	rdb := redis.NewClient(&redis.Options{
		Addr:         config.Address,
		Password:     config.Password,
		DB:           config.Database,
		PoolSize:     4,
		MinIdleConns: 1,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Infof("Redis storage client connected successfully to %s", config.Address)

	return newRedisClient(rdb, config.KeyPrefix), nil
}

func newRedisClient(client redis.UniversalClient, keyPrefix string) *RedisClient {
	return &RedisClient{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Close closes the Redis connection.
func (r *RedisClient) Close() error {
	return r.client.Close()
}

// buildKey joins the prefix and parts with ':'
func (r *RedisClient) buildKey(parts ...string) string {
	var builder strings.Builder
	builder.WriteString(r.keyPrefix)
	for _, part := range parts {
		builder.WriteByte(':')
		builder.WriteString(part)
	}
	return builder.String()
}

// SnapshotKey is the key the snapshot is stored under.
func (r *RedisClient) SnapshotKey() string {
	return r.buildKey("snapshot")
}

// PublishSnapshot stores snap without expiry, replacing any previous one.
func (r *RedisClient) PublishSnapshot(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := r.client.Set(ctx, r.SnapshotKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}

	logger.Debugf("Published configuration snapshot to %s (environment: %s, level: %s)", r.SnapshotKey(), snap.Environment, snap.LogLevel)
	return nil
}

// GetSnapshot reads the last published snapshot.
func (r *RedisClient) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	data, err := r.client.Get(ctx, r.SnapshotKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snap, nil
}
