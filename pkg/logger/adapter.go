package logger

import (
	"context"

	"go.uber.org/zap"
)

// RedisLogger forwards go-redis internal messages to the global logger.
type RedisLogger struct{}

func NewRedisLogger() *RedisLogger {
	return &RedisLogger{}
}

// Printf satisfies the go-redis logging interface. go-redis only logs
// connection trouble, so entries are written at warn.
func (r *RedisLogger) Printf(_ context.Context, format string, args ...interface{}) {
	if Sugar != nil {
		Sugar.WithOptions(zap.AddCallerSkip(1)).Warnf("redis: "+format, args...)
	}
}
