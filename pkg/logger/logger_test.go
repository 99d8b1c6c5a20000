package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/redhat-appstudio/appconfig/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// useObserver swaps the globals for an in-memory core and restores them afterwards.
func useObserver(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	prevLogger, prevSugar := Logger, Sugar
	t.Cleanup(func() {
		Logger, Sugar = prevLogger, prevSugar
	})

	core, logs := observer.New(level)
	Logger = zap.New(core)
	Sugar = Logger.Sugar()
	return logs
}

func TestZapLevel(t *testing.T) {
	tests := []struct {
		name     string
		severity config.Severity
		expected zapcore.Level
	}{
		{name: "debug", severity: config.LevelDebug, expected: zapcore.DebugLevel},
		{name: "info", severity: config.LevelInfo, expected: zapcore.InfoLevel},
		{name: "warning", severity: config.LevelWarning, expected: zapcore.WarnLevel},
		{name: "error", severity: config.LevelError, expected: zapcore.ErrorLevel},
		{name: "critical", severity: config.LevelCritical, expected: zapcore.DPanicLevel},
		{name: "below debug", severity: 0, expected: zapcore.DebugLevel},
		{name: "between info and warning", severity: 25, expected: zapcore.InfoLevel},
		{name: "above critical", severity: 90, expected: zapcore.DPanicLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ZapLevel(tt.severity))
		})
	}
}

func TestFromConfig(t *testing.T) {
	tests := []struct {
		name           string
		cfg            *config.Config
		expectedLevel  config.Severity
		expectedFormat string
		expectedOutput string
	}{
		{
			name:           "development defaults",
			cfg:            &config.Config{Environment: "development", LogLevel: "INFO"},
			expectedLevel:  config.LevelInfo,
			expectedFormat: FormatConsole,
			expectedOutput: "stdout",
		},
		{
			name:           "production uses json",
			cfg:            &config.Config{Environment: "production", LogLevel: "warning"},
			expectedLevel:  config.LevelWarning,
			expectedFormat: FormatJSON,
			expectedOutput: "stdout",
		},
		{
			name: "file output",
			cfg: &config.Config{
				Environment: "production",
				LogLevel:    "CRITICAL",
				Logging:     config.LoggingConfig{Output: "/tmp/app.log", MaxSizeMB: 5},
			},
			expectedLevel:  config.LevelCritical,
			expectedFormat: FormatJSON,
			expectedOutput: "/tmp/app.log",
		},
		{
			name:           "unknown level falls back to info",
			cfg:            &config.Config{Environment: "development", LogLevel: "TRACE"},
			expectedLevel:  config.LevelInfo,
			expectedFormat: FormatConsole,
			expectedOutput: "stdout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := FromConfig(tt.cfg)
			assert.Equal(t, tt.expectedLevel, lc.Level)
			assert.Equal(t, tt.expectedFormat, lc.Format)
			assert.Equal(t, tt.expectedOutput, lc.OutputPath)
		})
	}
}

func TestInit_Threshold(t *testing.T) {
	prevLogger, prevSugar := Logger, Sugar
	t.Cleanup(func() {
		Logger, Sugar = prevLogger, prevSugar
	})

	require.NoError(t, Init(&Config{Level: config.LevelWarning, Format: FormatJSON, OutputPath: "stderr"}))
	require.NotNil(t, Logger)
	require.NotNil(t, Sugar)

	core := Logger.Core()
	assert.False(t, core.Enabled(zapcore.InfoLevel))
	assert.True(t, core.Enabled(zapcore.WarnLevel))
	assert.True(t, core.Enabled(zapcore.DPanicLevel))
}

func TestInit_FileOutput(t *testing.T) {
	prevLogger, prevSugar := Logger, Sugar
	t.Cleanup(func() {
		Logger, Sugar = prevLogger, prevSugar
	})

	path := filepath.Join(t.TempDir(), "app.log")
	cfg := DefaultConfig()
	cfg.Format = FormatJSON
	cfg.OutputPath = path

	require.NoError(t, Init(cfg))
	Info("hello from file")
	Debug("filtered out")
	Critical("critical entry does not panic")
	require.NoError(t, Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from file")
	assert.Contains(t, string(data), "critical entry does not panic")
	assert.NotContains(t, string(data), "filtered out")
}

func TestInit_UnwritablePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputPath = filepath.Join(t.TempDir(), "missing-dir", "app.log")

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestHelpers_WriteToGlobalLogger(t *testing.T) {
	logs := useObserver(t, zapcore.DebugLevel)

	Debugf("debug %d", 1)
	Infof("info %s", "two")
	Warn("warn three")
	Errorf("error %v", 4)
	Criticalf("critical %d", 5)

	entries := logs.AllUntimed()
	require.Len(t, entries, 5)
	assert.Equal(t, "debug 1", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "error 4", entries[3].Message)
	assert.Equal(t, zapcore.DPanicLevel, entries[4].Level)
}

func TestHelpers_NilLogger(t *testing.T) {
	prevLogger, prevSugar := Logger, Sugar
	t.Cleanup(func() {
		Logger, Sugar = prevLogger, prevSugar
	})
	Logger, Sugar = nil, nil

	assert.NotPanics(t, func() {
		Info("dropped")
		Warnf("dropped %d", 1)
		NewRedisLogger().Printf(context.Background(), "dropped")
		assert.NoError(t, Sync())
	})
}

func TestRedisLogger(t *testing.T) {
	logs := useObserver(t, zapcore.DebugLevel)

	NewRedisLogger().Printf(context.Background(), "connection pool: %s", "retrying")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "redis: connection pool: retrying", entries[0].Message)
}
