package logger

import (
	"os"

	"github.com/redhat-appstudio/appconfig/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Global logger instances for application-wide use
var (
	// Logger is the main Zap logger instance for structured logging
	Logger *zap.Logger
	// Sugar is the sugared logger for convenient printf-style logging
	Sugar *zap.SugaredLogger
)

// Output formats
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config holds configuration for the logger system
type Config struct {
	Level      config.Severity
	Format     string
	OutputPath string

	// Rotation settings, used only when OutputPath is a file
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultConfig returns a default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:      config.LevelInfo,
		Format:     FormatConsole,
		OutputPath: "stdout",
		MaxSizeMB:  100,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

// ZapLevel maps a severity onto the zap level that admits it.
// Values between table entries round down; CRITICAL maps to dpanic.
func ZapLevel(sev config.Severity) zapcore.Level {
	switch {
	case sev >= config.LevelCritical:
		return zapcore.DPanicLevel
	case sev >= config.LevelError:
		return zapcore.ErrorLevel
	case sev >= config.LevelWarning:
		return zapcore.WarnLevel
	case sev >= config.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Init initializes the global logger with the provided configuration
func Init(cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	l, err := New(cfg)
	if err != nil {
		return err
	}

	Logger = l
	Sugar = Logger.Sugar()
	return nil
}

// New builds a logger from cfg without touching the globals.
func New(cfg *Config) (*zap.Logger, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Format != FormatJSON {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}

	var encoder zapcore.Encoder
	switch cfg.Format {
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	output, err := openOutput(cfg)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, output, ZapLevel(cfg.Level))
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

func openOutput(cfg *Config) (zapcore.WriteSyncer, error) {
	switch cfg.OutputPath {
	case "", "stdout":
		return zapcore.AddSync(os.Stdout), nil
	case "stderr":
		return zapcore.AddSync(os.Stderr), nil
	}

	// Fail early on unwritable paths; lumberjack would only report on first write.
	file, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	file.Close()

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.OutputPath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}), nil
}

// Sync flushes buffered log entries.
func Sync() error {
	if Logger != nil {
		return Logger.Sync()
	}
	return nil
}

func Debug(msg string, fields ...zap.Field) {
	if Logger != nil {
		Logger.WithOptions(zap.AddCallerSkip(1)).Debug(msg, fields...)
	}
}

func Info(msg string, fields ...zap.Field) {
	if Logger != nil {
		Logger.WithOptions(zap.AddCallerSkip(1)).Info(msg, fields...)
	}
}

func Warn(msg string, fields ...zap.Field) {
	if Logger != nil {
		Logger.WithOptions(zap.AddCallerSkip(1)).Warn(msg, fields...)
	}
}

func Error(msg string, fields ...zap.Field) {
	if Logger != nil {
		Logger.WithOptions(zap.AddCallerSkip(1)).Error(msg, fields...)
	}
}

// Critical logs at the CRITICAL severity. The logger is never built in
// development mode, so this does not panic.
func Critical(msg string, fields ...zap.Field) {
	if Logger != nil {
		Logger.WithOptions(zap.AddCallerSkip(1)).DPanic(msg, fields...)
	}
}

func Fatal(msg string, fields ...zap.Field) {
	if Logger != nil {
		Logger.WithOptions(zap.AddCallerSkip(1)).Fatal(msg, fields...)
	}
}

func Debugf(template string, args ...interface{}) {
	if Sugar != nil {
		Sugar.WithOptions(zap.AddCallerSkip(1)).Debugf(template, args...)
	}
}

func Infof(template string, args ...interface{}) {
	if Sugar != nil {
		Sugar.WithOptions(zap.AddCallerSkip(1)).Infof(template, args...)
	}
}

func Warnf(template string, args ...interface{}) {
	if Sugar != nil {
		Sugar.WithOptions(zap.AddCallerSkip(1)).Warnf(template, args...)
	}
}

func Errorf(template string, args ...interface{}) {
	if Sugar != nil {
		Sugar.WithOptions(zap.AddCallerSkip(1)).Errorf(template, args...)
	}
}

func Criticalf(template string, args ...interface{}) {
	if Sugar != nil {
		Sugar.WithOptions(zap.AddCallerSkip(1)).DPanicf(template, args...)
	}
}

func Fatalf(template string, args ...interface{}) {
	if Sugar != nil {
		Sugar.WithOptions(zap.AddCallerSkip(1)).Fatalf(template, args...)
	}
}
