package logger

import (
	"github.com/redhat-appstudio/appconfig/internal/config"
)

// FromConfig derives the logger configuration from the application config.
// Production writes JSON, development writes colored console output.
func FromConfig(cfg *config.Config) *Config {
	loggerConfig := DefaultConfig()

	loggerConfig.Level = cfg.Severity()

	if cfg.Env().IsProduction() {
		loggerConfig.Format = FormatJSON
	} else {
		loggerConfig.Format = FormatConsole
	}

	if cfg.Logging.Output != "" {
		loggerConfig.OutputPath = cfg.Logging.Output
	}
	if cfg.Logging.MaxSizeMB > 0 {
		loggerConfig.MaxSizeMB = cfg.Logging.MaxSizeMB
	}
	if cfg.Logging.MaxBackups > 0 {
		loggerConfig.MaxBackups = cfg.Logging.MaxBackups
	}
	if cfg.Logging.MaxAgeDays > 0 {
		loggerConfig.MaxAgeDays = cfg.Logging.MaxAgeDays
	}
	loggerConfig.Compress = cfg.Logging.Compress

	return loggerConfig
}

func InitFromConfig(cfg *config.Config) error {
	loggerConfig := FromConfig(cfg)
	return Init(loggerConfig)
}
