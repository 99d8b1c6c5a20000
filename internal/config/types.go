package config

// Config represents the main application configuration structure.
// It carries the server's own settings together with the environment mode
// and the log-level threshold taken from the severity table.
type Config struct {
	// HTTP server port (e.g., "3000")
	Port string

	// Application environment ("development" or "production")
	Environment string

	// Logging threshold, one of the severity table names (e.g., "INFO", "WARNING")
	LogLevel string

	// Log output and rotation settings
	Logging LoggingConfig

	// Snapshot publishing configuration
	Storage StorageConfig

	// Prometheus exposition configuration
	Metrics MetricsConfig
}

// ServerConfig represents server-related configuration settings.
// These can be overridden by environment variables and command-line flags.
type ServerConfig struct {
	// HTTP server port (e.g., "3000")
	Port string `yaml:"port"`

	// Application environment ("development" or "production")
	Environment string `yaml:"environment"`

	// Logging threshold (e.g., "DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL")
	LogLevel string `yaml:"log_level"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	// "stdout", "stderr" or a file path; files are rotated
	Output string `yaml:"output"`

	// Maximum size of a log file in megabytes before rotation
	MaxSizeMB int `yaml:"max_size_mb"`

	// Number of rotated files to keep
	MaxBackups int `yaml:"max_backups"`

	// Days to keep rotated files
	MaxAgeDays int `yaml:"max_age_days"`

	// Whether rotated files are gzip-compressed
	Compress bool `yaml:"compress"`
}

// StorageConfig holds configuration for snapshot storage.
type StorageConfig struct {
	// Redis storage configuration
	Redis RedisYAMLConfig `yaml:"redis"`
}

// RedisYAMLConfig represents Redis configuration from YAML files.
type RedisYAMLConfig struct {
	// Whether the configuration snapshot is published to Redis
	Enabled bool `yaml:"enabled"`

	// Redis server address (e.g., "localhost:6379")
	Address string `yaml:"address"`

	// Redis password for authentication
	Password string `yaml:"password"`

	// Redis database number (0-15)
	Database int `yaml:"database"`

	// Key prefix for all Redis keys (e.g., "appconfig")
	KeyPrefix string `yaml:"key_prefix"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool

	// HTTP path of the exposition endpoint (default "/metrics")
	Path string
}

// MetricsYAMLConfig mirrors MetricsConfig; a nil Enabled means "on".
type MetricsYAMLConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// YAMLConfig represents the structure of the YAML configuration file.
type YAMLConfig struct {
	// Server configuration settings
	Server ServerConfig `yaml:"server"`

	// Log output configuration
	Logging LoggingConfig `yaml:"logging"`

	// Storage configuration
	Storage StorageConfig `yaml:"storage"`

	// Metrics configuration
	Metrics MetricsYAMLConfig `yaml:"metrics"`
}

// envOverrides lists the environment variables that override YAML values.
type envOverrides struct {
	Port          string `env:"PORT"`
	Environment   string `env:"ENV"`
	LogLevel      string `env:"LOG_LEVEL"`
	LogOutput     string `env:"LOG_OUTPUT"`
	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     string `env:"REDIS_PORT"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	ConfigPath    string `env:"CONFIG_PATH" envDefault:"configs/config.yaml"`
}
