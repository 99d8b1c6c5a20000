package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v9"
	"gopkg.in/yaml.v3"
)

var (
	// Cache for configuration to avoid repeated file reads
	configCache *Config
	configOnce  sync.Once
)

// Load creates a new Config instance from the YAML file and environment,
// without command-line overrides.
func Load() *Config {
	return LoadWithFlags(nil)
}

// LoadCached returns the configuration loaded on first use.
// Later calls return the same instance.
func LoadCached() *Config {
	configOnce.Do(func() {
		configCache = LoadWithFlags(nil)
	})
	return configCache
}

// Flags defines the interface for command-line flag access.
type Flags interface {
	GetPort() string
	GetEnvironment() string
	GetLogLevel() string
}

// LoadWithFlags creates a new Config instance by loading configuration from
// the YAML file and applying environment and command-line overrides.
//
// Configuration precedence (highest to lowest):
// 1. Command-line flags
// 2. Environment variables
// 3. YAML configuration file
// 4. Default values
//
// Values are not validated here; call Validate on the result.
func LoadWithFlags(flgs Flags) *Config {
	overrides := envOverrides{}
	if err := env.Parse(&overrides); err != nil {
		overrides = envOverrides{ConfigPath: DefaultConfigPath}
	}

	yamlConfig := loadFromYAML(overrides.ConfigPath)

	port := firstNonEmpty(overrides.Port, yamlConfig.Server.Port, DefaultPort)
	environment := firstNonEmpty(overrides.Environment, yamlConfig.Server.Environment, DefaultEnvironment)
	logLevel := firstNonEmpty(overrides.LogLevel, yamlConfig.Server.LogLevel, DefaultLogLevel)

	if flgs != nil {
		port = firstNonEmpty(flgs.GetPort(), port)
		environment = firstNonEmpty(flgs.GetEnvironment(), environment)
		logLevel = firstNonEmpty(flgs.GetLogLevel(), logLevel)
	}

	logging := yamlConfig.Logging
	logging.Output = firstNonEmpty(overrides.LogOutput, logging.Output, "stdout")

	// Redis address from REDIS_HOST/REDIS_PORT wins over YAML
	redisConfig := yamlConfig.Storage.Redis
	redisAddress := redisConfig.Address
	if overrides.RedisHost != "" {
		redisAddress = overrides.RedisHost + ":" + firstNonEmpty(overrides.RedisPort, DefaultRedisPort)
	}

	metricsEnabled := true
	if yamlConfig.Metrics.Enabled != nil {
		metricsEnabled = *yamlConfig.Metrics.Enabled
	}

	return &Config{
		Port:        port,
		Environment: environment,
		LogLevel:    logLevel,
		Logging:     logging,
		Storage: StorageConfig{
			Redis: RedisYAMLConfig{
				Enabled:   redisConfig.Enabled,
				Address:   redisAddress,
				Password:  firstNonEmpty(overrides.RedisPassword, redisConfig.Password),
				Database:  redisConfig.Database,
				KeyPrefix: firstNonEmpty(redisConfig.KeyPrefix, DefaultKeyPrefix),
			},
		},
		Metrics: MetricsConfig{
			Enabled: metricsEnabled,
			Path:    firstNonEmpty(yamlConfig.Metrics.Path, "/metrics"),
		},
	}
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}
	if _, err := ParseEnvironment(c.Environment); err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.Storage.Redis.Enabled && c.Storage.Redis.Address == "" {
		return fmt.Errorf("redis storage enabled but no address configured")
	}
	return nil
}

// Env returns the typed environment, falling back to Env when the
// configured value is not recognised.
func (c *Config) Env() Environment {
	e, err := ParseEnvironment(c.Environment)
	if err != nil {
		return Env
	}
	return e
}

// Severity returns the configured threshold, falling back to LevelInfo when
// the configured value is not recognised.
func (c *Config) Severity() Severity {
	s, err := ParseLevel(c.LogLevel)
	if err != nil {
		return LevelInfo
	}
	return s
}

func loadFromYAML(path string) *YAMLConfig {
	config := &YAMLConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		return config
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return &YAMLConfig{}
	}
	return config
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
