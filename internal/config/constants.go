package config

// Default configuration values
const (
	// DefaultPort is the default HTTP server port
	DefaultPort = "3000"

	// DefaultEnvironment is the default deployment environment
	DefaultEnvironment = string(Env)

	// DefaultLogLevel is the default logging level
	DefaultLogLevel = LevelNameInfo

	// DefaultConfigPath is where the YAML configuration is read from
	DefaultConfigPath = "configs/config.yaml"

	// DefaultRedisPort is appended to REDIS_HOST when REDIS_PORT is unset
	DefaultRedisPort = "6379"

	// DefaultKeyPrefix prefixes every Redis key written by the service
	DefaultKeyPrefix = "appconfig"
)
