package main

import (
	"fmt"

	"github.com/redhat-appstudio/appconfig/internal/config"

	"github.com/spf13/cobra"
)

// ServerFlags holds the command-line overrides for the server.
// Empty values leave the environment/YAML value in place.
type ServerFlags struct {
	// HTTP server port number
	Port string
	// Deployment environment (development/production)
	Environment string
	// Logging threshold (DEBUG/INFO/WARNING/ERROR/CRITICAL)
	LogLevel string
}

// bind registers the flags on cmd.
func (f *ServerFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.Port, "port", "p", "",
		fmt.Sprintf("Server port number (default: %s)", config.DefaultPort))
	flags.StringVarP(&f.Environment, "env", "e", "",
		fmt.Sprintf("Deployment environment: %s, %s (default: %s)",
			config.EnvDevelopment, config.EnvProduction, config.DefaultEnvironment))
	flags.StringVarP(&f.LogLevel, "log-level", "l", "",
		fmt.Sprintf("Log level: DEBUG, INFO, WARNING, ERROR, CRITICAL (default: %s)", config.DefaultLogLevel))
}

// validate checks the flags that were set. Unset flags are validated later,
// together with the rest of the configuration.
func (f *ServerFlags) validate() error {
	if f.Environment != "" {
		if _, err := config.ParseEnvironment(f.Environment); err != nil {
			return fmt.Errorf("invalid --env: %w", err)
		}
	}
	if f.LogLevel != "" {
		if _, err := config.ParseLevel(f.LogLevel); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	return nil
}

// GetPort returns the configured server port number.
func (f *ServerFlags) GetPort() string {
	return f.Port
}

// GetEnvironment returns the configured deployment environment.
func (f *ServerFlags) GetEnvironment() string {
	return f.Environment
}

// GetLogLevel returns the configured logging threshold.
func (f *ServerFlags) GetLogLevel() string {
	return f.LogLevel
}
