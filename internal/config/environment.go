package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEnvironment is returned for deployment modes outside the closed set.
var ErrUnknownEnvironment = errors.New("unknown environment")

// Environment is the deployment mode of the hosting application.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Env is the deployment mode the application is built for.
const Env = EnvDevelopment

// Environments returns the accepted deployment modes.
func Environments() []Environment {
	return []Environment{EnvDevelopment, EnvProduction}
}

// ParseEnvironment resolves environment text, accepting the short forms
// "dev" and "prod".
func ParseEnvironment(text string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "development", "dev":
		return EnvDevelopment, nil
	case "production", "prod":
		return EnvProduction, nil
	}
	return "", fmt.Errorf("%w: %q (must be one of: %s, %s)", ErrUnknownEnvironment, text, EnvDevelopment, EnvProduction)
}

// Valid reports whether e is one of the accepted deployment modes.
func (e Environment) Valid() bool {
	return e == EnvDevelopment || e == EnvProduction
}

// IsProduction reports whether e is the production mode.
func (e Environment) IsProduction() bool {
	return e == EnvProduction
}

func (e Environment) String() string {
	return string(e)
}
