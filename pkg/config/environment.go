package config

import (
	"fmt"
	"strings"
)

// Environment names the deployment the process runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// UnmarshalText lets env parse APP_ENV directly, accepting the short aliases
// dev, stage and prod.
func (e *Environment) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "development", "dev", "":
		*e = Development
	case "staging", "stage":
		*e = Staging
	case "production", "prod":
		*e = Production
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEnvironment, string(text))
	}
	return nil
}

func (e Environment) String() string {
	return string(e)
}

func (e Environment) IsProduction() bool {
	return e == Production
}
