package wyre

import (
	"fmt"
	"strings"
)

// Environment selects which API host a client talks to. It is fixed for the
// lifetime of the client.
type Environment string

const (
	// EnvironmentTest uses TestNet for crypto integrations, the Plaid
	// sandbox, and fake PII.
	EnvironmentTest Environment = "test"

	// EnvironmentProduction uses live funds, accounts, and integrations.
	EnvironmentProduction Environment = "production"
)

// APIURL returns the base URL for the environment.
func (e Environment) APIURL() string {
	switch e {
	case EnvironmentProduction:
		return "https://api.sendwyre.com"
	default:
		return "https://api.testwyre.com"
	}
}

// ParseEnvironment maps a configuration string onto an Environment. It
// accepts dev/development/test and prod/production, case-insensitively.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dev", "development", "test":
		return EnvironmentTest, nil
	case "prod", "production":
		return EnvironmentProduction, nil
	default:
		return "", &EnvironmentParseError{Value: s}
	}
}

// EnvironmentParseError reports a configuration string that matched no
// environment, carrying the original value.
type EnvironmentParseError struct {
	Value string
}

func (e *EnvironmentParseError) Error() string {
	return fmt.Sprintf("unrecognized environment %q (expected test or production)", e.Value)
}
