package wyre

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables recognized by FromEnv.
const (
	EnvAPIKey      = "WYRE_API_KEY"
	EnvAPISecret   = "WYRE_API_SECRET"
	EnvEnvironment = "WYRE_ENVIRONMENT"
)

// Credential-loading failures. These are configuration errors, deliberately
// separate from the transport/API taxonomy in pkg/errors.
var (
	ErrMissingAPIKey      = errors.New("missing " + EnvAPIKey + " environment variable")
	ErrMissingAPISecret   = errors.New("missing " + EnvAPISecret + " environment variable")
	ErrMissingEnvironment = errors.New("missing " + EnvEnvironment + " environment variable")
)

// FromEnv constructs a client from the process environment. A .env file in
// the working directory is loaded first when present, so local development
// matches deployed configuration. An unparseable WYRE_ENVIRONMENT fails with
// *EnvironmentParseError.
func FromEnv(opts ...Option) (*Client, error) {
	// best effort; absence of a .env file is the normal deployed case
	_ = godotenv.Load()

	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	apiSecret := os.Getenv(EnvAPISecret)
	if apiSecret == "" {
		return nil, ErrMissingAPISecret
	}
	envName := os.Getenv(EnvEnvironment)
	if envName == "" {
		return nil, ErrMissingEnvironment
	}

	env, err := ParseEnvironment(envName)
	if err != nil {
		return nil, err
	}

	return NewClient(apiKey, apiSecret, env, opts...), nil
}
