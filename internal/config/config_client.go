package config

import (
	"fmt"
	"time"
)

// ClientConfig is the admin command-line client's view of the configuration.
type ClientConfig struct {
	// BaseURL is the HTTP root of the marketplace server.
	BaseURL string
	// Timeout is the per-request timeout.
	Timeout time.Duration
	// LogLevel is the zerolog level name.
	LogLevel string
	// Args holds the positional arguments left after flag parsing: the
	// subcommand and its own arguments.
	Args []string
}

// GetClientConfig builds and validates the client configuration from
// environment, flags (args), the optional JSON file, and defaults.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, rest, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		BaseURL:  cfg.Client.BaseURL,
		Timeout:  cfg.Client.Timeout,
		LogLevel: cfg.App.LogLevel,
		Args:     rest,
	}

	return clientCfg, clientCfg.validate()
}
