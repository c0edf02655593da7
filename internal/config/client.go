package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"dario.cat/mergo"
)

// Defaults of the command-line API client.
const (
	DefaultClientAddress = "http://localhost:8080"
	DefaultClientTimeout = 15 * time.Second
)

// ClientAdapter configures the HTTP API client.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the API, with or without scheme.
	// Env: CLIENT_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds a single API call.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenPath is the file the client keeps its bearer token in.
	// Env: CLIENT_TOKEN_PATH
	TokenPath string `env:"TOKEN_PATH"`
}

// clientConfig nests ClientAdapter under the CLIENT_ env prefix.
type clientConfig struct {
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
}

// GetClientConfig merges defaults, environment variables and flags (last
// non-zero value wins) and returns the remaining positional arguments.
//
// Flags:
//
//	-s server base URL
//	-t request timeout
//	-token-path bearer token file
func GetClientConfig(args []string) (*ClientAdapter, []string, error) {
	envCfg := &clientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	var flagCfg ClientAdapter
	fs := flag.NewFlagSet("habit-tracker-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&flagCfg.HTTPAddress, "s", "", "Server base URL")
	fs.DurationVar(&flagCfg.RequestTimeout, "t", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&flagCfg.TokenPath, "token-path", "", "Bearer token file")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &ClientAdapter{
		HTTPAddress:    DefaultClientAddress,
		RequestTimeout: DefaultClientTimeout,
	}
	for _, src := range []*ClientAdapter{&envCfg.Adapter, &flagCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.RequestTimeout <= 0 {
		return nil, nil, fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return cfg, fs.Args(), nil
}
