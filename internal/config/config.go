package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application level configuration loaded from flags and
// environment variables; environment wins over flags.
type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	StorePath       string        `env:"STORE_PATH"`
	APIBaseURL      string        `env:"API_BASE_URL"`
	TokenSecret     string        `env:"TOKEN_SECRET"`
	NetworkDelay    time.Duration `env:"NETWORK_DELAY"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

const (
	defaultRunAddress      = ":8080"
	defaultStorePath       = "demo-data.json"
	defaultTokenSecret     = "change-me-in-production"
	defaultNetworkDelay    = 300 * time.Millisecond
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from command line flags and environment.
func Load() (*Config, error) {
	return load(os.Args[1:], nil)
}

func load(args []string, environment map[string]string) (*Config, error) {
	cfg := &Config{
		RunAddress:      defaultRunAddress,
		StorePath:       defaultStorePath,
		TokenSecret:     defaultTokenSecret,
		NetworkDelay:    defaultNetworkDelay,
		ShutdownTimeout: defaultShutdownTimeout,
	}

	fs := flag.NewFlagSet("backoffice", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "Path of the demo blob store (in-memory when empty)")
	fs.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "Real backend base URL (mock backend when empty)")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing session tokens")
	fs.DurationVar(&cfg.NetworkDelay, "delay", cfg.NetworkDelay, "Simulated network latency of the mock backend")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	opts := env.Options{}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = defaultRunAddress
	}
	if cfg.NetworkDelay < 0 {
		cfg.NetworkDelay = 0
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return cfg, nil
}
