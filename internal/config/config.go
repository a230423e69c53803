// Package config loads the yaml configuration for the client engine and
// the reference server, with working defaults for every field.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so yaml values can be written as "30s"
// or "7d"-less Go duration strings ("168h").
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration as a Go duration string.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Client configures the sync engine.
type Client struct {
	// ServerURL is the base URL of the remote persistence service.
	ServerURL string `yaml:"server_url"`
	// DBPath is the local BoltDB file.
	DBPath string `yaml:"db_path"`
	// StalenessWindow bounds offline usability of cached data.
	StalenessWindow Duration `yaml:"staleness_window"`
	// RequestTimeout bounds each remote call within a pass.
	RequestTimeout Duration `yaml:"request_timeout"`
	// BatchLimit is the maximum number of operations replayed per pass.
	BatchLimit int `yaml:"batch_limit"`
	// MaxQueueDepth bounds the pending queue before enqueue reports
	// storage full.
	MaxQueueDepth int `yaml:"max_queue_depth"`
	// AutoSync controls the periodic background pass.
	AutoSync AutoSync `yaml:"auto_sync"`
	// Retry controls backoff after failed passes.
	Retry Retry `yaml:"retry"`
}

// AutoSync configures the periodic trigger.
type AutoSync struct {
	Enabled  bool     `yaml:"enabled"`
	Interval Duration `yaml:"interval"`
}

// Retry configures the exponential backoff schedule.
type Retry struct {
	// InitialInterval is the delay after the first failed attempt.
	InitialInterval Duration `yaml:"initial_interval"`
	// MaxInterval caps the delay regardless of attempt count.
	MaxInterval Duration `yaml:"max_interval"`
}

// Server configures the reference remote persistence service.
type Server struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`
	// DBPath is the sqlite database file, or ":memory:".
	DBPath string `yaml:"db_path"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// Config is the root of the yaml file.
type Config struct {
	Client Client `yaml:"client"`
	Server Server `yaml:"server"`
}

// Default returns a config with every field set to its default.
func Default() *Config {
	return &Config{
		Client: Client{
			ServerURL:       "http://localhost:8080",
			DBPath:          "plansync.db",
			StalenessWindow: Duration(7 * 24 * time.Hour),
			RequestTimeout:  Duration(30 * time.Second),
			BatchLimit:      100,
			MaxQueueDepth:   10000,
			AutoSync: AutoSync{
				Enabled:  true,
				Interval: Duration(5 * time.Minute),
			},
			Retry: Retry{
				InitialInterval: Duration(2 * time.Second),
				MaxInterval:     Duration(5 * time.Minute),
			},
		},
		Server: Server{
			Addr:            ":8080",
			DBPath:          "plansync-server.db",
			ShutdownTimeout: Duration(10 * time.Second),
		},
	}
}

// Load reads a yaml config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Client.BatchLimit <= 0 {
		return fmt.Errorf("client.batch_limit must be positive")
	}
	if c.Client.StalenessWindow <= 0 {
		return fmt.Errorf("client.staleness_window must be positive")
	}
	if c.Client.Retry.InitialInterval <= 0 || c.Client.Retry.MaxInterval < c.Client.Retry.InitialInterval {
		return fmt.Errorf("client.retry intervals must be positive and max >= initial")
	}
	return nil
}
