package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for a Slipstream client.
// All configuration is loaded from YAML and can be overridden by
// environment variables (SLIPSTREAM_SECTION_KEY).
type Config struct {
	Token     string          `yaml:"token"`
	Gateway   GatewayConfig   `yaml:"gateway"`
	REST      RESTConfig      `yaml:"rest"`
	Shard     ShardConfig     `yaml:"shard"`
	Session   SessionConfig   `yaml:"session"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GatewayConfig contains websocket gateway connection settings.
type GatewayConfig struct {
	// URL is the gateway websocket endpoint (wss://...).
	URL string `yaml:"url"`

	// HandshakeTimeout bounds the websocket dial, in seconds.
	HandshakeTimeout int `yaml:"handshake_timeout"`

	// Reconnect controls the backoff between reconnect attempts.
	Reconnect ReconnectConfig `yaml:"reconnect"`
}

// ReconnectConfig contains gateway reconnection settings.
type ReconnectConfig struct {
	// InitialDelay is the first backoff delay, in seconds.
	InitialDelay int `yaml:"initial_delay"`

	// MaxDelay caps the exponential backoff, in seconds.
	MaxDelay int `yaml:"max_delay"`

	// MaxAttempts limits reconnect attempts. 0 means unlimited.
	MaxAttempts int `yaml:"max_attempts"`
}

// RESTConfig contains REST dispatcher settings.
type RESTConfig struct {
	// BaseURL is the service's REST endpoint.
	BaseURL string `yaml:"base_url"`

	// RequestsPerSecond caps outbound request rate. 0 uses the default.
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	// Timeout bounds a single request, in seconds.
	Timeout int `yaml:"timeout"`
}

// ShardConfig contains the shard assignment requested at identify time.
type ShardConfig struct {
	Index int `yaml:"index"`
	Count int `yaml:"count"`
}

// SessionConfig contains the resume-state store settings.
type SessionConfig struct {
	// Path is the SQLite file holding gateway resume state.
	Path string `yaml:"path"`

	// WALMode enables Write-Ahead Logging.
	WALMode bool `yaml:"wal_mode"`

	// BusyTimeout is the maximum time to wait for a database lock (seconds).
	BusyTimeout int `yaml:"busy_timeout"`
}

// TelemetryConfig contains InfluxDB telemetry settings.
type TelemetryConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	Token         string `yaml:"token"`
	Org           string `yaml:"org"`
	Bucket        string `yaml:"bucket"`
	BatchSize     int    `yaml:"batch_size"`
	FlushInterval int    `yaml:"flush_interval"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads, overrides and validates configuration from a YAML file.
//
// Environment variables take precedence over file values so secrets can
// stay out of the config file. Recognised overrides: SLIPSTREAM_TOKEN,
// SLIPSTREAM_GATEWAY_URL, SLIPSTREAM_REST_BASE_URL,
// SLIPSTREAM_SESSION_PATH, SLIPSTREAM_TELEMETRY_TOKEN.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If the file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Gateway: GatewayConfig{
			HandshakeTimeout: 10,
			Reconnect: ReconnectConfig{
				InitialDelay: 1,
				MaxDelay:     60,
				MaxAttempts:  0,
			},
		},
		REST: RESTConfig{
			RequestsPerSecond: 45,
			Timeout:           15,
		},
		Shard: ShardConfig{
			Index: 0,
			Count: 1,
		},
		Session: SessionConfig{
			Path:        "./data/slipstream.db",
			WALMode:     true,
			BusyTimeout: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables follow the pattern
// SLIPSTREAM_SECTION_KEY.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SLIPSTREAM_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("SLIPSTREAM_GATEWAY_URL"); v != "" {
		cfg.Gateway.URL = v
	}
	if v := os.Getenv("SLIPSTREAM_REST_BASE_URL"); v != "" {
		cfg.REST.BaseURL = v
	}
	if v := os.Getenv("SLIPSTREAM_SESSION_PATH"); v != "" {
		cfg.Session.Path = v
	}
	if v := os.Getenv("SLIPSTREAM_TELEMETRY_TOKEN"); v != "" {
		cfg.Telemetry.Token = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.Token == "" {
		errs = append(errs, "token is required (set SLIPSTREAM_TOKEN)")
	}
	if c.Gateway.URL == "" {
		errs = append(errs, "gateway.url is required")
	} else if !strings.HasPrefix(c.Gateway.URL, "ws://") && !strings.HasPrefix(c.Gateway.URL, "wss://") {
		errs = append(errs, "gateway.url must be a ws:// or wss:// URL")
	}
	if c.REST.BaseURL == "" {
		errs = append(errs, "rest.base_url is required")
	}
	if c.Shard.Count < 1 {
		errs = append(errs, "shard.count must be at least 1")
	}
	if c.Shard.Index < 0 || c.Shard.Index >= c.Shard.Count {
		errs = append(errs, "shard.index must be in [0, shard.count)")
	}
	if c.Telemetry.Enabled {
		if c.Telemetry.URL == "" {
			errs = append(errs, "telemetry.url is required when telemetry is enabled")
		}
		if c.Telemetry.Bucket == "" {
			errs = append(errs, "telemetry.bucket is required when telemetry is enabled")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// HandshakeTimeoutDuration returns the gateway handshake timeout as a
// time.Duration.
func (g GatewayConfig) HandshakeTimeoutDuration() time.Duration {
	return time.Duration(g.HandshakeTimeout) * time.Second
}

// TimeoutDuration returns the REST timeout as a time.Duration.
func (r RESTConfig) TimeoutDuration() time.Duration {
	return time.Duration(r.Timeout) * time.Second
}
