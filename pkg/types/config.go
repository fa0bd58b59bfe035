// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

const (
	// DefaultEndpoint is the Messages API endpoint of the model provider.
	DefaultEndpoint = "https://api.anthropic.com/v1/messages"

	// DefaultModel is the model identifier used for every completion.
	DefaultModel = "claude-sonnet-4-20250514"

	// DefaultAPIVersion is sent as the anthropic-version header.
	DefaultAPIVersion = "2023-06-01"
)

// GatewayConfig holds the settings for calls to the model API.
type GatewayConfig struct {
	// Endpoint is the completion URL (default DefaultEndpoint).
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`

	// Model is the model identifier (default DefaultModel).
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// APIKey is the authentication key for the model API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Version is the API protocol version marker (default DefaultAPIVersion).
	Version string `json:"version" yaml:"version" mapstructure:"version"`

	// Timeout bounds one HTTP exchange with the API. Zero leaves the
	// transport defaults in place.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// WithDefaults returns a copy with empty fields set to their defaults.
func (c GatewayConfig) WithDefaults() GatewayConfig {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Version == "" {
		c.Version = DefaultAPIVersion
	}
	return c
}

// ServerConfig holds the settings for the HTTP server.
type ServerConfig struct {
	// Addr is the listen address (e.g. ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Development switches to the human-readable console encoder.
	Development bool `json:"development" yaml:"development" mapstructure:"development"`
}

// ArchiveConfig holds settings for the local run history used by the CLI.
type ArchiveConfig struct {
	// Dir is the directory holding history.db.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// Config groups all mailwright settings.
type Config struct {
	Gateway GatewayConfig `json:"gateway" yaml:"gateway" mapstructure:"gateway"`
	Server  ServerConfig  `json:"server" yaml:"server" mapstructure:"server"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
	Archive ArchiveConfig `json:"archive" yaml:"archive" mapstructure:"archive"`
}
