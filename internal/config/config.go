// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config assembles types.Config from viper (flags, MAILWRIGHT_*
// environment variables, mailwright.yaml) and the .secrets/ directory.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/mailwright/internal/secrets"
	"github.com/pdiddy/mailwright/pkg/types"
)

// EnvPrefix namespaces environment variables: gateway.model is read from
// MAILWRIGHT_GATEWAY_MODEL.
const EnvPrefix = "MAILWRIGHT"

// Keys shared with flag bindings.
const (
	KeyGatewayEndpoint = "gateway.endpoint"
	KeyGatewayModel    = "gateway.model"
	KeyGatewayAPIKey   = "gateway.api_key"
	KeyGatewayVersion  = "gateway.version"
	KeyGatewayTimeout  = "gateway.timeout"
	KeyServerAddr      = "server.addr"
	KeyServerShutdown  = "server.shutdown_timeout"
	KeyLogLevel        = "log.level"
	KeyLogDevelopment  = "log.development"
	KeyArchiveDir      = "archive.dir"
)

// apiKeyEnv is the conventional variable for the model API key.
const apiKeyEnv = "ANTHROPIC_API_KEY"

// SetDefaults registers defaults and environment lookups on v. Every key
// needs a default so AutomaticEnv can see it during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyGatewayEndpoint, types.DefaultEndpoint)
	v.SetDefault(KeyGatewayModel, types.DefaultModel)
	v.SetDefault(KeyGatewayAPIKey, "")
	v.SetDefault(KeyGatewayVersion, types.DefaultAPIVersion)
	v.SetDefault(KeyGatewayTimeout, time.Duration(0))
	v.SetDefault(KeyServerAddr, ":8080")
	v.SetDefault(KeyServerShutdown, 10*time.Second)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogDevelopment, false)
	v.SetDefault(KeyArchiveDir, ".mailwright")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load decodes v into a Config. When no API key was configured it falls
// back to ANTHROPIC_API_KEY and then to secretsDir/anthropic-api-key.
func Load(v *viper.Viper, secretsDir string, warn io.Writer) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.Gateway.APIKey == "" {
		s, err := secrets.Load(secretsDir, warn)
		if err != nil {
			return types.Config{}, err
		}
		cfg.Gateway.APIKey = s.Resolve(secrets.AnthropicAPIKey, apiKeyEnv)
	}
	cfg.Gateway = cfg.Gateway.WithDefaults()
	return cfg, nil
}

// RequireAPIKey reports a missing model API key.
func RequireAPIKey(cfg types.Config) error {
	if cfg.Gateway.APIKey == "" {
		return fmt.Errorf("no model API key: set %s, %s_GATEWAY_API_KEY or .secrets/%s",
			apiKeyEnv, EnvPrefix, secrets.AnthropicAPIKey)
	}
	return nil
}
