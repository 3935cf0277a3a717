// Package config loads the docvault CLI configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/forge-labs/docvault/pkg/vault"
)

// TokenEnvVar is consulted for the auth token when the config file does
// not provide one, so tokens can stay out of files on disk.
const TokenEnvVar = "DOCVAULT_TOKEN"

// Duration decodes YAML strings like "30s" into a time.Duration.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"30s\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config is the on-disk CLI configuration.
//
// Example:
//
//	base_url: https://vault.example.com
//	auth_token: env         # omit to read DOCVAULT_TOKEN
//	timeout: 30s
//	max_retries: 3
//	log_level: info
type Config struct {
	BaseURL       string   `yaml:"base_url"`
	AuthToken     string   `yaml:"auth_token"`
	TLSVerify     *bool    `yaml:"tls_verify"`
	Timeout       Duration `yaml:"timeout"`
	MaxRetries    int      `yaml:"max_retries"`
	RetryInterval Duration `yaml:"retry_interval"`
	LogLevel      string   `yaml:"log_level"`
}

// Load reads and validates the configuration at path. A missing auth_token
// falls back to the DOCVAULT_TOKEN environment variable.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.AuthToken == "" {
		cfg.AuthToken = os.Getenv(TokenEnvVar)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// validate aggregates every problem in the file rather than stopping at
// the first, so a bad config can be fixed in one pass.
func (c *Config) validate() error {
	var result *multierror.Error

	if c.BaseURL == "" {
		result = multierror.Append(result, fmt.Errorf("base_url is required"))
	}
	if c.AuthToken == "" {
		result = multierror.Append(result,
			fmt.Errorf("auth_token is required (set it in the file or via %s)", TokenEnvVar))
	}
	if c.MaxRetries < 0 {
		result = multierror.Append(result, fmt.Errorf("max_retries must be non-negative"))
	}
	if c.Timeout < 0 {
		result = multierror.Append(result, fmt.Errorf("timeout must be non-negative"))
	}
	if c.RetryInterval < 0 {
		result = multierror.Append(result, fmt.Errorf("retry_interval must be non-negative"))
	}
	switch c.LogLevel {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		result = multierror.Append(result,
			fmt.Errorf("log_level must be one of trace, debug, info, warn, error; got %q", c.LogLevel))
	}

	return result.ErrorOrNil()
}

// Vault converts the CLI configuration into a client library Config.
// Unset fields keep their zero values; the client fills in its defaults.
func (c *Config) Vault() *vault.Config {
	return &vault.Config{
		BaseURL:       c.BaseURL,
		AuthToken:     c.AuthToken,
		TLSVerify:     c.TLSVerify,
		Timeout:       time.Duration(c.Timeout),
		MaxRetries:    c.MaxRetries,
		RetryInterval: time.Duration(c.RetryInterval),
	}
}
