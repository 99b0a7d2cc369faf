// Package main provides the SiteBoard console server CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the console server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Backend BackendConfig `yaml:"backend"`
	Policy  PolicyConfig  `yaml:"policy"`
	Verbose bool          `yaml:"-"` // set via CLI flag
}

// ServerConfig contains listen and session settings.
type ServerConfig struct {
	ListenAddress   string        `yaml:"listen_address"`    // HTTP listen address (default: :8080)
	MetricsAddress  string        `yaml:"metrics_address"`   // Prometheus listen address (default: :9090)
	SessionTTL      time.Duration `yaml:"session_ttl"`       // default session lifetime (default: 8h)
	LoginsPerMinute int           `yaml:"logins_per_minute"` // per-IP login rate limit (default: 10)
	SecureCookies   bool          `yaml:"secure_cookies"`    // set cookies with Secure; enable behind TLS
}

// BackendConfig points the console at the project-management API.
type BackendConfig struct {
	URL string `yaml:"url"` // base URL of the backend API
}

// PolicyConfig locates the optional role allow-list file.
type PolicyConfig struct {
	File string `yaml:"file"` // YAML allow-list file, hot-reloaded when set
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// setDefaults sets default values for missing config fields.
func (c *Config) setDefaults() {
	if c.Server.ListenAddress == "" {
		c.Server.ListenAddress = ":8080"
	}
	if c.Server.MetricsAddress == "" {
		c.Server.MetricsAddress = ":9090"
	}
	if c.Server.SessionTTL <= 0 {
		c.Server.SessionTTL = 8 * time.Hour
	}
	if c.Server.LoginsPerMinute <= 0 {
		c.Server.LoginsPerMinute = 10
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}
	if c.Policy.File != "" {
		if _, err := os.Stat(c.Policy.File); err != nil {
			return fmt.Errorf("policy.file: %w", err)
		}
	}
	return nil
}
