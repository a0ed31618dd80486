package config

import (
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"gopkg.in/yaml.v3"
)

// WatchedSafe is one safe the service polls. Signer is the wallet the
// badge counts are computed against; it may be empty when no wallet is
// connected.
type WatchedSafe struct {
	ChainID string `yaml:"chain_id" json:"chain_id"`
	Address string `yaml:"address" json:"address"`
	Signer  string `yaml:"signer,omitempty" json:"signer,omitempty"`
}

type Gateway struct {
	BaseURL     string            `yaml:"base_url" json:"base_url"`
	AuthHeaders map[string]string `yaml:"auth_headers,omitempty" json:"auth_headers,omitempty"`
}

type Polling struct {
	Interval string `yaml:"interval" json:"interval"`
	Timeout  string `yaml:"timeout" json:"timeout"`
}

type Config struct {
	Gateway  Gateway       `yaml:"gateway" json:"gateway"`
	Safes    []WatchedSafe `yaml:"safes" json:"safes"`
	Polling  Polling       `yaml:"polling" json:"polling"`
	// PageLimit caps how many queue pages one poll tick follows
	PageLimit int    `yaml:"page_limit" json:"page_limit"`
	LogLevel  string `yaml:"log_level" json:"log_level"`
}

const (
	defaultGatewayURL = "https://safe-client.safe.global"
	defaultInterval   = "15s"
	defaultTimeout    = "10s"
	defaultPageLimit  = 5
)

// Load reads cfg/config.yaml and fills in defaults. Environment
// variables (REDIS_URL, PORT) are read where they are consumed;
// godotenv autoload makes a local .env visible here too.
func Load() (*Config, error) {
	cfg := &Config{}

	cfgData, err := os.ReadFile("cfg/config.yaml")
	if err == nil {
		if err = yaml.Unmarshal(cfgData, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config.yaml: %w", err)
		}
	}

	if cfg.Gateway.BaseURL == "" {
		cfg.Gateway.BaseURL = defaultGatewayURL
	}
	if cfg.Polling.Interval == "" {
		cfg.Polling.Interval = defaultInterval
	}
	if cfg.Polling.Timeout == "" {
		cfg.Polling.Timeout = defaultTimeout
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = defaultPageLimit
	}

	for _, safe := range cfg.Safes {
		if safe.ChainID == "" || safe.Address == "" {
			return nil, fmt.Errorf("watched safe needs both chain_id and address, got %+v", safe)
		}
	}

	return cfg, nil
}

// PollInterval parses the configured polling interval.
func (c *Config) PollInterval() (time.Duration, error) {
	return time.ParseDuration(c.Polling.Interval)
}

// PollTimeout parses the configured per-tick timeout.
func (c *Config) PollTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Polling.Timeout)
}
