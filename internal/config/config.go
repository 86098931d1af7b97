package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). It is loaded once
// at process start and passed into collaborators; business logic never
// re-reads the environment.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Provider ProviderConfig `yaml:"provider"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// ProviderConfig holds the billing API coordinates and credentials.
// All values are opaque to the engine.
type ProviderConfig struct {
	BaseURL        string `yaml:"base_url"`
	SubscriptionID string `yaml:"subscription_id"`
	UserID         string `yaml:"user_id"`
	SdpID          string `yaml:"sdp_id"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the outbound HTTP timeout, defaulting to 15s.
func (p ProviderConfig) Timeout() time.Duration {
	if p.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// Load reads the YAML file, applies environment overrides and
// validates the result. Path may be empty when the whole config comes
// from the environment.
func Load(path string) (*Config, error) {
	c := &Config{}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, c); err != nil {
			return nil, err
		}
	}
	c.applyEnv()
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// applyEnv overlays environment variables onto the file values. Env
// wins so deployments can keep credentials out of the file.
func (c *Config) applyEnv() {
	overlay(&c.Server.Port, "API_PORT")
	overlay(&c.Provider.BaseURL, "PROVIDER_BASE_URL")
	overlay(&c.Provider.SubscriptionID, "PROVIDER_SUBSCRIPTION_ID")
	overlay(&c.Provider.UserID, "PROVIDER_USER_ID")
	overlay(&c.Provider.SdpID, "PROVIDER_SDP_ID")
	overlay(&c.Provider.Username, "PROVIDER_USERNAME")
	overlay(&c.Provider.Password, "PROVIDER_PASSWORD")
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	p := c.Provider
	required := []struct {
		value, name string
	}{
		{p.BaseURL, "base_url"},
		{p.SubscriptionID, "subscription_id"},
		{p.UserID, "user_id"},
		{p.SdpID, "sdp_id"},
		{p.Username, "username"},
		{p.Password, "password"},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("provider.%s is required", f.name)
		}
	}
	return nil
}
