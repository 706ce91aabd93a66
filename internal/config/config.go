// Package config loads the Nginx Proxy Manager connection settings from
// the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by Load.
const (
	EnvHost     = "NPM_HOST"
	EnvPort     = "NPM_PORT"
	EnvEmail    = "NPM_EMAIL"
	EnvPassword = "NPM_PASSWORD"
	EnvHTTPS    = "NPM_HTTPS"
)

// DefaultPort is the Nginx Proxy Manager admin interface default.
const DefaultPort = 81

// Config holds the connection settings for one proxy manager instance.
// It is immutable after Load. The password is a secret and must never be
// logged.
type Config struct {
	Host     string
	Port     int
	Email    string
	Password string
	HTTPS    bool
}

// ConfigurationError reports missing or malformed connection settings.
// It is raised before any network activity.
type ConfigurationError struct {
	Missing []string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
	}
	return e.Reason
}

// Load reads the connection configuration from the environment.
// Host, email and password are mandatory; absence of any of them fails
// with a ConfigurationError naming every missing variable.
func Load() (*Config, error) {
	cfg := &Config{
		Host:     strings.TrimSpace(os.Getenv(EnvHost)),
		Port:     DefaultPort,
		Email:    strings.TrimSpace(os.Getenv(EnvEmail)),
		Password: os.Getenv(EnvPassword),
		HTTPS:    os.Getenv(EnvHTTPS) != "",
	}

	var missing []string
	if cfg.Host == "" {
		missing = append(missing, EnvHost)
	}
	if cfg.Email == "" {
		missing = append(missing, EnvEmail)
	}
	if cfg.Password == "" {
		missing = append(missing, EnvPassword)
	}
	if len(missing) > 0 {
		return nil, &ConfigurationError{Missing: missing}
	}

	if portStr := os.Getenv(EnvPort); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil || port < 1 || port > 65535 {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid %s: %q", EnvPort, portStr)}
		}
		cfg.Port = port
	} else if cfg.HTTPS {
		cfg.Port = 443
	}

	return cfg, nil
}

// BaseURL derives the API base from the connection settings, eliding the
// port when it matches the scheme default.
func (c *Config) BaseURL() string {
	scheme := "http"
	if c.HTTPS {
		scheme = "https"
	}
	if (c.HTTPS && c.Port == 443) || (!c.HTTPS && c.Port == 80) {
		return fmt.Sprintf("%s://%s", scheme, c.Host)
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.Host, c.Port)
}

// String describes the target without exposing the password.
func (c *Config) String() string {
	return fmt.Sprintf("%s (%s)", c.BaseURL(), c.Email)
}
