package config

import (
	"errors"
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv(EnvHost, "npm.example.com")
	t.Setenv(EnvEmail, "admin@example.com")
	t.Setenv(EnvPassword, "secret")
	t.Setenv(EnvPort, "")
	t.Setenv(EnvHTTPS, "")
}

func TestLoad(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Host != "npm.example.com" {
		t.Errorf("Host = %q, want npm.example.com", cfg.Host)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.Email != "admin@example.com" {
		t.Errorf("Email = %q, want admin@example.com", cfg.Email)
	}
	if cfg.HTTPS {
		t.Error("HTTPS should default to false")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv(EnvHost, "")
	t.Setenv(EnvEmail, "")
	t.Setenv(EnvPassword, "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load should fail when required variables are absent")
	}

	var confErr *ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("Expected ConfigurationError, got %T", err)
	}

	// Every missing variable should be named.
	for _, name := range []string{EnvHost, EnvEmail, EnvPassword} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("Error should name %s: %v", name, err)
		}
	}
}

func TestLoad_CustomPort(t *testing.T) {
	setRequired(t)
	t.Setenv(EnvPort, "8181")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 8181 {
		t.Errorf("Port = %d, want 8181", cfg.Port)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequired(t)
	t.Setenv(EnvPort, "not-a-port")

	_, err := Load()
	if err == nil {
		t.Fatal("Load should fail for a non-numeric port")
	}
	var confErr *ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("Expected ConfigurationError, got %T", err)
	}
}

func TestLoad_HTTPSDefaultPort(t *testing.T) {
	setRequired(t)
	t.Setenv(EnvHTTPS, "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.HTTPS {
		t.Error("HTTPS should be enabled")
	}
	if cfg.Port != 443 {
		t.Errorf("Port = %d, want 443 when HTTPS is set without NPM_PORT", cfg.Port)
	}
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"http with admin port", Config{Host: "npm.local", Port: 81}, "http://npm.local:81"},
		{"http default port elided", Config{Host: "npm.local", Port: 80}, "http://npm.local"},
		{"https default port elided", Config{Host: "npm.example.com", Port: 443, HTTPS: true}, "https://npm.example.com"},
		{"https custom port", Config{Host: "npm.example.com", Port: 8443, HTTPS: true}, "https://npm.example.com:8443"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.BaseURL(); got != tt.want {
				t.Errorf("BaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestString_RedactsPassword(t *testing.T) {
	cfg := Config{Host: "npm.local", Port: 81, Email: "admin@example.com", Password: "hunter2"}
	if strings.Contains(cfg.String(), "hunter2") {
		t.Error("String() must not expose the password")
	}
}
