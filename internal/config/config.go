// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for paperchat.
//
// Configuration sources (in order of precedence):
//   - Environment variables (PAPERCHAT_*)
//   - ~/.paperchat/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete paperchat configuration.
type Config struct {
	// Server configuration
	Server ServerConfig `toml:"server"`

	// Auth configuration
	Auth AuthConfig `toml:"auth"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// ServerConfig contains backend connection configuration.
type ServerConfig struct {
	// URL is the base URL of the paperchat backend
	URL string `toml:"url"`
	// RequestTimeoutSecs is the timeout for non-streaming requests in seconds
	RequestTimeoutSecs int `toml:"request_timeout_secs"`
}

// AuthConfig contains authentication configuration.
type AuthConfig struct {
	// TokenFile is the path where the access token is persisted
	// (empty = default ~/.paperchat/token)
	TokenFile string `toml:"token_file"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme selects the color theme: "dark" or "light"
	Theme string `toml:"theme"`
	// MarkdownWidth is the wrap width for rendered assistant answers
	MarkdownWidth int `toml:"markdown_width"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:                "http://localhost:8000",
			RequestTimeoutSecs: 30,
		},
		Auth: AuthConfig{
			TokenFile: "",
		},
		UI: UIConfig{
			Theme:         "dark",
			MarkdownWidth: 80,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the paperchat configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".paperchat"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// TokenPath returns the path where the access token is stored, honoring the
// token_file config override.
func (c *Config) TokenPath() (string, error) {
	if c.Auth.TokenFile != "" {
		return c.Auth.TokenFile, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "token"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from ~/.paperchat/config.toml, falling back to
// defaults when the file is absent. Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies PAPERCHAT_* environment variables on top of the
// loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if serverURL := os.Getenv("PAPERCHAT_SERVER_URL"); serverURL != "" {
		c.Server.URL = serverURL
	}
	if tokenFile := os.Getenv("PAPERCHAT_TOKEN_FILE"); tokenFile != "" {
		c.Auth.TokenFile = tokenFile
	}
	if theme := os.Getenv("PAPERCHAT_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.URL)
	if err != nil {
		return fmt.Errorf("server.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server.url: unsupported scheme %q (want http or https)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("server.url: missing host in %q", c.Server.URL)
	}

	if c.Server.RequestTimeoutSecs <= 0 {
		return fmt.Errorf("server.request_timeout_secs: must be positive, got %d", c.Server.RequestTimeoutSecs)
	}

	switch strings.ToLower(c.UI.Theme) {
	case "dark", "light":
	default:
		return fmt.Errorf("ui.theme: unknown theme %q (want dark or light)", c.UI.Theme)
	}

	if c.UI.MarkdownWidth < 20 {
		return fmt.Errorf("ui.markdown_width: must be at least 20, got %d", c.UI.MarkdownWidth)
	}

	return nil
}
