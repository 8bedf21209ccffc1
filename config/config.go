// Package config loads assistant configuration from an optional YAML file and
// DAYBRIEF_-prefixed environment variables, in that order of precedence.
package config

import (
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full assistant configuration.
type Config struct {
	Log          LogConfig    `koanf:"log"`
	Oracle       OracleConfig `koanf:"oracle"`
	Server       ServerConfig `koanf:"server"`
	Conversation ConvConfig   `koanf:"conversation"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json, text
}

// OracleConfig selects and parameterizes the LLM backend.
type OracleConfig struct {
	Provider string `koanf:"provider"` // openai, anthropic
	Model    string `koanf:"model"`
	BaseURL  string `koanf:"base_url"`
	APIKey   string `koanf:"api_key"`
}

// ServerConfig controls the HTTP adapter.
type ServerConfig struct {
	Addr string `koanf:"addr"`
}

// ConvConfig controls per-session conversation behavior.
type ConvConfig struct {
	MaxMemory            int `koanf:"max_memory"`
	ContextExpiryMinutes int `koanf:"context_expiry_minutes"`
}

// ContextExpiry returns the shared-context staleness window.
func (c ConvConfig) ContextExpiry() time.Duration {
	return time.Duration(c.ContextExpiryMinutes) * time.Minute
}

// Load reads configuration with defaults, then the YAML file at path (when
// non-empty), then DAYBRIEF_ environment variables (DAYBRIEF_ORACLE_PROVIDER
// -> oracle.provider).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	k.Set("log.level", "info")
	k.Set("log.format", "text")
	k.Set("oracle.provider", "openai")
	k.Set("oracle.model", "")
	k.Set("server.addr", ":5000")
	k.Set("conversation.max_memory", 10)
	k.Set("conversation.context_expiry_minutes", 30)

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("DAYBRIEF_", ".", envToKey), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envToKey maps an environment variable name to its config key. Only the
// first underscore separates section from key; the rest belong to the key
// itself, so DAYBRIEF_ORACLE_API_KEY addresses oracle.api_key. Every config
// section is a single word, which is what makes this split unambiguous.
func envToKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "DAYBRIEF_"))
	section, key, found := strings.Cut(s, "_")
	if !found {
		return section
	}
	return section + "." + key
}
