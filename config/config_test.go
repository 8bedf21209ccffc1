package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "openai", cfg.Oracle.Provider)
	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.Conversation.MaxMemory)
	assert.Equal(t, 30*time.Minute, cfg.Conversation.ContextExpiry())
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybrief.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  format: json
oracle:
  provider: anthropic
  model: claude-3-5-sonnet-20241022
conversation:
  max_memory: 6
  context_expiry_minutes: 5
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "anthropic", cfg.Oracle.Provider)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Oracle.Model)
	assert.Equal(t, 6, cfg.Conversation.MaxMemory)
	assert.Equal(t, 5*time.Minute, cfg.Conversation.ContextExpiry())
	// Untouched sections keep their defaults.
	assert.Equal(t, ":5000", cfg.Server.Addr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybrief.yaml")
	require.NoError(t, os.WriteFile(path, []byte("oracle:\n  provider: anthropic\n"), 0o600))

	t.Setenv("DAYBRIEF_ORACLE_PROVIDER", "openai")
	t.Setenv("DAYBRIEF_SERVER_ADDR", ":8080")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Oracle.Provider)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_EnvMultiWordKeys(t *testing.T) {
	t.Setenv("DAYBRIEF_ORACLE_API_KEY", "sk-secret")
	t.Setenv("DAYBRIEF_ORACLE_BASE_URL", "http://localhost:1234/v1")
	t.Setenv("DAYBRIEF_CONVERSATION_MAX_MEMORY", "4")
	t.Setenv("DAYBRIEF_CONVERSATION_CONTEXT_EXPIRY_MINUTES", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sk-secret", cfg.Oracle.APIKey)
	assert.Equal(t, "http://localhost:1234/v1", cfg.Oracle.BaseURL)
	assert.Equal(t, 4, cfg.Conversation.MaxMemory)
	assert.Equal(t, 7*time.Minute, cfg.Conversation.ContextExpiry())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
