package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "frigosmart-local", cfg.Server.JWTSecret)
	assert.Equal(t, "openai", cfg.Advisor.Provider)
	assert.Equal(t, "OPENAI_API_KEY", cfg.Advisor.APIKeyEnv)
}

func TestLoadConfigParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  jwt_secret: hunter2
database:
  driver: postgres
  dsn: host=localhost dbname=frigo
advisor:
  provider: azure
  model: my-deployment
  base_url: https://example.openai.azure.com
  api_key_env: AZURE_KEY
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", cfg.Server.JWTSecret)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "azure", cfg.Advisor.Provider)
	assert.Equal(t, "my-deployment", cfg.Advisor.Model)
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{nope"), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}
