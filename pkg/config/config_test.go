package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeedEnvComplete(t *testing.T) {
	path := writeFile(t, ".env", "STOREFRONT_SECRET=s3cret\nDATABASE_URI=mongodb://localhost:27017\n")

	env, missing, err := LoadSeedEnv(path)
	require.NoError(t, err)
	assert.Empty(t, missing)
	assert.Equal(t, "s3cret", env.Secret)
	assert.Equal(t, "mongodb://localhost:27017", env.DatabaseURI)
	assert.Equal(t, "storefront", env.Database)
	assert.Equal(t, "media", env.MediaDir)
}

func TestLoadSeedEnvReportsMissingVariables(t *testing.T) {
	path := writeFile(t, ".env", "OTHER=1\n")

	_, missing, err := LoadSeedEnv(path)
	require.NoError(t, err)
	assert.Equal(t, []string{EnvSecret, EnvDatabaseURI}, missing)
}

func TestLoadSeedEnvOverridesDefaults(t *testing.T) {
	path := writeFile(t, ".env",
		"STOREFRONT_SECRET=x\nDATABASE_URI=mongodb://db:27017\nDATABASE_NAME=shop\nMEDIA_DIR=/srv/media\n")

	env, missing, err := LoadSeedEnv(path)
	require.NoError(t, err)
	assert.Empty(t, missing)
	assert.Equal(t, "shop", env.Database)
	assert.Equal(t, "/srv/media", env.MediaDir)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
server:
  name: storefront-web
  host: 127.0.0.1
  port: 9000
mongodb:
  uri: mongodb://localhost:27017
  database: storefront
media:
  dir: media
  base_url: /media
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "storefront-web", cfg.Server.Name)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "storefront", cfg.MongoDB.Database)
	assert.Equal(t, "/media", cfg.Media.BaseURL)
}
