package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into a scratch directory so directory creation and .env lookup stay local.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := chdir(t)

	cfg, err := LoadConfig(filepath.Join(dir, "missing"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ModeDebug, cfg.Server.Mode)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "instance/app.db", cfg.Database.Path)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, "content", cfg.Content.Dir)
	assert.True(t, cfg.Content.Builtin)
	assert.Equal(t, 600, cfg.RateLimit.MaxRequests)
	assert.Empty(t, cfg.File)
	assert.True(t, cfg.AutoMigrate())

	assert.DirExists(t, filepath.Join(dir, "instance"))
	assert.DirExists(t, filepath.Join(dir, "static"))
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
server:
  port: "9000"
  mode: release
database:
  path: data/file.db
cors:
  allowed_origins: ["https://learn.example.com"]
`), 0o644))

	t.Setenv("DATABASE_PATH", "data/env.db")
	t.Setenv("LEARNHUB_CONTENT_DIR", "courses")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, ModeRelease, cfg.Server.Mode)
	assert.Equal(t, "data/env.db", cfg.Database.Path)
	assert.Equal(t, "courses", cfg.Content.Dir)
	assert.Equal(t, []string{"https://learn.example.com"}, cfg.CORS.AllowedOrigins)
	assert.NotEmpty(t, cfg.File)

	assert.False(t, cfg.AutoMigrate())
	cfg.ForceMigrate = true
	assert.True(t, cfg.AutoMigrate())
}

func TestLoadConfigShortEnvNames(t *testing.T) {
	dir := chdir(t)
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db")
	t.Setenv("PORT", "7000")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "postgres://u:p@localhost:5432/db", cfg.Database.URL)
	assert.Equal(t, "7000", cfg.Server.Port)
}

func TestLoadConfigValidation(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"bad mode":          {"SERVER_MODE": "production"},
		"bad db":            {"DB_TYPE": "oracle"},
		"postgres no url":   {"DB_TYPE": "postgres"},
		"minio no endpoint": {"STORAGE_TYPE": "minio"},
	} {
		t.Run(name, func(t *testing.T) {
			dir := chdir(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(dir)
			assert.Error(t, err)
		})
	}
}
