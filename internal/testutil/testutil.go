// Package testutil has helpers shared by package tests.
package testutil

import (
	"learnhub/internal/config"
	"learnhub/pkg/database"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB opens a migrated in-memory SQLite database held on a single connection, so every
// query in the test sees the same schema.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// Config returns a test-mode configuration that needs no files or network.
func Config() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "0", Mode: config.ModeTest, MaxBodyBytes: 1 << 20},
		Database: config.DatabaseConfig{
			Type: "sqlite",
			Path: ":memory:",
		},
		Storage: config.StorageConfig{
			Type:         "local",
			LocalPath:    "static",
			PublicPrefix: "/static",
		},
		Content:   config.ContentConfig{Builtin: true},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:8080"}},
		RateLimit: config.RateLimitConfig{MaxRequests: 10000, WindowMinutes: 1},
	}
}
