package logger

import (
	"learnhub/internal/config"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSetLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Mode = config.ModeRelease

	cfg.Log.Level = "warn"
	SetLevel(cfg)
	assert.Equal(t, zap.WarnLevel, Level.Level())

	cfg.Log.Level = "nonsense"
	SetLevel(cfg)
	assert.Equal(t, zap.InfoLevel, Level.Level())

	cfg.Server.Mode = config.ModeDebug
	cfg.Log.Level = "error"
	SetLevel(cfg)
	assert.Equal(t, zap.DebugLevel, Level.Level())
}

func TestInitLoggerFollowsAtomicLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Mode = config.ModeRelease
	cfg.Log.Level = "info"
	cfg.Log.File = filepath.Join(t.TempDir(), "app.log")

	InitLogger(cfg)
	assert.True(t, Log.Core().Enabled(zap.InfoLevel))
	assert.False(t, Log.Core().Enabled(zap.DebugLevel))

	cfg.Log.Level = "error"
	SetLevel(cfg)
	assert.False(t, Log.Core().Enabled(zap.InfoLevel))
}
