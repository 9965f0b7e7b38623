package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "./data/lifeboard.db", cfg.SQLite.Path)
	assert.Equal(t, 20, cfg.Ingest.MaxFileSizeMB)
	assert.Equal(t, 0.3, cfg.Chat.SimilarityThreshold)
	assert.Equal(t, 5, cfg.Chat.TopK)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LIFEBOARD_SERVER_PORT", "9090")
	t.Setenv("LIFEBOARD_CHAT_TOPK", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Chat.TopK)
}
