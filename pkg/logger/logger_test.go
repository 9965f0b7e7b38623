package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInit_InvalidLevel(t *testing.T) {
	assert.Error(t, Init("chatty", "json", "stdout"))
}

func TestInit_AppliesLevel(t *testing.T) {
	require.NoError(t, Init("warn", "json", "stdout"))

	assert.False(t, Log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Log.Core().Enabled(zapcore.WarnLevel))
}

func TestInit_ConsoleFormat(t *testing.T) {
	require.NoError(t, Init("debug", "console", "stderr"))
	assert.True(t, Log.Core().Enabled(zapcore.DebugLevel))
}

func TestInit_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifeboard.log")
	require.NoError(t, Init("info", "json", path))

	Info("written to file")
	require.NoError(t, Log.Sync())

	assert.FileExists(t, path)
}
