package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/idilsaglam/superheroes/internal/config"
)

func TestNoFileIsNop(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "debug"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestFileLogger(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs", "superheroes.log")
	logger, err := New(config.LoggingConfig{Level: "warn", File: p})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", zap.String("name", "Hulk"))
	_ = logger.Sync()

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "Hulk", entry["name"])
	assert.Equal(t, "warn", entry["level"])
}

func TestBadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")})
	assert.ErrorContains(t, err, "log level")
}
