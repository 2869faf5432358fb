package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestMissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.yaml"), true)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, "config.yaml", `
source: sqlite
data_path: /tmp/heroes.db
latency: 1500ms
theme: neon
language: es
logging:
  level: debug
  file: /tmp/superheroes.log
`)
	cfg, err := Load(p, true)
	require.NoError(t, err)
	assert.Equal(t, SourceSQLite, cfg.Source)
	assert.Equal(t, "/tmp/heroes.db", cfg.DataPath)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, LoggingConfig{Level: "debug", File: "/tmp/superheroes.log"}, cfg.Logging)

	d, err := cfg.LatencyDuration()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)
}

func TestLoadTOML(t *testing.T) {
	p := writeFile(t, "config.toml", `
source = "json"
data_path = "heroes.json"

[logging]
level = "warn"
`)
	cfg, err := Load(p, true)
	require.NoError(t, err)
	assert.Equal(t, SourceJSON, cfg.Source)
	assert.Equal(t, "heroes.json", cfg.DataPath)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "classic", cfg.Theme, "unset keys keep defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	p := writeFile(t, "config.yaml", "source: json\ntheme: neon\n")
	t.Setenv("SUPERHEROES_SOURCE", "sqlite")
	t.Setenv("SUPERHEROES_LOG_FILE", "/tmp/x.log")

	cfg, err := Load(p, true)
	require.NoError(t, err)
	assert.Equal(t, SourceSQLite, cfg.Source)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "/tmp/x.log", cfg.Logging.File)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Source = "postgres"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownSource)

	cfg = Default()
	cfg.Latency = "soon"
	assert.ErrorContains(t, cfg.Validate(), "latency")

	cfg = Default()
	cfg.Latency = "-1s"
	assert.ErrorContains(t, cfg.Validate(), "negative")

	cfg = Default()
	cfg.Language = "not a tag!"
	assert.ErrorContains(t, cfg.Validate(), "language")
}

func TestUnsupportedExtension(t *testing.T) {
	p := writeFile(t, "config.ini", "source=json")
	_, err := Load(p, true)
	assert.ErrorContains(t, err, "unsupported extension")
}

func TestDefaultPathFromEnv(t *testing.T) {
	t.Setenv("SUPERHEROES_CONFIG", "/etc/superheroes.toml")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/superheroes.toml", p)
}
