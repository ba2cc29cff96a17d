package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"journal"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	assert.Equal(t, "journal.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-d", "/tmp/gratitude.db", "-l", "debug")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/gratitude.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path": "from-json.db"}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()
	assert.Equal(t, "from-json.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel, "fields absent from JSON keep defaults")
}

func TestLoadConfig_FlagsBeatJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path": "from-json.db"}`), 0o600))

	withArgs(t, "-c", path, "-d", "from-flag.db")

	cfg := LoadConfig()
	assert.Equal(t, "from-flag.db", cfg.DatabasePath)
}
