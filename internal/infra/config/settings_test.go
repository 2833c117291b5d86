package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omnikit/internal/app"
	"omnikit/internal/bridge"
)

func testPaths(t *testing.T) app.Paths {
	t.Helper()
	home := t.TempDir()
	return app.Paths{
		Home:     home,
		Assets:   filepath.Join(home, "assets"),
		Settings: filepath.Join(home, "settings.yml"),
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OMNIKIT_OSASCRIPT_BIN", "OMNIKIT_TIMEOUT_SEC", "OMNIKIT_CHUNK_SIZE",
		"OMNIKIT_ASSETS", "OMNIKIT_STDERR_LEVEL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	clearEnv(t)
	paths := testPaths(t)

	cfg, err := LoadSettings(paths)
	require.NoError(t, err)

	assert.Equal(t, bridge.DefaultOsascriptBin, cfg.OsascriptBin())
	assert.Equal(t, 0, cfg.TimeoutSec())
	assert.Equal(t, bridge.DefaultChunkSize, cfg.ChunkSize())
	assert.Equal(t, paths.Assets, cfg.AssetRoot())
	assert.Equal(t, "info", cfg.StderrLevel())
	assert.Equal(t, "default", cfg.ConfigSource())
	assert.Empty(t, cfg.SettingPath())
}

func TestLoadSettingsFromYAML(t *testing.T) {
	clearEnv(t)
	paths := testPaths(t)
	yml := "osascript_bin: /opt/bin/osascript\ntimeout_sec: 45\nchunk_size: 25\nstderr_level: debug\n"
	require.NoError(t, os.WriteFile(paths.Settings, []byte(yml), 0o644))

	cfg, err := LoadSettings(paths)
	require.NoError(t, err)

	assert.Equal(t, "/opt/bin/osascript", cfg.OsascriptBin())
	assert.Equal(t, 45, cfg.TimeoutSec())
	assert.Equal(t, 25, cfg.ChunkSize())
	assert.Equal(t, "debug", cfg.StderrLevel())
	// asset_root absent from the file still picks up the path default.
	assert.Equal(t, paths.Assets, cfg.AssetRoot())
	assert.Equal(t, "yaml", cfg.ConfigSource())
	assert.Equal(t, paths.Settings, cfg.SettingPath())
}

func TestLoadSettingsFromEnv(t *testing.T) {
	clearEnv(t)
	paths := testPaths(t)
	t.Setenv("OMNIKIT_OSASCRIPT_BIN", "/usr/bin/osascript")
	t.Setenv("OMNIKIT_TIMEOUT_SEC", "30")
	t.Setenv("OMNIKIT_CHUNK_SIZE", "10")

	cfg, err := LoadSettings(paths)
	require.NoError(t, err)

	assert.Equal(t, "/usr/bin/osascript", cfg.OsascriptBin())
	assert.Equal(t, 30, cfg.TimeoutSec())
	assert.Equal(t, 10, cfg.ChunkSize())
	assert.Equal(t, "env", cfg.ConfigSource())
}

func TestLoadSettingsYAMLWinsOverEnv(t *testing.T) {
	clearEnv(t)
	paths := testPaths(t)
	require.NoError(t, os.WriteFile(paths.Settings, []byte("chunk_size: 25\n"), 0o644))
	t.Setenv("OMNIKIT_CHUNK_SIZE", "10")
	t.Setenv("OMNIKIT_STDERR_LEVEL", "warn")

	cfg, err := LoadSettings(paths)
	require.NoError(t, err)

	// The file wins for fields it sets; env fills the rest.
	assert.Equal(t, 25, cfg.ChunkSize())
	assert.Equal(t, "warn", cfg.StderrLevel())
	assert.Equal(t, "yaml", cfg.ConfigSource())
}

func TestLoadSettingsMalformedYAML(t *testing.T) {
	clearEnv(t)
	paths := testPaths(t)
	require.NoError(t, os.WriteFile(paths.Settings, []byte("chunk_size: [not a number\n"), 0o644))

	_, err := LoadSettings(paths)
	require.Error(t, err)
	assert.Contains(t, err.Error(), paths.Settings)
}

func TestLoadSettingsIgnoresUnparsableEnvInt(t *testing.T) {
	clearEnv(t)
	paths := testPaths(t)
	t.Setenv("OMNIKIT_TIMEOUT_SEC", "forever")

	cfg, err := LoadSettings(paths)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.TimeoutSec())
}
