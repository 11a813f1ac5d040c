package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.InPort)
	assert.Equal(t, DefaultPort, cfg.OutPort)
	assert.Equal(t, 60, cfg.FrameRate)
	assert.Equal(t, 1000, cfg.FlushTimeoutMS)
	assert.Equal(t, "clamped", cfg.EncoderMode)
	assert.True(t, cfg.ClearOnClose)
	assert.NotEmpty(t, cfg.ID)
	assert.False(t, cfg.FirstLaunchCompleted)
	assert.Equal(t, path, cfg.Path())

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist, "load must not write")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gopher-push", "config.json")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	cfg.InPort = "Push In"
	cfg.EncoderMode = "unbounded"
	cfg.FirstLaunchCompleted = true
	require.NoError(t, cfg.Save())

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, got.ID)
	assert.Equal(t, "Push In", got.InPort)
	assert.Equal(t, DefaultPort, got.OutPort)
	assert.Equal(t, "unbounded", got.EncoderMode)
	assert.True(t, got.FirstLaunchCompleted)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"out_port": "Other"}`), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "Other", cfg.OutPort)
	assert.Equal(t, DefaultPort, cfg.InPort)
	assert.Equal(t, 60, cfg.FrameRate)
	assert.NotEmpty(t, cfg.ID)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := map[string]string{
		"not json":     `{`,
		"frame rate":   `{"frame_rate": 0}`,
		"timeout":      `{"flush_timeout_ms": -1}`,
		"encoder mode": `{"encoder_mode": "spin"}`,
		"log level":    `{"log_level": "loud"}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := LoadFrom(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadUsesUserConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Contains(t, path, filepath.Join("gopher-push", "config.json"))

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Save())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)

	cfg := Default()
	cfg.LogLevel = "warn"
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}
