package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
storage:
  backend: file
ui:
  vim_mode: false
  theme: Ocean
timer:
  focus_minutes: 50
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.False(t, cfg.UI.VimMode)
	assert.Equal(t, "Ocean", cfg.UI.Theme)
	assert.Equal(t, 50, cfg.Timer.FocusMinutes)
	assert.Equal(t, 5, cfg.Timer.ShortBreakMinutes, "unset keys keep defaults")
	assert.Equal(t, DefaultStreamURL, cfg.Audio.StreamURL)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("VIBE_TIMER_SHORT_BREAK_MINUTES", "7")
	t.Setenv("VIBE_STORAGE_BACKEND", "memory")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Timer.ShortBreakMinutes)
	assert.Equal(t, "memory", cfg.Storage.Backend)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: [unclosed"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.UI.Theme = "Rose"
	cfg.Timer.LongBreakMinutes = 20
	require.NoError(t, Save(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestTimerDurations(t *testing.T) {
	tc := TimerConfig{FocusMinutes: 30, ShortBreakMinutes: 0, LongBreakMinutes: -1}
	assert.Equal(t, 30*time.Minute, tc.FocusDuration())
	assert.Equal(t, 5*time.Minute, tc.ShortBreakDuration())
	assert.Equal(t, 15*time.Minute, tc.LongBreakDuration())
}

func TestDirsHonourXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "cfg"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))

	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "cfg", "vibe-os"), dir)
	assert.DirExists(t, dir)

	data, err := DataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "data", "vibe-os"), data)

	cfg := DefaultConfig()
	sd, err := cfg.StorageDir()
	require.NoError(t, err)
	assert.Equal(t, data, sd)

	cfg.Storage.Path = "/srv/vibe"
	sd, _ = cfg.StorageDir()
	assert.Equal(t, "/srv/vibe", sd)
}
