package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointConfigAt(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	t.Setenv("FOCUSFLOW_CONFIG", path)
	t.Setenv("FOCUSFLOW_FOCUS_MINUTES", "")
	t.Setenv("FOCUSFLOW_SHORT_BREAK_MINUTES", "")
	t.Setenv("FOCUSFLOW_LONG_BREAK_MINUTES", "")
	t.Setenv("FOCUSFLOW_SPEECH", "")
	t.Setenv("FOCUSFLOW_SEED_SAMPLES", "")
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	pointConfigAt(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Timer.FocusMinutes)
	assert.Equal(t, 5, cfg.Timer.ShortBreakMinutes)
	assert.Equal(t, 15, cfg.Timer.LongBreakMinutes)
	assert.True(t, cfg.UI.SpeechEnabled)
	assert.True(t, cfg.UI.SeedSamples)
}

func TestLoadPartialFileFillsGaps(t *testing.T) {
	path := pointConfigAt(t, t.TempDir())
	require.NoError(t, os.WriteFile(path, []byte("[timer]\nfocus_minutes = 50\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Timer.FocusMinutes)
	assert.Equal(t, 5, cfg.Timer.ShortBreakMinutes)
	assert.Equal(t, 15, cfg.Timer.LongBreakMinutes)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := pointConfigAt(t, t.TempDir())
	require.NoError(t, os.WriteFile(path, []byte("[timer]\nfocus_minutes = 50\n"), 0o644))
	t.Setenv("FOCUSFLOW_FOCUS_MINUTES", "90")
	t.Setenv("FOCUSFLOW_SPEECH", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.Timer.FocusMinutes)
	assert.False(t, cfg.UI.SpeechEnabled)
}

func TestLoadRejectsNonPositiveMinutes(t *testing.T) {
	path := pointConfigAt(t, t.TempDir())
	require.NoError(t, os.WriteFile(path, []byte("[timer]\nfocus_minutes = -3\n"), 0o644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timer.focus_minutes")
}

func TestSaveRoundTrip(t *testing.T) {
	pointConfigAt(t, t.TempDir())

	want := Default()
	want.Timer.FocusMinutes = 40
	want.UI.SpeechEnabled = false
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDurations(t *testing.T) {
	cfg := Default()
	d := cfg.Durations()

	assert.Equal(t, 25*time.Minute, d.Focus)
	assert.Equal(t, 5*time.Minute, d.ShortBreak)
	assert.Equal(t, 15*time.Minute, d.LongBreak)
}
