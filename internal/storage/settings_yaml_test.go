package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/ui/preferences"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestLoadSettingsAppliesValues(t *testing.T) {
	path := writeSettings(t, `
pomodoro_minutes: 50
short_break_minutes: 10
long_break_minutes: 30
long_break_interval: 3
min_minutes: 2
alarm: false
`)

	settings, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, preferences.Settings{
		Pomodoro:          50,
		ShortBreak:        10,
		LongBreak:         30,
		LongBreakInterval: 3,
		MinMinutes:        2,
		Alarm:             false,
	}, settings)
}

func TestLoadSettingsIgnoresNonPositiveAndClamps(t *testing.T) {
	path := writeSettings(t, `
pomodoro_minutes: 0
short_break_minutes: -4
long_break_minutes: 120
long_break_interval: 42
`)

	settings, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, 25, settings.Pomodoro)
	assert.Equal(t, 5, settings.ShortBreak)
	assert.Equal(t, 60, settings.LongBreak)
	assert.Equal(t, 10, settings.LongBreakInterval)
	assert.True(t, settings.Alarm)
}

func TestLoadSettingsRejectsInvalidYaml(t *testing.T) {
	path := writeSettings(t, "pomodoro_minutes: [")

	_, err := LoadSettings(path)

	assert.ErrorContains(t, err, "parse settings yaml")
}

func TestDefaultSettingsPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := DefaultSettingsPath("pomodoro")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("pomodoro", "settings.yaml"), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}
