package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/ui/preferences"
)

func parseCLI(t *testing.T, args ...string) *CLI {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name(appName), kong.Vars{"version": "test"})
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return &cli
}

func TestParseDefaultsToGui(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name(appName), kong.Vars{"version": "test"})
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{})
	require.NoError(t, err)
	assert.Equal(t, "gui", ctx.Command())
}

func TestParseTuiWithOverrides(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name(appName), kong.Vars{"version": "test"})
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"--pomodoro", "50", "--short-break", "10", "--no-alarm", "tui"})
	require.NoError(t, err)
	assert.Equal(t, "tui", ctx.Command())
	assert.Equal(t, 50, cli.Pomodoro)
	assert.Equal(t, 10, cli.ShortBreak)
	assert.True(t, cli.NoAlarm)
}

func TestSettingsPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pomodoro_minutes: 40\nshort_break_minutes: 8\nalarm: true\n"), 0o600))

	cli := parseCLI(t, "--config", path, "--short-break", "3", "tui")
	settings, err := cli.Settings()
	require.NoError(t, err)

	assert.Equal(t, 40, settings.Pomodoro)
	assert.Equal(t, 3, settings.ShortBreak)
	assert.Equal(t, 15, settings.LongBreak)
	assert.Equal(t, 4, settings.LongBreakInterval)
	assert.True(t, settings.Alarm)
}

func TestSettingsMissingFileUsesDefaults(t *testing.T) {
	cli := parseCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "tui")

	settings, err := cli.Settings()
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSettingsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pomodoro_minutes: [\n"), 0o600))

	cli := parseCLI(t, "--config", path, "tui")
	_, err := cli.Settings()
	assert.Error(t, err)
}

func TestApplyOverridesClamps(t *testing.T) {
	cli := &CLI{Pomodoro: 500, LongBreakInterval: 99, MinMinutes: 10, NoAlarm: true}

	settings := cli.applyOverrides(preferences.DefaultSettings())

	assert.Equal(t, 60, settings.Pomodoro)
	assert.Equal(t, 10, settings.ShortBreak)
	assert.Equal(t, 15, settings.LongBreak)
	assert.Equal(t, 10, settings.LongBreakInterval)
	assert.Equal(t, 10, settings.MinMinutes)
	assert.False(t, settings.Alarm)
}
