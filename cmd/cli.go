package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"pomodoro/internal/logging"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
)

// CLI represents the command-line interface structure.
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables rotation)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"20"`
	Config      string           `help:"Path to the settings YAML file" type:"path" env:"POMODORO_CONFIG"`

	Pomodoro          int  `help:"Focus session length in minutes" placeholder:"MIN"`
	ShortBreak        int  `help:"Short break length in minutes" placeholder:"MIN"`
	LongBreak         int  `help:"Long break length in minutes" placeholder:"MIN"`
	LongBreakInterval int  `help:"Focus sessions before a long break" placeholder:"N"`
	MinMinutes        int  `help:"Lowest value any setting may take" placeholder:"MIN"`
	NoAlarm           bool `help:"Do not play a sound when a session ends"`

	Gui GuiCmd `cmd:"" help:"Open the desktop timer (default)" default:"1"`
	Tui TuiCmd `cmd:"" help:"Run the timer in the terminal"`
}

// AfterApply initializes logging after CLI parsing.
func (c *CLI) AfterApply() error {
	logFilePath, err := logging.Initialize(logging.Options{
		AppName:     appName,
		Debug:       c.Debug,
		File:        c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
	})
	if err != nil {
		return err
	}
	if logFilePath != "" {
		logging.Logger.Info("Logging initialized", "file", logFilePath)
	}
	return nil
}

// Close flushes logs.
func (c *CLI) Close() {
	logging.Close()
}

// Settings resolves startup settings: flags over the settings file over defaults.
func (c *CLI) Settings() (preferences.Settings, error) {
	path := c.Config
	if path == "" {
		defaultPath, err := storage.DefaultSettingsPath(appName)
		if err != nil {
			return preferences.Settings{}, err
		}
		path = defaultPath
	}

	settings, err := storage.LoadSettings(path)
	if err != nil {
		return preferences.Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	logging.Logger.Debug("Settings loaded", "path", path)

	return c.applyOverrides(settings), nil
}

func (c *CLI) applyOverrides(settings preferences.Settings) preferences.Settings {
	if c.Pomodoro > 0 {
		settings.Pomodoro = c.Pomodoro
	}
	if c.ShortBreak > 0 {
		settings.ShortBreak = c.ShortBreak
	}
	if c.LongBreak > 0 {
		settings.LongBreak = c.LongBreak
	}
	if c.LongBreakInterval > 0 {
		settings.LongBreakInterval = c.LongBreakInterval
	}
	if c.MinMinutes > 0 {
		settings.MinMinutes = c.MinMinutes
	}
	if c.NoAlarm {
		settings.Alarm = false
	}
	return settings.WithTimerConfig(settings.TimerConfig())
}
