package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pomodoro/internal/platform"
	"pomodoro/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	PomodoroMinutes   int   `yaml:"pomodoro_minutes"`
	ShortBreakMinutes int   `yaml:"short_break_minutes"`
	LongBreakMinutes  int   `yaml:"long_break_minutes"`
	LongBreakInterval int   `yaml:"long_break_interval"`
	MinMinutes        int   `yaml:"min_minutes"`
	Alarm             *bool `yaml:"alarm"`
}

// DefaultSettingsPath returns where the settings file lives for appName.
func DefaultSettingsPath(appName string) (string, error) {
	configDir, err := platform.NewService().GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads startup preferences from YAML.
// If the file does not exist, default settings are returned.
// The file is never written: runtime changes last only for the session.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings.WithTimerConfig(settings.TimerConfig()), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.PomodoroMinutes > 0 {
		settings.Pomodoro = fileData.PomodoroMinutes
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreak = fileData.ShortBreakMinutes
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreak = fileData.LongBreakMinutes
	}
	if fileData.LongBreakInterval > 0 {
		settings.LongBreakInterval = fileData.LongBreakInterval
	}
	if fileData.MinMinutes > 0 {
		settings.MinMinutes = fileData.MinMinutes
	}
	if fileData.Alarm != nil {
		settings.Alarm = *fileData.Alarm
	}
}
