package preferences

import (
	"pomodoro/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Pomodoro          int
	ShortBreak        int
	LongBreak         int
	LongBreakInterval int
	// MinMinutes is the lower bound applied to every editable field.
	MinMinutes int
	Alarm      bool
}

// DefaultSettings returns the classic pomodoro rotation with the alarm on.
func DefaultSettings() Settings {
	config := model.DefaultTimerConfig()
	return Settings{
		Pomodoro:          config.Pomodoro,
		ShortBreak:        config.ShortBreak,
		LongBreak:         config.LongBreak,
		LongBreakInterval: config.LongBreakInterval,
		MinMinutes:        model.DefaultMinimum,
		Alarm:             true,
	}
}

// TimerConfig converts settings to a clamped TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		Pomodoro:          settings.Pomodoro,
		ShortBreak:        settings.ShortBreak,
		LongBreak:         settings.LongBreak,
		LongBreakInterval: settings.LongBreakInterval,
	}.Normalize(settings.MinMinutes)
}

// WithTimerConfig returns a copy of settings carrying config's values.
func (settings Settings) WithTimerConfig(config model.TimerConfig) Settings {
	settings.Pomodoro = config.Pomodoro
	settings.ShortBreak = config.ShortBreak
	settings.LongBreak = config.LongBreak
	settings.LongBreakInterval = config.LongBreakInterval
	return settings
}

func (settings Settings) value(field model.Field) int {
	return settings.TimerConfig().Get(field)
}

func (settings Settings) with(field model.Field, value int) Settings {
	return settings.WithTimerConfig(settings.TimerConfig().With(field, value))
}
