//go:build darwin

package platform

import "pomodoro/internal/core/model"

func alarmSounds(finished model.Mode) []alarmSound {
	if finished == model.ModePomodoro {
		return []alarmSound{{"afplay", []string{"/System/Library/Sounds/Glass.aiff"}}}
	}
	return []alarmSound{{"afplay", []string{"/System/Library/Sounds/Ping.aiff"}}}
}
