//go:build windows

package platform

import "pomodoro/internal/core/model"

func alarmSounds(finished model.Mode) []alarmSound {
	if finished == model.ModePomodoro {
		return []alarmSound{
			{"powershell", []string{"-c", "[System.Media.SystemSounds]::Asterisk.Play()"}},
			{"powershell", []string{"-c", "[System.Media.SystemSounds]::Beep.Play()"}},
		}
	}
	return []alarmSound{
		{"powershell", []string{"-c", "[System.Media.SystemSounds]::Exclamation.Play()"}},
		{"powershell", []string{"-c", "[System.Media.SystemSounds]::Beep.Play()"}},
	}
}
