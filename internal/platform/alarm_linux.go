//go:build linux

package platform

import "pomodoro/internal/core/model"

// alarmSounds uses paplay (PulseAudio) or aplay (ALSA).
func alarmSounds(finished model.Mode) []alarmSound {
	if finished == model.ModePomodoro {
		return []alarmSound{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
		}
	}
	return []alarmSound{
		{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
		{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.wav"}},
	}
}
