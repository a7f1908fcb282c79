//go:build !linux && !darwin && !windows

package platform

import "pomodoro/internal/core/model"

func alarmSounds(model.Mode) []alarmSound {
	return nil
}
