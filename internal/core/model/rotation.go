package model

// NextMode computes the session that follows mode.
// Finishing a focus session counts it and picks a long break every interval-th
// session; finishing a long break starts a fresh cycle.
func NextMode(mode Mode, count, interval int) (Mode, int) {
	if interval < 1 {
		interval = 1
	}
	if mode == ModePomodoro {
		count++
		if count%interval == 0 {
			return ModeLongBreak, count
		}
		return ModeShortBreak, count
	}
	if mode == ModeLongBreak {
		count = 0
	}
	return ModePomodoro, count
}
