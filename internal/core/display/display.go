// Package display turns engine state into the strings and flags a host renders.
package display

import (
	"fmt"
	"strings"
	"time"

	"pomodoro/internal/core/model"
)

const (
	StartLabel  = "START"
	ResumeLabel = "RESUME"
)

// Clock formats remaining time as MM:SS. Minutes are not wrapped at 60.
func Clock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	total := int(remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Title is the window title shown while a session is loaded, e.g. "(24:59) - POMODORO".
func Title(mode model.Mode, remaining time.Duration) string {
	return fmt.Sprintf("(%s) - %s", Clock(remaining), strings.ToUpper(string(mode)))
}

// SessionDots returns one entry per focus session in the cycle, true when completed.
func SessionDots(count, interval int) []bool {
	if interval < 1 {
		interval = 1
	}
	dots := make([]bool, interval)
	for i := range dots {
		dots[i] = i < count
	}
	return dots
}

// Controls describes which timer buttons are visible and how start is labelled.
type Controls struct {
	ShowStart  bool
	ShowPause  bool
	ShowReset  bool
	StartLabel string
}

// ControlsFor derives button state from the engine run state.
func ControlsFor(running, resumable bool) Controls {
	if running {
		return Controls{ShowPause: true, ShowReset: true, StartLabel: StartLabel}
	}
	if resumable {
		return Controls{ShowStart: true, ShowReset: true, StartLabel: ResumeLabel}
	}
	return Controls{ShowStart: true, StartLabel: StartLabel}
}

// NextSession renders the upcoming session preview, e.g. "Next: Short break (05:00)".
func NextSession(mode model.Mode, duration time.Duration) string {
	return fmt.Sprintf("Next: %s (%s)", mode.Label(), Clock(duration))
}

// Progress returns the elapsed fraction of a session in [0, 1].
func Progress(remaining, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	progress := float64(total-remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Notification returns the desktop notification body for a finished session.
func Notification(finished model.Mode) string {
	if finished == model.ModePomodoro {
		return "Focus session complete. Time for a break!"
	}
	return fmt.Sprintf("%s is over. Back to focus.", finished.Label())
}
