package pomodoro

import (
	"time"

	"pomodoro/internal/core/model"
)

// EventType defines the type of Engine event.
type EventType string

const (
	EventTick            EventType = "tick"
	EventModeChanged     EventType = "mode_changed"
	EventRunStateChanged EventType = "run_state_changed"
	EventSessionComplete EventType = "session_complete"
	EventConfigChanged   EventType = "config_changed"
)

// Event represents an Engine update for observers.
// Only the fields relevant to Type are populated, Mode and Remaining always are.
type Event struct {
	Type          EventType
	Mode          model.Mode
	Remaining     time.Duration
	PomodoroCount int
	Running       bool
	// Resumable is set while a paused session still has time on the clock.
	Resumable bool

	Field model.Field
	Value int

	NextMode      model.Mode
	NextRemaining time.Duration

	At time.Time
}

// State is a point-in-time copy of the Engine.
type State struct {
	Mode          model.Mode
	Remaining     time.Duration
	Running       bool
	Resumable     bool
	PomodoroCount int
	Config        model.TimerConfig
}
