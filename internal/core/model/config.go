package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownMode indicates a mode name that is not part of the rotation.
var ErrUnknownMode = errors.New("unknown mode")

// ErrUnknownField indicates a config key that cannot be configured.
var ErrUnknownField = errors.New("unknown config field")

// Mode is the kind of session the timer is counting down.
type Mode string

const (
	ModePomodoro   Mode = "pomodoro"
	ModeShortBreak Mode = "shortBreak"
	ModeLongBreak  Mode = "longBreak"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModePomodoro, ModeShortBreak, ModeLongBreak}

// Valid reports whether mode is part of the rotation.
func (mode Mode) Valid() bool {
	switch mode {
	case ModePomodoro, ModeShortBreak, ModeLongBreak:
		return true
	}
	return false
}

// Label returns a human readable mode name.
func (mode Mode) Label() string {
	switch mode {
	case ModePomodoro:
		return "Focus"
	case ModeShortBreak:
		return "Short break"
	case ModeLongBreak:
		return "Long break"
	default:
		return string(mode)
	}
}

// ParseMode converts a mode name into a Mode.
func ParseMode(value string) (Mode, error) {
	mode := Mode(value)
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
	}
	return mode, nil
}

// Field is a configurable timer setting.
type Field string

const (
	FieldPomodoro          Field = Field(ModePomodoro)
	FieldShortBreak        Field = Field(ModeShortBreak)
	FieldLongBreak         Field = Field(ModeLongBreak)
	FieldLongBreakInterval Field = "longBreakInterval"
)

// Fields lists every configurable field in display order.
var Fields = []Field{FieldPomodoro, FieldShortBreak, FieldLongBreak, FieldLongBreakInterval}

// ParseField converts a config key into a Field.
func ParseField(value string) (Field, error) {
	for _, field := range Fields {
		if string(field) == value {
			return field, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, value)
}

// Mode returns the mode whose duration the field holds.
func (field Field) Mode() (Mode, bool) {
	mode := Mode(field)
	return mode, mode.Valid()
}

// Label returns a human readable field name.
func (field Field) Label() string {
	if mode, ok := field.Mode(); ok {
		return mode.Label()
	}
	if field == FieldLongBreakInterval {
		return "Long break every"
	}
	return string(field)
}

// Unit returns the unit the field value is expressed in.
func (field Field) Unit() string {
	if field == FieldLongBreakInterval {
		return "sessions"
	}
	return "min"
}

const (
	// MaxMinutes bounds every duration field.
	MaxMinutes = 60
	// MaxLongBreakInterval bounds the number of focus sessions per cycle.
	MaxLongBreakInterval = 10
	// DefaultMinimum is the lower bound used when callers do not choose one.
	DefaultMinimum = 1
)

// Max returns the upper bound of a field.
func (field Field) Max() int {
	if field == FieldLongBreakInterval {
		return MaxLongBreakInterval
	}
	return MaxMinutes
}

// Clamp bounds value to [minimum, field.Max()].
// A minimum below 1 is raised to 1 and one above the maximum is lowered to it.
func Clamp(field Field, value, minimum int) int {
	upper := field.Max()
	if minimum < 1 {
		minimum = 1
	}
	if minimum > upper {
		minimum = upper
	}
	if value < minimum {
		return minimum
	}
	if value > upper {
		return upper
	}
	return value
}

// TimerConfig holds session lengths in whole minutes.
type TimerConfig struct {
	Pomodoro          int
	ShortBreak        int
	LongBreak         int
	LongBreakInterval int
}

// DefaultTimerConfig returns the classic 25/5/15 rotation with a long break every 4th session.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Pomodoro:          25,
		ShortBreak:        5,
		LongBreak:         15,
		LongBreakInterval: 4,
	}
}

// Get returns the value stored for field.
func (config TimerConfig) Get(field Field) int {
	switch field {
	case FieldPomodoro:
		return config.Pomodoro
	case FieldShortBreak:
		return config.ShortBreak
	case FieldLongBreak:
		return config.LongBreak
	case FieldLongBreakInterval:
		return config.LongBreakInterval
	default:
		return 0
	}
}

// With returns a copy of config with field set to value. Unknown fields leave it unchanged.
func (config TimerConfig) With(field Field, value int) TimerConfig {
	switch field {
	case FieldPomodoro:
		config.Pomodoro = value
	case FieldShortBreak:
		config.ShortBreak = value
	case FieldLongBreak:
		config.LongBreak = value
	case FieldLongBreakInterval:
		config.LongBreakInterval = value
	}
	return config
}

// Minutes returns the configured length of mode.
func (config TimerConfig) Minutes(mode Mode) int {
	return config.Get(Field(mode))
}

// Seconds returns the configured length of mode in seconds.
func (config TimerConfig) Seconds(mode Mode) int {
	return config.Minutes(mode) * 60
}

// Duration returns the configured length of mode.
func (config TimerConfig) Duration(mode Mode) time.Duration {
	return time.Duration(config.Minutes(mode)) * time.Minute
}

// Normalize clamps every field into its valid range.
func (config TimerConfig) Normalize(minimum int) TimerConfig {
	for _, field := range Fields {
		config = config.With(field, Clamp(field, config.Get(field), minimum))
	}
	return config
}
