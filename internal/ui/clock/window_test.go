package clock

import (
	"context"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
)

func initialState() pomodoro.State {
	config := model.DefaultTimerConfig()
	return pomodoro.State{
		Mode:      model.ModePomodoro,
		Remaining: config.Duration(model.ModePomodoro),
		Config:    config,
	}
}

func TestNewRendersState(t *testing.T) {
	app := test.NewTempApp(t)
	clock := New(app, initialState(), Callbacks{})

	assert.Equal(t, "25:00", clock.clockLabel.Text)
	assert.Equal(t, "(25:00) - POMODORO", clock.window.Title())
	assert.Equal(t, "Focus", clock.modeLabel.Text)
	assert.Equal(t, "Next: Short break (05:00)", clock.nextLabel.Text)
	assert.Len(t, clock.dots.Objects, 4)
	assert.True(t, clock.startButton.Visible())
	assert.False(t, clock.pauseButton.Visible())
	assert.False(t, clock.resetButton.Visible())
	assert.Equal(t, pomodoroColor, clock.background.FillColor)
}

func TestButtonsInvokeCallbacks(t *testing.T) {
	app := test.NewTempApp(t)
	var calls []string
	var switched model.Mode
	clock := New(app, initialState(), Callbacks{
		OnStart:      func() { calls = append(calls, "start") },
		OnPause:      func() { calls = append(calls, "pause") },
		OnReset:      func() { calls = append(calls, "reset") },
		OnSkip:       func() { calls = append(calls, "skip") },
		OnSwitchMode: func(mode model.Mode) { switched = mode },
	})

	test.Tap(clock.startButton)
	test.Tap(clock.pauseButton)
	test.Tap(clock.resetButton)
	test.Tap(clock.skipButton)
	test.Tap(clock.modeButtons[model.ModeLongBreak])

	assert.Equal(t, []string{"start", "pause", "reset", "skip"}, calls)
	assert.Equal(t, model.ModeLongBreak, switched)
}

func TestRenderEvents(t *testing.T) {
	app := test.NewTempApp(t)
	clock := New(app, initialState(), Callbacks{})

	clock.renderUnsafe(pomodoro.Event{Type: pomodoro.EventRunStateChanged, Running: true})
	assert.False(t, clock.startButton.Visible())
	assert.True(t, clock.pauseButton.Visible())
	assert.True(t, clock.resetButton.Visible())

	clock.renderUnsafe(pomodoro.Event{Type: pomodoro.EventTick, Mode: model.ModePomodoro, Remaining: 1499 * time.Second})
	assert.Equal(t, "24:59", clock.clockLabel.Text)
	assert.Equal(t, "(24:59) - POMODORO", clock.window.Title())

	clock.renderUnsafe(pomodoro.Event{Type: pomodoro.EventRunStateChanged, Resumable: true})
	assert.True(t, clock.startButton.Visible())
	assert.Equal(t, "RESUME", clock.startButton.Text)

	clock.renderUnsafe(pomodoro.Event{
		Type:          pomodoro.EventModeChanged,
		Mode:          model.ModeShortBreak,
		Remaining:     5 * time.Minute,
		PomodoroCount: 1,
		NextMode:      model.ModePomodoro,
		NextRemaining: 25 * time.Minute,
	})
	assert.Equal(t, "05:00", clock.clockLabel.Text)
	assert.Equal(t, "(05:00) - SHORTBREAK", clock.window.Title())
	assert.Equal(t, "Short break", clock.modeLabel.Text)
	assert.Equal(t, "Next: Focus (25:00)", clock.nextLabel.Text)
	assert.Equal(t, shortBreakColor, clock.background.FillColor)
}

func TestRenderIntervalChangeRebuildsDots(t *testing.T) {
	app := test.NewTempApp(t)
	clock := New(app, initialState(), Callbacks{})

	clock.renderUnsafe(pomodoro.Event{
		Type:          pomodoro.EventConfigChanged,
		Field:         model.FieldLongBreakInterval,
		Value:         6,
		PomodoroCount: 2,
		NextMode:      model.ModeShortBreak,
		NextRemaining: 5 * time.Minute,
	})

	require.Len(t, clock.dots.Objects, 6)
	assert.Equal(t, 2, clock.count)
	assert.Equal(t, "Next: Short break (05:00)", clock.nextLabel.Text)
}

func TestModeColor(t *testing.T) {
	assert.Equal(t, pomodoroColor, modeColor(model.ModePomodoro))
	assert.Equal(t, shortBreakColor, modeColor(model.ModeShortBreak))
	assert.Equal(t, longBreakColor, modeColor(model.ModeLongBreak))
}

func TestHideStopsFlash(t *testing.T) {
	app := test.NewTempApp(t)
	clock := New(app, initialState(), Callbacks{})

	done := clock.flash.Flash(context.Background(), flashColor, nil)
	clock.Hide()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("flash kept running after hide")
	}
}
