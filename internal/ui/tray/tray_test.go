package tray

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
	"pomodoro/resources"
)

func newTestManager(callbacks Callbacks) *Manager {
	icons := Icons{
		Active: resources.MustIcon(resources.IconActive),
		Paused: resources.MustIcon(resources.IconPaused),
		Break:  resources.MustIcon(resources.IconBreak),
	}
	state := pomodoro.State{Mode: model.ModePomodoro, Remaining: 25 * time.Minute}
	return New(nil, icons, state, callbacks)
}

func TestInitialMenu(t *testing.T) {
	manager := newTestManager(Callbacks{})

	assert.Equal(t, "Focus 25:00 (paused)", manager.statusItem.Label)
	assert.Equal(t, "Start", manager.toggleItem.Label)
	assert.True(t, manager.resetItem.Disabled)
	assert.Equal(t, manager.icons.Paused, manager.icon())
}

func TestRenderRunState(t *testing.T) {
	manager := newTestManager(Callbacks{})

	manager.Render(pomodoro.Event{Type: pomodoro.EventRunStateChanged, Mode: model.ModePomodoro, Running: true})
	manager.Render(pomodoro.Event{Type: pomodoro.EventTick, Mode: model.ModePomodoro, Remaining: 1499 * time.Second})

	assert.Equal(t, "Focus 24:59", manager.statusItem.Label)
	assert.Equal(t, "Pause", manager.toggleItem.Label)
	assert.False(t, manager.resetItem.Disabled)
	assert.Equal(t, manager.icons.Active, manager.icon())

	manager.Render(pomodoro.Event{Type: pomodoro.EventRunStateChanged, Mode: model.ModePomodoro, Resumable: true})
	assert.Equal(t, "Resume", manager.toggleItem.Label)
	assert.Equal(t, "Focus 24:59 (paused)", manager.Status())
}

func TestRenderBreakIcon(t *testing.T) {
	manager := newTestManager(Callbacks{})

	manager.Render(pomodoro.Event{Type: pomodoro.EventModeChanged, Mode: model.ModeLongBreak, Remaining: 15 * time.Minute})
	manager.Render(pomodoro.Event{Type: pomodoro.EventRunStateChanged, Mode: model.ModeLongBreak, Running: true})

	assert.Equal(t, "Long break 15:00", manager.Status())
	assert.Equal(t, manager.icons.Break, manager.icon())
}

func TestToggleFollowsRunState(t *testing.T) {
	var calls []string
	manager := newTestManager(Callbacks{
		OnStart: func() { calls = append(calls, "start") },
		OnPause: func() { calls = append(calls, "pause") },
	})

	manager.toggleItem.Action()
	manager.Render(pomodoro.Event{Type: pomodoro.EventRunStateChanged, Running: true})
	manager.toggleItem.Action()

	assert.Equal(t, []string{"start", "pause"}, calls)
}

func TestMissingCallbacksAreIgnored(t *testing.T) {
	manager := newTestManager(Callbacks{})

	assert.NotPanics(t, func() {
		for _, item := range manager.menu.Items {
			if item.Action != nil {
				item.Action()
			}
		}
	})
}
