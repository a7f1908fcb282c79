package main

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"pomodoro/internal/core/display"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/logging"
	"pomodoro/internal/platform"
	"pomodoro/internal/ui/clock"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"
)

const eventBuffer = 256

// GuiCmd opens the desktop timer.
type GuiCmd struct{}

// Run starts the fyne application, or raises an already running one.
func (g *GuiCmd) Run(cli *CLI) error {
	guard, err := platform.AcquireOrActivate(appName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		logging.Logger.Info("Raised running instance")
		return nil
	}
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()
	logging.Logger.Debug("Single instance guard acquired", "address", guard.Address())

	settings, err := cli.Settings()
	if err != nil {
		return err
	}
	logging.Logger.Info("Starting desktop timer",
		"pomodoro", settings.Pomodoro,
		"short_break", settings.ShortBreak,
		"long_break", settings.LongBreak,
		"long_break_interval", settings.LongBreakInterval)

	engine := pomodoro.New(settings.TimerConfig(), pomodoro.Config{TickInterval: time.Second})
	defer engine.Close()
	events := engine.Subscribe(eventBuffer)

	var alarmEnabled atomic.Bool
	alarmEnabled.Store(settings.Alarm)
	alarm := platform.NewAlarmPlayer()

	fyneApp := app.NewWithID("io.pomodoro.timer")
	fyneApp.SetIcon(resources.MustIcon(resources.IconActive))

	prefsWindow := preferences.New(fyneApp, settings, func(field model.Field, value int) {
		stored := engine.Configure(field, value, settings.MinMinutes)
		logging.Logger.Debug("Setting changed", "field", field, "value", stored)
	}, func(enabled bool) {
		alarmEnabled.Store(enabled)
	})

	state := engine.Snapshot()
	clockWindow := clock.New(fyneApp, state, clock.Callbacks{
		OnStart:      engine.Start,
		OnPause:      engine.Pause,
		OnReset:      engine.Reset,
		OnSkip:       engine.Skip,
		OnSwitchMode: engine.SwitchMode,
		OnSettings:   prefsWindow.Show,
	})
	clockWindow.SetOnClosed(fyneApp.Quit)

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Icons{
			Active: resources.MustIcon(resources.IconActive),
			Paused: resources.MustIcon(resources.IconPaused),
			Break:  resources.MustIcon(resources.IconBreak),
		}, state, tray.Callbacks{
			OnShow:     clockWindow.Show,
			OnStart:    engine.Start,
			OnPause:    engine.Pause,
			OnReset:    engine.Reset,
			OnSkip:     engine.Skip,
			OnSettings: prefsWindow.Show,
			OnQuit:     fyneApp.Quit,
		})
		clockWindow.Window().SetCloseIntercept(clockWindow.Hide)
	} else {
		logging.Logger.Warn("System tray unsupported on this platform")
	}

	guard.OnActivate(func() {
		fyne.Do(clockWindow.Show)
	})

	go func() {
		for event := range events {
			clockWindow.Render(event)
			fyne.Do(func() {
				if trayManager != nil {
					trayManager.Render(event)
				}
				switch event.Type {
				case pomodoro.EventConfigChanged:
					prefsWindow.SetValue(event.Field, event.Value)
				case pomodoro.EventSessionComplete:
					fyneApp.SendNotification(fyne.NewNotification(event.Mode.Label(), display.Notification(event.Mode)))
				}
			})
			if event.Type != pomodoro.EventSessionComplete {
				continue
			}

			logging.Logger.Info("Session complete", "mode", event.Mode, "pomodoros", event.PomodoroCount, "at", event.At)
			if alarmEnabled.Load() {
				go playAlarm(alarm, event.Mode)
			}
		}
	}()

	clockWindow.Show()
	fyneApp.Run()
	logging.Logger.Info("Desktop timer stopped")
	return nil
}

func playAlarm(alarm *platform.AlarmPlayer, finished model.Mode) {
	if err := alarm.Play(finished); err != nil {
		logging.Logger.Warn("Alarm failed", "error", err)
	}
}
