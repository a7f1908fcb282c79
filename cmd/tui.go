package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/logging"
	"pomodoro/internal/platform"
	"pomodoro/internal/ui/terminal"
)

// TuiCmd runs the timer in the terminal.
type TuiCmd struct{}

// Run executes the terminal timer until the user quits.
func (t *TuiCmd) Run(cli *CLI) error {
	settings, err := cli.Settings()
	if err != nil {
		return err
	}
	logging.Logger.Info("Starting terminal timer",
		"pomodoro", settings.Pomodoro,
		"short_break", settings.ShortBreak,
		"long_break", settings.LongBreak,
		"long_break_interval", settings.LongBreakInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := pomodoro.New(settings.TimerConfig(), pomodoro.Config{TickInterval: time.Second})

	options := terminal.Options{MinMinutes: settings.MinMinutes}
	if settings.Alarm {
		options.Alarm = platform.NewAlarmPlayer()
	}

	if err := terminal.Run(ctx, engine, options); err != nil {
		return err
	}
	logging.Logger.Info("Terminal timer stopped")
	return nil
}
