package terminal

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/logging"
)

const eventBuffer = 256

// Options configures the terminal host.
type Options struct {
	Alarm      Alarm
	MinMinutes int
	// ProgramOptions are appended to the defaults, mostly for tests.
	ProgramOptions []tea.ProgramOption
}

// Run drives engine from the terminal until the user quits or ctx ends.
// It closes the engine on return.
func Run(ctx context.Context, engine *pomodoro.Engine, options Options) error {
	events := engine.Subscribe(eventBuffer)
	m := New(engine, options.Alarm, options.MinMinutes)

	programOptions := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, options.ProgramOptions...)
	program := tea.NewProgram(m, programOptions...)

	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer engine.Close()
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run terminal ui: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		for event := range events {
			program.Send(eventMsg(event))
		}
		logging.Logger.Debug("Event stream closed")
		return nil
	})

	return group.Wait()
}
