package terminal

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/display"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/logging"
)

// Controller is the part of the engine the terminal drives.
type Controller interface {
	Start()
	Pause()
	Reset()
	Skip()
	SwitchMode(model.Mode)
	Configure(field model.Field, value, minimum int) int
	Snapshot() pomodoro.State
	NextSession() (model.Mode, time.Duration)
}

// Alarm plays the end-of-session sound.
type Alarm interface {
	Play(finished model.Mode) error
}

// eventMsg carries an engine event into the update loop.
type eventMsg pomodoro.Event

// alarmDoneMsg reports the result of playing the alarm.
type alarmDoneMsg struct {
	err error
}

// Model is the bubbletea model for the terminal timer.
type Model struct {
	engine  Controller
	alarm   Alarm
	minimum int

	keys     keyMap
	help     help.Model
	progress progress.Model

	state         pomodoro.State
	nextMode      model.Mode
	nextRemaining time.Duration
	field         int
	status        string
	width         int
}

// New creates a terminal model mirroring the engine state. alarm may be nil.
func New(engine Controller, alarm Alarm, minimum int) *Model {
	if minimum <= 0 {
		minimum = model.DefaultMinimum
	}
	state := engine.Snapshot()
	nextMode, nextRemaining := engine.NextSession()
	return &Model{
		engine:        engine,
		alarm:         alarm,
		minimum:       minimum,
		keys:          newKeyMap(),
		help:          help.New(),
		progress:      newProgress(state.Mode),
		state:         state,
		nextMode:      nextMode,
		nextRemaining: nextRemaining,
	}
}

func newProgress(mode model.Mode) progress.Model {
	return progress.New(
		progress.WithSolidFill(string(modeColors[mode])),
		progress.WithoutPercentage(),
		progress.WithWidth(40),
	)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(display.Title(m.state.Mode, m.state.Remaining))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case eventMsg:
		return m, m.handleEvent(pomodoro.Event(msg))
	case alarmDoneMsg:
		if msg.err != nil {
			logging.Logger.Warn("Alarm failed", "error", msg.err)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		if m.state.Running {
			m.engine.Pause()
		} else {
			m.engine.Start()
		}
	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()
	case key.Matches(msg, m.keys.Skip):
		m.engine.Skip()
	case key.Matches(msg, m.keys.Pomodoro):
		m.engine.SwitchMode(model.ModePomodoro)
	case key.Matches(msg, m.keys.ShortBreak):
		m.engine.SwitchMode(model.ModeShortBreak)
	case key.Matches(msg, m.keys.LongBreak):
		m.engine.SwitchMode(model.ModeLongBreak)
	case key.Matches(msg, m.keys.NextField):
		m.field = (m.field + 1) % len(model.Fields)
	case key.Matches(msg, m.keys.Increase):
		m.adjust(1)
	case key.Matches(msg, m.keys.Decrease):
		m.adjust(-1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) adjust(delta int) {
	field := model.Fields[m.field]
	current := m.engine.Snapshot().Config.Get(field)
	stored := m.engine.Configure(field, current+delta, m.minimum)
	logging.Logger.Debug("Setting changed", "field", field, "value", stored)
}

func (m *Model) handleEvent(event pomodoro.Event) tea.Cmd {
	switch event.Type {
	case pomodoro.EventTick:
		m.state.Remaining = event.Remaining
		return tea.SetWindowTitle(display.Title(m.state.Mode, m.state.Remaining))
	case pomodoro.EventModeChanged:
		m.state.Mode = event.Mode
		m.state.Remaining = event.Remaining
		m.state.PomodoroCount = event.PomodoroCount
		m.nextMode = event.NextMode
		m.nextRemaining = event.NextRemaining
		m.progress = newProgress(event.Mode)
	case pomodoro.EventRunStateChanged:
		m.state.Running = event.Running
		m.state.Resumable = event.Resumable
	case pomodoro.EventConfigChanged:
		m.state.Config = m.state.Config.With(event.Field, event.Value)
		m.state.Remaining = event.Remaining
		m.state.PomodoroCount = event.PomodoroCount
		m.nextMode = event.NextMode
		m.nextRemaining = event.NextRemaining
	case pomodoro.EventSessionComplete:
		m.status = fmt.Sprintf("%s complete", event.Mode.Label())
		logging.Logger.Info("Session complete", "mode", event.Mode, "pomodoros", event.PomodoroCount, "at", event.At)
		if m.alarm == nil {
			return nil
		}
		alarm := m.alarm
		return func() tea.Msg {
			return alarmDoneMsg{err: alarm.Play(event.Mode)}
		}
	}
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	tabs := make([]string, 0, len(model.Modes))
	for _, mode := range model.Modes {
		if mode == m.state.Mode {
			tabs = append(tabs, activeTabStyle(mode).Render(mode.Label()))
		} else {
			tabs = append(tabs, tabStyle.Render(mode.Label()))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")

	b.WriteString(clockStyle.Foreground(modeColors[m.state.Mode]).Render(display.Clock(m.state.Remaining)))
	b.WriteString("\n")

	total := m.state.Config.Duration(m.state.Mode)
	b.WriteString(m.progress.ViewAs(display.Progress(m.state.Remaining, total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderDots())
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(display.NextSession(m.nextMode, m.nextRemaining)))
	b.WriteString("\n\n")

	b.WriteString(m.renderControls())
	b.WriteString("\n")
	b.WriteString(m.renderSettings())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return frameStyle.Render(b.String())
}

func (m *Model) renderDots() string {
	dots := display.SessionDots(m.state.PomodoroCount, m.state.Config.LongBreakInterval)
	parts := make([]string, 0, len(dots))
	for _, completed := range dots {
		if completed {
			parts = append(parts, dotDoneStyle.Render("●"))
		} else {
			parts = append(parts, dotStyle.Render("○"))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderControls() string {
	controls := display.ControlsFor(m.state.Running, m.state.Resumable)
	var parts []string
	if controls.ShowStart {
		parts = append(parts, "[space] "+controls.StartLabel)
	}
	if controls.ShowPause {
		parts = append(parts, "[space] PAUSE")
	}
	if controls.ShowReset {
		parts = append(parts, "[r] RESET")
	}
	parts = append(parts, "[s] SKIP")
	return strings.Join(parts, "   ")
}

func (m *Model) renderSettings() string {
	parts := make([]string, 0, len(model.Fields))
	for i, field := range model.Fields {
		text := fmt.Sprintf("%s: %d %s", field.Label(), m.state.Config.Get(field), field.Unit())
		if i == m.field {
			parts = append(parts, selectedFieldStyle.Render(text))
		} else {
			parts = append(parts, fieldStyle.Render(text))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
