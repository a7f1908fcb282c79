package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/model"
)

var modeColors = map[model.Mode]lipgloss.Color{
	model.ModePomodoro:   lipgloss.Color("#BA4949"),
	model.ModeShortBreak: lipgloss.Color("#38858A"),
	model.ModeLongBreak:  lipgloss.Color("#397097"),
}

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("245"))

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 4)

	dotStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dotDoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			PaddingRight(2)

	selectedFieldStyle = fieldStyle.
				Bold(true).
				Underline(true).
				Foreground(lipgloss.Color("255"))

	statusStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("214"))

	frameStyle = lipgloss.NewStyle().Padding(1, 2)
)

func activeTabStyle(mode model.Mode) lipgloss.Style {
	return tabStyle.
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(modeColors[mode])
}
