package terminal

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the terminal key bindings.
type keyMap struct {
	Toggle     key.Binding
	Reset      key.Binding
	Skip       key.Binding
	Pomodoro   key.Binding
	ShortBreak key.Binding
	LongBreak  key.Binding
	NextField  key.Binding
	Increase   key.Binding
	Decrease   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		Pomodoro: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "focus"),
		),
		ShortBreak: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "short break"),
		),
		LongBreak: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "long break"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next setting"),
		),
		Increase: key.NewBinding(
			key.WithKeys("+", "=", "up"),
			key.WithHelp("+", "increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-", "down"),
			key.WithHelp("-", "decrease"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (keys keyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Toggle, keys.Reset, keys.Skip, keys.Help, keys.Quit}
}

// FullHelp implements help.KeyMap.
func (keys keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Toggle, keys.Reset, keys.Skip},
		{keys.Pomodoro, keys.ShortBreak, keys.LongBreak},
		{keys.NextField, keys.Increase, keys.Decrease},
		{keys.Help, keys.Quit},
	}
}
