package clock

import (
	"context"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/display"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/ui/animation"
)

var (
	pomodoroColor   = color.NRGBA{R: 186, G: 73, B: 73, A: 255}
	shortBreakColor = color.NRGBA{R: 56, G: 133, B: 138, A: 255}
	longBreakColor  = color.NRGBA{R: 57, G: 112, B: 151, A: 255}
	flashColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	textColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	dotColor        = color.NRGBA{R: 255, G: 255, B: 255, A: 90}
	dotDoneColor    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

const dotSize = 14

// Callbacks defines timer window action handlers.
type Callbacks struct {
	OnStart      func()
	OnPause      func()
	OnReset      func()
	OnSkip       func()
	OnSwitchMode func(model.Mode)
	OnSettings   func()
}

// Window is the main timer window.
type Window struct {
	window      fyne.Window
	callbacks   Callbacks
	background  *canvas.Rectangle
	clockLabel  *canvas.Text
	modeLabel   *canvas.Text
	nextLabel   *widget.Label
	dots        *fyne.Container
	modeButtons map[model.Mode]*widget.Button
	startButton *widget.Button
	pauseButton *widget.Button
	resetButton *widget.Button
	skipButton  *widget.Button
	flash       *animation.Engine

	mode     model.Mode
	count    int
	interval int
}

// New creates the timer window showing state.
func New(app fyne.App, state pomodoro.State, callbacks Callbacks) *Window {
	window := app.NewWindow("Pomodoro")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	clock := &Window{
		window:      window,
		callbacks:   callbacks,
		background:  canvas.NewRectangle(modeColor(state.Mode)),
		modeButtons: make(map[model.Mode]*widget.Button, len(model.Modes)),
	}

	clock.clockLabel = canvas.NewText(display.Clock(state.Remaining), textColor)
	clock.clockLabel.Alignment = fyne.TextAlignCenter
	clock.clockLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	clock.clockLabel.TextSize = 72

	clock.modeLabel = canvas.NewText(state.Mode.Label(), textColor)
	clock.modeLabel.Alignment = fyne.TextAlignCenter
	clock.modeLabel.TextSize = 18

	clock.nextLabel = widget.NewLabel("")
	clock.nextLabel.Alignment = fyne.TextAlignCenter

	clock.dots = container.NewGridWrap(fyne.NewSize(dotSize, dotSize))

	modeRow := container.NewHBox(layout.NewSpacer())
	for _, mode := range model.Modes {
		button := widget.NewButton(mode.Label(), func() {
			if clock.callbacks.OnSwitchMode != nil {
				clock.callbacks.OnSwitchMode(mode)
			}
		})
		clock.modeButtons[mode] = button
		modeRow.Add(button)
	}
	modeRow.Add(layout.NewSpacer())

	clock.startButton = widget.NewButtonWithIcon(display.StartLabel, theme.MediaPlayIcon(), func() {
		if clock.callbacks.OnStart != nil {
			clock.callbacks.OnStart()
		}
	})
	clock.startButton.Importance = widget.HighImportance
	clock.pauseButton = widget.NewButtonWithIcon("PAUSE", theme.MediaPauseIcon(), func() {
		if clock.callbacks.OnPause != nil {
			clock.callbacks.OnPause()
		}
	})
	clock.pauseButton.Importance = widget.HighImportance
	clock.resetButton = widget.NewButtonWithIcon("RESET", theme.MediaReplayIcon(), func() {
		if clock.callbacks.OnReset != nil {
			clock.callbacks.OnReset()
		}
	})
	clock.skipButton = widget.NewButtonWithIcon("SKIP", theme.MediaSkipNextIcon(), func() {
		if clock.callbacks.OnSkip != nil {
			clock.callbacks.OnSkip()
		}
	})
	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if clock.callbacks.OnSettings != nil {
			clock.callbacks.OnSettings()
		}
	})

	controls := container.NewHBox(
		layout.NewSpacer(),
		clock.startButton,
		clock.pauseButton,
		clock.resetButton,
		clock.skipButton,
		settingsButton,
		layout.NewSpacer(),
	)

	content := container.NewVBox(
		modeRow,
		layout.NewSpacer(),
		clock.modeLabel,
		clock.clockLabel,
		container.NewCenter(clock.dots),
		clock.nextLabel,
		layout.NewSpacer(),
		controls,
	)
	window.SetContent(container.NewStack(clock.background, container.NewPadded(content)))
	window.Resize(fyne.NewSize(420, 360))

	clock.flash = animation.New(animation.DefaultConfig(), func(fill color.Color) {
		fyne.Do(func() {
			clock.paintUnsafe(fill)
		})
	})

	clock.applyStateUnsafe(state)
	return clock
}

// Show displays the window and brings it forward.
func (clock *Window) Show() {
	clock.window.Show()
	clock.window.RequestFocus()
}

// Hide stops any completion flash and hides the window.
func (clock *Window) Hide() {
	clock.flash.Stop()
	clock.paintUnsafe(nil)
	clock.window.Hide()
}

// SetOnClosed sets the handler run when the window is closed.
func (clock *Window) SetOnClosed(handler func()) {
	clock.window.SetOnClosed(handler)
}

// Window exposes the underlying fyne window for dialogs.
func (clock *Window) Window() fyne.Window {
	return clock.window
}

// Render applies an engine event. It is safe to call from any goroutine.
func (clock *Window) Render(event pomodoro.Event) {
	fyne.Do(func() {
		clock.renderUnsafe(event)
	})
}

func (clock *Window) applyStateUnsafe(state pomodoro.State) {
	clock.interval = state.Config.LongBreakInterval
	clock.count = state.PomodoroCount
	clock.setModeUnsafe(state.Mode)
	clock.setRemainingUnsafe(state.Remaining)
	clock.setControlsUnsafe(display.ControlsFor(state.Running, state.Resumable))

	next, _ := model.NextMode(state.Mode, state.PomodoroCount, state.Config.LongBreakInterval)
	clock.setNextUnsafe(next, state.Config.Duration(next))
}

func (clock *Window) renderUnsafe(event pomodoro.Event) {
	switch event.Type {
	case pomodoro.EventTick:
		clock.setRemainingUnsafe(event.Remaining)
	case pomodoro.EventModeChanged:
		clock.count = event.PomodoroCount
		clock.setModeUnsafe(event.Mode)
		clock.setRemainingUnsafe(event.Remaining)
		clock.setNextUnsafe(event.NextMode, event.NextRemaining)
	case pomodoro.EventRunStateChanged:
		clock.setControlsUnsafe(display.ControlsFor(event.Running, event.Resumable))
	case pomodoro.EventConfigChanged:
		if event.Field == model.FieldLongBreakInterval {
			clock.interval = event.Value
			clock.count = event.PomodoroCount
			clock.setDotsUnsafe()
		}
		clock.setNextUnsafe(event.NextMode, event.NextRemaining)
	case pomodoro.EventSessionComplete:
		clock.flash.Flash(context.Background(), flashColor, nil)
	}
}

func (clock *Window) setRemainingUnsafe(remaining time.Duration) {
	clock.clockLabel.Text = display.Clock(remaining)
	clock.clockLabel.Refresh()
	clock.window.SetTitle(display.Title(clock.mode, remaining))
}

func (clock *Window) setModeUnsafe(mode model.Mode) {
	clock.mode = mode
	clock.paintUnsafe(nil)
	clock.modeLabel.Text = mode.Label()
	clock.modeLabel.Refresh()
	for buttonMode, button := range clock.modeButtons {
		if buttonMode == mode {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.LowImportance
		}
		button.Refresh()
	}
	clock.setDotsUnsafe()
}

func (clock *Window) setDotsUnsafe() {
	clock.dots.Objects = nil
	for _, completed := range display.SessionDots(clock.count, clock.interval) {
		fill := dotColor
		if completed {
			fill = dotDoneColor
		}
		dot := canvas.NewCircle(fill)
		clock.dots.Add(dot)
	}
	clock.dots.Refresh()
}

func (clock *Window) setNextUnsafe(mode model.Mode, duration time.Duration) {
	clock.nextLabel.SetText(display.NextSession(mode, duration))
}

func (clock *Window) setControlsUnsafe(controls display.Controls) {
	clock.startButton.SetText(controls.StartLabel)
	setVisible(clock.startButton, controls.ShowStart)
	setVisible(clock.pauseButton, controls.ShowPause)
	setVisible(clock.resetButton, controls.ShowReset)
}

// paintUnsafe fills the background; nil restores the colour of the current mode.
func (clock *Window) paintUnsafe(fill color.Color) {
	if fill == nil {
		fill = modeColor(clock.mode)
	}
	clock.background.FillColor = fill
	clock.background.Refresh()
}

func setVisible(object fyne.CanvasObject, visible bool) {
	if visible {
		object.Show()
		return
	}
	object.Hide()
}

func modeColor(mode model.Mode) color.Color {
	switch mode {
	case model.ModeShortBreak:
		return shortBreakColor
	case model.ModeLongBreak:
		return longBreakColor
	default:
		return pomodoroColor
	}
}
