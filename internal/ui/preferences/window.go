package preferences

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onChange func(model.Field, int)
	onAlarm  func(bool)
	entries  map[model.Field]*widget.Entry
	alarm    *widget.Check
}

// New creates a preferences window. onChange receives each edited field;
// the stored value comes back through SetValue.
func New(app fyne.App, settings Settings, onChange func(model.Field, int), onAlarm func(bool)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	prefs := &Window{
		window:   window,
		settings: settings,
		onChange: onChange,
		onAlarm:  onAlarm,
		entries:  make(map[model.Field]*widget.Entry, len(model.Fields)),
	}

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	for _, field := range model.Fields {
		entry := widget.NewEntry()
		entry.SetText(strconv.Itoa(settings.value(field)))
		prefs.entries[field] = entry
		form.Add(container.NewHBox(widget.NewLabel(field.Label()), layout.NewSpacer(), entry, widget.NewLabel(field.Unit())))
	}

	prefs.alarm = widget.NewCheck("Play alarm when a session ends", func(checked bool) {
		prefs.settings.Alarm = checked
		if prefs.onAlarm != nil {
			prefs.onAlarm(checked)
		}
	})
	prefs.alarm.Checked = settings.Alarm
	form.Add(prefs.alarm)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	closeButton := widget.NewButton("Close", window.Hide)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), closeButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 280))

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the values currently held by the window.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// SetValue reflects a stored field value. Callers on other goroutines must
// wrap it in fyne.Do.
func (prefs *Window) SetValue(field model.Field, value int) {
	entry, ok := prefs.entries[field]
	if !ok {
		return
	}
	prefs.settings = prefs.settings.with(field, value)
	entry.SetText(strconv.Itoa(value))
}

func (prefs *Window) handleSave() {
	for _, field := range model.Fields {
		value, err := strconv.Atoi(prefs.entries[field].Text)
		if err != nil {
			prefs.entries[field].SetText(strconv.Itoa(prefs.settings.value(field)))
			continue
		}
		if value == prefs.settings.value(field) {
			continue
		}
		if prefs.onChange != nil {
			prefs.onChange(field, value)
		}
	}
	prefs.window.Hide()
}
