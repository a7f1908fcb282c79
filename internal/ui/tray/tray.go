package tray

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"pomodoro/internal/core/display"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow     func()
	OnStart    func()
	OnPause    func()
	OnReset    func()
	OnSkip     func()
	OnSettings func()
	OnQuit     func()
}

// Icons holds the tray icon for each timer state.
type Icons struct {
	Active fyne.Resource
	Paused fyne.Resource
	Break  fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	icons      Icons
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	menu       *fyne.Menu

	mode      model.Mode
	remaining time.Duration
	running   bool
	resumable bool
}

// New creates a tray manager with the provided callbacks. app may be nil
// when the driver has no system tray.
func New(app desktop.App, icons Icons, state pomodoro.State, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		icons:     icons,
		callbacks: callbacks,
		mode:      state.Mode,
		remaining: state.Remaining,
		running:   state.Running,
		resumable: state.Resumable,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem("", manager.handleToggle)
	manager.resetItem = fyne.NewMenuItem("Reset", call(&manager.callbacks.OnReset))

	manager.menu = fyne.NewMenu("Pomodoro",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", call(&manager.callbacks.OnShow)),
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.resetItem,
		fyne.NewMenuItem("Skip", call(&manager.callbacks.OnSkip)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings", call(&manager.callbacks.OnSettings)),
		fyne.NewMenuItem("Quit", call(&manager.callbacks.OnQuit)),
	)

	manager.updateItems()
	if app != nil {
		app.SetSystemTrayMenu(manager.menu)
	}
	manager.updateIcon()
	return manager
}

// Render applies an engine event. Callers on other goroutines must wrap it
// in fyne.Do.
func (manager *Manager) Render(event pomodoro.Event) {
	switch event.Type {
	case pomodoro.EventTick, pomodoro.EventModeChanged:
		manager.mode = event.Mode
		manager.remaining = event.Remaining
	case pomodoro.EventRunStateChanged:
		manager.running = event.Running
		manager.resumable = event.Resumable
	default:
		return
	}
	manager.updateItems()
	manager.refreshMenu()
	manager.updateIcon()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	status := fmt.Sprintf("%s %s", manager.mode.Label(), display.Clock(manager.remaining))
	if !manager.running {
		status = fmt.Sprintf("%s (paused)", status)
	}
	return status
}

func (manager *Manager) handleToggle() {
	if manager.running {
		if manager.callbacks.OnPause != nil {
			manager.callbacks.OnPause()
		}
		return
	}
	if manager.callbacks.OnStart != nil {
		manager.callbacks.OnStart()
	}
}

func (manager *Manager) updateItems() {
	controls := display.ControlsFor(manager.running, manager.resumable)
	manager.statusItem.Label = manager.Status()
	if controls.ShowPause {
		manager.toggleItem.Label = "Pause"
	} else if controls.StartLabel == display.ResumeLabel {
		manager.toggleItem.Label = "Resume"
	} else {
		manager.toggleItem.Label = "Start"
	}
	manager.resetItem.Disabled = !controls.ShowReset
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}

func (manager *Manager) updateIcon() {
	if manager.app == nil {
		return
	}
	if icon := manager.icon(); icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) icon() fyne.Resource {
	switch {
	case !manager.running:
		return manager.icons.Paused
	case manager.mode == model.ModePomodoro:
		return manager.icons.Active
	default:
		return manager.icons.Break
	}
}

func call(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
