package pomodoro

import (
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// Config contains runtime options for Engine.
type Config struct {
	TickInterval time.Duration
	Scheduler    Scheduler
	Now          func() time.Time
}

// Engine is the pomodoro state machine. It owns the countdown and emits
// events for whatever renders it.
type Engine struct {
	mu        sync.Mutex
	config    model.TimerConfig
	options   Config
	mode      model.Mode
	remaining int
	running   bool
	resumable bool
	count     int

	// cancelTick releases the active schedule; generation tags it so a tick
	// racing a cancel is ignored.
	cancelTick func()
	generation uint64

	events []chan Event
	closed bool
}

// New creates an Engine in the paused focus state.
func New(config model.TimerConfig, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Scheduler == nil {
		options.Scheduler = TickerScheduler{}
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	config = config.Normalize(model.DefaultMinimum)
	return &Engine{
		config:    config,
		options:   options,
		mode:      model.ModePomodoro,
		remaining: config.Seconds(model.ModePomodoro),
	}
}

// Subscribe registers a new observer channel.
// Events are dropped for a subscriber whose buffer is full.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// Snapshot returns the current state.
func (engine *Engine) Snapshot() State {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return State{
		Mode:          engine.mode,
		Remaining:     seconds(engine.remaining),
		Running:       engine.running,
		Resumable:     engine.resumable,
		PomodoroCount: engine.count,
		Config:        engine.config,
	}
}

// NextSession previews the session that follows the current one.
func (engine *Engine) NextSession() (model.Mode, time.Duration) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	next, _ := engine.nextLocked()
	return next, engine.config.Duration(next)
}

// Configure sets a duration or the long break interval, clamped to
// [minimum, field max], and returns the stored value.
func (engine *Engine) Configure(field model.Field, value, minimum int) int {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return 0
	}
	if _, err := model.ParseField(string(field)); err != nil {
		return 0
	}

	clamped := model.Clamp(field, value, minimum)
	engine.config = engine.config.With(field, clamped)
	if field == model.FieldLongBreakInterval {
		engine.fitCountLocked()
	}

	if mode, ok := field.Mode(); ok && mode == engine.mode && !engine.running {
		engine.remaining = engine.config.Seconds(mode)
		if engine.resumable {
			engine.resumable = false
			engine.emitRunStateLocked()
		}
		engine.emitTickLocked()
	}

	next, _ := engine.nextLocked()
	engine.emitLocked(Event{
		Type:          EventConfigChanged,
		Mode:          engine.mode,
		Remaining:     seconds(engine.remaining),
		PomodoroCount: engine.count,
		Field:         field,
		Value:         clamped,
		NextMode:      next,
		NextRemaining: engine.config.Duration(next),
	})
	return clamped
}

// Start begins counting down. Calling it while running does nothing.
func (engine *Engine) Start() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.startLocked()
}

// Pause stops the countdown and keeps the remaining time.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if !engine.running {
		return
	}
	engine.stopLocked()
	engine.resumable = true
	engine.emitRunStateLocked()
}

// Reset stops the countdown and refills the current session.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}
	engine.stopLocked()
	engine.resumable = false
	engine.remaining = engine.config.Seconds(engine.mode)
	engine.emitRunStateLocked()
	engine.emitTickLocked()
}

// Tick advances the countdown by one second. It does nothing unless running.
func (engine *Engine) Tick() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.tickLocked()
}

// Skip advances to the next session as if the current one had finished,
// leaving the new session paused.
func (engine *Engine) Skip() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}
	engine.advanceLocked()
}

// SwitchMode stops the countdown and loads a full session of mode.
func (engine *Engine) SwitchMode(mode model.Mode) {
	if !mode.Valid() {
		return
	}
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}
	engine.switchModeLocked(mode)
}

// Close stops the countdown and closes observers.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.stopLocked()
	engine.closed = true
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) startLocked() {
	if engine.running || engine.closed {
		return
	}
	engine.running = true
	engine.generation++
	generation := engine.generation
	engine.cancelTick = engine.options.Scheduler.Every(engine.options.TickInterval, func() {
		engine.scheduledTick(generation)
	})
	engine.emitRunStateLocked()
}

func (engine *Engine) stopLocked() {
	if engine.cancelTick != nil {
		engine.cancelTick()
		engine.cancelTick = nil
	}
	engine.running = false
}

func (engine *Engine) scheduledTick(generation uint64) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if generation != engine.generation {
		return
	}
	engine.tickLocked()
}

func (engine *Engine) tickLocked() {
	if !engine.running {
		return
	}
	if engine.remaining > 0 {
		engine.remaining--
	}
	engine.emitTickLocked()
	if engine.remaining > 0 {
		return
	}

	finished := engine.mode
	engine.stopLocked()
	engine.emitLocked(Event{
		Type:          EventSessionComplete,
		Mode:          finished,
		PomodoroCount: engine.count,
	})
	engine.advanceLocked()
	engine.startLocked()
}

func (engine *Engine) advanceLocked() {
	next, count := engine.nextLocked()
	engine.count = count
	engine.switchModeLocked(next)
}

// fitCountLocked keeps the count below the interval so the next focus
// session still ends on a long break. During a long break the count may
// equal the interval.
func (engine *Engine) fitCountLocked() {
	interval := engine.config.LongBreakInterval
	if engine.mode == model.ModeLongBreak {
		if engine.count > interval {
			engine.count = interval
		}
		return
	}
	if engine.count >= interval {
		engine.count = interval - 1
	}
}

func (engine *Engine) nextLocked() (model.Mode, int) {
	return model.NextMode(engine.mode, engine.count, engine.config.LongBreakInterval)
}

func (engine *Engine) switchModeLocked(mode model.Mode) {
	engine.stopLocked()
	engine.resumable = false
	engine.mode = mode
	engine.remaining = engine.config.Seconds(mode)

	next, _ := engine.nextLocked()
	engine.emitLocked(Event{
		Type:          EventModeChanged,
		Mode:          mode,
		Remaining:     seconds(engine.remaining),
		PomodoroCount: engine.count,
		NextMode:      next,
		NextRemaining: engine.config.Duration(next),
	})
	engine.emitTickLocked()
	engine.emitRunStateLocked()
}

func (engine *Engine) emitTickLocked() {
	engine.emitLocked(Event{
		Type:      EventTick,
		Mode:      engine.mode,
		Remaining: seconds(engine.remaining),
	})
}

func (engine *Engine) emitRunStateLocked() {
	engine.emitLocked(Event{
		Type:      EventRunStateChanged,
		Mode:      engine.mode,
		Remaining: seconds(engine.remaining),
		Running:   engine.running,
		Resumable: engine.resumable,
	})
}

func (engine *Engine) emitLocked(event Event) {
	event.At = engine.options.Now()
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func seconds(value int) time.Duration {
	return time.Duration(value) * time.Second
}
