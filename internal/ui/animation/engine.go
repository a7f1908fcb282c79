package animation

import (
	"context"
	"image/color"
	"math/rand"
	"sync"
	"time"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains flash timing values.
type Config struct {
	Pulses int
	On     Range
	Off    Range
}

// Engine paints flash sequences, one at a time.
type Engine struct {
	mu     sync.Mutex
	config Config
	paint  func(color.Color)
	cancel context.CancelFunc
	rng    *rand.Rand
}

// New creates a flash engine that reports colours through paint.
func New(config Config, paint func(color.Color)) *Engine {
	if config.Pulses <= 0 {
		config.Pulses = 1
	}
	return &Engine{
		config: config,
		paint:  paint,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Flash alternates highlight and base, ending on base. A running flash is
// cancelled first. A nil base is passed through to paint unchanged.
// The returned channel closes when the sequence ends.
func (engine *Engine) Flash(ctx context.Context, highlight, base color.Color) <-chan struct{} {
	done := make(chan struct{})
	engine.start(ctx, func(runCtx context.Context) {
		defer close(done)
		for i := 0; i < engine.config.Pulses; i++ {
			if runCtx.Err() != nil {
				return
			}
			engine.paint(highlight)
			if !sleepWithContext(runCtx, engine.random(engine.config.On)) {
				return
			}
			engine.paint(base)
			if !sleepWithContext(runCtx, engine.random(engine.config.Off)) {
				return
			}
		}
	})
	return done
}

// Stop terminates any active flash without repainting.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go run(runCtx)
}

func (engine *Engine) random(value Range) time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return value.Random(engine.rng)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
