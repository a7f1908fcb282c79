package animation

import (
	"context"
	"image/color"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

type recorder struct {
	mu     sync.Mutex
	colors []color.Color
}

func (rec *recorder) paint(value color.Color) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.colors = append(rec.colors, value)
}

func (rec *recorder) snapshot() []color.Color {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]color.Color(nil), rec.colors...)
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("flash did not finish")
	}
}

func TestFlashAlternatesAndEndsOnBase(t *testing.T) {
	rec := &recorder{}
	engine := New(Config{Pulses: 2, On: Range{Min: time.Millisecond}, Off: Range{Min: time.Millisecond}}, rec.paint)

	waitDone(t, engine.Flash(context.Background(), red, white))

	assert.Equal(t, []color.Color{red, white, red, white}, rec.snapshot())
}

func TestStopInterruptsFlash(t *testing.T) {
	rec := &recorder{}
	engine := New(Config{Pulses: 3, On: Range{Min: time.Hour}}, rec.paint)

	done := engine.Flash(context.Background(), red, white)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, time.Millisecond)
	engine.Stop()
	waitDone(t, done)

	assert.Equal(t, []color.Color{red}, rec.snapshot())
}

func TestNewFlashCancelsPrevious(t *testing.T) {
	rec := &recorder{}
	engine := New(Config{Pulses: 1, On: Range{Min: time.Hour}}, rec.paint)

	first := engine.Flash(context.Background(), red, white)
	second := engine.Flash(context.Background(), white, red)

	waitDone(t, first)
	engine.Stop()
	waitDone(t, second)
}

func TestRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Equal(t, time.Second, Range{Min: time.Second, Max: time.Millisecond}.Random(rng))
	for i := 0; i < 20; i++ {
		value := Range{Min: time.Second, Max: 2 * time.Second}.Random(rng)
		assert.GreaterOrEqual(t, value, time.Second)
		assert.Less(t, value, 2*time.Second)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, 3, config.Pulses)
	assert.LessOrEqual(t, config.On.Min, config.On.Max)
}
