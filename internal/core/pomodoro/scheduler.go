package pomodoro

import (
	"sync"
	"time"
)

// Scheduler invokes fn every interval until the returned cancel func is called.
// Cancel must be safe to call more than once and must not block on fn.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// TickerScheduler drives callbacks from a time.Ticker goroutine.
type TickerScheduler struct{}

// Every starts a ticking goroutine.
func (TickerScheduler) Every(interval time.Duration, fn func()) func() {
	stopCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stopCh)
		})
	}
}
