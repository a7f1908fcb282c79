package animation

import "time"

// DefaultConfig returns a short three-pulse flash.
func DefaultConfig() Config {
	return Config{
		Pulses: 3,
		On: Range{
			Min: 400 * time.Millisecond,
			Max: 500 * time.Millisecond,
		},
		Off: Range{
			Min: 250 * time.Millisecond,
			Max: 300 * time.Millisecond,
		},
	}
}
