// Package playback defines the contract between the control surface and the
// audio engine it drives.
package playback

import "time"

// Handle is an audio engine the control surface reads from and writes to.
// Implementations must be safe to read from the UI goroutine while they
// play on their own goroutines.
type Handle interface {
	CurrentTime() time.Duration
	SetCurrentTime(pos time.Duration)
	// Duration returns zero while the duration is unknown.
	Duration() time.Duration
	Volume() float64
	SetVolume(level float64)
	Paused() bool
	ReadyState() Readiness

	Play() error
	Pause()
	SetSource(src string) error

	Subscribe() *Subscription
	Close() error
}
