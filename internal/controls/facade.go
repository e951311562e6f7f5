package controls

import (
	"errors"
	"fmt"
	"time"

	"github.com/llehouerou/scrubber/internal/slider"
)

// ErrPlaybackRejected is returned when the engine refuses to play.
var ErrPlaybackRejected = errors.New("playback rejected")

// Facade is the transport surface used by keys, buttons and MPRIS.
// It is the only writer to the handle besides the Controller.
type Facade struct {
	c *Controller
}

// NewFacade wraps c.
func NewFacade(c *Controller) *Facade {
	return &Facade{c: c}
}

// Controller returns the wrapped controller.
func (f *Facade) Controller() *Controller { return f.c }

// Play shows the pause icon and starts playback. If the engine refuses,
// the play icon comes back and the error wraps ErrPlaybackRejected.
func (f *Facade) Play() error {
	f.c.state.Icon = PauseIcon
	if err := f.c.handle.Play(); err != nil {
		f.c.state.Icon = PlayIcon
		f.c.log.WithError(err).Warn("playback rejected")
		return fmt.Errorf("%w: %w", ErrPlaybackRejected, err)
	}
	return nil
}

// Pause pauses playback.
func (f *Facade) Pause() {
	f.c.handle.Pause()
	f.c.state.Icon = PlayIcon
}

// TogglePlay plays when paused and pauses otherwise.
func (f *Facade) TogglePlay() error {
	if f.c.handle.Paused() {
		return f.Play()
	}
	f.Pause()
	return nil
}

// SetSource cancels any drag, resets the visual state and loads src.
func (f *Facade) SetSource(src string) error {
	f.c.Reset()
	return f.c.handle.SetSource(src)
}

// JumpToTime seeks to pos through the controller's seek policy.
func (f *Facade) JumpToTime(pos time.Duration) bool {
	return f.c.Seek(pos)
}

// Nudge seeks by delta relative to the current position.
func (f *Facade) Nudge(delta time.Duration) bool {
	return f.JumpToTime(f.c.handle.CurrentTime() + delta)
}

// NudgeVolume changes the volume by delta, clamped to [0,1].
func (f *Facade) NudgeVolume(delta float64) {
	f.c.SetVolume(slider.Clamp(f.c.handle.Volume() + delta))
}
