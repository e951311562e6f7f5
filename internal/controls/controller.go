// Package controls keeps the on-screen playback controls in sync with an
// audio engine and turns pointer gestures into seeks and volume changes.
//
// Everything here runs on one goroutine. Engine events must be delivered
// by the caller (see app.Model), never from the engine's own goroutines.
package controls

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/playback"
	"github.com/llehouerou/scrubber/internal/slider"
	"github.com/llehouerou/scrubber/internal/timefmt"
)

// SeekTolerance is the distance under which a seek is treated as noise.
const SeekTolerance = time.Second

// Options configures a Controller.
type Options struct {
	// Grace is the time slider's post-release window. Zero means
	// slider.DefaultClickGrace; negative disables it.
	Grace     time.Duration
	Scheduler slider.Scheduler
	Logger    logrus.FieldLogger
}

// Controller owns the playback handle, one drag session per slider and the
// derived VisualState.
type Controller struct {
	handle playback.Handle
	router *slider.Router
	time   *slider.Session
	volume *slider.Session
	state  VisualState
	log    logrus.FieldLogger
}

var _ slider.Target = (*Controller)(nil)

// NewController creates a controller for h and primes it from whatever h
// already knows, since events fired before construction are not replayed.
func NewController(h playback.Handle, opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	grace := opts.Grace
	switch {
	case grace == 0:
		grace = slider.DefaultClickGrace
	case grace < 0:
		grace = 0
	}

	c := &Controller{
		handle: h,
		router: slider.NewRouter(),
		state:  InitialVisualState(),
		log:    log.WithField("component", "controls"),
	}
	c.time = slider.NewSession(slider.TimeSlider, c, c.router, slider.Options{
		Grace:     grace,
		Scheduler: opts.Scheduler,
		Logger:    log,
	})
	c.volume = slider.NewSession(slider.VolumeSlider, c, c.router, slider.Options{
		Logger: log,
	})
	c.prime()
	return c
}

func (c *Controller) prime() {
	ready := c.handle.ReadyState()
	if ready.AtLeast(playback.MetadataThreshold) {
		c.OnMetadata(playback.MetadataReady{Duration: c.handle.Duration()})
		c.OnProgress(playback.Progress{Position: c.handle.CurrentTime()})
	}
	if ready.AtLeast(playback.PlayableThreshold) {
		c.OnCanPlay()
	}
	c.OnVolumeChange(playback.VolumeChange{Volume: c.handle.Volume()})
	if !c.handle.Paused() {
		c.state.Icon = PauseIcon
	}
}

// Handle returns the playback handle.
func (c *Controller) Handle() playback.Handle { return c.handle }

// State returns the current visual state.
func (c *Controller) State() VisualState { return c.state }

// Session returns the drag session for slider id.
func (c *Controller) Session(id slider.ID) *slider.Session {
	if id == slider.VolumeSlider {
		return c.volume
	}
	return c.time
}

// Dragging reports whether slider id has an active session.
func (c *Controller) Dragging(id slider.ID) bool {
	return c.Session(id).Active()
}

// OnMetadata updates the total time label.
func (c *Controller) OnMetadata(e playback.MetadataReady) {
	c.state.TotalTimeLabel = timefmt.FormatDuration(e.Duration)
}

// OnCanPlay hides the loading indicator and shows the controls. Only the
// first call has an effect.
func (c *Controller) OnCanPlay() {
	if c.state.ControlsVisible {
		return
	}
	c.state.LoadingVisible = false
	c.state.ControlsVisible = true
}

// OnProgress updates the progress bar unless the time slider is being
// dragged.
func (c *Controller) OnProgress(e playback.Progress) {
	if c.time.Active() {
		return
	}
	c.state.ProgressRatio = progressRatio(e.Position, c.handle.Duration())
	c.state.CurrentTimeLabel = timefmt.FormatDuration(e.Position)
}

// OnVolumeChange updates the volume slider unless it is being dragged.
func (c *Controller) OnVolumeChange(e playback.VolumeChange) {
	if c.volume.Active() {
		return
	}
	c.setVolumeVisual(e.Volume)
}

// OnEnded puts the play icon back.
func (c *Controller) OnEnded() {
	c.state.Icon = PlayIcon
}

// Seek moves the engine to pos clamped to the track. Targets within
// SeekTolerance of the current position are dropped; Seek reports whether it reached the engine.
func (c *Controller) Seek(pos time.Duration) bool {
	if pos < 0 {
		pos = 0
	}
	if d := c.handle.Duration(); d > 0 && pos > d {
		pos = d
	}
	cur := c.handle.CurrentTime()
	if absDuration(pos-cur) <= SeekTolerance {
		c.log.WithFields(logrus.Fields{
			"target":  pos,
			"current": cur,
		}).Trace("seek suppressed")
		return false
	}
	c.handle.SetCurrentTime(pos)
	return true
}

// SetVolume clamps level to [0,1] and writes it to the engine.
func (c *Controller) SetVolume(level float64) {
	level = slider.Clamp(level)
	c.handle.SetVolume(level)
	c.setVolumeVisual(level)
}

// Preview implements slider.Target.
func (c *Controller) Preview(id slider.ID, ratio float64) {
	switch id {
	case slider.TimeSlider:
		c.state.ProgressRatio = ratio
		c.state.CurrentTimeLabel = timefmt.FormatDuration(scale(ratio, c.handle.Duration()))
	case slider.VolumeSlider:
		c.setVolumeVisual(ratio)
	}
}

// Commit implements slider.Target.
func (c *Controller) Commit(id slider.ID, ratio float64) {
	switch id {
	case slider.TimeSlider:
		c.Seek(scale(ratio, c.handle.Duration()))
	case slider.VolumeSlider:
		c.SetVolume(ratio)
	}
}

// Press starts a drag on slider id.
func (c *Controller) Press(id slider.ID, p slider.Point, g slider.Geometry) error {
	return c.Session(id).Start(p, g)
}

// Click seeks or sets the volume at p. It returns false when the click
// was swallowed by an active session.
func (c *Controller) Click(id slider.ID, p slider.Point, g slider.Geometry) (bool, error) {
	ok, err := c.Session(id).Click(p, g)
	if err != nil {
		c.log.WithError(err).WithField("slider", id.String()).Warn("click rejected")
	}
	return ok, err
}

// Motion forwards pointer motion to the slider holding the capture.
func (c *Controller) Motion(p slider.Point) bool {
	return c.router.Move(p)
}

// Release ends the drag holding the capture, wherever the pointer is.
func (c *Controller) Release(p slider.Point) bool {
	return c.router.Release(p)
}

// CancelDrag abandons any drag without committing and puts the sliders
// back on what the engine reports.
func (c *Controller) CancelDrag() bool {
	if !c.time.Active() && !c.volume.Active() {
		return false
	}
	c.time.Cancel()
	c.volume.Cancel()
	c.setVolumeVisual(c.handle.Volume())
	c.OnProgress(playback.Progress{Position: c.handle.CurrentTime()})
	return true
}

// Reset cancels both drags and returns to the initial visual state.
// The volume is kept since it survives source changes.
func (c *Controller) Reset() {
	c.time.Cancel()
	c.volume.Cancel()
	vol := c.state.VolumeRatio
	c.state = InitialVisualState()
	c.setVolumeVisual(vol)
}

// Close cancels both sessions. It does not close the handle.
func (c *Controller) Close() {
	c.time.Close()
	c.volume.Close()
}

func (c *Controller) setVolumeVisual(v float64) {
	c.state.VolumeRatio = v
	c.state.VolumeTier = TierFor(v)
}

func progressRatio(pos, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	return slider.Clamp(float64(pos) / float64(total))
}

func scale(ratio float64, total time.Duration) time.Duration {
	if total <= 0 {
		return 0
	}
	return time.Duration(math.Round(ratio * float64(total)))
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
