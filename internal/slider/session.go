package slider

import (
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultClickGrace is how long the time slider stays active after a release,
// so the click synthesized on the handle right after it is ignored.
const DefaultClickGrace = 200 * time.Millisecond

// ID identifies a slider.
type ID int

const (
	TimeSlider ID = iota
	VolumeSlider
)

// String returns the slider name.
func (id ID) String() string {
	switch id {
	case TimeSlider:
		return "time"
	case VolumeSlider:
		return "volume"
	default:
		return "unknown"
	}
}

// Phase is the state of a drag gesture.
//
//	Idle ──start──▶ Dragging ──release──▶ Committing ──grace──▶ Idle
//	                    │                      (time slider only)
//	                    └──release (no grace)──────────────────▶ Idle
//
// Cancel returns to Idle from any phase without committing.
type Phase int

const (
	Idle Phase = iota
	Dragging
	Committing
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	case Committing:
		return "Committing"
	default:
		return "Unknown"
	}
}

// Target receives the ratios produced by a session.
type Target interface {
	// Preview shows a ratio without applying it to the engine.
	Preview(id ID, ratio float64)
	// Commit applies a final ratio to the engine.
	Commit(id ID, ratio float64)
}

// Scheduler runs fn after d. The returned stop function cancels a pending
// call and reports whether it did.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, fn func()) func() bool

// AfterFunc implements Scheduler.
func (f SchedulerFunc) AfterFunc(d time.Duration, fn func()) func() bool {
	return f(d, fn)
}

// Options configures a Session.
type Options struct {
	// Grace keeps the session active after release. Zero returns to Idle
	// immediately.
	Grace     time.Duration
	Scheduler Scheduler
	Logger    logrus.FieldLogger
}

// Session tracks one pointer gesture on one slider.
type Session struct {
	id        ID
	phase     Phase
	lastRatio float64
	geometry  Geometry

	target Target
	router *Router
	guard  *Guard

	grace     time.Duration
	sched     Scheduler
	stopGrace func() bool
	gen       uint64

	log logrus.FieldLogger
}

// NewSession creates an idle session for slider id.
func NewSession(id ID, target Target, router *Router, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	if opts.Grace > 0 && opts.Scheduler == nil {
		opts.Scheduler = SchedulerFunc(func(d time.Duration, fn func()) func() bool {
			return time.AfterFunc(d, fn).Stop
		})
	}
	return &Session{
		id:     id,
		target: target,
		router: router,
		grace:  opts.Grace,
		sched:  opts.Scheduler,
		log:    log.WithField("slider", id.String()),
	}
}

// ID returns the slider this session belongs to.
func (s *Session) ID() ID { return s.id }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Active reports whether a gesture is in progress or in its grace window.
func (s *Session) Active() bool { return s.phase != Idle }

// LastRatio returns the most recent ratio computed by this session.
func (s *Session) LastRatio() float64 { return s.lastRatio }

// Start begins a drag at p on a slider with geometry g. The geometry is
// kept for the whole gesture. A gesture already in progress is cancelled.
func (s *Session) Start(p Point, g Geometry) error {
	ratio, err := Ratio(p, g)
	if err != nil {
		s.log.WithError(err).Warn("drag start rejected")
		return err
	}
	if s.phase != Idle {
		s.Cancel()
	}

	s.gen++
	s.geometry = g
	s.lastRatio = ratio
	s.guard = s.router.Acquire(s)
	s.phase = Dragging
	s.log.WithField("ratio", ratio).Debug("drag started")
	return nil
}

// Move updates the preview from pointer position p.
// Ignored unless dragging.
func (s *Session) Move(p Point) {
	if s.phase != Dragging {
		return
	}
	s.update(p)
}

// Release ends the drag at p and commits the final ratio if commit is set.
// A release without movement still commits.
func (s *Session) Release(p Point, commit bool) {
	if s.phase != Dragging {
		return
	}
	s.update(p)
	s.releaseCapture()

	if commit {
		s.log.WithField("ratio", s.lastRatio).Debug("drag committed")
		s.target.Commit(s.id, s.lastRatio)
	}

	if s.grace <= 0 {
		s.phase = Idle
		return
	}

	s.phase = Committing
	gen := s.gen
	s.stopGrace = s.sched.AfterFunc(s.grace, func() {
		s.endGrace(gen)
	})
}

// Click handles a press-and-release on the slider track with no drag.
// It commits at once. Clicks that land while the session is active are
// ignored and return false.
func (s *Session) Click(p Point, g Geometry) (bool, error) {
	if s.Active() {
		return false, nil
	}
	ratio, err := Ratio(p, g)
	if err != nil {
		return false, err
	}
	s.lastRatio = ratio
	s.target.Preview(s.id, ratio)
	s.target.Commit(s.id, ratio)
	return true, nil
}

// Cancel abandons the gesture without committing and returns to Idle.
func (s *Session) Cancel() {
	s.releaseCapture()
	if s.stopGrace != nil {
		s.stopGrace()
		s.stopGrace = nil
	}
	s.gen++
	s.phase = Idle
}

// Close releases everything the session holds.
func (s *Session) Close() {
	s.Cancel()
}

func (s *Session) update(p Point) {
	ratio, err := Ratio(p, s.geometry)
	if err != nil {
		// The geometry was validated in Start.
		return
	}
	s.lastRatio = ratio
	s.target.Preview(s.id, ratio)
}

func (s *Session) releaseCapture() {
	if s.guard != nil {
		s.guard.Release()
		s.guard = nil
	}
}

func (s *Session) endGrace(gen uint64) {
	if gen != s.gen || s.phase != Committing {
		return
	}
	s.stopGrace = nil
	s.phase = Idle
}
