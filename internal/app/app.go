// internal/app/app.go
package app

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/controls"
	"github.com/llehouerou/scrubber/internal/errmsg"
	"github.com/llehouerou/scrubber/internal/keymap"
	"github.com/llehouerou/scrubber/internal/mpris"
	"github.com/llehouerou/scrubber/internal/playback"
	"github.com/llehouerou/scrubber/internal/player"
	"github.com/llehouerou/scrubber/internal/slider"
)

const (
	defaultSeekStep   = 5 * time.Second
	defaultVolumeStep = 0.05
)

// Options configures a Model.
type Options struct {
	Handle playback.Handle
	// Source is loaded when the model is created, if set.
	Source     string
	SeekStep   time.Duration
	VolumeStep float64
	// Grace is passed to controls.Options.
	Grace    time.Duration
	Requests <-chan mpris.Request
	Logger   logrus.FieldLogger
}

// Model is the root application model.
type Model struct {
	handle     playback.Handle
	controller *controls.Controller
	facade     *controls.Facade
	sub        *playback.Subscription
	sched      *scheduler
	requests   <-chan mpris.Request

	keys     *keymap.KeyMap
	help     help.Model
	showHelp bool

	seekStep   time.Duration
	volumeStep float64

	volumeOpen bool
	title      string
	status     string
	width      int
	height     int

	log logrus.FieldLogger
}

// New creates the model, subscribes to the engine and loads opts.Source.
// A source that fails to load is reported on the status line.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	if opts.SeekStep <= 0 {
		opts.SeekStep = defaultSeekStep
	}
	if opts.VolumeStep <= 0 {
		opts.VolumeStep = defaultVolumeStep
	}

	sched := newScheduler()
	sub := opts.Handle.Subscribe()
	c := controls.NewController(opts.Handle, controls.Options{
		Grace:     opts.Grace,
		Scheduler: sched,
		Logger:    log,
	})

	m := Model{
		handle:     opts.Handle,
		controller: c,
		facade:     controls.NewFacade(c),
		sub:        sub,
		sched:      sched,
		requests:   opts.Requests,
		keys:       keymap.New(),
		help:       help.New(),
		seekStep:   opts.SeekStep,
		volumeStep: opts.VolumeStep,
		log:        log.WithField("component", "app"),
	}

	if opts.Source != "" {
		m.loadSource(opts.Source)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		watchEngine(m.sub),
		watchTimers(m.sched),
		watchRequests(m.requests),
	)
}

// Controller returns the controls controller.
func (m Model) Controller() *controls.Controller { return m.controller }

// Status returns the current status line text.
func (m Model) Status() string { return m.status }

// VolumeOpen reports whether the volume panel is shown.
func (m Model) VolumeOpen() bool { return m.volumeOpen }

// Close cancels drags and stops the timer pump. The handle is left open.
func (m Model) Close() {
	m.controller.Close()
	m.sched.close()
}

func (m *Model) loadSource(src string) {
	m.title = filepath.Base(src)
	if err := m.facade.SetSource(src); err != nil {
		m.log.WithError(err).WithField("source", src).Warn("source rejected")
		m.status = errmsg.FormatWith(errmsg.OpSourceLoad, filepath.Base(src), err)
		return
	}
	m.status = ""
	m.refreshTitle()
}

// refreshTitle takes the title from the engine's tags when it has them.
func (m *Model) refreshTitle() {
	ts, ok := m.handle.(mpris.TrackSource)
	if !ok {
		return
	}
	if t := ts.TrackInfo(); t != nil {
		m.title = t.DisplayTitle()
	}
}

func (m Model) dragging() bool {
	return m.controller.Dragging(slider.TimeSlider) || m.controller.Dragging(slider.VolumeSlider)
}

var _ mpris.TrackSource = (*player.Player)(nil)
