package player

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/playback"
)

// DefaultProgressInterval is how often Progress events are emitted while
// playing.
const DefaultProgressInterval = 250 * time.Millisecond

var (
	// ErrNoSource is returned by Play when no source is loaded.
	ErrNoSource = errors.New("no source loaded")
	// ErrRemoteSource is returned for sources that are not local files.
	ErrRemoteSource = errors.New("remote sources are not supported")
	// ErrUnsupportedFormat is returned for files the engine cannot decode.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Options configures a Player.
type Options struct {
	ProgressInterval time.Duration
	Logger           logrus.FieldLogger
}

// Player is a beep-backed audio engine implementing playback.Handle.
type Player struct {
	playback.Hub

	mu        sync.Mutex
	state     State
	readiness playback.Readiness
	source    string
	file      *os.File
	streamer  beep.StreamSeekCloser
	format    beep.Format
	ctrl      *beep.Ctrl
	volume    *effects.Volume
	trackInfo *TrackInfo
	queued    bool   // the streamer is in the speaker mixer
	gen       uint64 // bumped on every source change

	volumeLevel float64

	seekCh   chan time.Duration
	done     chan struct{}
	closed   bool
	interval time.Duration
	log      logrus.FieldLogger
}

var _ playback.Handle = (*Player)(nil)

// New creates a player with no source and starts its background loops.
func New(opts Options) *Player {
	interval := opts.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	p := &Player{
		state:       Stopped,
		volumeLevel: 1,
		seekCh:      make(chan time.Duration, 1),
		done:        make(chan struct{}),
		interval:    interval,
		log:         log.WithField("component", "player"),
	}
	go p.seekLoop()
	go p.monitorLoop()
	return p
}

// State returns the transport state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// TrackInfo returns tag metadata for the current source, or nil.
func (p *Player) TrackInfo() *TrackInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.trackInfo
}

// Source returns the loaded file path.
func (p *Player) Source() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.source
}

// ReadyState returns how far loading of the current source has come.
func (p *Player) ReadyState() playback.Readiness {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.readiness
}

// Close stops playback, releases the source and signals subscribers.
func (p *Player) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.done)
	p.unloadLocked()
	p.mu.Unlock()

	p.Hub.Close()
	return nil
}

// ensureSpeaker initializes the shared speaker at the rate of the first
// source played.
func ensureSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return speakerSampleRate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, err
	}
	speakerInitialized = true
	speakerSampleRate = rate
	return rate, nil
}

// monitorLoop emits Progress while playing.
func (p *Player) monitorLoop() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			if p.State() == Playing {
				p.EmitProgress(playback.Progress{Position: p.CurrentTime()})
			}
		}
	}
}
