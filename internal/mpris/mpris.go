//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/playback"
)

const requestBuffer = 8

// Adapter serves MPRIS over the session bus. Reads go straight to the
// handle; writes are queued on Requests for the UI loop to apply.
type Adapter struct {
	server    *server.Server
	requests  chan Request
	done      chan struct{}
	closeOnce sync.Once
	log       logrus.FieldLogger
}

// New creates the adapter and starts serving in the background.
func New(h playback.Handle, log logrus.FieldLogger) (*Adapter, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	a := &Adapter{
		requests: make(chan Request, requestBuffer),
		done:     make(chan struct{}),
		log:      log.WithField("component", "mpris"),
	}

	a.server = server.NewServer("scrubber", &rootAdapter{}, newPlayerAdapter(h, a.send))

	go func() {
		if err := a.server.Listen(); err != nil {
			a.log.WithError(err).Warn("mpris server stopped")
		}
	}()

	return a, nil
}

// Requests delivers mutating calls in arrival order.
func (a *Adapter) Requests() <-chan Request {
	return a.requests
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	var err error
	a.closeOnce.Do(func() {
		close(a.done)
		err = a.server.Stop()
	})
	return err
}

func (a *Adapter) send(r Request) error {
	a.log.WithField("request", r.Kind.String()).Debug("request received")
	select {
	case a.requests <- r:
		return nil
	case <-a.done:
		return ErrClosed
	}
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil
}

func (r *rootAdapter) Quit() error {
	return nil
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Scrubber", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav", "audio/ogg"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	handle playback.Handle
	send   func(Request) error
}

func newPlayerAdapter(h playback.Handle, send func(Request) error) *playerAdapter {
	return &playerAdapter{handle: h, send: send}
}

// Single track: there is nothing to skip to.
func (p *playerAdapter) Next() error     { return nil }
func (p *playerAdapter) Previous() error { return nil }

func (p *playerAdapter) Pause() error {
	return p.send(Request{Kind: Pause})
}

func (p *playerAdapter) PlayPause() error {
	return p.send(Request{Kind: PlayPause})
}

func (p *playerAdapter) Stop() error {
	return p.send(Request{Kind: Pause})
}

func (p *playerAdapter) Play() error {
	return p.send(Request{Kind: Play})
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.send(Request{Kind: Seek, Offset: time.Duration(offset) * time.Microsecond})
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	return p.send(Request{Kind: SetPosition, Position: time.Duration(position) * time.Microsecond})
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch {
	case p.handle.ReadyState() == playback.HaveNothing:
		return types.PlaybackStatusStopped, nil
	case p.handle.Paused():
		return types.PlaybackStatusPaused, nil
	}
	return types.PlaybackStatusPlaying, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	ts, ok := p.handle.(TrackSource)
	if !ok {
		return types.Metadata{}, nil
	}
	track := ts.TrackInfo()
	if track == nil {
		return types.Metadata{}, nil
	}

	length := p.handle.Duration()
	if length <= 0 {
		length = track.Duration
	}
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(track.Path)),
		Length:  types.Microseconds(length.Microseconds()),
		Title:   track.Title,
		Album:   track.Album,
		ArtUrl:  artURL(track.Path),
	}
	if track.Artist != "" {
		meta.Artist = []string{track.Artist}
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.handle.Volume(), nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	return p.send(Request{Kind: SetVolume, Volume: v})
}

func (p *playerAdapter) Position() (int64, error) {
	return p.handle.CurrentTime().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.handle.ReadyState().AtLeast(playback.PlayableThreshold), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.handle.Duration() > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
