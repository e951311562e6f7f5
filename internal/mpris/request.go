// Package mpris exposes the player over the MPRIS D-Bus interface so that
// desktop media keys and applets can drive it.
package mpris

import (
	"errors"
	"time"

	"github.com/llehouerou/scrubber/internal/player"
)

// ErrClosed is returned for calls that arrive after Close.
var ErrClosed = errors.New("mpris adapter closed")

// Kind identifies what a Request asks for.
type Kind int

const (
	Play Kind = iota
	Pause
	PlayPause
	// Seek moves by Request.Offset relative to the current position.
	Seek
	// SetPosition moves to Request.Position.
	SetPosition
	SetVolume
)

func (k Kind) String() string {
	switch k {
	case Play:
		return "play"
	case Pause:
		return "pause"
	case PlayPause:
		return "play-pause"
	case Seek:
		return "seek"
	case SetPosition:
		return "set-position"
	case SetVolume:
		return "set-volume"
	}
	return "unknown"
}

// Request is a mutating call received over D-Bus. The adapter never
// touches the player itself; requests are applied by the UI loop.
type Request struct {
	Kind     Kind
	Offset   time.Duration
	Position time.Duration
	Volume   float64
}

// TrackSource is implemented by handles that know what they are playing.
type TrackSource interface {
	TrackInfo() *player.TrackInfo
}
