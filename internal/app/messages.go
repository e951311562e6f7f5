// Package app wires the playback controls into a Bubble Tea program.
package app

import (
	"github.com/llehouerou/scrubber/internal/mpris"
	"github.com/llehouerou/scrubber/internal/playback"
)

// PlaybackMessage is implemented by messages pumped from the engine's
// subscription. Update routes them to handlePlaybackMsg.
type PlaybackMessage interface {
	playbackMessage()
}

// ProgressMsg carries a position update.
type ProgressMsg playback.Progress

func (ProgressMsg) playbackMessage() {}

// VolumeMsg carries a volume change.
type VolumeMsg playback.VolumeChange

func (VolumeMsg) playbackMessage() {}

// MetadataMsg is sent once the duration of a new source is known.
type MetadataMsg playback.MetadataReady

func (MetadataMsg) playbackMessage() {}

// CanPlayMsg is sent when the engine can start playing.
type CanPlayMsg struct{}

func (CanPlayMsg) playbackMessage() {}

// EndedMsg is sent when playback reaches the end of the source.
type EndedMsg struct{}

func (EndedMsg) playbackMessage() {}

// EngineErrorMsg wraps an asynchronous engine failure.
type EngineErrorMsg playback.ErrorEvent

func (EngineErrorMsg) playbackMessage() {}

// EngineClosedMsg is sent when the subscription is closed.
type EngineClosedMsg struct{}

func (EngineClosedMsg) playbackMessage() {}

// graceTimerMsg runs a slider timer callback on the Update goroutine.
type graceTimerMsg struct {
	fn func()
}

// MPRISRequestMsg wraps a request received over D-Bus.
type MPRISRequestMsg mpris.Request
