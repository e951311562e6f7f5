package playback

import "time"

// Progress is emitted periodically while the position advances.
type Progress struct {
	Position time.Duration
}

// VolumeChange is emitted when the volume level is set.
type VolumeChange struct {
	Volume float64
}

// MetadataReady is emitted once the duration of a new source is known.
type MetadataReady struct {
	Duration time.Duration
}

// CanPlay is emitted when enough data is available to start playback.
// It may be emitted more than once per source.
type CanPlay struct{}

// Ended is emitted when playback reaches the end of the source.
type Ended struct{}

// ErrorEvent is emitted when the engine fails outside a direct call.
type ErrorEvent struct {
	Operation string // e.g., "decode", "seek"
	Source    string
	Err       error
}
