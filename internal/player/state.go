// internal/player/state.go
package player

// State represents the engine's transport state.
//
//	┌──────────┐  SetSource   ┌──────────┐
//	│  Stopped │ ────────────▶│  Paused  │◀─── end of stream
//	└──────────┘              └──────────┘
//	     ▲                      │      ▲
//	     │ SetSource/Close  Play│      │Pause
//	     │                      ▼      │
//	     │                    ┌──────────┐
//	     └────────────────────│  Playing │
//	                          └──────────┘
//
// A freshly loaded source starts Paused. Reaching the end of the stream
// returns to Paused, and the next Play restarts from the beginning.
// Play while Stopped fails with ErrNoSource.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a source is loaded.
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanResume returns true if the state allows resuming.
func (s State) CanResume() bool {
	return s == Paused
}
