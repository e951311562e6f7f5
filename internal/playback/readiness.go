package playback

// Readiness is how far the engine has come in loading the current source.
type Readiness int

const (
	HaveNothing Readiness = iota
	HaveMetadata
	HaveCurrentData
	HaveFutureData
	HaveEnoughData
)

// Milestones the control surface reacts to.
const (
	MetadataThreshold = HaveMetadata   // duration known
	PlayableThreshold = HaveFutureData // enough buffered to start
)

// String returns the readiness name.
func (r Readiness) String() string {
	switch r {
	case HaveNothing:
		return "HaveNothing"
	case HaveMetadata:
		return "HaveMetadata"
	case HaveCurrentData:
		return "HaveCurrentData"
	case HaveFutureData:
		return "HaveFutureData"
	case HaveEnoughData:
		return "HaveEnoughData"
	default:
		return "Unknown"
	}
}

// AtLeast reports whether r has reached milestone m.
func (r Readiness) AtLeast(m Readiness) bool {
	return r >= m
}
