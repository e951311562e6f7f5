package controls

// Icon is the glyph shown on the play button.
type Icon int

const (
	PlayIcon Icon = iota
	PauseIcon
)

// String returns the icon name.
func (i Icon) String() string {
	switch i {
	case PlayIcon:
		return "play"
	case PauseIcon:
		return "pause"
	default:
		return "unknown"
	}
}

// VolumeTier selects the volume button glyph.
type VolumeTier int

const (
	VolumeFull VolumeTier = iota
	VolumeMedium
	VolumeLow
)

// String returns the tier name.
func (t VolumeTier) String() string {
	switch t {
	case VolumeFull:
		return "full"
	case VolumeMedium:
		return "medium"
	case VolumeLow:
		return "low"
	default:
		return "unknown"
	}
}

// Tier thresholds on the [0,1] volume scale.
const (
	fullThreshold = 0.5
	lowThreshold  = 0.05
)

// TierFor maps a volume level to its tier.
func TierFor(volume float64) VolumeTier {
	switch {
	case volume >= fullThreshold:
		return VolumeFull
	case volume > lowThreshold:
		return VolumeMedium
	default:
		return VolumeLow
	}
}

// VisualState is what the render surface paints. It is derived from engine
// events and drag previews and is never read back as playback truth.
type VisualState struct {
	ProgressRatio    float64
	VolumeRatio      float64
	CurrentTimeLabel string
	TotalTimeLabel   string
	Icon             Icon
	VolumeTier       VolumeTier
	LoadingVisible   bool
	ControlsVisible  bool
}

// InitialVisualState returns the state shown before anything is loaded.
func InitialVisualState() VisualState {
	return VisualState{
		CurrentTimeLabel: "0:00",
		TotalTimeLabel:   "0:00",
		Icon:             PlayIcon,
		VolumeTier:       VolumeFull,
		LoadingVisible:   true,
	}
}
