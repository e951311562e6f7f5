package playerbar

import (
	"github.com/llehouerou/scrubber/internal/slider"
)

// Bar geometry in terminal cells. The bar is drawn at the top-left of the
// screen: a rounded box whose single content row holds
//
//	[play] [current] [━━━━●──────] [total] [volume]
//
// and, when open, the volume column hangs below the volume button.
const (
	BarHeight           = 3
	DefaultVolumeHeight = 8

	buttonWidth = 2
	labelWidth  = 5
	contentX    = 2 // border + padding
	contentY    = 1
	fixedWidth  = buttonWidth + 1 + labelWidth + 1 + 1 + labelWidth + 1 + buttonWidth
	footerLines = 2 // title and status below the bar
)

// Rect is a cell rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cell.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Region identifies what a cell belongs to.
type Region int

const (
	RegionNone Region = iota
	RegionPlay
	RegionVolumeButton
	RegionTimeSlider
	RegionVolumeSlider
)

// String returns the region name.
func (r Region) String() string {
	switch r {
	case RegionPlay:
		return "play"
	case RegionVolumeButton:
		return "volume-button"
	case RegionTimeSlider:
		return "time-slider"
	case RegionVolumeSlider:
		return "volume-slider"
	default:
		return "none"
	}
}

// Layout holds the hit regions for one frame.
type Layout struct {
	Width        int
	Play         Rect
	CurrentLabel Rect
	Time         Rect
	TotalLabel   Rect
	VolumeButton Rect
	Volume       Rect // empty unless VolumeOpen
	VolumeOpen   bool
}

// NewLayout computes the regions for a terminal of the given size.
func NewLayout(width, height int, volumeOpen bool) Layout {
	barWidth := max(width-2*contentX-fixedWidth, 0)

	l := Layout{Width: width, VolumeOpen: volumeOpen}
	x := contentX
	l.Play = Rect{X: x, Y: contentY, W: buttonWidth, H: 1}
	x += buttonWidth + 1
	l.CurrentLabel = Rect{X: x, Y: contentY, W: labelWidth, H: 1}
	x += labelWidth + 1
	l.Time = Rect{X: x, Y: contentY, W: barWidth, H: 1}
	x += barWidth + 1
	l.TotalLabel = Rect{X: x, Y: contentY, W: labelWidth, H: 1}
	x += labelWidth + 1
	l.VolumeButton = Rect{X: x, Y: contentY, W: buttonWidth, H: 1}

	if volumeOpen {
		h := min(DefaultVolumeHeight, height-BarHeight-footerLines)
		l.Volume = Rect{X: l.VolumeButton.X, Y: BarHeight, W: buttonWidth, H: max(h, 0)}
	}
	return l
}

// Height returns the number of rows Render produces.
func (l Layout) Height() int {
	if l.VolumeOpen {
		return BarHeight + l.Volume.H
	}
	return BarHeight
}

// HitTest returns the region under cell (x, y).
func (l Layout) HitTest(x, y int) Region {
	switch {
	case l.Play.Contains(x, y):
		return RegionPlay
	case l.VolumeButton.Contains(x, y):
		return RegionVolumeButton
	case l.onSlider(slider.TimeSlider, x, y):
		return RegionTimeSlider
	case l.VolumeOpen && l.onSlider(slider.VolumeSlider, x, y):
		return RegionVolumeSlider
	}
	return RegionNone
}

// onSlider tests the cell centre against the same geometry drags use.
func (l Layout) onSlider(id slider.ID, x, y int) bool {
	return l.Geometry(id).Contains(CellPoint(x, y))
}

// CellPoint converts a cell to the pointer position at its centre.
func CellPoint(x, y int) slider.Point {
	return slider.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// Geometry returns the slider geometry for id.
func (l Layout) Geometry(id slider.ID) slider.Geometry {
	if id == slider.VolumeSlider {
		return slider.Geometry{
			Origin:      slider.Point{X: float64(l.Volume.X), Y: float64(l.Volume.Y)},
			Width:       float64(l.Volume.W),
			Height:      float64(l.Volume.H),
			Orientation: slider.Vertical,
		}
	}
	return slider.Geometry{
		Origin:      slider.Point{X: float64(l.Time.X), Y: float64(l.Time.Y)},
		Width:       float64(l.Time.W),
		Height:      float64(l.Time.H),
		Orientation: slider.Horizontal,
	}
}

// TimeHandleX returns the column of the time slider knob for ratio.
func (l Layout) TimeHandleX(ratio float64) int {
	return l.Time.X + cellIndex(ratio, l.Time.W)
}

// VolumeHandleY returns the row of the volume slider knob for ratio.
func (l Layout) VolumeHandleY(ratio float64) int {
	return l.Volume.Y + l.Volume.H - 1 - cellIndex(ratio, l.Volume.H)
}

// OnHandle reports whether cell (x, y) is on or next to the knob of slider
// id drawn at ratio. Presses there start a drag; elsewhere on the track
// they are clicks.
func (l Layout) OnHandle(id slider.ID, x, y int, ratio float64) bool {
	if id == slider.VolumeSlider {
		return l.onSlider(id, x, y) && abs(y-l.VolumeHandleY(ratio)) <= 1
	}
	return l.onSlider(id, x, y) && abs(x-l.TimeHandleX(ratio)) <= 1
}

// cellIndex maps ratio to one of n cells, counted from the slider's start.
func cellIndex(ratio float64, n int) int {
	if n <= 0 {
		return 0
	}
	return min(max(int(ratio*float64(n)), 0), n-1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
