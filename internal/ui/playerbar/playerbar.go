// Package playerbar paints the playback controls and maps terminal cells
// back to slider geometry.
package playerbar

import (
	"strings"

	"github.com/llehouerou/scrubber/internal/controls"
	"github.com/llehouerou/scrubber/internal/icons"
	"github.com/llehouerou/scrubber/internal/ui/render"
	"github.com/llehouerou/scrubber/internal/ui/styles"
)

const (
	timeFilled  = "━"
	timeEmpty   = "─"
	timeKnob    = "●"
	volumeCell  = "██"
	volumeEmpty = "░░"
	volumeKnob  = "▬▬"
)

// State holds everything needed to render the bar.
type State struct {
	Visual controls.VisualState
	// Dragging highlights the border while a slider is held.
	Dragging bool
}

// Render paints s into the regions of l.
func Render(s State, l Layout) string {
	v := s.Visual
	st := styles.T().S()

	play := icons.Loading()
	if v.ControlsVisible {
		play = icons.Transport(v.Icon)
	}

	var content strings.Builder
	content.WriteString(st.Button.Render(render.Pad(play, buttonWidth)))
	content.WriteString(" ")
	content.WriteString(st.Base.Render(render.Fit(v.CurrentTimeLabel, labelWidth)))
	content.WriteString(" ")
	content.WriteString(renderTimeBar(v.ProgressRatio, l))
	content.WriteString(" ")
	content.WriteString(st.Base.Render(render.Fit(v.TotalTimeLabel, labelWidth)))
	content.WriteString(" ")
	content.WriteString(st.Button.Render(render.Pad(icons.Volume(v.VolumeTier), buttonWidth)))

	bar := styles.T().Panel(s.Dragging).
		Padding(0, 1).
		Width(max(l.Width-2, 0)).
		Render(content.String())

	if !l.VolumeOpen || l.Volume.Empty() {
		return bar
	}
	return bar + "\n" + renderVolumeColumn(v.VolumeRatio, l)
}

func renderTimeBar(ratio float64, l Layout) string {
	n := l.Time.W
	if n <= 0 {
		return ""
	}
	t := styles.T()
	knob := cellIndex(ratio, n)
	return styles.Fill(timeFilled, knob, n, t.Primary, t.Secondary) +
		t.S().Knob.Render(timeKnob) +
		t.S().Subtle.Render(strings.Repeat(timeEmpty, n-knob-1))
}

// renderVolumeColumn draws the column top down; it fills from the bottom.
func renderVolumeColumn(ratio float64, l Layout) string {
	t := styles.T()
	n := l.Volume.H
	knob := cellIndex(ratio, n)
	filled := styles.FillReverse(volumeCell, knob, n, t.Primary, t.Secondary)
	indent := render.EmptyLine(l.Volume.X)

	lines := make([]string, n)
	for i := range n {
		fromBottom := n - 1 - i
		var cell string
		switch {
		case fromBottom == knob:
			cell = t.S().Knob.Render(volumeKnob)
		case fromBottom < knob:
			cell = filled[knob-1-fromBottom]
		default:
			cell = t.S().Subtle.Render(volumeEmpty)
		}
		lines[i] = indent + cell
	}
	return strings.Join(lines, "\n")
}

// RenderTitle renders the track title line, cut to width.
func RenderTitle(title string, width int) string {
	if title == "" || width <= 0 {
		return ""
	}
	return styles.T().S().Title.Render(render.TruncateEllipsis(render.Sanitize(title), width))
}
