package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/scrubber/internal/errmsg"
	"github.com/llehouerou/scrubber/internal/keymap"
	"github.com/llehouerou/scrubber/internal/slider"
	"github.com/llehouerou/scrubber/internal/ui/playerbar"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Resolve(msg) {
	case keymap.ActionQuit:
		m.controller.CancelDrag()
		return m, tea.Quit
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case keymap.ActionPlayPause:
		m.togglePlay()
	case keymap.ActionSeekBack:
		m.facade.Nudge(-m.seekStep)
	case keymap.ActionSeekForward:
		m.facade.Nudge(m.seekStep)
	case keymap.ActionVolumeUp:
		m.facade.NudgeVolume(m.volumeStep)
	case keymap.ActionVolumeDown:
		m.facade.NudgeVolume(-m.volumeStep)
	case keymap.ActionToggleVolume:
		m.toggleVolume()
	case keymap.ActionCancelDrag:
		m.controller.CancelDrag()
	case keymap.ActionNone:
	}
	return m, nil
}

func (m Model) layout() playerbar.Layout {
	return playerbar.NewLayout(m.width, m.height, m.volumeOpen)
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := playerbar.CellPoint(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		m.controller.Motion(p)
		return m, nil
	case tea.MouseActionRelease:
		m.controller.Release(p)
		return m, nil
	case tea.MouseActionPress:
	}

	l := m.layout()
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.handlePress(l, msg.X, msg.Y)
	case tea.MouseButtonWheelUp:
		m.handleWheel(l.HitTest(msg.X, msg.Y), 1)
	case tea.MouseButtonWheelDown:
		m.handleWheel(l.HitTest(msg.X, msg.Y), -1)
	default:
	}
	return m, nil
}

func (m *Model) handlePress(l playerbar.Layout, x, y int) {
	state := m.controller.State()

	switch l.HitTest(x, y) {
	case playerbar.RegionPlay:
		if state.ControlsVisible {
			m.togglePlay()
		}
	case playerbar.RegionVolumeButton:
		m.toggleVolume()
	case playerbar.RegionTimeSlider:
		m.pressSlider(l, slider.TimeSlider, x, y, state.ProgressRatio)
	case playerbar.RegionVolumeSlider:
		m.pressSlider(l, slider.VolumeSlider, x, y, state.VolumeRatio)
	case playerbar.RegionNone:
	}
}

// pressSlider starts a drag when the press lands on the knob and jumps
// there otherwise.
func (m *Model) pressSlider(l playerbar.Layout, id slider.ID, x, y int, ratio float64) {
	p := playerbar.CellPoint(x, y)
	g := l.Geometry(id)

	if l.OnHandle(id, x, y, ratio) {
		if err := m.controller.Press(id, p, g); err != nil {
			m.status = errmsg.Format(errmsg.OpSliderDrag, err)
		}
		return
	}
	if _, err := m.controller.Click(id, p, g); err != nil {
		m.status = errmsg.Format(errmsg.OpSliderClick, err)
	}
}

func (m *Model) handleWheel(region playerbar.Region, dir int) {
	switch region {
	case playerbar.RegionTimeSlider:
		m.facade.Nudge(m.seekStep * time.Duration(dir))
	case playerbar.RegionVolumeSlider, playerbar.RegionVolumeButton:
		m.facade.NudgeVolume(m.volumeStep * float64(dir))
	case playerbar.RegionNone, playerbar.RegionPlay:
	}
}

func (m *Model) togglePlay() {
	if err := m.facade.TogglePlay(); err != nil {
		m.status = errmsg.Format(errmsg.OpPlaybackStart, err)
		return
	}
	m.status = ""
}

// toggleVolume opens or closes the volume panel. Closing it drops any
// volume drag in progress.
func (m *Model) toggleVolume() {
	if m.volumeOpen && m.controller.Dragging(slider.VolumeSlider) {
		m.controller.CancelDrag()
	}
	m.volumeOpen = !m.volumeOpen
}
