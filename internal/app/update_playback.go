// internal/app/update_playback.go
package app

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/errmsg"
	"github.com/llehouerou/scrubber/internal/mpris"
	"github.com/llehouerou/scrubber/internal/playback"
)

// handlePlaybackMsg routes engine events to the controller and re-arms
// the pump.
func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressMsg:
		m.controller.OnProgress(playback.Progress(msg))
	case VolumeMsg:
		m.controller.OnVolumeChange(playback.VolumeChange(msg))
	case MetadataMsg:
		m.controller.OnMetadata(playback.MetadataReady(msg))
		m.refreshTitle()
	case CanPlayMsg:
		m.controller.OnCanPlay()
	case EndedMsg:
		m.log.Info("track ended")
		m.controller.OnEnded()
	case EngineErrorMsg:
		m.handleEngineError(playback.ErrorEvent(msg))
	case EngineClosedMsg:
		return m, nil
	}
	return m, watchEngine(m.sub)
}

func (m *Model) handleEngineError(e playback.ErrorEvent) {
	m.log.WithError(e.Err).WithFields(logrus.Fields{
		"operation": e.Operation,
		"source":    e.Source,
	}).Warn("engine error")

	ctx := ""
	if e.Source != "" {
		ctx = filepath.Base(e.Source)
	}
	m.status = errmsg.FormatWith(errmsg.EngineOp(e.Operation), ctx, e.Err)
}

// handleRequest applies an MPRIS request through the same paths as keys.
func (m *Model) handleRequest(r MPRISRequestMsg) {
	switch r.Kind {
	case mpris.Play:
		if err := m.facade.Play(); err != nil {
			m.status = errmsg.Format(errmsg.OpPlaybackStart, err)
		}
	case mpris.Pause:
		m.facade.Pause()
	case mpris.PlayPause:
		m.togglePlay()
	case mpris.Seek:
		m.facade.Nudge(r.Offset)
	case mpris.SetPosition:
		m.facade.JumpToTime(r.Position)
	case mpris.SetVolume:
		m.controller.SetVolume(r.Volume)
	}
}
