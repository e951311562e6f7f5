package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/scrubber/internal/mpris"
	"github.com/llehouerou/scrubber/internal/playback"
)

// watchEngine waits for the next event on sub and converts it to a tea.Msg.
// Handlers re-arm it after every playback message except EngineClosedMsg.
func watchEngine(sub *playback.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.Progress:
			return ProgressMsg(e)
		case e := <-sub.VolumeChanged:
			return VolumeMsg(e)
		case e := <-sub.MetadataReady:
			return MetadataMsg(e)
		case <-sub.CanPlay:
			return CanPlayMsg{}
		case <-sub.Ended:
			return EndedMsg{}
		case e := <-sub.Error:
			return EngineErrorMsg(e)
		case <-sub.Done:
			return EngineClosedMsg{}
		}
	}
}

// watchTimers waits for the next slider timer to fire.
func watchTimers(s *scheduler) tea.Cmd {
	return func() tea.Msg {
		select {
		case fn := <-s.fired:
			return graceTimerMsg{fn: fn}
		case <-s.done:
			return nil
		}
	}
}

// watchRequests waits for the next MPRIS request.
func watchRequests(ch <-chan mpris.Request) tea.Cmd {
	return waitForChannel(ch, func(r mpris.Request, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return MPRISRequestMsg(r)
	})
}

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}
