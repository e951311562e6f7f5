// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(PlaybackMessage); ok {
		return m.handlePlaybackMsg(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case graceTimerMsg:
		msg.fn()
		return m, watchTimers(m.sched)

	case MPRISRequestMsg:
		m.handleRequest(msg)
		return m, watchRequests(m.requests)
	}

	return m, nil
}
