// internal/app/view.go
package app

import (
	"strings"

	"github.com/llehouerou/scrubber/internal/ui/playerbar"
	"github.com/llehouerou/scrubber/internal/ui/render"
	"github.com/llehouerou/scrubber/internal/ui/styles"
)

// View renders the player bar, the title and a status or help line.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	l := m.layout()
	lines := []string{
		playerbar.Render(playerbar.State{
			Visual:   m.controller.State(),
			Dragging: m.dragging(),
		}, l),
		playerbar.RenderTitle(m.title, m.width),
	}

	switch {
	case m.status != "":
		lines = append(lines, styles.T().S().Error.Render(
			render.TruncateEllipsis(render.Sanitize(m.status), m.width)))
	default:
		lines = append(lines, m.help.View(m.keys))
	}

	return strings.Join(lines, "\n")
}
