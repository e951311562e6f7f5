package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the player.
type Theme struct {
	// Gradient endpoints for filled slider cells
	Primary   lipgloss.Color // Purple - start of the fill, knob
	Secondary lipgloss.Color // Gold/orange - end of the fill

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Labels, buttons
	FgMuted  lipgloss.Color // Track title, help
	FgSubtle lipgloss.Color // Empty slider cells

	// Borders
	Border      lipgloss.Color // Idle bar border
	BorderFocus lipgloss.Color // Border while a slider is dragged

	// Status colors
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Base    lipgloss.Style // Labels
	Muted   lipgloss.Style // Secondary text
	Subtle  lipgloss.Style // Empty slider cells
	Title   lipgloss.Style // Track title
	Button  lipgloss.Style // Play and volume buttons
	Knob    lipgloss.Style // Slider handle
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// Panel returns the bordered box style, highlighted while focused.
func (t *Theme) Panel(focused bool) lipgloss.Style {
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  lipgloss.NewStyle().Foreground(t.FgMuted).Italic(true),
		Button: base.Bold(true),
		Knob: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
