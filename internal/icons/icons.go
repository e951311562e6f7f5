package icons

import "github.com/llehouerou/scrubber/internal/controls"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for one style.
type Icons struct {
	Play         string
	Pause        string
	VolumeFull   string
	VolumeMedium string
	VolumeLow    string
	Loading      string
}

var (
	nerdIcons = Icons{
		Play:         "\uf04b", // nf-fa-play
		Pause:        "\uf04c", // nf-fa-pause
		VolumeFull:   "\uf028", // nf-fa-volume_up
		VolumeMedium: "\uf027", // nf-fa-volume_down
		VolumeLow:    "\uf026", // nf-fa-volume_off
		Loading:      "\uf110", // nf-fa-spinner
	}

	unicodeIcons = Icons{
		Play:         "▶",
		Pause:        "⏸",
		VolumeFull:   "🔊",
		VolumeMedium: "🔉",
		VolumeLow:    "🔈",
		Loading:      "…",
	}

	noneIcons = Icons{
		Play:         ">",
		Pause:        "||",
		VolumeFull:   "V+",
		VolumeMedium: "V-",
		VolumeLow:    "V_",
		Loading:      "..",
	}

	// current holds the active icon set
	current = noneIcons
)

// For returns the icon set for style. Unknown styles get "none".
func For(style Style) Icons {
	switch style {
	case StyleNerd:
		return nerdIcons
	case StyleUnicode:
		return unicodeIcons
	default:
		return noneIcons
	}
}

// Styles lists the accepted style names.
func Styles() []string {
	return []string{string(StyleNerd), string(StyleUnicode), string(StyleNone)}
}

// Init selects the active style.
// Call this once at startup with the config value.
func Init(style string) {
	current = For(Style(style))
}

// Transport returns the play button glyph for icon.
func (i Icons) Transport(icon controls.Icon) string {
	if icon == controls.PauseIcon {
		return i.Pause
	}
	return i.Play
}

// Volume returns the volume button glyph for tier.
func (i Icons) Volume(tier controls.VolumeTier) string {
	switch tier {
	case controls.VolumeLow:
		return i.VolumeLow
	case controls.VolumeMedium:
		return i.VolumeMedium
	default:
		return i.VolumeFull
	}
}

// Transport returns the active style's play button glyph.
func Transport(icon controls.Icon) string {
	return current.Transport(icon)
}

// Volume returns the active style's volume button glyph.
func Volume(tier controls.VolumeTier) string {
	return current.Volume(tier)
}

// Loading returns the active style's loading indicator.
func Loading() string {
	return current.Loading
}
