package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return paint(clusters, blendColors(len(clusters), from, to))
}

// Fill renders filled cells of a slider that is size cells long. Cell i
// gets the color at position i of the full-length gradient, so the colors
// stay put while the fill grows.
func Fill(glyph string, filled, size int, from, to lipgloss.Color) string {
	filled = min(max(filled, 0), size)
	if filled == 0 {
		return ""
	}
	cells := make([]string, filled)
	for i := range cells {
		cells[i] = glyph
	}
	return paint(cells, blendColors(size, from, to)[:filled])
}

// FillReverse is Fill for slider cells listed from the far end, as in a
// column that fills from the bottom but is drawn top down. It returns one
// rendered cell per filled position, top first.
func FillReverse(glyph string, filled, size int, from, to lipgloss.Color) []string {
	filled = min(max(filled, 0), size)
	colors := blendColors(size, from, to)
	out := make([]string, filled)
	for i := range out {
		c := colors[filled-1-i]
		out[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(colorToHex(c))).Render(glyph)
	}
	return out
}

func paint(clusters []string, colors []color.Color) string {
	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colorToHex(colors[i])))
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// blendColors returns a slice of colors blended between from and to.
// Blending is done in HCL color space for perceptually uniform transitions.
func blendColors(size int, from, to lipgloss.Color) []color.Color {
	if size <= 0 {
		return nil
	}
	c1, _ := colorful.MakeColor(lipglossToColor(from))
	if size == 1 {
		return []color.Color{c1}
	}
	c2, _ := colorful.MakeColor(lipglossToColor(to))

	colors := make([]color.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = c1.BlendHcl(c2, t).Clamped()
	}

	return colors
}

// lipglossToColor converts a lipgloss.Color to a color.Color.
func lipglossToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	// Fallback for ANSI colors - return a neutral gray
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

// colorToHex converts a color.Color to a hex string.
func colorToHex(c color.Color) string {
	cf, ok := c.(colorful.Color)
	if ok {
		return cf.Hex()
	}
	r, g, b, _ := c.RGBA()
	return colorful.Color{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}.Hex()
}
