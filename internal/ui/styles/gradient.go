package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackColor replaces colors that are not "#rrggbb", such as ANSI indices.
var fallbackColor = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Ramp returns n colors going from one color to the other. Blending is
// done in HCL space so steps look evenly spaced.
func Ramp(from, to lipgloss.Color, n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	a, b := parseColor(from), parseColor(to)

	ramp := make([]lipgloss.Color, n)
	ramp[0] = lipgloss.Color(a.Hex())
	for i := 1; i < n-1; i++ {
		ramp[i] = lipgloss.Color(a.BlendHcl(b, float64(i)/float64(n-1)).Clamped().Hex())
	}
	if n > 1 {
		ramp[n-1] = lipgloss.Color(b.Hex())
	}
	return ramp
}

func parseColor(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackColor
	}
	return col
}

// Brand renders text in bold, shaded from the accent to the base
// foreground of the current theme.
func Brand(text string) string {
	t := T()
	return Gradient(text, t.Primary, t.FgBase, true)
}

// Gradient renders text with one color per grapheme cluster.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	style := lipgloss.NewStyle().Bold(bold)
	var b strings.Builder
	for i, c := range Ramp(from, to, len(clusters)) {
		b.WriteString(style.Foreground(c).Render(clusters[i]))
	}
	return b.String()
}
