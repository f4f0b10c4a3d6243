package theme

import "github.com/lucasb-eyer/go-colorful"

// Palette is the set of colours a theme resolves to, as "#rrggbb".
type Palette struct {
	Accent   string
	Fg       string
	FgMuted  string
	FgSubtle string
	Bg       string
	BgCursor string
	Border   string
	Success  string
	Error    string
	Warning  string
}

// Palette resolves the theme. Custom mode derives the greys from the
// accent so the whole UI is tinted.
func (t Theme) Palette() Palette {
	accent, err := colorful.Hex(t.Accent)
	if err != nil {
		accent, _ = colorful.Hex(DefaultAccent)
	}

	p := Palette{
		Accent:  accent.Hex(),
		Success: "#42b883",
		Error:   "#ff5555",
		Warning: "#f1a208",
	}

	switch t.Mode {
	case Light:
		p.Fg = "#1a1a1a"
		p.FgMuted = "#585858"
		p.FgSubtle = "#9e9e9e"
		p.Bg = "#ffffff"
		p.BgCursor = "#e4e4e4"
		p.Border = "#9e9e9e"
	case Custom:
		black, _ := colorful.Hex("#000000")
		white, _ := colorful.Hex("#ffffff")
		p.Fg = accent.BlendLab(white, 0.8).Clamped().Hex()
		p.FgMuted = accent.BlendLab(white, 0.4).Clamped().Hex()
		p.FgSubtle = accent.BlendLab(black, 0.5).Clamped().Hex()
		p.Bg = accent.BlendLab(black, 0.9).Clamped().Hex()
		p.BgCursor = accent.BlendLab(black, 0.75).Clamped().Hex()
		p.Border = p.FgSubtle
	default:
		p.Fg = "#c0c0c0"
		p.FgMuted = "#808080"
		p.FgSubtle = "#585858"
		p.Bg = "#1a1a1a"
		p.BgCursor = "#303030"
		p.Border = "#585858"
	}
	return p
}
