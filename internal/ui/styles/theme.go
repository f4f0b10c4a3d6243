package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/setlist/internal/theme"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Mode theme.Mode

	// Brand/accent colors
	Primary lipgloss.Color // focused items, active states

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase   lipgloss.Color // Panel backgrounds
	BgCursor lipgloss.Color // Cursor/selection highlight

	// Borders
	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Accent  lipgloss.Style // Accent-colored bold text
	Cursor  lipgloss.Style // Cursor background highlight
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var current = New(theme.Default())

// New builds a UI theme from a persisted theme.
func New(t theme.Theme) *Theme {
	p := t.Palette()
	return &Theme{
		Mode:        t.Mode,
		Primary:     lipgloss.Color(p.Accent),
		FgBase:      lipgloss.Color(p.Fg),
		FgMuted:     lipgloss.Color(p.FgMuted),
		FgSubtle:    lipgloss.Color(p.FgSubtle),
		BgBase:      lipgloss.Color(p.Bg),
		BgCursor:    lipgloss.Color(p.BgCursor),
		Border:      lipgloss.Color(p.Border),
		BorderFocus: lipgloss.Color(p.Accent),
		Success:     lipgloss.Color(p.Success),
		Error:       lipgloss.Color(p.Error),
		Warning:     lipgloss.Color(p.Warning),
	}
}

// Apply makes t the active theme. Call from the UI goroutine only.
func Apply(t theme.Theme) {
	current = New(t)
}

// T returns the active theme.
func T() *Theme {
	return current
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
