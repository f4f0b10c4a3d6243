// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/setlist/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const title = "setlist"

// Tab is a header bar tab.
type Tab struct {
	Key  string
	Name string
	ID   string
}

// Tabs are the screens, in key order.
var Tabs = []Tab{
	{"1", "Playlists", "playlists"},
	{"2", "Journal", "journal"},
	{"3", "Pokédex", "pokedex"},
	{"4", "Places", "places"},
}

// Render returns the header bar string for the given width. current is the
// ID of the active tab.
func Render(current string, width int) string {
	if width < 20 {
		return ""
	}

	t := styles.T()
	activeStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	inactiveKeyStyle := lipgloss.NewStyle().Foreground(t.FgSubtle)
	inactiveNameStyle := lipgloss.NewStyle().Foreground(t.FgMuted)
	separator := lipgloss.NewStyle().Foreground(t.Border).Render(" │ ")

	parts := make([]string, 0, len(Tabs))
	for _, tab := range Tabs {
		if tab.ID == current {
			parts = append(parts, activeStyle.Render(tab.Key)+" "+activeStyle.Render(tab.Name))
			continue
		}
		parts = append(parts, inactiveKeyStyle.Render(tab.Key)+" "+inactiveNameStyle.Render(tab.Name))
	}

	brand := styles.Brand(title)
	content := strings.Join(parts, separator)

	// Brand on the left, tabs centered in the remaining space
	brandWidth := lipgloss.Width(brand)
	contentWidth := lipgloss.Width(content)
	if brandWidth+contentWidth+2 > width {
		return content
	}
	padLeft := max((width-contentWidth)/2-brandWidth, 2)
	return brand + strings.Repeat(" ", padLeft) + content
}
