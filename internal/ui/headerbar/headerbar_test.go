package headerbar

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	out := Render("journal", 100)

	assert.Contains(t, out, "setlist")
	for _, tab := range Tabs {
		assert.Contains(t, out, tab.Name)
	}
	assert.LessOrEqual(t, lipgloss.Width(out), 100)
}

func TestRender_NarrowDropsBrand(t *testing.T) {
	out := Render("playlists", 50)
	assert.NotContains(t, out, "setlist")
	assert.Contains(t, out, "Playlists")
}

func TestRender_TooNarrow(t *testing.T) {
	assert.Empty(t, Render("playlists", 10))
}
