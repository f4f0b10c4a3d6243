// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/setlist/internal/journal"
	"github.com/llehouerou/setlist/internal/keymap"
	"github.com/llehouerou/setlist/internal/ui/headerbar"
	"github.com/llehouerou/setlist/internal/ui/layout"
	"github.com/llehouerou/setlist/internal/ui/popup"
	"github.com/llehouerou/setlist/internal/ui/render"
	"github.com/llehouerou/setlist/internal/ui/styles"
)

const footerHeight = 2 // status + key hints

// listSize returns the inner size available to the active list.
func (m Model) listSize() (width, height int) {
	content := layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		FooterHeight: footerHeight,
	})
	return layout.ListSize(m.Width, content)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	tab := string(m.Screen)
	if m.Screen == ScreenSongs {
		tab = string(ScreenPlaylists)
	}

	view := strings.Join([]string{
		headerbar.Render(tab, m.Width),
		m.renderPanel(),
		m.renderStatus(),
		m.renderHints(),
	}, "\n")

	if overlay := m.renderOverlay(); overlay != "" {
		view = popup.Compose(view, overlay, m.Width)
	}
	return view
}

func (m Model) renderPanel() string {
	title, right, body := m.panelContent()
	s := styles.T().S()

	innerWidth, listHeight := m.listSize()
	header := render.Row(s.Title.Render(title), s.Muted.Render(right), innerWidth)
	sep := s.Subtle.Render(render.Separator(innerWidth))

	content := header + "\n" + sep + "\n" + body
	return styles.PanelStyle(true).
		Padding(0, 1).
		Width(max(m.Width-2, 0)).
		Height(listHeight + 2).
		Render(content)
}

func (m Model) panelContent() (title, right, body string) {
	switch m.Screen {
	case ScreenPlaylists:
		if !m.Playlists.Ready() {
			return "Playlists", "", m.loadingText()
		}
		return "Playlists", undoHint(m.Playlists.CanUndo(), m.Playlists.CanRedo()), m.playlistList.View()

	case ScreenSongs:
		if m.Songs == nil || !m.Songs.Ready() {
			return m.OpenPlaylist.Name, "", m.loadingText()
		}
		right := fmt.Sprintf("%d song(s)", m.songList.Len())
		if hint := undoHint(m.Songs.CanUndo(), m.Songs.CanRedo()); hint != "" {
			right = hint + "  " + right
		}
		return m.OpenPlaylist.Name, right, m.songList.View()

	case ScreenJournal:
		if !m.Journal.Ready() {
			return "Mood journal", "", m.loadingText()
		}
		return "Mood journal", undoHint(m.Journal.CanUndo(), m.Journal.CanRedo()), m.entryList.View()

	case ScreenPokedex:
		right := fmt.Sprintf("%d loaded", len(m.Pokedex.Pokemons))
		if m.Pokedex.Offline {
			right = "offline · cached " + humanize.Time(m.Pokedex.CachedAt) + "  " + right
		}
		if m.pokedexLoading {
			right = m.spinner.View() + " " + right
			if len(m.Pokedex.Pokemons) == 0 {
				return "Pokédex", right, m.loadingText()
			}
		}
		return "Pokédex", right, m.pokemonList.View()

	case ScreenPlaces:
		right := m.PlaceQuery
		if m.searching {
			right = "searching " + right
		}
		return "Places", right, m.placeList.View()
	}
	return "", "", ""
}

func (m Model) loadingText() string {
	return styles.T().S().Subtle.Render("Loading…")
}

func undoHint(canUndo, canRedo bool) string {
	var parts []string
	if canUndo {
		parts = append(parts, "u undo")
	}
	if canRedo {
		parts = append(parts, "ctrl+r redo")
	}
	return strings.Join(parts, " · ")
}

func (m Model) renderStatus() string {
	if m.Status == "" {
		return ""
	}
	s := styles.T().S()
	style := s.Success
	if m.StatusErr {
		style = s.Error
	}
	return style.Render(render.Truncate(m.Status, m.Width))
}

func (m Model) renderHints() string {
	return m.help.ShortHelpView(keymap.HelpKeys(string(m.Screen)))
}

func (m Model) renderOverlay() string {
	switch {
	case m.inputMode != inputNone:
		return popup.Dialog{
			Title:   m.inputTitle,
			Content: m.input.View(),
			Footer:  "Enter: confirm, Esc: cancel",
			Width:   m.input.Width + 4,
		}.Render(m.Width, m.Height)

	case m.showHelp:
		groups := [][]key.Binding{
			keymap.HelpKeys(string(m.Screen)),
			keymap.HelpKeys(keymap.ContextGlobal),
		}
		return popup.Dialog{
			Title:   "Keys",
			Content: m.help.FullHelpView(groups),
			Footer:  "Press any key to close",
		}.Render(m.Width, m.Height)

	case m.showStats:
		return popup.Dialog{
			Title:   "Last 7 days",
			Content: m.renderStats(),
			Footer:  "Press any key to close",
		}.Render(m.Width, m.Height)
	}
	return ""
}

func (m Model) renderStats() string {
	counts := journal.Stats(m.Journal.Items(), m.now())
	s := styles.T().S()

	ramp := styles.Ramp(styles.T().Primary, styles.T().Warning, len(counts))
	lines := make([]string, 0, len(counts)+2)
	for i, c := range counts {
		bar := lipgloss.NewStyle().Foreground(ramp[i]).Render(strings.Repeat("█", c.Count))
		lines = append(lines, fmt.Sprintf("%s %2d %s", c.Mood, c.Count, bar))
	}
	lines = append(lines, "")
	if top, ok := journal.TopMood(counts); ok {
		lines = append(lines, "Most frequent: "+top)
	} else {
		lines = append(lines, s.Muted.Render("No entries this week"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
