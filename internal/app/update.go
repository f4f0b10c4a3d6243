// internal/app/update.go
package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setlist/internal/errmsg"
	"github.com/llehouerou/setlist/internal/journal"
	"github.com/llehouerou/setlist/internal/keymap"
	"github.com/llehouerou/setlist/internal/playlists"
	"github.com/llehouerou/setlist/internal/ui/layout"
	"github.com/llehouerou/setlist/internal/ui/styles"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case LoadedMsg[playlists.Playlist]:
		w := m.Playlists.Hydrate(msg.Result)
		m.playlistList.SetItems(m.Playlists.Items())
		return m, ExecCmd(w)

	case LoadedMsg[string]:
		return m.handleSongsLoaded(msg)

	case LoadedMsg[journal.Entry]:
		w := m.Journal.Hydrate(msg.Result)
		m.entryList.SetItems(m.Journal.Items())
		return m, ExecCmd(w)

	case ThemeLoadedMsg:
		w := m.Theme.Hydrate(msg.Theme, msg.Found)
		styles.Apply(m.Theme.Value())
		return m, ExecCmd(w)

	case PokedexLoadedMsg:
		return m.handlePokedexLoaded(msg)

	case PlacesFoundMsg:
		return m.handlePlacesFound(msg)

	case spinner.TickMsg:
		if !m.pokedexLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.inputMode != inputNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputMode != inputNone {
		return m.handleInputKey(msg)
	}

	key := msg.String()

	// Overlays close on any key
	if m.showHelp || m.showStats {
		m.showHelp = false
		m.showStats = false
		return m, nil
	}

	m.Status = ""

	if m.navigate(msg) {
		if m.Screen == ScreenPokedex {
			return m, m.maybeLoadMore()
		}
		return m, nil
	}

	action := m.keys.Resolve(string(m.Screen), key)
	switch action {
	case keymap.ActionQuit:
		return m, m.quitCmd()
	case keymap.ActionHelp:
		m.showHelp = true
		return m, nil
	case keymap.ActionCycleTheme:
		return m.cycleTheme()
	case keymap.ActionSetAccent:
		return m.startInput(inputAccent, "Accent color", "#1ed760", m.Theme.Value().Accent)
	case keymap.ActionViewPlaylists:
		return m.switchScreen(ScreenPlaylists)
	case keymap.ActionViewJournal:
		return m.switchScreen(ScreenJournal)
	case keymap.ActionViewPokedex:
		return m.switchScreen(ScreenPokedex)
	case keymap.ActionViewPlaces:
		return m.switchScreen(ScreenPlaces)
	case "":
		return m, nil
	}

	switch m.Screen {
	case ScreenPlaylists:
		return m.handlePlaylistsAction(action)
	case ScreenSongs:
		return m.handleSongsAction(action)
	case ScreenJournal:
		return m.handleJournalAction(action)
	case ScreenPokedex:
		return m.handlePokedexAction(action)
	case ScreenPlaces:
		return m.handlePlacesAction(action)
	}
	return m, nil
}

// navigate forwards navigation keys to the active list.
func (m *Model) navigate(msg tea.KeyMsg) bool {
	switch m.Screen {
	case ScreenPlaylists:
		return m.playlistList.Update(msg)
	case ScreenSongs:
		return m.songList.Update(msg)
	case ScreenJournal:
		return m.entryList.Update(msg)
	case ScreenPokedex:
		return m.pokemonList.Update(msg)
	case ScreenPlaces:
		return m.placeList.Update(msg)
	}
	return false
}

func (m Model) switchScreen(s Screen) (tea.Model, tea.Cmd) {
	// The songs view belongs to the playlists tab; its key returns to the index.
	if m.Screen == s || (s == ScreenPlaylists && m.Screen == ScreenSongs) {
		m.Screen = ScreenPlaylists
		return m, nil
	}
	m.logger.Debug("switch screen", "screen", s)
	m.Screen = s

	if s == ScreenPokedex && !m.pokedexStarted {
		m.pokedexStarted = true
		return m.startPokedexLoad(false)
	}
	return m, nil
}

func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	t := m.Theme.Value().CycleMode()
	w := m.Theme.Set(t)
	styles.Apply(t)
	m.setStatus("Theme: " + string(t.Mode))
	return m, ExecCmd(w)
}

func (m Model) setAccent(value string) (tea.Model, tea.Cmd) {
	t, err := m.Theme.Value().SetAccent(value)
	if err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpThemeAccent, value, err))
		return m, nil
	}
	w := m.Theme.Set(t)
	styles.Apply(t)
	m.setStatus("Accent: " + t.Accent)
	return m, ExecCmd(w)
}

func (m *Model) resize() {
	w, h := m.listSize()
	m.playlistList.SetSize(w, h)
	m.songList.SetSize(w, h)
	m.entryList.SetSize(w, h)
	m.pokemonList.SetSize(w, h)
	m.placeList.SetSize(w, h)
	m.input.Width = layout.InputWidth(w)
	m.help.Width = m.Width
}
