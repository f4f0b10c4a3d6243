// internal/app/handlers_songs.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setlist/internal/editor"
	"github.com/llehouerou/setlist/internal/errmsg"
	"github.com/llehouerou/setlist/internal/keymap"
	"github.com/llehouerou/setlist/internal/songs"
)

func (m Model) handleSongsLoaded(msg LoadedMsg[string]) (tea.Model, tea.Cmd) {
	// A playlist opened and left before its load finished.
	if m.Songs == nil || msg.Result.Key != m.Songs.Key() {
		return m, nil
	}
	w := m.Songs.Hydrate(msg.Result)
	m.songList.SetItems(m.Songs.Items())
	return m, ExecCmd(w)
}

func (m Model) handleSongsAction(action keymap.Action) (tea.Model, tea.Cmd) {
	switch action { //nolint:exhaustive // Only handling song actions
	case keymap.ActionAdd:
		return m.startInput(inputSong, "Add song to "+m.OpenPlaylist.Name, "Song title", "")

	case keymap.ActionDelete:
		title, ok := m.songList.Selected()
		if !ok {
			return m, nil
		}
		return m.applySongs(m.Songs.Dispatch(songs.Remove{Title: title}))

	case keymap.ActionClear:
		return m.applySongs(m.Songs.Dispatch(songs.Clear{}))

	case keymap.ActionUndo:
		return m.applySongs(m.Songs.Undo())

	case keymap.ActionRedo:
		return m.applySongs(m.Songs.Redo())

	case keymap.ActionBack:
		m.Screen = ScreenPlaylists
		return m, nil
	}
	return m, nil
}

func (m Model) applySongs(w *editor.Write) (tea.Model, tea.Cmd) {
	m.songList.SetItems(m.Songs.Items())
	return m, ExecCmd(w)
}

func (m Model) addSong(input string) (tea.Model, tea.Cmd) {
	title, err := songs.ParseTitle(input)
	if err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpSongAdd, m.OpenPlaylist.Name, err))
		return m, nil
	}
	next, cmd := m.applySongs(m.Songs.Dispatch(songs.Add{Title: title}))
	nm := next.(Model)
	nm.songList.Select(nm.songList.Len() - 1)
	return nm, cmd
}
