// internal/app/handlers_playlists.go
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setlist/internal/editor"
	"github.com/llehouerou/setlist/internal/errmsg"
	"github.com/llehouerou/setlist/internal/keymap"
	"github.com/llehouerou/setlist/internal/playlists"
	"github.com/llehouerou/setlist/internal/songs"
)

func (m Model) handlePlaylistsAction(action keymap.Action) (tea.Model, tea.Cmd) {
	switch action { //nolint:exhaustive // Only handling playlist actions
	case keymap.ActionAdd:
		return m.startInput(inputNewPlaylist, "New playlist", "Playlist name", "")

	case keymap.ActionRename:
		p, ok := m.playlistList.Selected()
		if !ok {
			return m, nil
		}
		next, cmd := m.startInput(inputRenamePlaylist, "Rename playlist", "Playlist name", p.Name)
		nm := next.(Model)
		nm.inputTarget = p.ID
		return nm, cmd

	case keymap.ActionDelete:
		p, ok := m.playlistList.Selected()
		if !ok {
			return m, nil
		}
		w := m.Playlists.Dispatch(playlists.Remove{ID: p.ID})
		m.playlistList.SetItems(m.Playlists.Items())
		m.setStatus(fmt.Sprintf("Deleted %q (u to undo)", p.Name))
		return m, ExecCmd(w)

	case keymap.ActionSelect:
		p, ok := m.playlistList.Selected()
		if !ok {
			return m, nil
		}
		return m.openPlaylist(p)

	case keymap.ActionUndo:
		return m.applyPlaylists(m.Playlists.Undo())

	case keymap.ActionRedo:
		return m.applyPlaylists(m.Playlists.Redo())
	}
	return m, nil
}

func (m Model) applyPlaylists(w *editor.Write) (tea.Model, tea.Cmd) {
	m.playlistList.SetItems(m.Playlists.Items())
	return m, ExecCmd(w)
}

func (m Model) createPlaylist(input string) (tea.Model, tea.Cmd) {
	name, err := playlists.ParseName(input)
	if err != nil {
		m.setError(errmsg.Format(errmsg.OpPlaylistCreate, err))
		return m, nil
	}
	w := m.Playlists.Dispatch(playlists.Add{Playlist: playlists.NewPlaylist(name)})
	m.playlistList.SetItems(m.Playlists.Items())
	m.playlistList.Select(m.playlistList.Len() - 1)
	return m, ExecCmd(w)
}

func (m Model) renamePlaylist(id, input string) (tea.Model, tea.Cmd) {
	name, err := playlists.ParseName(input)
	if err != nil {
		m.setError(errmsg.Format(errmsg.OpPlaylistRename, err))
		return m, nil
	}
	return m.applyPlaylists(m.Playlists.Dispatch(playlists.Edit{ID: id, Name: name}))
}

// openPlaylist shows the songs of p in a fresh session. Its load waits
// for writes of a previous session of p still in flight.
func (m Model) openPlaylist(p playlists.Playlist) (tea.Model, tea.Cmd) {
	session := editor.New(editor.Config[string, songs.Command]{
		Key:     songs.Key(p.ID),
		Store:   m.deps.Store,
		Codec:   editor.JSON[string]{},
		Reducer: songs.Reducer{},
		Limit:   m.deps.HistoryLimit,
		Logger:  m.logger,
		Sinks:   m.sinks,
	})
	m.Songs = session
	m.OpenPlaylist = p
	m.songList.SetItems(nil)
	m.Screen = ScreenSongs
	return m, LoadCmd(session)
}
