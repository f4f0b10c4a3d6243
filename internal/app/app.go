// internal/app/app.go
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setlist/internal/editor"
	"github.com/llehouerou/setlist/internal/geo"
	"github.com/llehouerou/setlist/internal/journal"
	"github.com/llehouerou/setlist/internal/keymap"
	"github.com/llehouerou/setlist/internal/playlists"
	"github.com/llehouerou/setlist/internal/pokedex"
	"github.com/llehouerou/setlist/internal/songs"
	"github.com/llehouerou/setlist/internal/state"
	"github.com/llehouerou/setlist/internal/theme"
	"github.com/llehouerou/setlist/internal/ui/list"
)

// Screen identifies the active view. Values match the keymap contexts.
type Screen string

const (
	ScreenPlaylists Screen = keymap.ContextPlaylists
	ScreenSongs     Screen = keymap.ContextSongs
	ScreenJournal   Screen = keymap.ContextJournal
	ScreenPokedex   Screen = keymap.ContextPokedex
	ScreenPlaces    Screen = keymap.ContextPlaces
)

// PokedexLoader loads the Pokédex list.
type PokedexLoader interface {
	LoadInitial(ctx context.Context, force bool) pokedex.List
	LoadMore(ctx context.Context, current pokedex.List) pokedex.List
}

// PlaceSearcher resolves place queries.
type PlaceSearcher interface {
	Search(ctx context.Context, query string) ([]geo.Place, error)
}

// Deps are the services the application runs on.
type Deps struct {
	Store        state.Store
	Logger       *slog.Logger
	HistoryLimit int
	Pokedex      PokedexLoader
	Places       PlaceSearcher
	Now          func() time.Time
}

// waiter is implemented by the write registry and the theme slot.
type waiter interface {
	Wait(ctx context.Context) error
}

// Model is the root application model.
type Model struct {
	deps   Deps
	logger *slog.Logger
	keys   *keymap.Resolver

	Screen        Screen
	Width, Height int

	Playlists    *editor.Session[playlists.Playlist, playlists.Command]
	playlistList list.Model[playlists.Playlist]

	// Songs is the open playlist's session, nil until one is opened.
	Songs        *editor.Session[string, songs.Command]
	OpenPlaylist playlists.Playlist
	songList     list.Model[string]

	Journal   *editor.Session[journal.Entry, journal.Command]
	entryList list.Model[journal.Entry]
	showStats bool

	Theme *editor.Slot[theme.Theme]

	Pokedex        pokedex.List
	pokedexStarted bool
	pokedexLoading bool
	pokemonList    list.Model[pokedex.Pokemon]
	spinner        spinner.Model

	Places     []geo.Place
	PlaceQuery string
	searching  bool
	placeList  list.Model[geo.Place]

	input       textinput.Model
	inputMode   inputMode
	inputTarget string // ID the input applies to, if any
	inputTitle  string

	help     help.Model
	showHelp bool

	Status    string
	StatusErr bool

	// sinks orders the writes of every key across sessions.
	sinks   *editor.Sinks
	waiters []waiter
}

// New creates the application model. Nothing is read from storage until
// Init's commands run.
func New(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	sinks := editor.NewSinks()
	playlistSession := editor.New(editor.Config[playlists.Playlist, playlists.Command]{
		Key:     playlists.Key,
		Store:   deps.Store,
		Codec:   editor.JSON[playlists.Playlist]{},
		Reducer: playlists.Reducer{},
		Limit:   deps.HistoryLimit,
		Logger:  deps.Logger,
		Sinks:   sinks,
	})
	journalSession := editor.New(editor.Config[journal.Entry, journal.Command]{
		Key:     journal.Key,
		Store:   deps.Store,
		Codec:   editor.JSON[journal.Entry]{},
		Reducer: journal.Reducer{},
		Limit:   deps.HistoryLimit,
		Logger:  deps.Logger,
		Sinks:   sinks,
	})
	themeSlot := editor.NewSlot(theme.Key, deps.Store, theme.Default(), theme.Validate, deps.Logger)

	ti := textinput.New()
	ti.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		deps:         deps,
		logger:       deps.Logger,
		keys:         keymap.NewResolver(keymap.Bindings),
		Screen:       ScreenPlaylists,
		Playlists:    playlistSession,
		playlistList: list.New(renderPlaylist, "No playlists yet. Press a to create one."),
		songList:     list.New(renderSong, "No songs yet. Press a to add one."),
		Journal:      journalSession,
		entryList:    list.New(renderEntry, "No entries yet. Press a to log your mood."),
		Theme:        themeSlot,
		pokemonList:  list.New(renderPokemon, "Nothing loaded. Press r to retry."),
		spinner:      sp,
		placeList:    list.New(renderPlace, "Press / to search for a place."),
		input:        ti,
		help:         help.New(),
		sinks:        sinks,
		waiters:      []waiter{sinks, themeSlot},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCmd(m.Playlists),
		LoadCmd(m.Journal),
		LoadThemeCmd(m.Theme),
	)
}

func (m Model) now() time.Time {
	return m.deps.Now()
}

func (m *Model) setStatus(s string) {
	m.Status = s
	m.StatusErr = false
}

func (m *Model) setError(s string) {
	m.Status = s
	m.StatusErr = true
}
