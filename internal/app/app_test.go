package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/setlist/internal/geo"
	"github.com/llehouerou/setlist/internal/journal"
	"github.com/llehouerou/setlist/internal/playlists"
	"github.com/llehouerou/setlist/internal/pokedex"
	"github.com/llehouerou/setlist/internal/songs"
	"github.com/llehouerou/setlist/internal/state"
	"github.com/llehouerou/setlist/internal/theme"
	"github.com/llehouerou/setlist/internal/ui/styles"
)

type fakePokedex struct {
	initial pokedex.List
	more    pokedex.List
	forced  []bool
	moreN   int
}

func (f *fakePokedex) LoadInitial(_ context.Context, force bool) pokedex.List {
	f.forced = append(f.forced, force)
	return f.initial
}

func (f *fakePokedex) LoadMore(_ context.Context, _ pokedex.List) pokedex.List {
	f.moreN++
	return f.more
}

type fakePlaces struct {
	places []geo.Place
	err    error
	query  string
}

func (f *fakePlaces) Search(_ context.Context, query string) ([]geo.Place, error) {
	f.query = query
	return f.places, f.err
}

type harness struct {
	t      *testing.T
	m      Model
	store  *state.Memory
	poke   *fakePokedex
	places *fakePlaces
	quit   bool
}

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Cleanup(func() { styles.Apply(theme.Default()) })

	h := &harness{
		t:     t,
		store: state.NewMemory(),
		poke: &fakePokedex{
			initial: pokedex.List{
				Pokemons: []pokedex.Pokemon{{ID: 1, Name: "Bulbasaur", Types: []string{"grass"}}},
				NextURL:  "page2",
			},
			more: pokedex.List{
				Pokemons: []pokedex.Pokemon{
					{ID: 1, Name: "Bulbasaur", Types: []string{"grass"}},
					{ID: 2, Name: "Ivysaur", Types: []string{"grass"}},
				},
			},
		},
		places: &fakePlaces{},
	}
	h.m = New(Deps{
		Store:   h.store,
		Logger:  slog.New(slog.DiscardHandler),
		Pokedex: h.poke,
		Places:  h.places,
		Now:     func() time.Time { return testNow },
	})
	h.m.input.Cursor.SetMode(cursor.CursorStatic)
	h.send(tea.WindowSizeMsg{Width: 100, Height: 30})
	return h
}

// start runs Init and delivers the loads.
func (h *harness) start() *harness {
	h.run(h.m.Init())
	return h
}

func (h *harness) send(msg tea.Msg) {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	h.run(cmd)
}

// run executes cmd synchronously and feeds back the messages this package
// defines. Timer-driven messages (spinner, cursor blink) are dropped.
func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
	case tea.QuitMsg:
		h.quit = true
	default:
		if reflect.TypeOf(msg).PkgPath() == reflect.TypeOf(Model{}).PkgPath() {
			h.send(msg)
		}
	}
}

func (h *harness) press(keys ...string) {
	for _, k := range keys {
		h.send(keyMsg(k))
	}
}

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func (h *harness) stored(key string, v any) bool {
	h.t.Helper()
	data, err := h.store.Get(context.Background(), key)
	if errors.Is(err, state.ErrNotFound) {
		return false
	}
	require.NoError(h.t, err)
	require.NoError(h.t, json.Unmarshal(data, v))
	return true
}

func playlistNames(items []playlists.Playlist) []string {
	names := make([]string, len(items))
	for i, p := range items {
		names[i] = p.Name
	}
	return names
}

func TestPlaylists_CreateDeleteUndoRedo(t *testing.T) {
	h := newHarness(t).start()

	h.press("a")
	h.typeText("Road Trip")
	h.press("enter")
	h.press("a")
	h.typeText("Gym")
	h.press("enter")

	assert.Equal(t, []string{"Road Trip", "Gym"}, playlistNames(h.m.Playlists.Items()))
	var saved []playlists.Playlist
	require.True(t, h.stored(playlists.Key, &saved))
	assert.Equal(t, []string{"Road Trip", "Gym"}, playlistNames(saved))

	h.press("g", "d")
	assert.Equal(t, []string{"Gym"}, playlistNames(h.m.Playlists.Items()))
	assert.Contains(t, h.m.Status, "Road Trip")

	h.press("u")
	assert.Equal(t, []string{"Road Trip", "Gym"}, playlistNames(h.m.Playlists.Items()))

	h.press("ctrl+r")
	assert.Equal(t, []string{"Gym"}, playlistNames(h.m.Playlists.Items()))
	require.True(t, h.stored(playlists.Key, &saved))
	assert.Equal(t, []string{"Gym"}, playlistNames(saved))
}

func TestPlaylists_Rename(t *testing.T) {
	h := newHarness(t).start()
	h.press("a")
	h.typeText("Mix")
	h.press("enter")

	h.press("e")
	assert.Equal(t, "Mix", h.m.input.Value(), "prefilled with the current name")
	h.typeText(" 2")
	h.press("enter")
	assert.Equal(t, []string{"Mix 2"}, playlistNames(h.m.Playlists.Items()))

	h.press("u")
	assert.Equal(t, []string{"Mix"}, playlistNames(h.m.Playlists.Items()))
}

func TestPlaylists_EmptyNameRejected(t *testing.T) {
	h := newHarness(t).start()
	h.press("a")
	h.typeText("   ")
	h.press("enter")

	assert.Empty(t, h.m.Playlists.Items())
	assert.True(t, h.m.StatusErr)
	assert.Contains(t, h.m.Status, "Failed to create playlist")
}

func TestInput_EscapeCancels(t *testing.T) {
	h := newHarness(t).start()
	h.press("a")
	h.typeText("q")
	h.press("esc")

	assert.False(t, h.quit, "keys typed in the prompt are not shortcuts")
	assert.Empty(t, h.m.Playlists.Items())
	assert.Equal(t, inputNone, h.m.inputMode)
}

func TestNoWriteBeforeLoad(t *testing.T) {
	h := newHarness(t)
	initCmd := h.m.Init()

	h.press("a")
	h.typeText("Early")
	h.press("enter")
	assert.Equal(t, []string{"Early"}, playlistNames(h.m.Playlists.Items()))
	assert.Equal(t, 0, h.store.Len())

	h.run(initCmd)
	var saved []playlists.Playlist
	require.True(t, h.stored(playlists.Key, &saved))
	assert.Equal(t, []string{"Early"}, playlistNames(saved))
}

func TestStoredCollectionsLoadWithoutHistory(t *testing.T) {
	h := newHarness(t)
	data, err := json.Marshal([]playlists.Playlist{{ID: "1", Name: "Saved"}})
	require.NoError(t, err)
	require.NoError(t, h.store.Set(context.Background(), playlists.Key, data))

	h.start()
	assert.Equal(t, []string{"Saved"}, playlistNames(h.m.Playlists.Items()))
	assert.False(t, h.m.Playlists.CanUndo())

	h.press("u")
	assert.Equal(t, []string{"Saved"}, playlistNames(h.m.Playlists.Items()))
}

func TestSongs_UndoRedoScenario(t *testing.T) {
	h := newHarness(t).start()
	h.press("a")
	h.typeText("Mix")
	h.press("enter", "enter")
	require.Equal(t, ScreenSongs, h.m.Screen)
	require.NotNil(t, h.m.Songs)
	assert.True(t, h.m.Songs.Ready())

	h.press("a")
	h.typeText("Song A")
	h.press("enter", "a")
	h.typeText("Song B")
	h.press("enter")
	h.press("g", "d")
	assert.Equal(t, []string{"Song B"}, h.m.Songs.Items())

	h.press("u")
	assert.Equal(t, []string{"Song A", "Song B"}, h.m.Songs.Items())
	h.press("u")
	assert.Equal(t, []string{"Song A"}, h.m.Songs.Items())
	h.press("u")
	assert.Empty(t, h.m.Songs.Items())

	h.press("ctrl+r", "ctrl+r", "ctrl+r")
	assert.Equal(t, []string{"Song B"}, h.m.Songs.Items())

	var saved []string
	require.True(t, h.stored(songs.Key(h.m.OpenPlaylist.ID), &saved))
	assert.Equal(t, []string{"Song B"}, saved)
}

func TestSongs_ClearAndBack(t *testing.T) {
	h := newHarness(t).start()
	h.press("a")
	h.typeText("Mix")
	h.press("enter", "enter", "a")
	h.typeText("One")
	h.press("enter", "a")
	h.typeText("Two")
	h.press("enter")

	h.press("C")
	assert.Empty(t, h.m.Songs.Items())
	h.press("u")
	assert.Equal(t, []string{"One", "Two"}, h.m.Songs.Items())

	h.press("esc")
	assert.Equal(t, ScreenPlaylists, h.m.Screen)
}

func TestSongs_ReopenLoadsStoredSongs(t *testing.T) {
	h := newHarness(t).start()
	h.press("a")
	h.typeText("Mix")
	h.press("enter", "enter", "a")
	h.typeText("Kept")
	h.press("enter", "esc", "enter")

	assert.Equal(t, []string{"Kept"}, h.m.Songs.Items())
	assert.False(t, h.m.Songs.CanUndo(), "a reopened playlist starts without history")
}

func TestSongs_ReopenWaitsForWriteInFlight(t *testing.T) {
	h := newHarness(t).start()
	h.press("a")
	h.typeText("Mix")
	h.press("enter", "enter", "a")
	h.typeText("A")

	next, held := h.m.Update(keyMsg("enter"))
	h.m = next.(Model)
	require.NotNil(t, held)

	h.press("esc")
	next, load := h.m.Update(keyMsg("enter"))
	h.m = next.(Model)
	require.NotNil(t, load)

	loaded := make(chan tea.Msg, 1)
	go func() { loaded <- load() }()
	select {
	case <-loaded:
		t.Fatal("playlist loaded before its pending write was stored")
	case <-time.After(50 * time.Millisecond):
	}

	h.run(held)
	h.send(<-loaded)
	assert.Equal(t, []string{"A"}, h.m.Songs.Items())

	h.press("a")
	h.typeText("B")
	h.press("enter")
	var saved []string
	require.True(t, h.stored(songs.Key(h.m.OpenPlaylist.ID), &saved))
	assert.Equal(t, []string{"A", "B"}, saved)
}

func TestSongs_ReopeningDoesNotGrowWaiters(t *testing.T) {
	h := newHarness(t).start()
	h.press("a")
	h.typeText("Mix")
	h.press("enter")

	before := len(h.m.waiters)
	for range 3 {
		h.press("enter", "esc")
	}
	assert.Len(t, h.m.waiters, before)
}

func TestSongs_StaleLoadIgnored(t *testing.T) {
	h := newHarness(t).start()
	h.press("a")
	h.typeText("Mix")
	h.press("enter")

	h.send(LoadedMsg[string]{})
	assert.Nil(t, h.m.Songs)
}

func TestJournal_AddDeleteUndo(t *testing.T) {
	h := newHarness(t).start()
	h.press("2")
	require.Equal(t, ScreenJournal, h.m.Screen)

	h.press("a")
	h.typeText("1 great day")
	h.press("enter")
	h.press("a")
	h.typeText("just tired")
	h.press("enter")

	entries := h.m.Journal.Items()
	require.Len(t, entries, 2)
	assert.Equal(t, journal.DefaultMood, entries[0].Mood, "newest first")
	assert.Equal(t, "just tired", entries[0].Note)
	assert.Equal(t, "😄", entries[1].Mood)
	assert.Equal(t, "great day", entries[1].Note)
	assert.Equal(t, testNow, entries[1].Date)

	h.press("j", "d")
	require.Len(t, h.m.Journal.Items(), 1)
	h.press("u")
	assert.Len(t, h.m.Journal.Items(), 2)

	var saved []journal.Entry
	require.True(t, h.stored(journal.Key, &saved))
	assert.Len(t, saved, 2)
}

func TestJournal_Stats(t *testing.T) {
	h := newHarness(t).start()
	h.press("2", "a")
	h.typeText("😢 rain")
	h.press("enter", "s")

	assert.True(t, h.m.showStats)
	view := ansi.Strip(h.m.View())
	assert.Contains(t, view, "Last 7 days")
	assert.Contains(t, view, "Most frequent: 😢")

	h.press("x")
	assert.False(t, h.m.showStats)
}

func TestParseEntryInput(t *testing.T) {
	tests := []struct {
		input string
		mood  string
		note  string
	}{
		{"", journal.DefaultMood, ""},
		{"3", "😐", ""},
		{"6 stuck in traffic", "😡", "stuck in traffic"},
		{"😄 sunny", "😄", "sunny"},
		{"9 lives", journal.DefaultMood, "9 lives"},
		{"no mood here", journal.DefaultMood, "no mood here"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mood, note := parseEntryInput(tt.input)
			assert.Equal(t, tt.mood, mood)
			assert.Equal(t, tt.note, note)
		})
	}
}

func TestTheme_CycleAndAccent(t *testing.T) {
	h := newHarness(t).start()

	h.press("t")
	var saved theme.Theme
	require.True(t, h.stored(theme.Key, &saved))
	assert.Equal(t, theme.Light, saved.Mode)
	assert.Equal(t, theme.Light, styles.T().Mode)

	h.press("T")
	h.send(tea.KeyMsg{Type: tea.KeyCtrlU})
	h.typeText("FF0000")
	h.press("enter")
	require.True(t, h.stored(theme.Key, &saved))
	assert.Equal(t, "#ff0000", saved.Accent)

	h.press("T")
	h.send(tea.KeyMsg{Type: tea.KeyCtrlU})
	h.typeText("nope")
	h.press("enter")
	assert.True(t, h.m.StatusErr)
	assert.Contains(t, h.m.Status, "Failed to set accent color")
}

func TestTheme_LoadsStoredTheme(t *testing.T) {
	h := newHarness(t)
	data, err := json.Marshal(theme.Theme{Mode: theme.Custom, Accent: "#123456"})
	require.NoError(t, err)
	require.NoError(t, h.store.Set(context.Background(), theme.Key, data))

	h.start()
	assert.Equal(t, theme.Custom, h.m.Theme.Value().Mode)
	assert.Equal(t, theme.Custom, styles.T().Mode)
}

func TestPokedex_LoadsOnFirstVisit(t *testing.T) {
	h := newHarness(t).start()
	assert.Empty(t, h.poke.forced)

	h.press("3")
	assert.Equal(t, []bool{false}, h.poke.forced)
	assert.Len(t, h.m.Pokedex.Pokemons, 1)
	assert.False(t, h.m.pokedexLoading)

	h.press("1", "3")
	assert.Len(t, h.poke.forced, 1, "not reloaded on revisit")

	h.press("r")
	assert.Equal(t, []bool{false, true}, h.poke.forced)
}

func TestPokedex_LoadMore(t *testing.T) {
	h := newHarness(t).start()
	h.press("3", "n")
	assert.Equal(t, 1, h.poke.moreN)
	assert.Len(t, h.m.Pokedex.Pokemons, 2)

	h.press("n")
	assert.Equal(t, 1, h.poke.moreN, "no next page")
}

func TestPokedex_LoadMoreAtEndOfList(t *testing.T) {
	h := newHarness(t).start()
	h.press("3", "j")
	assert.Equal(t, 1, h.poke.moreN)
}

func TestPokedex_NoLoadMoreWhileOffline(t *testing.T) {
	h := newHarness(t)
	h.poke.initial = pokedex.List{
		Pokemons: []pokedex.Pokemon{{ID: 1, Name: "Bulbasaur"}, {ID: 2, Name: "Ivysaur"}},
		NextURL:  "page2",
		Offline:  true,
	}
	h.start()

	h.press("3", "n", "G")
	assert.Equal(t, 0, h.poke.moreN)
}

func TestPokedex_OfflineShowsError(t *testing.T) {
	h := newHarness(t)
	h.poke.initial = pokedex.List{
		Pokemons: []pokedex.Pokemon{{ID: 25, Name: "Pikachu"}},
		Offline:  true,
		CachedAt: testNow.Add(-48 * time.Hour),
		Err:      errors.Join(pokedex.ErrLoadFailed, errors.New("dial tcp: no route")),
	}
	h.start()
	h.press("3")

	assert.True(t, h.m.StatusErr)
	assert.Contains(t, h.m.Status, "Failed to load Pokémon")
	view := ansi.Strip(h.m.View())
	assert.Contains(t, view, "Pikachu")
	assert.Contains(t, view, "offline")
}

func TestPlaces_Search(t *testing.T) {
	h := newHarness(t).start()
	h.places.places = []geo.Place{{DisplayName: "Lyon, Rhône, France", Lat: 45.76, Lon: 4.83}}

	h.press("4", "/")
	h.typeText("Lyon")
	h.press("enter")

	assert.Equal(t, "Lyon", h.places.query)
	assert.Len(t, h.m.Places, 1)
	assert.Contains(t, ansi.Strip(h.m.View()), "45.76000, 4.83000")
}

func TestPlaces_NoResults(t *testing.T) {
	h := newHarness(t).start()
	h.places.err = geo.ErrNoResults

	h.press("4", "/")
	h.typeText("Atlantis")
	h.press("enter")

	assert.Empty(t, h.m.Places)
	assert.Equal(t, "Failed to search places 'Atlantis': location not found", h.m.Status)
}

func TestPlaces_StaleResultDropped(t *testing.T) {
	h := newHarness(t).start()
	h.m.PlaceQuery = "new"
	h.send(PlacesFoundMsg{Query: "old", Places: []geo.Place{{DisplayName: "Old"}}})
	assert.Empty(t, h.m.Places)
}

func TestHelpOverlay(t *testing.T) {
	h := newHarness(t).start()
	h.press("?")
	assert.True(t, h.m.showHelp)
	assert.Contains(t, ansi.Strip(h.m.View()), "Keys")

	h.press("q")
	assert.False(t, h.m.showHelp)
	assert.False(t, h.quit, "the closing key is consumed")
}

func TestQuit_FlushesWrites(t *testing.T) {
	h := newHarness(t).start()
	h.press("a")
	h.typeText("Last")
	h.press("enter", "q")

	assert.True(t, h.quit)
	var saved []playlists.Playlist
	require.True(t, h.stored(playlists.Key, &saved))
	assert.Len(t, saved, 1)
}

func TestView_Screens(t *testing.T) {
	h := newHarness(t).start()

	view := ansi.Strip(h.m.View())
	assert.Contains(t, view, "Playlists")
	assert.Contains(t, view, "No playlists yet")

	h.press("2")
	assert.Contains(t, ansi.Strip(h.m.View()), "No entries yet")

	h.press("4")
	assert.Contains(t, ansi.Strip(h.m.View()), "Press / to search")
}

func TestView_ZeroSize(t *testing.T) {
	m := New(Deps{Store: state.NewMemory()})
	assert.Empty(t, m.View())
}
