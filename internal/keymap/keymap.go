package keymap

import "github.com/charmbracelet/bubbles/key"

// Contexts in which bindings apply. Global bindings apply everywhere.
const (
	ContextGlobal    = "global"
	ContextPlaylists = "playlists"
	ContextSongs     = "songs"
	ContextJournal   = "journal"
	ContextPokedex   = "pokedex"
	ContextPlaces    = "places"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains all key bindings, in help order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionViewPlaylists, []string{"1"}, "Playlists", ContextGlobal},
	{ActionViewJournal, []string{"2"}, "Mood journal", ContextGlobal},
	{ActionViewPokedex, []string{"3"}, "Pokédex", ContextGlobal},
	{ActionViewPlaces, []string{"4"}, "Places", ContextGlobal},
	{ActionCycleTheme, []string{"t"}, "Cycle theme", ContextGlobal},
	{ActionSetAccent, []string{"T"}, "Set accent color", ContextGlobal},
	{ActionHelp, []string{"?"}, "Toggle help", ContextGlobal},

	// Playlists
	{ActionAdd, []string{"a"}, "New playlist", ContextPlaylists},
	{ActionRename, []string{"e"}, "Rename", ContextPlaylists},
	{ActionDelete, []string{"d", "delete"}, "Delete", ContextPlaylists},
	{ActionSelect, []string{"enter"}, "Open", ContextPlaylists},
	{ActionUndo, []string{"u", "ctrl+z"}, "Undo", ContextPlaylists},
	{ActionRedo, []string{"ctrl+r"}, "Redo", ContextPlaylists},

	// Songs of the open playlist
	{ActionAdd, []string{"a"}, "Add song", ContextSongs},
	{ActionDelete, []string{"d", "delete"}, "Remove song", ContextSongs},
	{ActionClear, []string{"C"}, "Clear all", ContextSongs},
	{ActionUndo, []string{"u", "ctrl+z"}, "Undo", ContextSongs},
	{ActionRedo, []string{"ctrl+r"}, "Redo", ContextSongs},
	{ActionBack, []string{"esc", "backspace"}, "Back", ContextSongs},

	// Journal
	{ActionAdd, []string{"a"}, "New entry", ContextJournal},
	{ActionDelete, []string{"d", "delete"}, "Delete entry", ContextJournal},
	{ActionStats, []string{"s"}, "Toggle stats", ContextJournal},
	{ActionUndo, []string{"u", "ctrl+z"}, "Undo", ContextJournal},
	{ActionRedo, []string{"ctrl+r"}, "Redo", ContextJournal},

	// Pokedex
	{ActionRefresh, []string{"r"}, "Refresh", ContextPokedex},
	{ActionLoadMore, []string{"n"}, "Load more", ContextPokedex},

	// Places
	{ActionSearch, []string{"/"}, "Search", ContextPlaces},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// HelpKeys converts the bindings of a context to bubbles key bindings for
// the help view.
func HelpKeys(context string) []key.Binding {
	bindings := ByContext(context)
	result := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		result = append(result, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(b.Keys[0], b.Description),
		))
	}
	return result
}
