// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit          Action = "quit"
	ActionHelp          Action = "help"
	ActionCycleTheme    Action = "cycle_theme"
	ActionSetAccent     Action = "set_accent"
	ActionViewPlaylists Action = "view_playlists"
	ActionViewJournal   Action = "view_journal"
	ActionViewPokedex   Action = "view_pokedex"
	ActionViewPlaces    Action = "view_places"

	// Generic contextual actions
	ActionAdd    Action = "add"    // a - context determines what
	ActionDelete Action = "delete" // d/delete
	ActionSelect Action = "select" // enter
	ActionBack   Action = "back"   // esc
	ActionUndo   Action = "undo"   // u/ctrl+z
	ActionRedo   Action = "redo"   // ctrl+r

	// Collection-specific actions
	ActionRename Action = "rename" // e
	ActionClear  Action = "clear"  // C - clear songs
	ActionStats  Action = "stats"  // s - mood stats

	// Pokedex
	ActionRefresh  Action = "refresh"   // r
	ActionLoadMore Action = "load_more" // n

	// Places
	ActionSearch Action = "search" // /
)
