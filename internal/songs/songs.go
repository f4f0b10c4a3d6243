// Package songs holds the undoable song list of a single playlist.
package songs

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/llehouerou/setlist/internal/history"
)

// DefaultPlaylistID is used when a song list is opened without a playlist.
const DefaultPlaylistID = "default"

// ErrEmptyTitle is returned by ParseTitle for blank input.
var ErrEmptyTitle = errors.New("song title is empty")

// Command is an edit of a song list. The set of commands is closed.
type Command interface {
	isCommand()
}

// Add appends a title. Duplicates are allowed.
type Add struct {
	Title string
}

// Remove removes every entry equal to Title.
type Remove struct {
	Title string
	// Positions of the removed entries in the list before removal.
	// Filled in when the command is applied.
	Positions []int
}

// Clear empties the list.
type Clear struct {
	// Snapshot holds the list as it was before clearing.
	// Filled in when the command is applied.
	Snapshot []string
}

func (Add) isCommand()    {}
func (Remove) isCommand() {}
func (Clear) isCommand()  {}

// State is a song list with its undo/redo log.
type State = history.State[string, Command]

// New creates an empty song list state.
func New(limit int) State {
	return history.New[string, Command](limit)
}

// Key returns the storage key of the song list of a playlist.
func Key(playlistID string) string {
	if playlistID == "" {
		playlistID = DefaultPlaylistID
	}
	return "@playlist_" + playlistID
}

// ParseTitle trims user input into a song title.
func ParseTitle(input string) (string, error) {
	title := strings.TrimSpace(input)
	if title == "" {
		return "", ErrEmptyTitle
	}
	return title, nil
}

// Reducer applies song commands.
type Reducer struct{}

var _ history.Reducer[string, Command] = Reducer{}

// Forward implements history.Reducer.
// Removing a title that is not in the list and clearing an empty list
// have no effect and are not recorded.
func (Reducer) Forward(items []string, cmd Command) ([]string, Command, bool) {
	switch c := cmd.(type) {
	case Add:
		return append(slices.Clip(items), c.Title), c, true

	case Remove:
		next := make([]string, 0, len(items))
		var positions []int
		for i, title := range items {
			if title == c.Title {
				positions = append(positions, i)
				continue
			}
			next = append(next, title)
		}
		if len(positions) == 0 {
			return items, cmd, false
		}
		c.Positions = positions
		return next, c, true

	case Clear:
		if len(items) == 0 {
			return items, cmd, false
		}
		c.Snapshot = slices.Clone(items)
		return []string{}, c, true

	default:
		panic(fmt.Sprintf("songs: unhandled command %T", cmd))
	}
}

// Inverse implements history.Reducer.
func (Reducer) Inverse(items []string, cmd Command) []string {
	switch c := cmd.(type) {
	case Add:
		i := lastIndex(items, c.Title)
		if i < 0 {
			return items
		}
		return slices.Delete(slices.Clone(items), i, i+1)

	case Remove:
		next := slices.Clone(items)
		// Positions are ascending, so inserting in order rebuilds the
		// original layout.
		for _, pos := range c.Positions {
			next = slices.Insert(next, min(pos, len(next)), c.Title)
		}
		return next

	case Clear:
		return slices.Clone(c.Snapshot)

	default:
		panic(fmt.Sprintf("songs: unhandled command %T", cmd))
	}
}

func lastIndex(items []string, title string) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i] == title {
			return i
		}
	}
	return -1
}
