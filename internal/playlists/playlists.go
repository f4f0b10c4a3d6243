// Package playlists holds the undoable playlist index.
package playlists

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/llehouerou/setlist/internal/history"
)

// Key is the storage key of the playlist index.
const Key = "@playlists"

// ErrEmptyName is returned by ParseName for blank input.
var ErrEmptyName = errors.New("playlist name is empty")

// Playlist is an entry of the index. Its songs live under songs.Key(ID).
type Playlist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewPlaylist creates a playlist with a fresh identifier.
func NewPlaylist(name string) Playlist {
	return Playlist{ID: uuid.NewString(), Name: name}
}

// Command is an edit of the playlist index. The set of commands is closed.
type Command interface {
	isCommand()
}

// Add appends a playlist.
type Add struct {
	Playlist Playlist
}

// Remove removes the playlist with the given ID.
// Name and Position are filled in when the command is applied.
type Remove struct {
	ID       string
	Name     string
	Position int
}

// Edit renames the playlist with the given ID.
// PrevName is filled in when the command is applied.
type Edit struct {
	ID       string
	Name     string
	PrevName string
}

func (Add) isCommand()    {}
func (Remove) isCommand() {}
func (Edit) isCommand()   {}

// State is the playlist index with its undo/redo log.
type State = history.State[Playlist, Command]

// New creates an empty index state.
func New(limit int) State {
	return history.New[Playlist, Command](limit)
}

// ParseName trims user input into a playlist name.
func ParseName(input string) (string, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

// Find returns the playlist with the given ID.
func Find(items []Playlist, id string) (Playlist, bool) {
	i := indexOf(items, id)
	if i < 0 {
		return Playlist{}, false
	}
	return items[i], true
}

// Reducer applies playlist commands.
type Reducer struct{}

var _ history.Reducer[Playlist, Command] = Reducer{}

// Forward implements history.Reducer.
// Removing or renaming an unknown ID has no effect and is not recorded.
func (Reducer) Forward(items []Playlist, cmd Command) ([]Playlist, Command, bool) {
	switch c := cmd.(type) {
	case Add:
		return append(slices.Clip(items), c.Playlist), c, true

	case Remove:
		i := indexOf(items, c.ID)
		if i < 0 {
			return items, cmd, false
		}
		c.Name = items[i].Name
		c.Position = i
		return slices.Delete(slices.Clone(items), i, i+1), c, true

	case Edit:
		i := indexOf(items, c.ID)
		if i < 0 || items[i].Name == c.Name {
			return items, cmd, false
		}
		c.PrevName = items[i].Name
		next := slices.Clone(items)
		next[i].Name = c.Name
		return next, c, true

	default:
		panic(fmt.Sprintf("playlists: unhandled command %T", cmd))
	}
}

// Inverse implements history.Reducer.
func (Reducer) Inverse(items []Playlist, cmd Command) []Playlist {
	switch c := cmd.(type) {
	case Add:
		i := indexOf(items, c.Playlist.ID)
		if i < 0 {
			return items
		}
		return slices.Delete(slices.Clone(items), i, i+1)

	case Remove:
		restored := Playlist{ID: c.ID, Name: c.Name}
		return slices.Insert(slices.Clone(items), min(c.Position, len(items)), restored)

	case Edit:
		i := indexOf(items, c.ID)
		if i < 0 {
			return items
		}
		next := slices.Clone(items)
		next[i].Name = c.PrevName
		return next

	default:
		panic(fmt.Sprintf("playlists: unhandled command %T", cmd))
	}
}

func indexOf(items []Playlist, id string) int {
	return slices.IndexFunc(items, func(p Playlist) bool { return p.ID == id })
}
