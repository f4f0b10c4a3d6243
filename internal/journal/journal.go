// Package journal holds mood journal entries, newest first.
package journal

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/llehouerou/setlist/internal/history"
)

// Key is the storage key of the journal.
const Key = "@mood_entries_v1"

// Moods are the selectable moods, happiest first.
var Moods = []string{"😄", "🙂", "😐", "😕", "😢", "😡"}

// DefaultMood is preselected when adding an entry.
var DefaultMood = Moods[1]

// ErrUnknownMood is returned by ParseMood for input outside Moods.
var ErrUnknownMood = errors.New("unknown mood")

// Entry is one journal record.
type Entry struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Mood string    `json:"mood"`
	Note string    `json:"note,omitempty"`
}

// NewEntry creates an entry with a fresh identifier.
func NewEntry(mood, note string, at time.Time) Entry {
	return Entry{
		ID:   uuid.NewString(),
		Date: at.UTC(),
		Mood: mood,
		Note: strings.TrimSpace(note),
	}
}

// ParseMood accepts a mood emoji or its 1-based index in Moods.
func ParseMood(input string) (string, error) {
	input = strings.TrimSpace(input)
	if slices.Contains(Moods, input) {
		return input, nil
	}
	if len(input) == 1 && input[0] >= '1' && int(input[0]-'0') <= len(Moods) {
		return Moods[input[0]-'1'], nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMood, input)
}

// Command is an edit of the journal. The set of commands is closed.
type Command interface {
	isCommand()
}

// Add inserts an entry at the top.
type Add struct {
	Entry Entry
}

// Remove deletes the entry with the given ID.
// Entry and Position are filled in when the command is applied.
type Remove struct {
	ID       string
	Entry    Entry
	Position int
}

func (Add) isCommand()    {}
func (Remove) isCommand() {}

// State is the journal with its undo/redo log.
type State = history.State[Entry, Command]

// New creates an empty journal state.
func New(limit int) State {
	return history.New[Entry, Command](limit)
}

// Reducer applies journal commands.
type Reducer struct{}

var _ history.Reducer[Entry, Command] = Reducer{}

// Forward implements history.Reducer.
func (Reducer) Forward(items []Entry, cmd Command) ([]Entry, Command, bool) {
	switch c := cmd.(type) {
	case Add:
		next := make([]Entry, 0, len(items)+1)
		next = append(next, c.Entry)
		return append(next, items...), c, true

	case Remove:
		i := slices.IndexFunc(items, func(e Entry) bool { return e.ID == c.ID })
		if i < 0 {
			return items, cmd, false
		}
		c.Entry = items[i]
		c.Position = i
		return slices.Delete(slices.Clone(items), i, i+1), c, true

	default:
		panic(fmt.Sprintf("journal: unhandled command %T", cmd))
	}
}

// Inverse implements history.Reducer.
func (Reducer) Inverse(items []Entry, cmd Command) []Entry {
	switch c := cmd.(type) {
	case Add:
		i := slices.IndexFunc(items, func(e Entry) bool { return e.ID == c.Entry.ID })
		if i < 0 {
			return items
		}
		return slices.Delete(slices.Clone(items), i, i+1)

	case Remove:
		return slices.Insert(slices.Clone(items), min(c.Position, len(items)), c.Entry)

	default:
		panic(fmt.Sprintf("journal: unhandled command %T", cmd))
	}
}
