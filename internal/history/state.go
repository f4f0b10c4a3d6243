package history

// Reducer maps a collection and a command to the next collection.
//
// Implementations must not modify the items slice they are given.
type Reducer[T, C any] interface {
	// Forward applies cmd. It returns the recorded form of the command, which
	// carries whatever Inverse needs (removed positions, previous values).
	// ok is false when cmd has no effect; next is then items and nothing
	// is logged.
	Forward(items []T, cmd C) (next []T, recorded C, ok bool)

	// Inverse reverts a command previously returned as recorded by Forward.
	Inverse(items []T, cmd C) []T
}

// State is a collection together with its undo/redo log.
type State[T, C any] struct {
	Items []T
	Log   Log[C]
}

// New creates an empty state whose log keeps at most limit commands.
func New[T, C any](limit int) State[T, C] {
	return State[T, C]{Log: NewLog[C](limit)}
}

// Apply runs cmd forward, records it and clears the redo stack.
// Returns the unchanged state and false if cmd had no effect.
func Apply[T, C any](r Reducer[T, C], s State[T, C], cmd C) (State[T, C], bool) {
	next, recorded, ok := r.Forward(s.Items, cmd)
	if !ok {
		return s, false
	}
	return State[T, C]{Items: next, Log: s.Log.Record(recorded)}, true
}

// Undo reverts the most recent command.
// Returns the unchanged state and false if there is nothing to undo.
func Undo[T, C any](r Reducer[T, C], s State[T, C]) (State[T, C], bool) {
	cmd, log, ok := s.Log.Undo()
	if !ok {
		return s, false
	}
	return State[T, C]{Items: r.Inverse(s.Items, cmd), Log: log}, true
}

// Redo re-applies the most recently undone command.
// Returns the unchanged state and false if there is nothing to redo.
func Redo[T, C any](r Reducer[T, C], s State[T, C]) (State[T, C], bool) {
	cmd, log, ok := s.Log.Redo()
	if !ok {
		return s, false
	}
	next, _, applied := r.Forward(s.Items, cmd)
	if !applied {
		next = s.Items
	}
	return State[T, C]{Items: next, Log: log}, true
}

// SetAll replaces the collection without touching the log.
// Used to hydrate a state from storage.
func SetAll[T, C any](s State[T, C], items []T) State[T, C] {
	return State[T, C]{Items: append([]T{}, items...), Log: s.Log}
}
