// Package history implements a linear undo/redo log for edits applied to an
// ordered collection.
package history

// Log holds the commands that can be undone (past) and redone (future).
// Logs are values: every method returns a new Log and never writes into the
// receiver's backing arrays, so older Logs stay valid after an edit.
type Log[C any] struct {
	past   []C
	future []C
	limit  int // max past length, 0 = unlimited
}

// NewLog creates an empty log keeping at most limit undoable commands.
// A limit <= 0 keeps everything.
func NewLog[C any](limit int) Log[C] {
	return Log[C]{limit: max(limit, 0)}
}

// Past returns a copy of the undoable commands, oldest first.
func (l Log[C]) Past() []C {
	return append([]C{}, l.past...)
}

// Future returns a copy of the redoable commands, next first.
func (l Log[C]) Future() []C {
	return append([]C{}, l.future...)
}

// CanUndo returns true if there is a command to undo.
func (l Log[C]) CanUndo() bool {
	return len(l.past) > 0
}

// CanRedo returns true if there is a command to redo.
func (l Log[C]) CanRedo() bool {
	return len(l.future) > 0
}

// Limit returns the configured depth of the log.
func (l Log[C]) Limit() int {
	return l.limit
}

// Record appends c to the past and discards the future.
// The oldest commands are dropped once the limit is exceeded.
func (l Log[C]) Record(c C) Log[C] {
	past := make([]C, 0, len(l.past)+1)
	past = append(past, l.past...)
	past = append(past, c)

	if l.limit > 0 && len(past) > l.limit {
		past = past[len(past)-l.limit:]
	}

	return Log[C]{past: past, limit: l.limit}
}

// Undo moves the last past command to the front of the future and returns it.
// Returns false and the unchanged log if there is nothing to undo.
func (l Log[C]) Undo() (C, Log[C], bool) {
	if !l.CanUndo() {
		var zero C
		return zero, l, false
	}

	n := len(l.past) - 1
	last := l.past[n]

	future := make([]C, 0, len(l.future)+1)
	future = append(future, last)
	future = append(future, l.future...)

	return last, Log[C]{past: l.past[:n:n], future: future, limit: l.limit}, true
}

// Redo moves the first future command to the end of the past and returns it.
// Returns false and the unchanged log if there is nothing to redo.
func (l Log[C]) Redo() (C, Log[C], bool) {
	if !l.CanRedo() {
		var zero C
		return zero, l, false
	}

	next := l.future[0]

	past := make([]C, 0, len(l.past)+1)
	past = append(past, l.past...)
	past = append(past, next)

	rest := l.future[1:]
	return next, Log[C]{past: past, future: rest[:len(rest):len(rest)], limit: l.limit}, true
}
