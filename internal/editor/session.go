// Package editor binds an undoable collection to a storage key.
//
// A Session loads its collection once, then produces a Write after every
// change. No Write is ever produced before the first load attempt has
// completed, so an empty initial collection cannot overwrite stored data.
//
// Session methods other than Load must be called from a single goroutine
// (the UI loop). Load only reads immutable fields and may run anywhere.
package editor

import (
	"context"
	"errors"
	"log/slog"

	"github.com/llehouerou/setlist/internal/history"
	"github.com/llehouerou/setlist/internal/state"
)

// Config describes a Session.
type Config[T, C any] struct {
	Key     string
	Store   state.Store
	Codec   Codec[T]
	Reducer history.Reducer[T, C]
	Limit   int // undo depth, 0 = unlimited
	Logger  *slog.Logger
	Sinks   *Sinks // shared with other sessions of Key, nil for none
}

// LoadResult is the outcome of a load attempt.
// Found is false when the key is absent or could not be read or decoded.
type LoadResult[T any] struct {
	Key   string
	Items []T
	Found bool
}

// Session is an undoable collection persisted under one key.
type Session[T, C any] struct {
	key     string
	store   state.Store
	codec   Codec[T]
	reducer history.Reducer[T, C]
	limit   int
	logger  *slog.Logger

	state history.State[T, C]
	ready bool
	dirty bool // changed before ready
	sink  *sink
}

// New creates a session with an empty collection.
func New[T, C any](cfg Config[T, C]) *Session[T, C] {
	codec := cfg.Codec
	if codec == nil {
		codec = JSON[T]{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session[T, C]{
		key:     cfg.Key,
		store:   cfg.Store,
		codec:   codec,
		reducer: cfg.Reducer,
		limit:   cfg.Limit,
		logger:  logger.With("key", cfg.Key),
		state:   history.New[T, C](cfg.Limit),
		sink:    cfg.Sinks.get(cfg.Key),
	}
}

// Key returns the storage key.
func (s *Session[T, C]) Key() string {
	return s.key
}

// Ready reports whether the initial load has completed.
func (s *Session[T, C]) Ready() bool {
	return s.ready
}

// State returns the current collection and log.
func (s *Session[T, C]) State() history.State[T, C] {
	return s.state
}

// Items returns a copy of the current collection.
func (s *Session[T, C]) Items() []T {
	return append([]T{}, s.state.Items...)
}

// CanUndo reports whether Undo would change anything.
func (s *Session[T, C]) CanUndo() bool {
	return s.state.Log.CanUndo()
}

// CanRedo reports whether Redo would change anything.
func (s *Session[T, C]) CanRedo() bool {
	return s.state.Log.CanRedo()
}

// Load reads the stored collection once the writes still pending for the
// key have been executed. Read and decode failures are logged and
// reported as not found.
func (s *Session[T, C]) Load(ctx context.Context) LoadResult[T] {
	res := LoadResult[T]{Key: s.key}

	if err := s.sink.wait(ctx); err != nil {
		s.logger.Warn("pending writes not flushed before load", "err", err)
	}

	data, err := s.store.Get(ctx, s.key)
	if errors.Is(err, state.ErrNotFound) {
		return res
	}
	if err != nil {
		s.logger.Warn("failed to load collection", "err", err)
		return res
	}

	items, err := s.codec.Decode(data)
	if err != nil {
		s.logger.Warn("failed to decode collection", "err", err)
		return res
	}

	res.Items = items
	res.Found = true
	return res
}

// Hydrate completes the initial load and opens the session for writes.
// Stored data replaces the collection without touching the log, unless
// edits were made while loading: those are then discarded along with
// their history. When nothing was stored but edits were made, the
// returned Write saves them. Calls after the first are ignored.
func (s *Session[T, C]) Hydrate(res LoadResult[T]) *Write {
	if s.ready {
		return nil
	}
	s.ready = true

	dirty := s.dirty
	s.dirty = false

	if res.Found {
		if dirty {
			s.logger.Info("discarding edits made before load")
			s.state = history.New[T, C](s.limit)
		}
		s.state = history.SetAll(s.state, res.Items)
		return nil
	}

	if dirty {
		return s.write()
	}
	return nil
}

// Dispatch applies cmd. It returns nil when cmd had no effect or the
// session is not ready yet.
func (s *Session[T, C]) Dispatch(cmd C) *Write {
	next, ok := history.Apply(s.reducer, s.state, cmd)
	return s.commit(next, ok)
}

// Undo reverts the last command.
func (s *Session[T, C]) Undo() *Write {
	next, ok := history.Undo(s.reducer, s.state)
	return s.commit(next, ok)
}

// Redo re-applies the last undone command.
func (s *Session[T, C]) Redo() *Write {
	next, ok := history.Redo(s.reducer, s.state)
	return s.commit(next, ok)
}

// Wait blocks until every Write produced so far has been executed.
// Writes that are dropped without Exec are not waited for past ctx.
func (s *Session[T, C]) Wait(ctx context.Context) error {
	return s.sink.wait(ctx)
}

func (s *Session[T, C]) commit(next history.State[T, C], changed bool) *Write {
	if !changed {
		return nil
	}
	s.state = next
	if !s.ready {
		s.dirty = true
		return nil
	}
	return s.write()
}

func (s *Session[T, C]) write() *Write {
	data, err := s.codec.Encode(s.state.Items)
	if err != nil {
		s.logger.Warn("failed to encode collection", "err", err)
		return nil
	}
	return s.sink.next(s.key, data, s.store, s.logger)
}
