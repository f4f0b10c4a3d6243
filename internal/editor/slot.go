package editor

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/llehouerou/setlist/internal/state"
)

// Slot is a single persisted value with the same load gate as a Session:
// Set produces no Write until Hydrate has run.
type Slot[T any] struct {
	key      string
	store    state.Store
	validate func(T) error
	logger   *slog.Logger

	value T
	ready bool
	dirty bool
	sink  *sink
}

// NewSlot creates a slot holding initial until a stored value is loaded.
// validate may be nil; stored values it rejects are ignored.
func NewSlot[T any](key string, store state.Store, initial T, validate func(T) error, logger *slog.Logger) *Slot[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slot[T]{
		key:      key,
		store:    store,
		validate: validate,
		logger:   logger.With("key", key),
		value:    initial,
		sink:     newSink(),
	}
}

// Value returns the current value.
func (s *Slot[T]) Value() T {
	return s.value
}

// Ready reports whether the initial load has completed.
func (s *Slot[T]) Ready() bool {
	return s.ready
}

// Load reads and validates the stored value.
func (s *Slot[T]) Load(ctx context.Context) (T, bool) {
	var zero T

	data, err := s.store.Get(ctx, s.key)
	if errors.Is(err, state.ErrNotFound) {
		return zero, false
	}
	if err != nil {
		s.logger.Warn("failed to load value", "err", err)
		return zero, false
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		s.logger.Warn("failed to decode value", "err", err)
		return zero, false
	}
	if s.validate != nil {
		if err := s.validate(v); err != nil {
			s.logger.Warn("ignoring invalid stored value", "err", err)
			return zero, false
		}
	}
	return v, true
}

// Hydrate completes the initial load. A found value replaces the current
// one unless it was changed while loading, in which case the change wins
// and is saved.
func (s *Slot[T]) Hydrate(v T, found bool) *Write {
	if s.ready {
		return nil
	}
	s.ready = true

	if s.dirty {
		s.dirty = false
		return s.write()
	}
	if found {
		s.value = v
	}
	return nil
}

// Set replaces the value. It returns nil before the slot is ready.
func (s *Slot[T]) Set(v T) *Write {
	s.value = v
	if !s.ready {
		s.dirty = true
		return nil
	}
	return s.write()
}

// Wait blocks until every Write produced so far has been executed.
func (s *Slot[T]) Wait(ctx context.Context) error {
	return s.sink.wait(ctx)
}

func (s *Slot[T]) write() *Write {
	data, err := json.Marshal(s.value)
	if err != nil {
		s.logger.Warn("failed to encode value", "err", err)
		return nil
	}
	return s.sink.next(s.key, data, s.store, s.logger)
}
