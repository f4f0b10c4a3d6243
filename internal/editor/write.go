package editor

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/llehouerou/setlist/internal/state"
)

// sink orders the writes of one key. Writes may run on any goroutine; a
// write older than the newest one already stored is dropped.
type sink struct {
	mu     sync.Mutex // held while storing
	stored uint64

	count   sync.Mutex
	issued  uint64
	pending int
	idle    chan struct{} // closed while pending is zero
}

func newSink() *sink {
	idle := make(chan struct{})
	close(idle)
	return &sink{idle: idle}
}

func (k *sink) next(key string, data []byte, store state.Store, logger *slog.Logger) *Write {
	k.count.Lock()
	k.issued++
	seq := k.issued
	if k.pending == 0 {
		k.idle = make(chan struct{})
	}
	k.pending++
	k.count.Unlock()

	return &Write{
		key:    key,
		data:   data,
		seq:    seq,
		store:  store,
		sink:   k,
		logger: logger,
	}
}

func (k *sink) done() {
	k.count.Lock()
	defer k.count.Unlock()
	k.pending--
	if k.pending == 0 {
		close(k.idle)
	}
}

// wait blocks until no write of the key is pending.
func (k *sink) wait(ctx context.Context) error {
	k.count.Lock()
	idle := k.idle
	k.count.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sinks shares write ordering between sessions of the same key. A session
// reopened on a key waits for the writes of the previous one before
// loading, and a write of the previous session that lands late cannot
// replace a newer one. The zero value is not usable; call NewSinks.
type Sinks struct {
	mu    sync.Mutex
	byKey map[string]*sink
}

// NewSinks creates an empty registry.
func NewSinks() *Sinks {
	return &Sinks{byKey: make(map[string]*sink)}
}

// get returns the sink of key. A nil registry hands out private sinks.
func (s *Sinks) get(key string) *sink {
	if s == nil {
		return newSink()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	k, ok := s.byKey[key]
	if !ok {
		k = newSink()
		s.byKey[key] = k
	}
	return k
}

// Wait blocks until the pending writes of every key have been executed.
func (s *Sinks) Wait(ctx context.Context) error {
	s.mu.Lock()
	sinks := slices.Collect(maps.Values(s.byKey))
	s.mu.Unlock()

	for _, k := range sinks {
		if err := k.wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Write is a pending save of a snapshot. It is safe to Exec from another
// goroutine than the one that produced it.
type Write struct {
	key    string
	data   []byte
	seq    uint64
	store  state.Store
	sink   *sink
	logger *slog.Logger
	once   sync.Once
}

// Key returns the storage key the write targets.
func (w *Write) Key() string {
	return w.key
}

// Data returns the encoded snapshot.
func (w *Write) Data() []byte {
	return w.data
}

// Exec stores the snapshot. Failures are logged and returned; they are
// never retried. Only the first call does anything.
func (w *Write) Exec(ctx context.Context) error {
	var err error
	w.once.Do(func() {
		defer w.sink.done()
		err = w.exec(ctx)
	})
	return err
}

func (w *Write) exec(ctx context.Context) error {
	w.sink.mu.Lock()
	defer w.sink.mu.Unlock()

	if w.seq <= w.sink.stored {
		w.logger.Debug("skipping superseded write", "seq", w.seq)
		return nil
	}

	if err := w.store.Set(ctx, w.key, w.data); err != nil {
		w.logger.Warn("failed to save collection", "err", err)
		return err
	}
	w.sink.stored = w.seq
	return nil
}
