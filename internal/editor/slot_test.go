package editor

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pref struct {
	Mode string `json:"mode"`
}

func validPref(p pref) error {
	if p.Mode == "" {
		return errors.New("empty mode")
	}
	return nil
}

func newPrefSlot(store *spyStore) *Slot[pref] {
	return NewSlot("@pref", store, pref{Mode: "dark"}, validPref, slog.New(slog.DiscardHandler))
}

func TestSlot_NoWriteBeforeHydrate(t *testing.T) {
	store := newSpyStore()
	s := newPrefSlot(store)

	assert.Nil(t, s.Set(pref{Mode: "light"}))
	assert.Empty(t, store.setCalls())

	exec(t, s.Hydrate(s.Load(context.Background())))
	assert.JSONEq(t, `{"mode":"light"}`, stored(t, store, "@pref"))
}

func TestSlot_LoadsStoredValue(t *testing.T) {
	store := newSpyStore()
	require.NoError(t, store.Memory.Set(context.Background(), "@pref", []byte(`{"mode":"custom"}`)))
	s := newPrefSlot(store)

	assert.Nil(t, s.Hydrate(s.Load(context.Background())))
	assert.Equal(t, pref{Mode: "custom"}, s.Value())
}

func TestSlot_IgnoresInvalidStoredValue(t *testing.T) {
	store := newSpyStore()
	require.NoError(t, store.Memory.Set(context.Background(), "@pref", []byte(`{"mode":""}`)))
	s := newPrefSlot(store)

	v, found := s.Load(context.Background())
	assert.False(t, found)
	s.Hydrate(v, found)
	assert.Equal(t, pref{Mode: "dark"}, s.Value())
}

func TestSlot_IgnoresUndecodableValue(t *testing.T) {
	store := newSpyStore()
	require.NoError(t, store.Memory.Set(context.Background(), "@pref", []byte(`nope`)))
	s := newPrefSlot(store)

	_, found := s.Load(context.Background())
	assert.False(t, found)
}

func TestSlot_SetAfterReady(t *testing.T) {
	store := newSpyStore()
	s := newPrefSlot(store)
	s.Hydrate(s.Load(context.Background()))

	exec(t, s.Set(pref{Mode: "light"}))
	assert.Equal(t, pref{Mode: "light"}, s.Value())
	assert.True(t, s.Ready())
	assert.Len(t, store.setCalls(), 1)
}
