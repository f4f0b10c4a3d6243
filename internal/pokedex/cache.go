package pokedex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/llehouerou/setlist/internal/state"
)

const (
	// CacheKey is the storage key of the cached list.
	CacheKey = "pokemon_cache_v1"
	// DefaultTTL is how long a cached list counts as fresh.
	DefaultTTL = 24 * time.Hour
)

// CachedData is the stored form of the list.
type CachedData struct {
	Timestamp int64     `json:"timestamp"` // unix milliseconds
	Pokemons  []Pokemon `json:"pokemons"`
	NextURL   string    `json:"nextUrl"`
}

// SavedAt returns the time the data was cached.
func (d CachedData) SavedAt() time.Time {
	return time.UnixMilli(d.Timestamp)
}

// Cache stores the list under CacheKey.
type Cache struct {
	store state.Store
	ttl   time.Duration
	now   func() time.Time
}

// NewCache creates a cache. A ttl <= 0 uses DefaultTTL.
func NewCache(store state.Store, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{store: store, ttl: ttl, now: time.Now}
}

// isFresh checks the age of a cached entry against the TTL.
func (c *Cache) isFresh(d CachedData) bool {
	return c.now().Sub(d.SavedAt()) < c.ttl
}

// Load returns the cached data, fresh or not.
func (c *Cache) Load(ctx context.Context) (CachedData, bool, error) {
	raw, err := c.store.Get(ctx, CacheKey)
	if errors.Is(err, state.ErrNotFound) {
		return CachedData{}, false, nil
	}
	if err != nil {
		return CachedData{}, false, err
	}

	var d CachedData
	if err := json.Unmarshal(raw, &d); err != nil {
		return CachedData{}, false, fmt.Errorf("decode cache: %w", err)
	}
	return d, true, nil
}

// Fresh returns the cached data only if it is younger than the TTL.
func (c *Cache) Fresh(ctx context.Context) (CachedData, bool, error) {
	d, ok, err := c.Load(ctx)
	if err != nil || !ok || !c.isFresh(d) {
		return CachedData{}, false, err
	}
	return d, true, nil
}

// Save stores the list stamped with the current time.
func (c *Cache) Save(ctx context.Context, pokemons []Pokemon, nextURL string) error {
	data, err := json.Marshal(CachedData{
		Timestamp: c.now().UnixMilli(),
		Pokemons:  pokemons,
		NextURL:   nextURL,
	})
	if err != nil {
		return err
	}
	return c.store.Set(ctx, CacheKey, data)
}
