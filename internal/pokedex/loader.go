package pokedex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var (
	// ErrLoadFailed is reported when the first page cannot be fetched.
	ErrLoadFailed = errors.New("failed to load Pokémon, check your connection")
	// ErrLoadMoreFailed is reported when a following page cannot be fetched.
	ErrLoadMoreFailed = errors.New("failed to load more Pokémon")
)

// Fetcher fetches list pages.
type Fetcher interface {
	FetchPage(ctx context.Context, pageURL string) (Page, error)
}

// List is what the view renders.
type List struct {
	Pokemons []Pokemon
	NextURL  string
	// Offline is set when the network failed and cached data is shown.
	Offline bool
	// CachedAt is the time the shown data was cached; zero when fetched.
	CachedAt time.Time
	// Err is the user-facing failure of the last load, if any.
	Err error
}

// HasMore reports whether another page can be loaded.
func (l List) HasMore() bool {
	return l.NextURL != ""
}

// Loader combines the client and the cache.
type Loader struct {
	fetcher    Fetcher
	cache      *Cache
	initialURL string
	logger     *slog.Logger
}

// NewLoader creates a loader starting at initialURL.
func NewLoader(fetcher Fetcher, cache *Cache, initialURL string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		fetcher:    fetcher,
		cache:      cache,
		initialURL: initialURL,
		logger:     logger,
	}
}

// LoadInitial loads the first page. Unless force is set, a fresh cache is
// used without touching the network. When the fetch fails, any cached
// data is returned flagged Offline along with ErrLoadFailed.
func (l *Loader) LoadInitial(ctx context.Context, force bool) List {
	if !force {
		d, ok, err := l.cache.Fresh(ctx)
		if err != nil {
			l.logger.Warn("failed to read pokedex cache", "err", err)
		}
		if ok {
			return List{Pokemons: d.Pokemons, NextURL: d.NextURL, CachedAt: d.SavedAt()}
		}
	}

	page, err := l.fetcher.FetchPage(ctx, l.initialURL)
	if err != nil {
		l.logger.Warn("failed to fetch pokedex", "err", err)
		result := List{Err: fmt.Errorf("%w: %w", ErrLoadFailed, err)}
		d, ok, cacheErr := l.cache.Load(ctx)
		if cacheErr != nil {
			l.logger.Warn("failed to read pokedex cache", "err", cacheErr)
		}
		if ok {
			result.Pokemons = d.Pokemons
			result.NextURL = d.NextURL
			result.CachedAt = d.SavedAt()
			result.Offline = true
		}
		return result
	}

	l.save(ctx, page.Pokemons, page.NextURL)
	return List{Pokemons: page.Pokemons, NextURL: page.NextURL}
}

// LoadMore appends the next page to current. It returns current unchanged
// when there is no next page, and current with ErrLoadMoreFailed when the
// fetch fails.
func (l *Loader) LoadMore(ctx context.Context, current List) List {
	if !current.HasMore() {
		return current
	}

	page, err := l.fetcher.FetchPage(ctx, current.NextURL)
	if err != nil {
		l.logger.Warn("failed to fetch next pokedex page", "url", current.NextURL, "err", err)
		current.Err = fmt.Errorf("%w: %w", ErrLoadMoreFailed, err)
		return current
	}

	merged := make([]Pokemon, 0, len(current.Pokemons)+len(page.Pokemons))
	merged = append(merged, current.Pokemons...)
	merged = append(merged, page.Pokemons...)

	l.save(ctx, merged, page.NextURL)
	return List{Pokemons: merged, NextURL: page.NextURL}
}

func (l *Loader) save(ctx context.Context, pokemons []Pokemon, nextURL string) {
	if err := l.cache.Save(ctx, pokemons, nextURL); err != nil {
		l.logger.Warn("failed to save pokedex cache", "err", err)
	}
}
