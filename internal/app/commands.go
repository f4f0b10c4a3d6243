// internal/app/commands.go
package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setlist/internal/editor"
	"github.com/llehouerou/setlist/internal/theme"
)

const (
	storeTimeout = 5 * time.Second
	fetchTimeout = 30 * time.Second
	flushTimeout = 2 * time.Second
)

// LoadCmd reads a collection off the UI goroutine.
func LoadCmd[T, C any](s *editor.Session[T, C]) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return LoadedMsg[T]{Result: s.Load(ctx)}
	}
}

// LoadThemeCmd reads the stored theme.
func LoadThemeCmd(s *editor.Slot[theme.Theme]) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		t, found := s.Load(ctx)
		return ThemeLoadedMsg{Theme: t, Found: found}
	}
}

// ExecCmd runs a write in the background. Failures are logged by the
// write itself and not reported back.
func ExecCmd(w *editor.Write) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		_ = w.Exec(ctx)
		return nil
	}
}

func (m Model) loadPokedexCmd(force bool) tea.Cmd {
	loader := m.deps.Pokedex
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return PokedexLoadedMsg{List: loader.LoadInitial(ctx, force)}
	}
}

func (m Model) loadMorePokedexCmd() tea.Cmd {
	loader := m.deps.Pokedex
	current := m.Pokedex
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return PokedexLoadedMsg{List: loader.LoadMore(ctx, current), More: true}
	}
}

func (m Model) searchPlacesCmd(query string) tea.Cmd {
	searcher := m.deps.Places
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		places, err := searcher.Search(ctx, query)
		return PlacesFoundMsg{Query: query, Places: places, Err: err}
	}
}

// quitCmd waits for pending writes, bounded by flushTimeout, then quits.
func (m Model) quitCmd() tea.Cmd {
	waiters := m.waiters
	logger := m.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		var errs []error
		for _, w := range waiters {
			errs = append(errs, w.Wait(ctx))
		}
		if err := errors.Join(errs...); err != nil {
			logger.Warn("pending writes not flushed", "err", err)
		}
		return tea.QuitMsg{}
	}
}
