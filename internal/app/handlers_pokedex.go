// internal/app/handlers_pokedex.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setlist/internal/errmsg"
	"github.com/llehouerou/setlist/internal/keymap"
	"github.com/llehouerou/setlist/internal/pokedex"
)

func (m Model) handlePokedexAction(action keymap.Action) (tea.Model, tea.Cmd) {
	switch action { //nolint:exhaustive // Only handling pokedex actions
	case keymap.ActionRefresh:
		if m.pokedexLoading {
			return m, nil
		}
		return m.startPokedexLoad(true)

	case keymap.ActionLoadMore:
		if m.pokedexLoading || !m.Pokedex.HasMore() || m.Pokedex.Offline {
			return m, nil
		}
		m.pokedexLoading = true
		return m, tea.Batch(m.spinner.Tick, m.loadMorePokedexCmd())
	}
	return m, nil
}

func (m Model) startPokedexLoad(force bool) (tea.Model, tea.Cmd) {
	m.pokedexLoading = true
	return m, tea.Batch(m.spinner.Tick, m.loadPokedexCmd(force))
}

// maybeLoadMore fetches the next page when the cursor reaches the end.
func (m *Model) maybeLoadMore() tea.Cmd {
	if m.pokedexLoading || !m.Pokedex.HasMore() || m.Pokedex.Offline {
		return nil
	}
	if m.pokemonList.SelectedIndex() < m.pokemonList.Len()-1 {
		return nil
	}
	m.pokedexLoading = true
	return tea.Batch(m.spinner.Tick, m.loadMorePokedexCmd())
}

func (m Model) handlePokedexLoaded(msg PokedexLoadedMsg) (tea.Model, tea.Cmd) {
	m.pokedexLoading = false
	m.Pokedex = msg.List
	m.pokemonList.SetItems(msg.List.Pokemons)

	if err := msg.List.Err; err != nil {
		op := errmsg.OpPokedexLoad
		if msg.More {
			op = errmsg.OpPokedexMore
		}
		m.logger.Warn("pokedex load failed", "more", msg.More, "err", err)
		m.setError(errmsg.Format(op, unwrapReason(err)))
	}
	return m, nil
}

// unwrapReason strips the load sentinel so the status reads once.
func unwrapReason(err error) error {
	u, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return err
	}
	errs := u.Unwrap()
	if len(errs) == 2 && (errs[0] == pokedex.ErrLoadFailed || errs[0] == pokedex.ErrLoadMoreFailed) {
		return errs[1]
	}
	return err
}
