// internal/app/handlers_places.go
package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setlist/internal/errmsg"
	"github.com/llehouerou/setlist/internal/geo"
	"github.com/llehouerou/setlist/internal/keymap"
)

func (m Model) handlePlacesAction(action keymap.Action) (tea.Model, tea.Cmd) {
	if action == keymap.ActionSearch {
		return m.startInput(inputSearch, "Search places", "City, address or landmark", m.PlaceQuery)
	}
	return m, nil
}

func (m Model) searchPlaces(query string) (tea.Model, tea.Cmd) {
	if query == "" {
		return m, nil
	}
	m.PlaceQuery = query
	m.searching = true
	m.setStatus(fmt.Sprintf("Searching %q…", query))
	return m, m.searchPlacesCmd(query)
}

func (m Model) handlePlacesFound(msg PlacesFoundMsg) (tea.Model, tea.Cmd) {
	// Results of a superseded search are dropped.
	if msg.Query != m.PlaceQuery {
		return m, nil
	}
	m.searching = false

	if msg.Err != nil {
		if !errors.Is(msg.Err, geo.ErrNoResults) {
			m.logger.Warn("place search failed", "query", msg.Query, "err", msg.Err)
		}
		m.Places = nil
		m.placeList.SetItems(nil)
		m.setError(errmsg.FormatWith(errmsg.OpPlaceSearch, msg.Query, msg.Err))
		return m, nil
	}

	m.Places = msg.Places
	m.placeList.SetItems(msg.Places)
	m.placeList.Select(0)
	m.setStatus(fmt.Sprintf("%d result(s) for %q", len(msg.Places), msg.Query))
	return m, nil
}
