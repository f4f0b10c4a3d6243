// Package app implements the terminal user interface.
package app

import (
	"github.com/llehouerou/setlist/internal/editor"
	"github.com/llehouerou/setlist/internal/geo"
	"github.com/llehouerou/setlist/internal/pokedex"
	"github.com/llehouerou/setlist/internal/theme"
)

// LoadedMsg carries the stored contents of a collection.
type LoadedMsg[T any] struct {
	Result editor.LoadResult[T]
}

// ThemeLoadedMsg carries the stored theme.
type ThemeLoadedMsg struct {
	Theme theme.Theme
	Found bool
}

// PokedexLoadedMsg carries the result of a Pokédex load.
type PokedexLoadedMsg struct {
	List pokedex.List
	More bool // result of a LoadMore
}

// PlacesFoundMsg carries the result of a place search.
type PlacesFoundMsg struct {
	Query  string
	Places []geo.Place
	Err    error
}
