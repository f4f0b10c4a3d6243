// internal/app/rows.go
package app

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/setlist/internal/geo"
	"github.com/llehouerou/setlist/internal/journal"
	"github.com/llehouerou/setlist/internal/playlists"
	"github.com/llehouerou/setlist/internal/pokedex"
	"github.com/llehouerou/setlist/internal/ui/render"
)

func renderPlaylist(p playlists.Playlist, _ int) string {
	return "♫ " + p.Name
}

func renderSong(title string, _ int) string {
	return "  " + title
}

func renderEntry(e journal.Entry, width int) string {
	when := e.Date.Local().Format("Mon Jan 2 15:04")
	left := fmt.Sprintf("%s  %s", e.Mood, when)
	if e.Note != "" {
		left += "  " + e.Note
	}
	return render.Row(render.Truncate(left, max(width-16, 1)), humanize.Time(e.Date), width)
}

func renderPokemon(p pokedex.Pokemon, width int) string {
	left := fmt.Sprintf("#%03d %s", p.ID, p.Name)
	return render.Row(left, strings.Join(p.Types, " · "), width)
}

func renderPlace(p geo.Place, width int) string {
	return render.Row(p.Name(), p.Coords(), width)
}
