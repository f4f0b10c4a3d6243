package pokedex

import "unicode"

// Pokemon is one row of the list.
type Pokemon struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Image string   `json:"image"`
	Types []string `json:"types"`
}

// Page is a fetched page of the list.
type Page struct {
	Pokemons []Pokemon
	NextURL  string // empty on the last page
}

// listResponse is the paginated list endpoint payload.
type listResponse struct {
	Next    *string `json:"next"`
	Results []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"results"`
}

// detailResponse is the subset of the detail endpoint payload we use.
type detailResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
}

func (d detailResponse) pokemon() Pokemon {
	image := d.Sprites.Other.OfficialArtwork.FrontDefault
	if image == "" {
		image = d.Sprites.FrontDefault
	}
	types := make([]string, len(d.Types))
	for i, t := range d.Types {
		types[i] = t.Type.Name
	}
	return Pokemon{
		ID:    d.ID,
		Name:  capitalize(d.Name),
		Image: image,
		Types: types,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
