// Package pokedex browses the PokéAPI list with an offline cache.
package pokedex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultBaseURL  = "https://pokeapi.co/api/v2"
	DefaultPageSize = 20
	userAgent       = "setlist/1.0 (https://github.com/llehouerou/setlist)"
	maxDetailFetch  = 8
)

// Client is a PokéAPI client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	pageSize   int
}

// NewClient creates a client. Empty or zero arguments use the defaults.
func NewClient(baseURL string, pageSize int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		pageSize: pageSize,
	}
}

// InitialURL returns the URL of the first page.
func (c *Client) InitialURL() string {
	return fmt.Sprintf("%s/pokemon?limit=%d", c.baseURL, c.pageSize)
}

// FetchPage fetches a list page, then the details of every entry in
// parallel. Any failed request fails the whole page.
func (c *Client) FetchPage(ctx context.Context, pageURL string) (Page, error) {
	var list listResponse
	if err := c.getJSON(ctx, pageURL, &list); err != nil {
		return Page{}, fmt.Errorf("fetch list: %w", err)
	}

	pokemons := make([]Pokemon, len(list.Results))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxDetailFetch)
	for i, item := range list.Results {
		g.Go(func() error {
			var detail detailResponse
			if err := c.getJSON(gctx, item.URL, &detail); err != nil {
				return fmt.Errorf("fetch %s: %w", item.Name, err)
			}
			pokemons[i] = detail.pokemon()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Page{}, err
	}

	page := Page{Pokemons: pokemons}
	if list.Next != nil {
		page.NextURL = *list.Next
	}
	return page, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
