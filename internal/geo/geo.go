// Package geo resolves free-text place queries with Nominatim.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://nominatim.openstreetmap.org"
	DefaultLimit   = 5
	userAgent      = "setlist/1.0 (https://github.com/llehouerou/setlist)"
)

var (
	// ErrEmptyQuery is returned for a blank search.
	ErrEmptyQuery = errors.New("search query is empty")
	// ErrNoResults is returned when nothing matches the query.
	ErrNoResults = errors.New("location not found")
)

// Place is a geocoding result.
type Place struct {
	DisplayName string
	Lat         float64
	Lon         float64
}

// Name returns the display name up to its first comma.
func (p Place) Name() string {
	name, _, _ := strings.Cut(p.DisplayName, ",")
	return strings.TrimSpace(name)
}

// Coords formats the position as "lat, lon".
func (p Place) Coords() string {
	return fmt.Sprintf("%.5f, %.5f", p.Lat, p.Lon)
}

// searchResult is one entry of the /search response. Nominatim encodes
// coordinates as strings.
type searchResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Client is a Nominatim API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limit      int
}

// NewClient creates a client. Empty or zero arguments use the defaults.
func NewClient(baseURL string, limit int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		limit:   limit,
	}
}

// Search returns the places matching query, best match first.
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(c.limit))

	reqURL := c.baseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	places := make([]Place, 0, len(results))
	for _, r := range results {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			return nil, fmt.Errorf("parse latitude %q: %w", r.Lat, err)
		}
		lon, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			return nil, fmt.Errorf("parse longitude %q: %w", r.Lon, err)
		}
		places = append(places, Place{DisplayName: r.DisplayName, Lat: lat, Lon: lon})
	}
	return places, nil
}
