// Package geo implements the geocoding port against an HTTP distance
// service. The service resolves a delivery address into a locality flag
// and a road distance from the kitchen.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"catering/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// Client resolves addresses through the distance service's
// GET /resolve?street=...&city=... endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	homeCity   string
}

type resolveResponse struct {
	IsLocal    bool    `json:"is_local"`
	DistanceKm float64 `json:"distance_km"`
}

// NewClient creates a geocoding client for the service at baseURL.
// Addresses in homeCity are resolved as local without a network call,
// since the flat-fee zone is defined as the kitchen's own city.
func NewClient(baseURL, homeCity string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL:  strings.TrimRight(baseURL, "/"),
		homeCity: homeCity,
	}
}

// Resolve implements ports.Geocoder.
func (c *Client) Resolve(ctx context.Context, street, city string) (ports.GeoResult, error) {
	if c.homeCity != "" && strings.EqualFold(city, c.homeCity) {
		return ports.GeoResult{IsLocal: true}, nil
	}

	endpoint := fmt.Sprintf("%s/resolve?%s", c.baseURL, url.Values{
		"street": {street},
		"city":   {city},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.GeoResult{}, fmt.Errorf("failed to build geo request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.GeoResult{}, fmt.Errorf("geo service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.GeoResult{}, fmt.Errorf("geo service returned status %d", resp.StatusCode)
	}

	var body resolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.GeoResult{}, fmt.Errorf("failed to decode geo response: %w", err)
	}

	return ports.GeoResult{
		IsLocal:    body.IsLocal,
		DistanceKm: body.DistanceKm,
	}, nil
}
