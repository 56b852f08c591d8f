// Package places wraps the Google Places text-search API for discovering
// currently-open restaurants near a point. Discovery is an enrichment: a
// provider-side error degrades to an empty result rather than failing the
// caller's request.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/nomnomnow/backend/models"
)

const (
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/place/textsearch/json"
	DefaultRadius  = 5000
	maxResults     = 5
)

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type searchResponse struct {
	Results []struct {
		PlaceID          string   `json:"place_id"`
		Name             string   `json:"name"`
		FormattedAddress string   `json:"formatted_address"`
		Rating           *float64 `json:"rating"`
		PriceLevel       *int     `json:"price_level"`
		OpeningHours     *struct {
			OpenNow *bool `json:"open_now"`
		} `json:"opening_hours"`
	} `json:"results"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// Discover runs a text search for "<query> restaurant" around the given
// point, keeps only venues the provider flags open right now, and returns at
// most 5 in the provider's relevance order. A non-OK provider status yields
// an empty list, not an error; errors are reserved for transport and decode
// failures.
func (c *Client) Discover(ctx context.Context, query string, lat, lng float64, radius int) ([]models.DiscoveredPlace, error) {
	if radius <= 0 {
		radius = DefaultRadius
	}

	params := url.Values{}
	params.Set("query", query+" restaurant")
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", fmt.Sprintf("%d", radius))
	params.Set("type", "restaurant")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	if result.Status != "OK" && result.Status != "ZERO_RESULTS" {
		slog.Error("places provider error", "status", result.Status, "message", result.ErrorMessage)
		return nil, nil
	}

	var places []models.DiscoveredPlace
	for _, r := range result.Results {
		if r.OpeningHours == nil || r.OpeningHours.OpenNow == nil || !*r.OpeningHours.OpenNow {
			continue
		}
		places = append(places, models.DiscoveredPlace{
			Name:       r.Name,
			Address:    r.FormattedAddress,
			PlaceID:    r.PlaceID,
			Rating:     r.Rating,
			PriceLevel: r.PriceLevel,
		})
		if len(places) == maxResults {
			break
		}
	}

	return places, nil
}
