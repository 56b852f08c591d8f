package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type providerResult struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	FormattedAddress string        `json:"formatted_address"`
	Rating           *float64      `json:"rating,omitempty"`
	PriceLevel       *int          `json:"price_level,omitempty"`
	OpeningHours     *openingHours `json:"opening_hours,omitempty"`
}

type openingHours struct {
	OpenNow *bool `json:"open_now"`
}

func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

func placeResult(i int, open *bool) providerResult {
	r := providerResult{
		PlaceID:          fmt.Sprintf("place-%d", i),
		Name:             fmt.Sprintf("Restaurant %d", i),
		FormattedAddress: fmt.Sprintf("%d Food St", i),
		Rating:           floatPtr(4.2),
	}
	if open != nil {
		r.OpeningHours = &openingHours{OpenNow: open}
	}
	return r
}

func newTestClient(t *testing.T, status string, results []providerResult) (*Client, *url.Values) {
	t.Helper()

	var captured url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  status,
			"results": results,
		})
	}))
	t.Cleanup(server.Close)

	return NewClient("test-key", server.URL), &captured
}

func TestDiscoverFiltersClosedAndCapsAtFive(t *testing.T) {
	var results []providerResult
	for i := 0; i < 10; i++ {
		// Results 2 and 5 are closed, 7 has no hours at all.
		switch i {
		case 2, 5:
			results = append(results, placeResult(i, boolPtr(false)))
		case 7:
			results = append(results, placeResult(i, nil))
		default:
			results = append(results, placeResult(i, boolPtr(true)))
		}
	}

	client, _ := newTestClient(t, "OK", results)

	places, err := client.Discover(context.Background(), "ramen", 3.14, 101.68, 5000)
	require.NoError(t, err)
	require.Len(t, places, 5)

	// First five open results, provider order preserved.
	wantIDs := []string{"place-0", "place-1", "place-3", "place-4", "place-6"}
	for i, p := range places {
		assert.Equal(t, wantIDs[i], p.PlaceID)
	}

	assert.Equal(t, "Restaurant 0", places[0].Name)
	assert.Equal(t, "0 Food St", places[0].Address)
	require.NotNil(t, places[0].Rating)
	assert.Equal(t, 4.2, *places[0].Rating)
}

func TestDiscoverRequestParams(t *testing.T) {
	client, captured := newTestClient(t, "OK", nil)

	_, err := client.Discover(context.Background(), "nasi lemak", 3.5, 101.25, 2000)
	require.NoError(t, err)

	params := *captured
	assert.Equal(t, "nasi lemak restaurant", params.Get("query"))
	assert.Equal(t, "3.500000,101.250000", params.Get("location"))
	assert.Equal(t, "2000", params.Get("radius"))
	assert.Equal(t, "restaurant", params.Get("type"))
	assert.Equal(t, "test-key", params.Get("key"))
}

func TestDiscoverDefaultRadius(t *testing.T) {
	client, captured := newTestClient(t, "OK", nil)

	_, err := client.Discover(context.Background(), "pizza", 1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, "5000", (*captured).Get("radius"))
}

func TestDiscoverProviderErrorIsSoft(t *testing.T) {
	client, _ := newTestClient(t, "REQUEST_DENIED", []providerResult{placeResult(1, boolPtr(true))})

	places, err := client.Discover(context.Background(), "sushi", 1, 2, 5000)
	assert.NoError(t, err)
	assert.Empty(t, places)
}

func TestDiscoverZeroResults(t *testing.T) {
	client, _ := newTestClient(t, "ZERO_RESULTS", nil)

	places, err := client.Discover(context.Background(), "durian pizza", 1, 2, 5000)
	assert.NoError(t, err)
	assert.Empty(t, places)
}

func TestDiscoverTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient("test-key", server.URL)
	_, err := client.Discover(context.Background(), "ramen", 1, 2, 5000)
	assert.ErrorContains(t, err, "places request failed")
}

func TestDiscoverDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	t.Cleanup(server.Close)

	client := NewClient("test-key", server.URL)
	_, err := client.Discover(context.Background(), "ramen", 1, 2, 5000)
	assert.ErrorContains(t, err, "failed to decode places response")
}

func TestConfigured(t *testing.T) {
	assert.True(t, NewClient("key", "").Configured())
	assert.False(t, NewClient("", "").Configured())
}
