package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveRestaurant(t *testing.T, env *testEnv, userID string, body map[string]any) string {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/api/restaurants", userID, body)
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody(t, rec)["id"].(string)
}

func TestSaveAndListRestaurants(t *testing.T) {
	env := newTestEnv(t)

	id := saveRestaurant(t, env, "user-1", map[string]any{
		"name":          "Mamak Corner",
		"address":       "12 Jalan Alor",
		"tags":          []string{"malaysian"},
		"dietary_tags":  []string{"halal"},
		"context_tags":  []string{"late-night"},
		"rating":        5,
		"price_range":   1,
		"currency":      "MYR",
		"what_to_order": "Roti canai",
	})
	assert.NotEmpty(t, id)

	rec := env.do(t, http.MethodGet, "/api/restaurants", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["count"])

	restaurants := body["restaurants"].([]any)
	first := restaurants[0].(map[string]any)
	assert.Equal(t, "Mamak Corner", first["name"])
	assert.Equal(t, "MYR", first["currency"])

	// Another user sees none of it.
	rec = env.do(t, http.MethodGet, "/api/restaurants", "user-2", nil)
	assert.Equal(t, float64(0), decodeBody(t, rec)["count"])
}

func TestSaveRestaurantValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name string
		body map[string]any
		want string
	}{
		{"missing name", map[string]any{"address": "1 Main St"}, "name and address"},
		{"missing address", map[string]any{"name": "Spot"}, "name and address"},
		{"rating too high", map[string]any{"name": "Spot", "address": "1 Main St", "rating": 6}, "between 1 and 5"},
		{"rating too low", map[string]any{"name": "Spot", "address": "1 Main St", "rating": 0}, "between 1 and 5"},
		{"price out of range", map[string]any{"name": "Spot", "address": "1 Main St", "price_range": 5}, "between 1 and 4"},
		{"unknown dietary tag", map[string]any{"name": "Spot", "address": "1 Main St", "dietary_tags": []string{"keto"}}, "unknown dietary tag"},
		{"unknown context tag", map[string]any{"name": "Spot", "address": "1 Main St", "context_tags": []string{"rooftop"}}, "unknown context tag"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/restaurants", "user-1", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeBody(t, rec)["error"], tc.want)
		})
	}
}

func TestUpdateRestaurantEndpoint(t *testing.T) {
	env := newTestEnv(t)
	id := saveRestaurant(t, env, "user-1", map[string]any{"name": "Spot", "address": "1 Main St"})

	rec := env.do(t, http.MethodPatch, "/api/restaurants/"+id, "user-1", map[string]any{
		"notes":  "open late",
		"rating": 4,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "open late", body["notes"])
	assert.Equal(t, float64(4), body["rating"])

	// Someone else's update is a 404, not a silent success.
	rec = env.do(t, http.MethodPatch, "/api/restaurants/"+id, "user-2", map[string]any{"notes": "hijacked"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRestaurantEndpoint(t *testing.T) {
	env := newTestEnv(t)
	id := saveRestaurant(t, env, "user-1", map[string]any{"name": "Spot", "address": "1 Main St"})

	rec := env.do(t, http.MethodDelete, "/api/restaurants/"+id, "user-2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/restaurants/"+id, "user-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/restaurants/"+id, "user-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
