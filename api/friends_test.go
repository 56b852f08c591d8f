package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProfile(t *testing.T, env *testEnv, userID string) {
	t.Helper()
	_, err := env.store.GetOrCreateProfile(context.Background(), userID)
	require.NoError(t, err)
}

func sendRequest(t *testing.T, env *testEnv, from, to string) string {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/api/friends/requests", from, map[string]any{"addressee_id": to})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody(t, rec)["id"].(string)
}

func TestFriendRequestLifecycle(t *testing.T) {
	env := newTestEnv(t)
	seedProfile(t, env, "alice")
	seedProfile(t, env, "bob")

	id := sendRequest(t, env, "alice", "bob")

	// Bob sees it pending, Alice sees it sent.
	rec := env.do(t, http.MethodGet, "/api/friends/requests", "bob", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["count"])

	rec = env.do(t, http.MethodGet, "/api/friends/requests/sent", "alice", nil)
	assert.Equal(t, float64(1), decodeBody(t, rec)["count"])

	// Only the addressee can accept.
	rec = env.do(t, http.MethodPost, "/api/friends/requests/"+id+"/accept", "alice", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/friends/requests/"+id+"/accept", "bob", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "accepted", decodeBody(t, rec)["status"])

	// Both sides now list each other.
	for _, user := range []string{"alice", "bob"} {
		rec = env.do(t, http.MethodGet, "/api/friends", user, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), decodeBody(t, rec)["count"])
	}

	// Unfriend from either side removes the relationship.
	rec = env.do(t, http.MethodDelete, "/api/friends/"+id, "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/friends", "bob", nil)
	assert.Equal(t, float64(0), decodeBody(t, rec)["count"])
}

func TestSendFriendRequestErrors(t *testing.T) {
	env := newTestEnv(t)
	seedProfile(t, env, "alice")
	seedProfile(t, env, "bob")

	// Self request.
	rec := env.do(t, http.MethodPost, "/api/friends/requests", "alice", map[string]any{"addressee_id": "alice"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing addressee.
	rec = env.do(t, http.MethodPost, "/api/friends/requests", "alice", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	id := sendRequest(t, env, "alice", "bob")

	// Duplicate while pending, in both directions.
	rec = env.do(t, http.MethodPost, "/api/friends/requests", "alice", map[string]any{"addressee_id": "bob"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Friend request already pending", decodeBody(t, rec)["error"])

	rec = env.do(t, http.MethodPost, "/api/friends/requests", "bob", map[string]any{"addressee_id": "alice"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Once accepted the conflict message changes.
	rec = env.do(t, http.MethodPost, "/api/friends/requests/"+id+"/accept", "bob", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/friends/requests", "alice", map[string]any{"addressee_id": "bob"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Already friends with this user", decodeBody(t, rec)["error"])
}

func TestRejectAndCancelFriendRequest(t *testing.T) {
	env := newTestEnv(t)
	seedProfile(t, env, "alice")
	seedProfile(t, env, "bob")

	// Reject by the addressee.
	id := sendRequest(t, env, "alice", "bob")
	rec := env.do(t, http.MethodDelete, "/api/friends/requests/"+id, "bob", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The pair can try again; cancel by the requester this time.
	id = sendRequest(t, env, "alice", "bob")
	rec = env.do(t, http.MethodDelete, "/api/friends/requests/"+id, "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// A third party cannot remove a request they are not part of.
	id = sendRequest(t, env, "alice", "bob")
	rec = env.do(t, http.MethodDelete, "/api/friends/requests/"+id, "carol", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFriendSearch(t *testing.T) {
	env := newTestEnv(t)
	claimUsername(t, env, "alice-id", "alice")
	seedProfile(t, env, "bob-id")

	rec := env.do(t, http.MethodGet, "/api/friends/search?username=alice", "bob-id", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice-id", decodeBody(t, rec)["id"])

	// Lookup is case-insensitive.
	rec = env.do(t, http.MethodGet, "/api/friends/search?username=ALICE", "bob-id", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Searching for yourself finds nothing.
	rec = env.do(t, http.MethodGet, "/api/friends/search?username=alice", "alice-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Missing query parameter.
	rec = env.do(t, http.MethodGet, "/api/friends/search", "bob-id", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/friends/search?username=ghost", "bob-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
