package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nomnomnow/backend/models"
	"github.com/nomnomnow/backend/picker"
)

const (
	discoveryFoundSuffix = "\n\nI found a few places open right now - check them out below!"
	discoveryEmptySuffix = "\n\nI couldn't find any open places nearby for that - maybe try something else?"
)

// handleChat runs one picker turn: load the caller's saved restaurants,
// build the direct prompt, ask the model, and honor at most one discovery
// request from the reply. Nothing is persisted; any downstream failure
// surfaces as an opaque error with no partial response.
func (s *Server) handleChat(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Messages array required")
		return
	}
	if req.Messages == nil {
		badRequest(c, "Messages array required")
		return
	}

	resp, err := s.pickerTurn(c.Request.Context(), userID, &req, nil)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// pickerTurn is the transport-independent chat turn, shared by the JSON
// endpoint and the websocket stream. When stream is non-nil, raw model
// chunks are forwarded through it as they arrive.
func (s *Server) pickerTurn(ctx context.Context, userID string, req *chatRequest, stream func(chunk []byte) error) (*chatResponse, error) {
	restaurants, err := s.store.ListRestaurants(ctx, userID)
	if err != nil {
		return nil, Wrap(err, "DB_ERROR", "Failed to fetch restaurants", http.StatusInternalServerError)
	}

	hasLocation := req.HasLocation()
	systemPrompt := picker.BuildDirectPrompt(restaurants, hasLocation, s.now())

	var reply string
	if stream != nil {
		reply, err = s.picker.ReplyStream(ctx, systemPrompt, req.Messages, stream)
	} else {
		reply, err = s.picker.Reply(ctx, systemPrompt, req.Messages)
	}
	if err != nil {
		return nil, Wrap(err, "LLM_ERROR", "Failed to get response", http.StatusInternalServerError)
	}

	message := reply
	var discovered []models.DiscoveredPlace
	discoveryRan := false

	if query, cleaned, found := picker.ExtractDiscoverQuery(reply); found && hasLocation {
		message = cleaned
		discoveryRan = true

		discovered, err = s.places.Discover(ctx, query, *req.Latitude, *req.Longitude, s.cfg.Places.DefaultRadius)
		if err != nil {
			// Discovery is an enrichment; a provider failure never fails
			// the chat turn.
			slog.Error("discovery failed", "query", query, "error", err)
			discovered = nil
		}
	}

	if discoveryRan {
		if len(discovered) > 0 {
			message += discoveryFoundSuffix
		} else {
			message += discoveryEmptySuffix
		}
	}

	resp := &chatResponse{Message: message}
	if len(discovered) > 0 {
		resp.DiscoveredPlaces = discovered
	}

	return resp, nil
}
