package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nomnomnow/backend/models"
)

// handleDiscover is the standalone discovery endpoint. Unlike the chat
// flow, a provider transport failure here is a hard 500: the caller asked
// for discovery explicitly.
func (s *Server) handleDiscover(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	var req discoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Query and location required")
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, "Query and location required")
		return
	}

	if !s.places.Configured() {
		writeError(c, NewAPIError("PLACES_UNCONFIGURED", "Places API key not configured", http.StatusInternalServerError))
		return
	}

	radius := req.Radius
	if radius <= 0 {
		radius = s.cfg.Places.DefaultRadius
	}

	found, err := s.places.Discover(c.Request.Context(), req.Query, *req.Latitude, *req.Longitude, radius)
	if err != nil {
		writeError(c, Wrap(err, "PLACES_ERROR", "Failed to search restaurants", http.StatusInternalServerError))
		return
	}
	if found == nil {
		found = []models.DiscoveredPlace{}
	}

	c.JSON(http.StatusOK, gin.H{"places": found})
}
