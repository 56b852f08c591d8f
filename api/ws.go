package api

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
)

type socketMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// handlePickerSocket streams one picker turn over a websocket. The client
// sends a single chat request, receives "chunk" frames as the model
// generates, then a final "message" frame (and a "places" frame when
// discovery returned results).
func (s *Server) handlePickerSocket(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	var req chatRequest
	if err := conn.ReadJSON(&req); err != nil || req.Messages == nil {
		_ = conn.WriteJSON(socketMessage{Type: "error", Data: "Messages array required"})
		return
	}

	resp, turnErr := s.pickerTurn(c.Request.Context(), userID, &req, func(chunk []byte) error {
		return conn.WriteJSON(socketMessage{Type: "chunk", Data: string(chunk)})
	})
	if turnErr != nil {
		msg := "Something went wrong"
		var apiErr *APIError
		if errors.As(turnErr, &apiErr) {
			msg = apiErr.Message
		}
		slog.Error("picker turn failed", "error", turnErr)
		_ = conn.WriteJSON(socketMessage{Type: "error", Data: msg})
		return
	}

	_ = conn.WriteJSON(socketMessage{Type: "message", Data: resp.Message})
	if len(resp.DiscoveredPlaces) > 0 {
		_ = conn.WriteJSON(socketMessage{Type: "places", Data: resp.DiscoveredPlaces})
	}
}
