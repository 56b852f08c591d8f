package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nomnomnow/backend/models"
	"github.com/nomnomnow/backend/store"
)

func (s *Server) handleListFriends(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	friendships, err := s.store.Friends(c.Request.Context(), userID)
	if err != nil {
		writeError(c, Wrap(err, "DB_ERROR", "Failed to list friends", http.StatusInternalServerError))
		return
	}
	if friendships == nil {
		friendships = []models.Friendship{}
	}

	c.JSON(http.StatusOK, gin.H{"friends": friendships, "count": len(friendships)})
}

func (s *Server) handleSendFriendRequest(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	var input friendRequestInput
	if err := c.ShouldBindJSON(&input); err != nil || input.AddresseeID == "" {
		writeError(c, ErrInvalidInput)
		return
	}

	friendship, err := s.store.SendFriendRequest(c.Request.Context(), userID, input.AddresseeID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSelfRequest):
			badRequest(c, "Cannot send friend request to yourself")
		case errors.Is(err, store.ErrAlreadyFriends):
			writeError(c, NewAPIError("ALREADY_FRIENDS", "Already friends with this user", http.StatusConflict))
		case errors.Is(err, store.ErrRequestPending):
			writeError(c, NewAPIError("REQUEST_PENDING", "Friend request already pending", http.StatusConflict))
		default:
			writeError(c, Wrap(err, "DB_ERROR", "Failed to send friend request", http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusCreated, friendship)
}

func (s *Server) handlePendingRequests(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	requests, err := s.store.PendingRequests(c.Request.Context(), userID)
	if err != nil {
		writeError(c, Wrap(err, "DB_ERROR", "Failed to list pending requests", http.StatusInternalServerError))
		return
	}
	if requests == nil {
		requests = []models.Friendship{}
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests, "count": len(requests)})
}

func (s *Server) handleSentRequests(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	requests, err := s.store.SentRequests(c.Request.Context(), userID)
	if err != nil {
		writeError(c, Wrap(err, "DB_ERROR", "Failed to list sent requests", http.StatusInternalServerError))
		return
	}
	if requests == nil {
		requests = []models.Friendship{}
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests, "count": len(requests)})
}

func (s *Server) handleAcceptFriendRequest(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	friendship, err := s.store.AcceptFriendRequest(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, ErrNotFound)
			return
		}
		writeError(c, Wrap(err, "DB_ERROR", "Failed to accept friend request", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, friendship)
}

// handleDeleteFriendRequest covers both reject (by the addressee) and
// cancel (by the requester); the store enforces that only a pending row
// involving the caller can be removed.
func (s *Server) handleDeleteFriendRequest(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	if err := s.store.DeleteFriendRequest(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, ErrNotFound)
			return
		}
		writeError(c, Wrap(err, "DB_ERROR", "Failed to delete friend request", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "friend request removed"})
}

func (s *Server) handleUnfriend(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	if err := s.store.Unfriend(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, ErrNotFound)
			return
		}
		writeError(c, Wrap(err, "DB_ERROR", "Failed to unfriend", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unfriended"})
}

func (s *Server) handleFriendSearch(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	username := strings.ToLower(c.Query("username"))
	if username == "" {
		badRequest(c, "username query parameter required")
		return
	}

	profile, err := s.store.SearchByUsername(c.Request.Context(), username, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, ErrNotFound)
			return
		}
		writeError(c, Wrap(err, "DB_ERROR", "Failed to search users", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, profile)
}
