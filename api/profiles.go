package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nomnomnow/backend/models"
	"github.com/nomnomnow/backend/store"
)

func (s *Server) handleGetProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	profile, err := s.store.GetOrCreateProfile(c.Request.Context(), userID)
	if err != nil {
		writeError(c, Wrap(err, "DB_ERROR", "Failed to load profile", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrInvalidInput)
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, err.Error())
		return
	}

	// Profile must exist before an update can land.
	if _, err := s.store.GetOrCreateProfile(c.Request.Context(), userID); err != nil {
		writeError(c, Wrap(err, "DB_ERROR", "Failed to load profile", http.StatusInternalServerError))
		return
	}

	update := store.ProfileUpdate{
		Username: req.Username,
		Currency: req.Currency,
	}
	if req.ProfileVisibility != nil {
		visibility := models.Visibility(*req.ProfileVisibility)
		update.Visibility = &visibility
	}

	profile, err := s.store.UpdateProfile(c.Request.Context(), userID, update)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			writeError(c, NewAPIError("USERNAME_TAKEN", "This username is already taken", http.StatusConflict))
			return
		}
		writeError(c, Wrap(err, "DB_ERROR", "Failed to update profile", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (s *Server) handleUsernameCheck(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	username := c.Query("username")
	if err := models.ValidateUsername(username); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "available": false, "error": err.Error()})
		return
	}

	available, err := s.store.IsUsernameAvailable(c.Request.Context(), username, userID)
	if err != nil {
		writeError(c, Wrap(err, "DB_ERROR", "Failed to check username", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "available": available})
}

// handlePublicProfile serves a shared profile page. Visibility is enforced
// here: private profiles and friends-only profiles viewed by non-friends
// surface as not-found rather than forbidden, so profile existence is not
// leaked.
func (s *Server) handlePublicProfile(c *gin.Context) {
	username := strings.ToLower(c.Param("username"))

	profile, err := s.store.GetProfileByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, ErrNotFound)
			return
		}
		writeError(c, Wrap(err, "DB_ERROR", "Failed to load profile", http.StatusInternalServerError))
		return
	}
	if profile.Username == nil {
		writeError(c, ErrNotFound)
		return
	}

	viewerID, _ := callerID(c)
	isOwner := viewerID == profile.ID

	switch profile.ProfileVisibility {
	case models.VisibilityPrivate:
		if !isOwner {
			writeError(c, ErrNotFound)
			return
		}
	case models.VisibilityFriendsOnly:
		if !isOwner {
			if viewerID == "" {
				writeError(c, ErrNotFound)
				return
			}
			friends, err := s.store.AreFriends(c.Request.Context(), viewerID, profile.ID)
			if err != nil {
				writeError(c, Wrap(err, "DB_ERROR", "Failed to check friendship", http.StatusInternalServerError))
				return
			}
			if !friends {
				writeError(c, ErrNotFound)
				return
			}
		}
	}

	var restaurants []models.SavedRestaurant
	if isOwner {
		restaurants, err = s.store.ListRestaurants(c.Request.Context(), profile.ID)
	} else {
		restaurants, err = s.store.ListPublicRestaurants(c.Request.Context(), profile.ID)
	}
	if err != nil {
		writeError(c, Wrap(err, "DB_ERROR", "Failed to load restaurants", http.StatusInternalServerError))
		return
	}
	if restaurants == nil {
		restaurants = []models.SavedRestaurant{}
	}

	c.JSON(http.StatusOK, publicProfileResponse{
		Username:    *profile.Username,
		Restaurants: restaurants,
		Count:       len(restaurants),
	})
}
