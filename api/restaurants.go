package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nomnomnow/backend/models"
	"github.com/nomnomnow/backend/store"
)

func (s *Server) handleListRestaurants(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	restaurants, err := s.store.ListRestaurants(c.Request.Context(), userID)
	if err != nil {
		writeError(c, Wrap(err, "DB_ERROR", "Failed to fetch restaurants", http.StatusInternalServerError))
		return
	}
	if restaurants == nil {
		restaurants = []models.SavedRestaurant{}
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants, "count": len(restaurants)})
}

func (s *Server) handleSaveRestaurant(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	var req saveRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrInvalidInput)
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, err.Error())
		return
	}

	restaurant := req.ToModel(userID)
	if err := s.store.SaveRestaurant(c.Request.Context(), restaurant); err != nil {
		writeError(c, Wrap(err, "DB_ERROR", "Failed to save restaurant", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

func (s *Server) handleUpdateRestaurant(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	var req updateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrInvalidInput)
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, err.Error())
		return
	}

	update := store.RestaurantUpdate{
		Tags:        req.Tags,
		DietaryTags: req.DietaryTags,
		ContextTags: req.ContextTags,
		Notes:       req.Notes,
		WhatToOrder: req.WhatToOrder,
		Rating:      req.Rating,
		PriceRange:  req.PriceRange,
		Currency:    req.Currency,
		IsPublic:    req.IsPublic,
	}

	restaurant, err := s.store.UpdateRestaurant(c.Request.Context(), c.Param("id"), userID, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, ErrNotFound)
			return
		}
		writeError(c, Wrap(err, "DB_ERROR", "Failed to update restaurant", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

func (s *Server) handleDeleteRestaurant(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		writeError(c, ErrUnauthorized)
		return
	}

	err := s.store.DeleteRestaurant(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, ErrNotFound)
			return
		}
		writeError(c, Wrap(err, "DB_ERROR", "Failed to delete restaurant", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "restaurant deleted"})
}
