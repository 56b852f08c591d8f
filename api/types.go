package api

import (
	"fmt"

	"github.com/nomnomnow/backend/models"
	"github.com/nomnomnow/backend/picker"
)

type chatRequest struct {
	Messages  []picker.ChatMessage `json:"messages"`
	Latitude  *float64             `json:"latitude"`
	Longitude *float64             `json:"longitude"`
}

// HasLocation requires both coordinates together.
func (r *chatRequest) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}

type chatResponse struct {
	Message          string                   `json:"message"`
	DiscoveredPlaces []models.DiscoveredPlace `json:"discoveredPlaces,omitempty"`
}

type discoverRequest struct {
	Query     string   `json:"query"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Radius    int      `json:"radius"`
}

func (r *discoverRequest) Validate() error {
	if r.Query == "" || r.Latitude == nil || r.Longitude == nil {
		return fmt.Errorf("query and location required")
	}
	return nil
}

type saveRestaurantRequest struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	PlaceID     string   `json:"place_id"`
	Tags        []string `json:"tags"`
	DietaryTags []string `json:"dietary_tags"`
	ContextTags []string `json:"context_tags"`
	Notes       string   `json:"notes"`
	WhatToOrder string   `json:"what_to_order"`
	Rating      *int     `json:"rating"`
	PriceRange  *int     `json:"price_range"`
	Currency    string   `json:"currency"`
	IsPublic    bool     `json:"is_public"`
}

func (r *saveRestaurantRequest) Validate() error {
	if r.Name == "" || r.Address == "" {
		return fmt.Errorf("restaurant name and address are required")
	}
	if err := validateRating(r.Rating); err != nil {
		return err
	}
	if err := validatePriceRange(r.PriceRange); err != nil {
		return err
	}
	if err := validateTags(r.DietaryTags, r.ContextTags); err != nil {
		return err
	}
	return nil
}

func (r *saveRestaurantRequest) ToModel(userID string) *models.SavedRestaurant {
	return &models.SavedRestaurant{
		UserID:      userID,
		Name:        r.Name,
		Address:     r.Address,
		PlaceID:     r.PlaceID,
		Tags:        r.Tags,
		DietaryTags: r.DietaryTags,
		ContextTags: r.ContextTags,
		Notes:       r.Notes,
		WhatToOrder: r.WhatToOrder,
		Rating:      r.Rating,
		PriceRange:  r.PriceRange,
		Currency:    r.Currency,
		IsPublic:    r.IsPublic,
	}
}

type updateRestaurantRequest struct {
	Tags        *[]string `json:"tags"`
	DietaryTags *[]string `json:"dietary_tags"`
	ContextTags *[]string `json:"context_tags"`
	Notes       *string   `json:"notes"`
	WhatToOrder *string   `json:"what_to_order"`
	Rating      *int      `json:"rating"`
	PriceRange  *int      `json:"price_range"`
	Currency    *string   `json:"currency"`
	IsPublic    *bool     `json:"is_public"`
}

func (r *updateRestaurantRequest) Validate() error {
	if err := validateRating(r.Rating); err != nil {
		return err
	}
	if err := validatePriceRange(r.PriceRange); err != nil {
		return err
	}
	var dietary, context []string
	if r.DietaryTags != nil {
		dietary = *r.DietaryTags
	}
	if r.ContextTags != nil {
		context = *r.ContextTags
	}
	return validateTags(dietary, context)
}

func validateRating(rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}

func validatePriceRange(price *int) error {
	if price != nil && (*price < 1 || *price > 4) {
		return fmt.Errorf("price range must be between 1 and 4")
	}
	return nil
}

func validateTags(dietary, context []string) error {
	for _, tag := range dietary {
		if !models.ValidDietaryTag(tag) {
			return fmt.Errorf("unknown dietary tag: %s", tag)
		}
	}
	for _, tag := range context {
		if !models.ValidContextTag(tag) {
			return fmt.Errorf("unknown context tag: %s", tag)
		}
	}
	return nil
}

type updateProfileRequest struct {
	Username          *string `json:"username"`
	ProfileVisibility *string `json:"profile_visibility"`
	Currency          *string `json:"currency"`
}

func (r *updateProfileRequest) Validate() error {
	if r.Username != nil {
		if err := models.ValidateUsername(*r.Username); err != nil {
			return err
		}
	}
	if r.ProfileVisibility != nil && !models.Visibility(*r.ProfileVisibility).Valid() {
		return fmt.Errorf("profile visibility must be public, friends_only or private")
	}
	if r.Currency != nil && *r.Currency == "" {
		return fmt.Errorf("currency cannot be empty")
	}
	return nil
}

type friendRequestInput struct {
	AddresseeID string `json:"addressee_id"`
}

type publicProfileResponse struct {
	Username    string                   `json:"username"`
	Restaurants []models.SavedRestaurant `json:"restaurants"`
	Count       int                      `json:"count"`
}
