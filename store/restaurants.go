package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/nomnomnow/backend/models"
)

func (s *Store) SaveRestaurant(ctx context.Context, restaurant *models.SavedRestaurant) error {
	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}
	if restaurant.Currency == "" {
		restaurant.Currency = "USD"
	}
	if restaurant.Tags == nil {
		restaurant.Tags = pq.StringArray{}
	}
	if restaurant.DietaryTags == nil {
		restaurant.DietaryTags = pq.StringArray{}
	}
	if restaurant.ContextTags == nil {
		restaurant.ContextTags = pq.StringArray{}
	}

	if err := s.db.WithContext(ctx).Create(restaurant).Error; err != nil {
		return fmt.Errorf("failed to save restaurant: %w", err)
	}

	return nil
}

// ListRestaurants returns the owner's saved restaurants, newest first.
func (s *Store) ListRestaurants(ctx context.Context, userID string) ([]models.SavedRestaurant, error) {
	var restaurants []models.SavedRestaurant
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&restaurants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	return restaurants, nil
}

// ListPublicRestaurants returns only the rows the owner marked public,
// newest first. Used for shared profile pages.
func (s *Store) ListPublicRestaurants(ctx context.Context, userID string) ([]models.SavedRestaurant, error) {
	var restaurants []models.SavedRestaurant
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_public = ?", userID, true).
		Order("created_at DESC").
		Find(&restaurants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list public restaurants: %w", err)
	}

	return restaurants, nil
}

type RestaurantUpdate struct {
	Tags        *[]string
	DietaryTags *[]string
	ContextTags *[]string
	Notes       *string
	WhatToOrder *string
	Rating      *int
	ClearRating bool
	PriceRange  *int
	ClearPrice  bool
	Currency    *string
	IsPublic    *bool
}

// UpdateRestaurant mutates an owned row. Queries always carry the caller's
// id alongside the row id, so touching another user's row surfaces as
// ErrNotFound rather than ever succeeding.
func (s *Store) UpdateRestaurant(ctx context.Context, id, userID string, update RestaurantUpdate) (*models.SavedRestaurant, error) {
	fields := map[string]any{}

	if update.Tags != nil {
		fields["tags"] = pq.StringArray(*update.Tags)
	}
	if update.DietaryTags != nil {
		fields["dietary_tags"] = pq.StringArray(*update.DietaryTags)
	}
	if update.ContextTags != nil {
		fields["context_tags"] = pq.StringArray(*update.ContextTags)
	}
	if update.Notes != nil {
		fields["notes"] = *update.Notes
	}
	if update.WhatToOrder != nil {
		fields["what_to_order"] = *update.WhatToOrder
	}
	if update.Rating != nil {
		fields["rating"] = *update.Rating
	} else if update.ClearRating {
		fields["rating"] = nil
	}
	if update.PriceRange != nil {
		fields["price_range"] = *update.PriceRange
	} else if update.ClearPrice {
		fields["price_range"] = nil
	}
	if update.Currency != nil {
		fields["currency"] = *update.Currency
	}
	if update.IsPublic != nil {
		fields["is_public"] = *update.IsPublic
	}

	if len(fields) > 0 {
		res := s.db.WithContext(ctx).
			Model(&models.SavedRestaurant{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(fields)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update restaurant: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	var restaurant models.SavedRestaurant
	err := s.db.WithContext(ctx).
		First(&restaurant, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, ErrNotFound
	}

	return &restaurant, nil
}

func (s *Store) DeleteRestaurant(ctx context.Context, id, userID string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.SavedRestaurant{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete restaurant: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
