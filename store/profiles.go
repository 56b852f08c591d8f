package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nomnomnow/backend/models"
)

// GetOrCreateProfile returns the caller's profile, creating an empty one on
// first authenticated access.
func (s *Store) GetOrCreateProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).First(&profile, "id = ?", userID).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile = models.Profile{
		ID:                userID,
		ProfileVisibility: models.VisibilityPublic,
		Currency:          "USD",
	}
	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return &profile, nil
}

func (s *Store) GetProfileByUsername(ctx context.Context, username string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).First(&profile, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile by username: %w", err)
	}

	return &profile, nil
}

// IsUsernameAvailable reports whether username is free to claim. A username
// already held by userID counts as available for them.
func (s *Store) IsUsernameAvailable(ctx context.Context, username, userID string) (bool, error) {
	var existing models.Profile
	err := s.db.WithContext(ctx).Select("id").First(&existing, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return existing.ID == userID, nil
}

type ProfileUpdate struct {
	Username   *string
	Visibility *models.Visibility
	Currency   *string
}

func (s *Store) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.Profile, error) {
	fields := map[string]any{"updated_at": time.Now()}

	if update.Username != nil {
		available, err := s.IsUsernameAvailable(ctx, *update.Username, userID)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, ErrUsernameTaken
		}
		fields["username"] = *update.Username
	}
	if update.Visibility != nil {
		fields["profile_visibility"] = *update.Visibility
	}
	if update.Currency != nil {
		fields["currency"] = *update.Currency
	}

	res := s.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", userID).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}

	return &profile, nil
}
