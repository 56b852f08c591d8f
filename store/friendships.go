package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nomnomnow/backend/models"
)

// SendFriendRequest creates a pending request from requester to addressee.
// At most one friendship row exists per unordered pair, checked in either
// direction before insert.
func (s *Store) SendFriendRequest(ctx context.Context, requesterID, addresseeID string) (*models.Friendship, error) {
	if requesterID == addresseeID {
		return nil, ErrSelfRequest
	}

	var existing models.Friendship
	err := s.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			requesterID, addresseeID, addresseeID, requesterID).
		First(&existing).Error
	if err == nil {
		if existing.Status == models.FriendshipAccepted {
			return nil, ErrAlreadyFriends
		}
		return nil, ErrRequestPending
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing friendship: %w", err)
	}

	friendship := models.Friendship{
		ID:          uuid.New().String(),
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      models.FriendshipPending,
	}
	if err := s.db.WithContext(ctx).Create(&friendship).Error; err != nil {
		return nil, fmt.Errorf("failed to create friend request: %w", err)
	}

	return &friendship, nil
}

// AcceptFriendRequest transitions a pending request to accepted. Only the
// addressee of the pending row may accept it.
func (s *Store) AcceptFriendRequest(ctx context.Context, friendshipID, userID string) (*models.Friendship, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("id = ? AND addressee_id = ? AND status = ?", friendshipID, userID, models.FriendshipPending).
		Updates(map[string]any{"status": models.FriendshipAccepted, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to accept friend request: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var friendship models.Friendship
	if err := s.db.WithContext(ctx).First(&friendship, "id = ?", friendshipID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload friendship: %w", err)
	}

	return &friendship, nil
}

// DeleteFriendRequest removes a pending row: a reject by the addressee or a
// cancel by the requester. Rejected is modeled as deletion, not a kept state.
func (s *Store) DeleteFriendRequest(ctx context.Context, friendshipID, userID string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND status = ? AND (requester_id = ? OR addressee_id = ?)",
			friendshipID, models.FriendshipPending, userID, userID).
		Delete(&models.Friendship{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete friend request: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Unfriend deletes an accepted friendship from either side.
func (s *Store) Unfriend(ctx context.Context, friendshipID, userID string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND status = ? AND (requester_id = ? OR addressee_id = ?)",
			friendshipID, models.FriendshipAccepted, userID, userID).
		Delete(&models.Friendship{})
	if res.Error != nil {
		return fmt.Errorf("failed to unfriend: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// AreFriends is the symmetric predicate: an accepted row exists in either
// direction.
func (s *Store) AreFriends(ctx context.Context, userID1, userID2 string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("status = ?", models.FriendshipAccepted).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userID1, userID2, userID2, userID1).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check friendship: %w", err)
	}

	return count > 0, nil
}

func (s *Store) Friends(ctx context.Context, userID string) ([]models.Friendship, error) {
	var friendships []models.Friendship
	err := s.db.WithContext(ctx).
		Preload("Requester").
		Preload("Addressee").
		Where("status = ?", models.FriendshipAccepted).
		Where("requester_id = ? OR addressee_id = ?", userID, userID).
		Find(&friendships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}

	return friendships, nil
}

// PendingRequests lists requests received by userID, newest first.
func (s *Store) PendingRequests(ctx context.Context, userID string) ([]models.Friendship, error) {
	var friendships []models.Friendship
	err := s.db.WithContext(ctx).
		Preload("Requester").
		Where("addressee_id = ? AND status = ?", userID, models.FriendshipPending).
		Order("created_at DESC").
		Find(&friendships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	return friendships, nil
}

// SentRequests lists still-pending requests sent by userID, newest first.
func (s *Store) SentRequests(ctx context.Context, userID string) ([]models.Friendship, error) {
	var friendships []models.Friendship
	err := s.db.WithContext(ctx).
		Preload("Addressee").
		Where("requester_id = ? AND status = ?", userID, models.FriendshipPending).
		Order("created_at DESC").
		Find(&friendships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sent requests: %w", err)
	}

	return friendships, nil
}

// SearchByUsername finds a profile to send a request to. Never returns the
// caller's own profile.
func (s *Store) SearchByUsername(ctx context.Context, username, selfID string) (*models.Profile, error) {
	profile, err := s.GetProfileByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if profile.ID == selfID {
		return nil, ErrNotFound
	}

	return profile, nil
}
