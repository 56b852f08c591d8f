package models

import (
	"time"

	"github.com/lib/pq"
)

type Visibility string

const (
	VisibilityPublic      Visibility = "public"
	VisibilityFriendsOnly Visibility = "friends_only"
	VisibilityPrivate     Visibility = "private"
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityFriendsOnly, VisibilityPrivate:
		return true
	}
	return false
}

// DietaryTags is the fixed set of dietary tags a restaurant can carry.
var DietaryTags = []string{
	"halal",
	"vegetarian",
	"vegan",
	"gluten-free",
	"dairy-free",
	"nut-free",
}

// ContextTags describe when or how a restaurant is best used.
var ContextTags = []string{
	"date-night",
	"solo-friendly",
	"group-friendly",
	"special-occasion",
	"quick-lunch",
	"late-night",
	"family-friendly",
	"work-meeting",
	"casual-hangout",
}

var DietaryLabels = map[string]string{
	"halal":       "Halal",
	"vegetarian":  "Vegetarian",
	"vegan":       "Vegan",
	"gluten-free": "Gluten-Free",
	"dairy-free":  "Dairy-Free",
	"nut-free":    "Nut-Free",
}

var ContextLabels = map[string]string{
	"date-night":       "Date Night",
	"solo-friendly":    "Solo Friendly",
	"group-friendly":   "Group Friendly",
	"special-occasion": "Special Occasion",
	"quick-lunch":      "Quick Lunch",
	"late-night":       "Late Night",
	"family-friendly":  "Family Friendly",
	"work-meeting":     "Work Meeting",
	"casual-hangout":   "Casual Hangout",
}

func ValidDietaryTag(tag string) bool {
	_, ok := DietaryLabels[tag]
	return ok
}

func ValidContextTag(tag string) bool {
	_, ok := ContextLabels[tag]
	return ok
}

// Profile is the per-user record, one-to-one with an auth identity.
// Auto-created on first authenticated access; Username stays nil until
// the user claims one.
type Profile struct {
	ID                string     `gorm:"primaryKey" json:"id"`
	Username          *string    `gorm:"uniqueIndex" json:"username"`
	ProfileVisibility Visibility `gorm:"default:public" json:"profile_visibility"`
	Currency          string     `gorm:"default:USD" json:"currency"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (p *Profile) TableName() string {
	return "profiles"
}

type SavedRestaurant struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	UserID      string         `gorm:"index" json:"user_id"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	PlaceID     string         `json:"place_id"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	DietaryTags pq.StringArray `gorm:"type:text[]" json:"dietary_tags"`
	ContextTags pq.StringArray `gorm:"type:text[]" json:"context_tags"`
	Notes       string         `json:"notes"`
	WhatToOrder string         `json:"what_to_order"`
	Rating      *int           `json:"rating"`
	PriceRange  *int           `json:"price_range"`
	Currency    string         `json:"currency"`
	IsPublic    bool           `json:"is_public"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (r *SavedRestaurant) TableName() string {
	return "restaurants"
}

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
)

// Friendship is a directed request from requester to addressee. Rejection,
// cancellation and unfriending delete the row rather than keeping a
// terminal status.
type Friendship struct {
	ID          string           `gorm:"primaryKey" json:"id"`
	RequesterID string           `gorm:"index" json:"requester_id"`
	AddresseeID string           `gorm:"index" json:"addressee_id"`
	Status      FriendshipStatus `gorm:"default:pending" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	Requester *Profile `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Addressee *Profile `gorm:"foreignKey:AddresseeID" json:"addressee,omitempty"`
}

func (f *Friendship) TableName() string {
	return "friendships"
}

// DiscoveredPlace is produced per-request by the places client and never
// persisted. Pointer fields stay absent in JSON when the provider omits them.
type DiscoveredPlace struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	PlaceID    string   `json:"placeId"`
	Rating     *float64 `json:"rating,omitempty"`
	PriceLevel *int     `json:"priceLevel,omitempty"`
}
