package picker

import (
	"fmt"
	"strings"
	"time"

	"github.com/nomnomnow/backend/currency"
	"github.com/nomnomnow/backend/models"
)

// BuildConversationalPrompt renders the multi-turn picker system prompt.
func BuildConversationalPrompt(restaurants []models.SavedRestaurant) string {
	return fmt.Sprintf(ConversationalPromptTemplate, renderRestaurants(restaurants))
}

// BuildDirectPrompt renders the single-shot picker system prompt. The
// discovery instructions are included only when the caller shared their
// location; now is injected by the caller so output is reproducible.
func BuildDirectPrompt(restaurants []models.SavedRestaurant, hasLocation bool, now time.Time) string {
	list := renderRestaurants(restaurants)
	clock := now.Format("3:04 PM")

	if hasLocation {
		return fmt.Sprintf(DirectPromptWithDiscoveryTemplate, list, clock)
	}
	return fmt.Sprintf(DirectPromptTemplate, list, clock)
}

// renderRestaurants formats each saved restaurant as a bullet with
// conditionally included lines. A field that is empty or absent emits no
// line at all.
func renderRestaurants(restaurants []models.SavedRestaurant) string {
	if len(restaurants) == 0 {
		return "No restaurants saved yet."
	}

	var b strings.Builder
	for i, r := range restaurants {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "- %s (%s)", r.Name, r.Address)

		if len(r.Tags) > 0 {
			b.WriteString("\n  Tags: " + strings.Join(r.Tags, ", "))
		}
		if r.PriceRange != nil {
			if label := currency.PriceLabel(*r.PriceRange, r.Currency); label != "" {
				b.WriteString("\n  Price: " + label)
			}
		}
		if r.Rating != nil {
			fmt.Fprintf(&b, "\n  User rating: %d/5", *r.Rating)
		}
		if len(r.DietaryTags) > 0 {
			b.WriteString("\n  Dietary: " + joinLabels(r.DietaryTags, models.DietaryLabels))
		}
		if len(r.ContextTags) > 0 {
			b.WriteString("\n  Good for: " + joinLabels(r.ContextTags, models.ContextLabels))
		}
		if r.WhatToOrder != "" {
			b.WriteString("\n  What to order: " + r.WhatToOrder)
		}
		if r.Notes != "" {
			b.WriteString("\n  Notes: " + r.Notes)
		}
	}

	return b.String()
}

func joinLabels(tags []string, labels map[string]string) string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		if label, ok := labels[tag]; ok {
			out[i] = label
		} else {
			out[i] = tag
		}
	}
	return strings.Join(out, ", ")
}
