package models

import (
	"fmt"
	"regexp"
	"strings"
)

// Usernames are 3-20 chars of lowercase letters, digits and underscores,
// starting with a letter. Validation runs on the input as given: uppercase
// is rejected, not normalized away.
var usernameRegexp = regexp.MustCompile(`^[a-z][a-z0-9_]{2,19}$`)

func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters")
	}
	if len(username) > 20 {
		return fmt.Errorf("username must be 20 characters or less")
	}
	if !usernameRegexp.MatchString(username) {
		return fmt.Errorf("username can only contain lowercase letters, numbers, and underscores, and must start with a letter")
	}
	if strings.Contains(username, "__") {
		return fmt.Errorf("username cannot contain consecutive underscores")
	}
	return nil
}
