package picker

import (
	"regexp"
	"strings"
)

// The model requests discovery by embedding this token in its reply:
// [DISCOVER: "search terms"]. Only the first occurrence is honored.
var discoverPattern = regexp.MustCompile(`\[DISCOVER:\s*"([^"]+)"\]`)

// ExtractDiscoverQuery scans a model reply for the discovery token. When
// found it returns the search query and the reply with the token removed;
// otherwise it returns the reply unchanged.
func ExtractDiscoverQuery(reply string) (query, cleaned string, found bool) {
	loc := discoverPattern.FindStringSubmatchIndex(reply)
	if loc == nil {
		return "", reply, false
	}

	query = reply[loc[2]:loc[3]]
	cleaned = strings.TrimSpace(reply[:loc[0]] + reply[loc[1]:])

	return query, cleaned, true
}
