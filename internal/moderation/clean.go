package moderation

import (
	"regexp"
	"strings"
)

// Field length caps applied after cleaning.
const (
	MaxNameLen    = 80
	MaxEmailLen   = 120
	MaxRequestLen = 2000

	// MinRequestLen is the shortest acceptable cleaned request text.
	MinRequestLen = 5
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// CleanText strips HTML tags, trims whitespace and truncates to max runes.
func CleanText(s string, max int) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if max > 0 && len(s) > max {
		s = s[:max]
	}
	return s
}
