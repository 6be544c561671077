package moderation

import (
	"regexp"
	"strings"
)

// riskRule is one content signal. Rules are additive and independent, so a
// submission can accumulate weight from several of them.
type riskRule struct {
	name   string
	weight int
	match  func(text string) bool
}

var (
	longLetterRun  = regexp.MustCompile(`(?i)[a-z]{10,}`)
	consonantRun   = regexp.MustCompile(`(?i)[bcdfghjklmnpqrstvwxyz]{6,}`)
	linkPattern    = regexp.MustCompile(`(?i)https?://`)
	anchorPattern  = regexp.MustCompile(`(?i)<\s*a[\s>/]`)
	disallowedChar = regexp.MustCompile(`[^a-zA-Z0-9 .,'!\-\n]`)
)

var contentRules = []riskRule{
	{
		name:   "keyboard_mashing",
		weight: 25,
		match: func(t string) bool {
			return longLetterRun.MatchString(t) && consonantRun.MatchString(t)
		},
	},
	{
		name:   "link_spam",
		weight: 25,
		match: func(t string) bool {
			return len(linkPattern.FindAllStringIndex(t, -1)) > 1 || anchorPattern.MatchString(t)
		},
	},
	{
		name:   "too_short",
		weight: 10,
		match: func(t string) bool {
			return len(t) < 20
		},
	},
	{
		name:   "unusual_characters",
		weight: 10,
		match:  disallowedChar.MatchString,
	},
}

// nearDuplicateWeight is added once when any recent text from the same
// submitter leads into the new text (first 50 chars as a substring).
const nearDuplicateWeight = 20

const nearDuplicatePrefixLen = 50

// ScoreRisk computes the additive risk score for a cleaned request text.
// recentTexts holds the same submitter's request texts from the last 24h.
func ScoreRisk(text string, recentTexts []string) int {
	score := 0
	for _, rule := range contentRules {
		if rule.match(text) {
			score += rule.weight
		}
	}
	for _, prev := range recentTexts {
		prefix := prev
		if len(prefix) > nearDuplicatePrefixLen {
			prefix = prefix[:nearDuplicatePrefixLen]
		}
		if prefix != "" && strings.Contains(text, prefix) {
			score += nearDuplicateWeight
			break
		}
	}
	return score
}
