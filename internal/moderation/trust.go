package moderation

import "github.com/gracechapel/church-backend/internal/models"

const (
	maxTrust      = 30
	trustPerClean = 15
)

// ScoreTrust counts the submitter's clean posts (no reports, still public)
// from the last 30 days. Trust is capped so a deep history cannot offset
// arbitrarily risky content.
func ScoreTrust(history []models.Prayer) int {
	clean := 0
	for _, p := range history {
		if p.ReportCount == 0 && p.Status == models.StatusPublic {
			clean++
		}
	}
	trust := clean * trustPerClean
	if trust > maxTrust {
		trust = maxTrust
	}
	return trust
}
