package moderation

import "github.com/gracechapel/church-backend/internal/models"

const (
	// quarantineMargin is the risk-minus-trust value at which a new
	// submission is flagged for review. Boundary inclusive.
	quarantineMargin = 40

	// HideReportThreshold is the community report count that hides content.
	HideReportThreshold = 3
)

// DecideStatus picks the initial moderation status for a new submission.
// Quarantined prayers stay visible on the wall but are flagged for review;
// this is deliberate soft moderation, not a hard block.
func DecideStatus(risk, trust int) string {
	if risk-trust >= quarantineMargin {
		return models.StatusQuarantine
	}
	return models.StatusPublic
}

// ShouldHide reports whether a prayer must transition to hidden after its
// report count changed. Hidden is terminal within this pipeline.
func ShouldHide(reportCount int, status string) bool {
	return reportCount >= HideReportThreshold && status != models.StatusHidden
}
