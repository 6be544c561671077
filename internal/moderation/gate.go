package moderation

import (
	"strings"
	"time"
)

// Pre-persistence gate parameters.
const (
	// MinFillTime is the shortest believable time between the form being
	// opened and submitted.
	MinFillTime = 1500 * time.Millisecond

	SubmissionLimit  = 3
	SubmissionWindow = 10 * time.Minute

	ReportLimit  = 5
	ReportWindow = 60 * time.Minute
)

// HoneypotTripped reports whether the hidden form field was filled in.
// Legitimate clients never populate it.
func HoneypotTripped(value string) bool {
	return strings.TrimSpace(value) != ""
}

// TooFast reports whether the client submitted suspiciously soon after the
// form was opened. startedAt is a client-side unix-millis timestamp; zero
// means the client did not report one, which is tolerated.
func TooFast(startedAt int64, now time.Time) bool {
	if startedAt <= 0 {
		return false
	}
	return now.UnixMilli()-startedAt < MinFillTime.Milliseconds()
}
