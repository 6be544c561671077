package dto

// SubmitPrayerRequest is the public submission payload. Field names match
// the site's form client. honeypot and startedAt feed the bot defenses.
type SubmitPrayerRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	PrayerRequest  string `json:"prayer_request"`
	IsPublic       bool   `json:"is_public"`
	ShowName       bool   `json:"show_name,omitempty"`
	MemberID       string `json:"member_id,omitempty"`
	TurnstileToken string `json:"turnstileToken"`
	Honeypot       string `json:"honeypot,omitempty"`
	StartedAt      int64  `json:"startedAt,omitempty"`
}

type ReportPrayerRequest struct {
	PrayerID       string `json:"prayer_id"`
	TurnstileToken string `json:"turnstileToken"`
}
