package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gracechapel/church-backend/internal/captcha"
	"github.com/gracechapel/church-backend/internal/identity"
	"github.com/gracechapel/church-backend/internal/moderation"
	"github.com/gracechapel/church-backend/internal/models"
	"github.com/gracechapel/church-backend/internal/notify"
)

var (
	// ErrBotSuspected covers honeypot, CAPTCHA and fill-time rejections.
	// The message stays generic so automated callers cannot tell which
	// check tripped.
	ErrBotSuspected = errors.New("submission could not be accepted")

	ErrTextTooShort      = errors.New("prayer request must be at least 5 characters")
	ErrRateLimited       = errors.New("too many submissions, please try again later")
	ErrPrayerNotFound    = errors.New("prayer not found")
	ErrDuplicateReport   = errors.New("already reported")
	ErrReportRateLimited = errors.New("too many reports, please try again later")
)

// SubmitPrayerInput carries one public submission plus its request metadata.
type SubmitPrayerInput struct {
	Name        string
	Email       string
	RequestText string
	IsPublic    bool
	ShowName    bool
	MemberID    *uuid.UUID

	CaptchaToken string
	Honeypot     string
	StartedAt    int64

	RemoteIP  string
	UserAgent string
}

// PrayerService runs the submission pipeline: abuse gate, scoring, placement
// decision, persistence and the best-effort moderation alert.
type PrayerService struct {
	store    PrayerStore
	hasher   *identity.Hasher
	verifier captcha.Verifier
	notifier notify.Notifier
	now      func() time.Time
}

func NewPrayerService(store PrayerStore, hasher *identity.Hasher, verifier captcha.Verifier, notifier notify.Notifier) *PrayerService {
	return &PrayerService{
		store:    store,
		hasher:   hasher,
		verifier: verifier,
		notifier: notifier,
		now:      time.Now,
	}
}

// Submit accepts a prayer request or rejects it with one of the sentinel
// errors above. Gate checks run in order and short-circuit: nothing is
// persisted on rejection.
func (s *PrayerService) Submit(in *SubmitPrayerInput) (*models.Prayer, error) {
	if moderation.HoneypotTripped(in.Honeypot) {
		slog.Warn("honeypot tripped", "user_agent", in.UserAgent)
		return nil, ErrBotSuspected
	}

	if err := s.verifier.Verify(in.CaptchaToken, in.RemoteIP); err != nil {
		slog.Warn("captcha rejected on submission", "error", err)
		return nil, ErrBotSuspected
	}

	now := s.now()
	if moderation.TooFast(in.StartedAt, now) {
		return nil, ErrBotSuspected
	}

	submitterKey := s.hasher.Hash(in.RemoteIP)

	recent, err := s.store.CountSubmissionsSince(submitterKey, now.Add(-moderation.SubmissionWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent submissions: %w", err)
	}
	if recent >= moderation.SubmissionLimit {
		return nil, ErrRateLimited
	}

	name := moderation.CleanText(in.Name, moderation.MaxNameLen)
	email := moderation.CleanText(in.Email, moderation.MaxEmailLen)
	text := moderation.CleanText(in.RequestText, moderation.MaxRequestLen)
	if len(text) < moderation.MinRequestLen {
		return nil, ErrTextTooShort
	}

	dayHistory, err := s.store.SubmissionsSince(submitterKey, now.Add(-24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to load 24h history: %w", err)
	}
	monthHistory, err := s.store.SubmissionsSince(submitterKey, now.Add(-30*24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to load 30d history: %w", err)
	}

	risk := moderation.ScoreRisk(text, requestTexts(dayHistory))
	trust := moderation.ScoreTrust(monthHistory)
	status := moderation.DecideStatus(risk, trust)

	prayer := &models.Prayer{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		RequestText:  text,
		IsPublic:     in.IsPublic,
		ShowName:     in.ShowName,
		MemberID:     in.MemberID,
		Status:       status,
		SubmitterKey: submitterKey,
		UserAgent:    in.UserAgent,
		RiskScore:    risk,
		TrustLevel:   trust,
	}

	if err := s.store.CreatePrayer(prayer); err != nil {
		return nil, fmt.Errorf("failed to create prayer: %w", err)
	}

	if status == models.StatusQuarantine {
		slog.Info("prayer quarantined", "prayer_id", prayer.ID, "risk", risk, "trust", trust)
	}

	// Best effort only. The notifier logs its own failures.
	s.notifier.SubmissionAlert(prayer)

	return prayer, nil
}

// Wall returns a page of the public prayer wall, newest first. Quarantined
// prayers stay listed; only hidden ones drop off.
func (s *PrayerService) Wall(page, limit int) ([]models.Prayer, int64, error) {
	return s.store.ListWall(page, limit)
}

// MemberPrayers returns a member's own submissions regardless of status.
func (s *PrayerService) MemberPrayers(memberID uuid.UUID, page, limit int) ([]models.Prayer, int64, error) {
	return s.store.ListByMember(memberID, page, limit)
}

func requestTexts(prayers []models.Prayer) []string {
	texts := make([]string, len(prayers))
	for i, p := range prayers {
		texts[i] = p.RequestText
	}
	return texts
}
