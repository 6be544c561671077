package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gracechapel/church-backend/internal/captcha"
	"github.com/gracechapel/church-backend/internal/identity"
	"github.com/gracechapel/church-backend/internal/moderation"
	"github.com/gracechapel/church-backend/internal/models"
)

// ReportResult is what the report endpoint returns on success.
type ReportResult struct {
	Reports int
	Hidden  bool
}

// ReportService records community reports and hides prayers once they cross
// the report threshold.
type ReportService struct {
	store    PrayerStore
	hasher   *identity.Hasher
	verifier captcha.Verifier
	now      func() time.Time
}

func NewReportService(store PrayerStore, hasher *identity.Hasher, verifier captcha.Verifier) *ReportService {
	return &ReportService{
		store:    store,
		hasher:   hasher,
		verifier: verifier,
		now:      time.Now,
	}
}

// Report files one report against a prayer. A reporter identity can report a
// given prayer at most once, and at most 5 prayers per hour overall.
func (s *ReportService) Report(prayerID uuid.UUID, captchaToken, remoteIP string) (*ReportResult, error) {
	if err := s.verifier.Verify(captchaToken, remoteIP); err != nil {
		slog.Warn("captcha rejected on report", "prayer_id", prayerID, "error", err)
		return nil, ErrBotSuspected
	}

	reporterKey := s.hasher.Hash(remoteIP)

	if _, err := s.store.GetPrayer(prayerID); err != nil {
		return nil, ErrPrayerNotFound
	}

	already, err := s.store.HasReport(prayerID, reporterKey)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing report: %w", err)
	}
	if already {
		return nil, ErrDuplicateReport
	}

	recent, err := s.store.CountReportsSince(reporterKey, s.now().Add(-moderation.ReportWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent reports: %w", err)
	}
	if recent >= moderation.ReportLimit {
		return nil, ErrReportRateLimited
	}

	report := &models.PrayerReport{
		ID:          uuid.New(),
		PrayerID:    prayerID,
		ReporterKey: reporterKey,
	}
	if err := s.store.CreateReport(report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	prayer, err := s.store.IncrementReportCount(prayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to increment report count: %w", err)
	}

	hidden := prayer.Status == models.StatusHidden
	if moderation.ShouldHide(prayer.ReportCount, prayer.Status) {
		if err := s.store.UpdateStatus(prayerID, models.StatusHidden); err != nil {
			return nil, fmt.Errorf("failed to hide prayer: %w", err)
		}
		hidden = true
		slog.Info("prayer auto-hidden", "prayer_id", prayerID, "reports", prayer.ReportCount)
	}

	return &ReportResult{Reports: prayer.ReportCount, Hidden: hidden}, nil
}
