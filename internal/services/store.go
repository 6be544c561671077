package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/gracechapel/church-backend/internal/models"
)

// PrayerStore is the persistence surface the moderation pipeline depends on.
// Services receive it injected so tests can substitute an in-memory fake.
// Atomic report-count increment is a hard requirement of the interface; there
// is no read-then-write fallback.
type PrayerStore interface {
	CreatePrayer(p *models.Prayer) error
	GetPrayer(id uuid.UUID) (*models.Prayer, error)
	ListWall(page, limit int) ([]models.Prayer, int64, error)
	ListByMember(memberID uuid.UUID, page, limit int) ([]models.Prayer, int64, error)

	// SubmissionsSince returns the key's submissions created after since,
	// newest first. Used for risk (24h) and trust (30d) history.
	SubmissionsSince(submitterKey string, since time.Time) ([]models.Prayer, error)
	CountSubmissionsSince(submitterKey string, since time.Time) (int64, error)

	CreateReport(r *models.PrayerReport) error
	HasReport(prayerID uuid.UUID, reporterKey string) (bool, error)
	CountReportsSince(reporterKey string, since time.Time) (int64, error)

	// IncrementReportCount bumps report_count in a single UPDATE and returns
	// the fresh row.
	IncrementReportCount(prayerID uuid.UUID) (*models.Prayer, error)
	UpdateStatus(prayerID uuid.UUID, status string) error
}
