package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gracechapel/church-backend/internal/models"
	"gorm.io/gorm"
)

// fakeStore is an in-memory PrayerStore for service tests.
type fakeStore struct {
	clock   func() time.Time
	prayers map[uuid.UUID]*models.Prayer
	reports []*models.PrayerReport

	failCreatePrayer bool
}

func newFakeStore(clock func() time.Time) *fakeStore {
	return &fakeStore{
		clock:   clock,
		prayers: make(map[uuid.UUID]*models.Prayer),
	}
}

func (f *fakeStore) CreatePrayer(p *models.Prayer) error {
	if f.failCreatePrayer {
		return errors.New("connection refused")
	}
	stored := *p
	stored.CreatedAt = f.clock()
	f.prayers[stored.ID] = &stored
	p.CreatedAt = stored.CreatedAt
	return nil
}

func (f *fakeStore) GetPrayer(id uuid.UUID) (*models.Prayer, error) {
	p, ok := f.prayers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeStore) ListWall(page, limit int) ([]models.Prayer, int64, error) {
	var out []models.Prayer
	for _, p := range f.prayers {
		if p.IsPublic && p.Status != models.StatusHidden {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeStore) ListByMember(memberID uuid.UUID, page, limit int) ([]models.Prayer, int64, error) {
	var out []models.Prayer
	for _, p := range f.prayers {
		if p.MemberID != nil && *p.MemberID == memberID {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeStore) SubmissionsSince(submitterKey string, since time.Time) ([]models.Prayer, error) {
	var out []models.Prayer
	for _, p := range f.prayers {
		if p.SubmitterKey == submitterKey && p.CreatedAt.After(since) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeStore) CountSubmissionsSince(submitterKey string, since time.Time) (int64, error) {
	list, _ := f.SubmissionsSince(submitterKey, since)
	return int64(len(list)), nil
}

func (f *fakeStore) CreateReport(r *models.PrayerReport) error {
	stored := *r
	stored.CreatedAt = f.clock()
	f.reports = append(f.reports, &stored)
	return nil
}

func (f *fakeStore) HasReport(prayerID uuid.UUID, reporterKey string) (bool, error) {
	for _, r := range f.reports {
		if r.PrayerID == prayerID && r.ReporterKey == reporterKey {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CountReportsSince(reporterKey string, since time.Time) (int64, error) {
	var count int64
	for _, r := range f.reports {
		if r.ReporterKey == reporterKey && r.CreatedAt.After(since) {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) IncrementReportCount(prayerID uuid.UUID) (*models.Prayer, error) {
	p, ok := f.prayers[prayerID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	p.ReportCount++
	copied := *p
	return &copied, nil
}

func (f *fakeStore) UpdateStatus(prayerID uuid.UUID, status string) error {
	p, ok := f.prayers[prayerID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Status = status
	return nil
}

// stubVerifier records calls and returns a fixed verdict.
type stubVerifier struct {
	err   error
	calls int
}

func (v *stubVerifier) Verify(token, remoteIP string) error {
	v.calls++
	return v.err
}

// stubNotifier records alerts instead of sending email.
type stubNotifier struct {
	alerts []*models.Prayer
}

func (n *stubNotifier) SubmissionAlert(prayer *models.Prayer) {
	n.alerts = append(n.alerts, prayer)
}
